package store

import (
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/hmans/boards/internal/config"
)

func TestSequenceIDs(t *testing.T) {
	g := NewSequenceIDs()

	first, _ := g.NextID()
	if first != "1" {
		t.Errorf("NextID() = %q, want \"1\"", first)
	}

	g.Observe("10")
	g.Observe("4")           // lower ids never move the counter back
	g.Observe("not-numeric") // ignored

	next, _ := g.NextID()
	if next != "11" {
		t.Errorf("NextID() after Observe(\"10\") = %q, want \"11\"", next)
	}
}

func TestNanoIDs(t *testing.T) {
	g := &NanoIDs{Prefix: "b-", Length: 8}

	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id, err := g.NextID()
		if err != nil {
			t.Fatalf("NextID() error = %v", err)
		}
		if !strings.HasPrefix(id, "b-") {
			t.Errorf("NextID() = %q, want prefix \"b-\"", id)
		}
		if len(id) != len("b-")+8 {
			t.Errorf("len(NextID()) = %d, want 10", len(id))
		}
		if strings.Trim(id[2:], idAlphabet) != "" {
			t.Errorf("NextID() = %q contains characters outside the alphabet", id)
		}
		if seen[id] {
			t.Errorf("NextID() repeated %q", id)
		}
		seen[id] = true
	}
}

func TestUUIDs(t *testing.T) {
	g := &UUIDs{Prefix: "u-"}

	id, err := g.NextID()
	if err != nil {
		t.Fatalf("NextID() error = %v", err)
	}
	if !strings.HasPrefix(id, "u-") {
		t.Fatalf("NextID() = %q, want prefix \"u-\"", id)
	}
	parsed, err := uuid.Parse(strings.TrimPrefix(id, "u-"))
	if err != nil {
		t.Fatalf("NextID() = %q is not a UUID: %v", id, err)
	}
	if parsed.Version() != 4 {
		t.Errorf("version = %d, want 4", parsed.Version())
	}

	other, _ := g.NextID()
	if other == id {
		t.Errorf("NextID() repeated %q", id)
	}
}

func TestNewIDGenerator(t *testing.T) {
	t.Run("sequence", func(t *testing.T) {
		g, err := NewIDGenerator(config.IDsConfig{Scheme: config.IDSchemeSequence})
		if err != nil {
			t.Fatalf("NewIDGenerator() error = %v", err)
		}
		if _, ok := g.(*SequenceIDs); !ok {
			t.Errorf("NewIDGenerator() = %T, want *SequenceIDs", g)
		}
	})

	t.Run("nanoid default length", func(t *testing.T) {
		g, err := NewIDGenerator(config.IDsConfig{Scheme: config.IDSchemeNanoID})
		if err != nil {
			t.Fatalf("NewIDGenerator() error = %v", err)
		}
		n, ok := g.(*NanoIDs)
		if !ok {
			t.Fatalf("NewIDGenerator() = %T, want *NanoIDs", g)
		}
		if n.Length != config.DefaultIDLength {
			t.Errorf("Length = %d, want %d", n.Length, config.DefaultIDLength)
		}
	})

	t.Run("uuid", func(t *testing.T) {
		g, err := NewIDGenerator(config.IDsConfig{Scheme: config.IDSchemeUUID, Prefix: "b-"})
		if err != nil {
			t.Fatalf("NewIDGenerator() error = %v", err)
		}
		if u, ok := g.(*UUIDs); !ok || u.Prefix != "b-" {
			t.Errorf("NewIDGenerator() = %#v, want *UUIDs with prefix", g)
		}
	})

	t.Run("unknown", func(t *testing.T) {
		if _, err := NewIDGenerator(config.IDsConfig{Scheme: "snowflake"}); err == nil {
			t.Error("NewIDGenerator() expected error for unknown scheme")
		}
	})
}
