package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hmans/boards/internal/config"
	"github.com/hmans/boards/internal/model"
)

func TestNewCoreDefaultSeed(t *testing.T) {
	st, idx, err := newCore(config.Default(), nil)
	if err != nil {
		t.Fatalf("newCore() error = %v", err)
	}
	defer idx.Close()

	if len(st.Users()) != 2 || len(st.Boards()) != 2 {
		t.Errorf("newCore() seeded %d users, %d boards; want 2, 2", len(st.Users()), len(st.Boards()))
	}

	ids, err := idx.Search("title1", 0)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(ids) != 1 || ids[0] != "1" {
		t.Errorf("Search(\"title1\") = %v, want [1]", ids)
	}
}

func TestNewCoreSeedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	content := `users:
  - id: u1
    firstName: Grace
    lastName: Hopper
boards:
  - id: b1
    title: Compilers
    userId: u1
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing seed: %v", err)
	}

	cfg := config.Default()
	cfg.Seed.File = path
	cfg.IDs.Scheme = config.IDSchemeNanoID
	cfg.IDs.Prefix = "b-"

	st, idx, err := newCore(cfg, nil)
	if err != nil {
		t.Fatalf("newCore() error = %v", err)
	}
	defer idx.Close()

	if len(st.Boards()) != 1 || st.Boards()[0].ID != "b1" {
		t.Fatalf("Boards() = %v, want [b1]", st.Boards())
	}

	b, err := st.CreateBoard(&model.Board{Title: "x", UserID: "u1"})
	if err != nil {
		t.Fatalf("CreateBoard() error = %v", err)
	}
	if !strings.HasPrefix(b.ID, "b-") {
		t.Errorf("CreateBoard().ID = %q, want nanoid with prefix b-", b.ID)
	}
}

func TestNewCoreErrors(t *testing.T) {
	t.Run("missing seed file", func(t *testing.T) {
		cfg := config.Default()
		cfg.Seed.File = filepath.Join(t.TempDir(), "missing.yaml")
		if _, _, err := newCore(cfg, nil); err == nil {
			t.Error("newCore() expected error for missing seed file")
		}
	})

	t.Run("unknown id scheme", func(t *testing.T) {
		cfg := config.Default()
		cfg.IDs.Scheme = "snowflake"
		if _, _, err := newCore(cfg, nil); err == nil {
			t.Error("newCore() expected error for unknown scheme")
		}
	})
}
