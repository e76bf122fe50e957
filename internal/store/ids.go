package store

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/hmans/boards/internal/config"
)

// IDGenerator hands out board IDs. Calls are serialized by the Store.
type IDGenerator interface {
	// NextID returns a fresh ID.
	NextID() (string, error)
	// Observe records an ID already in use so it is never handed out.
	Observe(id string)
}

// SequenceIDs generates decimal IDs from a counter that only moves forward,
// so IDs of deleted boards are never handed out again.
type SequenceIDs struct {
	next uint64
}

// NewSequenceIDs returns a generator starting at 1.
func NewSequenceIDs() *SequenceIDs {
	return &SequenceIDs{next: 1}
}

func (s *SequenceIDs) NextID() (string, error) {
	id := strconv.FormatUint(s.next, 10)
	s.next++
	return id, nil
}

func (s *SequenceIDs) Observe(id string) {
	n, err := strconv.ParseUint(id, 10, 64)
	if err != nil {
		return
	}
	if n >= s.next {
		s.next = n + 1
	}
}

const idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// NanoIDs generates random IDs of a fixed length with an optional prefix.
type NanoIDs struct {
	Prefix string
	Length int
}

func (n *NanoIDs) NextID() (string, error) {
	id, err := gonanoid.Generate(idAlphabet, n.Length)
	if err != nil {
		return "", fmt.Errorf("generating id: %w", err)
	}
	return n.Prefix + id, nil
}

// Observe is a no-op; collisions are caught by the Store's retry loop.
func (n *NanoIDs) Observe(string) {}

// UUIDs generates random version 4 UUIDs with an optional prefix.
type UUIDs struct {
	Prefix string
}

func (u *UUIDs) NextID() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("generating id: %w", err)
	}
	return u.Prefix + id.String(), nil
}

func (u *UUIDs) Observe(string) {}

// NewIDGenerator builds the generator selected by cfg.
func NewIDGenerator(cfg config.IDsConfig) (IDGenerator, error) {
	switch cfg.Scheme {
	case "", config.IDSchemeSequence:
		return NewSequenceIDs(), nil
	case config.IDSchemeNanoID:
		length := cfg.Length
		if length <= 0 {
			length = config.DefaultIDLength
		}
		return &NanoIDs{Prefix: cfg.Prefix, Length: length}, nil
	case config.IDSchemeUUID:
		return &UUIDs{Prefix: cfg.Prefix}, nil
	default:
		return nil, fmt.Errorf("unknown id scheme %q", cfg.Scheme)
	}
}
