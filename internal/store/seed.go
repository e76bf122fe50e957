package store

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hmans/boards/internal/model"
)

// Seed is the initial content of a Store.
type Seed struct {
	Users  []model.User  `yaml:"users"`
	Boards []model.Board `yaml:"boards"`
}

// DefaultSeed returns the built-in fixtures. Board 2 references a user that
// does not exist, so its author resolves to null.
func DefaultSeed() *Seed {
	return &Seed{
		Users: []model.User{
			{ID: "1", FirstName: "Lee", LastName: "SM"},
			{ID: "2", FirstName: "Kim", LastName: "DU"},
		},
		Boards: []model.Board{
			{ID: "1", Title: "title1", Content: "content1", UserID: "1"},
			{ID: "2", Title: "title2", Content: "content2", UserID: "3"},
		},
	}
}

// LoadSeed reads a YAML fixture file.
func LoadSeed(path string) (*Seed, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	seed, err := ParseSeed(f)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return seed, nil
}

// ParseSeed decodes YAML fixtures and checks that IDs are present and unique.
func ParseSeed(r io.Reader) (*Seed, error) {
	var seed Seed
	if err := yaml.NewDecoder(r).Decode(&seed); err != nil && err != io.EOF {
		return nil, fmt.Errorf("parsing seed: %w", err)
	}

	if err := seed.Validate(); err != nil {
		return nil, err
	}
	return &seed, nil
}

// Validate checks that every user and board has a unique, non-empty ID.
func (s *Seed) Validate() error {
	seen := make(map[string]bool, len(s.Users))
	for i, u := range s.Users {
		if u.ID == "" {
			return fmt.Errorf("user #%d has no id", i+1)
		}
		if seen[u.ID] {
			return fmt.Errorf("duplicate user id %q", u.ID)
		}
		seen[u.ID] = true
	}

	seen = make(map[string]bool, len(s.Boards))
	for i, b := range s.Boards {
		if b.ID == "" {
			return fmt.Errorf("board #%d has no id", i+1)
		}
		if seen[b.ID] {
			return fmt.Errorf("duplicate board id %q", b.ID)
		}
		seen[b.ID] = true
	}
	return nil
}
