// Package store provides a thread-safe in-memory store for users and boards,
// with an optional search index kept in sync and optional reloading of seed fixtures.
package store

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/hmans/boards/internal/model"
)

var (
	ErrNotFound = errors.New("not found")
	ErrNoFreeID = errors.New("could not allocate an unused board id")
)

// maxIDAttempts bounds the retries when a generator returns an ID already in use.
const maxIDAttempts = 16

// Indexer receives board changes so a search index can follow the store.
type Indexer interface {
	IndexBoard(b *model.Board) error
	DeleteBoard(id string) error
	Reset(boards []*model.Board) error
}

// Store holds users and boards keyed by ID, remembering insertion order.
type Store struct {
	mu       sync.RWMutex
	users    map[string]*model.User
	userIDs  []string
	boards   map[string]*model.Board
	boardIDs []string

	ids   IDGenerator
	index Indexer
	log   *zap.Logger

	// Seed watching (optional)
	watchMu  sync.Mutex
	watching bool
	done     chan struct{}
}

// New creates an empty Store. A nil generator defaults to SequenceIDs and a nil logger to a no-op.
func New(ids IDGenerator, log *zap.Logger) *Store {
	if ids == nil {
		ids = NewSequenceIDs()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{
		users:  make(map[string]*model.User),
		boards: make(map[string]*model.Board),
		ids:    ids,
		log:    log,
	}
}

// SetIndex attaches a search index. It is populated with the current boards.
func (s *Store) SetIndex(idx Indexer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.index = idx
	if idx == nil {
		return nil
	}
	return idx.Reset(s.boardsLocked())
}

// Reset replaces all users and boards with the seed contents.
func (s *Store) Reset(seed *Seed) error {
	if err := seed.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = make(map[string]*model.User, len(seed.Users))
	s.userIDs = make([]string, 0, len(seed.Users))
	for _, u := range seed.Users {
		u := u
		s.users[u.ID] = &u
		s.userIDs = append(s.userIDs, u.ID)
	}

	s.boards = make(map[string]*model.Board, len(seed.Boards))
	s.boardIDs = make([]string, 0, len(seed.Boards))
	for _, b := range seed.Boards {
		b := b
		s.boards[b.ID] = &b
		s.boardIDs = append(s.boardIDs, b.ID)
		s.ids.Observe(b.ID)
	}

	if s.index != nil {
		if err := s.index.Reset(s.boardsLocked()); err != nil {
			s.log.Warn("failed to rebuild search index", zap.Error(err))
		}
	}

	return nil
}

// Users returns all users in insertion order.
func (s *Store) Users() []*model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*model.User, 0, len(s.userIDs))
	for _, id := range s.userIDs {
		result = append(result, s.users[id])
	}
	return result
}

// Boards returns all boards in insertion order.
func (s *Store) Boards() []*model.Board {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.boardsLocked()
}

// boardsLocked lists boards (must be called with lock held).
func (s *Store) boardsLocked() []*model.Board {
	result := make([]*model.Board, 0, len(s.boardIDs))
	for _, id := range s.boardIDs {
		result = append(result, s.boards[id])
	}
	return result
}

// User finds a user by exact ID.
func (s *Store) User(id string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if u, ok := s.users[id]; ok {
		return u, nil
	}
	return nil, ErrNotFound
}

// Board finds a board by exact ID.
func (s *Store) Board(id string) (*model.Board, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if b, ok := s.boards[id]; ok {
		return b, nil
	}
	return nil, ErrNotFound
}

// BoardsByUser returns the boards whose UserID equals userID, in insertion order.
func (s *Store) BoardsByUser(userID string) []*model.Board {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := []*model.Board{}
	for _, id := range s.boardIDs {
		if b := s.boards[id]; b.UserID == userID {
			result = append(result, b)
		}
	}
	return result
}

// CreateBoard stores a copy of b under a newly generated ID and returns the stored board.
// Any ID set on b is ignored.
func (s *Store) CreateBoard(b *model.Board) (*model.Board, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.nextIDLocked()
	if err != nil {
		return nil, err
	}

	stored := *b
	stored.ID = id
	s.boards[id] = &stored
	s.boardIDs = append(s.boardIDs, id)

	if s.index != nil {
		if err := s.index.IndexBoard(&stored); err != nil {
			s.log.Warn("failed to index board", zap.String("id", id), zap.Error(err))
		}
	}

	return &stored, nil
}

// nextIDLocked returns an ID not used by any board (must be called with lock held).
func (s *Store) nextIDLocked() (string, error) {
	for i := 0; i < maxIDAttempts; i++ {
		id, err := s.ids.NextID()
		if err != nil {
			return "", err
		}
		if _, taken := s.boards[id]; !taken {
			return id, nil
		}
	}
	return "", fmt.Errorf("%w after %d attempts", ErrNoFreeID, maxIDAttempts)
}

// DeleteBoard removes the board with the given ID. It reports whether a board was removed.
func (s *Store) DeleteBoard(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.boards[id]; !ok {
		return false
	}

	delete(s.boards, id)
	kept := s.boardIDs[:0]
	for _, existing := range s.boardIDs {
		if existing != id {
			kept = append(kept, existing)
		}
	}
	s.boardIDs = kept

	if s.index != nil {
		if err := s.index.DeleteBoard(id); err != nil {
			s.log.Warn("failed to remove board from search index", zap.String("id", id), zap.Error(err))
		}
	}

	return true
}

// Close stops any active seed watcher.
func (s *Store) Close() error {
	return s.Unwatch()
}
