package graph

import (
	"go.uber.org/zap"

	"github.com/hmans/boards/internal/store"
)

// Searcher finds board IDs matching a full-text query.
type Searcher interface {
	Search(query string, limit int) ([]string, error)
}

// Resolver is the root resolver for the GraphQL schema.
// It holds a reference to the store for data access; Search may be nil.
type Resolver struct {
	Store  *store.Store
	Search Searcher
	Log    *zap.Logger
}

func (r *Resolver) logger() *zap.Logger {
	if r.Log == nil {
		return zap.NewNop()
	}
	return r.Log
}
