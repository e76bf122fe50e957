package graph

import (
	"context"
	"fmt"

	"github.com/graph-gophers/graphql-go"
	"go.uber.org/zap"

	"github.com/hmans/boards/internal/model"
)

// AllUsers is the resolver for the allUsers field.
func (r *Resolver) AllUsers(ctx context.Context) []*userResolver {
	users := r.Store.Users()
	result := make([]*userResolver, 0, len(users))
	for _, u := range users {
		result = append(result, &userResolver{r: r, u: u})
	}
	return result
}

// AllBoards is the resolver for the allBoards field.
func (r *Resolver) AllBoards(ctx context.Context) []*boardResolver {
	return r.wrapBoards(r.Store.Boards())
}

// Board is the resolver for the board field. Unknown IDs resolve to null.
func (r *Resolver) Board(ctx context.Context, args struct{ ID graphql.ID }) *boardResolver {
	b, err := r.Store.Board(string(args.ID))
	if err != nil {
		return nil
	}
	return &boardResolver{r: r, b: b}
}

// User is the resolver for the user field. Unknown IDs resolve to null.
func (r *Resolver) User(ctx context.Context, args struct{ ID graphql.ID }) *userResolver {
	u, err := r.Store.User(string(args.ID))
	if err != nil {
		return nil
	}
	return &userResolver{r: r, u: u}
}

// SearchBoards is the resolver for the searchBoards field.
func (r *Resolver) SearchBoards(ctx context.Context, args struct {
	Query string
	Limit *int32
}) ([]*boardResolver, error) {
	if r.Search == nil {
		return nil, fmt.Errorf("search is not available")
	}

	limit := 0
	if args.Limit != nil {
		limit = int(*args.Limit)
	}

	ids, err := r.Search.Search(args.Query, limit)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	// Boards deleted after indexing are skipped
	result := make([]*boardResolver, 0, len(ids))
	for _, id := range ids {
		if b, err := r.Store.Board(id); err == nil {
			result = append(result, &boardResolver{r: r, b: b})
		}
	}
	return result, nil
}

// PostBoard is the resolver for the postBoard field.
// The author ID is stored as given; it is not checked against the user collection.
func (r *Resolver) PostBoard(ctx context.Context, args struct {
	Title   string
	Content *string
	Author  graphql.ID
}) (*boardResolver, error) {
	b := &model.Board{
		Title:  args.Title,
		UserID: string(args.Author),
	}
	if args.Content != nil {
		b.Content = *args.Content
	}

	created, err := r.Store.CreateBoard(b)
	if err != nil {
		return nil, err
	}

	r.logger().Info("board posted", zap.String("id", created.ID), zap.String("userId", created.UserID))
	return &boardResolver{r: r, b: created}, nil
}

// DeleteBoard is the resolver for the deleteBoard field.
func (r *Resolver) DeleteBoard(ctx context.Context, args struct{ ID graphql.ID }) bool {
	deleted := r.Store.DeleteBoard(string(args.ID))
	if deleted {
		r.logger().Info("board deleted", zap.String("id", string(args.ID)))
	}
	return deleted
}

func (r *Resolver) wrapBoards(boards []*model.Board) []*boardResolver {
	result := make([]*boardResolver, 0, len(boards))
	for _, b := range boards {
		result = append(result, &boardResolver{r: r, b: b})
	}
	return result
}
