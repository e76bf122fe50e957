package graph

import (
	"context"

	"github.com/graph-gophers/graphql-go"
	"go.uber.org/zap"

	"github.com/hmans/boards/internal/model"
)

type userResolver struct {
	r *Resolver
	u *model.User
}

func (u *userResolver) ID() graphql.ID {
	return graphql.ID(u.u.ID)
}

func (u *userResolver) FirstName() string {
	return u.u.FirstName
}

func (u *userResolver) LastName() string {
	return u.u.LastName
}

// FullName is the resolver for the fullName field.
func (u *userResolver) FullName(ctx context.Context) string {
	u.r.logger().Debug("full name resolved", zap.String("userId", u.u.ID))
	return u.u.FullName()
}

// Boards is the resolver for the boards field.
func (u *userResolver) Boards(ctx context.Context) []*boardResolver {
	return u.r.wrapBoards(u.r.Store.BoardsByUser(u.u.ID))
}

type boardResolver struct {
	r *Resolver
	b *model.Board
}

func (b *boardResolver) ID() graphql.ID {
	return graphql.ID(b.b.ID)
}

func (b *boardResolver) Title() string {
	return b.b.Title
}

func (b *boardResolver) Content() string {
	return b.b.Content
}

// Author is the resolver for the author field. A dangling userId resolves to null.
func (b *boardResolver) Author(ctx context.Context) *userResolver {
	b.r.logger().Debug("author resolved", zap.String("boardId", b.b.ID), zap.String("userId", b.b.UserID))

	u, err := b.r.Store.User(b.b.UserID)
	if err != nil {
		return nil
	}
	return &userResolver{r: b.r, u: u}
}
