package graph

import (
	"context"
	"errors"
	"testing"

	"github.com/graph-gophers/graphql-go"

	"github.com/hmans/boards/internal/model"
	"github.com/hmans/boards/internal/search"
	"github.com/hmans/boards/internal/store"
)

func setupTestResolver(t *testing.T) (*Resolver, *store.Store) {
	t.Helper()

	st := store.New(nil, nil)
	if err := st.Reset(store.DefaultSeed()); err != nil {
		t.Fatalf("failed to seed store: %v", err)
	}

	idx, err := search.NewIndex()
	if err != nil {
		t.Fatalf("failed to create search index: %v", err)
	}
	t.Cleanup(func() { idx.Close() })
	if err := st.SetIndex(idx); err != nil {
		t.Fatalf("failed to attach search index: %v", err)
	}

	return &Resolver{Store: st, Search: idx}, st
}

func strPtr(s string) *string { return &s }

func int32Ptr(n int32) *int32 { return &n }

func TestQueryAllUsers(t *testing.T) {
	resolver, _ := setupTestResolver(t)
	ctx := context.Background()

	got := resolver.AllUsers(ctx)
	if len(got) != 2 {
		t.Fatalf("AllUsers() count = %d, want 2", len(got))
	}
	if got[0].ID() != "1" || got[0].FullName(ctx) != "Lee SM" {
		t.Errorf("AllUsers()[0] = %s %q, want 1 \"Lee SM\"", got[0].ID(), got[0].FullName(ctx))
	}
	if got[1].FirstName() != "Kim" || got[1].LastName() != "DU" {
		t.Errorf("AllUsers()[1] = %s %s, want Kim DU", got[1].FirstName(), got[1].LastName())
	}
}

func TestQueryBoard(t *testing.T) {
	resolver, _ := setupTestResolver(t)
	ctx := context.Background()

	t.Run("exact match", func(t *testing.T) {
		got := resolver.Board(ctx, struct{ ID graphql.ID }{ID: "1"})
		if got == nil {
			t.Fatal("Board() returned nil")
		}
		if got.ID() != "1" || got.Title() != "title1" || got.Content() != "content1" {
			t.Errorf("Board() = %s/%s/%s, want 1/title1/content1", got.ID(), got.Title(), got.Content())
		}
	})

	t.Run("not found", func(t *testing.T) {
		if got := resolver.Board(ctx, struct{ ID graphql.ID }{ID: "nonexistent"}); got != nil {
			t.Errorf("Board() = %v, want nil", got)
		}
	})
}

func TestQueryUser(t *testing.T) {
	resolver, _ := setupTestResolver(t)
	ctx := context.Background()

	got := resolver.User(ctx, struct{ ID graphql.ID }{ID: "2"})
	if got == nil || got.FullName(ctx) != "Kim DU" {
		t.Fatalf("User(2) = %v, want Kim DU", got)
	}

	if got := resolver.User(ctx, struct{ ID graphql.ID }{ID: "3"}); got != nil {
		t.Errorf("User(3) = %v, want nil", got)
	}
}

func TestBoardAuthor(t *testing.T) {
	resolver, _ := setupTestResolver(t)
	ctx := context.Background()

	t.Run("known user", func(t *testing.T) {
		b := resolver.Board(ctx, struct{ ID graphql.ID }{ID: "1"})
		author := b.Author(ctx)
		if author == nil {
			t.Fatal("Author() returned nil")
		}
		if author.FullName(ctx) != "Lee SM" {
			t.Errorf("Author().FullName() = %q, want \"Lee SM\"", author.FullName(ctx))
		}
	})

	t.Run("dangling user id", func(t *testing.T) {
		b := resolver.Board(ctx, struct{ ID graphql.ID }{ID: "2"})
		if author := b.Author(ctx); author != nil {
			t.Errorf("Author() = %v, want nil for unknown user 3", author)
		}
	})
}

func TestUserBoards(t *testing.T) {
	resolver, _ := setupTestResolver(t)
	ctx := context.Background()

	lee := resolver.User(ctx, struct{ ID graphql.ID }{ID: "1"})
	boards := lee.Boards(ctx)
	if len(boards) != 1 || boards[0].ID() != "1" {
		t.Fatalf("Boards() = %d boards, want board 1", len(boards))
	}

	kim := resolver.User(ctx, struct{ ID graphql.ID }{ID: "2"})
	if got := kim.Boards(ctx); len(got) != 0 {
		t.Errorf("Boards() for user 2 = %d boards, want 0", len(got))
	}
}

func TestMutationPostBoard(t *testing.T) {
	resolver, st := setupTestResolver(t)
	ctx := context.Background()

	t.Run("all fields persisted", func(t *testing.T) {
		got, err := resolver.PostBoard(ctx, struct {
			Title   string
			Content *string
			Author  graphql.ID
		}{Title: "T", Content: strPtr("body"), Author: "2"})
		if err != nil {
			t.Fatalf("PostBoard() error = %v", err)
		}
		if got.Title() != "T" || got.Content() != "body" {
			t.Errorf("PostBoard() = %s/%s, want T/body", got.Title(), got.Content())
		}
		if a := got.Author(ctx); a == nil || a.ID() != "2" {
			t.Errorf("PostBoard().Author() = %v, want user 2", a)
		}

		stored, err := st.Board(string(got.ID()))
		if err != nil {
			t.Fatalf("stored board missing: %v", err)
		}
		if stored.UserID != "2" || stored.Content != "body" {
			t.Errorf("stored board = %+v", stored)
		}
	})

	t.Run("content omitted", func(t *testing.T) {
		got, err := resolver.PostBoard(ctx, struct {
			Title   string
			Content *string
			Author  graphql.ID
		}{Title: "no content", Author: "1"})
		if err != nil {
			t.Fatalf("PostBoard() error = %v", err)
		}
		if got.Content() != "" {
			t.Errorf("Content() = %q, want empty", got.Content())
		}
	})

	t.Run("unknown author accepted", func(t *testing.T) {
		got, err := resolver.PostBoard(ctx, struct {
			Title   string
			Content *string
			Author  graphql.ID
		}{Title: "orphan", Author: "99"})
		if err != nil {
			t.Fatalf("PostBoard() error = %v", err)
		}
		if got.Author(ctx) != nil {
			t.Error("Author() for unknown user should be nil")
		}
	})
}

func TestMutationDeleteBoard(t *testing.T) {
	resolver, st := setupTestResolver(t)
	ctx := context.Background()

	if !resolver.DeleteBoard(ctx, struct{ ID graphql.ID }{ID: "1"}) {
		t.Fatal("DeleteBoard(1) = false, want true")
	}
	if resolver.DeleteBoard(ctx, struct{ ID graphql.ID }{ID: "1"}) {
		t.Error("second DeleteBoard(1) = true, want false")
	}

	boards := resolver.AllBoards(ctx)
	if len(boards) != 1 || boards[0].ID() != "2" {
		t.Errorf("AllBoards() after delete = %d boards, want only board 2", len(boards))
	}
	if _, err := st.Board("1"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("store still has board 1: %v", err)
	}
}

func TestQuerySearchBoards(t *testing.T) {
	resolver, _ := setupTestResolver(t)
	ctx := context.Background()

	posted, err := resolver.PostBoard(ctx, struct {
		Title   string
		Content *string
		Author  graphql.ID
	}{Title: "Quarterly planning", Content: strPtr("roadmap"), Author: "1"})
	if err != nil {
		t.Fatalf("PostBoard() error = %v", err)
	}

	search := func(t *testing.T, q string, limit *int32) []*boardResolver {
		t.Helper()
		got, err := resolver.SearchBoards(ctx, struct {
			Query string
			Limit *int32
		}{Query: q, Limit: limit})
		if err != nil {
			t.Fatalf("SearchBoards(%q) error = %v", q, err)
		}
		return got
	}

	t.Run("finds posted board", func(t *testing.T) {
		got := search(t, "roadmap", nil)
		if len(got) != 1 || got[0].ID() != posted.ID() {
			t.Errorf("SearchBoards(\"roadmap\") = %d hits, want board %s", len(got), posted.ID())
		}
	})

	t.Run("seeded boards", func(t *testing.T) {
		if got := search(t, "content1 content2", nil); len(got) != 2 {
			t.Errorf("SearchBoards() = %d hits, want 2", len(got))
		}
		if got := search(t, "content1 content2", int32Ptr(1)); len(got) != 1 {
			t.Errorf("SearchBoards() with limit 1 = %d hits, want 1", len(got))
		}
	})

	t.Run("deleted board disappears", func(t *testing.T) {
		resolver.DeleteBoard(ctx, struct{ ID graphql.ID }{ID: posted.ID()})
		if got := search(t, "roadmap", nil); len(got) != 0 {
			t.Errorf("SearchBoards(\"roadmap\") after delete = %d hits, want 0", len(got))
		}
	})

	t.Run("no index", func(t *testing.T) {
		r := &Resolver{Store: resolver.Store}
		_, err := r.SearchBoards(ctx, struct {
			Query string
			Limit *int32
		}{Query: "x"})
		if err == nil {
			t.Error("SearchBoards() without index expected error")
		}
	})
}

func TestPostBoardIDsNeverCollide(t *testing.T) {
	resolver, _ := setupTestResolver(t)
	ctx := context.Background()

	resolver.DeleteBoard(ctx, struct{ ID graphql.ID }{ID: "1"})

	seen := map[graphql.ID]bool{}
	for _, b := range resolver.AllBoards(ctx) {
		seen[b.ID()] = true
	}
	for i := 0; i < 3; i++ {
		b, err := resolver.PostBoard(ctx, struct {
			Title   string
			Content *string
			Author  graphql.ID
		}{Title: "new", Author: "1"})
		if err != nil {
			t.Fatalf("PostBoard() error = %v", err)
		}
		if seen[b.ID()] {
			t.Fatalf("PostBoard() assigned colliding id %s", b.ID())
		}
		seen[b.ID()] = true
	}
}

func TestWrapBoardsKeepsOrder(t *testing.T) {
	resolver, _ := setupTestResolver(t)

	boards := []*model.Board{{ID: "b"}, {ID: "a"}}
	got := resolver.wrapBoards(boards)
	if len(got) != 2 || got[0].ID() != "b" || got[1].ID() != "a" {
		t.Errorf("wrapBoards() changed order")
	}
}
