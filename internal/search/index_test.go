package search

import (
	"testing"

	"github.com/hmans/boards/internal/model"
)

func setupTestIndex(t *testing.T) *Index {
	t.Helper()
	idx, err := NewIndex()
	if err != nil {
		t.Fatalf("NewIndex() error = %v", err)
	}
	t.Cleanup(func() { idx.Close() })
	return idx
}

func testBoards() []*model.Board {
	return []*model.Board{
		{ID: "1", Title: "Quarterly planning", Content: "Roadmap for the next quarter", UserID: "1"},
		{ID: "2", Title: "Release notes", Content: "Bug fixes and planning updates", UserID: "2"},
		{ID: "3", Title: "Lunch", Content: "Pizza on friday", UserID: "1"},
	}
}

func TestSearch(t *testing.T) {
	idx := setupTestIndex(t)
	if err := idx.Reset(testBoards()); err != nil {
		t.Fatalf("Reset() error = %v", err)
	}

	t.Run("term in title and content", func(t *testing.T) {
		ids, err := idx.Search("planning", 0)
		if err != nil {
			t.Fatalf("Search() error = %v", err)
		}
		if len(ids) != 2 {
			t.Fatalf("Search(\"planning\") = %v, want 2 hits", ids)
		}
	})

	t.Run("field query", func(t *testing.T) {
		ids, err := idx.Search("title:pizza", 0)
		if err != nil {
			t.Fatalf("Search() error = %v", err)
		}
		if len(ids) != 0 {
			t.Errorf("Search(\"title:pizza\") = %v, want no hits", ids)
		}

		ids, err = idx.Search("content:pizza", 0)
		if err != nil {
			t.Fatalf("Search() error = %v", err)
		}
		if len(ids) != 1 || ids[0] != "3" {
			t.Errorf("Search(\"content:pizza\") = %v, want [3]", ids)
		}
	})

	t.Run("limit", func(t *testing.T) {
		ids, err := idx.Search("planning", 1)
		if err != nil {
			t.Fatalf("Search() error = %v", err)
		}
		if len(ids) != 1 {
			t.Errorf("Search() with limit 1 returned %d hits", len(ids))
		}
	})

	t.Run("no match", func(t *testing.T) {
		ids, err := idx.Search("nonexistent", 0)
		if err != nil {
			t.Fatalf("Search() error = %v", err)
		}
		if len(ids) != 0 {
			t.Errorf("Search(\"nonexistent\") = %v, want none", ids)
		}
	})
}

func TestIndexAndDeleteBoard(t *testing.T) {
	idx := setupTestIndex(t)

	b := &model.Board{ID: "42", Title: "Standup", Content: "daily sync"}
	if err := idx.IndexBoard(b); err != nil {
		t.Fatalf("IndexBoard() error = %v", err)
	}

	ids, _ := idx.Search("standup", 0)
	if len(ids) != 1 || ids[0] != "42" {
		t.Fatalf("Search(\"standup\") = %v, want [42]", ids)
	}

	if err := idx.DeleteBoard("42"); err != nil {
		t.Fatalf("DeleteBoard() error = %v", err)
	}
	ids, _ = idx.Search("standup", 0)
	if len(ids) != 0 {
		t.Errorf("Search(\"standup\") after delete = %v, want none", ids)
	}
}

func TestResetReplacesDocuments(t *testing.T) {
	idx := setupTestIndex(t)
	if err := idx.Reset(testBoards()); err != nil {
		t.Fatalf("Reset() error = %v", err)
	}

	replacement := []*model.Board{{ID: "9", Title: "Retro", Content: "what went well"}}
	if err := idx.Reset(replacement); err != nil {
		t.Fatalf("Reset() error = %v", err)
	}

	if ids, _ := idx.Search("planning", 0); len(ids) != 0 {
		t.Errorf("Search(\"planning\") after reset = %v, want none", ids)
	}
	if ids, _ := idx.Search("retro", 0); len(ids) != 1 {
		t.Errorf("Search(\"retro\") after reset = %v, want [9]", ids)
	}
}
