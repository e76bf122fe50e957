package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/hmans/boards/internal/model"
	"github.com/hmans/boards/internal/ui"
)

func TestRenderBoardTable(t *testing.T) {
	testCore, cleanup := setupQueryTestCore(t)
	defer cleanup()

	var buf bytes.Buffer
	renderBoardTable(&buf, testCore.Boards(), testCore)
	out := buf.String()

	for _, want := range []string{"ID", "AUTHOR", "TITLE", "title1", "title2", "Lee SM", "(unknown)"} {
		if !strings.Contains(out, want) {
			t.Errorf("board table missing %q:\n%s", want, out)
		}
	}
}

func TestRenderBoardTableEmpty(t *testing.T) {
	testCore, cleanup := setupQueryTestCore(t)
	defer cleanup()

	var buf bytes.Buffer
	renderBoardTable(&buf, nil, testCore)
	if !strings.Contains(buf.String(), "No boards found.") {
		t.Errorf("output = %q, want empty notice", buf.String())
	}
}

func TestRenderUserTable(t *testing.T) {
	testCore, cleanup := setupQueryTestCore(t)
	defer cleanup()

	var buf bytes.Buffer
	renderUserTable(&buf, testCore.Users())
	out := buf.String()

	for _, want := range []string{"NAME", "Lee SM", "Kim DU"} {
		if !strings.Contains(out, want) {
			t.Errorf("user table missing %q:\n%s", want, out)
		}
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	boards := []*model.Board{{ID: "1", Title: "t", UserID: "1"}}
	if err := writeJSON(&buf, boards); err != nil {
		t.Fatalf("writeJSON() error = %v", err)
	}

	var got []model.Board
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if len(got) != 1 || got[0].UserID != "1" {
		t.Errorf("decoded = %+v", got)
	}
}

func TestIDColumnWidth(t *testing.T) {
	if got := idColumnWidth(nil); got != 4 {
		t.Errorf("idColumnWidth(nil) = %d, want 4", got)
	}
	if got := idColumnWidth([]string{"1", "abcdef"}); got != 8 {
		t.Errorf("idColumnWidth() = %d, want 8", got)
	}
}

func TestTreeIDWidth(t *testing.T) {
	testCore, cleanup := setupQueryTestCore(t)
	defer cleanup()

	nodes := ui.BuildAuthorTree(testCore.Users(), testCore.Boards())
	if got := treeIDWidth(nodes); got != 4 {
		t.Errorf("treeIDWidth() = %d, want 4", got)
	}
}
