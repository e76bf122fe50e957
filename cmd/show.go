package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/hmans/boards/internal/model"
	"github.com/hmans/boards/internal/store"
	"github.com/hmans/boards/internal/ui"
)

var (
	showJSON        bool
	showContentOnly bool
)

// boardView is the JSON shape of a board with its author resolved.
type boardView struct {
	*model.Board
	Author *authorView `json:"author"`
}

type authorView struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
}

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a board's contents",
	Long:  `Displays a board with its author and its content rendered as markdown.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := core.Board(args[0])
		if err != nil {
			return fmt.Errorf("board %q: %w", args[0], err)
		}

		out := cmd.OutOrStdout()
		switch {
		case showJSON:
			return writeJSON(out, newBoardView(b, core))
		case showContentOnly:
			fmt.Fprint(out, b.Content)
			return nil
		default:
			return renderBoard(out, b, core)
		}
	},
}

func newBoardView(b *model.Board, st *store.Store) boardView {
	v := boardView{Board: b}
	if u, err := st.User(b.UserID); err == nil {
		v.Author = &authorView{ID: u.ID, FullName: u.FullName()}
	}
	return v
}

func renderBoard(w io.Writer, b *model.Board, st *store.Store) error {
	var header strings.Builder
	header.WriteString(ui.ID.Render(b.ID))
	header.WriteString(" ")
	if u, err := st.User(b.UserID); err == nil {
		header.WriteString(u.FullName())
	} else {
		header.WriteString(ui.RenderAuthor("", false))
		header.WriteString(ui.Muted.Render(" userId " + b.UserID))
	}
	header.WriteString("\n")
	header.WriteString(ui.Title.Render(b.Title))
	header.WriteString("\n")
	header.WriteString(ui.Muted.Render(strings.Repeat("─", 50)))

	fmt.Fprintln(w, lipgloss.NewStyle().MarginBottom(1).Render(header.String()))

	if b.Content == "" {
		return nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return fmt.Errorf("failed to create renderer: %w", err)
	}

	rendered, err := renderer.Render(b.Content)
	if err != nil {
		return fmt.Errorf("failed to render markdown: %w", err)
	}

	fmt.Fprint(w, rendered)
	return nil
}

func init() {
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Output as JSON")
	showCmd.Flags().BoolVar(&showContentOnly, "content-only", false, "Output only the raw content")
	showCmd.MarkFlagsMutuallyExclusive("json", "content-only")
	rootCmd.AddCommand(showCmd)
}
