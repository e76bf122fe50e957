package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/tidwall/pretty"

	"github.com/hmans/boards/internal/model"
	"github.com/hmans/boards/internal/store"
	"github.com/hmans/boards/internal/ui"
)

var (
	listJSON  bool
	listQuiet bool
	listUsers bool
	listTree  bool
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List the seeded boards or users",
	Long: `Lists the boards (or, with --users, the users) the store is seeded with.
With --tree, boards are grouped under their authors.

Useful for checking a fixture file before serving it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		if listTree {
			nodes := ui.BuildAuthorTree(core.Users(), core.Boards())
			if listJSON {
				tree := make([]*ui.AuthorNodeJSON, len(nodes))
				for i, n := range nodes {
					tree[i] = n.ToJSON()
				}
				return writeJSON(out, tree)
			}
			fmt.Fprint(out, ui.RenderAuthorTree(nodes, treeIDWidth(nodes)))
			return nil
		}

		if listUsers {
			users := core.Users()
			switch {
			case listJSON:
				return writeJSON(out, users)
			case listQuiet:
				for _, u := range users {
					fmt.Fprintln(out, u.ID)
				}
				return nil
			default:
				renderUserTable(out, users)
				return nil
			}
		}

		boards := core.Boards()
		switch {
		case listJSON:
			return writeJSON(out, boards)
		case listQuiet:
			for _, b := range boards {
				fmt.Fprintln(out, b.ID)
			}
			return nil
		default:
			renderBoardTable(out, boards, core)
			return nil
		}
	},
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = w.Write(pretty.Pretty(data))
	return err
}

// idColumnWidth returns the padded width needed for the given IDs.
func idColumnWidth(ids []string) int {
	width := 2 // minimum for "ID" header
	for _, id := range ids {
		if len(id) > width {
			width = len(id)
		}
	}
	return width + 2
}

func treeIDWidth(nodes []*ui.AuthorNode) int {
	var ids []string
	for _, n := range nodes {
		if n.User != nil {
			ids = append(ids, n.User.ID)
		}
		for _, b := range n.Boards {
			ids = append(ids, b.ID)
		}
	}
	return idColumnWidth(ids)
}

func renderBoardTable(w io.Writer, boards []*model.Board, st *store.Store) {
	if len(boards) == 0 {
		fmt.Fprintln(w, ui.Muted.Render("No boards found."))
		return
	}

	ids := make([]string, len(boards))
	for i, b := range boards {
		ids[i] = b.ID
	}
	maxIDWidth := idColumnWidth(ids)

	idStyle := lipgloss.NewStyle().Width(maxIDWidth)
	authorStyle := lipgloss.NewStyle().Width(20)
	titleStyle := lipgloss.NewStyle()

	header := lipgloss.JoinHorizontal(lipgloss.Top,
		idStyle.Render(ui.Header.Render("ID")),
		authorStyle.Render(ui.Header.Render("AUTHOR")),
		titleStyle.Render(ui.Header.Render("TITLE")),
	)
	fmt.Fprintln(w, header)
	fmt.Fprintln(w, ui.Muted.Render(strings.Repeat("─", maxIDWidth+20+30)))

	for _, b := range boards {
		name := ""
		u, err := st.User(b.UserID)
		if err == nil {
			name = u.FullName()
		}

		row := lipgloss.JoinHorizontal(lipgloss.Top,
			idStyle.Render(ui.ID.Render(b.ID)),
			authorStyle.Render(ui.RenderAuthor(ui.Truncate(name, 18), err == nil)),
			titleStyle.Render(ui.Title.Render(ui.Truncate(b.Title, 50))),
		)
		fmt.Fprintln(w, row)
	}
}

func renderUserTable(w io.Writer, users []*model.User) {
	if len(users) == 0 {
		fmt.Fprintln(w, ui.Muted.Render("No users found."))
		return
	}

	ids := make([]string, len(users))
	for i, u := range users {
		ids[i] = u.ID
	}
	maxIDWidth := idColumnWidth(ids)

	idStyle := lipgloss.NewStyle().Width(maxIDWidth)
	nameStyle := lipgloss.NewStyle()

	fmt.Fprintln(w, lipgloss.JoinHorizontal(lipgloss.Top,
		idStyle.Render(ui.Header.Render("ID")),
		nameStyle.Render(ui.Header.Render("NAME")),
	))
	fmt.Fprintln(w, ui.Muted.Render(strings.Repeat("─", maxIDWidth+30)))

	for _, u := range users {
		fmt.Fprintln(w, lipgloss.JoinHorizontal(lipgloss.Top,
			idStyle.Render(ui.ID.Render(u.ID)),
			nameStyle.Render(u.FullName()),
		))
	}
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output as JSON")
	listCmd.Flags().BoolVarP(&listQuiet, "quiet", "q", false, "Only output IDs (one per line)")
	listCmd.Flags().BoolVar(&listUsers, "users", false, "List users instead of boards")
	listCmd.Flags().BoolVar(&listTree, "tree", false, "Group boards under their authors")
	rootCmd.AddCommand(listCmd)
}
