package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/hmans/boards/internal/store"
	"github.com/hmans/boards/internal/ui"
)

var (
	checkJSON   bool
	checkStrict bool
)

// danglingAuthor is a board whose userId matches no user.
type danglingAuthor struct {
	BoardID string `json:"board_id"`
	UserID  string `json:"user_id"`
}

type checkResult struct {
	Success      bool             `json:"success"`
	Users        int              `json:"users"`
	Boards       int              `json:"boards"`
	Dangling     []danglingAuthor `json:"dangling_authors"`
	UsersNoBoard []string         `json:"users_without_boards"`
}

var errCheckFailed = errors.New("check failed")

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate configuration and seed data",
	Long: `Loads the configuration and seed data and reports on their integrity:
- Configuration settings (id scheme, port)
- Seed data (unique and non-empty ids)
- Boards whose author does not resolve to a user
- Users without any boards

Dangling authors are legal and resolve to null; use --strict to treat them as errors.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		result := checkStore(core)
		result.Success = !checkStrict || len(result.Dangling) == 0

		out := cmd.OutOrStdout()
		if checkJSON {
			data, _ := json.MarshalIndent(result, "", "  ")
			fmt.Fprintln(out, string(data))
		} else {
			printCheckResult(out, result)
		}

		if !result.Success {
			return errCheckFailed
		}
		return nil
	},
}

// checkStore inspects the seeded store. Config and seed validity are
// already enforced while loading.
func checkStore(st *store.Store) checkResult {
	users := st.Users()
	boards := st.Boards()

	result := checkResult{
		Success:      true,
		Users:        len(users),
		Boards:       len(boards),
		Dangling:     []danglingAuthor{},
		UsersNoBoard: []string{},
	}

	for _, b := range boards {
		if _, err := st.User(b.UserID); err != nil {
			result.Dangling = append(result.Dangling, danglingAuthor{BoardID: b.ID, UserID: b.UserID})
		}
	}
	for _, u := range users {
		if len(st.BoardsByUser(u.ID)) == 0 {
			result.UsersNoBoard = append(result.UsersNoBoard, u.ID)
		}
	}

	return result
}

func printCheckResult(w io.Writer, result checkResult) {
	fmt.Fprintln(w, ui.Bold.Render("Configuration"))
	fmt.Fprintf(w, "  %s ID scheme '%s' is valid\n", ui.Success.Render("✓"), cfg.IDs.Scheme)
	fmt.Fprintf(w, "  %s Listening address %s\n", ui.Success.Render("✓"), cfg.Addr())

	fmt.Fprintln(w)
	fmt.Fprintln(w, ui.Bold.Render("Seed"))
	fmt.Fprintf(w, "  %s %d user(s), %d board(s) loaded\n", ui.Success.Render("✓"), result.Users, result.Boards)

	mark := ui.Warning.Render("!")
	if checkStrict {
		mark = ui.Danger.Render("✗")
	}
	for _, d := range result.Dangling {
		fmt.Fprintf(w, "  %s board %s: author %s does not exist\n", mark, d.BoardID, d.UserID)
	}
	for _, id := range result.UsersNoBoard {
		fmt.Fprintf(w, "  %s user %s has no boards\n", ui.Muted.Render("·"), id)
	}

	fmt.Fprintln(w)
	switch {
	case !result.Success:
		fmt.Fprintln(w, ui.Danger.Render(fmt.Sprintf("%d dangling author(s) found", len(result.Dangling))))
	case len(result.Dangling) > 0:
		fmt.Fprintln(w, ui.Warning.Render(fmt.Sprintf("All checks passed with %d warning(s)", len(result.Dangling))))
	default:
		fmt.Fprintln(w, ui.Success.Render("All checks passed"))
	}
}

func init() {
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "Output as JSON")
	checkCmd.Flags().BoolVar(&checkStrict, "strict", false, "Fail when a board's author does not exist")
	rootCmd.AddCommand(checkCmd)
}
