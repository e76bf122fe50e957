package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tidwall/pretty"
	"golang.org/x/term"

	"github.com/hmans/boards/internal/graph"
)

var (
	queryJSON       bool
	queryVariables  string
	queryOperation  string
	querySchemaOnly bool
)

var graphqlCmd = &cobra.Command{
	Use:     "graphql <query>",
	Aliases: []string{"query"},
	Short:   "Execute a GraphQL query or mutation",
	Long: `Execute a GraphQL query or mutation against a freshly seeded store.

The store lives in this process only, so mutations are visible to the rest
of the same document but are gone once the command exits.

Examples:
  # List all users
  boards graphql '{ allUsers { id fullName } }'

  # Get a board with its author
  boards graphql '{ board(id: "1") { title author { fullName } } }'

  # Use variables
  boards graphql -v '{"id": "1"}' 'query GetBoard($id: ID!) { board(id: $id) { title } }'

  # Search boards
  boards graphql '{ searchBoards(query: "content*") { id title } }'

  # Read from stdin
  cat query.graphql | boards graphql

  # Print the schema
  boards graphql --schema`,
	Args: func(cmd *cobra.Command, args []string) error {
		if querySchemaOnly {
			return nil
		}
		// Allow 0 args if stdin has data, or exactly 1 arg
		if len(args) > 1 {
			return fmt.Errorf("accepts at most 1 argument (the GraphQL query)")
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if querySchemaOnly {
			return printSchema(cmd.OutOrStdout())
		}

		var query string
		if len(args) == 1 {
			query = args[0]
		} else {
			stdinQuery, err := readFromStdin()
			if err != nil {
				return err
			}
			if stdinQuery == "" {
				return fmt.Errorf("no query provided (pass as argument or pipe to stdin)")
			}
			query = stdinQuery
		}

		var variables map[string]any
		if queryVariables != "" {
			if err := json.Unmarshal([]byte(queryVariables), &variables); err != nil {
				return fmt.Errorf("invalid variables JSON: %w", err)
			}
		}

		result, err := executeQuery(query, variables, queryOperation)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if queryJSON {
			fmt.Fprintln(out, string(result))
		} else {
			prettyPrint(out, result)
		}

		return nil
	},
}

// readFromStdin reads the query from stdin if data is available.
func readFromStdin() (string, error) {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return "", fmt.Errorf("checking stdin: %w", err)
	}

	// If stdin is a terminal (no pipe), return empty
	if (stat.Mode()&os.ModeCharDevice) != 0 || term.IsTerminal(int(os.Stdin.Fd())) {
		return "", nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}

	return strings.TrimSpace(string(data)), nil
}

// executeQuery runs a GraphQL query against the current core.
// On success, it returns just the data portion of the response.
func executeQuery(query string, variables map[string]any, operationName string) ([]byte, error) {
	schema, err := graph.NewSchema(newResolver())
	if err != nil {
		return nil, err
	}

	return schema.Execute(context.Background(), graph.Request{
		Query:         query,
		Variables:     variables,
		OperationName: operationName,
	})
}

// prettyPrint outputs the JSON indented, with colors when w is a terminal.
func prettyPrint(w io.Writer, data []byte) {
	formatted := pretty.Pretty(data)
	if isTerminal(w) {
		formatted = pretty.Color(formatted, nil)
	}
	fmt.Fprintln(w, string(formatted))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// printSchema outputs the GraphQL schema.
func printSchema(w io.Writer) error {
	schema, err := graph.FormatSchema()
	if err != nil {
		return err
	}
	fmt.Fprint(w, schema)
	return nil
}

func init() {
	graphqlCmd.Flags().BoolVar(&queryJSON, "json", false, "Output raw JSON (no formatting)")
	graphqlCmd.Flags().StringVarP(&queryVariables, "variables", "v", "", "Query variables as JSON string")
	graphqlCmd.Flags().StringVarP(&queryOperation, "operation", "o", "", "Operation name (for multi-operation documents)")
	graphqlCmd.Flags().BoolVar(&querySchemaOnly, "schema", false, "Print the GraphQL schema and exit")
	rootCmd.AddCommand(graphqlCmd)
}
