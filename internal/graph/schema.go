package graph

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/graph-gophers/graphql-go"
	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/formatter"
	"github.com/vektah/gqlparser/v2/parser"
)

//go:embed schema.graphqls
var SDL string

// maxParallelism caps how many field resolvers run concurrently per request.
const maxParallelism = 10

// Request is a GraphQL request as sent by clients.
type Request struct {
	Query         string         `json:"query"`
	OperationName string         `json:"operationName,omitempty"`
	Variables     map[string]any `json:"variables,omitempty"`
}

// Schema is the executable schema bound to a root resolver.
type Schema struct {
	schema *graphql.Schema
}

// NewSchema parses the embedded SDL and binds it to r.
// It fails if any field lacks a matching resolver method.
func NewSchema(r *Resolver) (*Schema, error) {
	s, err := graphql.ParseSchema(SDL, r, graphql.MaxParallelism(maxParallelism))
	if err != nil {
		return nil, fmt.Errorf("parsing schema: %w", err)
	}
	return &Schema{schema: s}, nil
}

// Exec runs a request and returns the full response, errors included.
func (s *Schema) Exec(ctx context.Context, req Request) *graphql.Response {
	return s.schema.Exec(ctx, req.Query, req.OperationName, req.Variables)
}

// Execute runs a request and returns only the data portion of the response.
// Any GraphQL error is returned as a Go error.
func (s *Schema) Execute(ctx context.Context, req Request) (json.RawMessage, error) {
	resp := s.Exec(ctx, req)
	if len(resp.Errors) > 0 {
		msgs := make([]string, 0, len(resp.Errors))
		for _, e := range resp.Errors {
			msgs = append(msgs, e.Message)
		}
		return nil, FormatErrors(msgs)
	}
	return resp.Data, nil
}

// FormatErrors folds GraphQL error messages into a single error.
func FormatErrors(msgs []string) error {
	switch len(msgs) {
	case 0:
		return nil
	case 1:
		return fmt.Errorf("graphql: %s", msgs[0])
	default:
		return fmt.Errorf("graphql errors:\n  %s", strings.Join(msgs, "\n  "))
	}
}

// OperationType reports whether the selected operation of a document is a
// "query", "mutation" or "subscription". It returns "invalid" for documents
// that don't parse or don't contain the named operation.
func OperationType(query, operationName string) string {
	doc, err := parser.ParseQuery(&ast.Source{Input: query})
	if err != nil {
		return "invalid"
	}
	op := doc.Operations.ForName(operationName)
	if op == nil {
		return "invalid"
	}
	if op.Operation == "" {
		return string(ast.Query)
	}
	return string(op.Operation)
}

// FormatSchema returns the schema in canonical SDL form.
func FormatSchema() (string, error) {
	schema, err := gqlparser.LoadSchema(&ast.Source{Name: "schema.graphqls", Input: SDL})
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	f := formatter.NewFormatter(&buf, formatter.WithIndent("  "))
	f.FormatSchema(schema)

	return buf.String(), nil
}
