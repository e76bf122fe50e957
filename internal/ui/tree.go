package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hmans/boards/internal/model"
)

// AuthorNode groups the boards written by one user.
// User is nil for the group of boards whose userId matches no user.
type AuthorNode struct {
	User   *model.User
	Boards []*model.Board
}

// AuthorNodeJSON is the JSON-serializable version of AuthorNode.
type AuthorNodeJSON struct {
	ID       string         `json:"id,omitempty"`
	FullName string         `json:"fullName,omitempty"`
	Boards   []*model.Board `json:"boards"`
}

// ToJSON converts an AuthorNode to its JSON-serializable form.
func (n *AuthorNode) ToJSON() *AuthorNodeJSON {
	out := &AuthorNodeJSON{Boards: n.Boards}
	if out.Boards == nil {
		out.Boards = []*model.Board{}
	}
	if n.User != nil {
		out.ID = n.User.ID
		out.FullName = n.User.FullName()
	}
	return out
}

// BuildAuthorTree groups boards under their authors, keeping the order of
// both slices. Users without boards are kept. Boards with a dangling userId
// are collected into a trailing node with a nil User.
func BuildAuthorTree(users []*model.User, boards []*model.Board) []*AuthorNode {
	nodes := make([]*AuthorNode, len(users))
	byUser := make(map[string]*AuthorNode, len(users))
	for i, u := range users {
		nodes[i] = &AuthorNode{User: u}
		byUser[u.ID] = nodes[i]
	}

	var orphans *AuthorNode
	for _, b := range boards {
		if n, ok := byUser[b.UserID]; ok {
			n.Boards = append(n.Boards, b)
			continue
		}
		if orphans == nil {
			orphans = &AuthorNode{}
		}
		orphans.Boards = append(orphans.Boards, b)
	}

	if orphans != nil {
		nodes = append(nodes, orphans)
	}
	return nodes
}

// Tree rendering constants
const (
	treeBranch     = "├─ "
	treeLastBranch = "└─ "
	treeIndent     = 3 // width of connector (├─  or └─ )
)

// RenderAuthorTree renders users and their boards as an ASCII tree.
func RenderAuthorTree(nodes []*AuthorNode, maxIDWidth int) string {
	var sb strings.Builder

	treeColWidth := maxIDWidth + treeIndent
	idStyle := lipgloss.NewStyle().Width(treeColWidth)

	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		idStyle.Render(Header.Render("ID")),
		Header.Render("NAME / TITLE"),
	))
	sb.WriteString("\n")
	sb.WriteString(Muted.Render(strings.Repeat("─", treeColWidth+50)))
	sb.WriteString("\n")

	for _, node := range nodes {
		if node.User != nil {
			sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
				idStyle.Render(ID.Render(node.User.ID)),
				Bold.Render(node.User.FullName()),
			))
		} else {
			sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
				idStyle.Render(""),
				RenderAuthor("", false),
			))
		}
		sb.WriteString("\n")

		for i, b := range node.Boards {
			connector := treeBranch
			if i == len(node.Boards)-1 {
				connector = treeLastBranch
			}

			// Pad by visual width; the connector runes are single-width
			visualWidth := runeWidth(connector) + len(b.ID)
			padding := ""
			if treeColWidth > visualWidth {
				padding = strings.Repeat(" ", treeColWidth-visualWidth)
			}

			sb.WriteString(TreeLine.Render(connector) + ID.Render(b.ID) + padding)
			sb.WriteString(Title.Render(Truncate(b.Title, 50)))
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

// runeWidth returns the visual width of a string (counting runes, not bytes).
func runeWidth(s string) int {
	return len([]rune(s))
}
