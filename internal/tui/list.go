package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hmans/boards/internal/model"
	"github.com/hmans/boards/internal/store"
	"github.com/hmans/boards/internal/ui"
)

// boardItem wraps a Board to implement list.Item
type boardItem struct {
	board  *model.Board
	author string
	found  bool
}

func (i boardItem) Title() string       { return i.board.Title }
func (i boardItem) Description() string { return i.board.ID + " · " + i.author }
func (i boardItem) FilterValue() string { return i.board.Title + " " + i.board.ID + " " + i.author }

// itemDelegate handles rendering of list items
type itemDelegate struct{}

func (d itemDelegate) Height() int                             { return 1 }
func (d itemDelegate) Spacing() int                            { return 0 }
func (d itemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d itemDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	item, ok := listItem.(boardItem)
	if !ok {
		return
	}

	// Column widths
	idWidth := 10
	authorWidth := 20

	idCol := lipgloss.NewStyle().Width(idWidth).Render(ui.ID.Render(item.board.ID))
	authorCol := lipgloss.NewStyle().Width(authorWidth).
		Render(ui.RenderAuthor(ui.Truncate(item.author, authorWidth-2), item.found))

	title := item.board.Title
	if maxTitleWidth := m.Width() - idWidth - authorWidth - 4; maxTitleWidth > 0 {
		title = ui.Truncate(title, maxTitleWidth)
	}

	var str string
	if index == m.Index() {
		cursor := lipgloss.NewStyle().Foreground(ui.ColorPrimary).Bold(true).Render("▌")
		titleStyled := lipgloss.NewStyle().Bold(true).Foreground(ui.ColorPrimary).Render(title)
		str = cursor + " " + idCol + authorCol + titleStyled
	} else {
		str = "  " + idCol + authorCol + title
	}

	fmt.Fprint(w, str)
}

// listModel is the model for the board list view
type listModel struct {
	list   list.Model
	store  *store.Store
	width  int
	height int
}

func newListModel(st *store.Store) listModel {
	l := list.New([]list.Item{}, itemDelegate{}, 0, 0)
	l.Title = "Boards"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)
	l.Styles.Title = listTitleStyle
	l.Styles.TitleBar = lipgloss.NewStyle().Padding(0, 0, 1, 2)
	l.Styles.FilterPrompt = lipgloss.NewStyle().Foreground(ui.ColorPrimary)
	l.Styles.FilterCursor = lipgloss.NewStyle().Foreground(ui.ColorPrimary)

	return listModel{
		list:  l,
		store: st,
	}
}

// boardsLoadedMsg is sent when boards are loaded
type boardsLoadedMsg struct {
	items []list.Item
}

// boardsChangedMsg is sent after a mutation so the list reloads
type boardsChangedMsg struct {
	status string
}

// errMsg is sent when an error occurs
type errMsg struct {
	err error
}

// selectBoardMsg is sent when a board is selected
type selectBoardMsg struct {
	board *model.Board
}

func (m listModel) Init() tea.Cmd {
	return m.loadBoards
}

// loadBoards snapshots the store in insertion order with authors resolved.
func (m listModel) loadBoards() tea.Msg {
	boards := m.store.Boards()
	items := make([]list.Item, len(boards))
	for i, b := range boards {
		item := boardItem{board: b}
		if u, err := m.store.User(b.UserID); err == nil {
			item.author = u.FullName()
			item.found = true
		}
		items[i] = item
	}
	return boardsLoadedMsg{items}
}

func (m listModel) Update(msg tea.Msg) (listModel, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// Reserve space for border, footer and status line
		m.list.SetSize(msg.Width-2, msg.Height-5)

	case boardsLoadedMsg:
		cmd = m.list.SetItems(msg.items)
		return m, cmd

	case tea.KeyMsg:
		if m.list.FilterState() != list.Filtering {
			switch msg.String() {
			case "enter":
				if item, ok := m.list.SelectedItem().(boardItem); ok {
					return m, func() tea.Msg {
						return selectBoardMsg{board: item.board}
					}
				}
			case "n", "c":
				return m, func() tea.Msg { return openCreateFormMsg{} }
			case "d":
				if item, ok := m.list.SelectedItem().(boardItem); ok {
					return m, func() tea.Msg {
						return openDeleteFormMsg{board: item.board}
					}
				}
			case "?":
				return m, func() tea.Msg { return openHelpMsg{} }
			}
		}
	}

	// Always forward to the list component
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m listModel) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ui.ColorMuted).
		Width(m.width - 2).
		Height(m.height - 5)

	content := border.Render(m.list.View())

	help := keyHint("enter", "view") + "  " +
		keyHint("n", "new") + "  " +
		keyHint("d", "delete") + "  " +
		keyHint("/", "filter") + "  " +
		keyHint("?", "help") + "  " +
		keyHint("q", "quit")

	return content + "\n" + help
}
