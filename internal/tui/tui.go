package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"

	"github.com/hmans/boards/internal/model"
	"github.com/hmans/boards/internal/store"
)

// viewState represents which view is currently active
type viewState int

const (
	viewList viewState = iota
	viewDetail
	viewForm
	viewHelp
)

// App is the main TUI application model
type App struct {
	state  viewState
	prev   viewState // view to return to from help
	list   listModel
	detail detailModel
	form   formModel
	help   helpOverlayModel
	store  *store.Store
	width  int
	height int
	status string
	err    error
}

// New creates a new TUI application
func New(st *store.Store) *App {
	return &App{
		state: viewList,
		store: st,
		list:  newListModel(st),
	}
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.list.Init()
}

// Update handles messages
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help = newHelpOverlayModel(msg.Width, msg.Height)
		if a.state != viewList {
			a.list, _ = a.list.Update(msg)
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return a, tea.Quit
		case "q":
			if a.state == viewDetail {
				return a, tea.Quit
			}
			// For list, only quit if not filtering
			if a.state == viewList && a.list.list.FilterState() != list.Filtering {
				return a, tea.Quit
			}
		}

	case openHelpMsg:
		a.prev = a.state
		a.state = viewHelp
		return a, nil

	case closeHelpMsg:
		a.state = a.prev
		return a, nil

	case selectBoardMsg:
		a.state = viewDetail
		a.detail = newDetailModel(msg.board, a.store, a.width, a.height)
		return a, a.detail.Init()

	case backToListMsg:
		a.state = viewList
		return a, nil

	case openCreateFormMsg:
		a.state = viewForm
		a.form = newCreateForm(a.store.Users(), a.width)
		return a, a.form.Init()

	case openDeleteFormMsg:
		a.state = viewForm
		a.form = newDeleteForm(msg.board, a.width)
		return a, a.form.Init()

	case formCancelledMsg:
		a.state = viewList
		return a, nil

	case createBoardMsg:
		a.state = viewList
		return a, a.createBoard(msg.board)

	case deleteBoardMsg:
		a.state = viewList
		return a, a.deleteBoard(msg.id)

	case boardsChangedMsg:
		a.status = msg.status
		a.err = nil
		return a, a.list.loadBoards

	case errMsg:
		a.err = msg.err
	}

	// Forward all messages to the current view
	switch a.state {
	case viewList:
		a.list, cmd = a.list.Update(msg)
	case viewDetail:
		a.detail, cmd = a.detail.Update(msg)
	case viewForm:
		a.form, cmd = a.form.Update(msg)
	case viewHelp:
		a.help, cmd = a.help.Update(msg)
	}

	return a, cmd
}

func (a *App) createBoard(b *model.Board) tea.Cmd {
	return func() tea.Msg {
		created, err := a.store.CreateBoard(b)
		if err != nil {
			return errMsg{err}
		}
		return boardsChangedMsg{status: "Posted board " + created.ID}
	}
}

func (a *App) deleteBoard(id string) tea.Cmd {
	return func() tea.Msg {
		if !a.store.DeleteBoard(id) {
			return boardsChangedMsg{status: "Board " + id + " was already gone"}
		}
		return boardsChangedMsg{status: "Deleted board " + id}
	}
}

// View renders the current view
func (a *App) View() string {
	var view string
	switch a.state {
	case viewList:
		view = a.list.View()
	case viewDetail:
		view = a.detail.View()
	case viewForm:
		view = a.form.View()
	case viewHelp:
		view = lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, a.help.View())
	}

	switch {
	case a.err != nil:
		view += "\n" + errorStyle.Render("Error: "+a.err.Error())
	case a.status != "" && a.state == viewList:
		view += "\n" + statusStyle.Render(a.status)
	}
	return view
}

// Run starts the TUI application
func Run(st *store.Store) error {
	p := tea.NewProgram(New(st), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
