package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/hmans/boards/internal/model"
	"github.com/hmans/boards/internal/ui"
)

// openCreateFormMsg requests the post-board form
type openCreateFormMsg struct{}

// openDeleteFormMsg requests the delete confirmation for a board
type openDeleteFormMsg struct {
	board *model.Board
}

// formCancelledMsg is sent when a form is aborted
type formCancelledMsg struct{}

// createBoardMsg carries a completed post-board form
type createBoardMsg struct {
	board *model.Board
}

// deleteBoardMsg carries a confirmed deletion
type deleteBoardMsg struct {
	id string
}

// boardDraft holds the values bound to the post-board form fields.
type boardDraft struct {
	title   string
	content string
	author  string
	confirm bool
}

// formModel wraps a huh form and turns its completion into a message.
type formModel struct {
	form   *huh.Form
	draft  *boardDraft
	submit func(*boardDraft) tea.Msg
	width  int
	done   bool
}

func formKeyMap() *huh.KeyMap {
	km := huh.NewDefaultKeyMap()
	km.Quit = key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel"))
	return km
}

func newCreateForm(users []*model.User, width int) formModel {
	draft := &boardDraft{}

	var authorField huh.Field
	if len(users) > 0 {
		options := make([]huh.Option[string], len(users))
		for i, u := range users {
			options[i] = huh.NewOption(fmt.Sprintf("%s (%s)", u.FullName(), u.ID), u.ID)
		}
		draft.author = users[0].ID
		authorField = huh.NewSelect[string]().
			Title("Author").
			Options(options...).
			Value(&draft.author)
	} else {
		authorField = huh.NewInput().
			Title("Author ID").
			Value(&draft.author).
			Validate(required("author"))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&draft.title).
				Validate(required("title")),
			huh.NewText().
				Title("Content").
				Description("Markdown is rendered in the detail view").
				Value(&draft.content),
			authorField,
		),
	).WithShowHelp(true).WithKeyMap(formKeyMap())

	return formModel{
		form:  form,
		draft: draft,
		width: width,
		submit: func(d *boardDraft) tea.Msg {
			return createBoardMsg{board: &model.Board{
				Title:   d.title,
				Content: d.content,
				UserID:  d.author,
			}}
		},
	}
}

func newDeleteForm(b *model.Board, width int) formModel {
	draft := &boardDraft{}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Delete board %s %q?", b.ID, b.Title)).
				Affirmative("Yes").
				Negative("No").
				Value(&draft.confirm),
		),
	).WithShowHelp(true).WithKeyMap(formKeyMap())

	id := b.ID
	return formModel{
		form:  form,
		draft: draft,
		width: width,
		submit: func(d *boardDraft) tea.Msg {
			if !d.confirm {
				return formCancelledMsg{}
			}
			return deleteBoardMsg{id: id}
		},
	}
}

func required(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errors.New(field + " is required")
		}
		return nil
	}
}

func (m formModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m formModel) Update(msg tea.Msg) (formModel, tea.Cmd) {
	// Messages can still arrive after the outcome has been sent
	if m.done {
		return m, nil
	}

	updated, cmd := m.form.Update(msg)
	if f, ok := updated.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		m.done = true
		draft := m.draft
		return m, func() tea.Msg { return m.submit(draft) }
	case huh.StateAborted:
		m.done = true
		return m, func() tea.Msg { return formCancelledMsg{} }
	}

	return m, cmd
}

func (m formModel) View() string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ui.ColorPrimary).
		Padding(1, 2)
	if m.width > 4 {
		border = border.Width(m.width - 4)
	}
	return border.Render(m.form.View())
}
