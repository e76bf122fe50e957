package tui

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/hmans/boards/internal/model"
	"github.com/hmans/boards/internal/store"
	"github.com/hmans/boards/internal/ui"
)

// Cached glamour renderer - initialized once
var (
	glamourRenderer     *glamour.TermRenderer
	glamourRendererOnce sync.Once
)

func getGlamourRenderer() *glamour.TermRenderer {
	glamourRendererOnce.Do(func() {
		var err error
		glamourRenderer, err = glamour.NewTermRenderer(glamour.WithAutoStyle())
		if err != nil {
			glamourRenderer = nil
		}
	})
	return glamourRenderer
}

// backToListMsg signals navigation back to the list
type backToListMsg struct{}

// detailModel displays a single board with its author and content
type detailModel struct {
	viewport viewport.Model
	board    *model.Board
	author   *model.User
	others   int // other boards by the same author
	width    int
	height   int
	ready    bool
}

const detailHeaderHeight = 6

func newDetailModel(b *model.Board, st *store.Store, width, height int) detailModel {
	m := detailModel{
		board:  b,
		width:  width,
		height: height,
	}

	if u, err := st.User(b.UserID); err == nil {
		m.author = u
		m.others = len(st.BoardsByUser(u.ID)) - 1
	}

	if width > 0 && height > 0 {
		m.viewport = viewport.New(width-4, max(1, height-detailHeaderHeight-2))
		m.viewport.SetContent(m.renderBody())
		m.ready = true
	}

	return m
}

func (m detailModel) Init() tea.Cmd {
	return nil
}

func (m detailModel) Update(msg tea.Msg) (detailModel, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		vpWidth := msg.Width - 4
		vpHeight := max(1, msg.Height-detailHeaderHeight-2)

		if !m.ready {
			m.viewport = viewport.New(vpWidth, vpHeight)
			m.ready = true
		} else {
			m.viewport.Width = vpWidth
			m.viewport.Height = vpHeight
		}
		m.viewport.SetContent(m.renderBody())

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "backspace":
			return m, func() tea.Msg {
				return backToListMsg{}
			}
		case "d":
			b := m.board
			return m, func() tea.Msg {
				return openDeleteFormMsg{board: b}
			}
		case "?":
			return m, func() tea.Msg { return openHelpMsg{} }
		}
	}

	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m detailModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	bodyBorder := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ui.ColorPrimary).
		Width(m.width - 4)
	body := bodyBorder.Render(m.viewport.View())

	scrollPct := int(m.viewport.ScrollPercent() * 100)
	footer := helpStyle.Render(fmt.Sprintf("%d%%", scrollPct)) + "  " +
		keyHint("j/k", "scroll") + "  " +
		keyHint("d", "delete") + "  " +
		keyHint("esc", "back") + "  " +
		keyHint("q", "quit")

	return m.renderHeader() + "\n" + body + "\n" + footer
}

func (m detailModel) renderHeader() string {
	var header strings.Builder
	header.WriteString(detailTitleStyle.Render(m.board.Title))
	header.WriteString("\n")
	header.WriteString(ui.ID.Render(m.board.ID) + "  ")

	if m.author != nil {
		header.WriteString("by " + ui.Bold.Render(m.author.FullName()))
		if m.others > 0 {
			header.WriteString(ui.Muted.Render(fmt.Sprintf("  (%d more)", m.others)))
		}
	} else {
		header.WriteString("by " + ui.RenderAuthor("", false) + ui.Muted.Render(" userId "+m.board.UserID))
	}

	headerBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ui.ColorMuted).
		Padding(0, 1).
		Width(m.width - 4)

	return headerBox.Render(header.String())
}

// renderBody renders the board content as markdown, falling back to the
// raw text when the renderer is unavailable.
func (m detailModel) renderBody() string {
	if m.board.Content == "" {
		return lipgloss.NewStyle().
			Foreground(ui.ColorMuted).
			Padding(0, 1).
			Render("No content")
	}

	renderer := getGlamourRenderer()
	if renderer == nil {
		return m.board.Content
	}

	rendered, err := renderer.Render(m.board.Content)
	if err != nil {
		return m.board.Content
	}

	return strings.TrimSpace(rendered)
}
