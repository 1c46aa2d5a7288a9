package bubbletea

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/chatmd"
)

var _ tea.Model = Model{}

// statusHeight is the number of rows reserved below the viewport.
const statusHeight = 1

// Model is the Bubble Tea model for the pager.
type Model struct {
	// Viewport is the scrollable document area. Exported for test access.
	Viewport viewport.Model

	title    string
	blocks   []chatmd.Block
	renderer chatmd.Renderer
	styles   Styles
	ready    bool
}

// New creates a pager showing blocks rendered by renderer.
func New(title string, blocks []chatmd.Block, renderer chatmd.Renderer, theme chatmd.Theme) Model {
	return Model{
		title:    title,
		blocks:   blocks,
		renderer: renderer,
		styles:   NewStyles(theme),
	}
}

// DocumentMsg replaces the document shown by the pager.
type DocumentMsg struct {
	Title  string
	Blocks []chatmd.Block
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg), nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case DocumentMsg:
		m.title = msg.Title
		m.blocks = msg.Blocks
		if m.ready {
			m.Viewport.SetContent(m.renderContent())
			m.Viewport.GotoTop()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.Viewport, cmd = m.Viewport.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	var b strings.Builder
	b.WriteString(m.Viewport.View())
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	return b.String()
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) Model {
	vpHeight := max(msg.Height-statusHeight, 1)

	if !m.ready {
		m.Viewport = viewport.New(msg.Width, vpHeight)
		m.ready = true
	} else {
		m.Viewport.Width = msg.Width
		m.Viewport.Height = vpHeight
	}
	// Re-render so wrapping follows the new width.
	m.Viewport.SetContent(m.renderContent())
	return m
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	case "g", "home":
		m.Viewport.GotoTop()
		return m, nil
	case "G", "end":
		m.Viewport.GotoBottom()
		return m, nil
	}
	var cmd tea.Cmd
	m.Viewport, cmd = m.Viewport.Update(msg)
	return m, cmd
}

func (m Model) renderContent() string {
	if m.renderer == nil || len(m.blocks) == 0 {
		return ""
	}
	return m.renderer.Render(m.blocks, m.Viewport.Width)
}

func (m Model) statusLine() string {
	percent := m.styles.Muted.Render(fmt.Sprintf("%3.f%%", m.Viewport.ScrollPercent()*100))
	hint := m.styles.Muted.Render("q to quit")
	title := m.styles.Title.Render(m.title)

	gap := m.Viewport.Width - lipgloss.Width(title) - lipgloss.Width(hint) - lipgloss.Width(percent) - 2
	if gap < 1 {
		return title + " " + percent
	}
	return title + " " + strings.Repeat(" ", gap) + hint + " " + percent
}
