package lipgloss

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/chatmd"
)

type styles struct {
	headings   [5]lipgloss.Style // indexed by level, 1-4
	bold       lipgloss.Style
	italic     lipgloss.Style
	boldItalic lipgloss.Style
	strike     lipgloss.Style
	code       lipgloss.Style
	link       lipgloss.Style
	quote      lipgloss.Style
	success    lipgloss.Style
	muted      lipgloss.Style
	accent     lipgloss.Style
	done       lipgloss.Style
}

func newStyles(theme chatmd.Theme) styles {
	accent := lipgloss.NewStyle().Foreground(ansiColor(theme.Accent)).Bold(true)
	s := styles{
		bold:       lipgloss.NewStyle().Bold(true),
		italic:     lipgloss.NewStyle().Italic(true),
		boldItalic: lipgloss.NewStyle().Bold(true).Italic(true),
		strike:     lipgloss.NewStyle().Strikethrough(true),
		code:       lipgloss.NewStyle().Foreground(ansiColor(theme.Code)),
		link:       lipgloss.NewStyle().Foreground(ansiColor(theme.Link)).Underline(true),
		quote:      lipgloss.NewStyle().Foreground(ansiColor(theme.Quote)),
		success:    lipgloss.NewStyle().Foreground(ansiColor(theme.Success)),
		muted:      lipgloss.NewStyle().Foreground(ansiColor(theme.Muted)).Faint(true),
		accent:     accent,
		done:       lipgloss.NewStyle().Foreground(ansiColor(theme.Muted)).Strikethrough(true),
	}
	s.headings[1] = accent.Underline(true)
	s.headings[2] = accent
	s.headings[3] = lipgloss.NewStyle().Foreground(ansiColor(theme.Accent))
	s.headings[4] = lipgloss.NewStyle().Foreground(ansiColor(theme.Accent)).Italic(true)
	return s
}

func ansiColor(index int) lipgloss.TerminalColor {
	if index < 0 {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(strconv.Itoa(index))
}
