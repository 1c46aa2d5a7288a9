package lipgloss

import (
	"bytes"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/chatmd"
	"github.com/mattn/go-runewidth"
)

const (
	cellSep      = " │ "
	ruleSep      = "─┼─"
	minCellWidth = 3
)

// renderTable lays the table out in aligned columns. Ragged rows keep their
// own cell count; missing cells are left blank. Columns shrink, widest
// first, until the table fits width; cells that no longer fit are
// truncated.
func renderTable(buf *bytes.Buffer, t chatmd.Table, s styles, width int) {
	cols := len(t.Header)
	for _, row := range t.Rows {
		cols = max(cols, len(row))
	}
	if cols == 0 {
		return
	}

	widths := make([]int, cols)
	measure := func(row [][]chatmd.Span) {
		for i, cell := range row {
			widths[i] = max(widths[i], lipgloss.Width(s.inline(cell)))
		}
	}
	measure(t.Header)
	for _, row := range t.Rows {
		measure(row)
	}
	fitColumns(widths, width-runewidth.StringWidth(cellSep)*(cols-1))

	writeRow(buf, t.Header, widths, s, s.accent)
	rule := make([]string, cols)
	for i, w := range widths {
		rule[i] = strings.Repeat("─", w)
	}
	buf.WriteString(s.muted.Render(strings.Join(rule, ruleSep)))
	buf.WriteString("\n")
	for _, row := range t.Rows {
		writeRow(buf, row, widths, s, lipgloss.NewStyle())
	}
}

// fitColumns shrinks the widest column one cell at a time until the sum of
// widths fits budget or every column is at the minimum.
func fitColumns(widths []int, budget int) {
	for {
		total, widest := 0, 0
		for i, w := range widths {
			total += w
			if w > widths[widest] {
				widest = i
			}
		}
		if total <= budget || widths[widest] <= minCellWidth {
			return
		}
		widths[widest]--
	}
}

func writeRow(buf *bytes.Buffer, row [][]chatmd.Span, widths []int, s styles, style lipgloss.Style) {
	cells := make([]string, len(widths))
	for i, w := range widths {
		if i >= len(row) {
			cells[i] = strings.Repeat(" ", w)
			continue
		}
		cells[i] = renderCell(row[i], w, s, style)
	}
	line := strings.Join(cells, cellSep)
	buf.WriteString(strings.TrimRight(line, " "))
	buf.WriteString("\n")
}

func renderCell(spans []chatmd.Span, w int, s styles, style lipgloss.Style) string {
	styled := s.inline(spans)
	visible := lipgloss.Width(styled)
	if visible > w {
		plain := runewidth.Truncate(chatmd.PlainText(spans), w, "…")
		return style.Render(plain) + strings.Repeat(" ", max(0, w-runewidth.StringWidth(plain)))
	}
	return style.Render(styled) + strings.Repeat(" ", w-visible)
}
