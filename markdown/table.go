package markdown

import (
	"regexp"
	"strings"

	"github.com/fwojciec/chatmd"
)

var delimiterCellRe = regexp.MustCompile(`^:?-+:?$`)

// buildTable assembles raw pipe rows into a table. The first row is the
// header; delimiter rows such as |---|:--:| are dropped. Rows are not padded
// or truncated to the header width. It reports false when no rows remain.
func buildTable(rows []string) (chatmd.Table, bool) {
	var (
		t         chatmd.Table
		hasHeader bool
	)
	for _, raw := range rows {
		cells := splitRow(raw)
		if isDelimiterRow(cells) {
			continue
		}
		spans := make([][]chatmd.Span, len(cells))
		for i, c := range cells {
			spans[i] = Inline(c)
		}
		if !hasHeader {
			t.Header = spans
			hasHeader = true
			continue
		}
		t.Rows = append(t.Rows, spans)
	}
	return t, hasHeader
}

// splitRow splits a raw row on pipes and trims each cell. Only the empty
// cells produced by a leading or trailing pipe are discarded.
func splitRow(raw string) []string {
	cells := strings.Split(raw, "|")
	for i := range cells {
		cells[i] = strings.TrimSpace(cells[i])
	}
	if len(cells) > 0 && cells[0] == "" {
		cells = cells[1:]
	}
	if len(cells) > 0 && cells[len(cells)-1] == "" {
		cells = cells[:len(cells)-1]
	}
	return cells
}

func isDelimiterRow(cells []string) bool {
	found := false
	for _, c := range cells {
		switch {
		case c == "":
		case delimiterCellRe.MatchString(c):
			found = true
		default:
			return false
		}
	}
	return found
}
