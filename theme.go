package chatmd

// Theme defines semantic color mappings using ANSI 256-color indices
// (0-255). Indices 0-15 follow the user's terminal theme, so the defaults
// match any color scheme. A negative index means no color.
type Theme struct {
	Accent  int // Headings, table headers
	Link    int // Links and image references
	Code    int // Inline code and unhighlighted code blocks
	Quote   int // Blockquote gutter
	Success int // Checked task markers
	Muted   int // Labels, rules, gutters, unchecked task markers
}

// DefaultTheme returns the default ANSI color mapping.
func DefaultTheme() Theme {
	return Theme{
		Accent:  5,
		Link:    4,
		Code:    2,
		Quote:   6,
		Success: 2,
		Muted:   8,
	}
}
