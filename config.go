package chatmd

import "fmt"

// Parser names accepted by Config.Parser.
const (
	ParserMarkdown = "markdown"
	ParserGoldmark = "goldmark"
)

// Config holds presentation settings shared by the command-line tools.
type Config struct {
	Width     int    // 0 = renderer default
	Parser    string // ParserMarkdown or ParserGoldmark
	CodeStyle string // chroma style name; empty disables highlighting
	Pager     bool
	Theme     Theme
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Width:     80,
		Parser:    ParserMarkdown,
		CodeStyle: "monokai",
		Theme:     DefaultTheme(),
	}
}

// Validate checks the config for out-of-range values.
func (c Config) Validate() error {
	if c.Width < 0 {
		return fmt.Errorf("width must be non-negative, got %d: %w", c.Width, ErrValidation)
	}
	switch c.Parser {
	case ParserMarkdown, ParserGoldmark:
	default:
		return fmt.Errorf("parser %q: %w", c.Parser, ErrUnknownParser)
	}
	colors := []struct {
		name  string
		index int
	}{
		{"accent", c.Theme.Accent},
		{"link", c.Theme.Link},
		{"code", c.Theme.Code},
		{"quote", c.Theme.Quote},
		{"success", c.Theme.Success},
		{"muted", c.Theme.Muted},
	}
	for _, col := range colors {
		if col.index > 255 {
			return fmt.Errorf("theme %s must be at most 255, got %d: %w", col.name, col.index, ErrValidation)
		}
	}
	return nil
}
