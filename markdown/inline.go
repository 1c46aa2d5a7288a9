package markdown

import (
	"cmp"
	"regexp"
	"slices"

	"github.com/fwojciec/chatmd"
)

type spanKind int

const (
	kindBoldItalic spanKind = iota
	kindBold
	kindItalic
	kindCode
	kindStrikethrough
	kindLink
	kindImage
)

type pattern struct {
	re   *regexp.Regexp
	kind spanKind
}

// patterns in priority order. When two candidates start at the same
// offset, the one from the earlier pattern wins. Emphasis needs at least one
// character between its markers, so a bare "**" never matches.
var patterns = []pattern{
	{regexp.MustCompile(`\*\*\*(.+?)\*\*\*`), kindBoldItalic},
	{regexp.MustCompile(`\*\*(.+?)\*\*`), kindBold},
	{regexp.MustCompile(`\*(.+?)\*`), kindItalic},
	{regexp.MustCompile(`__(.+?)__`), kindBold},
	{regexp.MustCompile(`_(.+?)_`), kindItalic},
	{regexp.MustCompile("`([^`]+)`"), kindCode},
	{regexp.MustCompile(`~~(.+?)~~`), kindStrikethrough},
	{regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`), kindLink},
	{regexp.MustCompile(`!\[([^\]]*)\]\(([^)]+)\)`), kindImage},
}

// candidate is a provisional inline match. Offsets are byte offsets into
// the tokenized text; end is exclusive.
type candidate struct {
	start   int
	end     int
	kind    spanKind
	content string
	url     string
}

// Inline tokenizes a single line into non-overlapping spans. Content inside
// a match is literal: emphasis nested in emphasis is not parsed again.
// Unterminated markers pass through as text. A line with no matches yields
// a single Text span; an empty line yields no spans.
func Inline(text string) []chatmd.Span {
	if text == "" {
		return nil
	}
	accepted := firstMatchWins(candidates(text), func(c candidate) (int, int) {
		return c.start, c.end
	})
	if len(accepted) == 0 {
		return []chatmd.Span{chatmd.Text{Text: text}}
	}

	spans := make([]chatmd.Span, 0, 2*len(accepted)+1)
	cursor := 0
	for _, c := range accepted {
		if c.start > cursor {
			spans = append(spans, chatmd.Text{Text: text[cursor:c.start]})
		}
		spans = append(spans, c.span())
		cursor = c.end
	}
	if cursor < len(text) {
		spans = append(spans, chatmd.Text{Text: text[cursor:]})
	}
	return spans
}

// candidates runs every pattern once over text.
func candidates(text string) []candidate {
	var out []candidate
	for _, p := range patterns {
		for _, m := range p.re.FindAllStringSubmatchIndex(text, -1) {
			c := candidate{
				start:   m[0],
				end:     m[1],
				kind:    p.kind,
				content: text[m[2]:m[3]],
			}
			if len(m) >= 6 && m[4] >= 0 {
				c.url = text[m[4]:m[5]]
			}
			out = append(out, c)
		}
	}
	return out
}

func (c candidate) span() chatmd.Span {
	literal := []chatmd.Span{chatmd.Text{Text: c.content}}
	switch c.kind {
	case kindBoldItalic:
		return chatmd.BoldItalic{Children: literal}
	case kindBold:
		return chatmd.Bold{Children: literal}
	case kindItalic:
		return chatmd.Italic{Children: literal}
	case kindCode:
		return chatmd.CodeSpan{Code: c.content}
	case kindStrikethrough:
		return chatmd.Strikethrough{Children: literal}
	case kindLink:
		return chatmd.Link{Children: literal, URL: c.url}
	case kindImage:
		return chatmd.Image{Alt: c.content, URL: c.url}
	}
	return chatmd.Text{Text: c.content}
}

// firstMatchWins selects non-overlapping intervals greedily by start
// offset. The sort is stable, so among items with equal starts the one
// listed first is kept. The result is ordered by start.
func firstMatchWins[T any](items []T, bounds func(T) (start, end int)) []T {
	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, func(a, b T) int {
		as, _ := bounds(a)
		bs, _ := bounds(b)
		return cmp.Compare(as, bs)
	})
	var kept []T
	lastEnd := -1
	for _, it := range sorted {
		start, end := bounds(it)
		// Kept intervals are disjoint and sorted, so only the last one
		// can overlap a later-starting candidate.
		if len(kept) > 0 && start < lastEnd {
			continue
		}
		kept = append(kept, it)
		lastEnd = end
	}
	return kept
}
