package markdown

import (
	"regexp"
	"strings"

	"github.com/fwojciec/chatmd"
)

const fence = "```"

type mode int

const (
	modeNormal mode = iota
	modeCode
	modeTable
)

var (
	taskRe      = regexp.MustCompile(`^(?:[*+-] )?\[([ x])\] `)
	bulletRe    = regexp.MustCompile(`^[*+-] `)
	orderedRe   = regexp.MustCompile(`^(\d+)\. `)
	ruleRe      = regexp.MustCompile(`^[-*_]{3,}$`)
	delimiterRe = regexp.MustCompile(`^\|?[\s\-|:]+\|?$`)
)

// scanner is the state carried from one line to the next. The zero value is
// the normal state. A scanner is a value: step returns the next state
// rather than mutating the receiver.
type scanner struct {
	mode     mode
	language string   // modeCode
	code     []string // modeCode, raw lines
	rows     []string // modeTable, raw lines
}

// step consumes one source line and returns the next state together with
// the blocks completed by this line.
func (s scanner) step(line string) (scanner, []chatmd.Block) {
	trimmed := strings.TrimSpace(line)

	if s.mode == modeCode {
		if strings.HasPrefix(trimmed, fence) {
			return scanner{}, []chatmd.Block{s.codeBlock()}
		}
		s.code = append(s.code, line)
		return s, nil
	}

	var out []chatmd.Block

	if strings.HasPrefix(trimmed, fence) {
		// A fence ends a pending table so blocks stay in source order.
		out = append(out, s.flushTable()...)
		if code, ok := singleLineFence(trimmed); ok {
			return scanner{}, append(out, chatmd.InlineCode{Code: code})
		}
		return scanner{
			mode:     modeCode,
			language: strings.TrimSpace(strings.TrimPrefix(trimmed, fence)),
			code:     []string{},
		}, out
	}

	if strings.Contains(trimmed, "|") {
		s.mode = modeTable
		s.rows = append(s.rows, line)
		return s, nil
	}
	if s.mode == modeTable {
		out = append(out, s.flushTable()...)
		s = scanner{}
	}

	if b, ok := classify(line, trimmed); ok {
		out = append(out, b)
	}
	return s, out
}

// finish flushes whatever the scanner is still holding at end of input.
// An unterminated code fence is emitted as a best-effort code block.
func (s scanner) finish() []chatmd.Block {
	switch s.mode {
	case modeCode:
		return []chatmd.Block{s.codeBlock()}
	case modeTable:
		return s.flushTable()
	}
	return nil
}

func (s scanner) codeBlock() chatmd.CodeBlock {
	return chatmd.CodeBlock{Language: s.language, Lines: s.code}
}

func (s scanner) flushTable() []chatmd.Block {
	if s.mode != modeTable {
		return nil
	}
	t, ok := buildTable(s.rows)
	if !ok {
		return nil
	}
	return []chatmd.Block{t}
}

// singleLineFence reports whether trimmed is a complete ```code``` line.
func singleLineFence(trimmed string) (string, bool) {
	if len(trimmed) <= 2*len(fence) || !strings.HasSuffix(trimmed, fence) {
		return "", false
	}
	return strings.ReplaceAll(trimmed, fence, ""), true
}

// classify maps a line that is neither code nor table content to at most
// one block. Checks run from the most specific form to the most general.
func classify(line, trimmed string) (chatmd.Block, bool) {
	if isDelimiter(trimmed) {
		return nil, false
	}
	if level, rest, ok := heading(trimmed); ok {
		return chatmd.Heading{Level: level, Spans: Inline(rest)}, true
	}
	if rest, ok := strings.CutPrefix(trimmed, "> "); ok {
		return chatmd.Blockquote{Spans: Inline(rest)}, true
	}
	if ruleRe.MatchString(trimmed) {
		return chatmd.HorizontalRule{}, true
	}
	if m := taskRe.FindStringSubmatch(trimmed); m != nil {
		return chatmd.TaskItem{
			Checked: m[1] == "x",
			Spans:   Inline(trimmed[len(m[0]):]),
		}, true
	}
	if m := bulletRe.FindString(trimmed); m != "" {
		return chatmd.BulletItem{Spans: Inline(trimmed[len(m):])}, true
	}
	if m := orderedRe.FindStringSubmatch(trimmed); m != nil {
		return chatmd.OrderedItem{
			Ordinal: m[1],
			Spans:   Inline(trimmed[len(m[0]):]),
		}, true
	}
	if trimmed == "" {
		return chatmd.Spacer{}, true
	}
	// Paragraphs keep the untrimmed line so inline matching sees the
	// original spacing.
	return chatmd.Paragraph{Spans: Inline(line)}, true
}

// heading recognises 1-4 leading hashes followed by a space.
func heading(trimmed string) (int, string, bool) {
	n := 0
	for n < len(trimmed) && trimmed[n] == '#' {
		n++
	}
	if n < 1 || n > 4 || n >= len(trimmed) || trimmed[n] != ' ' {
		return 0, "", false
	}
	return n, trimmed[n+1:], true
}

// isDelimiter matches a stray table delimiter line: only dashes, colons,
// pipes and spaces. This includes "---" and "- - -", so dash rules never
// reach the horizontal rule check.
func isDelimiter(trimmed string) bool {
	return delimiterRe.MatchString(trimmed)
}
