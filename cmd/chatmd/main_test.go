package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/fwojciec/chatmd"
	"github.com/fwojciec/chatmd/goldmark"
	mdjson "github.com/fwojciec/chatmd/json"
	"github.com/fwojciec/chatmd/markdown"
	"github.com/fwojciec/chatmd/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// emptyConfig writes an empty config file so tests never read the user's.
func emptyConfig(t *testing.T) environment {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, nil, 0o644))
	return environment{ConfigPath: path}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func runCmd(t *testing.T, env environment, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), args, env, strings.NewReader(stdin), &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func discardLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestRun_JSONFromStdin(t *testing.T) {
	t.Parallel()
	source := "# Hi\n\n- [x] done\n"

	out, _, err := runCmd(t, emptyConfig(t), source, "-format", "json")
	require.NoError(t, err)

	got, err := mdjson.UnmarshalBlocks([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, markdown.Parse("# Hi\n\n- [x] done"), got)
}

func TestRun_GoldmarkParser(t *testing.T) {
	t.Parallel()
	source := "***both***"

	out, _, err := runCmd(t, emptyConfig(t), source, "-format", "json", "-parser", "goldmark")
	require.NoError(t, err)

	got, err := mdjson.UnmarshalBlocks([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, goldmark.Parse(source), got)
}

func TestRun_ANSI(t *testing.T) {
	t.Parallel()
	out, _, err := runCmd(t, emptyConfig(t), "# Title\n\nsome **bold** text\n```go\nx := 1\n```", "-style", "none")
	require.NoError(t, err)
	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "bold")
	assert.Contains(t, out, "x := 1")
	assert.True(t, strings.HasSuffix(out, "\n"))
}

func TestRun_MultipleFilesAreSeparated(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeFile(t, dir, "a.md", "first\n")
	writeFile(t, dir, "b.md", "second\n")

	out, _, err := runCmd(t, emptyConfig(t), "", "-format", "json", filepath.Join(dir, "*.md"))
	require.NoError(t, err)

	got, err := mdjson.UnmarshalBlocks([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, []chatmd.Block{
		chatmd.Paragraph{Spans: []chatmd.Span{chatmd.Text{Text: "first"}}},
		chatmd.HorizontalRule{},
		chatmd.Paragraph{Spans: []chatmd.Span{chatmd.Text{Text: "second"}}},
	}, got)
}

func TestRun_JSONInputIsLoaded(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	blocks := []chatmd.Block{chatmd.CodeBlock{Language: "sh", Lines: []string{"make"}}}
	path := filepath.Join(dir, "doc.json")
	require.NoError(t, mdjson.Save(path, blocks))

	out, _, err := runCmd(t, emptyConfig(t), "", "-format", "json", path)
	require.NoError(t, err)

	got, err := mdjson.UnmarshalBlocks([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, blocks, got)
}

func TestRun_OutputFile(t *testing.T) {
	t.Parallel()

	t.Run("json", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "out", "doc.json")

		out, _, err := runCmd(t, emptyConfig(t), "hello", "-format", "json", "-o", path)
		require.NoError(t, err)
		assert.Empty(t, out)

		got, err := mdjson.Load(path)
		require.NoError(t, err)
		assert.Equal(t, markdown.Parse("hello"), got)
	})

	t.Run("ansi", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "doc.txt")

		out, _, err := runCmd(t, emptyConfig(t), "hello", "-o", path)
		require.NoError(t, err)
		assert.Empty(t, out)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "hello")
	})
}

func TestRun_Errors(t *testing.T) {
	t.Parallel()

	t.Run("unknown format", func(t *testing.T) {
		t.Parallel()
		_, _, err := runCmd(t, emptyConfig(t), "", "-format", "html")
		require.ErrorIs(t, err, chatmd.ErrValidation)
	})

	t.Run("unknown parser", func(t *testing.T) {
		t.Parallel()
		_, _, err := runCmd(t, emptyConfig(t), "", "-parser", "commonmark")
		require.ErrorIs(t, err, chatmd.ErrUnknownParser)
	})

	t.Run("missing input file", func(t *testing.T) {
		t.Parallel()
		_, _, err := runCmd(t, emptyConfig(t), "", filepath.Join(t.TempDir(), "missing.md"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("glob without matches", func(t *testing.T) {
		t.Parallel()
		_, _, err := runCmd(t, emptyConfig(t), "", filepath.Join(t.TempDir(), "*.md"))
		require.ErrorIs(t, err, chatmd.ErrValidation)
	})

	t.Run("undefined flag", func(t *testing.T) {
		t.Parallel()
		_, stderr, err := runCmd(t, emptyConfig(t), "", "-colour")
		require.Error(t, err)
		assert.Contains(t, stderr, "colour")
	})
}

func TestRun_VerboseLogs(t *testing.T) {
	t.Parallel()
	_, stderr, err := runCmd(t, emptyConfig(t), "hi", "-format", "json", "-verbose")
	require.NoError(t, err)
	assert.Contains(t, stderr, "parsed input")
	assert.Contains(t, stderr, "chatmd")
}

func TestResolveConfig(t *testing.T) {
	t.Parallel()

	t.Run("config file values apply", func(t *testing.T) {
		t.Parallel()
		path := writeFile(t, t.TempDir(), "config.toml", "width = 60\nparser = \"goldmark\"\n")
		opts, err := parseFlags(nil, io.Discard)
		require.NoError(t, err)

		cfg, err := resolveConfig(opts, environment{ConfigPath: path}, discardLogger())
		require.NoError(t, err)
		assert.Equal(t, 60, cfg.Width)
		assert.Equal(t, chatmd.ParserGoldmark, cfg.Parser)
	})

	t.Run("explicit flags override config", func(t *testing.T) {
		t.Parallel()
		path := writeFile(t, t.TempDir(), "config.toml", "width = 60\npager = true\n")
		opts, err := parseFlags([]string{"-width", "0", "-pager=false", "-style", "dracula"}, io.Discard)
		require.NoError(t, err)

		cfg, err := resolveConfig(opts, environment{ConfigPath: path}, discardLogger())
		require.NoError(t, err)
		assert.Equal(t, 0, cfg.Width)
		assert.False(t, cfg.Pager)
		assert.Equal(t, "dracula", cfg.CodeStyle)
	})

	t.Run("style none disables highlighting", func(t *testing.T) {
		t.Parallel()
		opts, err := parseFlags([]string{"-style", "none"}, io.Discard)
		require.NoError(t, err)

		cfg, err := resolveConfig(opts, emptyConfig(t), discardLogger())
		require.NoError(t, err)
		assert.Empty(t, cfg.CodeStyle)
	})

	t.Run("config flag takes precedence over environment", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		fromFlag := writeFile(t, dir, "flag.toml", "width = 42\n")
		fromEnv := writeFile(t, dir, "env.toml", "width = 99\n")
		opts, err := parseFlags([]string{"-config", fromFlag}, io.Discard)
		require.NoError(t, err)

		cfg, err := resolveConfig(opts, environment{ConfigPath: fromEnv}, discardLogger())
		require.NoError(t, err)
		assert.Equal(t, 42, cfg.Width)
	})

	t.Run("explicit missing config is an error", func(t *testing.T) {
		t.Parallel()
		opts, err := parseFlags(nil, io.Discard)
		require.NoError(t, err)

		_, err = resolveConfig(opts, environment{ConfigPath: filepath.Join(t.TempDir(), "missing.toml")}, discardLogger())
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("negative width flag is rejected", func(t *testing.T) {
		t.Parallel()
		opts, err := parseFlags([]string{"-width", "-5"}, io.Discard)
		require.NoError(t, err)

		_, err = resolveConfig(opts, emptyConfig(t), discardLogger())
		require.ErrorIs(t, err, chatmd.ErrValidation)
	})
}

func TestResolveParser(t *testing.T) {
	t.Parallel()

	p, err := resolveParser(chatmd.ParserMarkdown)
	require.NoError(t, err)
	assert.IsType(t, markdown.Parser{}, p)

	p, err = resolveParser(chatmd.ParserGoldmark)
	require.NoError(t, err)
	assert.IsType(t, goldmark.Parser{}, p)

	_, err = resolveParser("")
	require.ErrorIs(t, err, chatmd.ErrUnknownParser)
}

func TestResolveFormat(t *testing.T) {
	t.Parallel()

	for _, name := range []string{formatANSI, formatJSON} {
		got, err := resolveFormat(name)
		require.NoError(t, err)
		assert.Equal(t, name, got)
	}

	_, err := resolveFormat("")
	require.ErrorIs(t, err, chatmd.ErrValidation)
}

func TestReadDocuments(t *testing.T) {
	t.Parallel()

	t.Run("defaults to stdin", func(t *testing.T) {
		t.Parallel()
		var sources []string
		parser := &mock.Parser{ParseFn: func(source string) []chatmd.Block {
			sources = append(sources, source)
			return []chatmd.Block{chatmd.Spacer{}}
		}}

		docs, err := readDocuments(nil, parser, strings.NewReader("a\r\nb\n"), discardLogger())
		require.NoError(t, err)
		require.Len(t, docs, 1)
		assert.Equal(t, "stdin", docs[0].name)
		assert.Equal(t, []string{"a\nb"}, sources)
	})

	t.Run("files are parsed in argument order", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		second := writeFile(t, dir, "2.md", "two")
		first := writeFile(t, dir, "1.md", "one")
		parser := &mock.Parser{ParseFn: func(source string) []chatmd.Block {
			return []chatmd.Block{chatmd.Paragraph{Spans: []chatmd.Span{chatmd.Text{Text: source}}}}
		}}

		docs, err := readDocuments([]string{second, first}, parser, strings.NewReader(""), discardLogger())
		require.NoError(t, err)
		require.Len(t, docs, 2)
		assert.Equal(t, second, docs[0].name)
		assert.Equal(t, first, docs[1].name)
		assert.Equal(t, "(+1 more)", strings.TrimPrefix(title(docs), second+" "))
	})
}

func TestJoinDocuments(t *testing.T) {
	t.Parallel()

	assert.Nil(t, joinDocuments(nil))

	got := joinDocuments([]document{
		{name: "a", blocks: []chatmd.Block{chatmd.Spacer{}}},
		{name: "b", blocks: nil},
		{name: "c", blocks: []chatmd.Block{chatmd.InlineCode{Code: "x"}}},
	})
	assert.Equal(t, []chatmd.Block{
		chatmd.Spacer{},
		chatmd.HorizontalRule{},
		chatmd.HorizontalRule{},
		chatmd.InlineCode{Code: "x"},
	}, got)
}

func TestRun_StripsTerminalEscapes(t *testing.T) {
	t.Parallel()
	out, _, err := runCmd(t, emptyConfig(t), "\x1b]0;title\x07\x1b[31mred\x1b[0m", "-format", "json")
	require.NoError(t, err)

	got, err := mdjson.UnmarshalBlocks([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, []chatmd.Block{chatmd.Paragraph{Spans: []chatmd.Span{chatmd.Text{Text: "red"}}}}, got)
}
