package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/fwojciec/chatmd"
	"github.com/fwojciec/chatmd/ansi"
	"github.com/fwojciec/chatmd/fs"
	mdjson "github.com/fwojciec/chatmd/json"
)

// document is one parsed input.
type document struct {
	name   string
	blocks []chatmd.Block
}

// readDocuments expands args and parses each input in order. No args reads
// stdin.
func readDocuments(args []string, parser chatmd.Parser, stdin io.Reader, logger *log.Logger) ([]document, error) {
	if len(args) == 0 {
		args = []string{fs.Stdin}
	}
	paths, err := fs.Expand(args)
	if err != nil {
		return nil, err
	}

	docs := make([]document, 0, len(paths))
	for _, path := range paths {
		doc, err := readDocument(path, parser, stdin)
		if err != nil {
			return nil, err
		}
		logger.Debug("read input", "path", doc.name, "blocks", len(doc.blocks))
		docs = append(docs, doc)
	}
	return docs, nil
}

func readDocument(path string, parser chatmd.Parser, stdin io.Reader) (document, error) {
	if path == fs.Stdin {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return document{}, fmt.Errorf("read stdin: %w", err)
		}
		return document{name: "stdin", blocks: parser.Parse(normalize(string(data)))}, nil
	}

	if strings.EqualFold(filepath.Ext(path), ".json") {
		blocks, err := mdjson.Load(path)
		if err != nil {
			return document{}, fmt.Errorf("load %s: %w", path, err)
		}
		return document{name: path, blocks: blocks}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return document{}, fmt.Errorf("read %s: %w", path, err)
	}
	return document{name: path, blocks: parser.Parse(normalize(string(data)))}, nil
}

// normalize strips terminal escapes and drops a single trailing newline so
// files ending in "\n" do not produce a trailing Spacer.
func normalize(s string) string {
	return strings.TrimSuffix(ansi.Clean(s), "\n")
}

// joinDocuments concatenates documents separated by a HorizontalRule.
func joinDocuments(docs []document) []chatmd.Block {
	var out []chatmd.Block
	for i, d := range docs {
		if i > 0 {
			out = append(out, chatmd.HorizontalRule{})
		}
		out = append(out, d.blocks...)
	}
	return out
}

func title(docs []document) string {
	switch len(docs) {
	case 0:
		return ""
	case 1:
		return docs[0].name
	default:
		return fmt.Sprintf("%s (+%d more)", docs[0].name, len(docs)-1)
	}
}
