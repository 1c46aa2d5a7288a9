// Package fs resolves command-line inputs into the list of documents to
// render, expanding doublestar glob patterns against the filesystem.
package fs

import (
	"fmt"
	iofs "io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fwojciec/chatmd"
)

// Stdin is the argument that selects standard input.
const Stdin = "-"

// Expand resolves args into file paths. Plain paths and Stdin pass through
// unchanged; glob patterns are expanded relative to their static base and
// their matches are appended in sorted order. A pattern that is invalid or
// matches no files is a validation error.
func Expand(args []string) ([]string, error) {
	var out []string
	for _, arg := range args {
		if arg == Stdin || !isPattern(arg) {
			out = append(out, arg)
			continue
		}
		matches, err := glob(arg)
		if err != nil {
			return nil, err
		}
		out = append(out, matches...)
	}
	return out, nil
}

func isPattern(arg string) bool {
	return strings.ContainsAny(arg, "*?[{")
}

func glob(pattern string) ([]string, error) {
	slashed := filepath.ToSlash(pattern)
	if !doublestar.ValidatePattern(slashed) {
		return nil, fmt.Errorf("invalid glob pattern %q: %w", pattern, chatmd.ErrValidation)
	}

	base, rest := doublestar.SplitPattern(slashed)
	var matches []string
	err := doublestar.GlobWalk(os.DirFS(filepath.FromSlash(base)), rest, func(path string, d iofs.DirEntry) error {
		if d.IsDir() {
			return nil
		}
		matches = append(matches, filepath.Join(filepath.FromSlash(base), filepath.FromSlash(path)))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("expand %q: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no files match %q: %w", pattern, chatmd.ErrValidation)
	}
	slices.Sort(matches)
	return matches, nil
}
