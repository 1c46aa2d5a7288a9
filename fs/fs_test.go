package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/chatmd"
	"github.com/fwojciec/chatmd/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("# "+name), 0o644))
	}
}

func TestExpand(t *testing.T) {
	t.Parallel()

	t.Run("passes plain paths and stdin through", func(t *testing.T) {
		t.Parallel()
		got, err := fs.Expand([]string{"README.md", "-", "missing/notes.md"})
		require.NoError(t, err)
		assert.Equal(t, []string{"README.md", "-", "missing/notes.md"}, got)
	})

	t.Run("expands simple pattern in sorted order", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		writeFiles(t, dir, "b.md", "a.md", "c.txt")

		got, err := fs.Expand([]string{filepath.Join(dir, "*.md")})
		require.NoError(t, err)
		assert.Equal(t, []string{filepath.Join(dir, "a.md"), filepath.Join(dir, "b.md")}, got)
	})

	t.Run("expands recursive pattern", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		writeFiles(t, dir, "top.md", "sub/deep/inner.md", "sub/skip.txt")

		got, err := fs.Expand([]string{filepath.Join(dir, "**", "*.md")})
		require.NoError(t, err)
		assert.Equal(t, []string{
			filepath.Join(dir, "sub", "deep", "inner.md"),
			filepath.Join(dir, "top.md"),
		}, got)
	})

	t.Run("keeps argument order across patterns", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		writeFiles(t, dir, "z.md", "a.json")

		got, err := fs.Expand([]string{filepath.Join(dir, "*.md"), "-", filepath.Join(dir, "*.json")})
		require.NoError(t, err)
		assert.Equal(t, []string{filepath.Join(dir, "z.md"), "-", filepath.Join(dir, "a.json")}, got)
	})

	t.Run("skips directories", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		writeFiles(t, dir, "notes.md/inside.md")

		got, err := fs.Expand([]string{filepath.Join(dir, "*.md")})
		require.ErrorIs(t, err, chatmd.ErrValidation)
		assert.Nil(t, got)
	})

	t.Run("rejects invalid pattern", func(t *testing.T) {
		t.Parallel()
		_, err := fs.Expand([]string{"docs/[abc.md"})
		require.ErrorIs(t, err, chatmd.ErrValidation)
	})

	t.Run("rejects pattern with no matches", func(t *testing.T) {
		t.Parallel()
		_, err := fs.Expand([]string{filepath.Join(t.TempDir(), "*.md")})
		require.ErrorIs(t, err, chatmd.ErrValidation)
	})

	t.Run("empty args", func(t *testing.T) {
		t.Parallel()
		got, err := fs.Expand(nil)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
