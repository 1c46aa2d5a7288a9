package mock_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/chatmd"
	"github.com/fwojciec/chatmd/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_Parse(t *testing.T) {
	t.Parallel()
	want := []chatmd.Block{chatmd.Spacer{}}
	var got string
	p := mock.Parser{
		ParseFn: func(source string) []chatmd.Block {
			got = source
			return want
		},
	}
	assert.Equal(t, want, p.Parse("input"))
	assert.Equal(t, "input", got)
}

func TestRenderer_Render(t *testing.T) {
	t.Parallel()
	r := mock.Renderer{
		RenderFn: func(blocks []chatmd.Block, width int) string {
			assert.Len(t, blocks, 1)
			assert.Equal(t, 42, width)
			return "rendered"
		},
	}
	assert.Equal(t, "rendered", r.Render([]chatmd.Block{chatmd.HorizontalRule{}}, 42))
}

func TestHighlighter_Highlight(t *testing.T) {
	t.Parallel()

	t.Run("returns lines", func(t *testing.T) {
		t.Parallel()
		h := mock.Highlighter{
			HighlightFn: func(language string, lines []string) ([]string, error) {
				return append([]string{language}, lines...), nil
			},
		}
		got, err := h.Highlight("go", []string{"x"})
		require.NoError(t, err)
		assert.Equal(t, []string{"go", "x"}, got)
	})

	t.Run("returns error", func(t *testing.T) {
		t.Parallel()
		boom := errors.New("boom")
		h := mock.Highlighter{
			HighlightFn: func(string, []string) ([]string, error) {
				return nil, boom
			},
		}
		_, err := h.Highlight("go", nil)
		assert.ErrorIs(t, err, boom)
	})
}
