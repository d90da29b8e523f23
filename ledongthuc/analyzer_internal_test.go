package ledongthuc

import (
	"testing"

	"github.com/kiyo-matsu/camelot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func g(text string, x, y float64) camelot.Glyph {
	return camelot.Glyph{Text: text, X: x, Y: y, Width: 8, Height: 12}
}

func TestBuildLayout_groups_horizontal_runs(t *testing.T) {
	t.Parallel()

	glyphs := []camelot.Glyph{
		g("H", 50, 700), g("i", 58, 700), g("!", 66, 700.5),
		g("y", 50, 680), g("o", 58, 680),
	}

	layout := buildLayout(glyphs, camelot.LayoutOptions{}.Normalize())

	require.Len(t, layout.Horizontal, 2)
	assert.Empty(t, layout.Vertical)
	assert.Equal(t, "Hi!", layout.Horizontal[0].Text)
	assert.Equal(t, "yo", layout.Horizontal[1].Text)

	for _, gl := range layout.Glyphs {
		assert.Equal(t, camelot.ReadingLeftToRight, gl.Reading)
	}
}

func TestBuildLayout_groups_vertical_runs(t *testing.T) {
	t.Parallel()

	t.Run("top to bottom", func(t *testing.T) {
		t.Parallel()

		glyphs := []camelot.Glyph{
			g("d", 100, 700), g("o", 100, 688), g("w", 100, 676), g("n", 100, 664),
		}

		layout := buildLayout(glyphs, camelot.LayoutOptions{}.Normalize())

		require.Len(t, layout.Vertical, 1)
		assert.Empty(t, layout.Horizontal)
		assert.Equal(t, "down", layout.Vertical[0].Text)
		for _, gl := range layout.Glyphs {
			assert.Equal(t, camelot.ReadingTopToBottom, gl.Reading)
		}
	})

	t.Run("bottom to top", func(t *testing.T) {
		t.Parallel()

		glyphs := []camelot.Glyph{
			g("u", 100, 664), g("p", 100, 676),
		}

		layout := buildLayout(glyphs, camelot.LayoutOptions{}.Normalize())

		require.Len(t, layout.Vertical, 1)
		assert.Equal(t, "up", layout.Vertical[0].Text)
		for _, gl := range layout.Glyphs {
			assert.Equal(t, camelot.ReadingBottomToTop, gl.Reading)
		}
	})
}

func TestBuildLayout_leaves_stray_glyphs_ungrouped(t *testing.T) {
	t.Parallel()

	// Each glyph sits on its own baseline and x-position: no runs form.
	glyphs := []camelot.Glyph{
		g("a", 50, 700), g("b", 120, 650), g("c", 200, 600),
	}

	layout := buildLayout(glyphs, camelot.LayoutOptions{}.Normalize())

	assert.Empty(t, layout.Horizontal)
	assert.Empty(t, layout.Vertical)
	for _, gl := range layout.Glyphs {
		assert.Equal(t, camelot.ReadingUnknown, gl.Reading)
	}
}

func TestBuildLayout_computes_line_bounds(t *testing.T) {
	t.Parallel()

	glyphs := []camelot.Glyph{
		g("a", 50, 700), g("b", 58, 700),
	}

	layout := buildLayout(glyphs, camelot.LayoutOptions{}.Normalize())

	require.Len(t, layout.Horizontal, 1)
	line := layout.Horizontal[0]
	assert.InDelta(t, 50, line.X0, 0.01)
	assert.InDelta(t, 66, line.X1, 0.01) // 58 + width 8
	assert.InDelta(t, 700, line.Y0, 0.01)
	assert.InDelta(t, 712, line.Y1, 0.01) // 700 + height 12

	assert.InDelta(t, 66, layout.Width, 0.01)
	assert.InDelta(t, 712, layout.Height, 0.01)
}

func TestBuildLayout_empty_input(t *testing.T) {
	t.Parallel()

	layout := buildLayout(nil, camelot.LayoutOptions{}.Normalize())
	assert.Empty(t, layout.Glyphs)
	assert.Empty(t, layout.Horizontal)
	assert.Empty(t, layout.Vertical)
}
