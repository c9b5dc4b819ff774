package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/tapwords/internal/render"
)

func TestCanvasWriteAndText(t *testing.T) {
	c := NewCanvas(10, 3)
	c.MoveTo(2, 1)
	c.Write("cat", render.StyleNeutral)
	assert.Equal(t, "  cat", c.Text(1))
	assert.Equal(t, "", c.Text(0))
	assert.Equal(t, "", c.Text(5))
}

func TestCanvasClipsOutsideWrites(t *testing.T) {
	c := NewCanvas(4, 2)
	assert.NotPanics(t, func() {
		c.MoveTo(2, 0)
		c.Write("overflow", render.StyleCorrect)
		c.MoveTo(0, 7)
		c.Write("gone", render.StyleNeutral)
		c.MoveTo(-3, 1)
		c.Write("abcd", render.StyleNeutral)
	})
	assert.Equal(t, "  ov", c.Text(0))
	assert.Equal(t, "d", c.Text(1))
}

func TestCanvasFlushPublishesFrame(t *testing.T) {
	c := NewCanvas(5, 2)
	c.MoveTo(0, 0)
	c.Write("hi", render.StyleNeutral)
	assert.Equal(t, "", c.View())

	require.NoError(t, c.Flush())
	lines := strings.Split(c.View(), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "hi   ", lines[0])
	assert.Equal(t, "     ", lines[1])

	c.Write("!", render.StyleNeutral)
	assert.NotContains(t, c.View(), "!")
}

func TestCanvasStylesRuns(t *testing.T) {
	c := NewCanvas(6, 1)
	c.MoveTo(0, 0)
	c.Write("ab", render.StyleCorrect)
	c.Write("c", render.StyleIncorrect)
	require.NoError(t, c.Flush())
	want := correctStyle.Render("ab") + incorrectStyle.Render("c") + "   "
	assert.Equal(t, want, c.View())
}

func TestCanvasDrawsCursor(t *testing.T) {
	c := NewCanvas(4, 1)
	c.MoveTo(0, 0)
	c.Write("abcd", render.StyleNeutral)
	c.MoveTo(1, 0)
	c.SetCursor(true, render.CursorBar)
	require.NoError(t, c.Flush())
	want := "a" + neutralStyle.Underline(true).Render("b") + "cd"
	assert.Equal(t, want, c.View())

	c.SetCursor(false, render.CursorBar)
	require.NoError(t, c.Flush())
	assert.Equal(t, "abcd", c.View())
}

func TestCanvasWideRunes(t *testing.T) {
	c := NewCanvas(6, 1)
	c.MoveTo(0, 0)
	c.Write("日x", render.StyleNeutral)
	assert.Equal(t, "日x", c.Text(0))
	assert.Equal(t, 3, c.col)
}

func TestCanvasResizeClears(t *testing.T) {
	c := NewCanvas(3, 1)
	c.Write("abc", render.StyleNeutral)
	c.Resize(5, 2)
	w, h := c.Size()
	assert.Equal(t, 5, w)
	assert.Equal(t, 2, h)
	assert.Equal(t, "", c.Text(0))
}
