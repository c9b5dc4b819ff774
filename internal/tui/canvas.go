package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/tapwords/internal/render"
)

var (
	neutralStyle   = lipgloss.NewStyle()
	correctStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#52C41A"))
	incorrectStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F")).Underline(true)
	restartStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#52C41A"))
	quitStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	emphasisStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
)

func styleFor(s render.Style) lipgloss.Style {
	switch s {
	case render.StyleCorrect:
		return correctStyle
	case render.StyleIncorrect:
		return incorrectStyle
	case render.StyleRestartHint:
		return restartStyle
	case render.StyleQuitHint:
		return quitStyle
	case render.StyleEmphasis:
		return emphasisStyle
	default:
		return neutralStyle
	}
}

type cell struct {
	r     rune
	style render.Style
	// cont marks the right half of a double-width rune.
	cont bool
}

var blank = cell{r: ' '}

// Canvas is an in-memory render.Sink. Writes land in a cell grid; Flush
// renders the grid into the frame that View returns.
type Canvas struct {
	width  int
	height int
	cells  [][]cell
	col    int
	row    int

	cursorVisible bool
	cursorShape   render.CursorShape

	frame string
}

var _ render.Sink = (*Canvas)(nil)

// NewCanvas returns a blank width x height canvas.
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{}
	c.Resize(width, height)
	return c
}

// Size returns the canvas dimensions.
func (c *Canvas) Size() (width, height int) {
	return c.width, c.height
}

// Resize discards the grid and allocates a blank one.
func (c *Canvas) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	c.width = width
	c.height = height
	c.cells = make([][]cell, height)
	for i := range c.cells {
		c.cells[i] = make([]cell, width)
	}
	c.Clear()
}

// Clear blanks every cell and homes the write position.
func (c *Canvas) Clear() {
	for _, row := range c.cells {
		for i := range row {
			row[i] = blank
		}
	}
	c.col, c.row = 0, 0
}

// MoveTo sets the write position, which is also where the cursor is drawn.
func (c *Canvas) MoveTo(col, row int) {
	c.col, c.row = col, row
}

// Write puts text at the write position. Cells outside the grid are dropped.
func (c *Canvas) Write(text string, style render.Style) {
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w < 1 {
			w = 1
		}
		c.set(c.col, c.row, cell{r: r, style: style})
		for i := 1; i < w; i++ {
			c.set(c.col+i, c.row, cell{style: style, cont: true})
		}
		c.col += w
	}
}

func (c *Canvas) set(col, row int, v cell) {
	if row < 0 || row >= c.height || col < 0 || col >= c.width {
		return
	}
	c.cells[row][col] = v
}

// SetCursor shows or hides the cursor at the write position.
func (c *Canvas) SetCursor(visible bool, shape render.CursorShape) {
	c.cursorVisible = visible
	c.cursorShape = shape
}

// Flush publishes the grid as the current frame.
func (c *Canvas) Flush() error {
	c.frame = c.render()
	return nil
}

// View returns the last flushed frame.
func (c *Canvas) View() string {
	return c.frame
}

func (c *Canvas) cursorStyle(base lipgloss.Style) lipgloss.Style {
	if c.cursorShape == render.CursorBar {
		return base.Underline(true)
	}
	return base.Reverse(true)
}

func (c *Canvas) render() string {
	lines := make([]string, 0, c.height)
	for row := range c.cells {
		lines = append(lines, c.renderRow(row))
	}
	return strings.Join(lines, "\n")
}

// renderRow groups runs of equally styled cells so each run is styled once.
func (c *Canvas) renderRow(row int) string {
	var out strings.Builder
	var run strings.Builder
	runStyle := render.StyleNeutral
	runCursor := false

	flush := func() {
		if run.Len() == 0 {
			return
		}
		switch {
		case runCursor:
			out.WriteString(c.cursorStyle(styleFor(runStyle)).Render(run.String()))
		case runStyle == render.StyleNeutral:
			out.WriteString(run.String())
		default:
			out.WriteString(styleFor(runStyle).Render(run.String()))
		}
		run.Reset()
	}

	for col, v := range c.cells[row] {
		if v.cont {
			continue
		}
		isCursor := c.cursorVisible && row == c.row && col == c.col
		if v.style != runStyle || isCursor != runCursor {
			flush()
			runStyle = v.style
			runCursor = isCursor
		}
		run.WriteRune(v.r)
		if isCursor {
			flush()
			runCursor = false
		}
	}
	flush()
	return out.String()
}

// Text returns the plain characters of a row without styling.
func (c *Canvas) Text(row int) string {
	if row < 0 || row >= c.height {
		return ""
	}
	var b strings.Builder
	for _, v := range c.cells[row] {
		if v.cont {
			continue
		}
		b.WriteRune(v.r)
	}
	return strings.TrimRight(b.String(), " ")
}
