// Package cursor tracks the typing position across wrapped text lines.
package cursor

import (
	"fmt"

	"github.com/verte-zerg/tapwords/internal/layout"
)

// Cursor is a (line, offset) position over a fixed set of lines.
type Cursor struct {
	lines  []layout.TextLine
	line   int
	offset int
}

// New returns a cursor at the first rune of the first line.
func New(lines []layout.TextLine) *Cursor {
	return &Cursor{lines: lines}
}

// Line returns the current line index.
func (c *Cursor) Line() int {
	return c.line
}

// Offset returns the current offset within the line.
func (c *Cursor) Offset() int {
	return c.offset
}

// Advance moves one rune forward, wrapping to the start of the next line.
// At the last rune of the last line it does nothing.
func (c *Cursor) Advance() {
	current := c.current()
	switch {
	case c.offset+1 < current.Len():
		c.offset++
	case c.line+1 < len(c.lines):
		c.line++
		c.offset = 0
	}
}

// Retreat moves one rune back. From the start of a line it moves to the
// previous line with the offset set to that line's length, one past its last
// rune; the renderer treats that cell as the slot after the line.
func (c *Cursor) Retreat() {
	c.current()
	switch {
	case c.offset > 0:
		c.offset--
	case c.line > 0:
		c.line--
		c.offset = c.lines[c.line].Len()
	}
}

// Position returns the screen cell of the cursor.
func (c *Cursor) Position() layout.Point {
	origin := c.current().Origin()
	return layout.Point{Col: origin.Col + c.offset, Row: origin.Row}
}

func (c *Cursor) current() layout.TextLine {
	if c.line < 0 || c.line >= len(c.lines) {
		panic(fmt.Sprintf("cursor: line %d out of range [0,%d)", c.line, len(c.lines)))
	}
	return c.lines[c.line]
}
