// Package layout wraps a word set into centered, positioned text lines.
package layout

import "unicode/utf8"

// Point is a zero-based screen cell.
type Point struct {
	Col int
	Row int
}

// TextLine is one wrapped row of the word block.
type TextLine struct {
	Col   int
	Row   int
	Runes []rune
}

// Len returns the line length in runes.
func (l TextLine) Len() int {
	return len(l.Runes)
}

// Origin returns the screen cell of the first rune.
func (l TextLine) Origin() Point {
	return Point{Col: l.Col, Row: l.Row}
}

// String returns the line content.
func (l TextLine) String() string {
	return string(l.Runes)
}

// Layout is the word block for one terminal size.
type Layout struct {
	Width  int
	Height int
	Lines  []TextLine
}

// Threshold returns the nominal line length for a terminal width (a fifth of it).
func Threshold(width int) int {
	if width <= 0 {
		return 0
	}
	return width / 5
}

// Build wraps words into lines no longer than Threshold(width) where possible
// and centers the block on a width x height terminal. Every line but the last
// keeps the space that follows its final word.
func Build(words []string, width, height int) Layout {
	texts := wrapWords(words, Threshold(width))
	centerX := width / 2
	centerY := height / 2
	top := centerY - len(texts)
	if top < 0 {
		top = 0
	}

	lines := make([]TextLine, 0, len(texts))
	for i, text := range texts {
		runes := []rune(text)
		col := centerX - len(runes)/2
		if col < 0 {
			col = 0
		}
		lines = append(lines, TextLine{Col: col, Row: top + i, Runes: runes})
	}
	return Layout{Width: width, Height: height, Lines: lines}
}

func wrapWords(words []string, maxLen int) []string {
	var lines []string
	current := make([]byte, 0, maxLen+1)
	currentLen := 0
	for _, word := range words {
		wordLen := utf8.RuneCountInString(word)
		if currentLen > 0 && currentLen+wordLen > maxLen {
			lines = append(lines, string(current))
			current = current[:0]
			currentLen = 0
		}
		current = append(current, word...)
		current = append(current, ' ')
		currentLen += wordLen + 1
	}
	if currentLen > 0 {
		lines = append(lines, string(current[:len(current)-1]))
	}
	return lines
}

// Runes returns the full target sequence: every line's runes in order.
func (l Layout) Runes() []rune {
	total := 0
	for _, line := range l.Lines {
		total += line.Len()
	}
	out := make([]rune, 0, total)
	for _, line := range l.Lines {
		out = append(out, line.Runes...)
	}
	return out
}

// Len returns the number of lines.
func (l Layout) Len() int {
	return len(l.Lines)
}
