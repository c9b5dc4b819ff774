// Package render defines the drawing surface the engine paints on.
package render

// Style is a logical text style; sinks map it to concrete colors.
type Style int

const (
	StyleNeutral Style = iota
	StyleCorrect
	StyleIncorrect
	StyleRestartHint
	StyleQuitHint
	StyleEmphasis
)

// CursorShape is the shape of the visible terminal cursor.
type CursorShape int

const (
	CursorBlock CursorShape = iota
	CursorBar
)

// Sink accepts positioned writes. Nothing is guaranteed visible until Flush.
type Sink interface {
	Clear()
	MoveTo(col, row int)
	Write(text string, style Style)
	SetCursor(visible bool, shape CursorShape)
	Flush() error
}
