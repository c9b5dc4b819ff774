package engine

import (
	"fmt"

	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/tapwords/internal/render"
	"github.com/verte-zerg/tapwords/internal/results"
	"github.com/verte-zerg/tapwords/internal/session"
)

func (e *Engine) paintSession() {
	e.sink.Clear()
	e.sink.SetCursor(false, render.CursorBlock)
	for _, line := range e.layout.Lines {
		e.sink.MoveTo(line.Col, line.Row)
		e.sink.Write(line.String(), render.StyleNeutral)
	}
	e.paintShortcuts()
	if e.layout.Len() > 0 {
		first := e.layout.Lines[0]
		e.sink.MoveTo(first.Col, first.Row)
		e.sink.SetCursor(true, render.CursorBar)
	}
}

// paintShortcuts puts the restart and quit hints on the bottom two rows.
func (e *Engine) paintShortcuts() {
	hints := []struct {
		key   string
		style render.Style
		desc  string
	}{
		{restartShortcut, render.StyleRestartHint, "to restart"},
		{quitShortcut, render.StyleQuitHint, "to quit"},
	}
	for i, hint := range hints {
		row := e.height - len(hints) + i
		if row < 0 {
			continue
		}
		e.sink.MoveTo(centerCol(e.width, hint.key+" "+hint.desc), row)
		e.sink.Write(hint.key, hint.style)
		e.sink.Write(" "+hint.desc, render.StyleNeutral)
	}
}

func (e *Engine) paintEvent(ev session.Event) {
	style := render.StyleNeutral
	switch ev.Kind {
	case session.EventCorrect:
		style = render.StyleCorrect
	case session.EventIncorrect:
		style = render.StyleIncorrect
	}
	e.sink.MoveTo(ev.At.Col, ev.At.Row)
	e.sink.Write(string(ev.Char), style)
	e.sink.MoveTo(ev.Cursor.Col, ev.Cursor.Row)
}

func (e *Engine) paintResults(res results.Results) {
	e.sink.Clear()
	e.sink.SetCursor(false, render.CursorBlock)
	e.paintShortcuts()

	// One row above the upper third, counted from 0.
	row := e.height/3 - 2
	if row < 0 {
		row = 0
	}
	headline := res.Headline()
	e.sink.MoveTo(centerCol(e.width, headline), row)
	e.sink.Write(headline, render.StyleEmphasis)

	table := res.Table()
	if e.sessions == 1 {
		table = append(table, "", fmt.Sprintf("Retry these words with --seed %d", e.gen.Seed()))
	}
	tableWidth := 0
	for _, line := range table {
		if w := runewidth.StringWidth(line); w > tableWidth {
			tableWidth = w
		}
	}
	col := e.width/2 - tableWidth/2
	if col < 0 {
		col = 0
	}
	for i, line := range table {
		e.sink.MoveTo(col, row+2+i)
		e.sink.Write(line, render.StyleNeutral)
	}
}

func centerCol(width int, text string) int {
	col := width/2 - runewidth.StringWidth(text)/2
	if col < 0 {
		return 0
	}
	return col
}
