package results

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Headline is the one-line summary shown above the table.
func (r Results) Headline() string {
	return fmt.Sprintf("You typed %d characters in %.2f seconds with %.1f%% errors and corrected %d typos along the way.",
		r.CharsTyped, r.Seconds(), r.ErrorPct, r.FudgeFactor)
}

// Table returns aligned label/value rows for the results screen.
func (r Results) Table() []string {
	wpm, cpm, acc := r.Pace()
	rows := [][]string{
		{"Characters typed", fmt.Sprintf("%d", r.CharsTyped)},
		{"Target length", fmt.Sprintf("%d", r.CharsToType)},
		{"Typos", fmt.Sprintf("%d", r.Typos)},
		{"Left uncorrected", fmt.Sprintf("%d", r.IncorrectAtEnd)},
		{"Backspaces", fmt.Sprintf("%d", r.Backspaces)},
		{"Errors", fmt.Sprintf("%.1f%%", r.ErrorPct)},
		{"WPM", fmt.Sprintf("%.1f", wpm)},
		{"CPM", fmt.Sprintf("%.1f", cpm)},
		{"Accuracy", fmt.Sprintf("%.1f%%", acc*100)},
	}
	if len(r.Weakest) > 0 {
		rows = append(rows, []string{"Weakest keys", joinKeys(r.Weakest)})
	}
	return formatTable(rows, map[int]bool{1: true})
}

func formatTable(rows [][]string, rightAlignCols map[int]bool) []string {
	colCount := 0
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}
	if colCount == 0 {
		return nil
	}

	widths := make([]int, colCount)
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		var b strings.Builder
		for i := 0; i < colCount; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			if i > 0 {
				b.WriteString("  ")
			}
			b.WriteString(padCell(cell, widths[i], rightAlignCols[i]))
		}
		lines = append(lines, b.String())
	}
	return lines
}

func padCell(value string, width int, rightAlign bool) string {
	padding := width - runewidth.StringWidth(value)
	if padding <= 0 {
		return value
	}
	if rightAlign {
		return strings.Repeat(" ", padding) + value
	}
	return value + strings.Repeat(" ", padding)
}
