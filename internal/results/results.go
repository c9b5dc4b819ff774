// Package results summarizes a finished typing session.
package results

import (
	"time"

	"github.com/verte-zerg/tapwords/internal/session"
)

// Results is the summary of one session.
type Results struct {
	CharsToType    int
	CharsTyped     int
	Typos          int
	Backspaces     int
	IncorrectAtEnd int
	// ErrorPct is the share of the target still wrong at the end, in percent.
	ErrorPct float64
	// FudgeFactor counts typos that were corrected before the end.
	FudgeFactor int
	Elapsed     time.Duration
	// Weakest lists the keys missed most often, worst first.
	Weakest []rune
}

// Summarize compares the final input with the target and folds in the counters.
func Summarize(target, input []rune, counters session.Counters) Results {
	incorrect := countMismatches(target, input)
	errorPct := 0.0
	if len(target) > 0 {
		errorPct = 100 * float64(incorrect) / float64(len(target))
	}
	return Results{
		CharsToType:    len(target),
		CharsTyped:     counters.CharsTyped,
		Typos:          counters.Typos,
		Backspaces:     counters.Backspaces,
		IncorrectAtEnd: incorrect,
		ErrorPct:       errorPct,
		FudgeFactor:    counters.Typos - incorrect,
		Elapsed:        time.Duration(counters.ElapsedMs) * time.Millisecond,
	}
}

// countMismatches compares the overlapping prefix only.
func countMismatches(target, input []rune) int {
	n := len(target)
	if len(input) < n {
		n = len(input)
	}
	count := 0
	for i := 0; i < n; i++ {
		if target[i] != input[i] {
			count++
		}
	}
	return count
}

// Seconds returns the elapsed time in seconds.
func (r Results) Seconds() float64 {
	return r.Elapsed.Seconds()
}

// Pace returns words per minute, characters per minute and accuracy (0-1)
// over the characters left correct at the end.
func (r Results) Pace() (wpm, cpm, accuracy float64) {
	correct := r.CharsToType - r.IncorrectAtEnd
	if correct < 0 {
		correct = 0
	}
	return Metrics(correct, r.IncorrectAtEnd, r.Elapsed.Milliseconds())
}

// Metrics computes WPM, CPM, and accuracy from correct and incorrect counts.
func Metrics(correct, incorrect int, durationMs int64) (wpm, cpm, accuracy float64) {
	if durationMs <= 0 {
		return 0, 0, 0
	}
	minutes := float64(durationMs) / 60000.0
	wpm = (float64(correct) / 5.0) / minutes
	cpm = float64(correct) / minutes
	den := float64(correct + incorrect)
	if den > 0 {
		accuracy = float64(correct) / den
	}
	return wpm, cpm, accuracy
}
