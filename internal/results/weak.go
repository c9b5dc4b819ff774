package results

import (
	"sort"
	"strings"

	"github.com/verte-zerg/tapwords/internal/session"
)

// DefaultWeakTop is how many keys the results screen lists.
const DefaultWeakTop = 3

// WeakKeys selects up to top runes with the lowest accuracy among those
// mistyped at least once. Ties go to the lower rune.
func WeakKeys(tally []session.KeyTally, top int) []rune {
	candidates := make([]session.KeyTally, 0, len(tally))
	for _, t := range tally {
		if t.Incorrect > 0 {
			candidates = append(candidates, t)
		}
	}
	sort.Slice(candidates, func(i, j int) bool {
		ai := accuracy(candidates[i])
		aj := accuracy(candidates[j])
		if ai == aj {
			return candidates[i].Char < candidates[j].Char
		}
		return ai < aj
	})
	if top <= 0 || top > len(candidates) {
		top = len(candidates)
	}
	out := make([]rune, 0, top)
	for i := 0; i < top; i++ {
		out = append(out, candidates[i].Char)
	}
	return out
}

func accuracy(t session.KeyTally) float64 {
	total := t.Correct + t.Incorrect
	if total == 0 {
		return 1.0
	}
	return float64(t.Correct) / float64(total)
}

func keyLabel(r rune) string {
	if r == ' ' {
		return "<space>"
	}
	return string(r)
}

func joinKeys(keys []rune) string {
	labels := make([]string, 0, len(keys))
	for _, r := range keys {
		labels = append(labels, keyLabel(r))
	}
	return strings.Join(labels, " ")
}
