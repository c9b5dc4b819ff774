package lexicon

import "unicode"

// validWord reports whether a trimmed line is a single word.
func validWord(word string) bool {
	if word == "" {
		return false
	}
	for _, r := range word {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return false
		}
	}
	return true
}
