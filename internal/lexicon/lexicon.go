// Package lexicon provides the pools of candidate words a session draws from.
package lexicon

import (
	"bufio"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

//go:embed default.txt
var bundledWords string

// BundledSource names the embedded lexicon in messages and logs.
const BundledSource = "bundled"

// ErrEmpty is returned when a lexicon source holds no words.
var ErrEmpty = errors.New("lexicon is empty")

// Lexicon is an ordered, immutable pool of lowercase words.
type Lexicon interface {
	Len() int
	Words() []string
}

// List is a Lexicon held in memory.
type List struct {
	source string
	words  []string
}

// Len returns the number of words.
func (l *List) Len() int {
	return len(l.words)
}

// Words returns the words in lexicon order. Callers must not modify the slice.
func (l *List) Words() []string {
	return l.words
}

// Source returns the file path the words were read from, or BundledSource.
func (l *List) Source() string {
	return l.source
}

// Bundled returns the lexicon compiled into the binary.
func Bundled() *List {
	list, err := Parse(strings.NewReader(bundledWords), BundledSource)
	if err != nil {
		panic(fmt.Sprintf("bundled lexicon is malformed: %v", err))
	}
	return list
}

// Open returns the bundled lexicon for an empty path and the file lexicon otherwise.
func Open(path string) (*List, error) {
	if path == "" {
		return Bundled(), nil
	}
	return LoadFile(path)
}

// LoadFile reads one word per line from the provided file path.
func LoadFile(path string) (*List, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only lexicon.
			_ = cerr
		}
	}()
	return Parse(file, path)
}

// Parse reads one word per line. Blank lines are skipped, words are lowercased
// and a line holding more than one word is rejected.
func Parse(r io.Reader, source string) (*List, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if !validWord(line) {
			return nil, fmt.Errorf("%s:%d: invalid word %q", source, lineNo, line)
		}
		words = append(words, strings.ToLower(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", source, err)
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("%s: %w", source, ErrEmpty)
	}
	return &List{source: source, words: words}, nil
}
