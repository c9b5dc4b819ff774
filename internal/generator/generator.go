// Package generator draws reproducible word sets from a lexicon.
package generator

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/verte-zerg/tapwords/internal/lexicon"
)

var (
	// ErrNotEnoughWords is returned when more words are requested than the lexicon holds.
	ErrNotEnoughWords = errors.New("not enough words in lexicon")
	// ErrInvalidCount is returned for a non-positive word count.
	ErrInvalidCount = errors.New("word count must be greater than 0")
)

// Generator produces word sets from a seeded PCG stream. The stream is shared
// by every Sample call, so consecutive sets differ while the whole sequence
// is fixed by the seed.
type Generator struct {
	seed uint64
	src  *rand.PCG
}

// New returns a Generator seeded with seed.
func New(seed uint64) *Generator {
	return &Generator{seed: seed, src: rand.NewPCG(seed, seed)}
}

// NewRandom returns a Generator seeded from a non-deterministic source.
func NewRandom() *Generator {
	return New(RandomSeed())
}

// RandomSeed returns a seed from the runtime's OS-seeded generator.
func RandomSeed() uint64 {
	return rand.Uint64()
}

// Seed returns the seed the Generator was created with.
func (g *Generator) Seed() uint64 {
	return g.seed
}

// CheckCount validates a requested word count against a lexicon.
func CheckCount(lex lexicon.Lexicon, count int) error {
	if count <= 0 {
		return ErrInvalidCount
	}
	if count > lex.Len() {
		return fmt.Errorf("requested %d words, but the lexicon only contains %d: %w", count, lex.Len(), ErrNotEnoughWords)
	}
	return nil
}

// Sample draws count distinct lexicon entries and returns them shuffled.
func (g *Generator) Sample(lex lexicon.Lexicon, count int) ([]string, error) {
	if err := CheckCount(lex, count); err != nil {
		return nil, err
	}
	words := lex.Words()
	indices := sampleIndices(g.intN, len(words), count)
	selected := make([]string, 0, count)
	for _, idx := range indices {
		selected = append(selected, words[idx])
	}
	g.shuffle(selected)
	return selected, nil
}

// sampleIndices is Floyd's algorithm: count distinct values from [0, length)
// in draw order.
func sampleIndices(intN func(int) int, length, count int) []int {
	chosen := make(map[int]struct{}, count)
	out := make([]int, 0, count)
	for j := length - count; j < length; j++ {
		t := intN(j + 1)
		if _, ok := chosen[t]; ok {
			t = j
		}
		chosen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

// shuffle is a Fisher-Yates permutation driven by the same stream.
func (g *Generator) shuffle(words []string) {
	for i := len(words) - 1; i > 0; i-- {
		j := g.intN(i + 1)
		words[i], words[j] = words[j], words[i]
	}
}

// intN returns a uniform value in [0, n) using rejection sampling on raw PCG
// output, so results depend on nothing but the PCG algorithm.
func (g *Generator) intN(n int) int {
	if n <= 0 {
		panic("generator: invalid bound")
	}
	bound := uint64(n)
	limit := math.MaxUint64 - math.MaxUint64%bound
	for {
		v := g.src.Uint64()
		if v < limit {
			return int(v % bound)
		}
	}
}
