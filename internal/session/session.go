// Package session drives one typing session over a laid-out target text.
package session

import (
	"sort"
	"time"

	"github.com/verte-zerg/tapwords/internal/cursor"
	"github.com/verte-zerg/tapwords/internal/layout"
)

// State is the lifecycle phase of a session.
type State int

const (
	StateNotStarted State = iota
	StateInProgress
	StateCompleted
)

func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not-started"
	case StateInProgress:
		return "in-progress"
	case StateCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// EventKind tells the renderer how to draw a keystroke.
type EventKind int

const (
	// EventCorrect draws Char as typed correctly at At.
	EventCorrect EventKind = iota
	// EventIncorrect draws the expected Char marked as an error at At.
	EventIncorrect
	// EventRestore redraws Char unmarked at At after a backspace.
	EventRestore
	// EventCompleted reports that the final rune was typed.
	EventCompleted
)

// Event is the visible effect of one accepted keystroke.
type Event struct {
	Kind   EventKind
	Char   rune
	At     layout.Point
	Cursor layout.Point
}

// Counters accumulate over a session and never decrease.
type Counters struct {
	CharsTyped int
	Typos      int
	Backspaces int
	ElapsedMs  int64
}

// KeyTally counts keystrokes aimed at one target rune.
type KeyTally struct {
	Char      rune
	Correct   int
	Incorrect int
}

// Option configures a Machine.
type Option func(*Machine)

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(m *Machine) {
		m.now = now
	}
}

// Machine consumes keystrokes against a target and moves a cursor.
type Machine struct {
	target   []rune
	input    []rune
	lines    []layout.TextLine
	cursor   *cursor.Cursor
	state    State
	counters Counters
	tally    map[rune]KeyTally

	startedAt time.Time
	endedAt   time.Time
	now       func() time.Time
}

// New returns a Machine for the layout's target text.
func New(l layout.Layout, opts ...Option) *Machine {
	m := &Machine{
		target: l.Runes(),
		lines:  l.Lines,
		cursor: cursor.New(l.Lines),
		tally:  map[rune]KeyTally{},
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Type feeds one printable rune. It returns false when the session is
// already complete.
func (m *Machine) Type(r rune) (Event, bool) {
	if m.state == StateCompleted || len(m.input) >= len(m.target) {
		return Event{}, false
	}
	if m.state == StateNotStarted {
		m.state = StateInProgress
		m.startedAt = m.now()
	}

	expected := m.target[len(m.input)]
	m.input = append(m.input, r)
	m.counters.CharsTyped++
	m.record(expected, r == expected)

	if len(m.input) == len(m.target) {
		m.endedAt = m.now()
		m.counters.ElapsedMs = m.endedAt.Sub(m.startedAt).Milliseconds()
		m.state = StateCompleted
		if r != expected {
			m.counters.Typos++
		}
		pos := m.cell()
		return Event{Kind: EventCompleted, Char: expected, At: pos, Cursor: pos}, true
	}

	kind := EventCorrect
	if r != expected {
		m.counters.Typos++
		kind = EventIncorrect
	}
	at := m.cell()
	m.cursor.Advance()
	return Event{Kind: kind, Char: expected, At: at, Cursor: m.cell()}, true
}

// Backspace removes the last typed rune. It returns false when there is
// nothing to remove or the session is complete.
func (m *Machine) Backspace() (Event, bool) {
	if m.state == StateCompleted || len(m.input) == 0 {
		return Event{}, false
	}
	expected := m.target[len(m.input)-1]
	m.input = m.input[:len(m.input)-1]
	m.counters.Backspaces++
	if m.parked() {
		// The parked cursor already shows the last rune's cell.
		m.cursor.Retreat()
	}
	m.cursor.Retreat()
	pos := m.cell()
	return Event{Kind: EventRestore, Char: expected, At: pos, Cursor: pos}, true
}

func (m *Machine) record(expected rune, correct bool) {
	t := m.tally[expected]
	t.Char = expected
	if correct {
		t.Correct++
	} else {
		t.Incorrect++
	}
	m.tally[expected] = t
}

// Tally returns per-rune keystroke counts ordered by rune.
func (m *Machine) Tally() []KeyTally {
	out := make([]KeyTally, 0, len(m.tally))
	for _, t := range m.tally {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Char < out[j].Char })
	return out
}

// State returns the lifecycle phase.
func (m *Machine) State() State {
	return m.state
}

// Counters returns a snapshot of the counters.
func (m *Machine) Counters() Counters {
	return m.counters
}

// Target returns the runes to type.
func (m *Machine) Target() []rune {
	return m.target
}

// Input returns the runes typed so far.
func (m *Machine) Input() []rune {
	return m.input
}

// Cursor returns the screen cell of the next rune.
func (m *Machine) Cursor() layout.Point {
	return m.cell()
}

// cell is the cursor position, pulled back onto the last rune when the
// cursor is parked past the end of a line after a backspace.
func (m *Machine) cell() layout.Point {
	pos := m.cursor.Position()
	if m.parked() {
		pos.Col--
	}
	return pos
}

func (m *Machine) parked() bool {
	off := m.cursor.Offset()
	return off > 0 && off >= m.lines[m.cursor.Line()].Len()
}

// StartedAt returns when the first rune was typed; zero before that.
func (m *Machine) StartedAt() time.Time {
	return m.startedAt
}
