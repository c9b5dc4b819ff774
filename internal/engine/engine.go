// Package engine runs typing sessions: it samples words, lays them out,
// feeds keystrokes to the session state machine and paints the results.
package engine

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/verte-zerg/tapwords/internal/generator"
	"github.com/verte-zerg/tapwords/internal/layout"
	"github.com/verte-zerg/tapwords/internal/lexicon"
	"github.com/verte-zerg/tapwords/internal/render"
	"github.com/verte-zerg/tapwords/internal/results"
	"github.com/verte-zerg/tapwords/internal/session"
)

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the diagnostics logger.
func WithLogger(log zerolog.Logger) Option {
	return func(e *Engine) {
		e.log = log
	}
}

// WithClock overrides the session clock.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// Engine owns one terminal's worth of typing sessions.
type Engine struct {
	lexicon lexicon.Lexicon
	gen     *generator.Generator
	count   int
	sink    render.Sink
	log     zerolog.Logger
	now     func() time.Time

	width    int
	height   int
	words    []string
	layout   layout.Layout
	machine  *session.Machine
	results  *results.Results
	sessions int
}

// New validates the word count against the lexicon and returns an idle
// Engine. Nothing is drawn until Start.
func New(lex lexicon.Lexicon, gen *generator.Generator, count int, sink render.Sink, opts ...Option) (*Engine, error) {
	if err := generator.CheckCount(lex, count); err != nil {
		return nil, err
	}
	e := &Engine{
		lexicon: lex,
		gen:     gen,
		count:   count,
		sink:    sink,
		log:     zerolog.Nop(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Start begins a fresh session for a width x height terminal.
func (e *Engine) Start(width, height int) error {
	words, err := e.gen.Sample(e.lexicon, e.count)
	if err != nil {
		return fmt.Errorf("failed to sample words: %w", err)
	}
	e.width = width
	e.height = height
	e.words = words
	e.layout = layout.Build(words, width, height)
	e.machine = session.New(e.layout, session.WithClock(e.now))
	e.results = nil
	e.sessions++

	e.log.Debug().
		Uint64("seed", e.gen.Seed()).
		Int("session", e.sessions).
		Strs("words", words).
		Int("lines", e.layout.Len()).
		Int("width", width).
		Int("height", height).
		Msg("session started")

	e.paintSession()
	return e.sink.Flush()
}

// Resize restarts the session when the terminal size changes.
func (e *Engine) Resize(width, height int) error {
	if e.machine != nil && width == e.width && height == e.height {
		return nil
	}
	return e.Start(width, height)
}

// Handle processes one keystroke.
func (e *Engine) Handle(k Key) (Action, error) {
	switch k.Kind {
	case KeyQuit:
		if e.machine != nil {
			e.log.Debug().Stringer("state", e.machine.State()).Msg("quit")
		}
		return ActionQuit, nil
	case KeyRestart:
		if e.machine == nil {
			return ActionContinue, nil
		}
		e.log.Debug().Stringer("state", e.machine.State()).Msg("restart")
		return ActionContinue, e.Start(e.width, e.height)
	}
	if e.machine == nil || e.results != nil {
		return ActionContinue, nil
	}

	var (
		ev session.Event
		ok bool
	)
	switch k.Kind {
	case KeyChar:
		ev, ok = e.machine.Type(k.Rune)
	case KeyBackspace:
		ev, ok = e.machine.Backspace()
	}
	if !ok {
		return ActionContinue, nil
	}

	if ev.Kind == session.EventCompleted {
		e.finish()
	} else {
		e.paintEvent(ev)
	}
	return ActionContinue, e.sink.Flush()
}

func (e *Engine) finish() {
	res := results.Summarize(e.machine.Target(), e.machine.Input(), e.machine.Counters())
	res.Weakest = results.WeakKeys(e.machine.Tally(), results.DefaultWeakTop)
	e.results = &res
	e.log.Info().
		Int("session", e.sessions).
		Int("chars_typed", res.CharsTyped).
		Int("typos", res.Typos).
		Int("backspaces", res.Backspaces).
		Int("incorrect_at_end", res.IncorrectAtEnd).
		Float64("error_pct", res.ErrorPct).
		Str("weakest", string(res.Weakest)).
		Dur("elapsed", res.Elapsed).
		Msg("session completed")
	e.paintResults(res)
}

// Started reports whether a session has been laid out.
func (e *Engine) Started() bool {
	return e.machine != nil
}

// Seed returns the generator seed that reproduces the first word set.
func (e *Engine) Seed() uint64 {
	return e.gen.Seed()
}

// Words returns the current word set.
func (e *Engine) Words() []string {
	return e.words
}

// Layout returns the current layout.
func (e *Engine) Layout() layout.Layout {
	return e.layout
}

// Session returns the current state machine, nil before Start.
func (e *Engine) Session() *session.Machine {
	return e.machine
}

// Results returns the summary of the current session once it is complete.
func (e *Engine) Results() (results.Results, bool) {
	if e.results == nil {
		return results.Results{}, false
	}
	return *e.results, true
}
