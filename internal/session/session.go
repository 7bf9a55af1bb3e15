package session

import (
	"errors"
	"fmt"

	"github.com/atomicstack/fzmenu/internal/keys"
	"github.com/atomicstack/fzmenu/internal/logging/events"
	"github.com/atomicstack/fzmenu/internal/match"
	"github.com/atomicstack/fzmenu/internal/render"
)

var (
	// ErrCanceled is returned by the value pickers when the back key is pressed.
	ErrCanceled = errors.New("selection canceled")
	// ErrInterrupted is returned by the value pickers on Ctrl-C.
	ErrInterrupted = errors.New("selection interrupted")
)

// KeySource yields decoded keys, blocking until one is available.
type KeySource interface {
	Next() (keys.Key, error)
}

// Display paints frames.
type Display interface {
	Render(render.Frame) error
	Clear() error
}

// Result is how a selection ended. Label and Index are set only for
// Selected; Index is the position of the chosen entry.
type Result struct {
	Kind  OutcomeKind
	Label string
	Index int
}

// Selector runs one interactive selection to completion.
type Selector interface {
	Run(entries []Entry, opts Options) (Result, error)
}

// Session is the blocking, single-threaded Selector: render, read one key,
// apply it, repeat.
type Session struct {
	keys     KeySource
	display  Display
	provider match.Provider
}

// New builds a Session. A nil provider uses match.Fuzzy.
func New(src KeySource, display Display, provider match.Provider) *Session {
	return &Session{keys: src, display: display, provider: provider}
}

// Run loops until the selection terminates. The display is cleared on exit.
func (s *Session) Run(entries []Entry, opts Options) (Result, error) {
	state := NewState(entries, s.provider, opts)
	events.Session.Start(state.Title, len(entries))
	for {
		if err := s.display.Render(state.Frame()); err != nil {
			return Result{}, fmt.Errorf("render frame: %w", err)
		}
		key, err := s.keys.Next()
		if err != nil {
			return Result{}, fmt.Errorf("read key: %w", err)
		}
		outcome := state.Apply(key)
		if outcome.Kind == Continue {
			continue
		}
		if err := s.display.Clear(); err != nil {
			return Result{}, fmt.Errorf("clear display: %w", err)
		}
		return Result{Kind: outcome.Kind, Label: outcome.Label, Index: outcome.Index}, nil
	}
}

// PickValue runs a selection over raw values and returns the chosen value.
func PickValue(sel Selector, values []string, opts Options) (string, error) {
	idx, err := PickIndex(sel, values, opts)
	if err != nil {
		return "", err
	}
	return values[idx], nil
}

// PickIndex runs a selection over raw values and returns the index of the
// chosen value. Selectors that do not report an index fall back to the first
// occurrence of the label.
func PickIndex(sel Selector, values []string, opts Options) (int, error) {
	res, err := sel.Run(Entries(values), opts)
	if err != nil {
		return -1, err
	}
	switch res.Kind {
	case Back:
		return -1, ErrCanceled
	case Interrupted:
		return -1, ErrInterrupted
	}
	if res.Index >= 0 && res.Index < len(values) && values[res.Index] == res.Label {
		return res.Index, nil
	}
	for i, v := range values {
		if v == res.Label {
			return i, nil
		}
	}
	return -1, fmt.Errorf("selected value %q not among candidates", res.Label)
}
