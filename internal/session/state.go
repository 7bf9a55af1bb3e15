// Package session holds the live state of one interactive selection and the
// blocking loop that drives it from a key source.
//
// State is shared by every driver: it owns the query, the ranked and
// truncated candidate list, and the cursor. Drivers feed it keys.Key values
// and repaint from State.Frame after each one.
package session

import (
	"github.com/atomicstack/fzmenu/internal/keys"
	"github.com/atomicstack/fzmenu/internal/logging/events"
	"github.com/atomicstack/fzmenu/internal/match"
	"github.com/atomicstack/fzmenu/internal/render"
)

// DefaultLimit is the viewport size used when Options.Limit is not positive.
const DefaultLimit = 20

// Entry is one selectable label. Marker is appended when rendering only.
type Entry struct {
	Label  string
	Marker string
}

// Entries wraps plain values as unmarked entries.
func Entries(values []string) []Entry {
	out := make([]Entry, len(values))
	for i, v := range values {
		out[i] = Entry{Label: v}
	}
	return out
}

// Options configures a selection.
type Options struct {
	Title   string
	Limit   int
	Reverse bool
	// Cursor is the initial cursor position, clamped to the candidates.
	Cursor int
	// Status is shown until the first key press.
	Status string
}

// OutcomeKind describes how a key press left the session.
type OutcomeKind int

const (
	Continue OutcomeKind = iota
	Selected
	Back
	Interrupted
)

func (k OutcomeKind) String() string {
	switch k {
	case Continue:
		return "continue"
	case Selected:
		return "selected"
	case Back:
		return "back"
	case Interrupted:
		return "interrupted"
	}
	return "unknown"
}

// Outcome is the result of applying one key. Index is the position of the
// selected entry in the entries the state was built from.
type Outcome struct {
	Kind  OutcomeKind
	Label string
	Index int
}

// State is the mutable state of one selection.
type State struct {
	provider match.Provider
	labels   []string
	markers  map[string]string
	limit    int

	Title      string
	Reverse    bool
	Status     string
	Query      string
	Cursor     int
	Candidates []string
}

// NewState builds the label pool from entries and computes the first
// candidate list. A nil provider falls back to match.Fuzzy.
func NewState(entries []Entry, provider match.Provider, opts Options) *State {
	if provider == nil {
		provider = match.Fuzzy{}
	}
	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	s := &State{
		provider: provider,
		labels:   make([]string, len(entries)),
		markers:  make(map[string]string, len(entries)),
		limit:    limit,
		Title:    opts.Title,
		Reverse:  opts.Reverse,
		Status:   opts.Status,
	}
	for i, entry := range entries {
		s.labels[i] = entry.Label
		if entry.Marker != "" {
			s.markers[entry.Label] = entry.Marker
		}
	}
	s.refresh()
	s.Cursor = opts.Cursor
	s.clampCursor()
	return s
}

// Limit reports the viewport size in use.
func (s *State) Limit() int {
	return s.limit
}

// Selection returns the candidate under the cursor.
func (s *State) Selection() (string, bool) {
	if len(s.Candidates) == 0 || s.Cursor < 0 || s.Cursor >= len(s.Candidates) {
		return "", false
	}
	return s.Candidates[s.Cursor], true
}

// SelectionIndex maps the candidate under the cursor back to its entry. Equal
// labels are matched by occurrence, so the second "x" on screen is the second
// "x" entry. It returns -1 when nothing is selected.
func (s *State) SelectionIndex() int {
	label, ok := s.Selection()
	if !ok {
		return -1
	}
	nth := 0
	for _, c := range s.Candidates[:s.Cursor] {
		if c == label {
			nth++
		}
	}
	for i, l := range s.labels {
		if l != label {
			continue
		}
		if nth == 0 {
			return i
		}
		nth--
	}
	return -1
}

// Apply runs one key through the state machine.
func (s *State) Apply(k keys.Key) Outcome {
	s.Status = ""
	switch k.Kind {
	case keys.KindEnter, keys.KindRight:
		label, ok := s.Selection()
		if !ok {
			events.Session.EmptySelect(s.Title, s.Query)
			return Outcome{Kind: Continue}
		}
		events.Session.Select(s.Title, label, s.Cursor)
		return Outcome{Kind: Selected, Label: label, Index: s.SelectionIndex()}
	case keys.KindTab, keys.KindDown:
		s.MoveNext()
	case keys.KindUp:
		s.MovePrev()
	case keys.KindBack:
		events.Session.End(s.Title, events.SessionReasonBack)
		return Outcome{Kind: Back}
	case keys.KindInterrupt:
		events.Session.End(s.Title, events.SessionReasonInterrupt)
		return Outcome{Kind: Interrupted}
	case keys.KindPrintable:
		s.AppendQuery(k.Rune)
	default:
		s.DeleteQuery()
	}
	return Outcome{Kind: Continue}
}

// Frame snapshots the state for a renderer.
func (s *State) Frame() render.Frame {
	return render.Frame{
		Title:      s.Title,
		Query:      s.Query,
		Status:     s.Status,
		Candidates: s.Candidates,
		Markers:    s.markers,
		Cursor:     s.Cursor,
		Reverse:    s.Reverse,
	}
}
