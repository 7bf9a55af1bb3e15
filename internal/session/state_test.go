package session

import (
	"testing"

	"github.com/atomicstack/fzmenu/internal/keys"
	"github.com/atomicstack/fzmenu/internal/match"
)

func newTestState(labels ...string) *State {
	return NewState(Entries(labels), match.Substring{}, Options{Title: "> "})
}

func TestAppendResetsCursor(t *testing.T) {
	s := newTestState("alpha", "beta", "gamma")
	s.Cursor = 2
	s.Apply(keys.Printable('a'))
	if s.Cursor != 0 {
		t.Fatalf("expected cursor 0 after append, got %d", s.Cursor)
	}
	if s.Query != "a" {
		t.Fatalf("expected query a, got %q", s.Query)
	}
}

func TestBackspaceResetsCursorEvenWhenQueryEmpty(t *testing.T) {
	s := newTestState("alpha", "beta")
	s.Cursor = 1
	s.Apply(keys.Of(keys.KindBackspace))
	if s.Cursor != 0 || s.Query != "" {
		t.Fatalf("expected empty query and cursor 0, got %q/%d", s.Query, s.Cursor)
	}

	s.SetQuery("ab")
	s.Apply(keys.Of(keys.KindBackspace))
	if s.Query != "a" {
		t.Fatalf("expected last rune dropped, got %q", s.Query)
	}
}

func TestBackspaceDropsWholeRune(t *testing.T) {
	s := newTestState("año")
	s.Apply(keys.Printable('a'))
	s.Apply(keys.Printable('ñ'))
	s.Apply(keys.Of(keys.KindBackspace))
	if s.Query != "a" {
		t.Fatalf("expected multi-byte rune removed, got %q", s.Query)
	}
}

func TestCursorWrapsBothWays(t *testing.T) {
	s := newTestState("a", "b", "c")
	s.Cursor = 2
	s.Apply(keys.Of(keys.KindDown))
	if s.Cursor != 0 {
		t.Fatalf("expected down to wrap to 0, got %d", s.Cursor)
	}
	s.Apply(keys.Of(keys.KindUp))
	if s.Cursor != 2 {
		t.Fatalf("expected up to wrap to 2, got %d", s.Cursor)
	}
	s.Cursor = 2
	s.Apply(keys.Of(keys.KindTab))
	if s.Cursor != 0 {
		t.Fatalf("expected tab to wrap to 0, got %d", s.Cursor)
	}
}

func TestCursorMovesAreNoopsWithoutCandidates(t *testing.T) {
	s := newTestState("a")
	s.SetQuery("zzz")
	if s.MoveNext() || s.MovePrev() {
		t.Fatalf("expected no movement without candidates")
	}
	if s.Cursor != 0 {
		t.Fatalf("expected cursor 0, got %d", s.Cursor)
	}
}

func TestEnterOnEmptyCandidatesContinues(t *testing.T) {
	s := newTestState("a")
	s.SetQuery("zzz")
	if out := s.Apply(keys.Of(keys.KindEnter)); out.Kind != Continue {
		t.Fatalf("expected enter with no candidates to continue, got %v", out.Kind)
	}
}

func TestEnterAndRightSelectCursorRow(t *testing.T) {
	s := newTestState("a", "b", "c")
	s.Apply(keys.Of(keys.KindDown))
	s.Apply(keys.Of(keys.KindDown))
	out := s.Apply(keys.Of(keys.KindEnter))
	if out.Kind != Selected || out.Label != "c" {
		t.Fatalf("expected c selected, got %#v", out)
	}
	out = s.Apply(keys.Of(keys.KindRight))
	if out.Kind != Selected || out.Label != "c" {
		t.Fatalf("expected right to select c, got %#v", out)
	}
}

func TestBackAndInterruptTerminate(t *testing.T) {
	s := newTestState("a")
	if out := s.Apply(keys.Of(keys.KindBack)); out.Kind != Back {
		t.Fatalf("expected back, got %v", out.Kind)
	}
	if out := s.Apply(keys.Of(keys.KindInterrupt)); out.Kind != Interrupted {
		t.Fatalf("expected interrupted, got %v", out.Kind)
	}
}

func TestCandidatesTruncatedToLimitKeepingPrefix(t *testing.T) {
	s := NewState(Entries([]string{"a1", "a2", "a3", "a4"}), match.Substring{}, Options{Limit: 2})
	if len(s.Candidates) != 2 || s.Candidates[0] != "a1" || s.Candidates[1] != "a2" {
		t.Fatalf("expected first two candidates, got %#v", s.Candidates)
	}
	if s.Limit() != 2 {
		t.Fatalf("expected limit 2, got %d", s.Limit())
	}
	if NewState(nil, nil, Options{}).Limit() != DefaultLimit {
		t.Fatalf("expected default limit")
	}
}

func TestInitialCursorIsClamped(t *testing.T) {
	s := NewState(Entries([]string{"a", "b"}), match.Substring{}, Options{Cursor: 7})
	if s.Cursor != 1 {
		t.Fatalf("expected cursor clamped to 1, got %d", s.Cursor)
	}
	s = NewState(Entries([]string{"a", "b"}), match.Substring{}, Options{Cursor: -3})
	if s.Cursor != 0 {
		t.Fatalf("expected cursor clamped to 0, got %d", s.Cursor)
	}
}

func TestMarkersOnlyDecorateFrame(t *testing.T) {
	entries := []Entry{{Label: "dark", Marker: " [X]"}, {Label: "light", Marker: " [ ]"}}
	s := NewState(entries, match.Substring{}, Options{})
	s.SetQuery("X")
	if len(s.Candidates) != 0 {
		t.Fatalf("expected markers to be ignored by matching, got %#v", s.Candidates)
	}
	s.SetQuery("")
	f := s.Frame()
	if f.Markers["dark"] != " [X]" || f.Markers["light"] != " [ ]" {
		t.Fatalf("expected markers in frame, got %#v", f.Markers)
	}
}

func TestStatusClearedOnFirstKey(t *testing.T) {
	s := NewState(Entries([]string{"a"}), nil, Options{Status: "boom"})
	if s.Frame().Status != "boom" {
		t.Fatalf("expected initial status")
	}
	s.Apply(keys.Of(keys.KindDown))
	if s.Frame().Status != "" {
		t.Fatalf("expected status cleared after key")
	}
}

func TestSelectionIndexFollowsOccurrence(t *testing.T) {
	s := NewState(Entries([]string{"b", "a", "b"}), match.Substring{}, Options{})
	if got := s.SelectionIndex(); got != 0 {
		t.Fatalf("expected first b at 0, got %d", got)
	}
	s.MovePrev()
	if got := s.SelectionIndex(); got != 2 {
		t.Fatalf("expected second b at 2, got %d", got)
	}
	out := s.Apply(keys.Of(keys.KindEnter))
	if out.Kind != Selected || out.Label != "b" || out.Index != 2 {
		t.Fatalf("unexpected outcome %#v", out)
	}
	empty := NewState(nil, match.Substring{}, Options{})
	if got := empty.SelectionIndex(); got != -1 {
		t.Fatalf("expected -1 without candidates, got %d", got)
	}
}
