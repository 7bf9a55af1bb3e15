package session

import "github.com/atomicstack/fzmenu/internal/logging/events"

// MoveNext advances the cursor, wrapping to the first candidate.
func (s *State) MoveNext() bool {
	n := len(s.Candidates)
	if n == 0 {
		s.Cursor = 0
		return false
	}
	s.Cursor = (s.Cursor + 1) % n
	events.UI.MenuCursor(s.Title, s.Cursor)
	return true
}

// MovePrev moves the cursor back, wrapping to the last candidate.
func (s *State) MovePrev() bool {
	n := len(s.Candidates)
	if n == 0 {
		s.Cursor = 0
		return false
	}
	s.Cursor = (s.Cursor - 1 + n) % n
	events.UI.MenuCursor(s.Title, s.Cursor)
	return true
}

func (s *State) clampCursor() {
	n := len(s.Candidates)
	switch {
	case n == 0 || s.Cursor < 0:
		s.Cursor = 0
	case s.Cursor >= n:
		s.Cursor = n - 1
	}
}
