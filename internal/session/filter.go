package session

import (
	"github.com/atomicstack/fzmenu/internal/logging/events"
	"github.com/atomicstack/fzmenu/internal/match"
)

// AppendQuery extends the query by r and moves the cursor to the top.
func (s *State) AppendQuery(r rune) {
	s.Query += string(r)
	s.Cursor = 0
	s.refresh()
	events.Filter.Append(s.Title, s.Query)
}

// DeleteQuery drops the last rune of the query, if any, and moves the cursor
// to the top.
func (s *State) DeleteQuery() {
	if runes := []rune(s.Query); len(runes) > 0 {
		s.Query = string(runes[:len(runes)-1])
	}
	s.Cursor = 0
	s.refresh()
	events.Filter.Backspace(s.Title, s.Query)
}

// SetQuery replaces the query wholesale.
func (s *State) SetQuery(query string) {
	s.Query = query
	s.Cursor = 0
	s.refresh()
}

func (s *State) refresh() {
	s.Candidates = match.Truncate(s.provider.Match(s.Query, s.labels), s.limit)
	s.clampCursor()
}
