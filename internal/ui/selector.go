package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/fzmenu/internal/match"
	"github.com/atomicstack/fzmenu/internal/session"
	"github.com/atomicstack/fzmenu/internal/theme"
)

// Selector runs each selection as its own Bubble Tea program.
type Selector struct {
	provider    match.Provider
	styles      *theme.Styles
	width       int
	programOpts []tea.ProgramOption
}

// Option configures a Selector.
type Option func(*Selector)

func WithProvider(p match.Provider) Option {
	return func(s *Selector) { s.provider = p }
}

func WithStyles(styles *theme.Styles) Option {
	return func(s *Selector) { s.styles = styles }
}

// WithWidth pins the render width instead of following the terminal.
func WithWidth(width int) Option {
	return func(s *Selector) { s.width = width }
}

// WithProgramOptions forwards options such as tea.WithInput to every program.
func WithProgramOptions(opts ...tea.ProgramOption) Option {
	return func(s *Selector) { s.programOpts = append(s.programOpts, opts...) }
}

func NewSelector(opts ...Option) *Selector {
	s := &Selector{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run implements session.Selector.
func (s *Selector) Run(entries []session.Entry, opts session.Options) (session.Result, error) {
	model := NewModel(entries, s.provider, opts, s.styles, s.width)
	final, err := tea.NewProgram(model, s.programOpts...).Run()
	if err != nil {
		return session.Result{}, fmt.Errorf("run selection: %w", err)
	}
	m, ok := final.(*Model)
	if !ok {
		return session.Result{}, fmt.Errorf("run selection: unexpected model %T", final)
	}
	res, done := m.Result()
	if !done {
		return session.Result{Kind: session.Interrupted}, nil
	}
	return res, nil
}
