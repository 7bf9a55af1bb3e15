package ui

import (
	"reflect"

	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/fzmenu/internal/logging/events"
	"github.com/atomicstack/fzmenu/internal/match"
	"github.com/atomicstack/fzmenu/internal/session"
	"github.com/atomicstack/fzmenu/internal/theme"
)

type msgHandler func(tea.Msg) tea.Cmd

// Model implements the Bubble Tea model for one selection.
type Model struct {
	state  *session.State
	styles *theme.Styles
	width  int
	height int
	fixed  bool

	caret cursor.Model

	result session.Result
	done   bool

	handlers map[reflect.Type]msgHandler
}

// NewModel builds a model over entries. A nil provider uses match.Fuzzy and
// nil styles use theme.Default. A positive width disables resizing.
func NewModel(entries []session.Entry, provider match.Provider, opts session.Options, styles *theme.Styles, width int) *Model {
	if styles == nil {
		styles = theme.Default()
	}
	m := &Model{
		state:  session.NewState(entries, provider, opts),
		styles: styles,
	}
	if width > 0 {
		m.width = width
		m.fixed = true
	}
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = styles.Cursor.Copy()
	}
	if styles.Query != nil {
		c.TextStyle = styles.Query.Copy()
	}
	c.SetChar(" ")
	c.SetMode(cursor.CursorStatic)
	c.Focus()
	m.caret = c
	m.registerHandlers()
	events.Session.Start(m.state.Title, len(entries))
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.done {
		return m, nil
	}
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	var key tea.KeyMsg
	switch v := msg.(type) {
	case tea.KeyMsg:
		key = v
	case *tea.KeyMsg:
		key = *v
	}
	for _, k := range keysFromMsg(key) {
		outcome := m.state.Apply(k)
		if outcome.Kind == session.Continue {
			continue
		}
		m.result = session.Result{Kind: outcome.Kind, Label: outcome.Label, Index: outcome.Index}
		m.done = true
		return tea.Quit
	}
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	m.height = size.Height
	if !m.fixed {
		m.width = size.Width
	}
	return nil
}

// State exposes the underlying session state.
func (m *Model) State() *session.State {
	return m.state
}

// Result reports how the selection ended, and whether it has.
func (m *Model) Result() (session.Result, bool) {
	return m.result, m.done
}
