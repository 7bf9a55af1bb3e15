package menu

import (
	"errors"

	"github.com/atomicstack/fzmenu/internal/logging"
	"github.com/atomicstack/fzmenu/internal/logging/events"
)

// Handler is one callable registered on an Action.
type Handler interface {
	Handle(a *Action) error
}

// Func is a handler that takes no arguments.
type Func func()

func (f Func) Handle(*Action) error {
	f()
	return nil
}

// WithAction is a handler that receives the action being executed.
type WithAction func(*Action)

func (f WithAction) Handle(a *Action) error {
	f(a)
	return nil
}

// ErrFunc is a handler that receives the action and may fail.
type ErrFunc func(*Action) error

func (f ErrFunc) Handle(a *Action) error {
	return f(a)
}

// Action is a leaf that runs its handlers when chosen.
type Action struct {
	base
	handlers []Handler
	exit     bool
}

// NewAction builds an action running handlers in registration order.
func NewAction(label string, handlers ...Handler) *Action {
	return &Action{base: base{label: label}, handlers: append([]Handler(nil), handlers...)}
}

// ExitAfter makes navigation end once the action has run.
func (a *Action) ExitAfter() *Action {
	a.exit = true
	return a
}

// Exits reports whether choosing the action ends navigation.
func (a *Action) Exits() bool {
	return a.exit
}

// Execute runs every handler, even when an earlier one fails, and joins the
// errors.
func (a *Action) Execute() error {
	events.Action.Run(a.label, len(a.handlers))
	var errs []error
	for _, h := range a.handlers {
		if h == nil {
			continue
		}
		if err := h.Handle(a); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Choose runs the handlers. Handler failures are logged and surfaced as the
// status of the menu that is shown next.
func (a *Action) Choose() Step {
	err := a.Execute()
	status := ""
	if err != nil {
		events.Action.Error(err)
		logging.Error(err)
		status = a.label + ": " + err.Error()
	}
	if a.exit {
		return Step{Kind: StepExit}
	}
	return Step{Kind: StepStay, Menu: a.parent, Status: status}
}

func (a *Action) kind() string {
	return "action"
}
