package menu

import (
	"fmt"

	"github.com/atomicstack/fzmenu/internal/logging/events"
	"github.com/atomicstack/fzmenu/internal/session"
)

// Navigator drives a menu tree through a selector until the user backs out
// of the root, an exiting action runs, or the session is interrupted.
type Navigator struct {
	selector session.Selector
	limit    int
	reverse  bool
}

// Option configures a Navigator.
type Option func(*Navigator)

// WithLimit caps the number of candidates shown per menu.
func WithLimit(limit int) Option {
	return func(n *Navigator) {
		n.limit = limit
	}
}

// WithReverse puts the prompt above the candidates.
func WithReverse(reverse bool) Option {
	return func(n *Navigator) {
		n.reverse = reverse
	}
}

func NewNavigator(selector session.Selector, opts ...Option) *Navigator {
	n := &Navigator{selector: selector, limit: session.DefaultLimit}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Run navigates from root. It returns nil when navigation ends normally and
// ErrInterrupted on Ctrl-C.
func (n *Navigator) Run(root *Menu) error {
	return n.Navigate(root, 0)
}

// Navigate starts at menu with the cursor at the given candidate.
func (n *Navigator) Navigate(start *Menu, cursor int) error {
	if start == nil {
		return fmt.Errorf("navigate: nil menu")
	}
	current := start
	status := ""
	for {
		events.UI.MenuEnter(current.Label(), cursor)
		res, err := n.selector.Run(current.Entries(), session.Options{
			Title:   current.Title(),
			Limit:   n.limit,
			Reverse: n.reverse,
			Cursor:  cursor,
			Status:  status,
		})
		if err != nil {
			return fmt.Errorf("menu %q: %w", current.Label(), err)
		}

		var step Step
		switch res.Kind {
		case session.Interrupted:
			return ErrInterrupted
		case session.Back:
			step = Back(current)
			if step.Menu != nil {
				events.UI.MenuBack(current.Label(), step.Menu.Label())
			}
		case session.Selected:
			item := current.Find(res.Label)
			if item == nil {
				return fmt.Errorf("menu %q: no option labeled %q", current.Label(), res.Label)
			}
			step = item.Choose()
		default:
			return fmt.Errorf("menu %q: unexpected outcome %s", current.Label(), res.Kind)
		}

		if step.Err != nil {
			return step.Err
		}
		switch step.Kind {
		case StepExit:
			return nil
		case StepEnter, StepStay:
			if step.Menu != nil {
				current = step.Menu
			}
			cursor = step.Cursor
			status = step.Status
		}
	}
}
