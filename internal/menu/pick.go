package menu

import "github.com/atomicstack/fzmenu/internal/logging/events"

const (
	pickedMarker   = " [X]"
	unpickedMarker = " [ ]"
)

// Pick is a leaf holding an on/off flag mirrored into its menu's picks.
type Pick struct {
	base
	picked bool
}

// NewPick builds a pick with the given initial state.
func NewPick(label string, picked bool) *Pick {
	return &Pick{base: base{label: label}, picked: picked}
}

// Picked reports the current state.
func (p *Pick) Picked() bool {
	return p.picked
}

func (p *Pick) Marker() string {
	if p.picked {
		return pickedMarker
	}
	return unpickedMarker
}

// Toggle flips the pick and records or removes its label in the parent
// menu's picks.
func (p *Pick) Toggle() error {
	next := !p.picked
	if p.parent != nil {
		if next {
			p.parent.recordPick(p.label)
		} else if err := p.parent.removePick(p.label); err != nil {
			return err
		}
	}
	p.picked = next
	menuLabel := ""
	if p.parent != nil {
		menuLabel = p.parent.label
	}
	events.Pick.Toggle(menuLabel, p.label, p.picked)
	return nil
}

// Choose toggles the pick and re-enters the parent with the cursor at the
// pick's position among the label-sorted options.
func (p *Pick) Choose() Step {
	if err := p.Toggle(); err != nil {
		return Step{Kind: StepExit, Err: err}
	}
	cursor := 0
	if p.parent != nil {
		cursor = p.parent.sortedIndex(p.label)
	}
	return Step{Kind: StepStay, Menu: p.parent, Cursor: cursor}
}

func (p *Pick) attach(parent *Menu) {
	p.parent = parent
	if p.picked {
		parent.recordPick(p.label)
	}
}

func (p *Pick) kind() string {
	return "pick"
}
