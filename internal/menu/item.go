package menu

import "errors"

var (
	// ErrDuplicateLabel is returned when two options of one menu share a label.
	ErrDuplicateLabel = errors.New("duplicate label")
	// ErrPickMissing signals a pick being cleared whose label is not recorded
	// in its menu's picks.
	ErrPickMissing = errors.New("pick not recorded in menu")
	// ErrInterrupted is returned by the navigator on Ctrl-C.
	ErrInterrupted = errors.New("navigation interrupted")
)

// Item is a node of the menu tree. The set of implementations is closed:
// *Menu, *Action and *Pick.
type Item interface {
	// Label identifies the item within its menu and is what gets displayed.
	Label() string
	// Terminal reports whether the item is a leaf.
	Terminal() bool
	// Parent returns the owning menu, or nil at the root.
	Parent() *Menu
	// Marker is appended to the label when rendering.
	Marker() string
	// Choose performs the item's behaviour and tells the navigator where to go next.
	Choose() Step

	attach(parent *Menu)
	kind() string
	submenu() *Menu
}

// StepKind says what the navigator does after an item was chosen.
type StepKind int

const (
	// StepEnter starts a fresh selection over Step.Menu.
	StepEnter StepKind = iota
	// StepStay re-enters Step.Menu at Step.Cursor.
	StepStay
	// StepExit ends navigation.
	StepExit
)

// Step is the result of choosing an item or going back.
type Step struct {
	Kind   StepKind
	Menu   *Menu
	Cursor int
	// Status is a non-fatal message for the next frame.
	Status string
	// Err aborts navigation.
	Err error
}

// Back computes the step for leaving item: the root exits, anything else
// re-enters its parent.
func Back(item Item) Step {
	parent := item.Parent()
	if parent == nil {
		return Step{Kind: StepExit}
	}
	return Step{Kind: StepEnter, Menu: parent}
}

type base struct {
	label  string
	parent *Menu
}

func (b *base) Label() string {
	return b.label
}

func (b *base) Parent() *Menu {
	return b.parent
}

func (b *base) Terminal() bool {
	return true
}

func (b *base) Marker() string {
	return ""
}

func (b *base) attach(parent *Menu) {
	b.parent = parent
}

func (b *base) submenu() *Menu {
	return nil
}
