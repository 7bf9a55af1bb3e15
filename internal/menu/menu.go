package menu

import (
	"fmt"
	"sort"
	"strings"

	"github.com/atomicstack/fzmenu/internal/session"
)

const (
	pathSeparator = " → "
	titleSuffix   = " » "
)

// Menu is a container of options. Its picks record, in toggle order, the
// labels of the Pick options currently switched on.
type Menu struct {
	base
	options []Item
	picks   []string
}

// NewMenu builds a menu and makes it the parent of every option. An option
// that already belongs to another menu is moved: the old menu drops it from
// its options and picks. Labels must be unique among the options.
func NewMenu(label string, options ...Item) (*Menu, error) {
	seen := make(map[string]struct{}, len(options))
	for i, opt := range options {
		if opt == nil {
			return nil, fmt.Errorf("menu %q: option %d is nil", label, i)
		}
		if _, dup := seen[opt.Label()]; dup {
			return nil, fmt.Errorf("menu %q: %w %q", label, ErrDuplicateLabel, opt.Label())
		}
		seen[opt.Label()] = struct{}{}
	}
	m := &Menu{
		base:    base{label: label},
		options: append([]Item(nil), options...),
	}
	for _, opt := range m.options {
		if old := opt.Parent(); old != nil {
			old.release(opt)
		}
		opt.attach(m)
	}
	return m, nil
}

// MustMenu is NewMenu for statically known trees.
func MustMenu(label string, options ...Item) *Menu {
	m, err := NewMenu(label, options...)
	if err != nil {
		panic(err)
	}
	return m
}

func (m *Menu) Terminal() bool {
	return false
}

// Choose descends into the menu.
func (m *Menu) Choose() Step {
	return Step{Kind: StepEnter, Menu: m}
}

func (m *Menu) kind() string {
	return "menu"
}

func (m *Menu) submenu() *Menu {
	return m
}

// Options returns the menu's options in display order.
func (m *Menu) Options() []Item {
	return append([]Item(nil), m.options...)
}

// Picks returns the labels of the picks currently switched on.
func (m *Menu) Picks() []string {
	return append([]string(nil), m.picks...)
}

// Find returns the option labeled label, or nil.
func (m *Menu) Find(label string) Item {
	for _, opt := range m.options {
		if opt.Label() == label {
			return opt
		}
	}
	return nil
}

// Path lists the labels from the root down to m.
func (m *Menu) Path() []string {
	var path []string
	for cur := m; cur != nil; cur = cur.parent {
		path = append(path, cur.label)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// Title is the breadcrumb shown in front of the query.
func (m *Menu) Title() string {
	return strings.Join(m.Path(), pathSeparator) + titleSuffix
}

// Entries converts the options into session entries.
func (m *Menu) Entries() []session.Entry {
	entries := make([]session.Entry, len(m.options))
	for i, opt := range m.options {
		entries[i] = session.Entry{Label: opt.Label(), Marker: opt.Marker()}
	}
	return entries
}

// sortedIndex is label's position among the option labels sorted
// lexicographically, or 0 when absent.
func (m *Menu) sortedIndex(label string) int {
	labels := make([]string, len(m.options))
	for i, opt := range m.options {
		labels[i] = opt.Label()
	}
	sort.Strings(labels)
	for i, l := range labels {
		if l == label {
			return i
		}
	}
	return 0
}

// release removes opt from the menu's options and its label from picks.
func (m *Menu) release(opt Item) {
	for i, o := range m.options {
		if o == opt {
			m.options = append(m.options[:i:i], m.options[i+1:]...)
			break
		}
	}
	for i, l := range m.picks {
		if l == opt.Label() {
			m.picks = append(m.picks[:i:i], m.picks[i+1:]...)
			break
		}
	}
}

func (m *Menu) recordPick(label string) {
	m.picks = append(m.picks, label)
}

func (m *Menu) removePick(label string) error {
	for i, l := range m.picks {
		if l == label {
			m.picks = append(m.picks[:i], m.picks[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("menu %q: %w: %q", m.label, ErrPickMissing, label)
}

// Walk calls fn for root and every menu below it, depth first.
func Walk(root *Menu, fn func(*Menu)) {
	if root == nil {
		return
	}
	fn(root)
	for _, opt := range root.options {
		if sub := opt.submenu(); sub != nil {
			Walk(sub, fn)
		}
	}
}
