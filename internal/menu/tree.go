package menu

import (
	"fmt"
	"io"
	"strings"

	"github.com/atomicstack/fzmenu/internal/format/table"
)

// Tree writes an indented outline of the options below m, one per line,
// with each option's kind in a second column.
func (m *Menu) Tree(w io.Writer) error {
	rows := treeRows(m, 0, nil)
	for _, line := range table.Format(rows, []table.Alignment{table.AlignLeft, table.AlignLeft}) {
		if _, err := fmt.Fprintln(w, strings.TrimRight(line, " ")); err != nil {
			return err
		}
	}
	return nil
}

func treeRows(m *Menu, depth int, rows [][]string) [][]string {
	indent := strings.Repeat("  ", depth)
	for _, opt := range m.options {
		rows = append(rows, []string{indent + opt.Label() + opt.Marker(), opt.kind()})
		if sub := opt.submenu(); sub != nil {
			rows = treeRows(sub, depth+1, rows)
		}
	}
	return rows
}

// PickSet is the picks of one menu, identified by its path.
type PickSet struct {
	Path  []string
	Picks []string
}

// CollectPicks returns the picks of every menu under root that has pick
// options, depth first.
func CollectPicks(root *Menu) []PickSet {
	var sets []PickSet
	Walk(root, func(m *Menu) {
		for _, opt := range m.options {
			if opt.kind() == "pick" {
				sets = append(sets, PickSet{Path: m.Path(), Picks: m.Picks()})
				return
			}
		}
	})
	return sets
}
