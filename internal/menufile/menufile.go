// Package menufile loads menu trees from YAML documents.
//
// A document is a single node. Nodes with items become submenus, nodes with
// pick become toggles and every other node is an action that optionally runs
// a shell command:
//
//	label: Main
//	items:
//	  - label: Build
//	    run: make build
//	  - label: Verbose
//	    pick: true
//	  - label: Quit
//	    exit: true
package menufile

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/atomicstack/fzmenu/internal/command"
	"github.com/atomicstack/fzmenu/internal/menu"
)

// ErrInvalid marks a menu document that cannot describe a tree.
var ErrInvalid = errors.New("invalid menu file")

// Runner executes the shell command of an action node.
type Runner interface {
	Execute(ctx context.Context, req command.Request) error
}

// Node is the YAML shape of one menu entry.
type Node struct {
	Label  string `yaml:"label"`
	Items  []Node `yaml:"items,omitempty"`
	Run    string `yaml:"run,omitempty"`
	Pick   bool   `yaml:"pick,omitempty"`
	Picked bool   `yaml:"picked,omitempty"`
	Exit   bool   `yaml:"exit,omitempty"`
}

// Load reads and parses the file at path.
func Load(path string, runner Runner) (*menu.Menu, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read menu file: %w", err)
	}
	root, err := Parse(data, runner)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return root, nil
}

// Parse builds a menu tree from a YAML document. The root node must have
// items. A nil runner runs commands through a default command.Bus.
func Parse(data []byte, runner Runner) (*menu.Menu, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var root Node
	if err := dec.Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalid)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if len(root.Items) == 0 {
		return nil, fmt.Errorf("%w: root %q has no items", ErrInvalid, root.Label)
	}
	if runner == nil {
		runner = command.New()
	}
	b := builder{runner: runner}
	item, err := b.build(root, nil)
	if err != nil {
		return nil, err
	}
	return item.(*menu.Menu), nil
}

type builder struct {
	runner Runner
}

func (b builder) build(n Node, path []string) (menu.Item, error) {
	if strings.TrimSpace(n.Label) == "" {
		return nil, fmt.Errorf("%w: %s: item without label", ErrInvalid, where(path))
	}
	path = append(path, n.Label)
	switch {
	case len(n.Items) > 0:
		if n.Pick || n.Run != "" || n.Exit {
			return nil, fmt.Errorf("%w: %s: submenu cannot have pick, run or exit", ErrInvalid, where(path))
		}
		children := make([]menu.Item, 0, len(n.Items))
		for _, child := range n.Items {
			item, err := b.build(child, path)
			if err != nil {
				return nil, err
			}
			children = append(children, item)
		}
		m, err := menu.NewMenu(n.Label, children...)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", where(path), err)
		}
		return m, nil
	case n.Pick:
		if n.Run != "" || n.Exit {
			return nil, fmt.Errorf("%w: %s: pick cannot have run or exit", ErrInvalid, where(path))
		}
		return menu.NewPick(n.Label, n.Picked), nil
	default:
		if n.Picked {
			return nil, fmt.Errorf("%w: %s: picked requires pick", ErrInvalid, where(path))
		}
		var handlers []menu.Handler
		if n.Run != "" {
			handlers = append(handlers, b.runHandler(n.Run))
		}
		a := menu.NewAction(n.Label, handlers...)
		if n.Exit {
			a.ExitAfter()
		}
		return a, nil
	}
}

func (b builder) runHandler(cmd string) menu.Handler {
	runner := b.runner
	return menu.ErrFunc(func(a *menu.Action) error {
		return runner.Execute(context.Background(), command.Request{Label: a.Label(), Command: cmd})
	})
}

func where(path []string) string {
	if len(path) == 0 {
		return "root"
	}
	return strings.Join(path, " → ")
}
