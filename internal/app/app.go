package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-logr/logr"

	"github.com/atomicstack/fzmenu/internal/command"
	"github.com/atomicstack/fzmenu/internal/keys"
	"github.com/atomicstack/fzmenu/internal/logging"
	"github.com/atomicstack/fzmenu/internal/logging/events"
	"github.com/atomicstack/fzmenu/internal/match"
	"github.com/atomicstack/fzmenu/internal/menu"
	"github.com/atomicstack/fzmenu/internal/menufile"
	"github.com/atomicstack/fzmenu/internal/render"
	"github.com/atomicstack/fzmenu/internal/session"
	"github.com/atomicstack/fzmenu/internal/theme"
	"github.com/atomicstack/fzmenu/internal/tty"
	"github.com/atomicstack/fzmenu/internal/ui"
)

const (
	DriverRaw = "raw"
	DriverTea = "tea"

	defaultPickTitle = "pick » "
)

// Config describes user-provided application options.
type Config struct {
	MenuPath   string
	Pick       bool
	Index      bool
	Limit      int
	Reverse    bool
	Title      string
	Matcher    string
	Driver     string
	Tree       bool
	PrintPicks bool
	Verbose    bool
	// Plain disables styling.
	Plain bool
	// Width pins the render width; zero follows the terminal.
	Width int
}

// Device is the interactive terminal the selection runs on.
type Device interface {
	io.Reader
	io.RuneReader
	io.Writer
	MakeRaw() error
	Size() (int, int, error)
	Suspended(fn func() error) error
	Close() error
}

// fileDevice is implemented by devices backed by real files, which the
// Bubble Tea driver needs for its own terminal handling.
type fileDevice interface {
	Input() *os.File
	Output() *os.File
}

type env struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	open   func() (Device, error)
}

// Run executes the configured mode against the controlling terminal.
func Run(cfg Config) error {
	return run(cfg, env{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
		open:   openTTY,
	})
}

func openTTY() (Device, error) {
	d, err := tty.Open()
	if err != nil {
		return nil, err
	}
	return d, nil
}

func run(cfg Config, e env) error {
	log := logging.Logger().WithName("app")
	provider, err := match.ByName(cfg.Matcher)
	if err != nil {
		return err
	}

	if cfg.Tree {
		root, _, err := loadMenu(cfg, nil, e)
		if err != nil {
			return err
		}
		return root.Tree(e.stdout)
	}

	if cfg.Pick {
		return runPick(cfg, e, provider, log)
	}
	return runMenu(cfg, e, provider, log)
}

func runPick(cfg Config, e env, provider match.Provider, log logr.Logger) error {
	values, rows, err := readLines(e.stdin)
	if err != nil {
		return err
	}
	if len(values) == 0 {
		return errors.New("pick: no candidates on stdin")
	}
	dev, err := e.open()
	if err != nil {
		return err
	}
	defer dev.Close()

	sel, err := newSelector(cfg, dev, provider)
	if err != nil {
		return err
	}
	title := cfg.Title
	if title == "" {
		title = defaultPickTitle
	}
	opts := session.Options{Title: title, Limit: cfg.Limit, Reverse: cfg.Reverse}
	log.V(1).Info("pick started", "candidates", len(values), "driver", cfg.Driver)

	var out string
	if cfg.Index {
		idx, perr := session.PickIndex(sel, values, opts)
		err = perr
		if perr == nil {
			out = fmt.Sprint(rows[idx])
		}
	} else {
		out, err = session.PickValue(sel, values, opts)
	}
	if cerr := dev.Close(); cerr != nil && err == nil {
		err = cerr
	}
	if err != nil {
		events.App.Exit(err.Error())
		return err
	}
	events.App.Exit("picked")
	_, err = fmt.Fprintln(e.stdout, out)
	return err
}

func runMenu(cfg Config, e env, provider match.Provider, log logr.Logger) error {
	dev, err := e.open()
	if err != nil {
		return err
	}
	defer dev.Close()

	root, report, err := loadMenu(cfg, dev, e)
	if err != nil {
		return err
	}
	sel, err := newSelector(cfg, dev, provider)
	if err != nil {
		return err
	}
	log.Info("menu started", "menu", root.Label(), "driver", cfg.Driver)
	nav := menu.NewNavigator(sel, menu.WithLimit(cfg.Limit), menu.WithReverse(cfg.Reverse))
	err = nav.Run(root)
	if cerr := dev.Close(); cerr != nil && err == nil {
		err = cerr
	}
	if err != nil {
		events.App.Exit(err.Error())
		return err
	}
	events.App.Exit("back at root")
	log.Info("menu closed", "menu", root.Label())

	for _, line := range report.chosen {
		if _, err := fmt.Fprintln(e.stdout, line); err != nil {
			return err
		}
	}
	if cfg.Verbose {
		for _, label := range report.ran {
			fmt.Fprintf(e.stderr, "fzmenu: ran %s\n", label)
		}
	}
	if cfg.PrintPicks {
		for _, set := range menu.CollectPicks(root) {
			fmt.Fprintf(e.stdout, "%s: %s\n", strings.Join(set.Path, " → "), strings.Join(set.Picks, ", "))
		}
	}
	return nil
}

// report collects what the actions did during navigation.
type report struct {
	chosen []string
	ran    []string
}

// reportingRunner records the commands that succeeded.
type reportingRunner struct {
	bus    *command.Bus
	report *report
}

func (r reportingRunner) Execute(ctx context.Context, req command.Request) error {
	if err := r.bus.Execute(ctx, req); err != nil {
		return err
	}
	r.report.ran = append(r.report.ran, req.Label)
	return nil
}

func loadMenu(cfg Config, dev Device, e env) (*menu.Menu, *report, error) {
	rep := &report{}
	if cfg.MenuPath == "" {
		return demoMenu(rep), rep, nil
	}
	opts := []command.Option{command.WithIO(e.stdin, e.stdout, e.stderr)}
	if dev != nil && cfg.Driver == DriverRaw {
		opts = append(opts, command.WithWrapper(dev.Suspended))
	}
	root, err := menufile.Load(cfg.MenuPath, reportingRunner{bus: command.New(opts...), report: rep})
	if err != nil {
		return nil, nil, err
	}
	return root, rep, nil
}

func demoMenu(rep *report) *menu.Menu {
	choose := menu.WithAction(func(a *menu.Action) {
		rep.chosen = append(rep.chosen, a.Label())
		rep.ran = append(rep.ran, a.Label())
	})
	return menu.MustMenu("Main",
		menu.MustMenu("Fruits",
			menu.NewAction("Apple", choose),
			menu.NewAction("Banana", choose),
		),
		menu.MustMenu("Options",
			menu.NewPick("Dark mode", false),
			menu.NewPick("Line numbers", true),
			menu.NewPick("Wrap", false),
		),
		menu.NewAction("Exit").ExitAfter(),
	)
}

func newSelector(cfg Config, dev Device, provider match.Provider) (session.Selector, error) {
	styles := theme.Default()
	if cfg.Plain {
		styles = theme.Plain()
	}
	switch cfg.Driver {
	case DriverTea:
		files, ok := dev.(fileDevice)
		if !ok {
			return nil, fmt.Errorf("driver %s needs a terminal device", DriverTea)
		}
		return ui.NewSelector(
			ui.WithProvider(provider),
			ui.WithStyles(styles),
			ui.WithWidth(cfg.Width),
			ui.WithProgramOptions(tea.WithInput(files.Input()), tea.WithOutput(files.Output())),
		), nil
	case DriverRaw, "":
		if err := dev.MakeRaw(); err != nil {
			return nil, err
		}
		size := dev.Size
		if cfg.Width > 0 {
			size = func() (int, int, error) { return cfg.Width, 0, nil }
		}
		display := render.NewTerminal(dev, render.WithStyles(styles), render.WithSize(size))
		return session.New(keys.NewDecoder(dev), display, provider), nil
	}
	return nil, fmt.Errorf("unknown driver %q", cfg.Driver)
}

// readLines returns the non-blank input lines and, for each, its zero-based
// line number in the input.
func readLines(r io.Reader) ([]string, []int, error) {
	var lines []string
	var rows []int
	scanner := bufio.NewScanner(r)
	for row := 0; scanner.Scan(); row++ {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		lines = append(lines, line)
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("read candidates: %w", err)
	}
	return lines, rows, nil
}
