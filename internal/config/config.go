package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/atomicstack/fzmenu/internal/app"
	"github.com/atomicstack/fzmenu/internal/match"
	"github.com/atomicstack/fzmenu/internal/session"
)

// ErrHelp is returned by LoadArgs when -h or --help was given.
var ErrHelp = pflag.ErrHelp

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envMenu       = "FZMENU_MENU"
	envLimit      = "FZMENU_LIMIT"
	envReverse    = "FZMENU_REVERSE"
	envTitle      = "FZMENU_TITLE"
	envMatcher    = "FZMENU_MATCHER"
	envDriver     = "FZMENU_DRIVER"
	envVerbose    = "FZMENU_VERBOSE"
	envTrace      = "FZMENU_TRACE"
	envLogFile    = "FZMENU_LOG_FILE"
	envPlain      = "FZMENU_PLAIN"
	envWidth      = "FZMENU_WIDTH"
	defaultDriver = app.DriverRaw
)

type values struct {
	menu       *string
	pick       *bool
	index      *bool
	limit      *int
	reverse    *bool
	title      *string
	matcher    *string
	driver     *string
	tree       *bool
	printPicks *bool
	trace      *bool
	verbose    *bool
	logFile    *string
	plain      *bool
	width      *int
}

func newFlagSet(env map[string]string) (*pflag.FlagSet, values) {
	fs := pflag.NewFlagSet("fzmenu", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.SortFlags = false
	v := values{
		menu:       fs.StringP("menu", "m", envOrDefault(env, envMenu, ""), "YAML file describing the menu tree (built-in demo when empty)"),
		pick:       fs.Bool("pick", false, "pick one line from stdin and print it"),
		index:      fs.Bool("index", false, "with --pick, print the zero-based index instead of the value"),
		limit:      fs.IntP("limit", "l", envOrInt(env, envLimit, session.DefaultLimit), "maximum number of candidates shown"),
		reverse:    fs.Bool("reverse", envOrBool(env, envReverse, false), "show the prompt above the candidates"),
		title:      fs.String("title", envOrDefault(env, envTitle, ""), "prompt title for --pick"),
		matcher:    fs.String("matcher", envOrDefault(env, envMatcher, "fuzzy"), "match provider: "+strings.Join(match.Names(), ", ")),
		driver:     fs.String("driver", envOrDefault(env, envDriver, defaultDriver), "terminal driver: raw or tea"),
		tree:       fs.Bool("tree", false, "print the menu tree and exit"),
		printPicks: fs.Bool("print-picks", false, "print the picks of every menu on exit"),
		trace:      fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging"),
		verbose:    fs.Bool("verbose", envOrBool(env, envVerbose, false), "log lifecycle messages"),
		logFile:    fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file"),
		plain:      fs.Bool("plain", envOrBool(env, envPlain, false), "disable colours and styling"),
		width:      fs.Int("width", envOrInt(env, envWidth, 0), "render width in cells (0 uses terminal width)"),
	}
	return fs, v
}

// Usage describes the flags.
func Usage() string {
	fs, _ := newFlagSet(nil)
	return "Usage: fzmenu [flags]\n\n" + fs.FlagUsages()
}

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)
	fs, v := newFlagSet(env)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	if *v.limit < 1 {
		return Config{}, fmt.Errorf("limit must be >= 1 (got %d)", *v.limit)
	}
	if *v.width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *v.width)
	}

	cfg := Config{
		App: app.Config{
			MenuPath:   *v.menu,
			Pick:       *v.pick,
			Index:      *v.index,
			Limit:      *v.limit,
			Reverse:    *v.reverse,
			Title:      *v.title,
			Matcher:    *v.matcher,
			Driver:     *v.driver,
			Tree:       *v.tree,
			PrintPicks: *v.printPicks,
			Verbose:    *v.verbose,
			Plain:      *v.plain,
			Width:      *v.width,
		},
		Logging: Logging{
			FilePath: *v.logFile,
			Trace:    *v.trace,
		},
		Flags: map[string]string{
			"menu":       *v.menu,
			"pick":       strconv.FormatBool(*v.pick),
			"index":      strconv.FormatBool(*v.index),
			"limit":      strconv.Itoa(*v.limit),
			"reverse":    strconv.FormatBool(*v.reverse),
			"title":      *v.title,
			"matcher":    *v.matcher,
			"driver":     *v.driver,
			"tree":       strconv.FormatBool(*v.tree),
			"printPicks": strconv.FormatBool(*v.printPicks),
			"trace":      strconv.FormatBool(*v.trace),
			"verbose":    strconv.FormatBool(*v.verbose),
			"logFile":    *v.logFile,
			"plain":      strconv.FormatBool(*v.plain),
			"width":      strconv.Itoa(*v.width),
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits. Help requests print the usage
// and exit cleanly.
func MustLoad() Config {
	cfg, err := Load()
	if errors.Is(err, ErrHelp) {
		fmt.Fprint(os.Stdout, Usage())
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate rejects flag combinations the application cannot run.
func Validate(cfg Config) error {
	a := cfg.App
	if _, err := match.ByName(a.Matcher); err != nil {
		return err
	}
	switch a.Driver {
	case app.DriverRaw, app.DriverTea:
	default:
		return fmt.Errorf("unknown driver %q (want %s or %s)", a.Driver, app.DriverRaw, app.DriverTea)
	}
	if a.Index && !a.Pick {
		return errors.New("--index requires --pick")
	}
	if a.Pick && (a.Tree || a.PrintPicks || a.MenuPath != "") {
		return errors.New("--pick cannot be combined with --menu, --tree or --print-picks")
	}
	return nil
}
