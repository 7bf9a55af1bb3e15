package command

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/atomicstack/fzmenu/internal/logging/events"
)

// Request describes one shell command run on behalf of an action.
type Request struct {
	Label   string
	Command string
}

// Wrapper runs fn around a command, typically to leave raw mode for its
// duration.
type Wrapper func(fn func() error) error

// Bus executes action commands through the shell.
type Bus struct {
	shell   string
	stdin   io.Reader
	stdout  io.Writer
	stderr  io.Writer
	wrapper Wrapper
}

// Option configures a Bus.
type Option func(*Bus)

// WithShell overrides the shell used to run commands. Defaults to $SHELL or /bin/sh.
func WithShell(shell string) Option {
	return func(b *Bus) {
		if shell != "" {
			b.shell = shell
		}
	}
}

// WithIO sets the streams handed to commands.
func WithIO(stdin io.Reader, stdout, stderr io.Writer) Option {
	return func(b *Bus) {
		b.stdin, b.stdout, b.stderr = stdin, stdout, stderr
	}
}

// WithWrapper installs a wrapper around every command.
func WithWrapper(w Wrapper) Option {
	return func(b *Bus) {
		b.wrapper = w
	}
}

// New initialises a command bus instance.
func New(opts ...Option) *Bus {
	shell := os.Getenv("SHELL")
	if shell == "" {
		shell = "/bin/sh"
	}
	b := &Bus{
		shell:  shell,
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Execute runs req.Command and waits for it while emitting trace logs. An
// empty command is skipped.
func (b *Bus) Execute(ctx context.Context, req Request) error {
	if req.Command == "" {
		events.Command.Skip(req.Label)
		return nil
	}
	events.Command.Queue(req.Label, req.Command)
	run := func() error {
		cmd := exec.CommandContext(ctx, b.shell, "-c", req.Command)
		cmd.Stdin = b.stdin
		cmd.Stdout = b.stdout
		cmd.Stderr = b.stderr
		return cmd.Run()
	}
	var err error
	if b.wrapper != nil {
		err = b.wrapper(run)
	} else {
		err = run()
	}
	events.Command.Result(req.Label, exitCode(err))
	if err != nil {
		return fmt.Errorf("run %q: %w", req.Command, err)
	}
	return nil
}

func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}
