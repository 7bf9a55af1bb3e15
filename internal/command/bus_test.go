package command

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestBus(stdout *bytes.Buffer, opts ...Option) *Bus {
	base := []Option{WithShell("/bin/sh"), WithIO(strings.NewReader(""), stdout, stdout)}
	return New(append(base, opts...)...)
}

func TestExecuteRunsCommand(t *testing.T) {
	var out bytes.Buffer
	bus := newTestBus(&out)
	require.NoError(t, bus.Execute(context.Background(), Request{Label: "hello", Command: "echo hello"}))
	require.Equal(t, "hello\n", out.String())
}

func TestExecuteSkipsEmptyCommand(t *testing.T) {
	var out bytes.Buffer
	bus := newTestBus(&out, WithWrapper(func(fn func() error) error {
		t.Fatal("wrapper must not run for empty commands")
		return nil
	}))
	require.NoError(t, bus.Execute(context.Background(), Request{Label: "noop"}))
	require.Empty(t, out.String())
}

func TestExecuteReportsExitStatus(t *testing.T) {
	var out bytes.Buffer
	bus := newTestBus(&out)
	err := bus.Execute(context.Background(), Request{Label: "fail", Command: "exit 3"})
	require.Error(t, err)
	var exitErr *exec.ExitError
	require.True(t, errors.As(err, &exitErr))
	require.Equal(t, 3, exitErr.ExitCode())
	require.Equal(t, 3, exitCode(exitErr))
}

func TestExecuteRunsInsideWrapper(t *testing.T) {
	var out bytes.Buffer
	var order []string
	bus := newTestBus(&out, WithWrapper(func(fn func() error) error {
		order = append(order, "before")
		err := fn()
		order = append(order, "after")
		return err
	}))
	require.NoError(t, bus.Execute(context.Background(), Request{Label: "x", Command: "true"}))
	require.Equal(t, []string{"before", "after"}, order)
}

func TestExitCode(t *testing.T) {
	require.Equal(t, 0, exitCode(nil))
	require.Equal(t, -1, exitCode(errors.New("spawn failed")))
}
