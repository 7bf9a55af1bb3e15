// Package tty owns the controlling terminal: raw mode, rune reads and size.
package tty

import (
	"bufio"
	"fmt"
	"os"

	"golang.org/x/term"
)

const devicePath = "/dev/tty"

// Device is a terminal opened for interactive selection. It reads keys from
// in and paints to out, which are the same file when /dev/tty is available.
type Device struct {
	in     *os.File
	out    *os.File
	owned  bool
	reader *bufio.Reader
	state  *term.State
}

// Open prefers /dev/tty so that stdin and stdout stay free for piping. It
// falls back to stdin/stdout when stdin is itself a terminal.
func Open() (*Device, error) {
	f, err := os.OpenFile(devicePath, os.O_RDWR, 0)
	if err == nil {
		return newDevice(f, f, true), nil
	}
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return newDevice(os.Stdin, os.Stdout, false), nil
	}
	return nil, fmt.Errorf("open %s: %w", devicePath, err)
}

func newDevice(in, out *os.File, owned bool) *Device {
	return &Device{in: in, out: out, owned: owned, reader: bufio.NewReader(in)}
}

// Input is the file keys are read from.
func (d *Device) Input() *os.File {
	return d.in
}

// Output is the file frames are written to.
func (d *Device) Output() *os.File {
	return d.out
}

// MakeRaw switches the input to raw mode. Calling it twice is a no-op.
func (d *Device) MakeRaw() error {
	if d.state != nil {
		return nil
	}
	state, err := term.MakeRaw(int(d.in.Fd()))
	if err != nil {
		return fmt.Errorf("enter raw mode: %w", err)
	}
	d.state = state
	return nil
}

// Restore returns the input to the mode it had before MakeRaw.
func (d *Device) Restore() error {
	if d.state == nil {
		return nil
	}
	state := d.state
	d.state = nil
	if err := term.Restore(int(d.in.Fd()), state); err != nil {
		return fmt.Errorf("restore terminal: %w", err)
	}
	return nil
}

// Raw reports whether the device is in raw mode.
func (d *Device) Raw() bool {
	return d.state != nil
}

func (d *Device) Read(p []byte) (int, error) {
	return d.reader.Read(p)
}

// ReadRune makes the device an io.RuneReader for keys.NewDecoder.
func (d *Device) ReadRune() (rune, int, error) {
	return d.reader.ReadRune()
}

func (d *Device) Write(p []byte) (int, error) {
	return d.out.Write(p)
}

// Size returns the output's width and height in cells.
func (d *Device) Size() (int, int, error) {
	return term.GetSize(int(d.out.Fd()))
}

// Suspended runs fn with the terminal in cooked mode and re-enters raw mode
// afterwards if it was raw before.
func (d *Device) Suspended(fn func() error) error {
	wasRaw := d.Raw()
	if wasRaw {
		if err := d.Restore(); err != nil {
			return err
		}
	}
	err := fn()
	if wasRaw {
		if rawErr := d.MakeRaw(); rawErr != nil && err == nil {
			err = rawErr
		}
	}
	return err
}

// Close restores the terminal and closes /dev/tty if Open opened it. Later
// calls are no-ops.
func (d *Device) Close() error {
	err := d.Restore()
	if d.owned {
		d.owned = false
		if cerr := d.in.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}
