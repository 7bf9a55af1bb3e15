// Package render formats one frame of a selection session.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/atomicstack/fzmenu/internal/theme"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"
)

const (
	cursorIndicator = "▌ "
	itemIndicator   = "  "
	clearScreen     = "\x1b[H\x1b[2J"
)

// Frame is everything needed to draw one iteration of a session.
type Frame struct {
	Title      string
	Query      string
	Caret      string
	Status     string
	Candidates []string
	Markers    map[string]string
	Cursor     int
	Reverse    bool
}

// Lines formats f into display lines. A width of zero or less disables
// truncation and padding.
func Lines(f Frame, styles *theme.Styles, width int) []string {
	if styles == nil {
		styles = theme.Plain()
	}
	list := candidateLines(f, styles, width)
	prompt := promptLine(f, styles, width)
	status := ""
	if f.Status != "" {
		status = theme.Render(styles.Status, truncateText(f.Status, width))
	}

	lines := make([]string, 0, len(list)+2)
	if f.Reverse {
		lines = append(lines, prompt)
		if status != "" {
			lines = append(lines, status)
		}
		return append(lines, list...)
	}
	lines = append(lines, list...)
	if status != "" {
		lines = append(lines, status)
	}
	return append(lines, prompt)
}

// promptLine keeps title, query and caret within width. The caret's cells
// are reserved before the title and query are truncated.
func promptLine(f Frame, styles *theme.Styles, width int) string {
	if width > 0 && f.Caret != "" {
		width -= ansi.StringWidth(f.Caret)
		if width < 1 {
			width = 1
		}
	}
	title := truncateText(f.Title, width)
	room := width - runewidth.StringWidth(title)
	query := f.Query
	if width > 0 {
		if room <= 0 {
			query = ""
		} else {
			query = truncateText(query, room)
		}
	}
	return theme.Render(styles.Title, title) + theme.Render(styles.Query, query) + f.Caret
}

func candidateLines(f Frame, styles *theme.Styles, width int) []string {
	if len(f.Candidates) == 0 {
		msg := "(no entries)"
		if f.Query != "" {
			msg = fmt.Sprintf("No matches for %q", f.Query)
		}
		return []string{theme.Render(styles.Info, truncateText(msg, width))}
	}
	bodyWidth := 0
	if width > 0 {
		bodyWidth = width - runewidth.StringWidth(itemIndicator)
		if bodyWidth < 1 {
			bodyWidth = 1
		}
	}
	lines := make([]string, len(f.Candidates))
	for i, label := range f.Candidates {
		if i != f.Cursor {
			lines[i] = theme.Render(styles.ItemIndicator, itemIndicator) + itemBody(label, f.Markers[label], styles.Item, styles, bodyWidth, false)
			continue
		}
		lines[i] = theme.Render(styles.SelectedItemIndicator, cursorIndicator) + itemBody(label, f.Markers[label], styles.SelectedItem, styles, bodyWidth, true)
	}
	return lines
}

// itemBody renders label and marker in their own styles. A row that has to
// be truncated is rendered as one segment in the row style.
func itemBody(label, marker string, rowStyle *lipgloss.Style, styles *theme.Styles, width int, pad bool) string {
	text := label + marker
	body := truncateText(text, width)
	var out string
	if body == text && marker != "" {
		out = theme.Render(rowStyle, label) + theme.Render(styles.Marker, marker)
	} else {
		out = theme.Render(rowStyle, body)
	}
	if pad && width > 0 {
		if n := width - runewidth.StringWidth(body); n > 0 {
			out += theme.Render(rowStyle, strings.Repeat(" ", n))
		}
	}
	return out
}

func truncateText(text string, width int) string {
	if width <= 0 || runewidth.StringWidth(text) <= width {
		return text
	}
	if width == 1 {
		return "…"
	}
	return truncate.StringWithTail(text, uint(width), "…")
}

// Terminal repaints the whole screen for every frame.
type Terminal struct {
	w      io.Writer
	styles *theme.Styles
	size   func() (int, int, error)
}

// Option customises a Terminal.
type Option func(*Terminal)

// WithStyles overrides the default style set.
func WithStyles(styles *theme.Styles) Option {
	return func(t *Terminal) { t.styles = styles }
}

// WithSize supplies the display dimensions used for truncation.
func WithSize(size func() (int, int, error)) Option {
	return func(t *Terminal) { t.size = size }
}

// NewTerminal renders frames to w.
func NewTerminal(w io.Writer, opts ...Option) *Terminal {
	t := &Terminal{w: w, styles: theme.Default()}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Render clears the display and writes the frame. Lines end in CRLF because
// the device is in raw mode.
func (t *Terminal) Render(f Frame) error {
	lines := Lines(f, t.styles, t.width())
	_, err := io.WriteString(t.w, clearScreen+strings.Join(lines, "\r\n"))
	return err
}

// Clear blanks the display.
func (t *Terminal) Clear() error {
	_, err := io.WriteString(t.w, clearScreen)
	return err
}

func (t *Terminal) width() int {
	if t.size == nil {
		return 0
	}
	w, _, err := t.size()
	if err != nil {
		return 0
	}
	return w
}
