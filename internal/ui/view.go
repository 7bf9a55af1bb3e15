package ui

import (
	"strings"

	"github.com/atomicstack/fzmenu/internal/render"
)

// View implements tea.Model. A finished model renders nothing so the
// screen is left clear.
func (m *Model) View() string {
	if m.done {
		return ""
	}
	frame := m.state.Frame()
	frame.Caret = m.caret.View()
	lines := render.Lines(frame, m.styles, m.width)
	if m.height > 0 && len(lines) > m.height {
		if frame.Reverse {
			lines = lines[:m.height]
		} else {
			lines = lines[len(lines)-m.height:]
		}
	}
	return strings.Join(lines, "\n")
}
