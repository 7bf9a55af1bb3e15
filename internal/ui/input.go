package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/fzmenu/internal/keys"
)

// keysFromMsg maps a Bubble Tea key message onto the decoder's key set.
// Escape is dropped like the raw decoder's swallowed escape prefix, and runes
// outside the printable set act as backspace.
func keysFromMsg(msg tea.KeyMsg) []keys.Key {
	switch msg.Type {
	case tea.KeyEnter, tea.KeyCtrlJ:
		return []keys.Key{keys.Of(keys.KindEnter)}
	case tea.KeyTab:
		return []keys.Key{keys.Of(keys.KindTab)}
	case tea.KeyUp:
		return []keys.Key{keys.Of(keys.KindUp)}
	case tea.KeyDown:
		return []keys.Key{keys.Of(keys.KindDown)}
	case tea.KeyRight:
		return []keys.Key{keys.Of(keys.KindRight)}
	case tea.KeyLeft:
		return []keys.Key{keys.Of(keys.KindBack)}
	case tea.KeyBackspace, tea.KeyCtrlH, tea.KeyDelete:
		return []keys.Key{keys.Of(keys.KindBackspace)}
	case tea.KeyCtrlC:
		return []keys.Key{keys.Of(keys.KindInterrupt)}
	case tea.KeySpace:
		return []keys.Key{keys.Printable(' ')}
	case tea.KeyRunes:
		out := make([]keys.Key, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			if keys.IsPrintable(r) {
				out = append(out, keys.Printable(r))
			} else {
				out = append(out, keys.Of(keys.KindBackspace))
			}
		}
		return out
	}
	return nil
}
