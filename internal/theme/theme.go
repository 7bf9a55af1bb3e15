package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared by the renderers.
type Styles struct {
	Item                  *lipgloss.Style
	ItemIndicator         *lipgloss.Style
	SelectedItemIndicator *lipgloss.Style
	SelectedItem          *lipgloss.Style
	Marker                *lipgloss.Style
	Title                 *lipgloss.Style
	Query                 *lipgloss.Style
	Info                  *lipgloss.Style
	Status                *lipgloss.Style
	Cursor                *lipgloss.Style
}

var defaultStyles = Styles{
	Item: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	ItemIndicator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	),
	SelectedItemIndicator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Background(lipgloss.Color("238")),
	),
	SelectedItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("82")).Background(lipgloss.Color("238")).Bold(true),
	),
	Marker: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
	),
	Title: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	Query: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
	),
	Status: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Cursor: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("34")),
	),
}

// Default exposes the standard style set.
func Default() *Styles {
	return &defaultStyles
}

// Plain returns a style set that renders text unchanged.
func Plain() *Styles {
	return &Styles{}
}

// Render applies style to text, passing text through when style is nil.
func Render(style *lipgloss.Style, text string) string {
	if style == nil || text == "" {
		return text
	}
	return style.Render(text)
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
