package report

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Color palette - keeping it minimal and accessible.
var (
	ColorPrimary   = lipgloss.Color("39")  // Blue
	ColorSecondary = lipgloss.Color("245") // Gray
	ColorSuccess   = lipgloss.Color("34")  // Green
	ColorMuted     = lipgloss.Color("240") // Dark gray
)

// styles holds the text styles for one output destination. The zero value
// renders plain text.
type styles struct {
	title   func(string) string
	label   func(string) string
	value   func(string) string
	path    func(string) string
	muted   func(string) string
	enabled bool
}

func plain(s string) string { return s }

func plainStyles() styles {
	return styles{title: plain, label: plain, value: plain, path: plain, muted: plain}
}

// newStyles returns lipgloss styles bound to w's color profile, or plain
// styles when color is disabled.
func newStyles(w io.Writer, color bool) styles {
	if !color {
		return plainStyles()
	}

	r := lipgloss.NewRenderer(w)
	title := r.NewStyle().Bold(true).Foreground(ColorPrimary)
	label := r.NewStyle().Foreground(ColorSecondary)
	value := r.NewStyle().Foreground(ColorSuccess)
	path := r.NewStyle().Bold(true)
	muted := r.NewStyle().Foreground(ColorMuted)

	return styles{
		title:   renderWith(title),
		label:   renderWith(label),
		value:   renderWith(value),
		path:    renderWith(path),
		muted:   renderWith(muted),
		enabled: true,
	}
}

func renderWith(style lipgloss.Style) func(string) string {
	return func(s string) string { return style.Render(s) }
}

// Symbols for visual feedback.
const (
	SymbolCheck  = "✓"
	SymbolCross  = "✗"
	SymbolBullet = "•"
)
