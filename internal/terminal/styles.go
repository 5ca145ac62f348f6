package terminal

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Styles holds the text styles used on screen.
// Colors are only emitted when the writer the styles were built for is a color-capable terminal.
type Styles struct {
	Title    lipgloss.Style
	Header   lipgloss.Style
	Selected lipgloss.Style
	Hint     lipgloss.Style
	Success  lipgloss.Style
	Warning  lipgloss.Style
	Error    lipgloss.Style
	Info     lipgloss.Style
	Step     lipgloss.Style
}

// NewStyles builds the palette for output written to w.
func NewStyles(w io.Writer) Styles {
	r := lipgloss.NewRenderer(w)
	return Styles{
		Title:    r.NewStyle().Bold(true),
		Header:   r.NewStyle().Bold(true).Underline(true),
		Selected: r.NewStyle().Reverse(true),
		Hint:     r.NewStyle().Faint(true),
		Success:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("2")),
		Warning:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("3")),
		Error:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
		Info:     r.NewStyle().Bold(true).Foreground(lipgloss.Color("4")),
		Step:     r.NewStyle().Bold(true).Foreground(lipgloss.Color("6")),
	}
}
