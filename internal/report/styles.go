package report

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/gubarz/schemetools/internal/config"
)

// Styles holds the styles of status and warning lines
type Styles struct {
	Path      lipgloss.Style
	Changed   lipgloss.Style
	Unchanged lipgloss.Style
	Warning   lipgloss.Style
}

// DefaultStyles returns styles rendered for w. Color is dropped when w is
// not a terminal.
func DefaultStyles(w io.Writer) *Styles {
	r := lipgloss.NewRenderer(w)
	return &Styles{
		Path:      r.NewStyle().Bold(true),
		Changed:   r.NewStyle().Foreground(parseANSIColor("32")),
		Unchanged: r.NewStyle().Foreground(parseANSIColor("90")),
		Warning:   r.NewStyle().Foreground(parseANSIColor("33")),
	}
}

// LoadFromConfig updates colors from configuration
func (s *Styles) LoadFromConfig() {
	s.Changed = s.Changed.Foreground(parseANSIColor(config.GetColorChanged()))
	s.Unchanged = s.Unchanged.Foreground(parseANSIColor(config.GetColorUnchanged()))
	s.Warning = s.Warning.Foreground(parseANSIColor(config.GetColorWarning()))
}

// parseANSIColor converts ANSI color codes to lipgloss colors
func parseANSIColor(code string) lipgloss.Color {
	ansiToLipgloss := map[string]string{
		"30": "0", "31": "1", "32": "2", "33": "3",
		"34": "4", "35": "5", "36": "6", "37": "7",
		"90": "8", "91": "9", "92": "10", "93": "11",
		"94": "12", "95": "13", "96": "14", "97": "15",
	}
	if mapped, ok := ansiToLipgloss[code]; ok {
		return lipgloss.Color(mapped)
	}
	return lipgloss.Color(code)
}
