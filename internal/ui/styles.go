package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all lipgloss styles for terminal output
type Styles struct {
	enabled bool

	// Severity styles
	High    lipgloss.Style
	Medium  lipgloss.Style
	Low     lipgloss.Style
	Info    lipgloss.Style
	Success lipgloss.Style

	// Score styles
	ScoreStrong lipgloss.Style
	ScoreMid    lipgloss.Style
	ScoreWeak   lipgloss.Style

	// Structural styles
	Header    lipgloss.Style
	Subheader lipgloss.Style
	Dimension lipgloss.Style
	Provider  lipgloss.Style
	Separator lipgloss.Style

	// Icons (degraded to ASCII when not interactive)
	IconHigh    string
	IconMedium  string
	IconLow     string
	IconInfo    string
	IconSuccess string
}

// NewStyles creates a new Styles instance
// When enabled is false, styles return text unchanged (for non-TTY output)
func NewStyles(enabled bool) *Styles {
	s := &Styles{enabled: enabled}

	if enabled {
		// Severity styles
		s.High = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))    // Red
		s.Medium = lipgloss.NewStyle().Foreground(lipgloss.Color("11")) // Yellow
		s.Low = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))    // Cyan
		s.Info = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))   // Blue
		s.Success = lipgloss.NewStyle().Foreground(lipgloss.Color("10")) // Green

		// Score styles
		s.ScoreStrong = lipgloss.NewStyle().Foreground(lipgloss.Color("10")) // Green
		s.ScoreMid = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))    // Yellow
		s.ScoreWeak = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))    // Red

		// Structural styles
		s.Header = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")) // White bold
		s.Subheader = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))          // Gray
		s.Dimension = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))         // Magenta
		s.Provider = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))           // Gray
		s.Separator = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))          // Gray

		// Unicode icons
		s.IconHigh = "✗"           // ✗
		s.IconMedium = "⚠"         // ⚠
		s.IconLow = "\U0001f4a1"        // 💡
		s.IconInfo = "ℹ"           // ℹ
		s.IconSuccess = "✓"        // ✓
	} else {
		// No-op styles for non-TTY (plain text output)
		s.High = lipgloss.NewStyle()
		s.Medium = lipgloss.NewStyle()
		s.Low = lipgloss.NewStyle()
		s.Info = lipgloss.NewStyle()
		s.Success = lipgloss.NewStyle()

		s.ScoreStrong = lipgloss.NewStyle()
		s.ScoreMid = lipgloss.NewStyle()
		s.ScoreWeak = lipgloss.NewStyle()

		s.Header = lipgloss.NewStyle()
		s.Subheader = lipgloss.NewStyle()
		s.Dimension = lipgloss.NewStyle()
		s.Provider = lipgloss.NewStyle()
		s.Separator = lipgloss.NewStyle()

		// ASCII fallback icons
		s.IconHigh = "ERROR:"
		s.IconMedium = "WARN:"
		s.IconLow = "HINT:"
		s.IconInfo = "INFO:"
		s.IconSuccess = "OK:"
	}

	return s
}

// Enabled returns whether styling is enabled
func (s *Styles) Enabled() bool {
	return s.enabled
}

// Score returns the style appropriate for a 0-1 dimension score
func (s *Styles) Score(v float64) lipgloss.Style {
	switch {
	case v >= 0.7:
		return s.ScoreStrong
	case v >= 0.4:
		return s.ScoreMid
	default:
		return s.ScoreWeak
	}
}
