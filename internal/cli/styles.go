package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/ecochallenge/internal/footprint"
)

var (
	HeaderStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#10B981"))
	LabelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#9CA3AF"))
	MutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280")).Italic(true)
	SuccessStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#22C55E"))
	WarningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B"))
	DangerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444"))
	InfoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#3B82F6"))
)

// ToneStyle maps a benchmark tone to an output colour.
func ToneStyle(t footprint.Tone) lipgloss.Style {
	switch t {
	case footprint.ToneGood:
		return SuccessStyle
	case footprint.ToneFine:
		return InfoStyle
	case footprint.ToneWarning:
		return WarningStyle
	default:
		return DangerStyle
	}
}

// ShareTone colours a category share: above 40% is high, above 25% medium.
func ShareTone(pct float64) footprint.Tone {
	switch {
	case pct > 40:
		return footprint.ToneDanger
	case pct > 25:
		return footprint.ToneWarning
	default:
		return footprint.ToneGood
	}
}

// Bar renders a fixed-width text bar filled to value/max.
func Bar(value, max, width int) string {
	if width <= 0 {
		return ""
	}
	filled := 0
	if max > 0 && value > 0 {
		filled = value * width / max
		if filled > width {
			filled = width
		}
		if filled == 0 {
			filled = 1
		}
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
