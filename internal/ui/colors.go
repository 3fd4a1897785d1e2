package ui

import "github.com/charmbracelet/lipgloss"

// Semantic colors for status indication
const (
	ColorSuccess lipgloss.Color = "2" // Green
	ColorError   lipgloss.Color = "1" // Red
	ColorWarning lipgloss.Color = "3" // Yellow
	ColorInfo    lipgloss.Color = "6" // Cyan
)

// Text colors for content hierarchy
const (
	ColorPrimary   lipgloss.Color = "7" // White/default
	ColorSecondary lipgloss.Color = "4" // Blue
	ColorMuted     lipgloss.Color = "8" // Gray (bright black)
	ColorAccent    lipgloss.Color = "5" // Magenta
)

// Thresholds for percentage severity.
const (
	WarningThreshold  = 70.0
	CriticalThreshold = 90.0
)

// ThresholdColor returns green below 70%, yellow below 90%, red otherwise.
func ThresholdColor(percent float64) lipgloss.Color {
	switch {
	case percent >= CriticalThreshold:
		return ColorError
	case percent >= WarningThreshold:
		return ColorWarning
	default:
		return ColorSuccess
	}
}

// TempColor applies the percentage thresholds to a temperature within its
// band [lo, hi), so the top tenth of the band is critical.
func TempColor(celsius, lo, hi float64) lipgloss.Color {
	if hi <= lo {
		return ColorPrimary
	}
	return ThresholdColor((celsius - lo) / (hi - lo) * 100)
}
