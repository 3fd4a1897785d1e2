package widget

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/widgetmon/internal/metrics"
	"github.com/rileyhilliard/widgetmon/internal/telemetry"
	"github.com/rileyhilliard/widgetmon/internal/ui"
)

// Widget palette
const (
	ColorBorder        = lipgloss.Color("#2A2A4A")
	ColorBorderActive  = lipgloss.Color("#00B7C7")
	ColorTextPrimary   = lipgloss.Color("#FFFFFF")
	ColorTextSecondary = lipgloss.Color("#B4B4D0")
	ColorTextMuted     = lipgloss.Color("#6B6B8D")
	ColorAccent        = lipgloss.Color("#22D3EE")
)

// Fixed inner widths, in cells.
const (
	verticalWidth   = 32
	horizontalWidth = 74
	gridColumns     = 5
	gridCellWidth   = 14
	panelWidth      = 32
	sparklineWidth  = 8
)

var (
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	draggingBoxStyle = boxStyle.
				BorderForeground(ColorBorderActive)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorAccent).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary).
			Bold(true)

	gearStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	gearOpenStyle = lipgloss.NewStyle().
			Foreground(ColorAccent)

	iconStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	labelStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary)

	valueStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary).
			Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	placeholderStyle = lipgloss.NewStyle().
				Foreground(ColorTextMuted).
				Italic(true)

	dividerStyle = lipgloss.NewStyle().
			Foreground(ColorBorder)

	cursorStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	selectedOptionStyle = lipgloss.NewStyle().
				Foreground(ColorAccent).
				Bold(true)
)

// tempBands are the generator ranges, used to color temperatures.
var tempBands = map[metrics.Kind][2]float64{
	metrics.KindCPUTemp:         {telemetry.CPUTempMin, telemetry.CPUTempMax},
	metrics.KindGPUTemp:         {telemetry.GPUTempMin, telemetry.GPUTempMax},
	metrics.KindMotherboardTemp: {telemetry.BoardTempMin, telemetry.BoardTempMax},
	metrics.KindDiskTemp:        {telemetry.DiskTempMin, telemetry.DiskTempMax},
}

// kindColor picks the value color for a metric's latest raw reading.
func kindColor(kind metrics.Kind, raw float64) lipgloss.Color {
	switch {
	case kind.IsPercent():
		return ui.ThresholdColor(raw)
	case kind.IsNetwork(), kind == metrics.KindCPUClock:
		return ui.ColorInfo
	}
	if band, ok := tempBands[kind]; ok {
		return ui.TempColor(raw, band[0], band[1])
	}
	return ColorTextPrimary
}
