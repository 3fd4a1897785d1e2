package widget

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/rileyhilliard/widgetmon/internal/layout"
	"github.com/rileyhilliard/widgetmon/internal/metrics"
	"github.com/rileyhilliard/widgetmon/internal/ui"
)

const widgetTitle = "SYSTEM MONITOR"

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showHelp {
		return m.renderHelpOverlay()
	}

	g := m.geometry()
	c := newCanvas(m.width, m.height)
	c.draw(g.widget.Point, g.widgetView)
	if g.panelOpen {
		c.draw(g.panel.Point, g.panelView)
	}
	return c.String()
}

// Frame renders the widget box alone, without positioning. Used by the
// snapshot command.
func (m Model) Frame() string {
	return m.renderWidget()
}

// innerWidth is the content width of the widget box for the orientation.
func (m Model) innerWidth() int {
	if m.layout.Orientation == layout.Vertical {
		return verticalWidth
	}
	return horizontalWidth
}

// renderWidget draws the widget box: title with gear, header slot, metric
// list or grid, and the active-app footer.
func (m Model) renderWidget() string {
	w := m.innerWidth()
	view := m.registry.View()

	var lines []string
	lines = append(lines, m.renderTitle(w))

	if view.Header != nil {
		lines = append(lines, m.renderHeader(*view.Header, w), divider(w))
	}

	switch {
	case view.Placeholder != "":
		lines = append(lines, lipgloss.PlaceHorizontal(w, lipgloss.Center, placeholderStyle.Render(view.Placeholder)))
	case m.layout.Orientation == layout.Vertical:
		for _, metric := range view.Metrics {
			lines = append(lines, m.renderRow(metric, w))
		}
	default:
		lines = append(lines, m.renderGrid(view.Metrics)...)
	}

	if view.ActiveApp != "" {
		app := iconStyle.Render("▭") + " " + mutedStyle.Render(view.ActiveApp)
		lines = append(lines, divider(w), fit(app, w))
	}

	if m.status.Active() && !m.layout.SettingsOpen {
		lines = append(lines, fit(m.status.View(), w))
	}

	style := boxStyle
	if m.layout.Dragging() {
		style = draggingBoxStyle
	}
	return style.Render(strings.Join(lines, "\n"))
}

func (m Model) renderTitle(w int) string {
	gear := gearStyle.Render(ui.SymbolGear)
	if m.layout.SettingsOpen {
		gear = gearOpenStyle.Render(ui.SymbolGear)
	}
	return spread(titleStyle.Render(widgetTitle), gear, w)
}

func (m Model) renderHeader(metric metrics.Metric, w int) string {
	left := iconStyle.Render(metric.Icon) + " " + labelStyle.Render(metric.Label)
	return spread(left, m.renderValue(metric), w)
}

// renderRow draws one vertical list row: icon, label, value and sparkline.
func (m Model) renderRow(metric metrics.Metric, w int) string {
	left := iconStyle.Render(metric.Icon) + " " + labelStyle.Render(metric.Label)
	right := m.renderValue(metric) + " " + m.renderSparkline(metric.Kind)
	return spread(left, right, w)
}

// renderGrid lays metrics out five to a row. Network metrics drop their label.
func (m Model) renderGrid(list []metrics.Metric) []string {
	var rows []string
	for start := 0; start < len(list); start += gridColumns {
		end := min(start+gridColumns, len(list))
		cells := make([]string, 0, gridColumns)
		for _, metric := range list[start:end] {
			cells = append(cells, m.renderCell(metric))
		}
		rows = append(rows, strings.Join(cells, " "))
	}
	return rows
}

func (m Model) renderCell(metric metrics.Metric) string {
	left := iconStyle.Render(metric.Icon)
	if !metric.Kind.IsNetwork() {
		left += " " + labelStyle.Render(metric.Label)
	}
	return spread(left, m.renderValue(metric), gridCellWidth)
}

func (m Model) renderValue(metric metrics.Metric) string {
	raw := m.latest(metric.Kind)
	return valueStyle.Foreground(kindColor(metric.Kind, raw)).Render(metric.Value)
}

func (m Model) renderSparkline(kind metrics.Kind) string {
	data := m.history.Last(kind, DefaultHistorySize)
	if len(data) == 0 {
		return strings.Repeat(" ", sparklineWidth)
	}
	return ui.RenderSparkline(data, sparklineWidth, kindColor(kind, data[len(data)-1]))
}

// latest returns the current raw reading for kind.
func (m Model) latest(kind metrics.Kind) float64 {
	return metrics.RawValue(kind, m.registry.Hardware(), m.registry.Network(), m.registry.SelectedDisk())
}

// spread places left and right at opposite ends of a width-cell line. When
// both do not fit, left is truncated.
func spread(left, right string, width int) string {
	lw, rw := lipgloss.Width(left), lipgloss.Width(right)
	if lw+rw+1 > width {
		left = ansi.Truncate(left, max(width-rw-1, 0), "…")
		lw = lipgloss.Width(left)
	}
	gap := max(width-lw-rw, 1)
	return left + strings.Repeat(" ", gap) + right
}

// fit pads or truncates s to exactly width cells.
func fit(s string, width int) string {
	sw := lipgloss.Width(s)
	if sw > width {
		return ansi.Truncate(s, width, "…")
	}
	return s + strings.Repeat(" ", width-sw)
}

func divider(width int) string {
	return dividerStyle.Render(strings.Repeat("─", width))
}
