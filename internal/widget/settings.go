package widget

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/widgetmon/internal/layout"
	"github.com/rileyhilliard/widgetmon/internal/ui"
)

// rowKind identifies what a settings panel line does when clicked.
type rowKind int

const (
	rowText rowKind = iota
	rowMetric
	rowOrientation
	rowDisk
	rowUpdate
)

// panelRow is one line of the settings panel.
type panelRow struct {
	kind rowKind
	id   string
	text string
}

// Column range of the checkbox within a metric row.
const (
	checkboxStart = 3
	checkboxEnd   = 5
)

// panelRows builds the settings panel content. Rendering and hit-testing
// both index into it, so line i of the panel is rows[i].
func (m Model) panelRows() []panelRow {
	rows := []panelRow{{kind: rowText, text: mutedStyle.Render("Display & Order")}}

	for i, metric := range m.registry.Metrics() {
		cursor := " "
		if i == m.cursor {
			cursor = cursorStyle.Render(ui.SymbolCursor)
		}
		grip := mutedStyle.Render(ui.SymbolGrip)
		if metric.ID == m.rowDragID {
			grip = cursorStyle.Render(ui.SymbolGrip)
		}
		box := mutedStyle.Render(ui.SymbolUnchecked)
		if metric.Visible {
			box = selectedOptionStyle.Render(ui.SymbolChecked)
		}
		label := labelStyle.Render(metric.FullLabel)
		if metric.ID == m.rowHoverID && m.rowHoverID != m.rowDragID {
			label = cursorStyle.Render(metric.FullLabel)
		}

		left := cursor + " " + grip + " " + box + " " + label
		rows = append(rows, panelRow{
			kind: rowMetric,
			id:   metric.ID,
			text: spread(left, iconStyle.Render(metric.Icon), panelWidth),
		})
	}

	rows = append(rows,
		panelRow{kind: rowText},
		panelRow{kind: rowOrientation, text: m.renderOrientationRow()},
		panelRow{kind: rowDisk, text: m.renderDiskRow()},
		panelRow{kind: rowText},
		panelRow{kind: rowUpdate, text: m.renderUpdateRow()},
	)
	return rows
}

func (m Model) renderOrientationRow() string {
	option := func(o layout.Orientation, name string) string {
		if m.layout.Orientation == o {
			return selectedOptionStyle.Render("[" + name + "]")
		}
		return mutedStyle.Render(" " + name + " ")
	}
	return spread(labelStyle.Render("Layout"),
		option(layout.Vertical, "Vertical")+option(layout.Horizontal, "Horizontal"), panelWidth)
}

func (m Model) renderDiskRow() string {
	selected := m.registry.SelectedDisk()
	name := selected.Name
	if name == "" {
		name = selected.ID
	}
	return spread(labelStyle.Render("Track disk"), valueStyle.Render("‹ "+name+" ›"), panelWidth)
}

func (m Model) renderUpdateRow() string {
	if m.status.Active() {
		return fit(m.status.View(), panelWidth)
	}
	return fit(mutedStyle.Render("↻ "+UpdateIdle), panelWidth)
}

// renderPanel draws the settings panel box.
func (m Model) renderPanel() string {
	rows := m.panelRows()
	lines := make([]string, len(rows))
	for i, r := range rows {
		lines[i] = fit(r.text, panelWidth)
	}
	return panelStyle.Render(strings.Join(lines, "\n"))
}

// panelSize is the rendered size of the settings panel.
func (m Model) panelSize(panel string) layout.Size {
	return layout.Size{W: lipgloss.Width(panel), H: lipgloss.Height(panel)}
}
