package widget

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/widgetmon/internal/layout"
)

// geometry is where everything sits on screen for the current state.
type geometry struct {
	widget     layout.Rect
	widgetView string
	gear       layout.Point

	panelOpen bool
	panel     layout.Rect
	panelView string
	rows      []panelRow
}

// geometry renders the widget (and panel, if open) and positions them.
func (m Model) geometry() geometry {
	g := geometry{widgetView: m.renderWidget()}
	size := layout.Size{W: lipgloss.Width(g.widgetView), H: lipgloss.Height(g.widgetView)}
	g.widget = m.layout.Bounds(size)
	// Gear is the last content cell of the first line inside the border.
	g.gear = layout.Point{X: g.widget.X + size.W - 3, Y: g.widget.Y + 1}

	if !m.layout.SettingsOpen {
		return g
	}

	g.panelOpen = true
	g.rows = m.panelRows()
	g.panelView = m.renderPanel()
	panelSize := m.panelSize(g.panelView)
	viewport := layout.Size{W: m.width, H: m.height}
	placement := m.layout.Placement(viewport, size, panelSize, layout.CellPolicy)
	g.panel = layout.Rect{Point: placement.Origin, Size: panelSize}
	return g
}

// onGear reports whether p hits the settings control, allowing one cell of slack.
func (g geometry) onGear(p layout.Point) bool {
	return p.Y == g.gear.Y && p.X >= g.gear.X-1 && p.X <= g.gear.X+1
}

// rowAt returns the panel row under p and the column within the row's content.
func (g geometry) rowAt(p layout.Point) (panelRow, int, bool) {
	if !g.panelOpen || !g.panel.Contains(p) {
		return panelRow{}, 0, false
	}
	// One border row on top; one border and one padding column on the left.
	i := p.Y - g.panel.Y - 1
	if i < 0 || i >= len(g.rows) {
		return panelRow{}, 0, false
	}
	return g.rows[i], p.X - g.panel.X - 2, true
}

// handleMouse implements pointer interaction: dragging the widget, the
// settings control, clicks inside the panel and drag-and-drop of metric rows.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	p := layout.Point{X: msg.X, Y: msg.Y}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		return m.mousePress(p)

	case tea.MouseActionMotion:
		if m.layout.Dragging() {
			m.layout.PointerMove(p)
			return m, nil
		}
		if m.rowDragID != "" {
			m.rowHoverID = ""
			if row, _, ok := m.geometry().rowAt(p); ok && row.kind == rowMetric {
				m.rowHoverID = row.id
			}
		}
		return m, nil

	case tea.MouseActionRelease:
		if m.rowDragID != "" {
			m.dropRow(p)
		}
		m.layout.PointerUp()
		return m, nil
	}

	return m, nil
}

func (m Model) mousePress(p layout.Point) (tea.Model, tea.Cmd) {
	g := m.geometry()

	// The panel sits above the widget and never starts a widget drag.
	if g.panelOpen && g.panel.Contains(p) {
		return m, m.panelPress(g, p)
	}

	onGear := g.onGear(p)
	if onGear {
		m.toggleSettings()
	}
	m.layout.PointerDown(p, g.widget.Size, onGear)
	return m, nil
}

func (m *Model) panelPress(g geometry, p layout.Point) tea.Cmd {
	row, col, ok := g.rowAt(p)
	if !ok {
		return nil
	}

	switch row.kind {
	case rowMetric:
		m.cursor = m.registry.Index(row.id)
		if col >= checkboxStart && col <= checkboxEnd {
			m.registry.Toggle(row.id)
			return nil
		}
		m.rowDragID = row.id
	case rowOrientation:
		m.layout.ToggleOrientation()
	case rowDisk:
		m.nextDisk()
	case rowUpdate:
		return m.startUpdateCheck()
	}
	return nil
}

// dropRow finishes a row drag, moving the dragged metric to the row under p.
func (m *Model) dropRow(p layout.Point) {
	dragged := m.rowDragID
	m.rowDragID = ""
	m.rowHoverID = ""

	row, _, ok := m.geometry().rowAt(p)
	if !ok || row.kind != rowMetric {
		return
	}
	if m.registry.Reorder(dragged, row.id) {
		m.cursor = m.registry.Index(dragged)
	}
}
