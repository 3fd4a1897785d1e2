package widget

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/widgetmon/internal/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeometry_WidgetAndGear(t *testing.T) {
	m := newTestModel(t, layout.Horizontal)
	g := m.geometry()

	assert.Equal(t, layout.Point{X: 2, Y: 1}, g.widget.Point)
	// Content width plus border and one column of padding each side.
	assert.Equal(t, horizontalWidth+4, g.widget.W)
	assert.Equal(t, layout.Point{X: g.widget.Right() - 3, Y: 2}, g.gear)
	assert.False(t, g.panelOpen)

	m = send(t, m, keyMsg("l"))
	g = m.geometry()
	assert.Equal(t, verticalWidth+4, g.widget.W)
}

func TestGeometry_PanelDoesNotOverlapWidget(t *testing.T) {
	for _, o := range []layout.Orientation{layout.Horizontal, layout.Vertical} {
		t.Run(o.String(), func(t *testing.T) {
			m := newTestModel(t, o)
			m = send(t, m, keyMsg("s"))
			g := m.geometry()

			require.True(t, g.panelOpen)
			assert.Len(t, g.rows, g.panel.H-2)

			overlapX := g.panel.X < g.widget.Right() && g.widget.X < g.panel.Right()
			overlapY := g.panel.Y < g.widget.Bottom() && g.widget.Y < g.panel.Bottom()
			assert.False(t, overlapX && overlapY, "panel %+v overlaps widget %+v", g.panel, g.widget)
		})
	}
}

func TestMouse_DragMovesWidget(t *testing.T) {
	m := newTestModel(t, layout.Horizontal)

	m = send(t, m, press(layout.Point{X: 4, Y: 3}))
	l := m.Layout()
	require.True(t, l.Dragging())
	assert.Equal(t, layout.Point{X: 2, Y: 2}, l.Offset())

	m = send(t, m, motion(layout.Point{X: 10, Y: 8}))
	assert.Equal(t, layout.Point{X: 8, Y: 6}, m.Layout().Position)

	// Dragging past the edge is allowed.
	m = send(t, m, motion(layout.Point{X: 0, Y: 0}))
	assert.Equal(t, layout.Point{X: -2, Y: -2}, m.Layout().Position)

	m = send(t, m, release(layout.Point{X: 50, Y: 30}))
	l = m.Layout()
	assert.False(t, l.Dragging())
	assert.Equal(t, layout.Point{X: -2, Y: -2}, l.Position)

	// Motion after release does nothing.
	m = send(t, m, motion(layout.Point{X: 20, Y: 20}))
	assert.Equal(t, layout.Point{X: -2, Y: -2}, m.Layout().Position)
}

func TestMouse_PressOutsideWidgetDoesNotDrag(t *testing.T) {
	m := newTestModel(t, layout.Horizontal)

	m = send(t, m, press(layout.Point{X: 110, Y: 35}))
	l := m.Layout()
	assert.False(t, l.Dragging())
}

func TestMouse_RightButtonIgnored(t *testing.T) {
	m := newTestModel(t, layout.Horizontal)

	msg := press(layout.Point{X: 4, Y: 3})
	msg.Button = tea.MouseButtonRight
	m = send(t, m, msg)
	l := m.Layout()
	assert.False(t, l.Dragging())
}

func TestMouse_GearTogglesSettingsWithoutDragging(t *testing.T) {
	m := newTestModel(t, layout.Horizontal)
	gear := m.geometry().gear

	m = send(t, m, press(gear))
	l := m.Layout()
	assert.True(t, l.SettingsOpen)
	assert.False(t, l.Dragging())

	m = send(t, m, release(gear))
	m = send(t, m, press(layout.Point{X: gear.X - 1, Y: gear.Y}))
	assert.False(t, m.Layout().SettingsOpen)
}

func TestMouse_CheckboxTogglesVisibility(t *testing.T) {
	m := newTestModel(t, layout.Horizontal)
	m = send(t, m, keyMsg("s"))

	p := metricRow(t, m, "gpu")
	m = send(t, m, press(p))
	l := m.Layout()
	assert.False(t, l.Dragging())
	assert.Equal(t, []string{"gpu"}, m.Registry().Hidden())
	assert.Equal(t, m.Registry().Index("gpu"), m.Cursor())

	m = send(t, m, release(p))
	m = send(t, m, press(p))
	assert.Empty(t, m.Registry().Hidden())
}

func TestMouse_RowDragAndDropReorders(t *testing.T) {
	m := newTestModel(t, layout.Horizontal)
	m = send(t, m, keyMsg("s"))

	// Column 0 of a metric row is outside the checkbox, so it grabs the row.
	grab := metricRow(t, m, "gpu")
	grab.X -= checkboxStart + 1
	target := metricRow(t, m, "cpu")

	m = send(t, m, press(grab))
	assert.Equal(t, "gpu", m.rowDragID)
	l := m.Layout()
	assert.False(t, l.Dragging())

	m = send(t, m, motion(target))
	assert.Equal(t, "cpu", m.rowHoverID)

	m = send(t, m, release(target))
	assert.Empty(t, m.rowDragID)
	assert.Empty(t, m.rowHoverID)
	assert.Equal(t,
		[]string{"cpuClock", "upload", "gpu", "cpu", "memory", "disk", "download", "cpuTemp", "mbdTemp", "gpuTemp", "diskTemp"},
		m.Registry().Order())
	assert.Equal(t, 2, m.Cursor())
	assert.Empty(t, m.Registry().Hidden())
}

func TestMouse_RowDropOutsidePanelKeepsOrder(t *testing.T) {
	m := newTestModel(t, layout.Horizontal)
	m = send(t, m, keyMsg("s"))

	grab := metricRow(t, m, "gpu")
	grab.X -= checkboxStart + 1

	m = send(t, m, press(grab))
	m = send(t, m, release(layout.Point{X: 119, Y: 39}))
	assert.Empty(t, m.rowDragID)
	assert.Equal(t, "gpu", m.Registry().Order()[4])
}

func TestMouse_PanelControls(t *testing.T) {
	m := newTestModel(t, layout.Horizontal)
	m = send(t, m, keyMsg("s"))

	m = send(t, m, press(panelRowPoint(t, m, rowDisk)))
	assert.Equal(t, "hdd", m.Registry().SelectedDisk().ID)

	m = send(t, m, press(panelRowPoint(t, m, rowOrientation)))
	assert.Equal(t, layout.Vertical, m.Layout().Orientation)
	assert.True(t, m.Layout().SettingsOpen)

	m, cmd := sendCmd(t, m, press(panelRowPoint(t, m, rowUpdate)))
	assert.NotNil(t, cmd)
	assert.Equal(t, UpdateChecking, m.Status())

	// Header text is inert.
	before := m.Registry().Order()
	m = send(t, m, press(panelRowPoint(t, m, rowText)))
	assert.Equal(t, before, m.Registry().Order())
	assert.True(t, m.Layout().SettingsOpen)
}

func TestMouse_ClosingSettingsDropsRowDrag(t *testing.T) {
	m := newTestModel(t, layout.Horizontal)
	m = send(t, m, keyMsg("s"))

	grab := metricRow(t, m, "gpu")
	grab.X -= checkboxStart + 1
	m = send(t, m, press(grab))
	require.Equal(t, "gpu", m.rowDragID)

	m = send(t, m, keyMsg("s"))
	assert.Empty(t, m.rowDragID)
}
