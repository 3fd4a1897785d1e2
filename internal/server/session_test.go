package server

import (
	"testing"

	"github.com/rileyhilliard/widgetmon/internal/errors"
	"github.com/rileyhilliard/widgetmon/internal/layout"
	"github.com/rileyhilliard/widgetmon/internal/metrics"
	"github.com/rileyhilliard/widgetmon/internal/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession() *Session {
	reg := metrics.NewRegistry(telemetry.DefaultDisks())
	return NewSession(reg, layout.NewState(layout.Point{X: 100, Y: 50}, layout.Horizontal))
}

func TestSession_StateReflectsSnapshots(t *testing.T) {
	s := newTestSession()
	s.ApplyHardware(telemetry.HardwareSnapshot{
		Tick: 3,
		CPU:  42,
		Disks: []telemetry.DiskReading{
			{ID: "ssd", Name: "SSD", Activity: 10, Temp: 30},
		},
	})
	s.ApplyNetwork(telemetry.NetworkSnapshot{Tick: 2, DownloadBytesPerSec: 2048, ActiveApp: "chrome.exe"})

	st := s.State()
	assert.Equal(t, uint64(3), st.Hardware.Tick)
	assert.Equal(t, "chrome.exe", st.View.ActiveApp)
	assert.Equal(t, layout.Point{X: 100, Y: 50}, st.Layout.Position)
	assert.Equal(t, layout.Horizontal, st.Layout.Orientation)

	var cpu, down string
	for _, m := range st.View.All {
		switch m.ID {
		case "cpu":
			cpu = m.Value
		case "download":
			down = m.Value
		}
	}
	assert.Equal(t, "42%", cpu)
	assert.Equal(t, "2.0 KB/s", down)
}

func TestSession_Toggle(t *testing.T) {
	s := newTestSession()

	require.NoError(t, s.Toggle("gpu"))
	st := s.State()
	for _, m := range st.View.Metrics {
		assert.NotEqual(t, "gpu", m.ID)
	}

	err := s.Toggle("fan")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrRegistry))
}

func TestSession_Reorder(t *testing.T) {
	s := newTestSession()

	require.NoError(t, s.Reorder("gpu", "cpu"))
	order := make([]string, 0)
	for _, m := range s.State().View.All {
		order = append(order, m.ID)
	}
	assert.Equal(t, []string{"cpuClock", "upload", "gpu", "cpu"}, order[:4])

	assert.NoError(t, s.Reorder("cpu", "cpu"))

	for _, tc := range [][2]string{{"fan", "cpu"}, {"cpu", "fan"}} {
		err := s.Reorder(tc[0], tc[1])
		assert.True(t, errors.IsCode(err, errors.ErrRegistry), "%v", tc)
	}
}

func TestSession_SelectDisk(t *testing.T) {
	s := newTestSession()

	require.NoError(t, s.SelectDisk("nvme"))
	assert.Equal(t, "nvme", s.State().View.SelectedDisk)

	err := s.SelectDisk("floppy")
	assert.True(t, errors.IsCode(err, errors.ErrRegistry))
	assert.Equal(t, "nvme", s.State().View.SelectedDisk)
}

func TestSession_Pointer(t *testing.T) {
	s := newTestSession()
	widget := layout.Size{W: 300, H: 100}

	changed, err := s.Pointer(PointerDown, layout.Point{X: 110, Y: 60}, widget, false)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.True(t, s.State().Layout.Dragging)

	changed, err = s.Pointer(PointerMove, layout.Point{X: 210, Y: 160}, widget, false)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, layout.Point{X: 200, Y: 150}, s.State().Layout.Position)

	changed, err = s.Pointer(PointerUp, layout.Point{}, widget, false)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.False(t, s.State().Layout.Dragging)

	_, err = s.Pointer("wiggle", layout.Point{}, widget, false)
	assert.True(t, errors.IsCode(err, errors.ErrServer))
}

func TestSession_PointerOnControlTogglesSettings(t *testing.T) {
	s := newTestSession()
	widget := layout.Size{W: 300, H: 100}

	changed, err := s.Pointer(PointerDown, layout.Point{X: 390, Y: 55}, widget, true)
	require.NoError(t, err)
	assert.True(t, changed)

	st := s.State()
	assert.True(t, st.Layout.SettingsOpen)
	assert.False(t, st.Layout.Dragging)

	// A control press outside the widget is ignored.
	changed, err = s.Pointer(PointerDown, layout.Point{X: 5, Y: 5}, widget, true)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.True(t, s.State().Layout.SettingsOpen)
}

func TestSession_Placement(t *testing.T) {
	s := newTestSession()
	widget := layout.Size{W: 520, H: 120}

	p := s.Placement(layout.Size{W: 1920, H: 1080}, widget)
	assert.Equal(t, layout.Below, p.Side)
	assert.Equal(t, layout.Point{X: 100, Y: 178}, p.Origin)

	s.SetOrientation(layout.Vertical)
	p = s.Placement(layout.Size{W: 640, H: 1080}, layout.Size{W: 200, H: 400})
	// 640 - 300 = 340 > 224 + 16
	assert.Equal(t, layout.Right, p.Side)
	assert.Equal(t, layout.Point{X: 308, Y: 50}, p.Origin)
}
