package metrics

import (
	"testing"

	"github.com/rileyhilliard/widgetmon/internal/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleHardware() telemetry.HardwareSnapshot {
	return telemetry.HardwareSnapshot{
		Tick:            1,
		CPU:             37.4,
		GPU:             81.6,
		CPUClockGHz:     4.321,
		Memory:          telemetry.Memory{Used: 4, Total: 16},
		CPUTemp:         71.2,
		GPUTemp:         55.7,
		MotherboardTemp: 38.9,
		Disks: []telemetry.DiskReading{
			{ID: "ssd", Name: "SSD", Activity: 12.2, Temp: 33},
			{ID: "hdd", Name: "HDD", Activity: 64.8, Temp: 41},
			{ID: "nvme", Name: "NVME", Activity: 99.1, Temp: 52},
		},
	}
}

func sampleNetwork() telemetry.NetworkSnapshot {
	return telemetry.NetworkSnapshot{
		Tick:                1,
		DownloadBytesPerSec: 3 * 1024 * 1024,
		UploadBytesPerSec:   512,
		ActiveApp:           "steam.exe",
	}
}

func newTestRegistry() *Registry {
	r := NewRegistry(telemetry.DefaultDisks())
	r.Recompute(sampleHardware(), sampleNetwork())
	return r
}

func TestNewRegistry(t *testing.T) {
	r := NewRegistry(telemetry.DefaultDisks())

	assert.Equal(t, IDs(), r.Order())
	for _, m := range r.Metrics() {
		assert.True(t, m.Visible, "%s should start visible", m.ID)
	}
	assert.Equal(t, "ssd", r.SelectedDiskID())

	clock, ok := r.Get("cpuClock")
	require.True(t, ok)
	assert.Equal(t, "0.00 GHz", clock.Value)
}

func TestRegistry_Recompute(t *testing.T) {
	r := newTestRegistry()

	want := map[string]string{
		"cpuClock": "4.32 GHz",
		"upload":   "512.0 B/s",
		"cpu":      "37%",
		"memory":   "25%",
		"gpu":      "82%",
		"disk":     "12%",
		"download": "3.0 MB/s",
		"cpuTemp":  "71°C",
		"mbdTemp":  "39°C",
		"gpuTemp":  "56°C",
		"diskTemp": "33°C",
	}
	for id, value := range want {
		m, ok := r.Get(id)
		require.True(t, ok, id)
		assert.Equal(t, value, m.Value, id)
	}
}

func TestRegistry_RecomputeKeepsOrderAndVisibility(t *testing.T) {
	r := newTestRegistry()
	r.Toggle("gpu")
	r.Reorder("download", "cpuClock")
	order := r.Order()

	r.Recompute(sampleHardware(), sampleNetwork())

	assert.Equal(t, order, r.Order())
	gpu, _ := r.Get("gpu")
	assert.False(t, gpu.Visible)
}

func TestRegistry_DiskMetricsFollowSelection(t *testing.T) {
	r := newTestRegistry()

	r.SelectDisk("nvme")

	disk, _ := r.Get("disk")
	diskTemp, _ := r.Get("diskTemp")
	assert.Equal(t, "NVME", disk.Label)
	assert.Equal(t, "99%", disk.Value)
	assert.Equal(t, "NVME", diskTemp.Label)
	assert.Equal(t, "52°C", diskTemp.Value)
}

func TestRegistry_SelectUnknownDiskFallsBackToFirst(t *testing.T) {
	r := newTestRegistry()

	assert.NotPanics(t, func() { r.SelectDisk("floppy") })

	assert.Equal(t, "floppy", r.SelectedDiskID())
	assert.Equal(t, "ssd", r.SelectedDisk().ID)
	disk, _ := r.Get("disk")
	assert.Equal(t, "SSD", disk.Label)
	assert.Equal(t, "12%", disk.Value)
}

func TestRegistry_EmptyDiskListFallsBackToFirstKnown(t *testing.T) {
	r := NewRegistry(telemetry.DefaultDisks())
	hw := sampleHardware()
	hw.Disks = nil
	r.SelectDisk("hdd")

	assert.NotPanics(t, func() { r.Recompute(hw, sampleNetwork()) })

	assert.Equal(t, "ssd", r.SelectedDisk().ID)
	disk, _ := r.Get("disk")
	assert.Equal(t, "SSD", disk.Label)
	assert.Equal(t, "0%", disk.Value)
}

func TestRegistry_SelectDiskBeforeFirstTick(t *testing.T) {
	r := NewRegistry(telemetry.DefaultDisks())

	r.SelectDisk("nvme")

	assert.Equal(t, "nvme", r.SelectedDisk().ID)
	assert.Equal(t, "nvme", r.View().SelectedDisk)
	disk, _ := r.Get("disk")
	assert.Equal(t, "NVME", disk.Label)
	temp, _ := r.Get("diskTemp")
	assert.Equal(t, "NVME", temp.Label)

	r.NextDisk()
	assert.Equal(t, "ssd", r.View().SelectedDisk)
	r.NextDisk()
	assert.Equal(t, "hdd", r.View().SelectedDisk)
}

func TestRegistry_SelectionSurvivesTicks(t *testing.T) {
	r := newTestRegistry()
	r.SelectDisk("hdd")

	hw := sampleHardware()
	hw.Disks[1].Activity = 3
	r.UpdateHardware(hw)

	disk, _ := r.Get("disk")
	assert.Equal(t, "HDD", disk.Label)
	assert.Equal(t, "3%", disk.Value)
}

func TestRegistry_NextDisk(t *testing.T) {
	r := newTestRegistry()

	r.NextDisk()
	assert.Equal(t, "hdd", r.SelectedDiskID())
	r.NextDisk()
	assert.Equal(t, "nvme", r.SelectedDiskID())
	r.NextDisk()
	assert.Equal(t, "ssd", r.SelectedDiskID())

	r.SelectDisk("missing")
	r.NextDisk()
	assert.Equal(t, "hdd", r.SelectedDiskID(), "resolves the fallback disk first")
}

func TestRegistry_UpdateNetwork(t *testing.T) {
	r := newTestRegistry()

	net := sampleNetwork()
	net.UploadBytesPerSec = 2048
	r.UpdateNetwork(net)

	up, _ := r.Get("upload")
	cpu, _ := r.Get("cpu")
	assert.Equal(t, "2.0 KB/s", up.Value)
	assert.Equal(t, "37%", cpu.Value, "hardware values kept")
	assert.Equal(t, net, r.Network())
	assert.Equal(t, sampleHardware().Tick, r.Hardware().Tick)
}

func TestRegistry_Toggle(t *testing.T) {
	r := newTestRegistry()

	assert.True(t, r.Toggle("cpu"))
	m, _ := r.Get("cpu")
	assert.False(t, m.Visible)

	assert.True(t, r.Toggle("cpu"))
	m, _ = r.Get("cpu")
	assert.True(t, m.Visible, "toggling twice restores visibility")
}

func TestRegistry_ToggleUnknownIsNoop(t *testing.T) {
	r := newTestRegistry()
	before := r.Metrics()

	assert.False(t, r.Toggle("fan"))
	assert.Equal(t, before, r.Metrics())
}

func TestRegistry_SetVisible(t *testing.T) {
	r := newTestRegistry()

	assert.True(t, r.SetVisible("gpu", false))
	assert.True(t, r.SetVisible("gpu", false))
	assert.False(t, r.SetVisible("fan", true))
	assert.Equal(t, []string{"gpu"}, r.Hidden())
}

func TestRegistry_Reorder(t *testing.T) {
	tests := []struct {
		name    string
		dragged string
		target  string
		changed bool
		want    []string
	}{
		{
			name:    "drag upward lands before target",
			dragged: "download",
			target:  "upload",
			changed: true,
			want:    []string{"cpuClock", "download", "upload", "cpu", "memory", "gpu", "disk", "cpuTemp", "mbdTemp", "gpuTemp", "diskTemp"},
		},
		{
			name:    "drag downward lands after target",
			dragged: "upload",
			target:  "gpu",
			changed: true,
			want:    []string{"cpuClock", "cpu", "memory", "gpu", "upload", "disk", "download", "cpuTemp", "mbdTemp", "gpuTemp", "diskTemp"},
		},
		{
			name:    "drag onto last element appends",
			dragged: "cpuClock",
			target:  "diskTemp",
			changed: true,
			want:    []string{"upload", "cpu", "memory", "gpu", "disk", "download", "cpuTemp", "mbdTemp", "gpuTemp", "diskTemp", "cpuClock"},
		},
		{
			name:    "same id is a no-op",
			dragged: "cpu",
			target:  "cpu",
			want:    IDs(),
		},
		{
			name:    "unknown dragged is a no-op",
			dragged: "fan",
			target:  "cpu",
			want:    IDs(),
		},
		{
			name:    "unknown target is a no-op",
			dragged: "cpu",
			target:  "fan",
			want:    IDs(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRegistry()
			assert.Equal(t, tt.changed, r.Reorder(tt.dragged, tt.target))
			assert.Equal(t, tt.want, r.Order())
			assert.Len(t, r.Metrics(), 11)
		})
	}
}

func TestRegistry_ReorderInverseLaw(t *testing.T) {
	t.Run("adjacent pair restores order", func(t *testing.T) {
		r := newTestRegistry()
		r.Reorder("cpu", "memory")
		r.Reorder("memory", "cpu")
		assert.Equal(t, IDs(), r.Order())
	})

	t.Run("non-adjacent pair does not", func(t *testing.T) {
		r := newTestRegistry()
		r.Reorder("upload", "memory")
		r.Reorder("memory", "upload")
		assert.NotEqual(t, IDs(), r.Order())
	})
}

func TestRegistry_HeaderAndVisible(t *testing.T) {
	r := newTestRegistry()

	header, ok := r.Header()
	assert.True(t, ok)
	assert.Equal(t, "cpuClock", header.ID)

	visible := r.Visible()
	assert.Len(t, visible, 10)
	for _, m := range visible {
		assert.NotEqual(t, "cpuClock", m.ID)
	}

	r.Toggle("cpuClock")
	_, ok = r.Header()
	assert.False(t, ok)
	assert.Len(t, r.Visible(), 10)

	r.Toggle("gpu")
	assert.Len(t, r.Visible(), 9)
}

func TestRegistry_VisibleFollowsOrder(t *testing.T) {
	r := newTestRegistry()
	r.Reorder("diskTemp", "upload")

	assert.Equal(t, "diskTemp", r.Visible()[0].ID)
}

func TestRegistry_AllHiddenShowsPlaceholder(t *testing.T) {
	r := newTestRegistry()
	for _, id := range IDs() {
		r.Toggle(id)
	}

	assert.Empty(t, r.Visible())
	assert.True(t, r.ShowPlaceholder())
	assert.False(t, r.AnyVisible())

	v := r.View()
	assert.Nil(t, v.Header)
	assert.Empty(t, v.Metrics)
	assert.Equal(t, PlaceholderText, v.Placeholder)
	assert.Empty(t, v.ActiveApp, "active app footer hidden with nothing visible")
}

func TestRegistry_HeaderOnlyHasNoPlaceholder(t *testing.T) {
	r := newTestRegistry()
	for _, id := range IDs() {
		if id != "cpuClock" {
			r.Toggle(id)
		}
	}

	assert.Empty(t, r.Visible())
	assert.False(t, r.ShowPlaceholder())
	assert.True(t, r.AnyVisible())
}

func TestRegistry_View(t *testing.T) {
	r := newTestRegistry()
	r.SelectDisk("hdd")

	v := r.View()
	require.NotNil(t, v.Header)
	assert.Equal(t, "4.32 GHz", v.Header.Value)
	assert.Len(t, v.Metrics, 10)
	assert.Len(t, v.All, 11)
	assert.Empty(t, v.Placeholder)
	assert.Equal(t, "steam.exe", v.ActiveApp)
	assert.Equal(t, "hdd", v.SelectedDisk)
	assert.Len(t, v.Disks, 3)
}

func TestRegistry_ApplyOrder(t *testing.T) {
	r := newTestRegistry()

	r.ApplyOrder([]string{"download", "upload", "fan", "download"})

	order := r.Order()
	assert.Equal(t, []string{"download", "upload", "cpuClock", "cpu"}, order[:4])
	assert.Len(t, order, 11)
}

func TestRegistry_ApplyHidden(t *testing.T) {
	r := newTestRegistry()

	r.ApplyHidden([]string{"gpuTemp", "fan", "cpu"})

	assert.Equal(t, []string{"cpu", "gpuTemp"}, r.Hidden())
}

func TestRegistry_MetricsReturnsCopy(t *testing.T) {
	r := newTestRegistry()

	ms := r.Metrics()
	ms[0].Visible = false

	m, _ := r.Get(ms[0].ID)
	assert.True(t, m.Visible)
}
