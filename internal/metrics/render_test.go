package metrics

import (
	"testing"

	"github.com/rileyhilliard/widgetmon/internal/telemetry"
	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	hw := sampleHardware()
	net := sampleNetwork()
	disk := hw.Disks[1]

	tests := []struct {
		kind Kind
		want string
	}{
		{KindCPUClock, "4.32 GHz"},
		{KindUpload, "512.0 B/s"},
		{KindCPU, "37%"},
		{KindMemory, "25%"},
		{KindGPU, "82%"},
		{KindDisk, "65%"},
		{KindDownload, "3.0 MB/s"},
		{KindCPUTemp, "71°C"},
		{KindMotherboardTemp, "39°C"},
		{KindGPUTemp, "56°C"},
		{KindDiskTemp, "41°C"},
		{Kind(42), ""},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, Render(tt.kind, hw, net, disk))
		})
	}
}

func TestRawValue(t *testing.T) {
	hw := sampleHardware()
	net := sampleNetwork()
	disk := hw.Disks[0]

	assert.Equal(t, 37.4, RawValue(KindCPU, hw, net, disk))
	assert.Equal(t, 25.0, RawValue(KindMemory, hw, net, disk))
	assert.Equal(t, 12.2, RawValue(KindDisk, hw, net, disk))
	assert.Equal(t, 512.0, RawValue(KindUpload, hw, net, disk))
	assert.Equal(t, 0.0, RawValue(Kind(-1), hw, net, disk))
}

func TestResolveDisk(t *testing.T) {
	hw := sampleHardware()
	known := telemetry.DefaultDisks()

	assert.Equal(t, "nvme", ResolveDisk(hw, "nvme", known).ID)
	assert.Equal(t, "ssd", ResolveDisk(hw, "missing", known).ID)

	hw.Disks = nil
	got := ResolveDisk(hw, "hdd", known)
	assert.Equal(t, "ssd", got.ID)
	assert.Equal(t, "SSD", got.Name)
	assert.Zero(t, got.Activity)

	assert.Equal(t, telemetry.DiskReading{}, ResolveDisk(hw, "hdd", nil))
}
