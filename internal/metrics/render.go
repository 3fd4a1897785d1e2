package metrics

import (
	"github.com/rileyhilliard/widgetmon/internal/format"
	"github.com/rileyhilliard/widgetmon/internal/telemetry"
)

// Render produces the display string for kind from the given readings.
// It has no side effects; disk kinds read from disk, which callers resolve
// with ResolveDisk.
func Render(kind Kind, hw telemetry.HardwareSnapshot, net telemetry.NetworkSnapshot, disk telemetry.DiskReading) string {
	switch kind {
	case KindCPUClock:
		return format.FormatClock(hw.CPUClockGHz)
	case KindUpload:
		return format.FormatSpeed(net.UploadBytesPerSec)
	case KindCPU:
		return format.FormatPercent(hw.CPU)
	case KindMemory:
		return format.FormatPercent(hw.Memory.Percent())
	case KindGPU:
		return format.FormatPercent(hw.GPU)
	case KindDisk:
		return format.FormatPercent(disk.Activity)
	case KindDownload:
		return format.FormatSpeed(net.DownloadBytesPerSec)
	case KindCPUTemp:
		return format.FormatTemp(hw.CPUTemp)
	case KindMotherboardTemp:
		return format.FormatTemp(hw.MotherboardTemp)
	case KindGPUTemp:
		return format.FormatTemp(hw.GPUTemp)
	case KindDiskTemp:
		return format.FormatTemp(disk.Temp)
	default:
		return ""
	}
}

// RawValue returns the number behind kind, used for history and coloring.
func RawValue(kind Kind, hw telemetry.HardwareSnapshot, net telemetry.NetworkSnapshot, disk telemetry.DiskReading) float64 {
	switch kind {
	case KindCPUClock:
		return hw.CPUClockGHz
	case KindUpload:
		return net.UploadBytesPerSec
	case KindCPU:
		return hw.CPU
	case KindMemory:
		return hw.Memory.Percent()
	case KindGPU:
		return hw.GPU
	case KindDisk:
		return disk.Activity
	case KindDownload:
		return net.DownloadBytesPerSec
	case KindCPUTemp:
		return hw.CPUTemp
	case KindMotherboardTemp:
		return hw.MotherboardTemp
	case KindGPUTemp:
		return hw.GPUTemp
	case KindDiskTemp:
		return disk.Temp
	default:
		return 0
	}
}

// ResolveDisk finds the tracked disk in the live snapshot. When id is absent
// it falls back to the first disk in the snapshot, and when the snapshot has
// no disks at all, to an empty reading for the first known disk.
func ResolveDisk(hw telemetry.HardwareSnapshot, id string, known []telemetry.DiskInfo) telemetry.DiskReading {
	if d, ok := hw.Disk(id); ok {
		return d
	}
	if len(hw.Disks) > 0 {
		return hw.Disks[0]
	}
	if len(known) > 0 {
		return telemetry.DiskReading{ID: known[0].ID, Name: known[0].Name}
	}
	return telemetry.DiskReading{}
}
