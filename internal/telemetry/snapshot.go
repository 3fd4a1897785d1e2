package telemetry

import "time"

// DiskInfo identifies one simulated disk.
type DiskInfo struct {
	ID   string `json:"id" yaml:"id" mapstructure:"id"`
	Name string `json:"name" yaml:"name" mapstructure:"name"`
}

// DiskReading is a single disk's activity and temperature for one tick.
type DiskReading struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Activity float64 `json:"activity"`
	Temp     float64 `json:"temp"`
}

// Memory holds used and total memory in GB.
type Memory struct {
	Used  float64 `json:"used"`
	Total float64 `json:"total"`
}

// Percent returns used memory as a percentage of total.
func (m Memory) Percent() float64 {
	if m.Total <= 0 {
		return 0
	}
	return m.Used / m.Total * 100
}

// HardwareSnapshot is one tick of simulated hardware readings.
type HardwareSnapshot struct {
	Tick            uint64        `json:"tick"`
	Time            time.Time     `json:"time"`
	CPU             float64       `json:"cpu"`
	GPU             float64       `json:"gpu"`
	CPUClockGHz     float64       `json:"cpu_clock_ghz"`
	Memory          Memory        `json:"memory"`
	CPUTemp         float64       `json:"cpu_temp"`
	GPUTemp         float64       `json:"gpu_temp"`
	MotherboardTemp float64       `json:"motherboard_temp"`
	Disks           []DiskReading `json:"disks"`
}

// Disk returns the reading with the given id.
func (s HardwareSnapshot) Disk(id string) (DiskReading, bool) {
	for _, d := range s.Disks {
		if d.ID == id {
			return d, true
		}
	}
	return DiskReading{}, false
}

// NetworkSnapshot is one tick of simulated network readings.
type NetworkSnapshot struct {
	Tick                uint64    `json:"tick"`
	Time                time.Time `json:"time"`
	DownloadBytesPerSec float64   `json:"download_bytes_per_sec"`
	UploadBytesPerSec   float64   `json:"upload_bytes_per_sec"`
	ActiveApp           string    `json:"active_app"`
}
