package metrics

// Kind identifies one of the fixed metric types the widget can show.
type Kind int

const (
	KindCPUClock Kind = iota
	KindUpload
	KindCPU
	KindMemory
	KindGPU
	KindDisk
	KindDownload
	KindCPUTemp
	KindMotherboardTemp
	KindGPUTemp
	KindDiskTemp

	kindCount
)

// kindInfo holds the static presentation data for a kind.
type kindInfo struct {
	id        string
	label     string
	fullLabel string
	icon      string
}

var kinds = [kindCount]kindInfo{
	KindCPUClock:        {id: "cpuClock", label: "Clock", fullLabel: "CPU Clock", icon: "◷"},
	KindUpload:          {id: "upload", label: "Upload", fullLabel: "Upload", icon: "↑"},
	KindCPU:             {id: "cpu", label: "CPU", fullLabel: "%CPU", icon: "▣"},
	KindMemory:          {id: "memory", label: "MEM", fullLabel: "%RAM", icon: "▤"},
	KindGPU:             {id: "gpu", label: "GPU", fullLabel: "%GPU", icon: "▦"},
	KindDisk:            {id: "disk", label: "SSD", fullLabel: "%DISK", icon: "◫"},
	KindDownload:        {id: "download", label: "Download", fullLabel: "Download", icon: "↓"},
	KindCPUTemp:         {id: "cpuTemp", label: "CPU", fullLabel: "CPU Temp", icon: "≈"},
	KindMotherboardTemp: {id: "mbdTemp", label: "MBD", fullLabel: "MBD Temp", icon: "⊞"},
	KindGPUTemp:         {id: "gpuTemp", label: "GPU", fullLabel: "GPU Temp", icon: "≈"},
	KindDiskTemp:        {id: "diskTemp", label: "SSD", fullLabel: "Disk Temp", icon: "≈"},
}

// AllKinds returns every kind in default display order.
func AllKinds() []Kind {
	out := make([]Kind, kindCount)
	for i := range out {
		out[i] = Kind(i)
	}
	return out
}

// Valid reports whether k is one of the defined kinds.
func (k Kind) Valid() bool {
	return k >= 0 && k < kindCount
}

// ID returns the stable string identifier, e.g. "cpuTemp".
func (k Kind) ID() string {
	if !k.Valid() {
		return "unknown"
	}
	return kinds[k].id
}

// String returns the stable id.
func (k Kind) String() string {
	return k.ID()
}

// Label returns the short default label.
func (k Kind) Label() string {
	if !k.Valid() {
		return ""
	}
	return kinds[k].label
}

// FullLabel returns the long label shown in settings.
func (k Kind) FullLabel() string {
	if !k.Valid() {
		return ""
	}
	return kinds[k].fullLabel
}

// Icon returns the glyph drawn next to the metric.
func (k Kind) Icon() string {
	if !k.Valid() {
		return ""
	}
	return kinds[k].icon
}

// IsNetwork reports whether the kind shows a throughput rate.
func (k Kind) IsNetwork() bool {
	return k == KindUpload || k == KindDownload
}

// IsDisk reports whether the kind tracks the selected disk.
func (k Kind) IsDisk() bool {
	return k == KindDisk || k == KindDiskTemp
}

// IsPercent reports whether the kind's value is a 0-100 percentage.
func (k Kind) IsPercent() bool {
	switch k {
	case KindCPU, KindMemory, KindGPU, KindDisk:
		return true
	}
	return false
}

// ParseKind looks up a kind by its stable id.
func ParseKind(id string) (Kind, bool) {
	for i, info := range kinds {
		if info.id == id {
			return Kind(i), true
		}
	}
	return -1, false
}

// IDs returns every stable id in default order.
func IDs() []string {
	out := make([]string, 0, kindCount)
	for _, k := range AllKinds() {
		out = append(out, k.ID())
	}
	return out
}
