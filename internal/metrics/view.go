package metrics

import "github.com/rileyhilliard/widgetmon/internal/telemetry"

// View is the read-only shape handed to a renderer.
type View struct {
	Header       *Metric              `json:"header,omitempty"`
	Metrics      []Metric             `json:"metrics"`
	All          []Metric             `json:"all"`
	Placeholder  string               `json:"placeholder,omitempty"`
	ActiveApp    string               `json:"active_app,omitempty"`
	SelectedDisk string               `json:"selected_disk"`
	Disks        []telemetry.DiskInfo `json:"disks"`
}

// View snapshots the registry for rendering.
func (r *Registry) View() View {
	v := View{
		Metrics:      r.Visible(),
		All:          r.Metrics(),
		SelectedDisk: r.SelectedDisk().ID,
		Disks:        r.KnownDisks(),
	}
	if v.Metrics == nil {
		v.Metrics = []Metric{}
	}
	if h, ok := r.Header(); ok {
		v.Header = &h
	}
	if r.ShowPlaceholder() {
		v.Placeholder = PlaceholderText
	}
	if r.AnyVisible() {
		v.ActiveApp = r.net.ActiveApp
	}
	return v
}
