package metrics

import (
	"github.com/rileyhilliard/widgetmon/internal/telemetry"
)

// PlaceholderText is shown when no metric is visible.
const PlaceholderText = "Enable a metric in settings."

// HeaderKind is the kind rendered in the header slot instead of the list.
const HeaderKind = KindCPUClock

// Metric is one display row.
type Metric struct {
	Kind      Kind   `json:"-"`
	ID        string `json:"id"`
	Label     string `json:"label"`
	FullLabel string `json:"full_label"`
	Icon      string `json:"icon"`
	Visible   bool   `json:"visible"`
	Value     string `json:"value"`
}

// Registry is the ordered set of metrics plus the latest readings they render.
type Registry struct {
	metrics    []Metric
	knownDisks []telemetry.DiskInfo
	diskID     string

	hw  telemetry.HardwareSnapshot
	net telemetry.NetworkSnapshot
}

// NewRegistry creates a registry with all kinds visible in default order.
// knownDisks is the disk catalog; the first entry is tracked initially.
func NewRegistry(knownDisks []telemetry.DiskInfo) *Registry {
	r := &Registry{
		knownDisks: append([]telemetry.DiskInfo(nil), knownDisks...),
	}
	if len(knownDisks) > 0 {
		r.diskID = knownDisks[0].ID
	}
	// Zero readings for the catalog until the first hardware tick, so a disk
	// picked before then resolves by id.
	r.hw.Disks = make([]telemetry.DiskReading, len(knownDisks))
	for i, d := range knownDisks {
		r.hw.Disks[i] = telemetry.DiskReading{ID: d.ID, Name: d.Name}
	}

	for _, k := range AllKinds() {
		r.metrics = append(r.metrics, Metric{
			Kind:      k,
			ID:        k.ID(),
			Label:     k.Label(),
			FullLabel: k.FullLabel(),
			Icon:      k.Icon(),
			Visible:   true,
		})
	}

	r.recompute()
	return r
}

// Recompute stores both snapshots and regenerates every display string.
// Identities, order, and visibility are untouched.
func (r *Registry) Recompute(hw telemetry.HardwareSnapshot, net telemetry.NetworkSnapshot) {
	r.hw = hw
	r.net = net
	r.recompute()
}

// UpdateHardware recomputes with a new hardware snapshot and the last network one.
func (r *Registry) UpdateHardware(hw telemetry.HardwareSnapshot) {
	r.Recompute(hw, r.net)
}

// UpdateNetwork recomputes with a new network snapshot and the last hardware one.
func (r *Registry) UpdateNetwork(net telemetry.NetworkSnapshot) {
	r.Recompute(r.hw, net)
}

func (r *Registry) recompute() {
	disk := r.SelectedDisk()
	for i := range r.metrics {
		m := &r.metrics[i]
		m.Value = Render(m.Kind, r.hw, r.net, disk)
		if m.Kind.IsDisk() && disk.Name != "" {
			m.Label = disk.Name
		}
	}
}

// Hardware returns the last hardware snapshot passed to Recompute.
func (r *Registry) Hardware() telemetry.HardwareSnapshot {
	return r.hw
}

// Network returns the last network snapshot passed to Recompute.
func (r *Registry) Network() telemetry.NetworkSnapshot {
	return r.net
}

// Toggle flips the visibility of the metric with id.
// Returns false, changing nothing, if id is unknown.
func (r *Registry) Toggle(id string) bool {
	i := r.Index(id)
	if i < 0 {
		return false
	}
	r.metrics[i].Visible = !r.metrics[i].Visible
	return true
}

// SetVisible sets the visibility of the metric with id.
// Returns false if id is unknown.
func (r *Registry) SetVisible(id string, visible bool) bool {
	i := r.Index(id)
	if i < 0 {
		return false
	}
	r.metrics[i].Visible = visible
	return true
}

// Reorder removes the dragged metric and reinserts it at the index the target
// occupied before the removal. Dragging upward lands it just before the
// target; dragging downward lands it just after. Returns false, changing
// nothing, when either id is unknown or they are equal.
//
// Reorder is not generally its own inverse: reorder(a, b) then reorder(b, a)
// restores the original order only when a and b were adjacent.
func (r *Registry) Reorder(draggedID, targetID string) bool {
	if draggedID == targetID {
		return false
	}
	from := r.Index(draggedID)
	to := r.Index(targetID)
	if from < 0 || to < 0 {
		return false
	}

	dragged := r.metrics[from]
	rest := append(r.metrics[:from:from], r.metrics[from+1:]...)

	out := make([]Metric, 0, len(r.metrics))
	out = append(out, rest[:to]...)
	out = append(out, dragged)
	out = append(out, rest[to:]...)
	r.metrics = out
	return true
}

// SelectDisk sets the tracked disk id and recomputes. The id does not need to
// exist in the current snapshot; resolution falls back to the first disk.
func (r *Registry) SelectDisk(id string) {
	r.diskID = id
	r.recompute()
}

// SelectedDiskID returns the tracked disk id as requested by the user.
func (r *Registry) SelectedDiskID() string {
	return r.diskID
}

// SelectedDisk resolves the tracked disk against the last hardware snapshot.
func (r *Registry) SelectedDisk() telemetry.DiskReading {
	return ResolveDisk(r.hw, r.diskID, r.knownDisks)
}

// KnownDisks returns the disk catalog.
func (r *Registry) KnownDisks() []telemetry.DiskInfo {
	return append([]telemetry.DiskInfo(nil), r.knownDisks...)
}

// NextDisk moves the selection to the disk after the currently resolved one,
// wrapping around the catalog.
func (r *Registry) NextDisk() {
	if len(r.knownDisks) == 0 {
		return
	}
	current := r.SelectedDisk().ID
	next := 0
	for i, d := range r.knownDisks {
		if d.ID == current {
			next = (i + 1) % len(r.knownDisks)
			break
		}
	}
	r.SelectDisk(r.knownDisks[next].ID)
}

// Index returns the position of id, or -1.
func (r *Registry) Index(id string) int {
	for i, m := range r.metrics {
		if m.ID == id {
			return i
		}
	}
	return -1
}

// Get returns the metric with id.
func (r *Registry) Get(id string) (Metric, bool) {
	i := r.Index(id)
	if i < 0 {
		return Metric{}, false
	}
	return r.metrics[i], true
}

// Metrics returns every metric in order, including hidden ones.
func (r *Registry) Metrics() []Metric {
	return append([]Metric(nil), r.metrics...)
}

// Order returns the ids in current order.
func (r *Registry) Order() []string {
	ids := make([]string, len(r.metrics))
	for i, m := range r.metrics {
		ids[i] = m.ID
	}
	return ids
}

// Header returns the header metric and whether it should be drawn.
func (r *Registry) Header() (Metric, bool) {
	m, _ := r.Get(HeaderKind.ID())
	return m, m.Visible
}

// Visible returns the non-header metrics that are visible, in order.
func (r *Registry) Visible() []Metric {
	var out []Metric
	for _, m := range r.metrics {
		if m.Kind != HeaderKind && m.Visible {
			out = append(out, m)
		}
	}
	return out
}

// ShowPlaceholder reports whether the placeholder replaces the metric list:
// nothing in the list is visible and the header is hidden too.
func (r *Registry) ShowPlaceholder() bool {
	_, header := r.Header()
	return !header && len(r.Visible()) == 0
}

// AnyVisible reports whether at least one metric, header included, is visible.
func (r *Registry) AnyVisible() bool {
	for _, m := range r.metrics {
		if m.Visible {
			return true
		}
	}
	return false
}

// ApplyOrder moves the listed ids to the front in the given order, keeping
// the rest in their current relative order. Unknown and repeated ids are ignored.
func (r *Registry) ApplyOrder(ids []string) {
	placed := make(map[string]bool, len(r.metrics))
	out := make([]Metric, 0, len(r.metrics))
	for _, id := range ids {
		i := r.Index(id)
		if i < 0 || placed[id] {
			continue
		}
		placed[id] = true
		out = append(out, r.metrics[i])
	}
	for _, m := range r.metrics {
		if !placed[m.ID] {
			out = append(out, m)
		}
	}
	r.metrics = out
}

// ApplyHidden hides every listed id. Unknown ids are ignored.
func (r *Registry) ApplyHidden(ids []string) {
	for _, id := range ids {
		r.SetVisible(id, false)
	}
}

// Hidden returns the ids of hidden metrics in current order.
func (r *Registry) Hidden() []string {
	var ids []string
	for _, m := range r.metrics {
		if !m.Visible {
			ids = append(ids, m.ID)
		}
	}
	return ids
}
