// Package metrics holds the widget's ordered, toggleable list of metrics and
// the rules that turn telemetry snapshots into display strings.
//
// A Registry always contains the same eleven kinds. Users can hide or show
// them and change their order, but never add or remove one. The CPU clock is
// drawn in a separate header slot; every other visible metric is drawn in
// registry order.
//
// Registry is not safe for concurrent use. The terminal widget mutates it from
// the bubbletea Update loop and the HTTP server wraps it in a mutex.
package metrics
