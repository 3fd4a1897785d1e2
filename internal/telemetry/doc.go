// Package telemetry synthesizes the hardware and network readings shown by
// the widget.
//
// Nothing here touches the operating system. Two generators draw every value
// independently and uniformly from fixed ranges on their own timers:
//
//	HardwareGenerator - CPU, GPU, memory, clock, temperatures, per-disk activity
//	NetworkGenerator  - download/upload throughput and the "active application"
//
// # Lifecycle
//
// Each generator is an owned object. Start publishes the first snapshot
// synchronously (tick 1) and then one per interval from a single goroutine.
// Stop is idempotent and blocks until that goroutine has exited, so no
// subscriber is called after Stop returns. Subscribers must not call Stop.
//
// Snapshots are plain values: a subscriber always sees a complete reading and
// never a partially updated one.
package telemetry
