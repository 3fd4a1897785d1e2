package telemetry

import (
	"context"
	"sync"
	"time"
)

// Value ranges for simulated hardware readings. Every range is half-open: [Min, Max).
const (
	ClockMinGHz     = 3.5
	ClockMaxGHz     = 5.0
	CPUTempMin      = 45.0
	CPUTempMax      = 95.0
	GPUTempMin      = 40.0
	GPUTempMax      = 90.0
	BoardTempMin    = 30.0
	BoardTempMax    = 50.0
	DiskTempMin     = 30.0
	DiskTempMax     = 55.0
	PercentMax      = 100.0
	DefaultMemoryGB = 16.0
)

// DefaultInterval is the tick interval used when none is configured.
const DefaultInterval = 1500 * time.Millisecond

// DefaultDisks is the disk catalog used when none is configured.
func DefaultDisks() []DiskInfo {
	return []DiskInfo{
		{ID: "ssd", Name: "SSD"},
		{ID: "hdd", Name: "HDD"},
		{ID: "nvme", Name: "NVME"},
	}
}

// HardwareConfig configures a HardwareGenerator.
type HardwareConfig struct {
	Interval      time.Duration
	MemoryTotalGB float64
	Disks         []DiskInfo
}

// DefaultHardwareConfig returns the stock 1.5s, 16 GB, three-disk setup.
func DefaultHardwareConfig() HardwareConfig {
	return HardwareConfig{
		Interval:      DefaultInterval,
		MemoryTotalGB: DefaultMemoryGB,
		Disks:         DefaultDisks(),
	}
}

// HardwareGenerator produces a fresh HardwareSnapshot every tick.
type HardwareGenerator struct {
	cfg  HardwareConfig
	opts options
	subs *broadcaster[HardwareSnapshot]
	loop *loop

	mu     sync.Mutex
	tick   uint64
	latest HardwareSnapshot
}

// NewHardwareGenerator creates a stopped generator. Zero config fields fall
// back to DefaultHardwareConfig.
func NewHardwareGenerator(cfg HardwareConfig, opts ...Option) *HardwareGenerator {
	def := DefaultHardwareConfig()
	if cfg.Interval <= 0 {
		cfg.Interval = def.Interval
	}
	if cfg.MemoryTotalGB <= 0 {
		cfg.MemoryTotalGB = def.MemoryTotalGB
	}
	if len(cfg.Disks) == 0 {
		cfg.Disks = def.Disks
	}

	g := &HardwareGenerator{
		cfg:  cfg,
		opts: buildOptions(opts),
		subs: newBroadcaster[HardwareSnapshot](),
	}
	g.latest = g.initialSnapshot()
	g.loop = &loop{
		name:     "hardware",
		interval: cfg.Interval,
		tick:     func() { g.Next() },
		log:      g.opts.log,
	}
	return g
}

// initialSnapshot mirrors the state before the first tick: all zeros with the
// configured memory total and disk catalog.
func (g *HardwareGenerator) initialSnapshot() HardwareSnapshot {
	disks := make([]DiskReading, len(g.cfg.Disks))
	for i, d := range g.cfg.Disks {
		disks[i] = DiskReading{ID: d.ID, Name: d.Name}
	}
	return HardwareSnapshot{
		Memory: Memory{Total: g.cfg.MemoryTotalGB},
		Disks:  disks,
	}
}

// Config returns the effective configuration.
func (g *HardwareGenerator) Config() HardwareConfig {
	return g.cfg
}

// Disks returns the configured disk catalog.
func (g *HardwareGenerator) Disks() []DiskInfo {
	out := make([]DiskInfo, len(g.cfg.Disks))
	copy(out, g.cfg.Disks)
	return out
}

// Subscribe registers fn for every published snapshot and returns a function
// that removes it.
func (g *HardwareGenerator) Subscribe(fn func(HardwareSnapshot)) func() {
	return g.subs.subscribe(fn)
}

// Start publishes the first snapshot immediately and then one per interval.
func (g *HardwareGenerator) Start(ctx context.Context) {
	g.loop.start(ctx)
}

// Stop cancels the schedule. Safe to call more than once, or before Start.
func (g *HardwareGenerator) Stop() {
	g.loop.stop()
}

// Latest returns the most recently generated snapshot.
func (g *HardwareGenerator) Latest() HardwareSnapshot {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.latest
}

// Next generates one snapshot and publishes it to subscribers. After Stop it
// still generates but no longer publishes.
func (g *HardwareGenerator) Next() HardwareSnapshot {
	g.mu.Lock()
	g.tick++
	snap := g.generate(g.tick)
	g.latest = snap
	g.mu.Unlock()

	if !g.loop.isStopped() {
		g.subs.publish(snap)
	}
	return snap
}

// generate draws every field independently. Must be called with g.mu held.
func (g *HardwareGenerator) generate(tick uint64) HardwareSnapshot {
	r := g.opts.rng

	snap := HardwareSnapshot{
		Tick:        tick,
		Time:        g.opts.now(),
		CPU:         between(r, 0, PercentMax),
		CPUClockGHz: between(r, ClockMinGHz, ClockMaxGHz),
		Memory: Memory{
			Used:  between(r, 0, g.cfg.MemoryTotalGB),
			Total: g.cfg.MemoryTotalGB,
		},
		GPU: between(r, 0, PercentMax),
	}

	snap.Disks = make([]DiskReading, len(g.cfg.Disks))
	for i, d := range g.cfg.Disks {
		snap.Disks[i] = DiskReading{
			ID:       d.ID,
			Name:     d.Name,
			Activity: between(r, 0, PercentMax),
			Temp:     between(r, DiskTempMin, DiskTempMax),
		}
	}

	snap.CPUTemp = between(r, CPUTempMin, CPUTempMax)
	snap.GPUTemp = between(r, GPUTempMin, GPUTempMax)
	snap.MotherboardTemp = between(r, BoardTempMin, BoardTempMax)

	return snap
}
