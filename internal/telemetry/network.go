package telemetry

import (
	"context"
	"sync"
	"time"
)

const (
	kib = 1024.0
	mib = kib * kib

	// MaxDownloadBytesPerSec bounds simulated download throughput.
	MaxDownloadBytesPerSec = 100 * mib
	// MaxUploadBytesPerSec bounds simulated upload throughput.
	MaxUploadBytesPerSec = 20 * mib
	// HighDownloadBytesPerSec is the download rate above which usage counts as high.
	HighDownloadBytesPerSec = 40 * mib
	// HighUploadBytesPerSec is the upload rate above which usage counts as high.
	HighUploadBytesPerSec = 5 * mib

	// DefaultLabelEvery is how many ticks pass between active-app label updates.
	DefaultLabelEvery = 3
)

// AppCatalog is the set of application labels the network generator can
// report. Idle is shown when throughput is low and never chosen under load.
type AppCatalog struct {
	Apps []string `json:"apps" yaml:"apps" mapstructure:"apps"`
	Idle string   `json:"idle" yaml:"idle" mapstructure:"idle"`
}

// DefaultAppCatalog returns the stock seven-application catalog.
func DefaultAppCatalog() AppCatalog {
	return AppCatalog{
		Apps: []string{
			"chrome.exe",
			"steam.exe",
			"Spotify.exe",
			"svchost.exe",
			"Discord.exe",
			"msedge.exe",
			"CreativeCloud.exe",
		},
		Idle: "svchost.exe",
	}
}

// BusyApps returns the catalog without the idle label.
func (c AppCatalog) BusyApps() []string {
	busy := make([]string, 0, len(c.Apps))
	for _, app := range c.Apps {
		if app != c.Idle {
			busy = append(busy, app)
		}
	}
	return busy
}

// initial is the label reported before the first update.
func (c AppCatalog) initial() string {
	if len(c.Apps) > 0 {
		return c.Apps[0]
	}
	return c.Idle
}

// IsHighUsage reports whether the rates count as heavy traffic.
func IsHighUsage(downloadBytesPerSec, uploadBytesPerSec float64) bool {
	return downloadBytesPerSec > HighDownloadBytesPerSec || uploadBytesPerSec > HighUploadBytesPerSec
}

// NetworkConfig configures a NetworkGenerator.
type NetworkConfig struct {
	Interval   time.Duration
	Catalog    AppCatalog
	LabelEvery int
}

// DefaultNetworkConfig returns the stock 1.5s configuration.
func DefaultNetworkConfig() NetworkConfig {
	return NetworkConfig{
		Interval:   DefaultInterval,
		Catalog:    DefaultAppCatalog(),
		LabelEvery: DefaultLabelEvery,
	}
}

// NetworkGenerator produces throughput readings every tick and re-picks the
// active application label every LabelEvery ticks.
type NetworkGenerator struct {
	cfg  NetworkConfig
	busy []string
	opts options
	subs *broadcaster[NetworkSnapshot]
	loop *loop

	mu      sync.Mutex
	tick    uint64
	counter int
	latest  NetworkSnapshot
}

// NewNetworkGenerator creates a stopped generator. Zero config fields fall
// back to DefaultNetworkConfig.
func NewNetworkGenerator(cfg NetworkConfig, opts ...Option) *NetworkGenerator {
	def := DefaultNetworkConfig()
	if cfg.Interval <= 0 {
		cfg.Interval = def.Interval
	}
	if len(cfg.Catalog.Apps) == 0 && cfg.Catalog.Idle == "" {
		cfg.Catalog = def.Catalog
	}
	if cfg.LabelEvery <= 0 {
		cfg.LabelEvery = def.LabelEvery
	}

	g := &NetworkGenerator{
		cfg:  cfg,
		busy: cfg.Catalog.BusyApps(),
		opts: buildOptions(opts),
		subs: newBroadcaster[NetworkSnapshot](),
	}
	g.latest = NetworkSnapshot{ActiveApp: cfg.Catalog.initial()}
	g.loop = &loop{
		name:     "network",
		interval: cfg.Interval,
		tick:     func() { g.Next() },
		log:      g.opts.log,
	}
	return g
}

// Config returns the effective configuration.
func (g *NetworkGenerator) Config() NetworkConfig {
	return g.cfg
}

// Subscribe registers fn for every published snapshot and returns a function
// that removes it.
func (g *NetworkGenerator) Subscribe(fn func(NetworkSnapshot)) func() {
	return g.subs.subscribe(fn)
}

// Start publishes the first snapshot immediately and then one per interval.
func (g *NetworkGenerator) Start(ctx context.Context) {
	g.loop.start(ctx)
}

// Stop cancels the schedule. Safe to call more than once, or before Start.
func (g *NetworkGenerator) Stop() {
	g.loop.stop()
}

// Latest returns the most recently generated snapshot.
func (g *NetworkGenerator) Latest() NetworkSnapshot {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.latest
}

// Next generates one snapshot and publishes it to subscribers. After Stop it
// still generates but no longer publishes.
func (g *NetworkGenerator) Next() NetworkSnapshot {
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

// generate draws new rates and, on every LabelEvery-th call, a new label.
// Must be called with g.mu held.
func (g *NetworkGenerator) generate(tick uint64) NetworkSnapshot {
	r := g.opts.rng

	snap := NetworkSnapshot{
		Tick:                tick,
		Time:                g.opts.now(),
		DownloadBytesPerSec: between(r, 0, MaxDownloadBytesPerSec),
		UploadBytesPerSec:   between(r, 0, MaxUploadBytesPerSec),
		ActiveApp:           g.latest.ActiveApp,
	}

	g.counter++
	if g.counter >= g.cfg.LabelEvery {
		g.counter = 0
		snap.ActiveApp = g.pickApp(snap.DownloadBytesPerSec, snap.UploadBytesPerSec)
	}

	return snap
}

func (g *NetworkGenerator) pickApp(down, up float64) string {
	if !IsHighUsage(down, up) || len(g.busy) == 0 {
		return g.cfg.Catalog.Idle
	}
	return g.busy[g.opts.rng.IntN(len(g.busy))]
}
