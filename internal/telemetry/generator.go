package telemetry

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/rileyhilliard/widgetmon/internal/logger"
)

// Rand is the randomness a generator draws from.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// Option configures a generator.
type Option func(*options)

type options struct {
	rng Rand
	log logger.Logger
	now func() time.Time
}

// WithRand injects the random source, mainly for deterministic tests.
func WithRand(r Rand) Option {
	return func(o *options) {
		o.rng = r
	}
}

// WithLogger sets the logger used for lifecycle messages.
func WithLogger(l logger.Logger) Option {
	return func(o *options) {
		o.log = l
	}
}

// WithClock overrides the time source stamped on snapshots.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

func buildOptions(opts []Option) options {
	o := options{
		log: logger.NewEnvLogger("[telemetry]"),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return o
}

// between draws uniformly from [lo, hi).
func between(r Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// broadcaster fans a value out to subscribers.
type broadcaster[T any] struct {
	mu     sync.RWMutex
	nextID int
	subs   map[int]func(T)
}

func newBroadcaster[T any]() *broadcaster[T] {
	return &broadcaster[T]{subs: make(map[int]func(T))}
}

func (b *broadcaster[T]) subscribe(fn func(T)) func() {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.subs[id] = fn
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs, id)
			b.mu.Unlock()
		})
	}
}

func (b *broadcaster[T]) publish(v T) {
	b.mu.RLock()
	fns := make([]func(T), 0, len(b.subs))
	for _, fn := range b.subs {
		fns = append(fns, fn)
	}
	b.mu.RUnlock()

	for _, fn := range fns {
		fn(v)
	}
}

// loop owns the periodic schedule of one generator.
type loop struct {
	name     string
	interval time.Duration
	tick     func()
	log      logger.Logger

	mu       sync.Mutex
	started  bool
	stopped  bool
	cancel   context.CancelFunc
	done     chan struct{}
	stopOnce sync.Once
}

// start runs tick once synchronously, then every interval until ctx is done
// or stop is called. Calls after the first, or after stop, do nothing.
func (l *loop) start(ctx context.Context) {
	l.mu.Lock()
	if l.started || l.stopped {
		l.mu.Unlock()
		return
	}
	l.started = true
	ctx, l.cancel = context.WithCancel(ctx)
	l.done = make(chan struct{})
	l.mu.Unlock()

	l.log.Debug("%s generator started (interval %s)", l.name, l.interval)
	l.tick()

	go func() {
		defer close(l.done)
		ticker := time.NewTicker(l.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				// A tick racing with cancellation must not publish.
				if ctx.Err() != nil {
					return
				}
				l.tick()
			}
		}
	}()
}

// stop cancels the schedule exactly once and waits for the loop to exit.
func (l *loop) stop() {
	l.stopOnce.Do(func() {
		l.mu.Lock()
		l.stopped = true
		cancel, done := l.cancel, l.done
		l.mu.Unlock()

		if cancel == nil {
			return
		}
		cancel()
		<-done
		l.log.Debug("%s generator stopped", l.name)
	})
}

func (l *loop) isStopped() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.stopped
}

// Sources pairs the two generators that feed a presentation.
type Sources struct {
	Hardware *HardwareGenerator
	Network  *NetworkGenerator
}

// NewSources creates both generators, each with its own random source.
func NewSources(hw HardwareConfig, net NetworkConfig, log logger.Logger) Sources {
	return Sources{
		Hardware: NewHardwareGenerator(hw, WithLogger(log)),
		Network:  NewNetworkGenerator(net, WithLogger(log)),
	}
}

// Start starts both generators.
func (s Sources) Start(ctx context.Context) {
	s.Hardware.Start(ctx)
	s.Network.Start(ctx)
}

// Stop stops both generators and waits for their loops to exit.
func (s Sources) Stop() {
	s.Network.Stop()
	s.Hardware.Stop()
}
