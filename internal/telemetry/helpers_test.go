package telemetry

import (
	"math/rand/v2"
	"sync"
	"time"

	"github.com/rileyhilliard/widgetmon/internal/logger"
)

// scriptedRand replays fixed values in order, wrapping around.
type scriptedRand struct {
	floats []float64
	ints   []int
	fi, ii int
}

func (s *scriptedRand) Float64() float64 {
	v := s.floats[s.fi%len(s.floats)]
	s.fi++
	return v
}

func (s *scriptedRand) IntN(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[s.ii%len(s.ints)] % n
	s.ii++
	return v
}

func seeded(seed uint64) Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

var fixedTime = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

func testOpts(r Rand) []Option {
	return []Option{
		WithRand(r),
		WithLogger(logger.Noop()),
		WithClock(func() time.Time { return fixedTime }),
	}
}

// recorder collects published values for assertions.
type recorder[T any] struct {
	mu   sync.Mutex
	seen []T
}

func (r *recorder[T]) add(v T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seen = append(r.seen, v)
}

func (r *recorder[T]) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.seen)
}

func (r *recorder[T]) all() []T {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]T, len(r.seen))
	copy(out, r.seen)
	return out
}
