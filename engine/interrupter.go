package engine

import (
	"context"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/racer796/status"
)

// Ticker is a component stepped once per simulation tick
// Implementations must be comparable (pointer receivers) so they can be removed
type Ticker interface {
	Tick()
}

// Interrupter drives every registered Ticker on a fixed tick
// All ticking and deferred callbacks run on one goroutine under the interrupter lock;
// renderers take the same lock through RunSafe so they never observe a half-applied tick
type Interrupter struct {
	mu     sync.Mutex
	items  []Ticker
	timers *Timers

	// Tick configuration
	tickInterval     time.Duration
	nextTickDeadline time.Time
	tickCount        atomic.Uint64
	onFrame          func(frame int64)

	// Signals the front end that a tick completed, never blocks
	tickDone chan struct{}

	// Control
	stopChan chan struct{}
	stopOnce sync.Once
	running  atomic.Bool

	// Cached metric pointers
	statTicks *atomic.Int64
}

// NewInterrupter creates an interrupter with the given tick interval
// Returns the tick-done channel the front end waits on before composing a frame
func NewInterrupter(tickInterval time.Duration, reg *status.Registry) (*Interrupter, <-chan struct{}) {
	tickDone := make(chan struct{}, 1)

	it := &Interrupter{
		timers:       NewTimers(),
		tickInterval: tickInterval,
		tickDone:     tickDone,
		stopChan:     make(chan struct{}),
		statTicks:    reg.Ints.Get("engine.ticks"),
	}
	return it, tickDone
}

// Add registers a ticker; adding one already registered is a no-op
// Add and Remove must run under the tick lock: from a Tick, a timer callback or RunSafe
// A ticker added during a tick runs from the next tick on
func (it *Interrupter) Add(t Ticker) {
	if slices.Contains(it.items, t) {
		return
	}
	it.items = append(it.items, t)
}

// Remove unregisters a ticker
func (it *Interrupter) Remove(t Ticker) {
	it.items = slices.DeleteFunc(it.items, func(x Ticker) bool { return x == t })
}

// Has reports whether t is registered
func (it *Interrupter) Has(t Ticker) bool {
	return slices.Contains(it.items, t)
}

// Timers returns the deferred callback queue advanced by this interrupter
func (it *Interrupter) Timers() *Timers {
	return it.timers
}

// Ticks returns the number of completed ticks
func (it *Interrupter) Ticks() uint64 {
	return it.tickCount.Load()
}

// OnFrame sets a hook called at the start of every tick with the number of the tick being run,
// before any ticker or timer callback; events emitted during the tick carry that number
func (it *Interrupter) OnFrame(fn func(frame int64)) {
	it.mu.Lock()
	defer it.mu.Unlock()
	it.onFrame = fn
}

// Step runs exactly one tick synchronously
func (it *Interrupter) Step() {
	it.mu.Lock()
	defer it.mu.Unlock()
	it.step()
}

// RunSafe executes fn under the tick lock
func (it *Interrupter) RunSafe(fn func()) {
	it.mu.Lock()
	defer it.mu.Unlock()
	fn()
}

func (it *Interrupter) step() {
	if it.onFrame != nil {
		it.onFrame(int64(it.tickCount.Load() + 1))
	}

	// Snapshot so tickers may add or remove items while being ticked
	items := slices.Clone(it.items)
	for _, t := range items {
		t.Tick()
	}
	it.timers.Advance()

	n := it.tickCount.Add(1)
	it.statTicks.Store(int64(n))

	select {
	case it.tickDone <- struct{}{}:
	default:
	}
}

// Run ticks until the context is cancelled or Stop is called
// Deadlines advance by the interval to avoid drift; a loop more than two ticks behind resynchronizes
func (it *Interrupter) Run(ctx context.Context) {
	if !it.running.CompareAndSwap(false, true) {
		return
	}
	defer it.running.Store(false)

	it.nextTickDeadline = time.Now().Add(it.tickInterval)

	timer := time.NewTimer(it.tickInterval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-it.stopChan:
			return
		case <-timer.C:
		}

		it.Step()

		now := time.Now()
		it.nextTickDeadline = it.nextTickDeadline.Add(it.tickInterval)
		if now.Sub(it.nextTickDeadline) > it.tickInterval*2 {
			it.nextTickDeadline = now.Add(it.tickInterval)
		}
		timer.Reset(max(0, it.nextTickDeadline.Sub(now)))
	}
}

// Stop ends a running loop, further calls are no-ops
func (it *Interrupter) Stop() {
	it.stopOnce.Do(func() {
		close(it.stopChan)
	})
}
