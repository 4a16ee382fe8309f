package engine

// Timers is a queue of callbacks deferred by a number of ticks
// Callbacks fire inside the tick that reaches their deadline, in scheduling order
// There is no cancellation; callers guard against stale callbacks themselves
type Timers struct {
	now     uint64
	pending []deferred
}

type deferred struct {
	due uint64
	fn  func()
}

// NewTimers creates an empty queue
func NewTimers() *Timers {
	return &Timers{}
}

// After schedules fn to run after the given number of ticks, minimum 1
func (t *Timers) After(ticks int, fn func()) {
	if ticks < 1 {
		ticks = 1
	}
	t.pending = append(t.pending, deferred{due: t.now + uint64(ticks), fn: fn})
}

// Pending returns the number of callbacks not yet fired
func (t *Timers) Pending() int {
	return len(t.pending)
}

// Advance moves the queue one tick forward and fires every due callback
// Callbacks scheduled from inside a callback are kept for later ticks
func (t *Timers) Advance() {
	t.now++

	var due []func()
	kept := t.pending[:0]
	for _, d := range t.pending {
		if d.due <= t.now {
			due = append(due, d.fn)
		} else {
			kept = append(kept, d)
		}
	}
	t.pending = kept

	for _, fn := range due {
		fn()
	}
}
