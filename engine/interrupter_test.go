package engine

import (
	"context"
	"testing"
	"time"

	"github.com/lixenwraith/racer796/status"
)

type counter struct {
	n      int
	onTick func()
}

func (c *counter) Tick() {
	c.n++
	if c.onTick != nil {
		c.onTick()
	}
}

// TestInterrupterStepOrder tests tickers run once per step in registration order
func TestInterrupterStepOrder(t *testing.T) {
	it, done := NewInterrupter(time.Millisecond, status.NewRegistry())
	var order []string
	a := &counter{onTick: func() { order = append(order, "a") }}
	b := &counter{onTick: func() { order = append(order, "b") }}

	it.Add(a)
	it.Add(b)
	it.Add(a) // duplicate ignored
	it.Step()

	if len(order) != 2 || order[0] != "a" || order[1] != "b" {
		t.Errorf("Expected [a b], got %v", order)
	}
	if it.Ticks() != 1 {
		t.Errorf("Expected 1 tick, got %d", it.Ticks())
	}

	select {
	case <-done:
	default:
		t.Error("Expected tick-done signal")
	}
}

// TestInterrupterOnFrame tests the frame hook runs before tickers and timers with the tick being run
func TestInterrupterOnFrame(t *testing.T) {
	it, _ := NewInterrupter(time.Millisecond, status.NewRegistry())
	var current int64
	var frames, seenByTicker, seenByTimer []int64

	it.OnFrame(func(frame int64) {
		current = frame
		frames = append(frames, frame)
	})
	it.Add(&counter{onTick: func() { seenByTicker = append(seenByTicker, current) }})
	it.Timers().After(2, func() { seenByTimer = append(seenByTimer, current) })

	for range 3 {
		it.Step()
		if current != int64(it.Ticks()) {
			t.Errorf("Expected frame %d to match completed ticks, got %d", it.Ticks(), current)
		}
	}

	if len(frames) != 3 || frames[0] != 1 || frames[1] != 2 || frames[2] != 3 {
		t.Errorf("Expected frames [1 2 3], got %v", frames)
	}
	if len(seenByTicker) != 3 || seenByTicker[0] != 1 || seenByTicker[2] != 3 {
		t.Errorf("Expected tickers to see frames [1 2 3], got %v", seenByTicker)
	}
	if len(seenByTimer) != 1 || seenByTimer[0] != 2 {
		t.Errorf("Expected timer to fire on frame 2, got %v", seenByTimer)
	}
}

// TestInterrupterRemoveDuringTick tests a ticker removing itself and adding another mid-tick
func TestInterrupterRemoveDuringTick(t *testing.T) {
	it, _ := NewInterrupter(time.Millisecond, status.NewRegistry())
	late := &counter{}
	var self *counter
	self = &counter{onTick: func() {
		it.Remove(self)
		it.Add(late)
	}}
	it.Add(self)

	it.Step()
	if late.n != 0 {
		t.Errorf("Ticker added mid-tick ran in the same tick")
	}
	it.Step()

	if self.n != 1 {
		t.Errorf("Expected removed ticker to run once, ran %d", self.n)
	}
	if late.n != 1 {
		t.Errorf("Expected late ticker to run once, ran %d", late.n)
	}
	if it.Has(self) || !it.Has(late) {
		t.Error("Registration state mismatch")
	}
}

// TestInterrupterRunStopsOnCancel tests the real-time loop ticks and exits with its context
func TestInterrupterRunStopsOnCancel(t *testing.T) {
	reg := status.NewRegistry()
	it, done := NewInterrupter(time.Millisecond, reg)
	c := &counter{}
	it.Add(c)

	ctx, cancel := context.WithCancel(context.Background())
	exited := make(chan struct{})
	go func() {
		it.Run(ctx)
		close(exited)
	}()

	for range 3 {
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("Timed out waiting for tick")
		}
	}
	cancel()

	select {
	case <-exited:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}

	var ticks int
	it.RunSafe(func() { ticks = c.n })
	if ticks < 3 {
		t.Errorf("Expected at least 3 ticks, got %d", ticks)
	}
	if got := reg.Ints.Get("engine.ticks").Load(); got != int64(it.Ticks()) {
		t.Errorf("Metric %d does not match tick count %d", got, it.Ticks())
	}
}

// TestInterrupterStop tests Stop ends Run and is idempotent
func TestInterrupterStop(t *testing.T) {
	it, _ := NewInterrupter(time.Millisecond, status.NewRegistry())
	exited := make(chan struct{})
	go func() {
		it.Run(context.Background())
		close(exited)
	}()

	time.Sleep(5 * time.Millisecond)
	it.Stop()
	it.Stop()

	select {
	case <-exited:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after Stop")
	}
}

// TestTimersFireInOrder tests deferred callbacks fire on their tick in scheduling order
func TestTimersFireInOrder(t *testing.T) {
	it, _ := NewInterrupter(time.Millisecond, status.NewRegistry())
	var fired []int

	it.Timers().After(2, func() { fired = append(fired, 1) })
	it.Timers().After(2, func() { fired = append(fired, 2) })
	it.Timers().After(0, func() { fired = append(fired, 0) })

	it.Step()
	if len(fired) != 1 || fired[0] != 0 {
		t.Fatalf("Expected [0] after one tick, got %v", fired)
	}
	it.Step()
	if len(fired) != 3 || fired[1] != 1 || fired[2] != 2 {
		t.Errorf("Expected [0 1 2], got %v", fired)
	}
	if it.Timers().Pending() != 0 {
		t.Errorf("Expected no pending timers, got %d", it.Timers().Pending())
	}
}

// TestTimersRescheduleFromCallback tests a callback scheduling another callback
func TestTimersRescheduleFromCallback(t *testing.T) {
	tm := NewTimers()
	count := 0
	tm.After(1, func() {
		count++
		tm.After(1, func() { count++ })
	})

	tm.Advance()
	if count != 1 {
		t.Errorf("Expected 1 after first advance, got %d", count)
	}
	tm.Advance()
	if count != 2 {
		t.Errorf("Expected 2 after second advance, got %d", count)
	}
}
