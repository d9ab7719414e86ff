package tick

import (
	"testing"
	"time"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestFixedIntervalGatesSteps(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	fs := NewFixedInterval(100 * time.Millisecond)
	fs.SetClock(clock.now)

	if !fs.ShouldStep() {
		t.Fatal("first poll should step")
	}
	clock.advance(40 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("stepped after 40ms with a 100ms interval")
	}
	clock.advance(40 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("stepped after 80ms with a 100ms interval")
	}
	clock.advance(20 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("expected a step once 100ms elapsed")
	}
}

func TestFixedIntervalCapsBacklog(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	fs := NewFixedInterval(100 * time.Millisecond)
	fs.SetClock(clock.now)
	fs.ShouldStep()

	clock.advance(time.Second)
	steps := 0
	for i := 0; i < 20; i++ {
		if fs.ShouldStep() {
			steps++
		}
	}
	if steps != 2 {
		t.Fatalf("got %d steps after a 1s stall, want 2", steps)
	}
}

func TestSetTPSDefaults(t *testing.T) {
	fs := NewFixedStep(0)
	if got := fs.Interval(); got != time.Second/60 {
		t.Fatalf("interval = %v, want %v", got, time.Second/60)
	}
	fs.SetTPS(10)
	if got := fs.Interval(); got != 100*time.Millisecond {
		t.Fatalf("interval = %v, want 100ms", got)
	}
	fs.SetInterval(-time.Second)
	if got := fs.Interval(); got != time.Second/60 {
		t.Fatalf("interval = %v, want default", got)
	}
}
