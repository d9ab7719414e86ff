package tick

import "time"

// FixedStep gates simulation updates so they happen at most once per
// interval, however often the frame loop polls it.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	if tps <= 0 {
		tps = 60
	}
	return NewFixedInterval(time.Second / time.Duration(tps))
}

// NewFixedInterval constructs a FixedStep that fires once per interval. The
// first poll fires immediately.
func NewFixedInterval(interval time.Duration) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetInterval(interval)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.SetInterval(time.Second / time.Duration(tps))
}

// SetInterval changes the minimum time between ticks.
func (f *FixedStep) SetInterval(d time.Duration) {
	if d <= 0 {
		d = time.Second / 60
	}
	f.step = d
}

// Interval reports the minimum time between ticks.
func (f *FixedStep) Interval() time.Duration { return f.step }

// SetClock replaces the time source, mainly for tests.
func (f *FixedStep) SetClock(now func() time.Time) {
	if now == nil {
		now = time.Now
	}
	f.now = now
}

// ShouldStep reports whether the simulation should advance by one tick.
// At most one tick is granted per call and the backlog never exceeds one
// interval, so a stalled frame loop does not cause a burst of steps.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		if f.accumulator > f.step {
			f.accumulator = f.step
		}
		return true
	}
	return false
}
