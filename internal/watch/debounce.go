package watch

import (
	"sync"
	"time"
)

// DefaultQuietPeriod is the debounce delay after the last change signal
// before a reconciliation pass runs.
const DefaultQuietPeriod = 800 * time.Millisecond

// Debouncer coalesces bursts of change signals into a single delayed run.
// Each Signal either arms the quiet-period timer or pushes an armed deadline
// back to the full quiet period, so run executes once per quiet period rather
// than once per raw event. At most one timer is ever outstanding.
type Debouncer struct {
	quiet time.Duration
	run   func()

	mu      sync.Mutex
	timer   *time.Timer
	gen     uint64
	stopped bool
}

// NewDebouncer creates a Debouncer invoking run after each quiet period.
func NewDebouncer(quiet time.Duration, run func()) *Debouncer {
	if quiet <= 0 {
		quiet = DefaultQuietPeriod
	}
	return &Debouncer{quiet: quiet, run: run}
}

// Signal arms or resets the pending timer. Safe for concurrent use from any
// notification-delivery context.
func (d *Debouncer) Signal() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	d.gen++
	gen := d.gen
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.quiet, func() { d.fire(gen) })
}

// fire runs the callback once, unless a later Signal superseded this timer.
func (d *Debouncer) fire(gen uint64) {
	d.mu.Lock()
	if d.stopped || gen != d.gen {
		d.mu.Unlock()
		return
	}
	d.timer = nil
	d.mu.Unlock()

	d.run()
}

// Stop cancels any pending run and ignores further signals.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
