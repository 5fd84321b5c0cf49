// Package debounce coalesces bursts of events into a single callback after
// a quiet period. alnview uses it to absorb the storms of change events a
// file watcher delivers while an editor saves the watched FASTA file.
package debounce

import (
	"sync"
	"time"
)

// Debouncer groups rapid successive calls into one callback invocation after
// no new calls have arrived for the configured delay.
//
// All methods are safe for concurrent use. The callback never runs
// concurrently with itself from the debouncer, and never runs after Cancel
// returns unless Call is invoked again.
type Debouncer struct {
	mu       sync.Mutex
	delay    time.Duration
	timer    *time.Timer
	pending  bool
	seq      uint64 // invalidates stale timer callbacks
	callback func()
}

// New creates a debouncer that invokes callback after calls have been quiet
// for delay.
func New(delay time.Duration, callback func()) *Debouncer {
	return &Debouncer{delay: delay, callback: callback}
}

// Call schedules the callback to run after the debounce delay. Repeated
// calls within the delay window restart the timer, so the callback fires
// once, timed from the last call.
func (d *Debouncer) Call() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.pending = true
	d.seq++
	current := d.seq

	if d.timer != nil {
		d.timer.Stop()
	}

	d.timer = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		if d.pending && d.seq == current && d.callback != nil {
			d.pending = false
			d.mu.Unlock()
			d.callback()
			return
		}
		d.mu.Unlock()
	})
}

// Flush runs the callback immediately if a call is pending, canceling the
// scheduled invocation.
func (d *Debouncer) Flush() {
	d.mu.Lock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.seq++

	if d.pending && d.callback != nil {
		d.pending = false
		d.mu.Unlock()
		d.callback()
		return
	}
	d.mu.Unlock()
}

// Cancel discards any pending call. A timer callback already racing for the
// lock observes the bumped sequence number and does nothing.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.seq++
	d.pending = false
}

// Pending reports whether a debounced call is scheduled.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending
}
