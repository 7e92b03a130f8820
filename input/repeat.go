package input

import "time"

// A Repeat is a task that becomes due Delay after Start and then every
// Every until it is canceled. It does not run anything by itself: the
// owner polls Due from its loop.
type Repeat struct {
	Delay time.Duration
	Every time.Duration

	next  time.Time
	armed bool
}

// Start arms the task relative to now. Starting an armed task restarts it.
func (r *Repeat) Start(now time.Time) {
	r.next = now.Add(r.Delay)
	r.armed = true
}

// Cancel disarms the task. It will not be due again until restarted.
func (r *Repeat) Cancel() {
	r.armed = false
}

// Active reports whether the task is armed.
func (r *Repeat) Active() bool {
	return r.armed
}

// Due reports whether the task should run at now, and if so schedules
// the next run. It is due at most once per call.
func (r *Repeat) Due(now time.Time) bool {
	if !r.armed || now.Before(r.next) {
		return false
	}
	r.next = now.Add(r.Every)
	return true
}
