// Package testutil provides test helpers shared across ecoscan packages:
// a manually driven scheduler and fluent builders for backend payloads.
package testutil

import (
	"sync"
	"time"

	"github.com/Veraticus/ecoscan/internal/common"
)

// ManualScheduler records scheduled calls and runs them only when a test
// fires them. With Immediate set, calls run synchronously on scheduling.
type ManualScheduler struct {
	pending   []*ManualTimer
	mu        sync.Mutex
	Immediate bool
}

// ManualTimer is a timer owned by a ManualScheduler.
type ManualTimer struct {
	fn      func()
	Delay   time.Duration
	stopped bool
	fired   bool
}

// Stop cancels the timer. It reports whether the call was still pending.
func (t *ManualTimer) Stop() bool {
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

// Stopped reports whether Stop cancelled the timer.
func (t *ManualTimer) Stopped() bool { return t.stopped }

// NewManualScheduler creates a scheduler that holds every call.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// NewImmediateScheduler creates a scheduler that runs calls at once.
func NewImmediateScheduler() *ManualScheduler {
	return &ManualScheduler{Immediate: true}
}

// AfterFunc implements common.Scheduler.
func (s *ManualScheduler) AfterFunc(d time.Duration, f func()) common.Timer {
	t := &ManualTimer{Delay: d, fn: f}
	s.mu.Lock()
	s.pending = append(s.pending, t)
	immediate := s.Immediate
	s.mu.Unlock()
	if immediate {
		t.fired = true
		f()
	}
	return t
}

// Timers returns every timer scheduled so far.
func (s *ManualScheduler) Timers() []*ManualTimer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*ManualTimer(nil), s.pending...)
}

// Pending returns the timers that are neither stopped nor fired.
func (s *ManualScheduler) Pending() []*ManualTimer {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*ManualTimer
	for _, t := range s.pending {
		if !t.stopped && !t.fired {
			out = append(out, t)
		}
	}
	return out
}

// FireAll runs every pending call in scheduling order, including calls
// scheduled while firing.
func (s *ManualScheduler) FireAll() int {
	n := 0
	for {
		s.mu.Lock()
		var next *ManualTimer
		for _, t := range s.pending {
			if !t.stopped && !t.fired {
				next = t
				break
			}
		}
		if next != nil {
			next.fired = true
		}
		s.mu.Unlock()
		if next == nil {
			return n
		}
		next.fn()
		n++
	}
}
