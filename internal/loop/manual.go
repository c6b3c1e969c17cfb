package loop

import (
	"slices"
	"sync"
	"time"
)

// Manual is a Loop driven by hand with a virtual clock, for tests.
type Manual struct {
	mu      sync.Mutex
	now     time.Duration
	seq     int
	timers  []*manualTimer
	posted  []func()
	stopped int
}

type manualTimer struct {
	m    *Manual
	at   time.Duration
	seq  int
	fn   func()
	done bool
}

// NewManual returns a manual loop at virtual time zero.
func NewManual() *Manual {
	return &Manual{}
}

var _ Loop = (*Manual)(nil)

// AfterFunc schedules fn at now+d.
func (m *Manual) AfterFunc(d time.Duration, fn func()) Timer {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	t := &manualTimer{m: m, at: m.now + d, seq: m.seq, fn: fn}
	m.timers = append(m.timers, t)
	return t
}

// Post queues fn; it runs on the next RunPending or Advance.
func (m *Manual) Post(fn func()) {
	m.mu.Lock()
	m.posted = append(m.posted, fn)
	m.mu.Unlock()
}

// Stop cancels the timer.
func (t *manualTimer) Stop() bool {
	t.m.mu.Lock()
	defer t.m.mu.Unlock()
	if t.done {
		return false
	}
	t.done = true
	t.m.stopped++
	t.m.timers = slices.DeleteFunc(t.m.timers, func(o *manualTimer) bool { return o == t })
	return true
}

// RunPending runs posted callbacks until none are left, including the
// ones posted while running.
func (m *Manual) RunPending() {
	for {
		m.mu.Lock()
		if len(m.posted) == 0 {
			m.mu.Unlock()
			return
		}
		fn := m.posted[0]
		m.posted = m.posted[1:]
		m.mu.Unlock()
		fn()
	}
}

// Advance moves the virtual clock forward by d, running posted callbacks
// and every timer that becomes due, in due order.
func (m *Manual) Advance(d time.Duration) {
	m.RunPending()
	m.mu.Lock()
	target := m.now + d
	m.mu.Unlock()
	for {
		m.mu.Lock()
		next := m.nextDue(target)
		if next == nil {
			m.now = target
			m.mu.Unlock()
			return
		}
		m.now = next.at
		next.done = true
		m.timers = slices.DeleteFunc(m.timers, func(o *manualTimer) bool { return o == next })
		m.mu.Unlock()
		next.fn()
		m.RunPending()
	}
}

func (m *Manual) nextDue(limit time.Duration) *manualTimer {
	var best *manualTimer
	for _, t := range m.timers {
		if t.at > limit {
			continue
		}
		if best == nil || t.at < best.at || (t.at == best.at && t.seq < best.seq) {
			best = t
		}
	}
	return best
}

// Now returns the virtual time.
func (m *Manual) Now() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Pending returns the number of scheduled timers.
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.timers)
}

// Stopped returns how many timers were canceled before running.
func (m *Manual) Stopped() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stopped
}
