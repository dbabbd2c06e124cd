package sched

import (
	"slices"
	"time"
)

// Manual is a virtual-clock scheduler for tests. Time only moves on Advance.
type Manual struct {
	now   time.Duration
	seq   int
	tasks []*manualTask
}

type manualTask struct {
	m   *Manual
	at  time.Duration
	seq int
	fn  func()
}

// NewManual creates a scheduler at virtual time zero.
func NewManual() *Manual {
	return &Manual{}
}

// After implements Scheduler.
func (m *Manual) After(d time.Duration, fn func()) Task {
	m.seq++
	t := &manualTask{m: m, at: m.now + d, seq: m.seq, fn: fn}
	m.tasks = append(m.tasks, t)
	return t
}

// Cancel implements Task.
func (t *manualTask) Cancel() bool {
	i := slices.Index(t.m.tasks, t)
	if i < 0 {
		return false
	}
	t.m.tasks = slices.Delete(t.m.tasks, i, i+1)
	return true
}

// Now returns the virtual time elapsed since creation.
func (m *Manual) Now() time.Duration { return m.now }

// Pending returns the number of scheduled, not yet fired tasks.
func (m *Manual) Pending() int { return len(m.tasks) }

// Advance moves the clock forward by d, running due tasks in deadline order.
// Tasks scheduled by callbacks run too if they fall due within the window.
func (m *Manual) Advance(d time.Duration) {
	end := m.now + d
	for {
		next := m.nextDue(end)
		if next == nil {
			break
		}
		m.now = next.at
		next.Cancel()
		next.fn()
	}
	m.now = end
}

func (m *Manual) nextDue(end time.Duration) *manualTask {
	var next *manualTask
	for _, t := range m.tasks {
		if t.at > end {
			continue
		}
		if next == nil || t.at < next.at || (t.at == next.at && t.seq < next.seq) {
			next = t
		}
	}
	return next
}

// Verify Manual implements Scheduler at compile time.
var _ Scheduler = (*Manual)(nil)
