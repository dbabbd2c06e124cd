// Package sched posts delayed callbacks onto the single UI event loop.
//
// Callbacks never run concurrently with other loop work: the bubbletea
// implementation delivers a FireMsg through the program and runs the callback
// from Update, so state touched by callbacks needs no locking.
package sched

import "time"

// Task is a handle to a scheduled callback.
type Task interface {
	// Cancel prevents the callback from running. It reports whether the
	// task was still pending.
	Cancel() bool
}

// Scheduler schedules callbacks on the event loop.
type Scheduler interface {
	After(d time.Duration, fn func()) Task
}

// Cancel cancels t if it is non-nil and reports whether it was pending.
func Cancel(t Task) bool {
	if t == nil {
		return false
	}
	return t.Cancel()
}
