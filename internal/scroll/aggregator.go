// Package scroll turns raw carousel scroll notifications into playback
// decisions. Playback starts only after the strip has settled for a quiet
// period; any motion in between cancels the pending start.
package scroll

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/llehouerou/reel/internal/item"
	"github.com/llehouerou/reel/internal/log"
	"github.com/llehouerou/reel/internal/sched"
	"github.com/llehouerou/reel/internal/snap"
)

// DefaultQuietPeriod is how long the strip must stay idle before the
// centered item starts playing.
const DefaultQuietPeriod = 500 * time.Millisecond

// State is the scroll motion state reported by the host list.
// Drags and flings are both Active.
type State int

const (
	Idle State = iota
	Active
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Active:
		return "Active"
	default:
		return "Unknown"
	}
}

// Coordinator is the playback surface the aggregator drives.
type Coordinator interface {
	Init(idx item.Index)
	Play(idx item.Index)
	Pause(idx item.Index)
	IsPauseNeeded() bool
}

// Aggregator consumes scroll notifications from the event loop.
type Aggregator struct {
	resolver snap.Resolver
	coord    Coordinator
	lookup   item.Lookup
	sched    sched.Scheduler
	quiet    time.Duration

	state   State
	last    item.Index
	pending sched.Task
	closed  bool

	log *logrus.Entry
}

// New creates an aggregator. A non-positive quiet period selects
// DefaultQuietPeriod.
func New(
	resolver snap.Resolver,
	coord Coordinator,
	lookup item.Lookup,
	scheduler sched.Scheduler,
	quiet time.Duration,
) *Aggregator {
	if quiet <= 0 {
		quiet = DefaultQuietPeriod
	}
	return &Aggregator{
		resolver: resolver,
		coord:    coord,
		lookup:   lookup,
		sched:    scheduler,
		quiet:    quiet,
		state:    Idle,
		last:     item.NoIndex,
		log:      log.For("scroll"),
	}
}

// State returns the last reported scroll state.
func (a *Aggregator) State() State { return a.state }

// LastKnown returns the snap index the aggregator last settled on.
func (a *Aggregator) LastKnown() item.Index { return a.last }

// SetLastKnown seeds the settled index, e.g. with a restored position.
func (a *Aggregator) SetLastKnown(idx item.Index) { a.last = idx }

// Pending reports whether a settle is scheduled.
func (a *Aggregator) Pending() bool { return a.pending != nil }

// QuietPeriod returns the settle delay.
func (a *Aggregator) QuietPeriod() time.Duration { return a.quiet }

// OnScrollStateChanged records a motion transition. Every transition drops
// the pending settle; becoming Idle schedules a fresh one.
func (a *Aggregator) OnScrollStateChanged(s State) {
	if a.closed {
		return
	}
	a.state = s
	a.cancel()
	if s == Idle {
		a.schedule()
	}
}

// Settle schedules a settle without a state change, for the initial
// position after startup.
func (a *Aggregator) Settle() {
	if a.closed || a.state != Idle {
		return
	}
	a.cancel()
	a.schedule()
}

// OnScrolled handles a motion delta. Deltas outside Active are ignored.
func (a *Aggregator) OnScrolled(delta float64) {
	if a.closed || a.state != Active {
		return
	}
	if ctrl, ok := a.lookup.Controller(a.last).Get(); ok {
		ctrl.UpdateData()
	}
	if a.coord.IsPauseNeeded() {
		a.log.WithFields(logrus.Fields{"index": a.last, "delta": delta}).Debug("pause needed")
		a.coord.Pause(a.last)
	}
}

// Close cancels the pending settle. No callback runs afterwards.
func (a *Aggregator) Close() {
	a.cancel()
	a.closed = true
}

func (a *Aggregator) schedule() {
	a.pending = a.sched.After(a.quiet, a.fire)
}

func (a *Aggregator) cancel() {
	sched.Cancel(a.pending)
	a.pending = nil
}

func (a *Aggregator) fire() {
	a.pending = nil
	if a.closed || a.state != Idle {
		return
	}
	cur := a.resolver.Resolve()
	if cur != a.last {
		a.log.WithFields(logrus.Fields{"from": a.last, "to": cur}).Debug("snap changed")
		a.last = cur
		a.coord.Init(a.last)
	}
	a.coord.Play(a.last)
}
