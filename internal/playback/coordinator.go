// internal/playback/coordinator.go
package playback

import (
	"github.com/sirupsen/logrus"

	"github.com/llehouerou/reel/internal/item"
	"github.com/llehouerou/reel/internal/log"
)

// DefaultVisibilityThreshold keeps an item playing only while fully in view.
const DefaultVisibilityThreshold = 1.0

// Visibility reports how much of an item is on screen, in [0, 1].
type Visibility interface {
	VisibleFraction(idx item.Index) float64
}

// VisibilityFunc adapts a function to Visibility.
type VisibilityFunc func(idx item.Index) float64

// VisibleFraction implements Visibility.
func (f VisibilityFunc) VisibleFraction(idx item.Index) float64 { return f(idx) }

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithVisibility makes IsPauseNeeded report true once the active item's
// visible fraction drops below threshold.
func WithVisibility(v Visibility, threshold float64) Option {
	return func(c *Coordinator) {
		c.visibility = v
		if threshold > 0 && threshold <= 1 {
			c.threshold = threshold
		}
	}
}

// Coordinator owns the single playback session of the carousel: at most one
// index is active at any time.
//
// It is not safe for concurrent use. Every method must be called from the
// event loop; subscribers observe changes through Subscribe.
type Coordinator struct {
	lookup     item.Lookup
	visibility Visibility
	threshold  float64

	active         item.Index
	resume         item.Index // restarted on the next OnResume
	suspended      item.Index // active when the host last paused
	resuming       bool
	fullscreen     bool
	pauseRequested bool
	lifecycle      Lifecycle
	prepared       map[item.Index]item.Controller

	subs []*Subscription
	log  *logrus.Entry
}

// New creates a coordinator acting on the controllers found through lookup.
func New(lookup item.Lookup, opts ...Option) *Coordinator {
	c := &Coordinator{
		lookup:    lookup,
		threshold: DefaultVisibilityThreshold,
		active:    item.NoIndex,
		resume:    item.NoIndex,
		suspended: item.NoIndex,
		lifecycle: LifecycleCreated,
		prepared:  make(map[item.Index]item.Controller),
		log:       log.For("playback"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Active returns the index currently playing, or item.NoIndex.
func (c *Coordinator) Active() item.Index { return c.active }

// Fullscreen reports whether fullscreen mode is on.
func (c *Coordinator) Fullscreen() bool { return c.fullscreen }

// Lifecycle returns the host lifecycle state last reported.
func (c *Coordinator) Lifecycle() Lifecycle { return c.lifecycle }

// Init prepares the item at idx for playback. Repeated calls for the same
// bound controller do nothing.
func (c *Coordinator) Init(idx item.Index) {
	if !c.lifecycle.Alive() || !idx.Valid() {
		return
	}
	ctrl, ok := c.lookup.Controller(idx).Get()
	if !ok {
		c.log.WithField("index", idx).Debug("init skipped: row not bound")
		return
	}
	c.prepare(idx, ctrl)
}

func (c *Coordinator) prepare(idx item.Index, ctrl item.Controller) {
	if item.Same(c.prepared[idx], ctrl) {
		return
	}
	c.forgetUnbound()
	c.prepared[idx] = ctrl
	ctrl.Init()
}

// forgetUnbound drops prepared controllers that are no longer bound at their
// index.
func (c *Coordinator) forgetUnbound() {
	for idx, ctrl := range c.prepared {
		if bound, ok := c.lookup.Controller(idx).Get(); !ok || !item.Same(bound, ctrl) {
			delete(c.prepared, idx)
		}
	}
}

// Play makes idx the active item, pausing the previous one first.
// Playing the active index again is a no-op. While the host is paused or
// stopped the request is kept and honored by OnResume.
func (c *Coordinator) Play(idx item.Index) {
	if !c.lifecycle.Alive() || !idx.Valid() || idx == c.active {
		return
	}
	ctrl, ok := c.lookup.Controller(idx).Get()
	if !ok {
		c.log.WithField("index", idx).Debug("play skipped: row not bound")
		return
	}
	if !c.lifecycle.CanPlay() {
		c.resume = idx
		return
	}

	prev := c.active
	c.stop()
	c.prepare(idx, ctrl)
	c.active = idx
	ctrl.Play()

	c.log.WithFields(logrus.Fields{"from": prev, "to": idx}).Info("playing")
	c.emitActive(ActiveChange{
		Previous: prev,
		Current:  idx,
		Resumed:  c.resuming && idx == c.suspended,
	})
}

// Pause stops the active item. Requests for any other index are stale and
// ignored.
func (c *Coordinator) Pause(idx item.Index) {
	if !idx.Valid() || idx != c.active {
		return
	}
	c.stop()
	c.log.WithField("index", idx).Info("paused")
	c.emitActive(ActiveChange{Previous: idx, Current: item.NoIndex})
}

// stop pauses the active controller, if bound, and clears the session.
func (c *Coordinator) stop() {
	if !c.active.Valid() {
		return
	}
	if ctrl, ok := c.lookup.Controller(c.active).Get(); ok {
		ctrl.Pause()
	}
	c.active = item.NoIndex
	c.pauseRequested = false
}

// RequestPause asks for the active item to stop at the next IsPauseNeeded
// poll.
func (c *Coordinator) RequestPause() {
	if c.active.Valid() {
		c.pauseRequested = true
	}
}

// IsPauseNeeded reports whether the active item may no longer keep playing:
// a pause was requested or it is less visible than the threshold.
func (c *Coordinator) IsPauseNeeded() bool {
	if !c.active.Valid() {
		return false
	}
	if c.pauseRequested {
		return true
	}
	if c.visibility == nil {
		return false
	}
	return c.visibility.VisibleFraction(c.active) < c.threshold
}

// SetFullscreenMode records the display mode. It never starts or stops
// playback.
func (c *Coordinator) SetFullscreenMode(on bool) {
	if !c.lifecycle.Alive() || c.fullscreen == on {
		return
	}
	c.fullscreen = on
	for _, sub := range c.subs {
		sub.sendFullscreen(FullscreenChange{Fullscreen: on})
	}
}

// OnStart marks the host visible.
func (c *Coordinator) OnStart() {
	c.setLifecycle(LifecycleStarted)
}

// OnResume marks the host in the foreground and restarts the item that was
// playing when it left.
func (c *Coordinator) OnResume() {
	if !c.setLifecycle(LifecycleResumed) {
		return
	}
	if idx := c.resume; idx.Valid() {
		c.resume = item.NoIndex
		c.resuming = true
		c.Play(idx)
		c.resuming = false
	}
	c.suspended = item.NoIndex
}

// OnPause pauses the active item and remembers it for OnResume.
func (c *Coordinator) OnPause() {
	if c.setLifecycle(LifecyclePaused) {
		c.suspend()
	}
}

// OnStop behaves like OnPause for a host that is no longer visible.
func (c *Coordinator) OnStop() {
	if c.setLifecycle(LifecycleStopped) {
		c.suspend()
	}
}

func (c *Coordinator) suspend() {
	if idx := c.active; idx.Valid() {
		c.resume = idx
		c.suspended = idx
		c.Pause(idx)
	}
}

// OnBackPressed leaves fullscreen and reports the press consumed. Outside
// fullscreen it pauses the active item and reports false so the host can
// close.
func (c *Coordinator) OnBackPressed() bool {
	if !c.lifecycle.Alive() {
		return false
	}
	if c.fullscreen {
		c.SetFullscreenMode(false)
		return true
	}
	c.Pause(c.active)
	return false
}

// OnDestroy releases the session unconditionally. Every later call is a
// no-op.
func (c *Coordinator) OnDestroy() {
	if !c.lifecycle.Alive() {
		return
	}
	c.Pause(c.active)
	for idx, ctrl := range c.prepared {
		if bound, ok := c.lookup.Controller(idx).Get(); ok && item.Same(bound, ctrl) {
			item.Release(ctrl)
		}
	}
	clear(c.prepared)
	c.resume = item.NoIndex
	c.suspended = item.NoIndex
	c.setLifecycle(LifecycleDestroyed)

	for _, sub := range c.subs {
		sub.close()
	}
	c.subs = nil
}

// setLifecycle applies a transition and reports whether the host is alive.
func (c *Coordinator) setLifecycle(next Lifecycle) bool {
	if !c.lifecycle.Alive() {
		return false
	}
	prev := c.lifecycle
	if prev == next {
		return true
	}
	c.lifecycle = next
	c.log.WithFields(logrus.Fields{"from": prev, "to": next}).Debug("lifecycle")
	for _, sub := range c.subs {
		sub.sendLifecycle(LifecycleChange{Previous: prev, Current: next})
	}
	return true
}

// Subscribe creates a new event subscription. After OnDestroy the returned
// subscription is already done.
func (c *Coordinator) Subscribe() *Subscription {
	sub := newSubscription()
	if !c.lifecycle.Alive() {
		sub.close()
		return sub
	}
	c.subs = append(c.subs, sub)
	return sub
}

func (c *Coordinator) emitActive(e ActiveChange) {
	for _, sub := range c.subs {
		sub.sendActive(e)
	}
}
