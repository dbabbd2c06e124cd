package player

import "time"

// Clock is a silent player that advances in wall time. It stands in for
// clips that have no audio file, so they still show progress.
type Clock struct {
	duration time.Duration
	now      func() time.Time

	state   State
	started time.Time
	elapsed time.Duration
}

// NewClock creates a silent player for a clip of length d.
func NewClock(d time.Duration) *Clock {
	return &Clock{duration: d, now: time.Now, state: Stopped}
}

// Load implements Interface.
func (c *Clock) Load() error {
	if c.state == Stopped {
		c.state = Paused
		c.elapsed = 0
	}
	return nil
}

// Play implements Interface.
func (c *Clock) Play() error {
	_ = c.Load()
	if c.finished() {
		c.elapsed = 0
	} else if c.state == Playing {
		return nil
	}
	c.started = c.now()
	c.state = Playing
	return nil
}

// Pause implements Interface.
func (c *Clock) Pause() {
	if c.state != Playing {
		return
	}
	c.elapsed = c.Position()
	c.state = Paused
}

// Close implements Interface.
func (c *Clock) Close() {
	c.state = Stopped
	c.elapsed = 0
}

// State implements Interface. A finished clip reports Paused.
func (c *Clock) State() State {
	if c.state == Playing && c.finished() {
		return Paused
	}
	return c.state
}

// Position implements Interface.
func (c *Clock) Position() time.Duration {
	pos := c.elapsed
	if c.state == Playing {
		pos += c.now().Sub(c.started)
	}
	if c.duration > 0 {
		pos = min(pos, c.duration)
	}
	return pos
}

// Duration implements Interface.
func (c *Clock) Duration() time.Duration {
	return c.duration
}

func (c *Clock) finished() bool {
	return c.duration > 0 && c.Position() >= c.duration
}
