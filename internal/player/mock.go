// internal/player/mock.go
package player

import "time"

// Mock is a test double for Interface.
type Mock struct {
	state    State
	position time.Duration
	duration time.Duration
	loadErr  error
	loads    int
	plays    int
	closes   int
}

// NewMock creates a new mock player for testing.
func NewMock() *Mock {
	return &Mock{state: Stopped}
}

func (m *Mock) Load() error {
	if m.state.IsActive() {
		return nil
	}
	m.loads++
	if m.loadErr != nil {
		return m.loadErr
	}
	m.state = Paused
	return nil
}

func (m *Mock) Play() error {
	if err := m.Load(); err != nil {
		return err
	}
	if m.state != Playing {
		m.plays++
	}
	m.state = Playing
	return nil
}

func (m *Mock) Pause() {
	if m.state == Playing {
		m.state = Paused
	}
}

func (m *Mock) Close() {
	if m.state.IsActive() {
		m.closes++
	}
	m.state = Stopped
	m.position = 0
}

func (m *Mock) State() State { return m.state }

func (m *Mock) Position() time.Duration { return m.position }

func (m *Mock) Duration() time.Duration { return m.duration }

// Test helpers

func (m *Mock) SetLoadError(err error) { m.loadErr = err }

func (m *Mock) SetDuration(d time.Duration) { m.duration = d }

func (m *Mock) SetPosition(d time.Duration) { m.position = d }

func (m *Mock) Loads() int { return m.loads }

func (m *Mock) Plays() int { return m.plays }

func (m *Mock) Closes() int { return m.closes }
