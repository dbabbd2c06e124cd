package player

import (
	"errors"
	"testing"
)

func TestState_String(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{Stopped, "Stopped"},
		{Playing, "Playing"},
		{Paused, "Paused"},
		{State(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.state.String(); got != tt.want {
				t.Errorf("State.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestState_IsActive(t *testing.T) {
	tests := []struct {
		state State
		want  bool
	}{
		{Stopped, false},
		{Playing, true},
		{Paused, true},
	}

	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			if got := tt.state.IsActive(); got != tt.want {
				t.Errorf("State.IsActive() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestState_CanPause(t *testing.T) {
	tests := []struct {
		state State
		want  bool
	}{
		{Stopped, false},
		{Playing, true},
		{Paused, false},
	}

	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			if got := tt.state.CanPause(); got != tt.want {
				t.Errorf("State.CanPause() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestState_CanResume(t *testing.T) {
	tests := []struct {
		state State
		want  bool
	}{
		{Stopped, false},
		{Playing, false},
		{Paused, true},
	}

	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			if got := tt.state.CanResume(); got != tt.want {
				t.Errorf("State.CanResume() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestMock_StateTransitions validates the state machine using the Mock player.
func TestMock_StateTransitions(t *testing.T) {
	t.Run("Stopped to Paused via Load", func(t *testing.T) {
		m := NewMock()
		if m.State() != Stopped {
			t.Fatalf("initial state = %v, want Stopped", m.State())
		}

		_ = m.Load()

		if m.State() != Paused {
			t.Errorf("state after Load = %v, want Paused", m.State())
		}
	})

	t.Run("Stopped to Playing via Play", func(t *testing.T) {
		m := NewMock()

		_ = m.Play()

		if m.State() != Playing {
			t.Errorf("state after Play = %v, want Playing", m.State())
		}
		if m.Loads() != 1 {
			t.Errorf("Loads() = %d, want 1", m.Loads())
		}
	})

	t.Run("Playing to Paused via Pause", func(t *testing.T) {
		m := NewMock()
		_ = m.Play()

		m.Pause()

		if m.State() != Paused {
			t.Errorf("state after Pause = %v, want Paused", m.State())
		}
	})

	t.Run("Paused to Playing via Play", func(t *testing.T) {
		m := NewMock()
		_ = m.Play()
		m.Pause()

		_ = m.Play()

		if m.State() != Playing {
			t.Errorf("state after Play = %v, want Playing", m.State())
		}
		if m.Loads() != 1 {
			t.Errorf("Loads() = %d, want 1 (resume must not reload)", m.Loads())
		}
	})

	t.Run("Playing to Stopped via Close", func(t *testing.T) {
		m := NewMock()
		_ = m.Play()

		m.Close()

		if m.State() != Stopped {
			t.Errorf("state after Close = %v, want Stopped", m.State())
		}
	})
}

func TestMock_NoOpTransitions(t *testing.T) {
	t.Run("Close when Stopped is no-op", func(t *testing.T) {
		m := NewMock()

		m.Close()

		if m.State() != Stopped {
			t.Errorf("state = %v, want Stopped", m.State())
		}
		if m.Closes() != 0 {
			t.Errorf("Closes() = %d, want 0", m.Closes())
		}
	})

	t.Run("Pause when Stopped is no-op", func(t *testing.T) {
		m := NewMock()

		m.Pause()

		if m.State() != Stopped {
			t.Errorf("state = %v, want Stopped", m.State())
		}
	})

	t.Run("Play when Playing is no-op", func(t *testing.T) {
		m := NewMock()
		_ = m.Play()

		_ = m.Play()

		if m.Plays() != 1 {
			t.Errorf("Plays() = %d, want 1", m.Plays())
		}
	})

	t.Run("Load error keeps Stopped", func(t *testing.T) {
		m := NewMock()
		m.SetLoadError(errors.New("boom"))

		if err := m.Play(); err == nil {
			t.Error("Play() should surface the load error")
		}
		if m.State() != Stopped {
			t.Errorf("state = %v, want Stopped", m.State())
		}
	})
}
