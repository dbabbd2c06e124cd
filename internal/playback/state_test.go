// internal/playback/state_test.go
package playback

import "testing"

func TestLifecycle_String(t *testing.T) {
	tests := []struct {
		state Lifecycle
		want  string
	}{
		{LifecycleCreated, "Created"},
		{LifecycleStarted, "Started"},
		{LifecycleResumed, "Resumed"},
		{LifecyclePaused, "Paused"},
		{LifecycleStopped, "Stopped"},
		{LifecycleDestroyed, "Destroyed"},
		{Lifecycle(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.state, got, tt.want)
		}
	}
}

func TestLifecycle_CanPlay(t *testing.T) {
	tests := []struct {
		state Lifecycle
		want  bool
	}{
		{LifecycleCreated, true},
		{LifecycleStarted, true},
		{LifecycleResumed, true},
		{LifecyclePaused, false},
		{LifecycleStopped, false},
		{LifecycleDestroyed, false},
	}
	for _, tt := range tests {
		if got := tt.state.CanPlay(); got != tt.want {
			t.Errorf("%v.CanPlay() = %v, want %v", tt.state, got, tt.want)
		}
	}
}
