// internal/app/messages.go
package app

import (
	"time"

	"github.com/llehouerou/reel/internal/playback"
)

// ActiveChangedMsg relays a playback.ActiveChange into the event loop.
type ActiveChangedMsg playback.ActiveChange

// FullscreenChangedMsg relays a playback.FullscreenChange.
type FullscreenChangedMsg playback.FullscreenChange

// LifecycleChangedMsg relays a playback.LifecycleChange.
type LifecycleChangedMsg playback.LifecycleChange

// EventsClosedMsg is sent once the coordinator subscription is done.
type EventsClosedMsg struct{}

// StderrMsg carries a line written to stderr by the audio backend.
type StderrMsg struct {
	Line string
}

// NoticeMsg shows a transient message in the status bar.
type NoticeMsg struct {
	Text string
	Err  bool
}

// RefreshMsg triggers a progress refresh of the bound tiles.
type RefreshMsg time.Time

// clearStatusMsg hides the status message it was scheduled for.
type clearStatusMsg struct {
	gen int
}

// notifiedMsg carries the ID of the now playing notification.
type notifiedMsg struct {
	id  uint32
	err error
}
