// internal/app/commands.go
package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/reel/internal/notify"
	"github.com/llehouerou/reel/internal/stderr"
)

const (
	refreshInterval = 500 * time.Millisecond
	statusTimeout   = 4 * time.Second
)

// RefreshTickCmd returns a command that sends RefreshMsg after refreshInterval.
func RefreshTickCmd() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
		return RefreshMsg(t)
	})
}

func clearStatusCmd(gen int) tea.Cmd {
	return tea.Tick(statusTimeout, func(_ time.Time) tea.Msg {
		return clearStatusMsg{gen: gen}
	})
}

// WatchEvents returns a command that waits for the next coordinator event.
// Every handler re-arms it, so exactly one watcher is pending at a time.
func (m Model) WatchEvents() tea.Cmd {
	sub := m.sub
	if sub == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case e := <-sub.ActiveChanged:
			return ActiveChangedMsg(e)
		case e := <-sub.FullscreenChanged:
			return FullscreenChangedMsg(e)
		case e := <-sub.LifecycleChanged:
			return LifecycleChangedMsg(e)
		case <-sub.Done:
			return EventsClosedMsg{}
		}
	}
}

// waitForChannel creates a command that waits for a value from a channel and converts it to a message.
// onResult receives the value and a boolean indicating if the channel is still open (false means channel closed).
func waitForChannel[T any](ch <-chan T, onResult func(T, bool) tea.Msg) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		result, ok := <-ch
		return onResult(result, ok)
	}
}

// WatchStderr returns a command that waits for stderr output from the audio backend.
func WatchStderr() tea.Cmd {
	return waitForChannel[string](stderr.Messages, func(line string, ok bool) tea.Msg {
		if !ok {
			return nil // Channel closed
		}
		return StderrMsg{Line: line}
	})
}

// notifyCmd shows n off the event loop.
func notifyCmd(n notify.Notifier, notif notify.Notification) tea.Cmd {
	return func() tea.Msg {
		id, err := n.Notify(notif)
		return notifiedMsg{id: id, err: err}
	}
}
