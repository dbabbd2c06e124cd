// Package mpris exposes the carousel to desktop media controls over D-Bus.
//
// D-Bus calls arrive on their own goroutine. They never touch playback
// state directly: commands are posted into the UI program as messages, and
// queries read a snapshot the UI publishes after every change.
package mpris

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Command is a media control request from the desktop.
type Command int

const (
	CommandPlay Command = iota
	CommandPause
	CommandPlayPause
	CommandStop
	CommandNext
	CommandPrevious
)

// String returns the command name.
func (c Command) String() string {
	switch c {
	case CommandPlay:
		return "play"
	case CommandPause:
		return "pause"
	case CommandPlayPause:
		return "play_pause"
	case CommandStop:
		return "stop"
	case CommandNext:
		return "next"
	case CommandPrevious:
		return "previous"
	default:
		return "unknown"
	}
}

// CommandMsg carries a Command into the UI program.
type CommandMsg struct {
	Command Command
}

// Sender posts messages into the UI program. *tea.Program implements it.
type Sender interface {
	Send(msg tea.Msg)
}

// Status is the playback status shown to the desktop.
type Status int

const (
	StatusStopped Status = iota
	StatusPlaying
	StatusPaused
)

// Snapshot is the state the desktop can query.
type Snapshot struct {
	Status   Status
	Index    int // centered clip, -1 if none
	Count    int
	Title    string
	Artist   string
	Path     string
	Position time.Duration
	Length   time.Duration
}

// bridge is the thread-safe meeting point between D-Bus and the UI.
type bridge struct {
	sender Sender

	mu   sync.RWMutex
	snap Snapshot
}

func newBridge(sender Sender) *bridge {
	return &bridge{sender: sender, snap: Snapshot{Index: -1}}
}

func (b *bridge) post(c Command) {
	if b.sender != nil {
		b.sender.Send(CommandMsg{Command: c})
	}
}

func (b *bridge) publish(s Snapshot) {
	b.mu.Lock()
	b.snap = s
	b.mu.Unlock()
}

func (b *bridge) snapshot() Snapshot {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.snap
}
