// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit Action = "quit"
	ActionBack Action = "back"
	ActionHelp Action = "help"

	// Playback actions
	ActionPlayPause  Action = "play_pause"
	ActionFullscreen Action = "fullscreen"

	// Strip navigation
	ActionNext     Action = "next"
	ActionPrev     Action = "prev"
	ActionFirst    Action = "first"
	ActionLast     Action = "last"
	ActionPageNext Action = "page_next"
	ActionPagePrev Action = "page_prev"

	// Lifecycle
	ActionSuspend Action = "suspend"
)
