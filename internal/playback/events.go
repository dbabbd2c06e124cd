package playback

import "github.com/llehouerou/reel/internal/item"

// ActiveChange is emitted when the active index changes.
//
// Emitted by:
//   - Play: when a different index becomes active
//   - Pause: when the active index is cleared
//   - OnPause/OnStop/OnDestroy: through their pause semantics
//
// NOT emitted by:
//   - Init: preparing an item does not change the session
//   - Play on the already active index
//   - Pause on a stale index
//
// Debounced scroll settles therefore produce at most one event per settle.
//
// Resumed is set when OnResume restarts the item that OnPause or OnStop
// suspended; the host did not pick a new item.
type ActiveChange struct {
	Previous item.Index
	Current  item.Index
	Resumed  bool
}

// FullscreenChange is emitted when fullscreen mode toggles.
type FullscreenChange struct {
	Fullscreen bool
}

// LifecycleChange is emitted on host lifecycle transitions.
type LifecycleChange struct {
	Previous Lifecycle
	Current  Lifecycle
}
