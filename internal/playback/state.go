// internal/playback/state.go
package playback

// Lifecycle mirrors the host application's foreground state.
//
//	Created ──start──▶ Started ──resume──▶ Resumed
//	                      ▲                  │
//	                      │ start      pause │
//	                      │                  ▼
//	                   Stopped ◀──stop──── Paused
//
// Any state moves to Destroyed on destroy; Destroyed is terminal.
// A new coordinator can play right away. Once the host has paused or
// stopped, requests are remembered and honored on the next resume.
type Lifecycle int

const (
	LifecycleCreated Lifecycle = iota
	LifecycleStarted
	LifecycleResumed
	LifecyclePaused
	LifecycleStopped
	LifecycleDestroyed
)

// String returns the lifecycle name.
func (l Lifecycle) String() string {
	switch l {
	case LifecycleCreated:
		return "Created"
	case LifecycleStarted:
		return "Started"
	case LifecycleResumed:
		return "Resumed"
	case LifecyclePaused:
		return "Paused"
	case LifecycleStopped:
		return "Stopped"
	case LifecycleDestroyed:
		return "Destroyed"
	default:
		return "Unknown"
	}
}

// CanPlay returns true if playback may start in this state.
func (l Lifecycle) CanPlay() bool {
	switch l {
	case LifecycleCreated, LifecycleStarted, LifecycleResumed:
		return true
	default:
		return false
	}
}

// Alive returns true until the host has been destroyed.
func (l Lifecycle) Alive() bool {
	return l != LifecycleDestroyed
}
