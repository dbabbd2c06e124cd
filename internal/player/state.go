// internal/player/state.go
package player

// State represents the clip player state machine.
//
//	┌──────────┐      load       ┌──────────┐
//	│  Stopped │ ───────────────▶│  Paused  │
//	└──────────┘                 └──────────┘
//	     ▲                         │      ▲
//	     │ close              play │      │ pause
//	     │                         ▼      │
//	     │                       ┌──────────┐
//	     └───────────────────────│  Playing │
//	                  close      └──────────┘
//
// Valid transitions:
//   - Stopped → Paused  (via Load: resources allocated, position 0)
//   - Stopped → Playing (via Play: loads first)
//   - Paused  → Playing (via Play)
//   - Playing → Paused  (via Pause)
//   - any     → Stopped (via Close)
//
// Invalid/No-op transitions (handled gracefully):
//   - Stopped → Paused via Pause (ignored)
//   - Paused  → Paused  (ignored)
//   - Playing → Playing (ignored)
type State int

const (
	Stopped State = iota
	Playing
	Paused
)

// String returns the state name for debugging.
func (s State) String() string {
	switch s {
	case Stopped:
		return "Stopped"
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// IsActive returns true if a clip is loaded (Playing or Paused).
func (s State) IsActive() bool {
	return s == Playing || s == Paused
}

// CanPause returns true if the state allows pausing.
func (s State) CanPause() bool {
	return s == Playing
}

// CanResume returns true if the state allows resuming.
func (s State) CanResume() bool {
	return s == Paused
}
