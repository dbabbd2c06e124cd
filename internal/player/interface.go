// internal/player/interface.go
package player

import "time"

// Interface defines the clip player contract for dependency injection and testing.
// Players are driven from the UI event loop only.
type Interface interface {
	// Load allocates decoding resources. Loading twice is a no-op.
	Load() error
	// Play starts or resumes playback, loading first if needed.
	// A clip that reached its end restarts from the beginning.
	Play() error
	Pause()
	// Close releases every resource; the player can be loaded again.
	Close()
	State() State
	Position() time.Duration
	Duration() time.Duration
}

// Verify implementations satisfy Interface at compile time.
var (
	_ Interface = (*Audio)(nil)
	_ Interface = (*Clock)(nil)
	_ Interface = (*Mock)(nil)
)
