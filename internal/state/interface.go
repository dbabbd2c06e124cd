// internal/state/interface.go
package state

import "time"

// Interface defines the state manager contract for dependency injection and testing.
type Interface interface {
	GetCarousel() (*Carousel, error)
	SaveCarousel(c Carousel)
	RecordPlay(key string, at time.Time) error
	GetStats(key string) (ClipStats, error)
	Prune(keep []string) (int, error)
	Close() error
}

// Verify implementations satisfy Interface at compile time.
var (
	_ Interface = (*Manager)(nil)
	_ Interface = (*Mock)(nil)
)
