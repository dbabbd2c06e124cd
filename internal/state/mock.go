// internal/state/mock.go
package state

import "time"

// Mock is a test double for Manager.
type Mock struct {
	carousel *Carousel
	saves    []Carousel
	stats    map[string]ClipStats
	getErr   error
	closed   bool
}

// NewMock creates a new mock state manager for testing.
func NewMock() *Mock {
	return &Mock{stats: make(map[string]ClipStats)}
}

func (m *Mock) GetCarousel() (*Carousel, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.carousel, nil
}

func (m *Mock) SaveCarousel(c Carousel) {
	m.saves = append(m.saves, c)
	m.carousel = &c
}

func (m *Mock) RecordPlay(key string, at time.Time) error {
	s := m.stats[key]
	s.Plays++
	s.LastPlayed = at
	m.stats[key] = s
	return nil
}

func (m *Mock) GetStats(key string) (ClipStats, error) {
	return m.stats[key], nil
}

func (m *Mock) Prune(keep []string) (int, error) {
	kept := make(map[string]ClipStats, len(keep))
	for _, k := range keep {
		if s, ok := m.stats[k]; ok {
			kept[k] = s
		}
	}
	removed := len(m.stats) - len(kept)
	m.stats = kept
	return removed, nil
}

func (m *Mock) Close() error {
	m.closed = true
	return nil
}

// Test helpers

func (m *Mock) SetCarousel(c *Carousel) { m.carousel = c }

func (m *Mock) SetGetError(err error) { m.getErr = err }

func (m *Mock) Saves() []Carousel { return m.saves }

func (m *Mock) IsClosed() bool { return m.closed }
