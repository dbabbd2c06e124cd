// Package snap resolves which slot of a snapping strip is centered.
package snap

import (
	"math"

	"github.com/llehouerou/reel/internal/item"
)

// Resolver returns the index currently centered in the viewport.
type Resolver interface {
	Resolve() item.Index
}

// ResolverFunc adapts a function to Resolver.
type ResolverFunc func() item.Index

// Resolve implements Resolver.
func (f ResolverFunc) Resolve() item.Index { return f() }

// Span is a one-dimensional extent along the scroll axis.
type Span struct {
	Start  float64
	Extent float64
}

// End returns the exclusive end of the span.
func (s Span) End() float64 { return s.Start + s.Extent }

// Center returns the midpoint of the span.
func (s Span) Center() float64 { return s.Start + s.Extent/2 }

// Intersects reports whether s and o overlap by a positive length.
func (s Span) Intersects(o Span) bool {
	return s.Start < o.End() && o.Start < s.End()
}

// Slot is a laid-out list item in viewport coordinates.
type Slot struct {
	Index item.Index
	Span  Span
}

// Layout is a snapshot of the strip geometry.
type Layout struct {
	Viewport Span
	Slots    []Slot
}

// Center returns the index of the slot whose center is closest to the
// viewport center. Only slots intersecting the viewport qualify; ties go to
// the lower index. Returns item.NoIndex when nothing qualifies.
func Center(l Layout) item.Index {
	best := item.NoIndex
	bestDist := math.Inf(1)
	mid := l.Viewport.Center()
	for _, s := range l.Slots {
		if !s.Index.Valid() || s.Span.Extent <= 0 || !s.Span.Intersects(l.Viewport) {
			continue
		}
		d := math.Abs(s.Span.Center() - mid)
		if d < bestDist || (d == bestDist && s.Index < best) {
			best = s.Index
			bestDist = d
		}
	}
	return best
}

// VisibleFraction returns how much of slot lies inside viewport, in [0, 1].
func VisibleFraction(slot, viewport Span) float64 {
	if slot.Extent <= 0 {
		return 0
	}
	lo := max(slot.Start, viewport.Start)
	hi := min(slot.End(), viewport.End())
	if hi <= lo {
		return 0
	}
	return min((hi-lo)/slot.Extent, 1)
}
