// Package item defines the contract between carousel rows and the playback core.
package item

import (
	"reflect"
	"strconv"

	"github.com/samber/mo"
)

// Index is a position in the carousel, or NoIndex.
type Index int

// NoIndex means no slot is centered or active.
const NoIndex Index = -1

// Valid reports whether i refers to a slot.
func (i Index) Valid() bool {
	return i >= 0
}

// String returns the index as a number, or "none".
func (i Index) String() string {
	if !i.Valid() {
		return "none"
	}
	return strconv.Itoa(int(i))
}

// Controller is implemented by every row that can play media.
// All methods are fire-and-forget and must tolerate redundant calls.
type Controller interface {
	Init()
	Play()
	Pause()
	UpdateData()
}

// Releaser is implemented by controllers holding resources that must be
// freed when the row is recycled or the host shuts down.
type Releaser interface {
	Release()
}

// Lookup resolves the controller currently bound to an index.
// Rows that are not materialized yield mo.None.
type Lookup interface {
	Controller(idx Index) mo.Option[Controller]
}

// LookupFunc adapts a function to Lookup.
type LookupFunc func(idx Index) mo.Option[Controller]

// Controller implements Lookup.
func (f LookupFunc) Controller(idx Index) mo.Option[Controller] {
	return f(idx)
}

// Release frees c if it implements Releaser.
func Release(c Controller) {
	if r, ok := c.(Releaser); ok {
		r.Release()
	}
}

// Same reports whether a and b are the same controller instance. Only
// pointer-shaped controllers can be told apart; any other pair reports false
// so callers treat it as a new binding.
func Same(a, b Controller) bool {
	if a == nil || b == nil {
		return false
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}
	switch va.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return va.Pointer() == vb.Pointer()
	default:
		return false
	}
}
