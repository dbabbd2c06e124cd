package item

import (
	"slices"

	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Registry binds materialized rows to their indices.
// It is confined to the event loop like the rest of the core.
type Registry struct {
	bound map[Index]Controller
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{bound: make(map[Index]Controller)}
}

// Bind attaches c to idx. A controller previously bound there is released.
func (r *Registry) Bind(idx Index, c Controller) {
	if prev, ok := r.bound[idx]; ok && !Same(prev, c) {
		Release(prev)
	}
	r.bound[idx] = c
}

// Unbind detaches and releases the controller at idx, if any.
func (r *Registry) Unbind(idx Index) {
	c, ok := r.bound[idx]
	if !ok {
		return
	}
	delete(r.bound, idx)
	Release(c)
}

// Bound reports whether a controller is attached at idx.
func (r *Registry) Bound(idx Index) bool {
	_, ok := r.bound[idx]
	return ok
}

// Controller implements Lookup.
func (r *Registry) Controller(idx Index) mo.Option[Controller] {
	c, ok := r.bound[idx]
	if !ok {
		return mo.None[Controller]()
	}
	return mo.Some(c)
}

// Indices returns the bound indices in ascending order.
func (r *Registry) Indices() []Index {
	keys := lo.Keys(r.bound)
	slices.Sort(keys)
	return keys
}

// Len returns the number of bound rows.
func (r *Registry) Len() int {
	return len(r.bound)
}

// Clear unbinds and releases every row.
func (r *Registry) Clear() {
	for _, idx := range r.Indices() {
		r.Unbind(idx)
	}
}

// Verify Registry implements Lookup at compile time.
var _ Lookup = (*Registry)(nil)
