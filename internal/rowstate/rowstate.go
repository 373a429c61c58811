// Package rowstate keeps transient per-row UI state keyed by task ID.
//
// Keying by position would let a row inherit the state of whatever row used
// to sit at its index after a removal. Keying by ID does not.
package rowstate

// Map holds one value per task ID.
type Map[V any] struct {
	m map[int]V
}

// New creates an empty Map.
func New[V any]() *Map[V] {
	return &Map[V]{m: make(map[int]V)}
}

// Get returns the value stored for id, or the zero value.
func (r *Map[V]) Get(id int) V {
	return r.m[id]
}

// Lookup returns the value stored for id and whether one was set.
func (r *Map[V]) Lookup(id int) (V, bool) {
	v, ok := r.m[id]
	return v, ok
}

// Set stores v for id.
func (r *Map[V]) Set(id int, v V) {
	r.m[id] = v
}

// Delete drops any value stored for id.
func (r *Map[V]) Delete(id int) {
	delete(r.m, id)
}

// Len returns the number of stored entries.
func (r *Map[V]) Len() int { return len(r.m) }

// Prune drops every entry whose id is not in live.
func (r *Map[V]) Prune(live []int) {
	keep := make(map[int]struct{}, len(live))
	for _, id := range live {
		keep[id] = struct{}{}
	}
	for id := range r.m {
		if _, ok := keep[id]; !ok {
			delete(r.m, id)
		}
	}
}

// Toggle flips a boolean entry and returns the new value.
func Toggle(r *Map[bool], id int) bool {
	v := !r.Get(id)
	if v {
		r.Set(id, true)
	} else {
		r.Delete(id)
	}
	return v
}
