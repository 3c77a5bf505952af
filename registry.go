package gauge

import (
	"cmp"
	"slices"
)

// MarkerID is a stable handle to a registered marker. A handle becomes
// invalid when its marker is removed or the registry is reset; the slot it
// pointed to may then be reused under a new generation.
type MarkerID struct {
	index      uint32
	generation uint32
}

// IsZero reports whether id is the zero handle, which never refers to a
// marker.
func (id MarkerID) IsZero() bool {
	return id.generation == 0
}

// markerEntry is one slot of the registry arena.
type markerEntry struct {
	marker     *Marker
	shape      MarkerShape
	generation uint32
	live       bool
	seq        uint64
}

// MarkerRegistry maps markers to their shapes. Markers are kept in
// insertion order; slots of removed markers are recycled.
type MarkerRegistry struct {
	entries []markerEntry
	free    []uint32
	seq     uint64
	count   int
}

// Add registers m and returns its handle.
func (r *MarkerRegistry) Add(m *Marker) MarkerID {
	r.seq++
	var idx uint32
	if n := len(r.free); n > 0 {
		idx = r.free[n-1]
		r.free = r.free[:n-1]
	} else {
		idx = uint32(len(r.entries))
		r.entries = append(r.entries, markerEntry{})
	}
	e := &r.entries[idx]
	e.generation++
	e.marker = m
	e.shape = MarkerShape{Type: m.Type}
	e.live = true
	e.seq = r.seq
	r.count++
	return MarkerID{index: idx, generation: e.generation}
}

// Remove unregisters the marker behind id. It reports false for stale or
// unknown handles.
func (r *MarkerRegistry) Remove(id MarkerID) bool {
	e := r.entry(id)
	if e == nil {
		return false
	}
	e.live = false
	e.marker = nil
	e.shape = MarkerShape{}
	r.free = append(r.free, id.index)
	r.count--
	return true
}

// Get returns the marker behind id.
func (r *MarkerRegistry) Get(id MarkerID) (*Marker, bool) {
	e := r.entry(id)
	if e == nil {
		return nil, false
	}
	return e.marker, true
}

// Shape returns the current shape of the marker behind id.
func (r *MarkerRegistry) Shape(id MarkerID) (MarkerShape, bool) {
	e := r.entry(id)
	if e == nil {
		return MarkerShape{}, false
	}
	return e.shape, true
}

// Len returns the number of registered markers.
func (r *MarkerRegistry) Len() int {
	return r.count
}

// Reset removes every marker and registers markers in order. Handles issued
// before the call become stale.
func (r *MarkerRegistry) Reset(markers []*Marker) []MarkerID {
	for i := range r.entries {
		if r.entries[i].live {
			r.Remove(MarkerID{index: uint32(i), generation: r.entries[i].generation})
		}
	}
	ids := make([]MarkerID, 0, len(markers))
	for _, m := range markers {
		if m == nil {
			continue
		}
		ids = append(ids, r.Add(m))
	}
	return ids
}

// Each calls fn for every marker in insertion order until fn returns false.
func (r *MarkerRegistry) Each(fn func(id MarkerID, m *Marker, shape MarkerShape) bool) {
	for _, idx := range r.order() {
		e := &r.entries[idx]
		if !fn(MarkerID{index: idx, generation: e.generation}, e.marker, e.shape) {
			return
		}
	}
}

// setShape replaces the shape of the marker behind id.
func (r *MarkerRegistry) setShape(id MarkerID, shape MarkerShape) {
	if e := r.entry(id); e != nil {
		e.shape = shape
	}
}

// reshape replaces the shape of every marker with build's result. The
// shape kind is fixed when the marker is added.
func (r *MarkerRegistry) reshape(build func(m *Marker, kind MarkerType) MarkerShape) {
	for i := range r.entries {
		e := &r.entries[i]
		if e.live {
			e.shape = build(e.marker, e.shape.Type)
		}
	}
}

// order returns the indexes of live entries sorted by insertion.
func (r *MarkerRegistry) order() []uint32 {
	idx := make([]uint32, 0, r.count)
	for i := range r.entries {
		if r.entries[i].live {
			idx = append(idx, uint32(i))
		}
	}
	// Recycled slots break index order.
	slices.SortFunc(idx, func(a, b uint32) int {
		return cmp.Compare(r.entries[a].seq, r.entries[b].seq)
	})
	return idx
}

func (r *MarkerRegistry) entry(id MarkerID) *markerEntry {
	if id.IsZero() || int(id.index) >= len(r.entries) {
		return nil
	}
	e := &r.entries[id.index]
	if !e.live || e.generation != id.generation {
		return nil
	}
	return e
}
