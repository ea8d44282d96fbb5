package owner

import "fmt"

// Shared is a counted handle to a single payload cell. Clone hands out
// another handle to the same cell and bumps the count; Drop gives one
// back. When the last handle drops, the cell's release hook runs exactly
// once. The count is GC-independent: it exists so callers get a
// deterministic release point, not to free Go memory.
//
// The count is not synchronized. A Shared and all its clones must stay on
// one goroutine; use Atomic to share across goroutines.
type Shared[V any] struct {
	c *cell[V]
}

type cell[V any] struct {
	view    V
	refs    int
	release func(V)
}

// NewShared wraps view in a cell with one outstanding handle.
func NewShared[V any](view V) Shared[V] {
	return Shared[V]{c: &cell[V]{view: view, refs: 1}}
}

// NewSharedRelease additionally registers release, called exactly once
// with the view when the last handle drops.
func NewSharedRelease[V any](view V, release func(V)) Shared[V] {
	return Shared[V]{c: &cell[V]{view: view, refs: 1, release: release}}
}

// Deref returns the shared view. Every clone observes the identical view.
func (s Shared[V]) Deref() V {
	return s.c.view
}

// StableDeref declares the stability capability: the payload lives in the
// cell, and handles only point at it.
func (s Shared[V]) StableDeref() {}

// Clone returns a new handle over the same cell. Cloning a handle whose
// cell was already released panics.
func (s Shared[V]) Clone() Shared[V] {
	if s.c == nil || s.c.refs <= 0 {
		panic("owner: clone of released Shared handle")
	}
	s.c.refs++
	return s
}

// Drop gives this handle back. Dropping more handles than were ever
// handed out panics, like a negative sync.WaitGroup counter.
func (s Shared[V]) Drop() {
	if s.c == nil || s.c.refs <= 0 {
		panic("owner: drop of released Shared handle")
	}
	s.c.refs--
	if s.c.refs == 0 && s.c.release != nil {
		s.c.release(s.c.view)
	}
}

// Refs reports the number of outstanding handles.
func (s Shared[V]) Refs() int {
	if s.c == nil {
		return 0
	}
	return s.c.refs
}

func (s Shared[V]) String() string {
	if s.c == nil {
		return "Shared(<nil>)"
	}
	return fmt.Sprintf("Shared(%v, refs=%d)", s.c.view, s.c.refs)
}
