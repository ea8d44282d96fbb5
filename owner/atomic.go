package owner

import (
	"fmt"
	"sync/atomic"
)

// Atomic is the concurrency-safe counterpart of Shared: the handle count
// is atomic, so handles may be cloned, dereferenced, and dropped from any
// goroutine. The release hook still runs exactly once, on whichever
// goroutine drops the last handle.
type Atomic[V any] struct {
	c *acell[V]
}

type acell[V any] struct {
	view    V
	release func(V)
	refs    atomic.Int64
}

// NewAtomic wraps view in a cell with one outstanding handle.
func NewAtomic[V any](view V) Atomic[V] {
	c := &acell[V]{view: view}
	c.refs.Store(1)
	return Atomic[V]{c: c}
}

// NewAtomicRelease additionally registers release, called exactly once
// with the view when the last handle drops.
func NewAtomicRelease[V any](view V, release func(V)) Atomic[V] {
	c := &acell[V]{view: view, release: release}
	c.refs.Store(1)
	return Atomic[V]{c: c}
}

// Deref returns the shared view. Every clone observes the identical view.
func (a Atomic[V]) Deref() V {
	return a.c.view
}

// StableDeref declares the stability capability.
func (a Atomic[V]) StableDeref() {}

// Clone returns a new handle over the same cell. The increment is atomic,
// so concurrent clones are safe; cloning a released cell panics.
func (a Atomic[V]) Clone() Atomic[V] {
	if a.c == nil || a.c.refs.Add(1) <= 1 {
		panic("owner: clone of released Atomic handle")
	}
	return a
}

// Drop gives this handle back. The handle that brings the count to zero
// runs the release hook; dropping past zero panics.
func (a Atomic[V]) Drop() {
	if a.c == nil {
		panic("owner: drop of released Atomic handle")
	}
	n := a.c.refs.Add(-1)
	switch {
	case n == 0:
		if a.c.release != nil {
			a.c.release(a.c.view)
		}
	case n < 0:
		panic("owner: drop of released Atomic handle")
	}
}

// Refs reports the number of outstanding handles.
func (a Atomic[V]) Refs() int {
	if a.c == nil {
		return 0
	}
	return int(a.c.refs.Load())
}

func (a Atomic[V]) String() string {
	if a.c == nil {
		return "Atomic(<nil>)"
	}
	return fmt.Sprintf("Atomic(%v, refs=%d)", a.c.view, a.c.refs.Load())
}
