package ownref

import "github.com/wippyai/ownref/owner"

// Aliases pairing Ref with the standard owner kinds. The trailing type
// parameter is the current view type, which narrows as Map is applied.
// TextRef needs no view parameter because sub-string narrowing keeps the
// view a string.
type (
	BoxRef[T, U any]    = Ref[owner.Box[T], U]
	BufferRef[E, U any] = Ref[owner.Buffer[E], U]
	TextRef             = Ref[owner.Text, string]
	SharedRef[V, U any] = Ref[owner.Shared[V], U]
	AtomicRef[V, U any] = Ref[owner.Atomic[V], U]
)

// ForBox wraps a boxed value. The initial view is the payload pointer.
func ForBox[T any](b owner.Box[T]) BoxRef[T, *T] {
	return New[*T](b)
}

// ForBuffer wraps an owned element sequence. The initial view is the full
// element slice.
func ForBuffer[E any](b owner.Buffer[E]) BufferRef[E, []E] {
	return New[[]E](b)
}

// ForText wraps owned text. The initial view is the whole string.
func ForText(t owner.Text) TextRef {
	return New[string](t)
}

// ForShared wraps a counted handle. The initial view is the cell's payload.
func ForShared[V any](s owner.Shared[V]) SharedRef[V, V] {
	return New[V](s)
}

// ForAtomic wraps an atomically counted handle.
func ForAtomic[V any](a owner.Atomic[V]) AtomicRef[V, V] {
	return New[V](a)
}

// Capability assertions for the standard owner kinds, and for Ref itself
// so one Ref can own another.
var (
	_ Owner[*int]                               = owner.Box[int]{}
	_ Owner[[]byte]                             = owner.Buffer[byte]{}
	_ Owner[string]                             = owner.Text{}
	_ SharedOwner[owner.Shared[[]byte], []byte] = owner.Shared[[]byte]{}
	_ SharedOwner[owner.Atomic[[]byte], []byte] = owner.Atomic[[]byte]{}
	_ Owner[string]                             = Ref[owner.Text, string]{}
)
