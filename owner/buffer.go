package owner

import "fmt"

// Buffer owns a contiguous element sequence. NewBuffer takes ownership of
// the slice: the caller must not retain, append to, or reslice it
// afterwards, the same handoff contract as bytes.NewBuffer. The handle
// exposes nothing that could grow or reallocate the backing array, which
// is what keeps views into it valid.
type Buffer[E any] struct {
	s []E
}

// NewBuffer wraps elems, taking ownership of the backing array.
func NewBuffer[E any](elems []E) Buffer[E] {
	return Buffer[E]{s: elems}
}

// Deref returns the owned elements. The result aliases the backing array;
// callers may read and write elements but must not append.
func (b Buffer[E]) Deref() []E {
	return b.s
}

// Len returns the number of owned elements.
func (b Buffer[E]) Len() int {
	return len(b.s)
}

// StableDeref declares the stability capability: the backing array is
// fixed at construction and the handle offers no way to replace it.
func (b Buffer[E]) StableDeref() {}

func (b Buffer[E]) String() string {
	return fmt.Sprintf("Buffer(%v)", b.s)
}
