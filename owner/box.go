package owner

import "fmt"

// Box owns a single value at a fixed heap location. The zero Box holds
// nothing and derefs to nil.
type Box[T any] struct {
	p *T
}

// NewBox moves payload onto the heap and returns a handle to it.
func NewBox[T any](payload T) Box[T] {
	return Box[T]{p: &payload}
}

// Deref returns the pointer to the boxed payload. Every copy of the
// handle returns the identical pointer.
func (b Box[T]) Deref() *T {
	return b.p
}

// StableDeref declares the stability capability: the payload sits behind
// a pointer the handle merely carries, so copying the handle cannot move it.
func (b Box[T]) StableDeref() {}

func (b Box[T]) String() string {
	if b.p == nil {
		return "Box(<nil>)"
	}
	return fmt.Sprintf("Box(%v)", *b.p)
}
