// Package owner provides the standard owner kinds for the ownref
// combinator: Box for a single heap value, Buffer for an owned element
// sequence, Text for an owned string, and Shared/Atomic for
// reference-counted storage with a deterministic release hook.
//
// Every kind is a small copyable handle onto payload that never moves.
// Copying a handle copies only the handle, which is what lets each kind
// declare StableDeref. None of the kinds exposes an operation that could
// reallocate or shrink the payload after construction; that discipline,
// not the handle types themselves, is what keeps captured views valid.
package owner
