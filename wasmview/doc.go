// Package wasmview provides an owner kind over WebAssembly linear memory,
// so views into guest memory can be carried through the ownref combinator
// like any other owned data.
//
// # Stability Caveat
//
// Linear memory is owned by the instance, not by the Region handle, and
// wazero may reallocate the backing buffer when memory grows. A Region's
// view is therefore valid only while the instance is alive and its memory
// has not grown past the captured range. Region declares StableDeref on
// the host's behalf; the host keeps the promise by capturing regions only
// between guest calls that could grow memory, the same discipline required
// for any zero-copy read of guest data.
package wasmview
