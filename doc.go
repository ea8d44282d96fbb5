// Package ownref bundles an owner value together with a view derived from
// data the owner holds, so the pair can be stored, returned, and narrowed
// as one unit without copying the underlying data and without losing the
// owner while the view is still in use.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	ownref/          Root package with the Ref combinator and capability contracts
//	├── owner/       Standard owner kinds: Box, Buffer, Text, Shared, Atomic
//	├── wasmview/    Owner kind over WebAssembly linear memory (wazero)
//	├── errors/      Structured error types for debugging
//	├── cmd/inspect  Interactive explorer for narrowing chains over fixtures
//	└── examples/    Runnable examples
//
// # Quick Start
//
// Wrap an owner, narrow the view, and carry both as one value:
//
//	box := owner.NewBox(Config{Workers: 8, Queue: 64})
//	ref := ownref.ForBox(box)
//
//	workers := ownref.Map(ref, func(c *Config) *int { return &c.Workers })
//	fmt.Println(*workers.Deref()) // 8
//
// The narrowed value still holds the whole Config alive; callers that only
// need the worker count never learn how the owner stores it.
//
// # Capability Contracts
//
// Construction is gated on Owner, which embeds Stability: the owner's
// declaration that the storage its view points into stays valid for the
// owner's whole lifetime, no matter how the owner handle itself is copied
// or moved. Types whose view would be invalidated by handle movement or by
// later mutation (growable containers with exposed append, for example)
// must not declare it.
//
// Clone additionally requires SharedStability: duplicating the owner yields
// a new handle over the same storage, so views remain interchangeable
// across all duplicates.
//
// # Views
//
// A view is any pointer-shaped value into the owner's data: a pointer, a
// slice, or a string. Views are captured eagerly at construction and at
// every Map, so dereferencing is a field read. The garbage collector keeps
// the owner's storage alive through the view itself; the owner is carried
// for its identity, its release hooks, and for IntoOwner.
//
// # Thread Safety
//
// Ref is an immutable value; distinct Refs over the same owner may be used
// concurrently when the owner kind permits it. Of the standard kinds only
// Atomic is safe to clone and drop across goroutines; Shared counts
// handles without synchronization and must stay on one goroutine.
package ownref
