package ownref

// Stability is the capability an owner type declares when the storage
// behind its view stays put for the owner's whole lifetime, regardless of
// how the owner handle itself is copied, passed, or stored. StableDeref is
// never called; declaring it is the owner author's promise, and the
// compiler only checks the declaration, not the promise.
type Stability interface {
	StableDeref()
}

// SharedStability extends Stability to owners that can be duplicated into
// independent handles over the same storage, so that a view captured
// through one handle remains valid through every other.
type SharedStability[O any] interface {
	Stability
	Clone() O
}

// Owner is what construction requires: a stable owner that can produce
// its view. V is the view type the owner exposes, such as *T for a boxed
// T or []E for owned elements.
type Owner[V any] interface {
	Stability
	Deref() V
}

// SharedOwner is an Owner that also supports duplication.
type SharedOwner[O, V any] interface {
	SharedStability[O]
	Deref() V
}

// Dropper is implemented by owner kinds with a deterministic release hook.
// Ref.Drop forwards to it when present and is a no-op otherwise.
type Dropper interface {
	Drop()
}
