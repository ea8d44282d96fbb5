package ownref

import (
	"fmt"
	"reflect"
	"strconv"
)

// Ref binds an owner to a view of data the owner holds. The view is
// captured eagerly, at construction and at every Map, so Deref is a plain
// field read. Ref is a value: copies are independent and share the owner
// handle, and the zero Ref of a given instantiation is a Ref over the
// owner kind's zero handle.
type Ref[O, V any] struct {
	owner O
	view  V
}

// New wraps owner, capturing the view it exposes. The Owner constraint is
// the stability gate: only types declaring StableDeref can be wrapped.
// The view type usually cannot be inferred from the owner alone, so New is
// called with it spelled out, as in New[*Config](box); the adapter
// constructors (ForBox, ForText, ...) cover the standard kinds without
// any annotation.
func New[V any, O Owner[V]](owner O) Ref[O, V] {
	return Ref[O, V]{owner: owner, view: owner.Deref()}
}

// Deref returns the captured view.
func (r Ref[O, V]) Deref() V {
	return r.view
}

// Owner returns the owner handle while the Ref stays usable. The caller
// must not use the handle to disturb storage a view points into.
func (r Ref[O, V]) Owner() O {
	return r.owner
}

// IntoOwner unwraps the Ref into its owner handle, ending the Ref's life:
// the caller takes the owner back and discards the Ref along with every
// view derived through it.
func (r Ref[O, V]) IntoOwner() O {
	return r.owner
}

// Drop releases the owner if its kind carries a release hook, and is a
// no-op otherwise. After Drop the Ref and its view must not be used.
func (r Ref[O, V]) Drop() {
	if d, ok := any(r.owner).(Dropper); ok {
		d.Drop()
	}
}

// StableDeref marks Ref itself as a stable owner of its current view, so
// one Ref can own another.
func (r Ref[O, V]) StableDeref() {}

// String renders the owner and the current view.
func (r Ref[O, V]) String() string {
	return fmt.Sprintf("Ref{owner: %v, view: %s}", r.owner, formatView(any(r.view)))
}

// Map derives a Ref with a narrower view while keeping the same owner.
// The projection receives the current view and must return a view into
// the same owned data (or into storage that outlives every owner, such as
// a package-level constant). The result shares the owner handle with its
// input: for counted owners the two stand for one handle, so Drop exactly
// one of them, or Clone first. Map is a function rather than a method
// because the result view type U is introduced per call.
func Map[O Stability, V, U any](r Ref[O, V], project func(V) U) Ref[O, U] {
	view := project(r.view)
	if derivedCheck {
		reportUnderived(any(r.view), any(view))
	}
	return Ref[O, U]{owner: r.owner, view: view}
}

// Clone duplicates a Ref whose owner supports duplication: the owner is
// cloned, the view is carried over unchanged. Clones are independent; each
// is dropped separately.
func Clone[O SharedStability[O], V any](r Ref[O, V]) Ref[O, V] {
	return Ref[O, V]{owner: r.owner.Clone(), view: r.view}
}

// formatView renders a view for String. Pointer views render their
// pointee rather than an address, and text renders quoted, so the output
// is stable across runs.
func formatView(v any) string {
	if s, ok := v.(string); ok {
		return strconv.Quote(s)
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return "<nil>"
		}
		elem := rv.Elem()
		if elem.Kind() == reflect.String {
			return strconv.Quote(elem.String())
		}
		return fmt.Sprintf("%v", elem.Interface())
	}
	return fmt.Sprintf("%v", v)
}
