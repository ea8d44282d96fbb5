// Package viewcheck computes the address extent backing a view value so
// debug diagnostics can verify that a projected view lies inside the
// storage of the view it was derived from.
//
// Only pointer-shaped views carry a usable extent: pointers, slices, and
// strings. Everything else (and nil or empty views) has no extent and is
// treated as derived, because the check is a diagnostic, not a gate.
package viewcheck

import (
	"reflect"
	"unsafe"
)

// extent is the half-open address range [base, base+size) backing a view.
type extent struct {
	base uintptr
	size uintptr
	ok   bool
}

func extentOf(v reflect.Value) extent {
	switch v.Kind() {
	case reflect.Pointer:
		if v.IsNil() {
			return extent{}
		}
		return extent{base: v.Pointer(), size: v.Type().Elem().Size(), ok: true}
	case reflect.Slice:
		if v.IsNil() || v.Len() == 0 {
			return extent{}
		}
		return extent{base: v.Pointer(), size: uintptr(v.Len()) * v.Type().Elem().Size(), ok: true}
	case reflect.String:
		s := v.String()
		if len(s) == 0 {
			return extent{}
		}
		return extent{base: uintptr(unsafe.Pointer(unsafe.StringData(s))), size: uintptr(len(s)), ok: true}
	default:
		return extent{}
	}
}

// Derived reports whether to's backing storage falls within from's.
// Views without a computable extent report true. A false result is not
// necessarily a bug: a projection may legally return a view into storage
// that outlives every owner, such as a package-level constant.
func Derived(from, to any) bool {
	f := extentOf(reflect.ValueOf(from))
	t := extentOf(reflect.ValueOf(to))
	if !f.ok || !t.ok {
		return true
	}
	return t.base >= f.base && t.base+t.size <= f.base+f.size
}
