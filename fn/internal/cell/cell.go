package cell

import (
	"reflect"
	"unsafe"
)

// WordSize is the capacity of a Cell's inline payload: one machine pointer.
const WordSize = unsafe.Sizeof(uintptr(0))

// WordAlign is the alignment guaranteed for the inline payload.
const WordAlign = unsafe.Alignof(uint64(0))

// Cell is a fixed-size storage slot that holds either a small value's bytes
// directly (inline mode) or an owning handle to a heap copy (boxed mode).
// The cell carries no mode tag: which field is meaningful is known only to
// the operation table installed next to it.
type Cell struct {
	word uint64
	ref  unsafe.Pointer
}

// Fits reports whether values of type t may live in the inline payload.
// A type qualifies iff it is strictly smaller than the payload, its
// alignment divides the payload's alignment, and it contains no
// runtime-tracked references. Reference-carrying values must stay boxed so
// the collector keeps seeing them through a typed handle.
func Fits(t reflect.Type) bool {
	return t.Size() < WordSize &&
		WordAlign%uintptr(t.Align()) == 0 &&
		pointerFree(t)
}

func pointerFree(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return true
	case reflect.Array:
		return pointerFree(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if !pointerFree(t.Field(i).Type) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// PutInline writes v into c's inline payload.
// Caller must have established Fits for T.
func PutInline[T any](c *Cell, v T) {
	*(*T)(unsafe.Pointer(&c.word)) = v
}

// Inline returns a pointer to the value living in c's inline payload.
func Inline[T any](c *Cell) *T {
	return (*T)(unsafe.Pointer(&c.word))
}

// Scrub clears the inline payload after the value has been moved out or
// logically destroyed.
func Scrub(c *Cell) {
	c.word = 0
}

// PutBoxed stores an owning handle to a fresh heap copy of v.
func PutBoxed[T any](c *Cell, v T) {
	p := new(T)
	*p = v
	c.ref = unsafe.Pointer(p)
}

// Boxed returns the boxed value's handle.
func Boxed[T any](c *Cell) *T {
	return (*T)(c.ref)
}

// MoveRef relocates the owning handle from src to dst. src no longer owns
// anything afterwards and is safe to destroy.
func MoveRef(src, dst *Cell) {
	dst.ref = src.ref
	src.ref = nil
}

// DropRef releases the owning handle; the heap copy becomes collectible.
func DropRef(c *Cell) {
	c.ref = nil
}
