package fn

import (
	"reflect"

	"github.com/funcell/funcell/fn/internal/cell"
	"github.com/funcell/funcell/fn/internal/typetrie"
)

// opTable is the per-concrete-type dispatch record a Function routes every
// type-specific operation through. Exactly one table exists per
// (signature, concrete type) pair, created on first bind and shared by
// every Function holding that type; table identity therefore stands in for
// the erased type, which is how Target recognizes a match and how Defined
// recognizes emptiness.
type opTable[A, R any] struct {
	copy    func(src, dst *cell.Cell) error
	move    func(src, dst *cell.Cell)
	destroy func(c *cell.Cell)
	invoke  func(c *cell.Cell, arg A) (R, error)
	inline  bool
}

// tables is the process-wide registry. Paths are
// [argument type, result type, concrete type] for bound tables and
// [argument type, result type, emptyKey] for the per-signature empty table.
// Entries are immortal and immutable once resident.
var tables typetrie.Trie

type emptyKey struct{}

func forType[T Callable[A, R], A, R any]() *opTable[A, R] {
	at := reflect.TypeFor[A]()
	rt := reflect.TypeFor[R]()
	tt := reflect.TypeFor[T]()
	if v, ok := tables.Load(at, rt, tt); ok {
		return v.(*opTable[A, R])
	}
	// Racing first users may each build a table; LoadOrStore guarantees
	// they all end up holding the same resident one.
	v, _ := tables.LoadOrStore(at, rt, tt, newTable[T, A, R](tt))
	return v.(*opTable[A, R])
}

func emptyTable[A, R any]() *opTable[A, R] {
	at := reflect.TypeFor[A]()
	rt := reflect.TypeFor[R]()
	if v, ok := tables.Load(at, rt, emptyKey{}); ok {
		return v.(*opTable[A, R])
	}
	t := &opTable[A, R]{
		copy:    func(_, _ *cell.Cell) error { return nil },
		move:    func(_, _ *cell.Cell) {},
		destroy: func(_ *cell.Cell) {},
		invoke: func(_ *cell.Cell, _ A) (R, error) {
			var zero R
			return zero, ErrNoTarget
		},
	}
	v, _ := tables.LoadOrStore(at, rt, emptyKey{}, t)
	return v.(*opTable[A, R])
}

func newTable[T Callable[A, R], A, R any](tt reflect.Type) *opTable[A, R] {
	var zero T
	_, fallible := any(zero).(Copier[T])

	if cell.Fits(tt) {
		return &opTable[A, R]{
			inline: true,
			copy: func(src, dst *cell.Cell) error {
				v := *cell.Inline[T](src)
				if fallible {
					dup, err := any(v).(Copier[T]).CopyCallable()
					if err != nil {
						return err
					}
					v = dup
				}
				cell.PutInline(dst, v)
				return nil
			},
			move: func(src, dst *cell.Cell) {
				cell.PutInline(dst, *cell.Inline[T](src))
				cell.Scrub(src)
			},
			destroy: cell.Scrub,
			invoke: func(c *cell.Cell, arg A) (R, error) {
				return (*cell.Inline[T](c)).Call(arg), nil
			},
		}
	}

	return &opTable[A, R]{
		copy: func(src, dst *cell.Cell) error {
			v := *cell.Boxed[T](src)
			if fallible {
				dup, err := any(v).(Copier[T]).CopyCallable()
				if err != nil {
					return err
				}
				v = dup
			}
			cell.PutBoxed(dst, v)
			return nil
		},
		move:    cell.MoveRef,
		destroy: cell.DropRef,
		invoke: func(c *cell.Cell, arg A) (R, error) {
			return (*cell.Boxed[T](c)).Call(arg), nil
		},
	}
}
