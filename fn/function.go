package fn

import (
	"github.com/funcell/funcell/fn/internal/cell"
)

// Function is a value-semantic, type-erased container for one callable of
// signature A -> R. The caller never names the concrete callable type after
// binding: all type-specific behavior is reached through the installed
// operation table.
//
// The zero value is an empty Function and is ready to use. Plain Go
// assignment of a Function copies the container shallowly, like copying a
// slice header; use Clone for an independent duplicate of the target.
//
// A Function is not synchronized. Concurrent mutation (CopyFrom, MoveFrom,
// Swap, Reset) of one instance requires external locking; concurrent Invoke
// on an instance nobody mutates is as safe as the bound callable itself.
type Function[A, R any] struct {
	storage cell.Cell
	tab     *opTable[A, R]
}

// New returns an explicitly empty Function.
func New[A, R any]() Function[A, R] {
	return Function[A, R]{tab: emptyTable[A, R]()}
}

// Bind erases v behind a Function. Small reference-free callables land in
// the container's inline slot and cost no allocation; everything else is
// boxed on the heap, exactly one allocation per bind.
func Bind[T Callable[A, R], A, R any](v T) Function[A, R] {
	tab := forType[T, A, R]()
	f := Function[A, R]{tab: tab}
	if tab.inline {
		cell.PutInline(&f.storage, v)
	} else {
		cell.PutBoxed(&f.storage, v)
	}
	return f
}

// Of binds a plain func or closure.
func Of[A, R any](callable func(A) R) Function[A, R] {
	return Bind[Fn[A, R], A, R](Fn[A, R](callable))
}

func (f *Function[A, R]) table() *opTable[A, R] {
	if f.tab == nil {
		return emptyTable[A, R]()
	}
	return f.tab
}

// Defined reports whether f holds a target. O(1), never inspects storage.
func (f *Function[A, R]) Defined() bool {
	return f.tab != nil && f.tab != emptyTable[A, R]()
}

// Invoke calls the bound target with arg. An empty Function returns
// ErrNoTarget without touching storage. Whatever the target itself does,
// its result or a panic from its body, passes through unchanged.
func (f *Function[A, R]) Invoke(arg A) (R, error) {
	return f.table().invoke(&f.storage, arg)
}

// Call invokes the target and panics with ErrNoTarget when f is empty.
// It makes *Function itself satisfy Callable.
func (f *Function[A, R]) Call(arg A) R {
	r, err := f.Invoke(arg)
	if err != nil {
		panic(err)
	}
	return r
}

// Clone returns an independent duplicate of f. Boxed targets are copied
// into a fresh heap slot, never shared. If the target's CopyCallable
// fails, the error is returned and the result is empty; f is untouched.
func (f *Function[A, R]) Clone() (Function[A, R], error) {
	tab := f.table()
	g := Function[A, R]{tab: tab}
	if err := tab.copy(&f.storage, &g.storage); err != nil {
		return New[A, R](), err
	}
	return g, nil
}

// Move transfers f's target into the returned Function and leaves f empty.
// Never fails: an inline payload is relocated by bit copy and a boxed
// handle by pointer transfer.
func (f *Function[A, R]) Move() Function[A, R] {
	tab := f.table()
	g := Function[A, R]{tab: tab}
	tab.move(&f.storage, &g.storage)
	f.tab = emptyTable[A, R]()
	return g
}

// CopyFrom replaces f's target with an independent duplicate of src's,
// with the strong guarantee: if duplication fails, both f and src keep
// their prior state untouched. The duplicate is built first, then swapped
// in; f is never mutated before the copy has fully succeeded.
// Self-assignment is a no-op.
func (f *Function[A, R]) CopyFrom(src *Function[A, R]) error {
	if f == src {
		return nil
	}
	tmp, err := src.Clone()
	if err != nil {
		return err
	}
	f.Swap(&tmp)
	tmp.Reset()
	return nil
}

// MoveFrom replaces f's target with src's and leaves src empty. Never
// fails. Self-assignment is a no-op.
func (f *Function[A, R]) MoveFrom(src *Function[A, R]) {
	if f == src {
		return
	}
	tmp := src.Move()
	f.Swap(&tmp)
	tmp.Reset()
}

// Swap exchanges the two containers' targets. Storage cannot be exchanged
// wholesale, because its meaning depends on the table that owns it, so
// content is shuttled through a bounded intermediate cell, each move dispatched
// through the table matching the storage it reads at that step.
func (f *Function[A, R]) Swap(g *Function[A, R]) {
	if f == g {
		return
	}
	ftab, gtab := f.table(), g.table()
	var tmp cell.Cell
	gtab.move(&g.storage, &tmp)
	ftab.move(&f.storage, &g.storage)
	gtab.move(&tmp, &f.storage)
	f.tab, g.tab = gtab, ftab
}

// Reset destroys the held target, releasing a boxed heap slot if there is
// one, and returns f to the empty state.
func (f *Function[A, R]) Reset() {
	f.table().destroy(&f.storage)
	f.tab = emptyTable[A, R]()
}
