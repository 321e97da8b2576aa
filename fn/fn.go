package fn

import "errors"

// ErrNoTarget is returned when a Function with no bound target is invoked.
var ErrNoTarget = errors.New("called a function with no target")

// Callable is the contract a value must satisfy to be bound into a
// Function[A, R]. Any value with a matching Call method qualifies; the
// Function never needs to know the concrete type after binding.
type Callable[A, R any] interface {
	Call(A) R
}

// Fn adapts a plain func (including closures) to Callable.
type Fn[A, R any] func(A) R

func (f Fn[A, R]) Call(a A) R { return f(a) }

// Copier is optionally implemented by callables whose duplication can fail.
// Clone and CopyFrom duplicate such values through CopyCallable and surface
// its error; all other values are duplicated by plain value copy, which
// cannot fail.
type Copier[T any] interface {
	CopyCallable() (T, error)
}
