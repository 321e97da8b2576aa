package fnkit

import (
	"github.com/funcell/funcell/fn"
)

// Compose binds g after f: the returned Function maps a to g(f(a)).
// Emptiness of either operand is raised as fn.ErrNoTarget at invocation
// time, not at composition time.
func Compose[A, B, C any](g *fn.Function[B, C], f *fn.Function[A, B]) fn.Function[A, C] {
	return fn.Of(func(a A) C {
		return g.Call(f.Call(a))
	})
}

// Pipe is Compose with the operands in application order.
func Pipe[A, B, C any](f *fn.Function[A, B], g *fn.Function[B, C]) fn.Function[A, C] {
	return Compose(g, f)
}
