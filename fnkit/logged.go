// Package fnkit provides opt-in decorators over fn.Function. The container
// itself never logs or caches; every concern here is layered on top as a
// fresh bound Function, so decorated wrappers round-trip through the same
// erasure machinery as anything else.
package fnkit

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/funcell/funcell/fn"
)

// Logged wraps f so every invocation is reported through logger. Each wrapper
// gets its own id so interleaved call sites stay distinguishable.
// An empty f still fails with fn.ErrNoTarget; the failure is logged and
// re-raised unchanged.
func Logged[A, R any](f *fn.Function[A, R], logger *zap.Logger) fn.Function[A, R] {
	id := uuid.New().String()
	sugar := logger.Sugar()
	return fn.Of(func(a A) R {
		r, err := f.Invoke(a)
		if err != nil {
			sugar.Errorf("invocation failed: wrapperId: %v, err: %v", id, err)
			panic(err)
		}
		sugar.Debugf("invoked wrapper: wrapperId: %v", id)
		return r
	})
}
