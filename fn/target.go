package fn

import (
	"github.com/funcell/funcell/fn/internal/cell"
)

// Target returns a pointer to the stored callable iff f is non-empty and
// was bound from exactly T. The match is decided by identity of the
// installed operation table, never by structural comparison: two distinct
// types with identical layout have distinct tables and never match each
// other's Target.
func Target[T Callable[A, R], A, R any](f *Function[A, R]) (*T, bool) {
	tab := forType[T, A, R]()
	if f.tab != tab {
		return nil, false
	}
	if tab.inline {
		return cell.Inline[T](&f.storage), true
	}
	return cell.Boxed[T](&f.storage), true
}

// TargetValue is the read-only variant of Target: a copy of the stored
// callable. It matches exactly when Target matches.
func TargetValue[T Callable[A, R], A, R any](f *Function[A, R]) (T, bool) {
	p, ok := Target[T](f)
	if !ok {
		var zero T
		return zero, false
	}
	return *p, true
}
