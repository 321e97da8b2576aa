package typetrie

import "sync"

// Trie is a three-level concurrent map keyed by (argument type, result type,
// implementation key) paths. Entries are written once and never evicted or
// mutated, so a value loaded for a path is the value every other goroutine
// observes for that path, forever.
type Trie struct {
	root sync.Map
}

// Load returns the value stored under the path, if any. A pure read: it
// never materializes intermediate levels.
func (t *Trie) Load(arg, result, impl any) (any, bool) {
	l1, ok := t.root.Load(arg)
	if !ok {
		return nil, false
	}
	l2, ok := l1.(*sync.Map).Load(result)
	if !ok {
		return nil, false
	}
	return l2.(*sync.Map).Load(impl)
}

// LoadOrStore stores value under the path unless the path is already
// populated, and returns the resident value. Concurrent first use of the
// same path from any number of goroutines yields the same resident value
// for all of them.
func (t *Trie) LoadOrStore(arg, result, impl, value any) (any, bool) {
	leaf := level(level(&t.root, arg), result)
	return leaf.LoadOrStore(impl, value)
}

func level(m *sync.Map, key any) *sync.Map {
	if v, ok := m.Load(key); ok {
		return v.(*sync.Map)
	}
	v, _ := m.LoadOrStore(key, &sync.Map{})
	return v.(*sync.Map)
}
