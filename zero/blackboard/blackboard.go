// Package blackboard implements C7: a typed heterogeneous key/value store
// behavior tree nodes use to communicate without knowing about each other
// directly (a target entity found by one subtree, read by another).
package blackboard

import "github.com/segmentio/fasthash/fnv1a"

// Blackboard holds arbitrary values keyed by string name. Values are stored
// as `any`; the generic Set/Get wrappers below do the type assertion so
// call sites never see the underlying interface{}.
type Blackboard struct {
	values map[uint64]any
	names  map[uint64]string // kept for diagnostics/logging only
}

// New returns an empty Blackboard.
func New() *Blackboard {
	return &Blackboard{
		values: make(map[uint64]any),
		names:  make(map[uint64]string),
	}
}

func keyHash(key string) uint64 {
	return fnv1a.HashString64(key)
}

// Has reports whether key currently holds a value.
func (b *Blackboard) Has(key string) bool {
	_, ok := b.values[keyHash(key)]
	return ok
}

// Erase removes key, if present.
func (b *Blackboard) Erase(key string) {
	h := keyHash(key)
	delete(b.values, h)
	delete(b.names, h)
}

// Clear removes every key, reusing the backing maps.
func (b *Blackboard) Clear() {
	for h := range b.values {
		delete(b.values, h)
	}
	for h := range b.names {
		delete(b.names, h)
	}
}

// Keys returns the human-readable names of every key currently set, in no
// particular order. Intended for console/debug inspection, not hot paths.
func (b *Blackboard) Keys() []string {
	out := make([]string, 0, len(b.names))
	for _, name := range b.names {
		out = append(out, name)
	}
	return out
}

// Set stores value under key, overwriting any previous value (even one of a
// different type).
func Set[T any](b *Blackboard, key string, value T) {
	h := keyHash(key)
	b.values[h] = value
	b.names[h] = key
}

// Get retrieves the value stored under key as type T. ok is false if the key
// is unset or holds a value of a different type.
func Get[T any](b *Blackboard, key string) (value T, ok bool) {
	raw, present := b.values[keyHash(key)]
	if !present {
		return value, false
	}
	typed, matches := raw.(T)
	if !matches {
		return value, false
	}
	return typed, true
}

// GetOr retrieves the value stored under key as type T, or fallback if unset
// or of a different type.
func GetOr[T any](b *Blackboard, key string, fallback T) T {
	if v, ok := Get[T](b, key); ok {
		return v
	}
	return fallback
}
