// Package event implements C13: a typed, process-wide-but-explicitly-owned
// event bus. Handlers register per concrete event type at construction and
// deregister via the closure Subscribe returns — the RAII-handle pattern
// from SPEC_FULL.md §4.16, expressed as a returned unregister func rather than
// a destructor since Go has no destructors.
package event

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/segmentio/fasthash/fnv1a"
)

// Unsubscribe deregisters the handler it was returned from Subscribe with.
// Calling it more than once is a no-op.
type Unsubscribe func()

type handlerEntry struct {
	typ reflect.Type
	fn  func(any)
}

// Bus is an explicitly-owned event dispatcher. The zero value is not
// usable; construct with New. A Bus must not be copied after first use.
type Bus struct {
	mu        sync.Mutex
	handlers  map[uint64][]handlerEntry
	dispatching map[uint64]bool
}

// New returns an empty Bus.
func New() *Bus {
	return &Bus{handlers: make(map[uint64][]handlerEntry), dispatching: make(map[uint64]bool)}
}

func typeKey(t reflect.Type) uint64 {
	return fnv1a.HashString64(t.PkgPath() + "." + t.Name())
}

// Subscribe registers fn to be called whenever Dispatch[T] fires on bus. The
// returned Unsubscribe removes the handler; it is always safe to call even
// after the Bus has dispatched other events in between.
func Subscribe[T any](bus *Bus, fn func(T)) Unsubscribe {
	var zero T
	t := reflect.TypeOf(zero)
	key := typeKey(t)
	entry := handlerEntry{typ: t, fn: func(v any) { fn(v.(T)) }}

	bus.mu.Lock()
	bus.handlers[key] = append(bus.handlers[key], entry)
	idx := len(bus.handlers[key]) - 1
	bus.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			bus.mu.Lock()
			defer bus.mu.Unlock()
			list := bus.handlers[key]
			if idx < len(list) {
				// Mark as removed in place; Dispatch skips nil entries. This
				// keeps indices stable for any other in-flight Unsubscribe
				// closures referencing the same slice.
				list[idx].fn = nil
			}
		})
	}
}

// Dispatch calls every handler registered for T, in registration order,
// synchronously. It panics if called for T while a Dispatch for T is
// already in progress on this Bus (non-reentrant delivery, per spec §4.13).
func Dispatch[T any](bus *Bus, evt T) {
	var zero T
	t := reflect.TypeOf(zero)
	key := typeKey(t)

	bus.mu.Lock()
	if bus.dispatching[key] {
		bus.mu.Unlock()
		panic(fmt.Sprintf("event: reentrant Dispatch for %s", t))
	}
	bus.dispatching[key] = true
	handlers := append([]handlerEntry(nil), bus.handlers[key]...)
	bus.mu.Unlock()

	defer func() {
		bus.mu.Lock()
		bus.dispatching[key] = false
		bus.mu.Unlock()
	}()

	for _, h := range handlers {
		if h.fn == nil {
			continue
		}
		h.fn(evt)
	}
}
