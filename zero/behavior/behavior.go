// Package behavior implements C8: a composite/decorator/leaf behavior tree
// with tri-state execution and sequence-resume state, plus the
// BehaviorRepository that names and instantiates trees (C11's leaves live
// in the nodes subpackage, which depends on this one).
package behavior

import (
	"sort"

	"github.com/cespare/xxhash/v2"
)

// Result is the tri-state outcome of ticking a node.
type Result uint8

const (
	Success Result = iota
	Failure
	Running
)

func (r Result) String() string {
	switch r {
	case Success:
		return "Success"
	case Failure:
		return "Failure"
	case Running:
		return "Running"
	default:
		return "Unknown"
	}
}

// Node is the uniform interface every composite, decorator, and leaf
// implements. Reset clears any resume state (a Sequence's cursor, a leaf's
// own internal "started" flag) so the node can be ticked fresh, e.g. after
// a parent Selector moves past it.
type Node interface {
	Tick(ctx *Context) Result
	Reset()
}

// Behavior is what a BehaviorRepository entry produces: a hook run once
// when the behavior becomes active, and a factory for a fresh tree.
type Behavior interface {
	OnInitialize(ctx *Context)
	CreateTree(ctx *Context) Node
}

// BehaviorFunc adapts two plain functions into a Behavior, for the common
// case where a behavior needs no extra state of its own.
type BehaviorFunc struct {
	Init   func(ctx *Context)
	Create func(ctx *Context) Node
}

func (f BehaviorFunc) OnInitialize(ctx *Context) {
	if f.Init != nil {
		f.Init(ctx)
	}
}

func (f BehaviorFunc) CreateTree(ctx *Context) Node {
	return f.Create(ctx)
}

// Repository maps behavior names to factories, looked up by ZoneController
// when a JoinRequest/ArenaName/BehaviorChange event names the behavior that
// should become active.
type Repository struct {
	behaviors map[string]Behavior
}

// NewRepository returns an empty Repository.
func NewRepository() *Repository {
	return &Repository{behaviors: make(map[string]Behavior)}
}

// Register adds or replaces the factory for name.
func (r *Repository) Register(name string, b Behavior) {
	r.behaviors[name] = b
}

// Get returns the factory registered under name, if any.
func (r *Repository) Get(name string) (Behavior, bool) {
	b, ok := r.behaviors[name]
	return b, ok
}

// Names returns every registered behavior name, in no particular order.
func (r *Repository) Names() []string {
	out := make([]string, 0, len(r.behaviors))
	for name := range r.behaviors {
		out = append(out, name)
	}
	return out
}

// Revision returns a stable hash of the currently registered behavior
// names, sorted before hashing so registration order doesn't matter.
// ZoneController logs it alongside SetBehavior calls so an operator can
// tell from the log alone whether the repository changed shape between two
// behavior switches.
func (r *Repository) Revision() uint64 {
	names := r.Names()
	sort.Strings(names)

	h := xxhash.New()
	for _, name := range names {
		h.WriteString(name)
		h.Write([]byte{0})
	}
	return h.Sum64()
}
