package nodes

import (
	"golang.org/x/exp/constraints"

	"github.com/dm-vev/zerobot/zero/behavior"
	"github.com/dm-vev/zerobot/zero/blackboard"
)

// BlackboardSetQueryNode succeeds iff key currently holds a value of any
// type.
type BlackboardSetQueryNode struct {
	key string
}

// NewBlackboardSetQueryNode returns a leaf testing key presence.
func NewBlackboardSetQueryNode(key string) *BlackboardSetQueryNode {
	return &BlackboardSetQueryNode{key: key}
}

func (n *BlackboardSetQueryNode) Tick(ctx *behavior.Context) behavior.Result {
	if ctx.Blackboard.Has(n.key) {
		return behavior.Success
	}
	return behavior.Failure
}

func (n *BlackboardSetQueryNode) Reset() {}

// ValueCompareQuery succeeds iff key holds a value of type T equal to want.
// Failure if the key is unset or holds a different type.
type ValueCompareQuery[T comparable] struct {
	key  string
	want T
}

// NewValueCompareQuery returns a leaf testing key's stored value against
// want.
func NewValueCompareQuery[T comparable](key string, want T) *ValueCompareQuery[T] {
	return &ValueCompareQuery[T]{key: key, want: want}
}

func (n *ValueCompareQuery[T]) Tick(ctx *behavior.Context) behavior.Result {
	got, ok := blackboard.Get[T](ctx.Blackboard, n.key)
	if !ok || got != n.want {
		return behavior.Failure
	}
	return behavior.Success
}

func (n *ValueCompareQuery[T]) Reset() {}

// CompareOp selects the relation NumericCompareQuery tests.
type CompareOp uint8

const (
	Less CompareOp = iota
	LessOrEqual
	Greater
	GreaterOrEqual
	Equal
)

// NumericCompareQuery succeeds iff the ordered value at key relates to
// want under op (e.g. "energy < 10"). Failure if key is unset or holds a
// different type.
type NumericCompareQuery[T constraints.Ordered] struct {
	key  string
	op   CompareOp
	want T
}

// NewNumericCompareQuery returns a leaf testing key's stored value against
// want under op.
func NewNumericCompareQuery[T constraints.Ordered](key string, op CompareOp, want T) *NumericCompareQuery[T] {
	return &NumericCompareQuery[T]{key: key, op: op, want: want}
}

func (n *NumericCompareQuery[T]) Tick(ctx *behavior.Context) behavior.Result {
	got, ok := blackboard.Get[T](ctx.Blackboard, n.key)
	if !ok {
		return behavior.Failure
	}
	var pass bool
	switch n.op {
	case Less:
		pass = got < n.want
	case LessOrEqual:
		pass = got <= n.want
	case Greater:
		pass = got > n.want
	case GreaterOrEqual:
		pass = got >= n.want
	case Equal:
		pass = got == n.want
	}
	if pass {
		return behavior.Success
	}
	return behavior.Failure
}

func (n *NumericCompareQuery[T]) Reset() {}
