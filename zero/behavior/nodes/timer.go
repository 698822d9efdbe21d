package nodes

import (
	"github.com/dm-vev/zerobot/zero/behavior"
	"github.com/dm-vev/zerobot/zero/blackboard"
	"github.com/dm-vev/zerobot/zero/game"
)

// TimerSetNode writes a deadline of now+durationTicks to key, always
// succeeding. Used alongside TimerExpiredNode to express "timeouts" per
// spec §5 — there is no cancellation token, just a deadline tick and a leaf
// that checks it.
type TimerSetNode struct {
	key           string
	durationTicks game.Tick
}

// NewTimerSetNode returns a leaf that arms a deadline timeout at key.
func NewTimerSetNode(key string, durationTicks game.Tick) *TimerSetNode {
	return &TimerSetNode{key: key, durationTicks: durationTicks}
}

func (n *TimerSetNode) Tick(ctx *behavior.Context) behavior.Result {
	blackboard.Set(ctx.Blackboard, n.key, ctx.Now+n.durationTicks)
	return behavior.Success
}

func (n *TimerSetNode) Reset() {}

// TimerExpiredNode succeeds once the deadline written by a TimerSetNode at
// the same key has passed, using wrap-safe tick comparison. Failure if the
// key was never set or the deadline hasn't arrived yet.
type TimerExpiredNode struct {
	key string
}

// NewTimerExpiredNode returns a leaf testing whether the deadline at key
// has elapsed.
func NewTimerExpiredNode(key string) *TimerExpiredNode {
	return &TimerExpiredNode{key: key}
}

func (n *TimerExpiredNode) Tick(ctx *behavior.Context) behavior.Result {
	deadline, ok := blackboard.Get[game.Tick](ctx.Blackboard, n.key)
	if !ok {
		return behavior.Failure
	}
	if game.TickGTE(ctx.Now, deadline) {
		return behavior.Success
	}
	return behavior.Failure
}

func (n *TimerExpiredNode) Reset() {}
