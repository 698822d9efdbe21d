package nodes

import (
	"github.com/dm-vev/zerobot/zero/behavior"
	"github.com/dm-vev/zerobot/zero/blackboard"
	"github.com/dm-vev/zerobot/zero/path"
	"github.com/go-gl/mathgl/mgl32"
)

// waypointArriveRadius is how close self must get to a path point before
// GoToNode advances the cursor to the next one.
const waypointArriveRadius = 1.0

// GoToNode drives self along a Pathfinder route toward the Vec2 stored at
// posKey, re-searching whenever the target moves or the cached path runs
// out. It seeks the current path point every tick it's still in transit;
// Success means a path exists and either a seek force was applied this tick
// or the last path point was just reached (no seek on that tick). It does
// not report whether self has arrived at the target itself — callers check
// arrival separately (e.g. via a distance leaf) if they need to know.
type GoToNode struct {
	posKey string

	cached     path.Path
	cachedGoal mgl32.Vec2
	haveGoal   bool
}

// NewGoToNode returns a leaf that paths toward the position at posKey.
func NewGoToNode(posKey string) *GoToNode {
	return &GoToNode{posKey: posKey}
}

func (n *GoToNode) Tick(ctx *behavior.Context) behavior.Result {
	target, ok := blackboard.Get[mgl32.Vec2](ctx.Blackboard, n.posKey)
	if !ok {
		return behavior.Failure
	}

	needsSearch := !n.haveGoal || n.cached.IsDone() || n.cachedGoal.Sub(target).Len() > waypointArriveRadius
	if needsSearch {
		n.cached = ctx.Pathfinder.FindPath(ctx.Regions, ctx.Self.Position, target, ctx.Frequency, ctx.Now)
		n.cachedGoal = target
		n.haveGoal = true
	}
	if n.cached.Empty() {
		return behavior.Failure
	}

	current := n.cached.GetCurrent()
	if ctx.Self.Position.Sub(current).Len() <= waypointArriveRadius {
		n.cached.Advance()
		if n.cached.IsDone() {
			return behavior.Success
		}
		current = n.cached.GetCurrent()
	}

	ctx.Steering.Seek(ctx.Self, current)
	return behavior.Success
}

func (n *GoToNode) Reset() {
	n.cached = path.NewPath(nil)
	n.haveGoal = false
}
