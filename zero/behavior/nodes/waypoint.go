package nodes

import (
	"github.com/dm-vev/zerobot/zero/behavior"
	"github.com/dm-vev/zerobot/zero/blackboard"
	"github.com/go-gl/mathgl/mgl32"
)

// WaypointNode cycles self through a list of positions stored at listKey,
// tracking the current index at idxKey and writing the active waypoint's
// position to outKey. Advances idxKey once self is within radius of the
// current waypoint, wrapping back to the start of the list. Failure if
// listKey is unset or empty.
type WaypointNode struct {
	listKey, idxKey, outKey string
	radius                  float32
}

// NewWaypointNode returns a leaf cycling through the Vec2 slice at listKey.
func NewWaypointNode(listKey, idxKey, outKey string, radius float32) *WaypointNode {
	return &WaypointNode{listKey: listKey, idxKey: idxKey, outKey: outKey, radius: radius}
}

func (n *WaypointNode) Tick(ctx *behavior.Context) behavior.Result {
	list, ok := blackboard.Get[[]mgl32.Vec2](ctx.Blackboard, n.listKey)
	if !ok || len(list) == 0 {
		return behavior.Failure
	}

	idx := blackboard.GetOr(ctx.Blackboard, n.idxKey, 0)
	if idx < 0 || idx >= len(list) {
		idx = 0
	}

	current := list[idx]
	if ctx.Self.Position.Sub(current).Len() <= n.radius {
		idx = (idx + 1) % len(list)
		current = list[idx]
	}

	blackboard.Set(ctx.Blackboard, n.idxKey, idx)
	blackboard.Set(ctx.Blackboard, n.outKey, current)
	return behavior.Success
}

func (n *WaypointNode) Reset() {}

// InRegionNode tests whether self's current position is connectivity-
// reachable from coord under the active RegionRegistry. Failure if no
// registry has been built yet.
type InRegionNode struct {
	coordX, coordY int
}

// NewInRegionNode returns a leaf checking self's region connectivity to
// (coordX, coordY).
func NewInRegionNode(coordX, coordY int) *InRegionNode {
	return &InRegionNode{coordX: coordX, coordY: coordY}
}

func (n *InRegionNode) Tick(ctx *behavior.Context) behavior.Result {
	if ctx.Regions == nil {
		return behavior.Failure
	}
	sx, sy := int(ctx.Self.Position.X()), int(ctx.Self.Position.Y())
	if ctx.Regions.IsConnected(sx, sy, n.coordX, n.coordY) {
		return behavior.Success
	}
	return behavior.Failure
}

func (n *InRegionNode) Reset() {}
