package nodes

import (
	"github.com/dm-vev/zerobot/zero/behavior"
	"github.com/dm-vev/zerobot/zero/blackboard"
	"github.com/dm-vev/zerobot/zero/world"
	"github.com/go-gl/mathgl/mgl32"
)

// TileQueryNode succeeds if the tile under self's current position matches
// want.
type TileQueryNode struct {
	want world.TileID
}

// NewTileQueryNode returns a leaf testing the tile under self.
func NewTileQueryNode(want world.TileID) *TileQueryNode {
	return &TileQueryNode{want: want}
}

func (n *TileQueryNode) Tick(ctx *behavior.Context) behavior.Result {
	x, y := int(ctx.Self.Position.X()), int(ctx.Self.Position.Y())
	if ctx.Map.GetTileId(x, y) == n.want {
		return behavior.Success
	}
	return behavior.Failure
}

func (n *TileQueryNode) Reset() {}

// VisibilityQueryNode raycasts from self (or the Vec2 stored at fromKey, if
// set) to the Vec2 stored at toKey, succeeding only if nothing blocks the
// line.
type VisibilityQueryNode struct {
	fromKey string // optional; empty means "self's position"
	toKey   string
}

// NewVisibilityQueryNode returns a leaf testing line-of-sight to toKey. An
// empty fromKey means the cast originates at self's current position.
func NewVisibilityQueryNode(fromKey, toKey string) *VisibilityQueryNode {
	return &VisibilityQueryNode{fromKey: fromKey, toKey: toKey}
}

func (n *VisibilityQueryNode) Tick(ctx *behavior.Context) behavior.Result {
	to, ok := blackboard.Get[mgl32.Vec2](ctx.Blackboard, n.toKey)
	if !ok {
		return behavior.Failure
	}
	from := ctx.Self.Position
	if n.fromKey != "" {
		if f, ok := blackboard.Get[mgl32.Vec2](ctx.Blackboard, n.fromKey); ok {
			from = f
		}
	}
	result := ctx.Map.CastTo(from, to, ctx.Frequency, ctx.Now)
	if result.Hit {
		return behavior.Failure
	}
	return behavior.Success
}

func (n *VisibilityQueryNode) Reset() {}
