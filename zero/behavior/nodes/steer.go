package nodes

import (
	"github.com/dm-vev/zerobot/zero/behavior"
	"github.com/dm-vev/zerobot/zero/blackboard"
	"github.com/go-gl/mathgl/mgl32"
)

// FaceNode turns self toward the Vec2 stored at targetKey. Failure if the
// key is unset.
type FaceNode struct {
	targetKey string
}

func NewFaceNode(targetKey string) *FaceNode { return &FaceNode{targetKey: targetKey} }

func (n *FaceNode) Tick(ctx *behavior.Context) behavior.Result {
	target, ok := blackboard.Get[mgl32.Vec2](ctx.Blackboard, n.targetKey)
	if !ok {
		return behavior.Failure
	}
	ctx.Steering.Face(ctx.Self, target)
	return behavior.Success
}

func (n *FaceNode) Reset() {}

// SeekNode adds a seek force toward the Vec2 stored at targetKey.
type SeekNode struct {
	targetKey string
}

func NewSeekNode(targetKey string) *SeekNode { return &SeekNode{targetKey: targetKey} }

func (n *SeekNode) Tick(ctx *behavior.Context) behavior.Result {
	target, ok := blackboard.Get[mgl32.Vec2](ctx.Blackboard, n.targetKey)
	if !ok {
		return behavior.Failure
	}
	ctx.Steering.Seek(ctx.Self, target)
	return behavior.Success
}

func (n *SeekNode) Reset() {}

// ArriveNode seeks toward the Vec2 at targetKey but stops distance short of
// it, for standoff ranges (e.g. orbiting a flag rather than sitting on it).
type ArriveNode struct {
	targetKey string
	distance  float32
}

func NewArriveNode(targetKey string, distance float32) *ArriveNode {
	return &ArriveNode{targetKey: targetKey, distance: distance}
}

func (n *ArriveNode) Tick(ctx *behavior.Context) behavior.Result {
	target, ok := blackboard.Get[mgl32.Vec2](ctx.Blackboard, n.targetKey)
	if !ok {
		return behavior.Failure
	}
	ctx.Steering.SeekDistance(ctx.Self, target, n.distance)
	return behavior.Success
}

func (n *ArriveNode) Reset() {}

// PursueNode leads the player whose ID is at targetIDKey by its current
// velocity, standing off by distance. selfMaxSpeed comes from the current
// ship's settings.
type PursueNode struct {
	targetIDKey  string
	distance     float32
	selfMaxSpeed float32
}

func NewPursueNode(targetIDKey string, distance, selfMaxSpeed float32) *PursueNode {
	return &PursueNode{targetIDKey: targetIDKey, distance: distance, selfMaxSpeed: selfMaxSpeed}
}

func (n *PursueNode) Tick(ctx *behavior.Context) behavior.Result {
	targetID, ok := blackboard.Get[uint16](ctx.Blackboard, n.targetIDKey)
	if !ok {
		return behavior.Failure
	}
	for _, p := range ctx.Snapshot.Players {
		if p != nil && p.ID == targetID {
			ctx.Steering.Pursue(ctx.Self, p.Position, p.Velocity, n.selfMaxSpeed, n.distance)
			return behavior.Success
		}
	}
	return behavior.Failure
}

func (n *PursueNode) Reset() {}
