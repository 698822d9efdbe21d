package nodes

import (
	"github.com/dm-vev/zerobot/zero/behavior"
	"github.com/dm-vev/zerobot/zero/blackboard"
	"github.com/dm-vev/zerobot/zero/game"
)

// maxLeadTime bounds the lead-point projection so a very slow (or
// stationary-relative) weapon doesn't aim at a point absurdly far down the
// target's velocity vector.
const maxLeadTime float32 = 5.0

// AimNode computes a lead point for a projectile of weaponSpeed against the
// player whose ID is stored at targetKey, writing the lead point to outKey.
// Failure if targetKey is unset or names a player no longer present in the
// snapshot.
type AimNode struct {
	weaponSpeed float32
	targetKey   string
	outKey      string
}

// NewAimNode returns a leaf that leads a target moving at its current
// velocity for a projectile traveling at weaponSpeed.
func NewAimNode(weaponSpeed float32, targetKey, outKey string) *AimNode {
	return &AimNode{weaponSpeed: weaponSpeed, targetKey: targetKey, outKey: outKey}
}

func (n *AimNode) Tick(ctx *behavior.Context) behavior.Result {
	targetID, ok := blackboard.Get[uint16](ctx.Blackboard, n.targetKey)
	if !ok {
		return behavior.Failure
	}
	var target *game.Player
	for _, p := range ctx.Snapshot.Players {
		if p != nil && p.ID == targetID {
			target = p
			break
		}
	}
	if target == nil {
		return behavior.Failure
	}

	toTarget := target.Position.Sub(ctx.Self.Position)
	dist := toTarget.Len()
	if n.weaponSpeed <= 0 {
		blackboard.Set(ctx.Blackboard, n.outKey, target.Position)
		return behavior.Success
	}

	leadTime := dist / n.weaponSpeed
	if leadTime > maxLeadTime {
		leadTime = maxLeadTime
	}
	lead := target.Position.Add(target.Velocity.Mul(leadTime))
	blackboard.Set(ctx.Blackboard, n.outKey, lead)
	return behavior.Success
}

func (n *AimNode) Reset() {}
