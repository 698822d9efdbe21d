package nodes

import (
	"github.com/dm-vev/zerobot/zero/behavior"
	"github.com/dm-vev/zerobot/zero/blackboard"
	"github.com/dm-vev/zerobot/zero/game"
)

// NearestTargetNode scans ctx.Snapshot.Players and writes the closest
// eligible enemy's ID to outKey. Eligible means: not a spectator, not on
// self's frequency, not respawning, synchronized, and not standing on a
// safe tile. Failure if no eligible target exists.
type NearestTargetNode struct {
	outKey string
}

// NewNearestTargetNode returns a leaf writing the nearest enemy's player ID
// to outKey on Success.
func NewNearestTargetNode(outKey string) *NearestTargetNode {
	return &NearestTargetNode{outKey: outKey}
}

func (n *NearestTargetNode) Tick(ctx *behavior.Context) behavior.Result {
	var best *game.Player
	var bestDistSq float32

	for _, p := range ctx.Snapshot.Players {
		if !eligibleTarget(ctx, p) {
			continue
		}
		d := p.Position.Sub(ctx.Self.Position)
		distSq := d.Dot(d)
		if best == nil || distSq < bestDistSq {
			best = p
			bestDistSq = distSq
		}
	}

	if best == nil {
		return behavior.Failure
	}
	blackboard.Set(ctx.Blackboard, n.outKey, best.ID)
	return behavior.Success
}

func (n *NearestTargetNode) Reset() {}

func eligibleTarget(ctx *behavior.Context, p *game.Player) bool {
	if p == nil || p.ID == ctx.Self.ID {
		return false
	}
	if !p.Alive() || p.Respawning() || !p.Synchronized {
		return false
	}
	if p.Frequency == ctx.Self.Frequency {
		return false
	}
	x, y := int(p.Position.X()), int(p.Position.Y())
	if ctx.Map.IsSafe(x, y) {
		return false
	}
	return true
}
