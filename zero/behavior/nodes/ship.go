// Package nodes implements C11: the reusable leaf-node library behavior
// trees are built from (aim, target selection, region queries, waypoint
// follower, chat, ship request).
package nodes

import (
	"github.com/dm-vev/zerobot/zero/behavior"
	"github.com/dm-vev/zerobot/zero/blackboard"
	"github.com/dm-vev/zerobot/zero/game"
)

// shipRequestCooldown is how many ticks must elapse between two ship
// requests for the same bot, per spec §4.11.
const shipRequestCooldown = game.Tick(300)

func lastRequestKey(prefix string) string { return prefix + ".last_ship_request" }

// ShipQueryNode succeeds if self currently occupies wantShip (0-7), Failure
// otherwise. It never mutates anything; ShipRequestNode is the leaf that
// asks for a change.
type ShipQueryNode struct {
	wantShip uint8
}

// NewShipQueryNode returns a leaf testing self's current ship.
func NewShipQueryNode(wantShip uint8) *ShipQueryNode {
	return &ShipQueryNode{wantShip: wantShip}
}

func (n *ShipQueryNode) Tick(ctx *behavior.Context) behavior.Result {
	if ctx.Self.Ship == n.wantShip {
		return behavior.Success
	}
	return behavior.Failure
}

func (n *ShipQueryNode) Reset() {}

// ShipRequestNode asks the network collaborator for wantShip (must be
// 0-7), rate-limited to one request per shipRequestCooldown ticks via a
// blackboard-stored "last request tick". Returns Success once self is
// already in wantShip, Failure if wantShip is out of range, and Running
// otherwise (both when a request was just issued and while on cooldown).
type ShipRequestNode struct {
	wantShip   uint8
	bbKeyBase  string
}

// NewShipRequestNode returns a leaf requesting wantShip, using bbKeyBase as
// the blackboard key namespace for its cooldown timer (so multiple
// independent ship-request leaves in the same tree don't collide).
func NewShipRequestNode(wantShip uint8, bbKeyBase string) *ShipRequestNode {
	return &ShipRequestNode{wantShip: wantShip, bbKeyBase: bbKeyBase}
}

func (n *ShipRequestNode) Tick(ctx *behavior.Context) behavior.Result {
	if ctx.Self.Ship == n.wantShip {
		return behavior.Success
	}
	if n.wantShip > 7 {
		return behavior.Failure
	}

	key := lastRequestKey(n.bbKeyBase)
	last := blackboard.GetOr(ctx.Blackboard, key, game.Tick(0))
	if last != 0 && game.TickLT(ctx.Now, last+shipRequestCooldown) {
		return behavior.Running
	}

	ctx.Output.RequestShip(n.wantShip)
	blackboard.Set(ctx.Blackboard, key, ctx.Now)
	return behavior.Running
}

func (n *ShipRequestNode) Reset() {}
