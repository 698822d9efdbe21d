package behavior

import (
	"github.com/dm-vev/zerobot/zero/blackboard"
	"github.com/dm-vev/zerobot/zero/game"
	"github.com/dm-vev/zerobot/zero/influence"
	"github.com/dm-vev/zerobot/zero/kdtree"
	"github.com/dm-vev/zerobot/zero/path"
	"github.com/dm-vev/zerobot/zero/region"
	"github.com/dm-vev/zerobot/zero/steering"
	"github.com/dm-vev/zerobot/zero/world"
)

// Context is everything a tree tick needs, assembled fresh by the
// Controller each tick. It bundles read-only world/game state alongside the
// two pieces of per-tick mutable state leaves write to: the Blackboard and
// the Steering accumulator.
type Context struct {
	Self      *game.Player
	Snapshot  *game.Snapshot
	Map       *world.Map
	Regions   *region.Registry
	Pathfinder *path.Pathfinder
	KD        *kdtree.Tree
	Influence *influence.Map
	Blackboard *blackboard.Blackboard
	Steering  *steering.Accumulator
	Input     *game.InputFrame
	Output    game.OutputSink
	Now       game.Tick
	Frequency uint16
}
