// Package controller implements C12: the per-tick driver that wires every
// other component together — resets per-tick state, rebuilds the
// region/pathfinder graph when it goes stale, runs the active behavior
// tree, and hands the resulting input frame to the network collaborator.
package controller

import (
	"github.com/dm-vev/zerobot/zero/actuate"
	"github.com/dm-vev/zerobot/zero/behavior"
	"github.com/dm-vev/zerobot/zero/blackboard"
	"github.com/dm-vev/zerobot/zero/game"
	"github.com/dm-vev/zerobot/zero/influence"
	"github.com/dm-vev/zerobot/zero/kdtree"
	"github.com/dm-vev/zerobot/zero/path"
	"github.com/dm-vev/zerobot/zero/region"
	"github.com/dm-vev/zerobot/zero/steering"
	"github.com/dm-vev/zerobot/zero/world"
)

// LeashDistanceKey is the blackboard key the controller seeds every tick
// (spec §4.12 step 4); behavior nodes read it to decide how far from a
// territory anchor they're willing to roam.
const LeashDistanceKey = "leash_distance"

// RotationThresholdKey is not spec-mandated, but Actuator.Update needs a
// threshold per call site (spec §4.10); the controller seeds a default one
// trees may override per-tick via blackboard if a behavior wants a tighter
// band while aiming.
const RotationThresholdKey = "actuator.rotation_threshold"

// ConsoleGotoKey is the blackboard key the operator console writes to when
// an operator issues a /goto command. A tree wires a nodes.GoToNode to this
// key if it wants to be steerable from the console; trees that don't read
// it simply ignore the write.
const ConsoleGotoKey = "console.goto_target"

// Config is the small set of knobs a behavior/zone may need to change at
// runtime: the ship radius used to build the pathfinder, and the leash
// distance seeded onto the blackboard each tick.
type Config struct {
	ShipRadius    float32
	LeashDistance float32
}

// Controller owns the long-lived per-bot state across ticks: the map, the
// region/pathfinder graphs (rebuilt lazily), the influence map (created once
// in New and kept across ticks), the blackboard, and the active behavior
// tree. The KD tree is rebuilt every tick and not kept.
type Controller struct {
	Map        *world.Map
	Blackboard *blackboard.Blackboard
	Influence  *influence.Map

	regions    *region.Registry
	pathfinder *path.Pathfinder
	builtRadius float32
	haveBuilt  bool

	tree Node
}

// Node is the subset of behavior.Node the controller needs, aliased here
// so callers don't have to import behavior just to pass their tree in.
type Node = behavior.Node

// New returns a Controller over m, with an empty blackboard and influence
// map ready to use.
func New(m *world.Map) *Controller {
	return &Controller{
		Map:        m,
		Blackboard: blackboard.New(),
		Influence:  influence.New(),
	}
}

// SetTree installs the active behavior tree, replacing any previous one.
// Zone controllers call this in response to a BehaviorChange event.
func (c *Controller) SetTree(tree Node) {
	c.tree = tree
}

// Tick runs one full controller cycle (spec §4.12 steps 1-7) and returns the
// input frame the network collaborator should send. snapshot is the
// coherent per-tick world state published by the collaborator; out is where
// ship/attach/chat requests go.
func (c *Controller) Tick(snapshot *game.Snapshot, frequency uint16, cfg Config, out game.OutputSink) game.InputFrame {
	var frame game.InputFrame
	frame.Reset()

	if !c.haveBuilt || c.builtRadius != cfg.ShipRadius {
		c.regions = region.CreateAll(c.Map, cfg.ShipRadius, snapshot.Tick)
		c.pathfinder = path.NewPathfinder(c.Map, cfg.ShipRadius, frequency, snapshot.Tick)
		c.builtRadius = cfg.ShipRadius
		c.haveBuilt = true
	}

	var acc steering.Accumulator
	acc.Reset()

	kd := kdtree.Build(snapshot.Players, nil)

	blackboard.Set(c.Blackboard, LeashDistanceKey, cfg.LeashDistance)

	if c.tree != nil && snapshot.Self != nil {
		ctx := &behavior.Context{
			Self:       snapshot.Self,
			Snapshot:   snapshot,
			Map:        c.Map,
			Regions:    c.regions,
			Pathfinder: c.pathfinder,
			KD:         kd,
			Influence:  c.Influence,
			Blackboard: c.Blackboard,
			Steering:   &acc,
			Input:      &frame,
			Output:     out,
			Now:        snapshot.Tick,
			Frequency:  frequency,
		}
		c.tree.Tick(ctx)
	}

	threshold := blackboard.GetOr(c.Blackboard, RotationThresholdKey, actuate.DefaultRotationThreshold)
	if snapshot.Self != nil {
		actuate.Update(snapshot.Self, &acc, threshold, &frame)
	}

	return frame
}

// RegionInfo reports the region index and tile count for the static tile at
// (x, y) under the most recently built RegionRegistry. ok is false if no
// registry has been built yet.
func (c *Controller) RegionInfo(x, y int) (idx region.Index, tileCount int, ok bool) {
	if c.regions == nil {
		return 0, 0, false
	}
	idx = c.regions.RegionAt(x, y)
	if idx == region.Undefined {
		return idx, 0, true
	}
	return idx, c.regions.GetTileCount(idx), true
}
