package controller

import (
	"testing"

	"github.com/dm-vev/zerobot/zero/behavior"
	"github.com/dm-vev/zerobot/zero/event"
	"github.com/dm-vev/zerobot/zero/game"
	"github.com/dm-vev/zerobot/zero/world"
	"github.com/go-gl/mathgl/mgl32"
)

type fakeOutput struct {
	chatCh chan game.ChatMessage
}

func newFakeOutput() *fakeOutput { return &fakeOutput{chatCh: make(chan game.ChatMessage, 1)} }

func (f *fakeOutput) RequestShip(uint8)             {}
func (f *fakeOutput) RequestAttach(uint16)          {}
func (f *fakeOutput) RequestDetach()                {}
func (f *fakeOutput) RequestSpawn()                 {}
func (f *fakeOutput) SendDisconnect()               {}
func (f *fakeOutput) Chat() chan<- game.ChatMessage { return f.chatCh }

func emptyMap() *world.Map {
	tiles := make([]world.TileID, world.Size*world.Size)
	return world.New("test", tiles, event.New())
}

func TestTickRunsTreeAndActuator(t *testing.T) {
	c := New(emptyMap())
	c.SetTree(behavior.NewConstant(behavior.Success))

	self := &game.Player{ID: 1, Position: mgl32.Vec2{5.5, 5.5}, Heading: mgl32.Vec2{1, 0}, Synchronized: true}
	snap := &game.Snapshot{Self: self, Players: []*game.Player{self}, Tick: 0}

	frame := c.Tick(snap, 0, Config{ShipRadius: 0.3, LeashDistance: 50}, newFakeOutput())
	_ = frame // actuator had no force/rotation, so no actions pressed is valid

	if !c.haveBuilt {
		t.Fatalf("expected the region/pathfinder graph to be built on first tick")
	}
}

func TestTickDoesNotRebuildForSameRadius(t *testing.T) {
	c := New(emptyMap())
	c.SetTree(behavior.NewConstant(behavior.Success))
	self := &game.Player{ID: 1, Position: mgl32.Vec2{5.5, 5.5}, Synchronized: true}
	snap := &game.Snapshot{Self: self, Players: []*game.Player{self}}
	out := newFakeOutput()

	c.Tick(snap, 0, Config{ShipRadius: 0.3}, out)
	firstRegions := c.regions
	c.Tick(snap, 0, Config{ShipRadius: 0.3}, out)
	if c.regions != firstRegions {
		t.Fatalf("expected the region registry to be reused for an unchanged radius")
	}
}

func TestTickRebuildsWhenRadiusChanges(t *testing.T) {
	c := New(emptyMap())
	c.SetTree(behavior.NewConstant(behavior.Success))
	self := &game.Player{ID: 1, Position: mgl32.Vec2{5.5, 5.5}, Synchronized: true}
	snap := &game.Snapshot{Self: self, Players: []*game.Player{self}}
	out := newFakeOutput()

	c.Tick(snap, 0, Config{ShipRadius: 0.3}, out)
	firstRegions := c.regions
	c.Tick(snap, 0, Config{ShipRadius: 0.6}, out)
	if c.regions == firstRegions {
		t.Fatalf("expected a new region registry after the radius changed")
	}
}

func TestTickWithNilSelfDoesNotPanic(t *testing.T) {
	c := New(emptyMap())
	c.SetTree(behavior.NewConstant(behavior.Success))
	snap := &game.Snapshot{}
	c.Tick(snap, 0, Config{ShipRadius: 0.3}, newFakeOutput())
}
