package path

import (
	"testing"

	"github.com/dm-vev/zerobot/zero/event"
	"github.com/dm-vev/zerobot/zero/region"
	"github.com/dm-vev/zerobot/zero/world"
	"github.com/go-gl/mathgl/mgl32"
)

func allEmptyMap(t *testing.T) *world.Map {
	t.Helper()
	tiles := make([]world.TileID, world.Size*world.Size)
	return world.New("empty", tiles, event.New())
}

func TestFindPathStraightLine(t *testing.T) {
	m := allEmptyMap(t)
	pf := NewPathfinder(m, 0.3, 0xFFFF, 0)

	p := pf.FindPath(nil, mgl32.Vec2{5.5, 5.5}, mgl32.Vec2{5.5, 20.5}, 0xFFFF, 0)
	if p.Empty() {
		t.Fatalf("expected a path on an empty map")
	}
	pts := p.Points()
	first := pts[0]
	last := pts[len(pts)-1]
	if int(first.X()) != 5 || int(first.Y()) != 5 {
		t.Fatalf("expected path to start at (5,5), got %v", first)
	}
	if int(last.X()) != 5 || int(last.Y()) != 20 {
		t.Fatalf("expected path to end at (5,20), got %v", last)
	}
	for _, pt := range pts {
		if int(pt.X()) != 5 {
			t.Fatalf("expected straight vertical path, got x=%v", pt.X())
		}
	}
}

func TestFindPathRoutesAroundWall(t *testing.T) {
	tiles := make([]world.TileID, world.Size*world.Size)
	for y := 0; y <= 15; y++ {
		tiles[y*world.Size+10] = world.Solid
	}
	m := world.New("wall", tiles, event.New())
	pf := NewPathfinder(m, 0.3, 0xFFFF, 0)

	p := pf.FindPath(nil, mgl32.Vec2{5.5, 5.5}, mgl32.Vec2{15.5, 5.5}, 0xFFFF, 0)
	if p.Empty() {
		t.Fatalf("expected a path routing around the wall")
	}
	for _, pt := range p.Points() {
		if int(pt.X()) == 10 && int(pt.Y()) <= 15 {
			t.Fatalf("path crossed the wall at %v", pt)
		}
	}
	if p.Len() < 10 {
		t.Fatalf("expected the detour to exceed 10 tiles, got %d points", p.Len())
	}
}

func TestFindPathDifferentRegionsReturnsEmpty(t *testing.T) {
	tiles := make([]world.TileID, world.Size*world.Size)
	for i := range tiles {
		tiles[i] = world.Solid
	}
	open := func(x0, y0 int) {
		for y := y0; y < y0+3; y++ {
			for x := x0; x < x0+3; x++ {
				tiles[y*world.Size+x] = world.Empty
			}
		}
	}
	open(10, 10)
	open(100, 100)
	m := world.New("isolated", tiles, event.New())
	pf := NewPathfinder(m, 0.3, 0xFFFF, 0)

	regReg := region.CreateAll(m, 0.3, 0)
	p := pf.FindPath(regReg, mgl32.Vec2{11.5, 11.5}, mgl32.Vec2{101.5, 101.5}, 0xFFFF, 0)
	if !p.Empty() {
		t.Fatalf("expected empty path across disconnected regions")
	}
}

func TestPathAdvanceIdempotentPastEnd(t *testing.T) {
	p := NewPath([]mgl32.Vec2{{0, 0}, {1, 0}, {2, 0}})
	for i := 0; i < 10; i++ {
		p.Advance()
	}
	if !p.IsDone() {
		t.Fatalf("expected path to be done")
	}
	if p.GetCurrent() != p.GetGoal() {
		t.Fatalf("expected GetCurrent to stably equal GetGoal past the end")
	}
}
