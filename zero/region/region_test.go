package region

import (
	"testing"

	"github.com/dm-vev/zerobot/zero/event"
	"github.com/dm-vev/zerobot/zero/world"
)

// buildIsolatedMap returns a map that is entirely solid except for two
// disjoint 3x3 empty blocks, matching spec.md §8 scenario 1.
func buildIsolatedMap(t *testing.T) *world.Map {
	t.Helper()
	tiles := make([]world.TileID, world.Size*world.Size)
	for i := range tiles {
		tiles[i] = world.Solid
	}
	openBlock := func(x0, y0 int) {
		for y := y0; y < y0+3; y++ {
			for x := x0; x < x0+3; x++ {
				tiles[y*world.Size+x] = world.Empty
			}
		}
	}
	openBlock(10, 10)
	openBlock(100, 100)
	return world.New("isolation-test", tiles, event.New())
}

func TestRegionIsolation(t *testing.T) {
	m := buildIsolatedMap(t)
	reg := CreateAll(m, 0.4, 0)

	if !reg.IsConnected(11, 11, 11, 11) {
		t.Fatalf("expected (11,11) connected to itself")
	}
	if reg.IsConnected(11, 11, 101, 101) {
		t.Fatalf("expected (11,11) and (101,101) to be in different regions")
	}

	nineTileRegions := 0
	seen := map[Index]bool{}
	for y := 0; y < world.Size; y++ {
		for x := 0; x < world.Size; x++ {
			r := reg.RegionAt(x, y)
			if r == Undefined || seen[r] {
				continue
			}
			seen[r] = true
			if reg.GetTileCount(r) == 9 {
				nineTileRegions++
			}
		}
	}
	if nineTileRegions != 2 {
		t.Fatalf("expected exactly 2 regions of 9 tiles, got %d", nineTileRegions)
	}
}

func TestRegionUndefinedOutOfBounds(t *testing.T) {
	m := buildIsolatedMap(t)
	reg := CreateAll(m, 0.4, 0)
	if reg.RegionAt(-1, 0) != Undefined {
		t.Fatalf("expected out-of-bounds tile to report Undefined")
	}
	if reg.IsConnected(-1, 0, 11, 11) {
		t.Fatalf("out-of-bounds tile must never be connected")
	}
}
