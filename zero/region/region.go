// Package region implements C2 (RegionRegistry): a flood-fill partition of
// the static map into connectivity components for a given ship collision
// radius, answering "are A and B reachable?" in O(1) after the build.
package region

import (
	"math"

	"github.com/dm-vev/zerobot/zero/game"
	"github.com/dm-vev/zerobot/zero/world"
	"github.com/go-gl/mathgl/mgl32"
)

// Index identifies a connected region. Undefined means "not yet assigned".
type Index uint32

// Undefined is the sentinel meaning a tile has no region for the current
// radius (e.g. it's solid, or unreachable for an agent that size).
const Undefined Index = math.MaxUint32

// Registry partitions the map's empty space into regions for one ship
// collision radius. Building is synchronous; callers must not query while a
// build is in progress (see SPEC_FULL.md §5).
type Registry struct {
	m      *world.Map
	radius float32
	freq   uint16
	now    game.Tick

	region    []Index // flat, Size*Size
	tileCount map[Index]int
	highest   map[Index][2]int // northernmost tile visited per region, row-major "highest" = smallest y then x
}

const allTeams = uint16(0xFFFF)

// CreateAll builds the full partition for m at the given radius. Region
// membership uses the public frequency 0xFFFF so that team-specific doors
// never influence connectivity (matching spec §4.2: FillEmpty uses
// frequency 0xFFFF universally).
func CreateAll(m *world.Map, radius float32, now game.Tick) *Registry {
	r := &Registry{
		m:         m,
		radius:    radius,
		freq:      allTeams,
		now:       now,
		region:    make([]Index, world.Size*world.Size),
		tileCount: make(map[Index]int),
		highest:   make(map[Index][2]int),
	}
	for i := range r.region {
		r.region[i] = Undefined
	}

	var next Index
	stack := make([][2]int, 0, 1024)
	for y := 0; y < world.Size; y++ {
		for x := 0; x < world.Size; x++ {
			if r.region[idx(x, y)] != Undefined {
				continue
			}
			pos := tileCenter(x, y)
			if !m.CanOverlapTile(pos, radius, allTeams, now) {
				continue
			}
			r.fillEmpty(x, y, next, stack[:0])
			next++
		}
	}
	return r
}

func idx(x, y int) int { return y*world.Size + x }

func tileCenter(x, y int) mgl32.Vec2 {
	return mgl32.Vec2{float32(x) + 0.5, float32(y) + 0.5}
}

var neighborOffsets4 = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// fillEmpty performs the 4-neighbor BFS seeding a single region, using an
// explicit LIFO stack rather than recursion so the depth of a large open
// region never threatens the goroutine stack. stack is reused across calls
// by the caller to avoid repeated allocation.
func (r *Registry) fillEmpty(seedX, seedY int, region Index, stack [][2]int) {
	stack = append(stack, [2]int{seedX, seedY})
	r.region[idx(seedX, seedY)] = region
	count := 0
	highestX, highestY := seedX, seedY

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		x, y := cur[0], cur[1]
		count++
		if y < highestY || (y == highestY && x < highestX) {
			highestX, highestY = x, y
		}

		fromCenter := tileCenter(x, y)
		for _, off := range neighborOffsets4 {
			nx, ny := x+off[0], y+off[1]
			if nx < 0 || nx >= world.Size || ny < 0 || ny >= world.Size {
				continue
			}
			if r.region[idx(nx, ny)] != Undefined {
				continue
			}
			toCenter := tileCenter(nx, ny)
			if !r.m.CanTraverse(fromCenter, toCenter, r.radius, allTeams, r.now) {
				continue
			}
			r.region[idx(nx, ny)] = region
			stack = append(stack, [2]int{nx, ny})
		}
	}
	r.tileCount[region] = count
	r.highest[region] = [2]int{highestX, highestY}
}

// RegionAt returns the region index tile (x, y) belongs to, or Undefined if
// out of bounds or unreachable for this registry's radius.
func (r *Registry) RegionAt(x, y int) Index {
	if x < 0 || x >= world.Size || y < 0 || y >= world.Size {
		return Undefined
	}
	return r.region[idx(x, y)]
}

// IsConnected reports whether both positions are valid and share the same
// non-undefined region.
func (r *Registry) IsConnected(ax, ay, bx, by int) bool {
	ra := r.RegionAt(ax, ay)
	if ra == Undefined {
		return false
	}
	return ra == r.RegionAt(bx, by)
}

// GetTileCount returns the number of empty tiles assigned to region.
func (r *Registry) GetTileCount(region Index) int {
	return r.tileCount[region]
}

// RegionCount returns how many distinct regions this registry produced.
func (r *Registry) RegionCount() int {
	return len(r.tileCount)
}

// Radius returns the ship collision radius this registry was built for.
func (r *Registry) Radius() float32 { return r.radius }
