package path

import (
	"github.com/dm-vev/zerobot/zero/game"
	"github.com/dm-vev/zerobot/zero/world"
	"github.com/go-gl/mathgl/mgl32"
)

// wallSearchWindow bounds how far CreateMapWeights looks for the nearest
// solid tile when shaping the wall-distance weight. A small window keeps
// the O(Size^2 * window^2) precompute cheap while still biasing paths away
// from corridors that hug a wall.
const wallSearchWindow = 5

// CreateMapWeights computes, once per radius, the per-tile wall-distance
// weight and Traversable flag NodeProcessor.FindEdges consults. Weight
// decreases (approaches 1.0) the farther a tile is from the nearest solid
// tile within wallSearchWindow, and is elevated near walls so the A* driver
// prefers open corridors over wall-hugging shortcuts.
func (np *NodeProcessor) CreateMapWeights(radius float32, frequency uint16, now game.Tick) {
	for y := 0; y < world.Size; y++ {
		for x := 0; x < world.Size; x++ {
			i := flatIndex(x, y)
			if np.m.IsSolid(x, y, frequency, now) {
				np.weight[i] = posInf
				np.traversable[i] = false
				continue
			}

			d := distanceToNearestSolid(np.m, x, y, frequency, now, wallSearchWindow)
			np.weight[i] = wallDistanceWeight(d)

			rect := np.m.GetPossibleOccupyRect(mgl32.Vec2{float32(x) + 0.5, float32(y) + 0.5}, radius)
			np.traversable[i] = rectFullyTraversable(np.m, rect, frequency, now)
		}
	}
}

// wallDistanceWeight maps a Chebyshev distance-to-wall to a step weight:
// 1.0 three or more tiles from any wall, 1.5 at two tiles, 2.5 directly
// adjacent, and 4.0 for a distance of zero or less.
func wallDistanceWeight(dist int) float32 {
	switch {
	case dist <= 0:
		return 4.0
	case dist == 1:
		return 2.5
	case dist == 2:
		return 1.5
	default:
		return 1.0
	}
}

// distanceToNearestSolid returns the Chebyshev distance from (x, y) to the
// closest solid tile within window tiles, or window+1 if none is found
// (treated as "far from any wall").
func distanceToNearestSolid(m *world.Map, x, y int, frequency uint16, now game.Tick, window int) int {
	for d := 1; d <= window; d++ {
		for dy := -d; dy <= d; dy++ {
			for dx := -d; dx <= d; dx++ {
				if abs(dx) != d && abs(dy) != d {
					continue // only examine the ring at exactly Chebyshev distance d
				}
				if m.IsSolid(x+dx, y+dy, frequency, now) {
					return d
				}
			}
		}
	}
	return window + 1
}

func rectFullyTraversable(m *world.Map, rect world.OccupyRect, frequency uint16, now game.Tick) bool {
	for y := rect.MinY; y <= rect.MaxY; y++ {
		for x := rect.MinX; x <= rect.MaxX; x++ {
			if m.IsSolid(x, y, frequency, now) {
				return false
			}
		}
	}
	return true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
