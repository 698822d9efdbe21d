package path

import (
	"math"

	"github.com/dm-vev/zerobot/zero/game"
	"github.com/dm-vev/zerobot/zero/region"
	"github.com/dm-vev/zerobot/zero/world"
	"github.com/go-gl/mathgl/mgl32"
)

// Pathfinder drives A* searches over a NodeProcessor, optionally gated by a
// RegionRegistry to fail fast when start and goal aren't reachable at all.
type Pathfinder struct {
	m      *world.Map
	np     *NodeProcessor
	radius float32
}

// NewPathfinder builds the static map-weight field for radius and returns a
// Pathfinder ready to search it.
func NewPathfinder(m *world.Map, radius float32, frequency uint16, now game.Tick) *Pathfinder {
	np := NewNodeProcessor(m)
	np.CreateMapWeights(radius, frequency, now)
	return &Pathfinder{m: m, np: np, radius: radius}
}

// Processor exposes the underlying NodeProcessor, e.g. for tests asserting
// on FindEdges directly.
func (pf *Pathfinder) Processor() *NodeProcessor { return pf.np }

// Radius returns the ship collision radius this Pathfinder was built for.
func (pf *Pathfinder) Radius() float32 { return pf.radius }

func tileOf(p mgl32.Vec2) (int, int) {
	return int(math.Floor(float64(p.X()))), int(math.Floor(float64(p.Y())))
}

func tileCenter(x, y int) mgl32.Vec2 {
	return mgl32.Vec2{float32(x) + 0.5, float32(y) + 0.5}
}

// octile is the diagonal-distance heuristic: moving diagonally costs √2,
// cardinally costs 1, so the heuristic takes the cheaper of the two
// decompositions of the tile-space offset.
func octile(ax, ay, bx, by int) float32 {
	dx := math.Abs(float64(ax - bx))
	dy := math.Abs(float64(ay - by))
	lo, hi := dx, dy
	if lo > hi {
		lo, hi = hi, lo
	}
	return float32(sqrt2*lo + (hi - lo))
}

// FindPath searches from "from" to "to" for an agent of radius pf.Radius()
// on team frequency, at tick now. If reg is non-nil and reports the two
// endpoints aren't in the same region, FindPath returns an empty Path
// immediately without searching (spec §4.4 step 1). The caller is
// responsible for rebuilding the NodeProcessor's weight field (via
// NewPathfinder or CreateMapWeights) whenever the radius changes.
func (pf *Pathfinder) FindPath(reg *region.Registry, from, to mgl32.Vec2, frequency uint16, now game.Tick) Path {
	fx, fy := tileOf(from)
	tx, ty := tileOf(to)

	if fx < 0 || fx >= world.Size || fy < 0 || fy >= world.Size {
		return NewPath(nil)
	}
	if tx < 0 || tx >= world.Size || ty < 0 || ty >= world.Size {
		return NewPath(nil)
	}
	if reg != nil && !reg.IsConnected(fx, fy, tx, ty) {
		return NewPath(nil)
	}

	pf.np.ResetTouched()

	startIdx := flatIndex(fx, fy)
	goalIdx := flatIndex(tx, ty)

	open := newOpenSet()
	start := pf.np.GetNode(startIdx)
	start.G = 0
	start.F = octile(fx, fy, tx, ty)
	start.Flags |= flagOpenset
	open.push(startIdx, start.F)

	if startIdx == goalIdx {
		return NewPath([]mgl32.Vec2{tileCenter(fx, fy)})
	}

	for !open.empty() {
		curIdx, _ := open.pop()
		cur := pf.np.GetNode(curIdx)
		if cur.closed() {
			continue // stale heap entry from a since-improved g
		}
		cur.Flags &^= flagOpenset
		cur.Flags |= flagClosed

		if curIdx == goalIdx {
			return NewPath(smooth(pf.reconstruct(curIdx)))
		}

		cx, cy := tileXY(curIdx)
		for _, edge := range pf.np.FindEdges(cx, cy, pf.radius, frequency, now) {
			ni := flatIndex(edge.X, edge.Y)
			neighbor := pf.np.GetNode(ni)
			if neighbor.closed() {
				continue
			}
			tentativeG := cur.G + edge.Cost
			if tentativeG >= neighbor.G {
				continue
			}
			neighbor.Parent = int32(curIdx)
			neighbor.G = tentativeG
			neighbor.F = tentativeG + octile(edge.X, edge.Y, tx, ty)
			neighbor.Flags |= flagOpenset
			open.push(ni, neighbor.F)
		}
	}

	return NewPath(nil) // open set exhausted without reaching the goal
}

// reconstruct walks parent pointers from goalIdx back to the start,
// returning tile-centered points in start-to-goal order.
func (pf *Pathfinder) reconstruct(goalIdx int) []mgl32.Vec2 {
	var reversed []mgl32.Vec2
	i := goalIdx
	for {
		x, y := tileXY(i)
		reversed = append(reversed, tileCenter(x, y))
		n := pf.np.GetNode(i)
		if n.Parent == noParent {
			break
		}
		i = int(n.Parent)
	}
	for l, r := 0, len(reversed)-1; l < r; l, r = l+1, r-1 {
		reversed[l], reversed[r] = reversed[r], reversed[l]
	}
	return reversed
}

// smooth collapses runs of collinear points so that long straight or
// diagonal stretches are represented by their endpoints only; the cursor
// still advances one waypoint at a time, so this only reduces how many
// Advance calls a straight corridor needs.
func smooth(points []mgl32.Vec2) []mgl32.Vec2 {
	if len(points) < 3 {
		return points
	}
	out := make([]mgl32.Vec2, 0, len(points))
	out = append(out, points[0])
	for i := 1; i < len(points)-1; i++ {
		prevDir := points[i].Sub(points[i-1])
		nextDir := points[i+1].Sub(points[i])
		if !sameDirection(prevDir, nextDir) {
			out = append(out, points[i])
		}
	}
	out = append(out, points[len(points)-1])
	return out
}

func sameDirection(a, b mgl32.Vec2) bool {
	const eps = 1e-4
	an, bn := a.Normalize(), b.Normalize()
	return an.Sub(bn).Len() < eps
}
