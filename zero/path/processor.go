package path

import (
	"github.com/dm-vev/zerobot/zero/game"
	"github.com/dm-vev/zerobot/zero/world"
	"github.com/go-gl/mathgl/mgl32"
)

// NodeProcessor owns the flat 1024x1024 Node array and the per-tile weight
// and traversability fields computed once per radius by
// Pathfinder.CreateMapWeights. Nodes are single-writer: only the Pathfinder
// driving a search may touch them (spec §5).
type NodeProcessor struct {
	m *world.Map

	nodes       []Node    // Size*Size, lazily initialized per search
	weight      []float32 // Size*Size, set by CreateMapWeights
	traversable []bool    // Size*Size, set by CreateMapWeights

	touched []int // indices touched this search; used to reset cheaply
}

// NewNodeProcessor returns a processor bound to m. Call CreateMapWeights (or
// have the Pathfinder do so) before the first FindPath for a given radius.
func NewNodeProcessor(m *world.Map) *NodeProcessor {
	n := world.Size * world.Size
	return &NodeProcessor{
		m:           m,
		nodes:       make([]Node, n),
		weight:      make([]float32, n),
		traversable: make([]bool, n),
	}
}

// GetNode returns the node at the flat index, initializing it on first
// touch this search. Only Traversable-independent fields are reset; weight
// and traversable survive untouched since they belong to the map-weight
// field, not the per-search Node.
func (np *NodeProcessor) GetNode(i int) *Node {
	n := &np.nodes[i]
	if !n.initialized() {
		*n = Node{Parent: noParent, G: posInf, F: posInf, Flags: flagInitialized}
		np.touched = append(np.touched, i)
	}
	return n
}

// ResetTouched clears every node touched since the last reset, leaving the
// weight/traversable fields untouched. O(nodes touched), not O(Size^2).
func (np *NodeProcessor) ResetTouched() {
	for _, i := range np.touched {
		np.nodes[i] = Node{}
	}
	np.touched = np.touched[:0]
}

// Traversable reports whether the tile at the flat index was marked
// traversable by the last CreateMapWeights call.
func (np *NodeProcessor) Traversable(i int) bool { return np.traversable[i] }

// Weight returns the tile's static map weight.
func (np *NodeProcessor) Weight(i int) float32 { return np.weight[i] }

// Edge is a candidate move out of a tile, with the step cost already
// incorporating the neighbor's weight and the diagonal √2 multiplier.
type Edge struct {
	X, Y int
	Cost float32
}

const safeWeight = 10.0

var neighborOffsets8 = [8][2]int{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
}

// FindEdges enumerates up to 8 neighbors of (x, y) for an agent of the
// given radius, applying ship-aware traversal rules: diagonals require both
// cardinal components to be independently clear (no corner-cutting), and a
// neighbor on a safe tile has its step weight raised to discourage planning
// into safety-stalemates.
func (np *NodeProcessor) FindEdges(x, y int, radius float32, frequency uint16, now game.Tick) []Edge {
	rect := np.m.GetPossibleOccupyRect(mgl32.Vec2{float32(x) + 0.5, float32(y) + 0.5}, radius)
	edges := make([]Edge, 0, 8)

	for _, off := range neighborOffsets8 {
		dx, dy := off[0], off[1]
		nx, ny := x+dx, y+dy
		if nx < 0 || nx >= world.Size || ny < 0 || ny >= world.Size {
			continue
		}
		diagonal := dx != 0 && dy != 0
		if diagonal {
			if !np.m.CanOccupyAxis(rect, dx, 0, frequency, now) || !np.m.CanOccupyAxis(rect, 0, dy, frequency, now) {
				continue
			}
		} else {
			if !np.m.CanOccupyAxis(rect, dx, dy, frequency, now) {
				continue
			}
		}

		ni := flatIndex(nx, ny)
		if !np.traversable[ni] {
			continue
		}

		w := np.weight[ni]
		if np.m.IsSafe(nx, ny) {
			w = safeWeight
		}

		base := float32(1.0)
		if diagonal {
			base = sqrt2
		}
		edges = append(edges, Edge{X: nx, Y: ny, Cost: base * w})
	}
	return edges
}

const sqrt2 = 1.4142135
const posInf = float32(3.4e38)
