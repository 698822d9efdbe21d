// Package path implements C3 (NodeProcessor) and C4 (Pathfinder): per-tile
// A* bookkeeping, ship-aware edge enumeration, and the A* driver that turns
// a start/goal pair into a smoothed, waypoint-followable Path.
package path

import "github.com/dm-vev/zerobot/zero/world"

// nodeFlag bits track per-search A* bookkeeping. The Traversable notion
// lives outside Node (see NodeProcessor.traversable) since it's computed
// once by map preprocessing and must survive node resets between searches.
type nodeFlag uint8

const (
	flagInitialized nodeFlag = 1 << iota
	flagOpenset
	flagClosed
)

// noParent marks a node with no parent (the start node, or an
// uninitialized node).
const noParent int32 = -1

// Node is one tile's A* bookkeeping record. Nodes are lazily initialized on
// first touch per search by NodeProcessor.GetNode.
type Node struct {
	Parent int32 // flat tile index, or noParent
	G, F   float32
	Flags  nodeFlag
}

func (n *Node) initialized() bool { return n.Flags&flagInitialized != 0 }
func (n *Node) openset() bool     { return n.Flags&flagOpenset != 0 }
func (n *Node) closed() bool      { return n.Flags&flagClosed != 0 }

func flatIndex(x, y int) int { return y*world.Size + x }

func tileXY(i int) (int, int) { return i % world.Size, i / world.Size }
