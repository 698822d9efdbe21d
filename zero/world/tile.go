// Package world implements C1 (MapView): a read-only adapter over the
// static 1024x1024 tile grid plus the dynamic brick overlay, exposing the
// collision/traversal primitives every higher layer (region, path,
// behavior) expresses its queries in terms of.
package world

// Size is the fixed map dimension in both axes.
const Size = 1024

// TileID is the small enumeration of tile contents.
type TileID uint8

const (
	Empty TileID = iota
	Solid
	Door
	Safe
	Goal
	FlagTile
	Brick
)

// Passable reports whether, ignoring door/frequency resolution, the raw
// tile content is something an agent could ever stand on.
func (t TileID) Passable() bool {
	return t == Empty || t == Safe || t == Goal || t == FlagTile || t == Door
}

// OccupyRect is the tight tile-aligned bounding box an agent's collision
// footprint would cover when centered at some position.
type OccupyRect struct {
	MinX, MinY, MaxX, MaxY int
}

// Contains reports whether (x, y) lies within the rect, inclusive.
func (r OccupyRect) Contains(x, y int) bool {
	return x >= r.MinX && x <= r.MaxX && y >= r.MinY && y <= r.MaxY
}

// Width and Height return the tile span of the rect.
func (r OccupyRect) Width() int  { return r.MaxX - r.MinX + 1 }
func (r OccupyRect) Height() int { return r.MaxY - r.MinY + 1 }
