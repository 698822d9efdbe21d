package world

import (
	"math"

	"github.com/dm-vev/zerobot/zero/event"
	"github.com/dm-vev/zerobot/zero/game"
	"github.com/go-gl/mathgl/mgl32"
)

// doorKey packs a tile coordinate into a single map key for the door-owner
// table, which is sparse (most tiles aren't doors).
type doorKey uint32

func newDoorKey(x, y int) doorKey {
	return doorKey(uint32(x)<<16 | uint32(y&0xFFFF))
}

// Map is the static 1024x1024 tile grid plus the dynamic brick overlay. It
// is immutable after load except for the overlay, matching the lifecycle
// described in SPEC_FULL.md §3.
type Map struct {
	name  string
	tiles []TileID // flat, row-major, Size*Size

	doorOwner map[doorKey]uint16 // tile -> owning frequency; absent means public door
	doorOpen  bool                // global toggle for public doors

	bricks *brickOverlay
	bus    *event.Bus
}

// New builds a Map from a flat row-major tile buffer. The buffer must have
// exactly Size*Size entries; a shorter buffer is padded with Solid tiles and
// a longer one is truncated, so a caller that gets the size wrong fails
// loud in tests rather than panicking in the field.
func New(name string, tiles []TileID, bus *event.Bus) *Map {
	buf := make([]TileID, Size*Size)
	n := copy(buf, tiles)
	for i := n; i < len(buf); i++ {
		buf[i] = Solid
	}
	m := &Map{
		name:      name,
		tiles:     buf,
		doorOwner: make(map[doorKey]uint16),
		bricks:    newBrickOverlay(),
		bus:       bus,
	}
	if bus != nil {
		event.Dispatch(bus, event.MapBuilt{Map: m})
	}
	return m
}

// Name returns the map's identifying name (used for cache-key purposes).
func (m *Map) Name() string { return m.name }

func inBounds(x, y int) bool {
	return x >= 0 && x < Size && y >= 0 && y < Size
}

func idx(x, y int) int { return y*Size + x }

// GetTileId returns the raw tile content at (x, y). Out-of-bounds reads
// return Solid, matching the "failures are false, never exceptions" policy
// in spec §4.1.
func (m *Map) GetTileId(x, y int) TileID {
	if !inBounds(x, y) {
		return Solid
	}
	return m.tiles[idx(x, y)]
}

// SetDoorOwner marks the door tile at (x, y) as belonging to frequency,
// meaning it never blocks members of that team regardless of the public
// toggle state. Called during map load from door-zone metadata; out of
// scope for this module to parse itself.
func (m *Map) SetDoorOwner(x, y int, frequency uint16) {
	m.doorOwner[newDoorKey(x, y)] = frequency
}

// SetDoorOpen toggles the public door state. Team-owned doors set via
// SetDoorOwner are unaffected.
func (m *Map) SetDoorOpen(open bool) {
	m.doorOpen = open
}

// Tick advances the brick overlay's notion of "now"; bricks whose lifetime
// elapsed stop blocking on the next query automatically, so this mostly
// exists to give the brick overlay a consistent single source of time.
func (m *Map) Tick(now game.Tick) {
	_ = now // overlay expiry is evaluated lazily in brickOverlay.Active
}

// AddBrick lays a brick at (x, y) that blocks until expiresAt and publishes
// a BrickLaid event.
func (m *Map) AddBrick(x, y int, frequency uint16, expiresAt game.Tick) {
	m.bricks.Add(x, y, expiresAt)
	if m.bus != nil {
		event.Dispatch(m.bus, event.BrickLaid{X: x, Y: y, Frequency: frequency, ExpiresAt: expiresAt})
	}
}

// RemoveBrick clears a brick before its natural expiry.
func (m *Map) RemoveBrick(x, y int) {
	m.bricks.Remove(x, y)
}

// IsSolid reports whether (x, y) blocks movement for a player on the given
// team, resolving door state and the active brick overlay. now is the
// current tick, used to evaluate brick expiry.
func (m *Map) IsSolid(x, y int, frequency uint16, now game.Tick) bool {
	if !inBounds(x, y) {
		return true
	}
	if m.bricks.Active(x, y, now) {
		return true
	}
	switch m.GetTileId(x, y) {
	case Solid:
		return true
	case Door:
		if owner, ok := m.doorOwner[newDoorKey(x, y)]; ok {
			return owner != frequency
		}
		return !m.doorOpen
	default:
		return false
	}
}

// IsSafe reports whether the tile is a safe zone.
func (m *Map) IsSafe(x, y int) bool {
	return m.GetTileId(x, y) == Safe
}

// GetPossibleOccupyRect returns the tight tile bounds an agent's square
// collision footprint of the given radius would cover when centered at pos.
// Radius is expressed in tiles (fractional radii round outward).
func (m *Map) GetPossibleOccupyRect(pos mgl32.Vec2, radius float32) OccupyRect {
	minX := int(math.Floor(float64(pos.X() - radius)))
	minY := int(math.Floor(float64(pos.Y() - radius)))
	maxX := int(math.Floor(float64(pos.X() + radius)))
	maxY := int(math.Floor(float64(pos.Y() + radius)))
	return OccupyRect{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}
}

// CanOverlapTile reports whether the single tile at pos (rounded to its
// containing tile) could ever be part of an agent's footprint at all — a
// cheap pre-filter used by RegionRegistry before the full swept check.
func (m *Map) CanOverlapTile(pos mgl32.Vec2, radius float32, frequency uint16, now game.Tick) bool {
	x, y := int(math.Floor(float64(pos.X()))), int(math.Floor(float64(pos.Y())))
	return !m.IsSolid(x, y, frequency, now)
}

// CanOccupyRadius reports whether an agent of the given radius may stand at
// pos: every tile in its footprint rect must be passable.
func (m *Map) CanOccupyRadius(pos mgl32.Vec2, radius float32, frequency uint16, now game.Tick) bool {
	rect := m.GetPossibleOccupyRect(pos, radius)
	for y := rect.MinY; y <= rect.MaxY; y++ {
		for x := rect.MinX; x <= rect.MaxX; x++ {
			if m.IsSolid(x, y, frequency, now) {
				return false
			}
		}
	}
	return true
}

// CanOccupyAxis reports whether shifting rect by (dx, dy) along a single
// axis keeps every newly covered tile passable. Used by NodeProcessor to
// reject diagonal corner-cutting: a diagonal step is only legal if both of
// its cardinal components are independently legal.
func (m *Map) CanOccupyAxis(rect OccupyRect, dx, dy int, frequency uint16, now game.Tick) bool {
	shifted := OccupyRect{MinX: rect.MinX + dx, MinY: rect.MinY + dy, MaxX: rect.MaxX + dx, MaxY: rect.MaxY + dy}
	for y := shifted.MinY; y <= shifted.MaxY; y++ {
		for x := shifted.MinX; x <= shifted.MaxX; x++ {
			if m.IsSolid(x, y, frequency, now) {
				return false
			}
		}
	}
	return true
}

// CanTraverse performs a swept check from "from" to an adjacent "to"
// position: every tile either endpoint's footprint would occupy, plus the
// footprints at intermediate points sampled at most half a tile apart, must
// be passable.
func (m *Map) CanTraverse(from, to mgl32.Vec2, radius float32, frequency uint16, now game.Tick) bool {
	if !m.CanOccupyRadius(from, radius, frequency, now) {
		return false
	}
	if !m.CanOccupyRadius(to, radius, frequency, now) {
		return false
	}
	steps := int(math.Ceil(float64(to.Sub(from).Len())*2)) + 1
	for i := 1; i < steps; i++ {
		t := float32(i) / float32(steps)
		p := from.Add(to.Sub(from).Mul(t))
		if !m.CanOccupyRadius(p, radius, frequency, now) {
			return false
		}
	}
	return true
}
