package world

import (
	"math"

	"github.com/dm-vev/zerobot/zero/game"
	"github.com/go-gl/mathgl/mgl32"
)

// CastResult is the outcome of a line-of-sight query.
type CastResult struct {
	Hit      bool
	Position mgl32.Vec2
}

// CastTo marches from "from" to "to" in half-tile steps, the tile-grid
// analogue of a supercover line, and reports the first solid tile crossed,
// resolving door state for frequency. If nothing blocks the line, Hit is
// false and Position is "to".
func (m *Map) CastTo(from, to mgl32.Vec2, frequency uint16, now game.Tick) CastResult {
	delta := to.Sub(from)
	dist := delta.Len()
	if dist == 0 {
		if m.IsSolid(int(math.Floor(float64(from.X()))), int(math.Floor(float64(from.Y()))), frequency, now) {
			return CastResult{Hit: true, Position: from}
		}
		return CastResult{Hit: false, Position: to}
	}

	dir := delta.Normalize()
	const step = 0.5
	steps := int(math.Ceil(float64(dist / step)))

	lastTX, lastTY := math.MinInt, math.MinInt
	for i := 0; i <= steps; i++ {
		travelled := float32(math.Min(float64(step)*float64(i), float64(dist)))
		p := from.Add(dir.Mul(travelled))
		tx, ty := int(math.Floor(float64(p.X()))), int(math.Floor(float64(p.Y())))
		if tx == lastTX && ty == lastTY {
			continue
		}
		lastTX, lastTY = tx, ty
		if m.IsSolid(tx, ty, frequency, now) {
			return CastResult{Hit: true, Position: p}
		}
	}
	return CastResult{Hit: false, Position: to}
}
