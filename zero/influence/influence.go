// Package influence implements C6: a dense scalar field over the tile grid
// used to mark areas of interest (recent damage, enemy sightings, chokepoint
// pressure) that decay back to zero over time if nothing refreshes them.
package influence

import "github.com/dm-vev/zerobot/zero/world"

// Map is a Size*Size grid of float32 influence values, indexed row-major
// the same way world.Map indexes tiles.
type Map struct {
	values []float32
}

// New allocates a zeroed influence field.
func New() *Map {
	return &Map{values: make([]float32, world.Size*world.Size)}
}

func index(x, y int) (int, bool) {
	if x < 0 || x >= world.Size || y < 0 || y >= world.Size {
		return 0, false
	}
	return y*world.Size + x, true
}

// AddValue accumulates delta onto the existing value at (x, y). Out-of-bounds
// coordinates are silently ignored, matching the rest of the core's
// tolerance for callers that don't pre-clamp.
func (m *Map) AddValue(x, y int, delta float32) {
	if i, ok := index(x, y); ok {
		m.values[i] += delta
	}
}

// SetValue overwrites the value at (x, y).
func (m *Map) SetValue(x, y int, value float32) {
	if i, ok := index(x, y); ok {
		m.values[i] = value
	}
}

// GetValue returns the value at (x, y), or 0 for out-of-bounds coordinates.
func (m *Map) GetValue(x, y int) float32 {
	i, ok := index(x, y)
	if !ok {
		return 0
	}
	return m.values[i]
}

// Update applies leaky decay to every cell: each value moves toward zero by
// up to rate*dt per call, never crossing zero in either direction.
func (m *Map) Update(dt, rate float32) {
	step := rate * dt
	if step <= 0 {
		return
	}
	for i, v := range m.values {
		switch {
		case v > 0:
			m.values[i] = max32(0, v-step)
		case v < 0:
			m.values[i] = min32(0, v+step)
		}
	}
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}
