package path

import "github.com/go-gl/mathgl/mgl32"

// Path is an immutable ordered sequence of tile-centered points plus a
// cursor into it. Once built, the point sequence never changes; only the
// cursor advances (spec §3).
type Path struct {
	points []mgl32.Vec2
	cursor int
}

// NewPath wraps a point sequence. An empty points slice is a valid "no
// path found" result.
func NewPath(points []mgl32.Vec2) Path {
	return Path{points: points}
}

// Empty reports whether the path carries no points at all (the Pathfinder
// failure-mode result).
func (p Path) Empty() bool { return len(p.points) == 0 }

// Len returns the number of points in the path.
func (p Path) Len() int { return len(p.points) }

// Points returns the immutable backing slice; callers must not mutate it.
func (p Path) Points() []mgl32.Vec2 { return p.points }

// GetCurrent returns the point the cursor currently references. If the
// cursor has advanced past the end, it stably returns the goal (the last
// point), matching the idempotence property required of Advance.
func (p Path) GetCurrent() mgl32.Vec2 {
	if len(p.points) == 0 {
		return mgl32.Vec2{}
	}
	if p.cursor >= len(p.points) {
		return p.points[len(p.points)-1]
	}
	return p.points[p.cursor]
}

// GetGoal returns the final point of the path.
func (p Path) GetGoal() mgl32.Vec2 {
	if len(p.points) == 0 {
		return mgl32.Vec2{}
	}
	return p.points[len(p.points)-1]
}

// Advance moves the cursor forward by one point. Advancing past the end is
// idempotent: the cursor simply stays clamped at len(points).
func (p *Path) Advance() {
	if p.cursor < len(p.points) {
		p.cursor++
	}
}

// IsDone reports whether the cursor has consumed every point.
func (p Path) IsDone() bool {
	return len(p.points) == 0 || p.cursor >= len(p.points)
}

// Contains reports whether (x, y), given as a tile coordinate, appears
// anywhere in the path's remaining-or-not point sequence.
func (p Path) Contains(x, y int) bool {
	for _, pt := range p.points {
		if int(pt.X()) == x && int(pt.Y()) == y {
			return true
		}
	}
	return false
}

// RemainingDistance sums the Euclidean length of the path from the cursor
// to the goal, including the gap from pos (typically the agent's current
// position) to the first remaining point.
func (p Path) RemainingDistance(pos mgl32.Vec2) float32 {
	if p.IsDone() {
		return 0
	}
	total := pos.Sub(p.points[p.cursor]).Len()
	for i := p.cursor; i < len(p.points)-1; i++ {
		total += p.points[i+1].Sub(p.points[i]).Len()
	}
	return total
}
