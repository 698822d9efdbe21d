// Package game defines the data model that the autonomous-agent core reads
// from and writes to: players, flags, ships, settings and the per-tick
// input frame. None of the types here know how to serialize themselves onto
// a wire; that is the job of the external network collaborator (out of
// scope for this module, see SPEC_FULL.md §6).
package game

// Tick is the wire tick counter: 32-bit, unsigned, wraparound-aware. 100
// ticks is approximately one second.
type Tick uint32

// MakeTick masks off the sign bit so tick arithmetic behaves consistently
// with the wrap-aware comparisons below.
func MakeTick(t uint32) Tick {
	return Tick(t & 0x7FFF_FFFF)
}

// TickGT reports whether a is after b, handling wraparound by comparing the
// signed difference.
func TickGT(a, b Tick) bool {
	return int32(a-b) > 0
}

// TickGTE reports whether a is at or after b.
func TickGTE(a, b Tick) bool {
	return int32(a-b) >= 0
}

// TickLT reports whether a is before b.
func TickLT(a, b Tick) bool {
	return int32(a-b) < 0
}

// TickLTE reports whether a is at or before b.
func TickLTE(a, b Tick) bool {
	return int32(a-b) <= 0
}
