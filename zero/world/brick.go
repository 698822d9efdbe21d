package world

import (
	"github.com/brentp/intintmap"
	"github.com/dm-vev/zerobot/zero/game"
)

// expiredSentinel is stored in place of a removed brick's expiry. Tick 0 is
// always in the past relative to any live session, so Active() treats it as
// "no brick" without needing a delete operation from the underlying map.
const expiredSentinel = int64(0)

// brickOverlay is the dynamic solid-tile overlay laid by players. The
// source keeps this in an intrusive linked list; per SPEC_FULL.md's design
// notes we replace it with a flat open-addressed int64->int64 map keyed by
// the packed tile coordinate, avoiding both the pointer-chasing and the
// freelist bookkeeping the original needed.
type brickOverlay struct {
	expiry *intintmap.Map
}

func newBrickOverlay() *brickOverlay {
	return &brickOverlay{expiry: intintmap.New(64, 0.6)}
}

func brickKey(x, y int) int64 {
	return int64(uint32(x))<<32 | int64(uint32(y))
}

// Add lays a brick at (x, y) that expires at the given tick.
func (b *brickOverlay) Add(x, y int, expiresAt game.Tick) {
	b.expiry.Put(brickKey(x, y), int64(expiresAt))
}

// Remove clears a brick, e.g. on an early server-side notification.
func (b *brickOverlay) Remove(x, y int) {
	b.expiry.Put(brickKey(x, y), expiredSentinel)
}

// Active reports whether a brick currently occupies (x, y) at the given
// tick. Expired entries are left in the map (lazily reclaimed the next time
// a brick is laid on the same tile); the overlay is bounded by distinct
// brick positions laid in a session, which is small relative to the map.
func (b *brickOverlay) Active(x, y int, now game.Tick) bool {
	v, ok := b.expiry.Get(brickKey(x, y))
	if !ok || v == expiredSentinel {
		return false
	}
	return game.TickLT(now, game.Tick(v))
}
