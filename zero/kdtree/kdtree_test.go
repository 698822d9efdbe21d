package kdtree

import (
	"testing"

	"github.com/dm-vev/zerobot/zero/game"
	"github.com/go-gl/mathgl/mgl32"
)

func mkPlayer(id uint16, x, y float32) *game.Player {
	return &game.Player{
		ID:           id,
		Position:     mgl32.Vec2{x, y},
		Synchronized: true,
		Ship:         0,
	}
}

func TestBuildEmpty(t *testing.T) {
	tr := Build(nil, nil)
	if !tr.Empty() {
		t.Fatalf("expected an empty tree for no players")
	}
	if len(tr.Collect()) != 0 {
		t.Fatalf("expected no collected players")
	}
}

func TestBuildSkipsIneligiblePlayers(t *testing.T) {
	spec := mkPlayer(1, 0, 0)
	spec.Ship = game.Spectator
	dead := mkPlayer(2, 1, 1)
	dead.EnterDelay = 100
	live := mkPlayer(3, 5, 5)

	tr := Build([]*game.Player{spec, dead, live}, nil)
	got := tr.Collect()
	if len(got) != 1 || got[0].ID != 3 {
		t.Fatalf("expected only the live player to survive filtering, got %+v", got)
	}
}

func TestCollectReturnsAllPlayers(t *testing.T) {
	players := []*game.Player{
		mkPlayer(1, 0, 0),
		mkPlayer(2, 10, 10),
		mkPlayer(3, -5, 20),
		mkPlayer(4, 5, 5),
	}
	tr := Build(players, nil)
	got := tr.Collect()
	if len(got) != len(players) {
		t.Fatalf("expected %d players, got %d", len(players), len(got))
	}
	seen := make(map[uint16]bool)
	for _, p := range got {
		seen[p.ID] = true
	}
	for _, p := range players {
		if !seen[p.ID] {
			t.Fatalf("missing player %d from collected set", p.ID)
		}
	}
}

func TestRangeSearchFindsDistantPlayer(t *testing.T) {
	near := mkPlayer(1, 0, 0)
	far := mkPlayer(2, 500, 500)
	tr := Build([]*game.Player{near, far}, nil)

	p, ok := tr.RangeSearch(mgl32.Vec2{0, 0}, 50)
	if !ok {
		t.Fatalf("expected to find a player at least 50 units away")
	}
	if p.ID != 2 {
		t.Fatalf("expected the distant player, got %d", p.ID)
	}
}

func TestRangeSearchAllTooClose(t *testing.T) {
	a := mkPlayer(1, 0, 0)
	b := mkPlayer(2, 1, 1)
	tr := Build([]*game.Player{a, b}, nil)

	if _, ok := tr.RangeSearch(mgl32.Vec2{0, 0}, 1000); ok {
		t.Fatalf("expected no player to satisfy an unreachable minimum distance")
	}
}

func TestBuildReusesArena(t *testing.T) {
	first := Build([]*game.Player{mkPlayer(1, 0, 0), mkPlayer(2, 1, 1)}, nil)
	second := Build([]*game.Player{mkPlayer(3, 2, 2)}, first)
	if len(second.Collect()) != 1 {
		t.Fatalf("expected the rebuilt tree to reflect only the new snapshot")
	}
}
