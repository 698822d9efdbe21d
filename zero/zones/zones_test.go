package zones

import (
	"testing"

	"github.com/dm-vev/zerobot/zero/behavior"
	"github.com/dm-vev/zerobot/zero/controller"
	"github.com/dm-vev/zerobot/zero/event"
	"github.com/dm-vev/zerobot/zero/world"
)

type fakeZone struct {
	owns         ID
	created      bool
	defaultName  string
}

func (f *fakeZone) Owns(zone ID) bool { return zone == f.owns }
func (f *fakeZone) CreateBehaviors(repo *behavior.Repository, arenaName string) {
	f.created = true
	repo.Register("default", behavior.BehaviorFunc{
		Create: func(ctx *behavior.Context) behavior.Node { return behavior.NewConstant(behavior.Success) },
	})
}
func (f *fakeZone) DefaultBehavior() string { return f.defaultName }

func emptyMap() *world.Map {
	tiles := make([]world.TileID, world.Size*world.Size)
	return world.New("test", tiles, event.New())
}

func TestManagerActivatesMatchingZone(t *testing.T) {
	bus := event.New()
	repo := behavior.NewRepository()
	ctrl := controller.New(emptyMap())
	mgr := NewManager(bus, repo, ctrl)

	tw := &fakeZone{owns: TrenchWars, defaultName: "default"}
	hs := &fakeZone{owns: Hyperspace, defaultName: "default"}
	mgr.Register(hs)
	mgr.Register(tw)

	event.Dispatch(bus, event.JoinRequest{Zone: string(TrenchWars)})
	if !mgr.InZone() || mgr.Active() != tw {
		t.Fatalf("expected trenchwars zone to become active")
	}

	event.Dispatch(bus, event.ArenaName{Name: "tw-1"})
	if !tw.created {
		t.Fatalf("expected CreateBehaviors to have been called")
	}
}

func TestManagerIgnoresUnknownZone(t *testing.T) {
	bus := event.New()
	repo := behavior.NewRepository()
	ctrl := controller.New(emptyMap())
	mgr := NewManager(bus, repo, ctrl)
	mgr.Register(&fakeZone{owns: SVS})

	event.Dispatch(bus, event.JoinRequest{Zone: "nonexistent"})
	if mgr.InZone() {
		t.Fatalf("expected no zone to activate for an unrecognized identifier")
	}
}

func TestManagerBehaviorChangeSwitchesTree(t *testing.T) {
	bus := event.New()
	repo := behavior.NewRepository()
	ctrl := controller.New(emptyMap())
	mgr := NewManager(bus, repo, ctrl)

	z := &fakeZone{owns: Devastation, defaultName: "default"}
	mgr.Register(z)
	event.Dispatch(bus, event.JoinRequest{Zone: string(Devastation)})
	event.Dispatch(bus, event.ArenaName{Name: "dev-1"})

	repo.Register("alt", behavior.BehaviorFunc{
		Create: func(ctx *behavior.Context) behavior.Node { return behavior.NewConstant(behavior.Failure) },
	})
	event.Dispatch(bus, event.BehaviorChange{Name: "alt"})
}

func TestManagerCloseUnsubscribes(t *testing.T) {
	bus := event.New()
	repo := behavior.NewRepository()
	ctrl := controller.New(emptyMap())
	mgr := NewManager(bus, repo, ctrl)
	mgr.Register(&fakeZone{owns: SVS})
	mgr.Close()

	event.Dispatch(bus, event.JoinRequest{Zone: string(SVS)})
	if mgr.InZone() {
		t.Fatalf("expected a closed manager not to react to further events")
	}
}
