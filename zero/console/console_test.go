package console

import (
	"context"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/dm-vev/zerobot/zero/blackboard"
	"github.com/dm-vev/zerobot/zero/controller"
	"github.com/dm-vev/zerobot/zero/event"
	"github.com/dm-vev/zerobot/zero/game"
	"github.com/dm-vev/zerobot/zero/world"
)

type fakeOutput struct {
	chatCh      chan game.ChatMessage
	shipReqs    []uint8
	disconnects int
}

func newFakeOutput() *fakeOutput { return &fakeOutput{chatCh: make(chan game.ChatMessage, 4)} }

func (f *fakeOutput) RequestShip(s uint8)           { f.shipReqs = append(f.shipReqs, s) }
func (f *fakeOutput) RequestAttach(uint16)          {}
func (f *fakeOutput) RequestDetach()                {}
func (f *fakeOutput) RequestSpawn()                 {}
func (f *fakeOutput) SendDisconnect()               { f.disconnects++ }
func (f *fakeOutput) Chat() chan<- game.ChatMessage { return f.chatCh }

func emptyMap() *world.Map {
	tiles := make([]world.TileID, world.Size*world.Size)
	return world.New("test", tiles, event.New())
}

func newTestConsole(out *fakeOutput) (*Console, *controller.Controller) {
	ctrl := controller.New(emptyMap())
	c := New(ctrl, out, nil)
	return c, ctrl
}

func TestGotoSetsBlackboardTarget(t *testing.T) {
	out := newFakeOutput()
	c, ctrl := newTestConsole(out)
	c.WithReader(strings.NewReader("/goto 12 34\n"))
	c.Run(context.Background())

	got, ok := blackboard.Get[mgl32.Vec2](ctrl.Blackboard, controller.ConsoleGotoKey)
	if !ok {
		t.Fatalf("expected goto target to be set")
	}
	if got.X() != 12 || got.Y() != 34 {
		t.Fatalf("expected (12, 34), got %v", got)
	}
}

func TestSayQueuesChatMessage(t *testing.T) {
	out := newFakeOutput()
	c, _ := newTestConsole(out)
	c.WithReader(strings.NewReader("/say hello world\n"))
	c.Run(context.Background())

	select {
	case msg := <-out.chatCh:
		if msg.Text != "hello world" || msg.Kind != game.ChatPublic {
			t.Fatalf("unexpected chat message: %+v", msg)
		}
	default:
		t.Fatalf("expected a chat message to be queued")
	}
}

func TestShipRequestsValidShip(t *testing.T) {
	out := newFakeOutput()
	c, _ := newTestConsole(out)
	c.WithReader(strings.NewReader("/ship 3\n"))
	c.Run(context.Background())

	if len(out.shipReqs) != 1 || out.shipReqs[0] != 3 {
		t.Fatalf("expected a single request for ship 3, got %v", out.shipReqs)
	}
}

func TestShipRejectsOutOfRange(t *testing.T) {
	out := newFakeOutput()
	c, _ := newTestConsole(out)
	c.WithReader(strings.NewReader("/ship 9\n"))
	c.Run(context.Background())

	if len(out.shipReqs) != 0 {
		t.Fatalf("expected ship 9 to be rejected, got requests %v", out.shipReqs)
	}
}

func TestRegionReportsNoRegistryBeforeFirstTick(t *testing.T) {
	out := newFakeOutput()
	c, ctrl := newTestConsole(out)
	_, _, ok := ctrl.RegionInfo(0, 0)
	if ok {
		t.Fatalf("expected no region registry before the controller has ticked")
	}
	// Exercise the command path too; it should just log a warning, not panic.
	c.WithReader(strings.NewReader("/region 0 0\n"))
	c.Run(context.Background())
}

func TestStopSendsDisconnect(t *testing.T) {
	out := newFakeOutput()
	c, _ := newTestConsole(out)
	c.WithReader(strings.NewReader("/stop\n"))
	c.Run(context.Background())

	if out.disconnects != 1 {
		t.Fatalf("expected SendDisconnect to be called once, got %d", out.disconnects)
	}
}

func TestUnknownCommandDoesNotPanic(t *testing.T) {
	out := newFakeOutput()
	c, _ := newTestConsole(out)
	c.WithReader(strings.NewReader("/frobnicate\n"))
	c.Run(context.Background())
}

func TestLeadingSlashIsOptional(t *testing.T) {
	out := newFakeOutput()
	c, _ := newTestConsole(out)
	c.WithReader(strings.NewReader("say no leading slash\n"))
	c.Run(context.Background())

	select {
	case msg := <-out.chatCh:
		if msg.Text != "no leading slash" {
			t.Fatalf("unexpected message: %q", msg.Text)
		}
	default:
		t.Fatalf("expected a chat message to be queued")
	}
}
