package zerobot

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/dm-vev/zerobot/zero/behavior"
	"github.com/dm-vev/zerobot/zero/cache"
	"github.com/dm-vev/zerobot/zero/controller"
	"github.com/dm-vev/zerobot/zero/event"
	"github.com/dm-vev/zerobot/zero/game"
	"github.com/dm-vev/zerobot/zero/netio"
	"github.com/dm-vev/zerobot/zero/workpool"
	"github.com/dm-vev/zerobot/zero/world"
	"github.com/dm-vev/zerobot/zero/zones"
)

// Config is the process-wide assembly point for a Bot. It is not
// serializable; UserConfig is the on-disk form an operator edits, and is
// turned into a Config by cmd/zerobot. New follows the teacher's
// server.Config.New pattern: fill defaults, wire sub-objects, return the
// assembled root type.
type Config struct {
	// Log receives every log line the bot's components emit. Defaults to
	// slog.Default().
	Log *slog.Logger
	// SessionID identifies this process run in the Bot's shutdown log line.
	// Defaults to a freshly generated UUID.
	SessionID uuid.UUID
	// CacheDir is the LevelDB-backed cache directory (zero/cache). Defaults
	// to "cache".
	CacheDir string
	// Settings is the read-only per-ship/connection tuning supplied by the
	// external network collaborator.
	Settings game.Settings
	// Transport dials the network collaborator. Defaults to a
	// netio.RakNetTransport.
	Transport netio.Transport
	// Workers and QueueSize size the Bot's worker pool (file downloads,
	// checksum verification). Zero uses workpool.New's own defaults.
	Workers   int
	QueueSize int
}

// New assembles a Bot from conf: it opens the cache store, starts the
// worker pool, and wires an EventBus and behavior Repository. The
// Controller and ZoneController are not built until a MapBuilt event
// fires, since both need a concrete *world.Map.
func (conf Config) New() (*Bot, error) {
	if conf.Log == nil {
		conf.Log = slog.Default()
	}
	if conf.SessionID == uuid.Nil {
		conf.SessionID = uuid.New()
	}
	if conf.CacheDir == "" {
		conf.CacheDir = "cache"
	}
	if conf.Transport == nil {
		conf.Transport = netio.NewRakNetTransport(conf.Log)
	}

	store, err := cache.Open(conf.CacheDir)
	if err != nil {
		return nil, fmt.Errorf("zerobot: open cache: %w", err)
	}

	b := &Bot{
		conf:       conf,
		Log:        conf.Log,
		Bus:        event.New(),
		Repository: behavior.NewRepository(),
		Cache:      store,
		Pool:       workpool.New(conf.Workers, conf.QueueSize, conf.Log),
	}
	b.unsubMapBuilt = event.Subscribe(b.Bus, b.handleMapBuilt)
	return b, nil
}

// Bot is the assembled, running collaborator set for one bot session: the
// event bus every component publishes onto, the shared behavior
// repository, the cache store, the worker pool, and the lazily-built
// Controller/ZoneController pair.
type Bot struct {
	conf Config

	Log        *slog.Logger
	Bus        *event.Bus
	Repository *behavior.Repository
	Cache      *cache.Store
	Pool       *workpool.Pool

	mu         sync.Mutex
	Controller *controller.Controller
	Zones      *zones.Manager

	unsubMapBuilt event.Unsubscribe
}

func (b *Bot) handleMapBuilt(evt event.MapBuilt) {
	m, ok := evt.Map.(*world.Map)
	if !ok {
		b.Log.Error("zerobot: MapBuilt event carried an unrecognized map type")
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.Zones != nil {
		b.Zones.Close()
	}
	b.Controller = controller.New(m)
	b.Zones = zones.NewManager(b.Bus, b.Repository, b.Controller)
	b.Log.Info("zerobot: controller rebuilt for new map", "map", m.Name(), "behavior_revision", b.Zones.Revision())
}

// Snapshot returns the currently active Controller and ZoneController, or
// nil if no MapBuilt event has fired yet.
func (b *Bot) Snapshot() (*controller.Controller, *zones.Manager) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.Controller, b.Zones
}

// Shutdown releases the Bot's collaborators: it stops the worker pool,
// unsubscribes the ZoneController, and closes the cache store. reason is
// logged for operator visibility.
func (b *Bot) Shutdown(reason string) {
	b.Log.Info("zerobot: shutting down", "reason", reason, "session", b.conf.SessionID)
	b.unsubMapBuilt()

	b.mu.Lock()
	if b.Zones != nil {
		b.Zones.Close()
	}
	b.mu.Unlock()

	b.Pool.Stop()
	if err := b.Cache.Close(); err != nil {
		b.Log.Error("zerobot: close cache", "err", err)
	}
}
