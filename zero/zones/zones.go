// Package zones implements C14: a dispatcher over a closed set of known
// zones, exactly one of which is "in zone" per session. It owns no game
// logic itself — each zone is represented by a ZoneBehavior that registers
// its named behaviors once the arena is known.
package zones

import (
	"github.com/dm-vev/zerobot/zero/behavior"
	"github.com/dm-vev/zerobot/zero/controller"
	"github.com/dm-vev/zerobot/zero/event"
)

// ID identifies one of the known zones this bot can operate in.
type ID string

const (
	Hyperspace  ID = "hyperspace"
	TrenchWars  ID = "trenchwars"
	SVS         ID = "svs"
	Devastation ID = "devastation"
)

// ZoneBehavior is what each per-zone package implements: whether it owns a
// given zone identifier, and how to populate the shared behavior
// repository once the arena name (and therefore any arena-specific config
// section) is known.
type ZoneBehavior interface {
	Owns(zone ID) bool
	CreateBehaviors(repo *behavior.Repository, arenaName string)
	DefaultBehavior() string
}

// Manager is the C14 ZoneController. It subscribes to JoinRequest,
// ArenaName, and BehaviorChange and drives exactly one active ZoneBehavior
// at a time.
type Manager struct {
	zones  []ZoneBehavior
	active ZoneBehavior
	inZone bool

	repo *behavior.Repository
	ctrl *controller.Controller

	unsubs []event.Unsubscribe
}

// NewManager wires a Manager to bus, registering handlers for the three
// lifecycle events. repo is the shared behavior repository every zone
// registers into; ctrl is the Controller whose active tree SetBehavior
// replaces.
func NewManager(bus *event.Bus, repo *behavior.Repository, ctrl *controller.Controller) *Manager {
	m := &Manager{repo: repo, ctrl: ctrl}
	m.unsubs = []event.Unsubscribe{
		event.Subscribe(bus, m.handleJoinRequest),
		event.Subscribe(bus, m.handleArenaName),
		event.Subscribe(bus, m.handleBehaviorChange),
	}
	return m
}

// Close unsubscribes from the event bus; the Manager must not be used
// afterward.
func (m *Manager) Close() {
	for _, u := range m.unsubs {
		u()
	}
}

// Register adds a zone behavior to the set Manager considers on the next
// JoinRequest.
func (m *Manager) Register(z ZoneBehavior) {
	m.zones = append(m.zones, z)
}

func (m *Manager) handleJoinRequest(evt event.JoinRequest) {
	m.active = nil
	m.inZone = false
	for _, z := range m.zones {
		if z.Owns(ID(evt.Zone)) {
			m.active = z
			m.inZone = true
			return
		}
	}
}

func (m *Manager) handleArenaName(evt event.ArenaName) {
	if !m.inZone || m.active == nil {
		return
	}
	m.active.CreateBehaviors(m.repo, evt.Name)
	if name := m.active.DefaultBehavior(); name != "" {
		m.SetBehavior(name)
	}
}

func (m *Manager) handleBehaviorChange(evt event.BehaviorChange) {
	if !m.inZone {
		return
	}
	m.SetBehavior(evt.Name)
}

// SetBehavior looks up name in the shared repository and, if found,
// initializes it and installs its tree as the controller's active tree.
// OnInitialize and CreateTree are given a Context carrying only the
// long-lived Blackboard — no per-tick fields are populated yet, so
// behaviors must not touch Self/Snapshot/Steering/etc. from these hooks.
func (m *Manager) SetBehavior(name string) {
	b, ok := m.repo.Get(name)
	if !ok {
		return
	}
	ctx := &behavior.Context{Blackboard: m.ctrl.Blackboard}
	b.OnInitialize(ctx)
	m.ctrl.SetTree(b.CreateTree(ctx))
}

// InZone reports whether a zone behavior is currently active for this
// session.
func (m *Manager) InZone() bool { return m.inZone }

// Active returns the currently active zone behavior, or nil.
func (m *Manager) Active() ZoneBehavior { return m.active }

// Revision returns the shared behavior repository's current revision hash,
// for callers that want to log it alongside a behavior switch.
func (m *Manager) Revision() uint64 { return m.repo.Revision() }
