package game

import "github.com/go-gl/mathgl/mgl32"

// Spectator is the ship value meaning "not playing".
const Spectator uint8 = 8

// Togglable bits reported by the server for a player (afterburner active,
// stealth, cloak, xradar, and so on). The exact bit layout is defined by the
// external network collaborator; the core only tests individual bits.
type Togglables uint16

// Has reports whether bit is set in t.
func (t Togglables) Has(bit Togglables) bool {
	return t&bit != 0
}

// Player is an external record: the core reads these fields every tick but
// only ever writes through PlayerManager (request ship, attach, detach,
// spawn).
type Player struct {
	ID            uint16
	Name          string
	Position      mgl32.Vec2
	Velocity      mgl32.Vec2
	Heading       mgl32.Vec2
	Frequency     uint16
	Ship          uint8
	Energy        float32
	EnterDelay    float32
	Togglables    Togglables
	AttachParent  int32 // -1 when not attached
	Synchronized  bool
}

// Alive reports whether the player occupies a ship slot (0..=7) rather than
// spectating.
func (p *Player) Alive() bool {
	return p != nil && p.Ship < Spectator
}

// Respawning reports whether the player is still within the post-spawn
// grace delay and therefore should be excluded from targeting.
func (p *Player) Respawning() bool {
	return p.EnterDelay > 0
}

// Flag is a capturable map object, external to the core.
type Flag struct {
	ID        uint16
	Position  mgl32.Vec2
	Frequency uint16
	Carrier   int32 // -1 when not carried
}

// Green is a collectible prize on the map.
type Green struct {
	ID       uint16
	Position mgl32.Vec2
	Kind     uint8
}

// LoginState enumerates the session's connection progress. It is carried on
// the Snapshot; the Controller does not consult it when deciding whether to
// run the behavior tree.
type LoginState uint8

const (
	Disconnected LoginState = iota
	Connecting
	Connected
	Authenticated
	InGame
)

// ShipSettings holds the per-ship-class constants the server publishes.
type ShipSettings struct {
	Radius      float32
	BulletSpeed float32
	BombSpeed   float32
	MaximumSpeed float32
	MaximumRotation float32
}

// Settings is the subset of connection.settings the core consumes. It is
// read-only and supplied by the external network collaborator.
type Settings struct {
	EnterDelay float32
	BrickTime  Tick
	Ships      [8]ShipSettings
}

// Snapshot is the coherent per-tick world state the network collaborator
// publishes to the core.
type Snapshot struct {
	Self       *Player
	Players    []*Player
	Flags      []*Flag
	Greens     []*Green
	Tick       Tick
	Settings   Settings
	LoginState LoginState
}
