package components

import (
	"math/rand"

	"github.com/yohamta/donburi"

	"github.com/automoto/nightwarden/gamemath"
)

// WardenData holds the pursuit agent's behavior state. The patrol and
// chase fields are transient and only meaningful while their state is
// active; the cooldown fields live from capture completion to expiry.
type WardenData struct {
	Direction gamemath.Vec2 // Facing, unit length

	PatrolSpeed     float64
	ChaseSpeed      float64
	CaptureDistance float64
	RepathInterval  float64

	// Patrol state
	Waypoints        []gamemath.Vec2
	CurrentWaypoint  int
	PreviousWaypoint int
	ArrivalTolerance float64
	WaitAtWaypoint   float64
	Dwelling         bool
	DwellUntil       float64

	// Chase state
	NextRepathAt float64

	// Capture hold
	HoldUntil float64

	// Cooldown state
	CooldownActive bool
	CooldownExpiry float64

	// Animation signals mirrored to the renderer
	AnimPatrolling bool
	AnimChasing    bool

	// Injected random source for waypoint selection; deterministic in
	// tests.
	Rand *rand.Rand
}

// CooldownActiveAt reports whether the post-capture refractory window is
// still running at the given time.
func (w *WardenData) CooldownActiveAt(now float64) bool {
	return w.CooldownActive && now < w.CooldownExpiry
}

var Warden = donburi.NewComponentType[WardenData]()
