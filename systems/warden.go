package systems

import (
	"math"
	"math/rand"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/nightwarden/components"
	cfg "github.com/automoto/nightwarden/config"
	"github.com/automoto/nightwarden/gamemath"
)

// Velocity below this is treated as stationary for animation signals.
const velocityEpsilon = 1.0

// UpdateWardens advances every warden's behavior state machine by one
// control cycle. All timed waits are stored deadlines polled here; only
// the capture recovery hold is non-interruptible.
func UpdateWardens(e *ecs.ECS) {
	timeEntry, ok := components.Time.First(e.World)
	if !ok {
		return
	}
	now := components.Time.Get(timeEntry).Now

	components.Warden.Each(e.World, func(entry *donburi.Entry) {
		updateWardenBehavior(e, entry, now)
	})
}

func updateWardenBehavior(e *ecs.ECS, entry *donburi.Entry, now float64) {
	warden := components.Warden.Get(entry)
	state := components.State.Get(entry)
	det := components.Detection.Get(entry)
	nav := components.NavAgent.Get(entry)
	if warden == nil || state == nil || det == nil || nav == nil {
		return
	}

	// Face along movement.
	if dir, ok := nav.Velocity().Normalized(); ok && nav.Velocity().Len() > velocityEpsilon {
		warden.Direction = dir
	}

	switch state.CurrentState {
	case cfg.StatePatrol:
		handlePatrolState(warden, state, det, nav, now)
	case cfg.StateChase:
		handleChaseState(e, warden, state, det, nav, now)
	case cfg.StateCaught:
		handleCaughtState(e, entry, warden, state, now)
	case cfg.StateCooldown:
		handleCooldownState(e, warden, state, det, nav, now)
	}

	warden.AnimPatrolling = state.CurrentState == cfg.StatePatrol &&
		nav.Velocity().Len() > velocityEpsilon
}

func handlePatrolState(warden *components.WardenData, state *components.StateData, det *components.DetectionData, nav *components.NavAgentData, now float64) {
	warden.AnimChasing = false

	// Any wait in patrol is abandoned the instant the target is seen.
	if det.Seen && !warden.CooldownActiveAt(now) {
		warden.Dwelling = false
		nav.ResetPath()
		nav.Resume()
		state.Transition(cfg.StateChase, now)
		return
	}

	if len(warden.Waypoints) == 0 {
		return
	}
	nav.Speed = warden.PatrolSpeed

	if warden.CurrentWaypoint < 0 || warden.CurrentWaypoint >= len(warden.Waypoints) {
		warden.CurrentWaypoint = 0
	}

	// An unresolved waypoint is skipped without dwelling.
	if !waypointValid(warden.Waypoints[warden.CurrentWaypoint]) {
		advanceWaypoint(warden)
		nav.ResetPath()
		return
	}

	if warden.Dwelling {
		if now < warden.DwellUntil {
			return
		}
		warden.Dwelling = false
		advanceWaypoint(warden)
	}

	if !nav.HasDestination {
		nav.SetDestination(warden.Waypoints[warden.CurrentWaypoint])
		return
	}

	arrive := math.Max(warden.ArrivalTolerance, nav.StoppingDistance()+nav.Radius())
	if !nav.PathPending() && nav.RemainingDistance() <= arrive {
		nav.ResetPath()
		warden.Dwelling = true
		warden.DwellUntil = now + warden.WaitAtWaypoint
	}
}

func handleChaseState(e *ecs.ECS, warden *components.WardenData, state *components.StateData, det *components.DetectionData, nav *components.NavAgentData, now float64) {
	if !det.Seen {
		warden.AnimChasing = false
		nav.ResetPath()
		state.Transition(cfg.StatePatrol, now)
		return
	}

	nav.Speed = warden.ChaseSpeed

	// Re-path toward the last seen position no more often than the
	// repath interval, bounding path-planning cost.
	if now >= warden.NextRepathAt {
		nav.SetDestination(det.LastSeenPos)
		warden.NextRepathAt = now + warden.RepathInterval
	}

	// The chasing pose is suppressed while stationary at capture range.
	moving := nav.Velocity().Len() > velocityEpsilon
	beyondStop := nav.RemainingDistance() > nav.StoppingDistance()
	chasing := moving && beyondStop
	if chasing && !warden.AnimChasing {
		PlaySFX(e, cfg.SoundDetect)
	}
	warden.AnimChasing = chasing
}

func handleCooldownState(e *ecs.ECS, warden *components.WardenData, state *components.StateData, det *components.DetectionData, nav *components.NavAgentData, now float64) {
	warden.AnimChasing = false

	if now < warden.CooldownExpiry {
		return // Pure timer
	}
	warden.CooldownActive = false
	PlaySFX(e, cfg.SoundCooldownEnd)
	nav.Resume()

	// A target still seen when the cooldown lapses is chased directly,
	// bypassing patrol.
	if det.Seen {
		state.Transition(cfg.StateChase, now)
		return
	}
	state.Transition(cfg.StatePatrol, now)
}

// advanceWaypoint picks the next patrol index by bounded rejection
// sampling: never the current index, and for three or more waypoints
// never the previous one either.
func advanceWaypoint(warden *components.WardenData) {
	next := NextPatrolIndex(warden.Rand, warden.CurrentWaypoint, warden.PreviousWaypoint, len(warden.Waypoints))
	warden.PreviousWaypoint = warden.CurrentWaypoint
	warden.CurrentWaypoint = next
}

// NextPatrolIndex chooses a patrol index distinct from both current and
// previous. With exactly two waypoints alternation is unavoidable; with
// one, the only index is returned.
func NextPatrolIndex(r *rand.Rand, current, previous, count int) int {
	if count <= 1 {
		return 0
	}
	if count == 2 {
		return 1 - current
	}

	const maxTries = 16
	for tries := 0; tries < maxTries; tries++ {
		idx := r.Intn(count)
		if idx != current && idx != previous {
			return idx
		}
	}
	// Sampling exhausted; fall back to the first acceptable index.
	for idx := 0; idx < count; idx++ {
		if idx != current && idx != previous {
			return idx
		}
	}
	return current
}

// waypointValid reports whether a waypoint resolved to real coordinates.
// Markers that failed to resolve at load time carry NaN.
func waypointValid(v gamemath.Vec2) bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y)
}
