package systems

import (
	"log"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/nightwarden/components"
	cfg "github.com/automoto/nightwarden/config"
	"github.com/automoto/nightwarden/gamemath"
	"github.com/automoto/nightwarden/tags"
)

// UpdateCaptureTrigger fires Caught when a pursuing warden closes to
// capture distance of the player.
func UpdateCaptureTrigger(e *ecs.ECS) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	playerObj := components.Object.Get(playerEntry)
	if playerObj == nil || playerObj.Object == nil {
		return
	}
	playerPos := playerObj.Center()

	components.Warden.Each(e.World, func(entry *donburi.Entry) {
		state := components.State.Get(entry)
		if state.CurrentState != cfg.StateChase && state.CurrentState != cfg.StatePatrol {
			return
		}
		warden := components.Warden.Get(entry)
		obj := components.Object.Get(entry)
		if obj == nil || obj.Object == nil {
			return
		}
		if obj.Center().DistanceTo(playerPos) <= warden.CaptureDistance {
			Caught(e, entry)
		}
	})
}

// Caught starts the capture recovery sequence for the given warden. The
// sequence is strictly linear and cannot be aborted once started; calls
// arriving while a recovery is in flight, or during cooldown, are
// ignored.
func Caught(e *ecs.ECS, wardenEntry *donburi.Entry) {
	sessionEntry, ok := components.Session.First(e.World)
	if !ok {
		return
	}
	session := components.Session.Get(sessionEntry)

	warden := components.Warden.Get(wardenEntry)
	state := components.State.Get(wardenEntry)
	nav := components.NavAgent.Get(wardenEntry)
	if warden == nil || state == nil || nav == nil {
		return
	}
	now := Now(e)

	// Re-entrancy guard: exactly one recovery in flight at a time.
	if warden.CooldownActiveAt(now) || session.RecoveryInProgress() {
		return
	}

	// The guard flag is the first mutation of the sequence.
	session.SetRecoveryInProgress(true)

	nav.Stop()
	nav.ResetPath()
	warden.AnimChasing = false
	warden.AnimPatrolling = false
	warden.Dwelling = false

	PlaySFX(e, cfg.SoundCapture)
	session.RegisterDeath()
	RecordCapture()

	if playerEntry, ok := tags.Player.First(e.World); ok {
		components.Player.Get(playerEntry).MovementEnabled = false
	}

	if obj := components.Object.Get(wardenEntry); obj != nil && obj.Object != nil {
		SwitchToCaptureView(e, obj.Center())
	}

	if hudEntry, ok := components.HUD.First(e.World); ok {
		components.HUD.Get(hudEntry).SnapshotAndHide()
	}

	// The hold on the capture viewpoint is the one wait that cannot be
	// interrupted.
	warden.HoldUntil = now + cfg.Warden.CaptureHoldDuration
	state.Transition(cfg.StateCaught, now)
}

// handleCaughtState finishes the recovery sequence once the capture
// viewpoint hold lapses: respawn resolution, teleport, restoration of
// viewpoint/HUD/movement, guard clear, cooldown start. The steps run
// straight through with per-step absence guards so the guard flag is
// cleared and the cooldown started on every path.
func handleCaughtState(e *ecs.ECS, wardenEntry *donburi.Entry, warden *components.WardenData, state *components.StateData, now float64) {
	if now < warden.HoldUntil {
		return
	}

	sessionEntry, ok := components.Session.First(e.World)
	if !ok {
		return
	}
	session := components.Session.Get(sessionEntry)

	pose, resolved := resolveRespawn(session)
	if !resolved {
		log.Printf("Warning: no respawn pose resolved for scene %q; skipping teleport", session.SceneID)
	}

	if playerEntry, ok := tags.Player.First(e.World); ok {
		player := components.Player.Get(playerEntry)
		obj := components.Object.Get(playerEntry)
		if resolved && obj != nil && obj.Object != nil {
			// Collision-sensitive movement is off only for the pose
			// write itself.
			player.CollisionEnabled = false
			obj.SetCenter(pose)
			obj.Update()
			player.CollisionEnabled = true
			PlaySFX(e, cfg.SoundRespawn)
		}
		player.MovementEnabled = true
	}

	RestoreFollowView(e)

	if hudEntry, ok := components.HUD.First(e.World); ok {
		components.HUD.Get(hudEntry).Restore()
	}

	// The guard flag is the last mutation of the sequence.
	session.SetRecoveryInProgress(false)

	warden.CooldownActive = true
	warden.CooldownExpiry = now + cfg.Warden.CooldownDuration
	state.Transition(cfg.StateCooldown, now)
}

// resolveRespawn picks the respawn pose: an explicitly configured
// override wins, then the session's scene-specific spawn. No teleport
// happens when neither resolves.
func resolveRespawn(session *components.SessionData) (gamemath.Vec2, bool) {
	if cfg.Warden.RespawnOverride != nil {
		return *cfg.Warden.RespawnOverride, true
	}
	if pose, ok := session.GetSpawnForScene(session.SceneID); ok {
		return pose, true
	}
	return gamemath.Vec2{}, false
}
