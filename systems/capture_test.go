package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/nightwarden/components"
	cfg "github.com/automoto/nightwarden/config"
	"github.com/automoto/nightwarden/gamemath"
	"github.com/automoto/nightwarden/leveldata"
	"github.com/automoto/nightwarden/systems/factory"
)

func newCaptureWorld(t *testing.T, hasRespawn bool) (*ecs.ECS, *donburi.Entry, *donburi.Entry) {
	t.Helper()

	lvl := &leveldata.Level{
		Width:        640,
		Height:       360,
		RespawnPoint: gamemath.Vec2{X: 50, Y: 50},
		HasRespawn:   hasRespawn,
	}
	e := newTestECS(lvl)
	factory.CreateHUD(e)
	factory.CreateCamera(e, gamemath.Vec2{X: 110, Y: 100})

	player := factory.CreatePlayer(e, 110, 100)
	warden := factory.CreateWarden(e, 100, 100, nil, 7)
	return e, player, warden
}

func session(e *ecs.ECS) *components.SessionData {
	return components.Session.Get(components.Session.MustFirst(e.World))
}

func hud(e *ecs.ECS) *components.HUDData {
	return components.HUD.Get(components.HUD.MustFirst(e.World))
}

func TestCaptureTriggerFiresInRange(t *testing.T) {
	e, _, warden := newCaptureWorld(t, true)

	// 10px apart, inside the capture distance.
	step(e)

	assert.Equal(t, cfg.StateCaught, components.State.Get(warden).CurrentState)
	assert.Equal(t, 1, session(e).Deaths)
}

func TestCaptureImmediateEffects(t *testing.T) {
	e, player, warden := newCaptureWorld(t, true)

	Caught(e, warden)

	sess := session(e)
	assert.True(t, sess.RecoveryInProgress())
	assert.Equal(t, 1, sess.Deaths)

	assert.False(t, components.Player.Get(player).MovementEnabled)
	assert.True(t, components.NavAgent.Get(warden).Stopped)

	camera := components.Camera.Get(components.Camera.MustFirst(e.World))
	assert.Equal(t, components.CameraCapture, camera.Mode)
	assert.Equal(t, components.CameraCapture, camera.Listener)

	for id, visible := range hud(e).Visible {
		assert.False(t, visible, "surface %q must be hidden during recovery", id)
	}

	state := components.State.Get(warden)
	assert.Equal(t, cfg.StateCaught, state.CurrentState)
	w := components.Warden.Get(warden)
	assert.InDelta(t, Now(e)+cfg.Warden.CaptureHoldDuration, w.HoldUntil, 1e-9)
}

func TestCaptureIgnoredWhileRecoveryInFlight(t *testing.T) {
	e, _, warden := newCaptureWorld(t, true)

	Caught(e, warden)
	Caught(e, warden)

	assert.Equal(t, 1, session(e).Deaths, "a recovery in flight must swallow further captures")
}

func TestCaptureIgnoredDuringCooldown(t *testing.T) {
	e, _, warden := newCaptureWorld(t, true)
	w := components.Warden.Get(warden)
	w.CooldownActive = true
	w.CooldownExpiry = 100

	Caught(e, warden)

	assert.Equal(t, 0, session(e).Deaths)
	assert.False(t, session(e).RecoveryInProgress())
}

func TestRecoveryCompletesAfterHold(t *testing.T) {
	e, player, warden := newCaptureWorld(t, true)

	Caught(e, warden)
	hold := components.Warden.Get(warden).HoldUntil

	// The hold is non-interruptible: nothing happens before the deadline.
	step(e)
	assert.Equal(t, cfg.StateCaught, components.State.Get(warden).CurrentState)
	assert.False(t, components.Player.Get(player).MovementEnabled)

	setClock(e, hold)
	step(e)

	pos := components.Object.Get(player).Center()
	assert.InDelta(t, 50, pos.X, 0.001)
	assert.InDelta(t, 50, pos.Y, 0.001)

	p := components.Player.Get(player)
	assert.True(t, p.MovementEnabled)
	assert.True(t, p.CollisionEnabled)

	camera := components.Camera.Get(components.Camera.MustFirst(e.World))
	assert.Equal(t, components.CameraFollow, camera.Mode)
	assert.Equal(t, components.CameraFollow, camera.Listener)

	assert.False(t, session(e).RecoveryInProgress())

	w := components.Warden.Get(warden)
	assert.True(t, w.CooldownActive)
	assert.InDelta(t, Now(e)+cfg.Warden.CooldownDuration, w.CooldownExpiry, 1e-9)
	assert.Equal(t, cfg.StateCooldown, components.State.Get(warden).CurrentState)
}

func TestRecoveryRestoresExactHUDVisibility(t *testing.T) {
	e, _, warden := newCaptureWorld(t, true)

	// The detection indicator was already hidden before the capture.
	hud(e).Visible[components.HUDDetection] = false

	Caught(e, warden)

	// A stray show while hidden must not survive restoration.
	hud(e).Visible[components.HUDHint] = true

	setClock(e, components.Warden.Get(warden).HoldUntil)
	step(e)

	h := hud(e)
	assert.False(t, h.Visible[components.HUDDetection],
		"restoration is exact, not a blanket re-show")
	assert.True(t, h.Visible[components.HUDHint])
	assert.True(t, h.Visible[components.HUDDeaths])
	assert.True(t, h.Visible[components.HUDStamina])
	assert.Nil(t, h.Snapshot)
}

func TestRecoveryWithoutRespawnPose(t *testing.T) {
	e, player, warden := newCaptureWorld(t, false)
	require.Nil(t, cfg.Warden.RespawnOverride)

	before := components.Object.Get(player).Center()

	Caught(e, warden)
	setClock(e, components.Warden.Get(warden).HoldUntil)
	step(e)

	// No pose resolved: the teleport is skipped but the sequence still
	// runs to completion.
	after := components.Object.Get(player).Center()
	assert.Equal(t, before, after)
	assert.True(t, components.Player.Get(player).MovementEnabled)
	assert.False(t, session(e).RecoveryInProgress())
	assert.Equal(t, cfg.StateCooldown, components.State.Get(warden).CurrentState)
}

func TestRespawnOverrideWinsOverSceneSpawn(t *testing.T) {
	e, player, warden := newCaptureWorld(t, true)

	cfg.Warden.RespawnOverride = &gamemath.Vec2{X: 200, Y: 200}
	defer func() { cfg.Warden.RespawnOverride = nil }()

	Caught(e, warden)
	setClock(e, components.Warden.Get(warden).HoldUntil)
	step(e)

	pos := components.Object.Get(player).Center()
	assert.InDelta(t, 200, pos.X, 0.001)
	assert.InDelta(t, 200, pos.Y, 0.001)
}
