package systems

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/nightwarden/components"
	"github.com/automoto/nightwarden/config"
	"github.com/automoto/nightwarden/gamemath"
	"github.com/automoto/nightwarden/tags"
)

// UpdateCamera follows the player, or eases onto the capture viewpoint
// while a recovery sequence holds it, and advances the fade overlay.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	timeEntry, ok := components.Time.First(e.World)
	if !ok {
		return
	}
	dt := components.Time.Get(timeEntry).Delta

	if camera.Fade != nil {
		alpha, done := camera.Fade.Update(float32(dt))
		camera.FadeAlpha = alpha
		if done {
			camera.Fade = nil
		}
	}

	var target gamemath.Vec2
	switch camera.Mode {
	case components.CameraCapture:
		target = camera.CaptureTarget
	default:
		playerEntry, ok := tags.Player.First(e.World)
		if !ok {
			return // No player, keep the last framing
		}
		playerObj := components.Object.Get(playerEntry)
		if playerObj == nil || playerObj.Object == nil {
			return
		}
		target = playerObj.Center()
	}

	target = clampToLevel(e, target)

	camera.Position.X += (target.X - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (target.Y - camera.Position.Y) * config.Camera.FollowSmoothing
}

// clampToLevel keeps the viewport inside the level bounds.
func clampToLevel(e *ecs.ECS, target gamemath.Vec2) gamemath.Vec2 {
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return target
	}
	level := components.Level.Get(levelEntry).CurrentLevel
	if level == nil {
		return target
	}

	halfW := float64(config.C.Width) / 2
	halfH := float64(config.C.Height) / 2
	target.X = math.Max(halfW, math.Min(float64(level.Width)-halfW, target.X))
	target.Y = math.Max(halfH, math.Min(float64(level.Height)-halfH, target.Y))
	return target
}

// SwitchToCaptureView moves the viewpoint and the audio listener to the
// capture framing. The listener always rides the active viewpoint, so
// exactly one listener exists at any time.
func SwitchToCaptureView(e *ecs.ECS, target gamemath.Vec2) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	camera.Mode = components.CameraCapture
	camera.Listener = components.CameraCapture
	camera.CaptureTarget = target
	camera.Fade = gween.New(camera.FadeAlpha, 0.75, config.Camera.CaptureFadeTime, ease.OutQuad)
}

// RestoreFollowView returns viewpoint and listener to the follow camera.
func RestoreFollowView(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	camera.Mode = components.CameraFollow
	camera.Listener = components.CameraFollow
	camera.Fade = gween.New(camera.FadeAlpha, 0, config.Camera.CaptureFadeTime, ease.InQuad)
}

// ListenerPosition returns the world position the audio listener
// occupies.
func ListenerPosition(e *ecs.ECS) (gamemath.Vec2, bool) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return gamemath.Vec2{}, false
	}
	camera := components.Camera.Get(cameraEntry)
	if camera.Listener == components.CameraCapture {
		return camera.CaptureTarget, true
	}
	return camera.Position, true
}
