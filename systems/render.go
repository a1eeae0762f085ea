package systems

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/nightwarden/components"
	cfg "github.com/automoto/nightwarden/config"
	"github.com/automoto/nightwarden/gamemath"
	"github.com/automoto/nightwarden/tags"
)

var debugOverlay bool

// UpdateDebugToggle flips the sensor overlay with F1.
func UpdateDebugToggle(e *ecs.ECS) {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		debugOverlay = !debugOverlay
	}
}

// cameraOffset converts a world position to screen space.
func cameraOffset(e *ecs.ECS) gamemath.Vec2 {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return gamemath.Vec2{}
	}
	camera := components.Camera.Get(cameraEntry)
	return gamemath.Vec2{
		X: float64(cfg.C.Width)/2 - camera.Position.X,
		Y: float64(cfg.C.Height)/2 - camera.Position.Y,
	}
}

// DrawLevel renders the maze walls.
func DrawLevel(e *ecs.ECS, screen *ebiten.Image) {
	off := cameraOffset(e)
	tags.Wall.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)
		if obj == nil || obj.Object == nil {
			return
		}
		vector.DrawFilledRect(screen,
			float32(obj.X+off.X), float32(obj.Y+off.Y),
			float32(obj.W), float32(obj.H),
			cfg.Gray, false)
	})
}

// DrawAgents renders the player and the warden with facing markers.
func DrawAgents(e *ecs.ECS, screen *ebiten.Image) {
	off := cameraOffset(e)

	if playerEntry, ok := tags.Player.First(e.World); ok {
		obj := components.Object.Get(playerEntry)
		if obj != nil && obj.Object != nil {
			c := obj.Center().Add(off)
			vector.DrawFilledCircle(screen, float32(c.X), float32(c.Y), float32(obj.W/2), cfg.Blue, true)
		}
	}

	tags.Warden.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)
		warden := components.Warden.Get(entry)
		if obj == nil || obj.Object == nil {
			return
		}
		c := obj.Center().Add(off)

		clr := cfg.Amber
		if warden.AnimChasing {
			clr = cfg.Red
		}
		vector.DrawFilledCircle(screen, float32(c.X), float32(c.Y), float32(obj.W/2), clr, true)

		tip := c.Add(warden.Direction.Scale(obj.W))
		vector.StrokeLine(screen, float32(c.X), float32(c.Y), float32(tip.X), float32(tip.Y), 2, cfg.White, true)

		if debugOverlay {
			drawSensorCone(e, screen, entry, c)
		}
	})
}

// drawSensorCone draws the vision cone edges and the remembered target
// position for one warden.
func drawSensorCone(e *ecs.ECS, screen *ebiten.Image, entry *donburi.Entry, screenCenter gamemath.Vec2) {
	sensor := components.Sensor.Get(entry)
	warden := components.Warden.Get(entry)
	det := components.Detection.Get(entry)
	if sensor == nil || warden == nil {
		return
	}

	half := cfg.ClampHalfFOV(sensor.Config.HalfFOVDegrees) * math.Pi / 180
	heading := warden.Direction.Angle()
	for _, a := range []float64{heading - half, heading + half} {
		edge := screenCenter.Add(gamemath.FromAngle(a).Scale(sensor.Config.Radius))
		vector.StrokeLine(screen,
			float32(screenCenter.X), float32(screenCenter.Y),
			float32(edge.X), float32(edge.Y),
			1, color.RGBA{R: 255, G: 255, B: 255, A: 80}, true)
	}

	if det != nil && det.Seen {
		off := cameraOffset(e)
		p := det.LastSeenPos.Add(off)
		vector.StrokeLine(screen,
			float32(screenCenter.X), float32(screenCenter.Y),
			float32(p.X), float32(p.Y),
			1, cfg.Red, true)
	}
}

// DrawFade renders the capture transition overlay.
func DrawFade(e *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	if camera.FadeAlpha <= 0 {
		return
	}
	a := uint8(camera.FadeAlpha * 255)
	vector.DrawFilledRect(screen, 0, 0,
		float32(cfg.C.Width), float32(cfg.C.Height),
		color.RGBA{A: a}, false)
}
