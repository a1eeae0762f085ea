package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/nightwarden/components"
	cfg "github.com/automoto/nightwarden/config"
	"github.com/automoto/nightwarden/gamemath"
	"github.com/automoto/nightwarden/tags"
)

// UpdatePlayer applies movement input, sprint stamina, and collision for
// the player entity.
func UpdatePlayer(e *ecs.ECS) {
	timeEntry, ok := components.Time.First(e.World)
	if !ok {
		return
	}
	dt := components.Time.Get(timeEntry).Delta

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	obj := components.Object.Get(playerEntry)
	if obj == nil || obj.Object == nil {
		return
	}

	var input gamemath.Vec2
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		input.X -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		input.X += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		input.Y -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		input.Y += 1
	}

	dir, moving := input.Normalized()

	sprintHeld := ebiten.IsKeyPressed(ebiten.KeyShift)
	player.Sprinting = sprintHeld && moving && player.Stamina > 0 && player.MovementEnabled

	if player.Sprinting {
		player.Stamina = gamemath.Clamp(player.Stamina-cfg.Player.StaminaDrain*dt, 0, cfg.Player.StaminaMax)
	} else {
		player.Stamina = gamemath.Clamp(player.Stamina+cfg.Player.StaminaRegen*dt, 0, cfg.Player.StaminaMax)
	}

	// Input is ignored while the recovery sequence owns the player.
	if !player.MovementEnabled || !moving {
		return
	}
	player.Direction = dir

	speed := cfg.Player.MoveSpeed
	if player.Sprinting {
		speed = cfg.Player.SprintSpeed
	}

	delta := dir.Scale(speed * dt)
	if player.CollisionEnabled {
		moveWithCollision(obj, delta)
	} else {
		obj.X += delta.X
		obj.Y += delta.Y
	}
	obj.Update()
}
