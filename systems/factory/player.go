package factory

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/nightwarden/archetypes"
	"github.com/automoto/nightwarden/components"
	cfg "github.com/automoto/nightwarden/config"
	"github.com/automoto/nightwarden/gamemath"
	"github.com/automoto/nightwarden/tags"
)

// CreatePlayer spawns the player at a world position. x, y is the bounds
// center, matching how level spawn markers are authored.
func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	w := cfg.Player.CollisionWidth
	h := cfg.Player.CollisionHeight
	obj := resolv.NewObject(x-w/2, y-h/2, w, h)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.AddTags("character", tags.ResolvPlayer)
	obj.Data = player

	components.Object.SetValue(player, components.ObjectData{Object: obj})
	components.Player.SetValue(player, components.PlayerData{
		Direction:        gamemath.Vec2{X: 1, Y: 0},
		MovementEnabled:  true,
		CollisionEnabled: true,
		Stamina:          cfg.Player.StaminaMax,
	})
	components.State.SetValue(player, components.StateData{
		CurrentState:  cfg.Idle,
		PreviousState: cfg.StateNone,
	})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return player
}
