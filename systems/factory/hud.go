package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/nightwarden/archetypes"
	"github.com/automoto/nightwarden/components"
)

func CreateHUD(ecs *ecs.ECS) *donburi.Entry {
	hud := archetypes.HUD.Spawn(ecs)

	visible := make(map[string]bool, len(components.AllHUDSurfaces))
	for _, id := range components.AllHUDSurfaces {
		visible[id] = true
	}
	components.HUD.SetValue(hud, components.HUDData{Visible: visible})

	return hud
}
