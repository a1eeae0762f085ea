package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/nightwarden/archetypes"
	"github.com/automoto/nightwarden/components"
	"github.com/automoto/nightwarden/gamemath"
)

func CreateCamera(ecs *ecs.ECS, start gamemath.Vec2) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.SetValue(camera, components.CameraData{
		Position: start,
		Mode:     components.CameraFollow,
		Listener: components.CameraFollow,
	})
	return camera
}
