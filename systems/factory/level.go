package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/nightwarden/archetypes"
	"github.com/automoto/nightwarden/components"
	"github.com/automoto/nightwarden/leveldata"
)

// CreateLevel registers parsed level data on the world and builds a wall
// entity per occluding rect.
func CreateLevel(ecs *ecs.ECS, lvl *leveldata.Level) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(level, components.LevelData{CurrentLevel: lvl})

	for _, wall := range lvl.Walls {
		CreateWall(ecs, wall.X, wall.Y, wall.W, wall.H)
	}

	return level
}
