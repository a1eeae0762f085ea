package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/nightwarden/archetypes"
	"github.com/automoto/nightwarden/components"
	"github.com/automoto/nightwarden/gamemath"
	"github.com/automoto/nightwarden/leveldata"
)

// CreateSession spawns the session entity carrying the clock, the death
// counter, and the per-scene respawn table.
func CreateSession(ecs *ecs.ECS, sceneID string, lvl *leveldata.Level) *donburi.Entry {
	session := archetypes.Session.Spawn(ecs)

	spawns := map[string]gamemath.Vec2{}
	if pos, ok := lvl.SpawnForScene(); ok {
		spawns[sceneID] = pos
	}

	components.Session.SetValue(session, components.SessionData{
		SceneID: sceneID,
		Spawns:  spawns,
	})
	components.Time.SetValue(session, components.TimeData{})

	return session
}
