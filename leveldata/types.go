// Package leveldata provides TMX level parsing for the maze, spawn points,
// and patrol waypoints. It has no dependencies on ebitengine, donburi, or
// resolv.
package leveldata

import "github.com/automoto/nightwarden/gamemath"

// Level holds all level data parsed from a TMX file or built in code.
type Level struct {
	Name   string
	Width  int // Pixels
	Height int // Pixels

	Walls        []WallRect
	PlayerSpawn  gamemath.Vec2
	WardenSpawn  gamemath.Vec2
	Waypoints    []gamemath.Vec2 // Ordered patrol waypoints
	RespawnPoint gamemath.Vec2   // Where captured players are returned
	HasRespawn   bool
}

// WallRect represents a solid occluding wall tile.
type WallRect struct {
	X, Y, W, H float64
}

// SpawnForScene returns the respawn pose registered for this level, if any.
func (l *Level) SpawnForScene() (gamemath.Vec2, bool) {
	if !l.HasRespawn {
		return gamemath.Vec2{}, false
	}
	return l.RespawnPoint, true
}
