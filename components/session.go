package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/nightwarden/gamemath"
)

// SessionData is the explicit session collaborator shared by the behavior
// controller and its systems: death counter, the recovery mutual-exclusion
// flag, and per-scene respawn lookup. It replaces any notion of a global
// session singleton; systems resolve it once through the ECS world.
type SessionData struct {
	SceneID string
	Deaths  int

	// Spawns maps scene ids to respawn poses.
	Spawns map[string]gamemath.Vec2

	recoveryInProgress bool
}

// RegisterDeath increments the session death counter and returns the new
// total.
func (s *SessionData) RegisterDeath() int {
	s.Deaths++
	return s.Deaths
}

// RecoveryInProgress reports whether a capture recovery sequence is
// currently running. While true, further captures are suppressed.
func (s *SessionData) RecoveryInProgress() bool {
	return s.recoveryInProgress
}

// SetRecoveryInProgress flips the recovery guard. It must be the first
// mutation of a recovery sequence and the last one on every exit path.
func (s *SessionData) SetRecoveryInProgress(v bool) {
	s.recoveryInProgress = v
}

// GetSpawnForScene resolves the respawn pose registered for a scene.
func (s *SessionData) GetSpawnForScene(sceneID string) (gamemath.Vec2, bool) {
	pos, ok := s.Spawns[sceneID]
	return pos, ok
}

var Session = donburi.NewComponentType[SessionData]()
