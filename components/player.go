package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/nightwarden/gamemath"
)

type PlayerData struct {
	Direction gamemath.Vec2 // Facing, unit length

	// MovementEnabled is handed off to the recovery sequence: input is
	// ignored while false. CollisionEnabled is dropped only for the
	// teleport pose write.
	MovementEnabled  bool
	CollisionEnabled bool

	Stamina   float64
	Sprinting bool
}

var Player = donburi.NewComponentType[PlayerData]()
