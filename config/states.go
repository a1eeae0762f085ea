package config

import "github.com/yohamta/donburi/ecs"

// StateID identifies a behavior or animation state.
type StateID int

const (
	StateNone StateID = iota

	Idle
	Walk
	Running

	StatePatrol
	StateChase
	StateCaught
	StateCooldown
)

// StateName maps state ids to display names for the debug overlay.
var StateName = map[StateID]string{
	StateNone:     "none",
	Idle:          "idle",
	Walk:          "walk",
	Running:       "running",
	StatePatrol:   "patrol",
	StateChase:    "chase",
	StateCaught:   "caught",
	StateCooldown: "cooldown",
}

// Default is the render/update layer all entities live on.
const Default = ecs.LayerDefault
