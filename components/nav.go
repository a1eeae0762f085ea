package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/nightwarden/gamemath"
)

// NavAgentData is the path-following capability commanded by the behavior
// controller. The navigation system plans over the level's nav grid and
// advances the agent along Path each control cycle; the controller only
// talks to the capability methods below.
type NavAgentData struct {
	Speed        float64
	StoppingDist float64
	AgentRadius  float64

	Destination    gamemath.Vec2
	HasDestination bool
	Pending        bool // A path has been requested but not planned yet
	Stopped        bool

	Path      []gamemath.Vec2
	PathIndex int

	Vel       gamemath.Vec2 // World units per second over the last cycle
	Remaining float64       // Remaining path distance, updated per cycle
}

// SetDestination requests a path toward pos. Planning happens on the next
// navigation cycle; until then PathPending reports true.
func (n *NavAgentData) SetDestination(pos gamemath.Vec2) {
	n.Destination = pos
	n.HasDestination = true
	n.Pending = true
}

// Stop halts path following without discarding the current path.
func (n *NavAgentData) Stop() { n.Stopped = true }

// Resume continues path following after a Stop.
func (n *NavAgentData) Resume() { n.Stopped = false }

// ResetPath discards the current path and destination.
func (n *NavAgentData) ResetPath() {
	n.Path = nil
	n.PathIndex = 0
	n.HasDestination = false
	n.Pending = false
	n.Remaining = 0
	n.Vel = gamemath.Vec2{}
}

// RemainingDistance returns the path distance left to the destination.
func (n *NavAgentData) RemainingDistance() float64 { return n.Remaining }

// PathPending reports whether a requested path is still being planned.
func (n *NavAgentData) PathPending() bool { return n.Pending }

// Velocity returns the agent's velocity over the last cycle.
func (n *NavAgentData) Velocity() gamemath.Vec2 { return n.Vel }

// StoppingDistance returns how far short of a destination the agent holds.
func (n *NavAgentData) StoppingDistance() float64 { return n.StoppingDist }

// Radius returns the agent's collision radius.
func (n *NavAgentData) Radius() float64 { return n.AgentRadius }

var NavAgent = donburi.NewComponentType[NavAgentData]()
