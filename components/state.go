package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/nightwarden/config"
)

type StateData struct {
	CurrentState  config.StateID
	PreviousState config.StateID
	EnteredAt     float64 // Clock time of the last transition
}

// Transition switches state and records when it happened.
func (s *StateData) Transition(to config.StateID, now float64) {
	if s.CurrentState == to {
		return
	}
	s.PreviousState = s.CurrentState
	s.CurrentState = to
	s.EnteredAt = now
}

var State = donburi.NewComponentType[StateData]()
