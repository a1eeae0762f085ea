package systems

import (
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/nightwarden/components"
)

// Fixed control-cycle step. Ebitengine ticks at 60 TPS by default.
const tickSeconds = 1.0 / 60.0

// UpdateTime advances the injected clock by one control cycle. It must be
// the first system registered so every other system sees a consistent
// "now" within a cycle.
func UpdateTime(e *ecs.ECS) {
	entry, ok := components.Time.First(e.World)
	if !ok {
		return
	}
	t := components.Time.Get(entry)
	t.Delta = tickSeconds
	t.Now += tickSeconds
	t.Frame++
}

// Now returns the current clock reading, or zero when no clock entity
// exists yet.
func Now(e *ecs.ECS) float64 {
	entry, ok := components.Time.First(e.World)
	if !ok {
		return 0
	}
	return components.Time.Get(entry).Now
}
