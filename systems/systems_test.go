package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/nightwarden/components"
	"github.com/automoto/nightwarden/leveldata"
	"github.com/automoto/nightwarden/systems/factory"
)

// newTestECS builds an ECS with a collision space and a session clock.
// A nil level gets an empty open arena; tests add walls and agents as
// needed.
func newTestECS(lvl *leveldata.Level) *ecs.ECS {
	if lvl == nil {
		lvl = &leveldata.Level{Width: 640, Height: 360}
	}
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, lvl.Width, lvl.Height, 16, 16)
	factory.CreateSession(e, "test", lvl)
	return e
}

// setClock writes the injected clock directly. Tests drive every timed
// wait through this instead of sleeping.
func setClock(e *ecs.ECS, now float64) {
	entry, ok := components.Time.First(e.World)
	if !ok {
		return
	}
	t := components.Time.Get(entry)
	t.Delta = now - t.Now
	t.Now = now
	t.Frame++
}

// step advances the clock one fixed cycle and runs the behavior and
// navigation systems, mirroring the scene's system order.
func step(e *ecs.ECS) {
	UpdateTime(e)
	UpdateWardens(e)
	UpdateCaptureTrigger(e)
	UpdateNavigation(e)
}
