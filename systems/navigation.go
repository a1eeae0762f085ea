package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/nightwarden/components"
	cfg "github.com/automoto/nightwarden/config"
	"github.com/automoto/nightwarden/gamemath"
	"github.com/automoto/nightwarden/tags"
)

// Navigator is the path-following capability the behavior controller
// commands. NavAgentData implements it; the controller never touches the
// nav grid or the resolv space directly.
type Navigator interface {
	SetDestination(pos gamemath.Vec2)
	Stop()
	Resume()
	ResetPath()
	RemainingDistance() float64
	PathPending() bool
	Velocity() gamemath.Vec2
	StoppingDistance() float64
	Radius() float64
}

var _ Navigator = (*components.NavAgentData)(nil)

// navGridHolder attaches the scene's nav grid to the world.
type navGridHolder struct {
	Grid *NavGrid
}

var navGridComponent = donburi.NewComponentType[navGridHolder]()

// InitNavigation builds the nav grid for the current space and stores it
// on the world. Call once after the level's walls are in the space.
func InitNavigation(e *ecs.ECS, levelWidth, levelHeight int) {
	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)
	grid := CreateNavGrid(space, levelWidth, levelHeight, cfg.Nav.CellSize)

	entry := e.World.Entry(e.World.Create(navGridComponent))
	navGridComponent.SetValue(entry, navGridHolder{Grid: grid})
}

func worldNavGrid(e *ecs.ECS) *NavGrid {
	entry, ok := navGridComponent.First(e.World)
	if !ok {
		return nil
	}
	return navGridComponent.Get(entry).Grid
}

// UpdateNavigation plans requested paths and advances every nav agent
// along its path by one control cycle.
func UpdateNavigation(e *ecs.ECS) {
	timeEntry, ok := components.Time.First(e.World)
	if !ok {
		return
	}
	dt := components.Time.Get(timeEntry).Delta
	grid := worldNavGrid(e)

	components.NavAgent.Each(e.World, func(entry *donburi.Entry) {
		nav := components.NavAgent.Get(entry)
		obj := components.Object.Get(entry)
		if obj == nil || obj.Object == nil {
			return
		}
		advanceNavAgent(nav, obj, grid, dt)
	})
}

func advanceNavAgent(nav *components.NavAgentData, obj *components.ObjectData, grid *NavGrid, dt float64) {
	pos := obj.Center()

	if nav.Pending && nav.HasDestination {
		nav.Path = planPath(grid, pos, nav.Destination)
		nav.PathIndex = 0
		nav.Pending = false
	}

	nav.Remaining = remainingDistance(nav, pos)
	nav.Vel = gamemath.Vec2{}

	if nav.Stopped || !nav.HasDestination || len(nav.Path) == 0 {
		return
	}
	if nav.Remaining <= nav.StoppingDist {
		return
	}

	// Consume path corners we are already on top of.
	for nav.PathIndex < len(nav.Path)-1 &&
		pos.DistanceTo(nav.Path[nav.PathIndex]) <= cfg.Nav.WaypointReached {
		nav.PathIndex++
	}

	target := nav.Path[nav.PathIndex]
	next := gamemath.MoveToward(pos, target, nav.Speed*dt)
	moved := moveWithCollision(obj, next.Sub(pos))
	obj.Update()

	if dt > 0 {
		nav.Vel = moved.Scale(1 / dt)
	}
	nav.Remaining = remainingDistance(nav, obj.Center())
}

func planPath(grid *NavGrid, from, to gamemath.Vec2) []gamemath.Vec2 {
	if grid == nil {
		// No grid (open test worlds): head straight for the target.
		return []gamemath.Vec2{to}
	}
	path := grid.FindPath(from, to)
	if path == nil {
		return nil
	}
	// The final corner is a cell center; finish on the exact destination.
	return append(path, to)
}

func remainingDistance(nav *components.NavAgentData, pos gamemath.Vec2) float64 {
	if !nav.HasDestination || len(nav.Path) == 0 {
		return 0
	}
	idx := min(nav.PathIndex, len(nav.Path)-1)
	total := pos.DistanceTo(nav.Path[idx])
	for i := idx; i < len(nav.Path)-1; i++ {
		total += nav.Path[i].DistanceTo(nav.Path[i+1])
	}
	return total
}

// moveWithCollision slides the object by delta, testing each axis against
// solid geometry separately. Returns the displacement actually applied.
func moveWithCollision(obj *components.ObjectData, delta gamemath.Vec2) gamemath.Vec2 {
	var moved gamemath.Vec2
	if delta.X != 0 {
		if obj.Check(delta.X, 0, tags.ResolvSolid) == nil {
			obj.X += delta.X
			moved.X = delta.X
		}
	}
	if delta.Y != 0 {
		if obj.Check(0, delta.Y, tags.ResolvSolid) == nil {
			obj.Y += delta.Y
			moved.Y = delta.Y
		}
	}
	return moved
}
