package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automoto/nightwarden/components"
	"github.com/automoto/nightwarden/gamemath"
	"github.com/automoto/nightwarden/systems/factory"
)

func TestNavAgentReachesDestinationDirectly(t *testing.T) {
	e := newTestECS(nil)
	wardenEntry := factory.CreateWarden(e, 100, 100, nil, 7)
	nav := components.NavAgent.Get(wardenEntry)
	nav.Speed = 100

	nav.SetDestination(gamemath.Vec2{X: 200, Y: 100})
	require.True(t, nav.PathPending())

	for i := 0; i < 120; i++ {
		UpdateTime(e)
		UpdateNavigation(e)
	}

	assert.False(t, nav.PathPending())
	pos := components.Object.Get(wardenEntry).Center()
	assert.LessOrEqual(t, pos.DistanceTo(gamemath.Vec2{X: 200, Y: 100}), nav.StoppingDistance()+1,
		"agent must hold just short of its destination")
}

func TestNavAgentStopHaltsMovement(t *testing.T) {
	e := newTestECS(nil)
	wardenEntry := factory.CreateWarden(e, 100, 100, nil, 7)
	nav := components.NavAgent.Get(wardenEntry)
	nav.Speed = 100
	nav.SetDestination(gamemath.Vec2{X: 300, Y: 100})

	UpdateTime(e)
	UpdateNavigation(e)
	nav.Stop()
	held := components.Object.Get(wardenEntry).Center()

	for i := 0; i < 30; i++ {
		UpdateTime(e)
		UpdateNavigation(e)
	}
	assert.Equal(t, held, components.Object.Get(wardenEntry).Center())
	assert.Equal(t, gamemath.Vec2{}, nav.Velocity())

	nav.Resume()
	UpdateTime(e)
	UpdateNavigation(e)
	assert.Greater(t, components.Object.Get(wardenEntry).Center().X, held.X)
}

func TestNavAgentBlockedBySolidWall(t *testing.T) {
	e := newTestECS(nil)
	wardenEntry := factory.CreateWarden(e, 100, 100, nil, 7)
	nav := components.NavAgent.Get(wardenEntry)
	nav.Speed = 100

	// Wall spanning the whole arena height; no grid, so the agent pushes
	// straight at it and must be stopped by collision.
	factory.CreateWall(e, 160, 0, 16, 360)

	nav.SetDestination(gamemath.Vec2{X: 300, Y: 100})
	for i := 0; i < 120; i++ {
		UpdateTime(e)
		UpdateNavigation(e)
	}

	pos := components.Object.Get(wardenEntry).Center()
	assert.Less(t, pos.X, 160.0, "a solid wall must stop direct movement")
}

func TestNavGridMarksWallsUnwalkable(t *testing.T) {
	e := newTestECS(nil)
	factory.CreateWall(e, 160, 96, 16, 16)

	space := components.Space.Get(components.Space.MustFirst(e.World))
	grid := CreateNavGrid(space, 640, 360, 16)

	assert.False(t, grid.Nodes[6][10].Walkable, "the wall cell must be blocked")
	assert.True(t, grid.Nodes[6][9].Walkable)
	assert.True(t, grid.Nodes[5][10].Walkable)
}

func TestNavGridFindsPathAroundWall(t *testing.T) {
	e := newTestECS(nil)
	// A vertical wall with a gap at the bottom of the arena.
	factory.CreateWall(e, 160, 0, 16, 320)

	space := components.Space.Get(components.Space.MustFirst(e.World))
	grid := CreateNavGrid(space, 640, 360, 16)

	start := gamemath.Vec2{X: 100, Y: 100}
	goal := gamemath.Vec2{X: 300, Y: 100}
	path := grid.FindPath(start, goal)
	require.NotNil(t, path)
	require.NotEmpty(t, path)

	assert.Less(t, path[0].DistanceTo(start), 24.0, "path must begin near the start")
	assert.Less(t, path[len(path)-1].DistanceTo(goal), 24.0, "path must end near the goal")

	// The route has to dip below the wall to get through the gap.
	maxY := 0.0
	for _, p := range path {
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	assert.Greater(t, maxY, 320.0, "path must route through the gap under the wall")
}

func TestNavGridNoPathWhenSealed(t *testing.T) {
	e := newTestECS(nil)
	// A wall sealing the full arena height.
	factory.CreateWall(e, 160, 0, 16, 360)

	space := components.Space.Get(components.Space.MustFirst(e.World))
	grid := CreateNavGrid(space, 640, 360, 16)

	path := grid.FindPath(gamemath.Vec2{X: 100, Y: 100}, gamemath.Vec2{X: 300, Y: 100})
	assert.Nil(t, path)
}
