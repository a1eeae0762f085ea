package systems

import (
	"math"

	astar "github.com/beefsack/go-astar"
	"github.com/solarlune/resolv"

	"github.com/automoto/nightwarden/gamemath"
	"github.com/automoto/nightwarden/tags"
)

// NavGrid represents the walkable areas of the level
type NavGrid struct {
	Width, Height int
	CellSize      float64
	Nodes         [][]*NavNode // 2D grid of nodes
}

// NavNode represents a single cell in the navigation grid
// Implements astar.Pather interface
type NavNode struct {
	X, Y     int
	Walkable bool
	Grid     *NavGrid // Reference to parent grid for neighbor lookup
}

// PathNeighbors returns adjacent walkable nodes (implements astar.Pather)
func (n *NavNode) PathNeighbors() []astar.Pather {
	var neighbors []astar.Pather

	dirs := []struct{ dx, dy int }{
		{-1, 0}, {1, 0}, {0, -1}, {0, 1}, // Cardinal
		{-1, -1}, {1, -1}, {-1, 1}, {1, 1}, // Diagonal
	}

	for _, d := range dirs {
		nx, ny := n.X+d.dx, n.Y+d.dy
		if nx < 0 || nx >= n.Grid.Width || ny < 0 || ny >= n.Grid.Height {
			continue
		}

		neighbor := n.Grid.Nodes[ny][nx]
		if !neighbor.Walkable {
			continue
		}

		// Diagonal steps must not cut a wall corner: both adjacent
		// cardinals have to be open.
		if d.dx != 0 && d.dy != 0 {
			if !n.Grid.Nodes[n.Y][nx].Walkable || !n.Grid.Nodes[ny][n.X].Walkable {
				continue
			}
		}

		neighbors = append(neighbors, neighbor)
	}

	return neighbors
}

// PathNeighborCost returns the movement cost between adjacent nodes (implements astar.Pather)
func (n *NavNode) PathNeighborCost(to astar.Pather) float64 {
	toNode := to.(*NavNode)
	dx := float64(toNode.X - n.X)
	dy := float64(toNode.Y - n.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// PathEstimatedCost returns heuristic distance to target (implements astar.Pather)
func (n *NavNode) PathEstimatedCost(to astar.Pather) float64 {
	toNode := to.(*NavNode)
	dx := float64(toNode.X - n.X)
	dy := float64(toNode.Y - n.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// CreateNavGrid builds the navigation grid from the resolv space by
// probing each cell for solid geometry.
func CreateNavGrid(space *resolv.Space, levelWidth, levelHeight int, cellSize float64) *NavGrid {
	gridW := int(float64(levelWidth) / cellSize)
	gridH := int(float64(levelHeight) / cellSize)

	grid := &NavGrid{
		Width:    gridW,
		Height:   gridH,
		CellSize: cellSize,
		Nodes:    make([][]*NavNode, gridH),
	}

	for y := 0; y < gridH; y++ {
		grid.Nodes[y] = make([]*NavNode, gridW)
		for x := 0; x < gridW; x++ {
			grid.Nodes[y][x] = &NavNode{
				X:        x,
				Y:        y,
				Walkable: true,
				Grid:     grid,
			}
		}
	}

	for y := 0; y < gridH; y++ {
		for x := 0; x < gridW; x++ {
			worldX := float64(x) * cellSize
			worldY := float64(y) * cellSize

			testObj := resolv.NewObject(worldX+2, worldY+2, cellSize-4, cellSize-4)
			space.Add(testObj)
			if testObj.Check(0, 0, tags.ResolvSolid) != nil {
				grid.Nodes[y][x].Walkable = false
			}
			space.Remove(testObj)
		}
	}

	return grid
}

// FindPath uses go-astar to find a path between world coordinates. The
// returned points are cell centers from start to goal; nil when no path
// exists.
func (g *NavGrid) FindPath(start, goal gamemath.Vec2) []gamemath.Vec2 {
	sx := clampInt(int(start.X/g.CellSize), 0, g.Width-1)
	sy := clampInt(int(start.Y/g.CellSize), 0, g.Height-1)
	gx := clampInt(int(goal.X/g.CellSize), 0, g.Width-1)
	gy := clampInt(int(goal.Y/g.CellSize), 0, g.Height-1)

	startNode := g.Nodes[sy][sx]
	goalNode := g.Nodes[gy][gx]

	if !startNode.Walkable {
		startNode = g.findNearestWalkable(sx, sy)
	}
	if !goalNode.Walkable {
		goalNode = g.findNearestWalkable(gx, gy)
	}
	if startNode == nil || goalNode == nil {
		return nil
	}

	path, _, found := astar.Path(goalNode, startNode)
	if !found {
		return nil
	}

	// go-astar returns the path from the destination pather back to the
	// source, so walking it from the start pather yields in-order points.
	result := make([]gamemath.Vec2, len(path))
	for i, p := range path {
		node := p.(*NavNode)
		x, y := g.GridToWorld(node.X, node.Y)
		result[i] = gamemath.Vec2{X: x, Y: y}
	}

	return result
}

// findNearestWalkable finds the nearest walkable node to the given position
func (g *NavGrid) findNearestWalkable(x, y int) *NavNode {
	for radius := 1; radius < 10; radius++ {
		for dy := -radius; dy <= radius; dy++ {
			for dx := -radius; dx <= radius; dx++ {
				nx, ny := x+dx, y+dy
				if nx >= 0 && nx < g.Width && ny >= 0 && ny < g.Height {
					if g.Nodes[ny][nx].Walkable {
						return g.Nodes[ny][nx]
					}
				}
			}
		}
	}
	return nil
}

// GridToWorld converts grid coordinates to world coordinates (center of cell)
func (g *NavGrid) GridToWorld(gridX, gridY int) (float64, float64) {
	return float64(gridX)*g.CellSize + g.CellSize/2,
		float64(gridY)*g.CellSize + g.CellSize/2
}

func clampInt(v, minVal, maxVal int) int {
	return max(minVal, min(maxVal, v))
}
