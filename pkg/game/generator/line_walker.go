package generator

import (
	"math/rand"

	"territory/pkg/engine/world"
)

// LineWalkerGenerator carves corridors out of solid rock by walking lines in
// random directions with branching probability. Every carved tile is joined
// to the entrance, and a final walk links the exit, so candidates are always
// solvable.
type LineWalkerGenerator struct {
	Width             int
	Height            int
	Chests            int
	BranchProbability float64
	MinDist           int
	MaxDist           int
}

// NewLineWalkerGenerator returns a walker sized for the standard 15x15 layout
func NewLineWalkerGenerator() *LineWalkerGenerator {
	return &LineWalkerGenerator{
		Width:             world.DefaultWidth,
		Height:            world.DefaultHeight,
		Chests:            6,
		BranchProbability: 0.35,
		MinDist:           2,
		MaxDist:           6,
	}
}

// Name returns the name of this generator
func (g *LineWalkerGenerator) Name() string {
	return "walker"
}

// Generate creates one candidate grid
func (g *LineWalkerGenerator) Generate(rng *rand.Rand) *world.Grid {
	grid := world.NewGrid(g.Width, g.Height)
	grid.Fill(world.Wall)

	entrance, exit := entranceAndExit(g.Width, g.Height)
	grid.Set(entrance, world.Floor)

	// Main corridors in all four directions; the ones that leave the grid
	// at the corner stop immediately.
	for _, dir := range world.AllDirections() {
		g.buildLineOfRooms(grid, rng, entrance, dir, g.BranchProbability)
	}

	g.walkTowards(grid, rng, entrance, exit)

	grid.Set(entrance, world.Entrance)
	grid.Set(exit, world.Exit)
	placeChests(grid, rng, g.Chests)

	return grid
}

// randomDirection returns a random cardinal direction
func (g *LineWalkerGenerator) randomDirection(rng *rand.Rand) world.Direction {
	return world.Direction(rng.Intn(4))
}

// buildLineOfRooms carves a straight line from p in the given direction,
// occasionally branching off in a random direction. It returns where the
// line ended.
func (g *LineWalkerGenerator) buildLineOfRooms(grid *world.Grid, rng *rand.Rand, p world.Point, dir world.Direction, branchProbability float64) world.Point {
	if !dir.IsValid() {
		dir = g.randomDirection(rng)
	}

	distance := g.MinDist + rng.Intn(g.MaxDist-g.MinDist+1)

	for segment := 0; segment < distance; segment++ {
		grid.Set(p, world.Floor)

		next := p.Add(dir)
		if !grid.InBounds(next) {
			return p
		}

		if rng.Float64() < branchProbability {
			g.buildLineOfRooms(grid, rng, p, g.randomDirection(rng), branchProbability-.1)
		}

		p = next
	}

	grid.Set(p, world.Floor)
	return p
}

// walkTowards carves a monotone path from p to goal, choosing between the
// horizontal and vertical step at random while both still close the gap.
func (g *LineWalkerGenerator) walkTowards(grid *world.Grid, rng *rand.Rand, p, goal world.Point) {
	for p != goal {
		grid.Set(p, world.Floor)

		var options []world.Direction
		switch {
		case p.X < goal.X:
			options = append(options, world.East)
		case p.X > goal.X:
			options = append(options, world.West)
		}
		switch {
		case p.Y < goal.Y:
			options = append(options, world.South)
		case p.Y > goal.Y:
			options = append(options, world.North)
		}

		p = p.Add(options[rng.Intn(len(options))])
	}
	grid.Set(p, world.Floor)
}
