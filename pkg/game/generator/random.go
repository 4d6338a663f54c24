package generator

import (
	"math/rand"

	"territory/pkg/engine/world"
)

// RandomGenerator scatters walls independently over the grid and then drops
// chests onto the remaining floor.
type RandomGenerator struct {
	Width           int
	Height          int
	WallProbability float64
	Chests          int
}

// NewRandomGenerator returns a generator for the standard 15x15 layout
func NewRandomGenerator() *RandomGenerator {
	return &RandomGenerator{
		Width:           world.DefaultWidth,
		Height:          world.DefaultHeight,
		WallProbability: 0.25,
		Chests:          6,
	}
}

// Name returns the name of this generator
func (g *RandomGenerator) Name() string {
	return "random"
}

// Generate creates one candidate grid
func (g *RandomGenerator) Generate(rng *rand.Rand) *world.Grid {
	grid := world.NewGrid(g.Width, g.Height)
	entrance, exit := entranceAndExit(g.Width, g.Height)
	protected := g.protected(entrance, exit)

	grid.ForEachTile(func(p world.Point, _ world.Tile) {
		if protected[p] {
			return
		}
		if rng.Float64() < g.WallProbability {
			grid.Set(p, world.Wall)
		}
	})

	grid.Set(entrance, world.Entrance)
	grid.Set(exit, world.Exit)
	placeChests(grid, rng, g.Chests)

	return grid
}

// protected lists the cells that never become walls: both corners and the
// tile directly beside and below/above each, so neither corner starts sealed.
func (g *RandomGenerator) protected(entrance, exit world.Point) map[world.Point]bool {
	return map[world.Point]bool{
		entrance:                          true,
		exit:                              true,
		{X: entrance.X, Y: entrance.Y + 1}: true,
		{X: entrance.X + 1, Y: entrance.Y}: true,
		{X: exit.X, Y: exit.Y - 1}:         true,
		{X: exit.X - 1, Y: exit.Y}:         true,
	}
}
