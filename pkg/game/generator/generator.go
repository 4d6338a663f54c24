// Package generator produces candidate maze grids. Candidates are not
// guaranteed to be solvable; the setup package checks and retries them.
package generator

import (
	"math/rand"

	"territory/pkg/engine/world"
)

// GridGenerator is an interface for map generation algorithms
type GridGenerator interface {
	Generate(rng *rand.Rand) *world.Grid
	Name() string
}

// Available generators
var (
	Random     = NewRandomGenerator()
	LineWalker = NewLineWalkerGenerator()
	BSP        = NewBSPGenerator()
	Fallback   = &FallbackGenerator{}
)

// DefaultGenerator is the default map generator
var DefaultGenerator GridGenerator = Random

// ByName returns the generator with the given name, or nil if none matches.
func ByName(name string) GridGenerator {
	for _, g := range []GridGenerator{Random, LineWalker, BSP, Fallback} {
		if g.Name() == name {
			return g
		}
	}
	return nil
}

// entranceAndExit returns the fixed corner positions used by every
// generated layout.
func entranceAndExit(width, height int) (world.Point, world.Point) {
	return world.Point{X: 0, Y: 0}, world.Point{X: width - 1, Y: height - 1}
}

// placeChests turns up to n floor tiles, chosen uniformly without overlap,
// into chests. It returns how many were placed.
func placeChests(grid *world.Grid, rng *rand.Rand, n int) int {
	floor := grid.Find(world.Floor)
	rng.Shuffle(len(floor), func(i, j int) { floor[i], floor[j] = floor[j], floor[i] })
	n = min(n, len(floor))
	for _, p := range floor[:n] {
		grid.Set(p, world.Chest)
	}
	return n
}
