package generator

import (
	"math/rand"
	"testing"

	"territory/pkg/engine/world"
)

func TestBSPGenerate_AllHallsReachable(t *testing.T) {
	for seed := int64(1); seed <= 100; seed++ {
		grid := BSP.Generate(rand.New(rand.NewSource(seed)))

		if msg := grid.Validate(); msg != "" {
			t.Fatalf("seed %d: Validate() = %q", seed, msg)
		}
		reachable := countReachable(grid, world.Point{X: 0, Y: 0})
		if total := countPassable(grid); reachable != total {
			t.Fatalf("seed %d: %d of %d passable tiles reachable from the entrance", seed, reachable, total)
		}
	}
}

func TestBSPGenerate_StartAndExitSet(t *testing.T) {
	grid := BSP.Generate(rand.New(rand.NewSource(7)))
	if grid.At(world.Point{X: 0, Y: 0}) != world.Entrance {
		t.Errorf("At(0,0) = %v, want entrance", grid.At(world.Point{X: 0, Y: 0}))
	}
	if grid.At(world.Point{X: 14, Y: 14}) != world.Exit {
		t.Errorf("At(14,14) = %v, want exit", grid.At(world.Point{X: 14, Y: 14}))
	}
	if n := grid.Count(world.Chest); n != 6 {
		t.Errorf("Count(Chest) = %d, want 6", n)
	}
}

func TestBSPSplit_LeavesRespectMinimumSize(t *testing.T) {
	g := NewBSPGenerator()
	root := &bspNode{width: g.Width, height: g.Height}
	g.split(rand.New(rand.NewSource(3)), root)

	var walk func(n *bspNode) int
	walk = func(n *bspNode) int {
		if n.left == nil {
			if n.width < g.MinNode || n.height < g.MinNode {
				t.Errorf("leaf %dx%d smaller than %d", n.width, n.height, g.MinNode)
			}
			return 1
		}
		return walk(n.left) + walk(n.right)
	}
	if leaves := walk(root); leaves < 2 {
		t.Errorf("15x15 split into %d leaves, want at least 2", leaves)
	}
}
