package setup

import (
	"github.com/zyedidia/generic/mapset"

	"territory/pkg/engine/world"
)

// reachableFrom returns every passable point reachable from start by BFS
// over the four cardinal directions.
func reachableFrom(grid *world.Grid, start world.Point) *mapset.Set[world.Point] {
	reachable := mapset.New[world.Point]()
	if !grid.Passable(start) {
		return &reachable
	}

	reachable.Put(start)
	queue := []world.Point{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, n := range grid.Neighbors(current) {
			if !reachable.Has(n) {
				reachable.Put(n)
				queue = append(queue, n)
			}
		}
	}

	return &reachable
}

// IsSolvable reports whether the exit and every chest can be reached from
// the entrance. A grid without exactly one entrance and one exit is never
// solvable.
func IsSolvable(grid *world.Grid) bool {
	entrances := grid.Find(world.Entrance)
	exits := grid.Find(world.Exit)
	if len(entrances) != 1 || len(exits) != 1 {
		return false
	}

	targets := append(exits, grid.Find(world.Chest)...)

	reachable := reachableFrom(grid, entrances[0])
	for _, p := range targets {
		if !reachable.Has(p) {
			return false
		}
	}
	return true
}

// UnreachableTargets lists the exit and chest tiles that cannot be reached
// from the entrance, in scan order.
func UnreachableTargets(grid *world.Grid) []world.Point {
	var out []world.Point
	entrances := grid.Find(world.Entrance)
	if len(entrances) == 0 {
		return append(grid.Find(world.Exit), grid.Find(world.Chest)...)
	}

	reachable := reachableFrom(grid, entrances[0])
	grid.ForEachTile(func(p world.Point, t world.Tile) {
		if (t == world.Exit || t == world.Chest) && !reachable.Has(p) {
			out = append(out, p)
		}
	})
	return out
}
