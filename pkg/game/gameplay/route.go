package gameplay

import (
	"territory/pkg/engine/graph"
	"territory/pkg/game/state"
)

// OptimalRoute is the greedy collection route over every chest, starting at
// the entrance and ending at the exit. It is the yardstick for Efficiency.
func OptimalRoute(w *state.World) []state.NodeID {
	return w.Graph.CollectionRoute(w.Start, w.ChestRooms, w.Exit)
}

// RemainingRoute is the greedy route from the player over the chests that
// are still closed, ending at the exit.
func RemainingRoute(g *state.Game) []state.NodeID {
	return g.World.Graph.CollectionRoute(g.Player.Position, g.World.ActiveChests(), g.World.Exit)
}

// ShowRoute highlights the remaining collection route
func ShowRoute(g *state.Game) []state.NodeID {
	route := RemainingRoute(g)
	g.Highlight = route
	if len(route) == 0 {
		logMessage(g, "No possible path.")
		return nil
	}
	logMessage(g, "Collection route: %d steps", graph.RouteLength(route))
	return route
}

// Efficiency compares the optimal route length with the steps the player has
// taken. 1 means the player matched or beat the route; a player who has not
// moved scores 0.
func Efficiency(g *state.Game) float64 {
	if g.Player.Steps == 0 {
		return 0
	}
	e := float64(graph.RouteLength(OptimalRoute(g.World))) / float64(g.Player.Steps)
	return min(e, 1)
}
