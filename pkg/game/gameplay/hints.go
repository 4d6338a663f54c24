package gameplay

import "territory/pkg/game/state"

// Hint highlights the shortest path from the player to the exit
func Hint(g *state.Game) []state.NodeID {
	path := g.World.Graph.ShortestPath(g.Player.Position, g.World.Exit)
	g.Highlight = path
	if len(path) == 0 {
		logMessage(g, "No possible path.")
		return nil
	}
	logMessage(g, "Hint active (shortest path): %d steps", len(path)-1)
	return path
}

// Sweep highlights the depth-first order of every node reachable from the
// player.
func Sweep(g *state.Game) []state.NodeID {
	order := g.World.Graph.DepthFirstOrder(g.Player.Position)
	g.Highlight = order
	if len(order) == 0 {
		logMessage(g, "Depth-first sweep failed.")
		return nil
	}
	logMessage(g, "Showing depth-first sweep: %d nodes", len(order))
	return order
}
