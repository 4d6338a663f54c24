package gameplay

import "territory/pkg/game/state"

// RevealAround lifts the fog around the player and returns how many tiles
// were newly discovered.
func RevealAround(g *state.Game) int {
	p, ok := g.World.Coord(g.Player.Position)
	if !ok {
		return 0
	}
	return g.Fog.Reveal(g.World.Grid, p, g.RevealRadius)
}
