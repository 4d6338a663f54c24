package gameplay

import "territory/pkg/game/state"

// applyEvent hands any item the event grants to the player, logs the event
// message and ends the game on victory.
func applyEvent(g *state.Game, ev state.Event) {
	if ev.GrantsItem() {
		g.Player.AddItem(ev.Item, ev.Description)
	}
	if ev.Message != "" {
		g.AddMessage(ev.Message)
	}
	if ev.Won() {
		g.Over = true
		logMessage(g, "VICTORY!")
	}
}
