package gameplay

import (
	"time"

	"github.com/leonelquinteros/gotext"

	"territory/pkg/engine/graph"
	"territory/pkg/game/savegame"
	"territory/pkg/game/setup"
	"territory/pkg/game/state"
)

// DefaultPlayerName is used when the caller does not name the player
const DefaultPlayerName = "Explorer"

// NewSeed returns a seed for a fresh world
func NewSeed() int64 {
	return time.Now().UnixNano()
}

// BuildGame generates a world from seed and starts a session on it
func BuildGame(opts setup.Options, seed int64) *state.Game {
	return StartGame(setup.NewWorld(opts, seed), DefaultPlayerName, 0)
}

// newGame creates the session and sets the fog radius. A radius of zero or
// less keeps the default.
func newGame(w *state.World, playerName string, radius int) *state.Game {
	if playerName == "" {
		playerName = DefaultPlayerName
	}
	g := state.NewGame(w, playerName)
	if radius > 0 {
		g.RevealRadius = radius
	}
	return g
}

// StartGame begins a session on an existing world with the player at the
// entrance and the area around it revealed.
func StartGame(w *state.World, playerName string, radius int) *state.Game {
	g := newGame(w, playerName, radius)
	RevealAround(g)
	logMessage(g, "Use WASD or the arrow keys to move!")
	return g
}

// Snapshot captures what a save needs to restore the session
func Snapshot(g *state.Game) savegame.State {
	return savegame.State{
		Position: g.Player.Position.String(),
		Steps:    g.Player.Steps,
		Items:    g.Player.Items(),
		Seed:     g.World.Seed,
		HasSeed:  true,
	}
}

// Restore starts a session on w from a saved state. A position that does not
// name a node of w puts the player back at the entrance. Chests whose content
// the player already holds stay opened.
func Restore(w *state.World, st savegame.State, playerName string, radius int) *state.Game {
	g := newGame(w, playerName, radius)

	if pos, ok := w.ParseNode(st.Position); ok {
		g.Player.Position = pos
		g.Player.History = []state.NodeID{pos}
	}
	g.Player.Steps = max(st.Steps, 0)

	for _, item := range st.Items {
		desc := gotext.Get("Item recovered.")
		if item == w.KeyItem {
			desc = gotext.Get("Opens the final gate")
		}
		g.Player.AddItem(item, desc)
	}
	for _, chest := range w.ActiveChests() {
		if item, ok := w.Contents[chest]; ok && item != "" && g.Player.HasItem(item) {
			w.OpenChest(chest)
		}
	}

	RevealAround(g)
	return g
}

// Stats summarises a session for the end screen
type Stats struct {
	Steps        int
	OptimalSteps int
	Items        int
	Efficiency   float64
	Won          bool
}

// GameStats collects the session's stats
func GameStats(g *state.Game) Stats {
	return Stats{
		Steps:        g.Player.Steps,
		OptimalSteps: graph.RouteLength(OptimalRoute(g.World)),
		Items:        g.Player.ItemCount(),
		Efficiency:   Efficiency(g),
		Won:          g.Over,
	}
}
