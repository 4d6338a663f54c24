// Package state holds the game data: node identifiers, the generated world,
// the player and the running game session.
package state

import "territory/pkg/engine/world"

// MaxMessages is how many log lines a game keeps
const MaxMessages = 6

// Game represents one play session
type Game struct {
	World  *World
	Player *Player
	Fog    *world.Fog

	// RevealRadius is how far around the player the fog lifts.
	RevealRadius int

	// Highlight is the last path shown to the player (hint, sweep or route).
	Highlight []NodeID

	Messages []string

	Over bool
}

// NewGame starts a session with a fresh player at the world's entrance
func NewGame(w *World, playerName string) *Game {
	return &Game{
		World:        w,
		Player:       NewPlayer(playerName, w.Start),
		Fog:          world.NewFog(),
		RevealRadius: world.FOVRadius,
		Messages:     make([]string, 0, MaxMessages),
	}
}

// AddMessage adds a message to the game's message log
func (g *Game) AddMessage(msg string) {
	g.Messages = append(g.Messages, msg)

	// Keep only the last MaxMessages
	if len(g.Messages) > MaxMessages {
		g.Messages = g.Messages[len(g.Messages)-MaxMessages:]
	}
}

// ClearMessages clears all messages
func (g *Game) ClearMessages() {
	g.Messages = make([]string, 0, MaxMessages)
}

// LastMessage returns the newest log line, or "" if there is none
func (g *Game) LastMessage() string {
	if len(g.Messages) == 0 {
		return ""
	}
	return g.Messages[len(g.Messages)-1]
}

// HasKey reports whether the player holds the world's key item
func (g *Game) HasKey() bool {
	return g.Player.HasItem(g.World.KeyItem)
}
