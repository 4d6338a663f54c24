// Package gameplay provides core game logic for player movement and interactions.
package gameplay

import (
	"slices"

	"github.com/leonelquinteros/gotext"

	"territory/pkg/engine/world"
	"territory/pkg/game/state"
)

// MoveResult tells the caller whether a move happened
type MoveResult int

const (
	Moved MoveResult = iota
	AlreadyHere
	Blocked
	GameOver
)

// String returns a short name for the result
func (r MoveResult) String() string {
	switch r {
	case Moved:
		return "moved"
	case AlreadyHere:
		return "already here"
	case Blocked:
		return "blocked"
	case GameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// CanEnter checks if the player can step onto target from where they stand
func CanEnter(g *state.Game, target state.NodeID) bool {
	return slices.Contains(g.World.Neighbors(g.Player.Position), target)
}

// MoveTo moves the player one step onto target. The move only happens when
// target is a neighbour of the current node; whatever target holds is then
// triggered.
func MoveTo(g *state.Game, target state.NodeID) (state.Event, MoveResult) {
	if g.Over {
		return state.Event{}, GameOver
	}

	current := g.Player.Position
	if target == current {
		logMessage(g, "You are already here.")
		return state.Event{}, AlreadyHere
	}
	if !CanEnter(g, target) {
		logMessage(g, "Wall or blocked path!")
		return state.Event{}, Blocked
	}

	g.Player.Move(target)
	RevealAround(g)
	g.Highlight = nil

	ev := g.World.CheckEvent(target, g.Player.HasItem)
	applyEvent(g, ev)
	return ev, Moved
}

// MoveDirection steps the player one tile in dir
func MoveDirection(g *state.Game, dir world.Direction) (state.Event, MoveResult) {
	if g.Over {
		return state.Event{}, GameOver
	}

	p, ok := g.World.Coord(g.Player.Position)
	if !ok {
		logMessage(g, "Wall or blocked path!")
		return state.Event{}, Blocked
	}
	target, ok := g.World.NodeAt(p.Add(dir))
	if !ok {
		logMessage(g, "Wall or blocked path!")
		return state.Event{}, Blocked
	}
	return MoveTo(g, target)
}

// MoveToNamed resolves a node by its text form and moves onto it
func MoveToNamed(g *state.Game, name string) (state.Event, MoveResult) {
	target, ok := g.World.ParseNode(name)
	if !ok {
		logMessage(g, "Unknown place: %s", name)
		return state.Event{}, Blocked
	}
	return MoveTo(g, target)
}

// logMessage translates msg, formats it and adds it to the game log
func logMessage(g *state.Game, msg string, a ...any) {
	g.AddMessage(gotext.Get(msg, a...))
}
