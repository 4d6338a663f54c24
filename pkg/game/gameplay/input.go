package gameplay

import (
	"errors"

	engineinput "territory/pkg/engine/input"
	"territory/pkg/engine/world"
	"territory/pkg/game/savegame"
	"territory/pkg/game/setup"
	"territory/pkg/game/state"
)

// ErrNoStore is returned when saving or loading without a save store
var ErrNoStore = errors.New("no save store configured")

// Controller applies player intents to a running game. Loading replaces
// Game, so callers must read it back after every intent.
type Controller struct {
	Game       *state.Game
	Store      savegame.Store
	Options    setup.Options
	PlayerName string

	// RevealRadius is the fog radius of loaded sessions; zero keeps the default.
	RevealRadius int
	// OnNewGame, when set, is called with every session that replaces Game.
	OnNewGame func(*state.Game)
}

// NewController wraps g. store may be nil, in which case save and load
// report an error in the message log.
func NewController(g *state.Game, store savegame.Store, opts setup.Options) *Controller {
	return &Controller{Game: g, Store: store, Options: opts, PlayerName: g.Player.Name, RevealRadius: g.RevealRadius}
}

var moveActions = map[engineinput.Action]world.Direction{
	engineinput.ActionMoveNorth: world.North,
	engineinput.ActionMoveSouth: world.South,
	engineinput.ActionMoveWest:  world.West,
	engineinput.ActionMoveEast:  world.East,
}

// ProcessIntent handles one intent and reports whether the player asked to
// quit. Map and inventory display are left to the caller.
func (c *Controller) ProcessIntent(intent engineinput.Intent) (quit bool) {
	g := c.Game

	if dir, ok := moveActions[intent.Action]; ok {
		MoveDirection(g, dir)
		return false
	}

	switch intent.Action {
	case engineinput.ActionGoto:
		MoveToNamed(g, intent.Arg)
	case engineinput.ActionHint:
		Hint(g)
	case engineinput.ActionSweep:
		Sweep(g)
	case engineinput.ActionRoute:
		ShowRoute(g)
	case engineinput.ActionSave:
		if err := c.Save(); err != nil {
			logMessage(g, "Save failed: %v", err)
		}
	case engineinput.ActionLoad:
		if err := c.Load(); err != nil {
			logMessage(c.Game, "Load failed: %v", err)
		}
	case engineinput.ActionQuit:
		return true
	}
	return false
}

// Save writes the current session to the store
func (c *Controller) Save() error {
	if c.Store == nil {
		return ErrNoStore
	}
	if err := c.Store.Save(Snapshot(c.Game)); err != nil {
		return err
	}
	logMessage(c.Game, "Game saved!")
	return nil
}

// Load replaces the session with the saved one. The world is rebuilt from
// the saved seed, or from the current seed when the save has none.
func (c *Controller) Load() error {
	if c.Store == nil {
		return ErrNoStore
	}
	st, ok, err := c.Store.Load()
	if err != nil {
		return err
	}
	if !ok {
		logMessage(c.Game, "No save found.")
		return nil
	}

	seed := c.Game.World.Seed
	if st.HasSeed {
		seed = st.Seed
	}
	c.Game = Restore(setup.NewWorld(c.Options, seed), st, c.PlayerName, c.RevealRadius)
	if c.OnNewGame != nil {
		c.OnNewGame(c.Game)
	}
	logMessage(c.Game, "Game loaded!")
	return nil
}
