package input

import (
	"sort"
	"strings"
	"time"
)

// Device represents an input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceTerminal
	DeviceScript
)

// Action represents a high‑level intent in the game.
type Action int

const (
	ActionNone Action = iota

	// Movement
	ActionMoveNorth
	ActionMoveSouth
	ActionMoveWest
	ActionMoveEast
	ActionGoto // move to a named node given as the intent argument

	// Map queries
	ActionHint
	ActionSweep
	ActionRoute
	ActionMap
	ActionInventory

	// Meta
	ActionSave
	ActionLoad
	ActionQuit
)

// Intent is the 4th‑layer, high‑level description of what the player wants to do.
// Arg carries the remainder of the command line for actions that take one.
type Intent struct {
	Action Action
	Arg    string
}

// RawInput is the 1st‑layer event emitted directly from an input source.
// Code is a source‑specific identifier (e.g. "w", "arrow_up", "goto Bau_2").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the 2nd‑layer representation after normalisation: the
// code is lower-cased and split into the command word and its argument.
type DebouncedInput struct {
	Device Device
	Code   string
	Arg    string
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	code, arg, _ := strings.Cut(strings.TrimSpace(raw.Code), " ")
	return DebouncedInput{
		Device: raw.Device,
		Code:   strings.ToLower(code),
		Arg:    strings.TrimSpace(arg),
	}
}

// bindings maps raw codes to actions (3rd-layer bindings).
// Multiple codes may point to the same Action.
var bindings = map[string]Action{
	// Movement (WASD, arrows, words)
	"w":           ActionMoveNorth,
	"arrow_up":    ActionMoveNorth,
	"up":          ActionMoveNorth,
	"north":       ActionMoveNorth,
	"s":           ActionMoveSouth,
	"arrow_down":  ActionMoveSouth,
	"down":        ActionMoveSouth,
	"south":       ActionMoveSouth,
	"a":           ActionMoveWest,
	"arrow_left":  ActionMoveWest,
	"left":        ActionMoveWest,
	"west":        ActionMoveWest,
	"d":           ActionMoveEast,
	"arrow_right": ActionMoveEast,
	"right":       ActionMoveEast,
	"east":        ActionMoveEast,
	"goto":        ActionGoto,
	"g":           ActionGoto,

	// Map queries
	"c":         ActionHint,
	"?":         ActionHint,
	"hint":      ActionHint,
	"v":         ActionSweep,
	"dfs":       ActionSweep,
	"sweep":     ActionSweep,
	"r":         ActionRoute,
	"route":     ActionRoute,
	"m":         ActionMap,
	"map":       ActionMap,
	"i":         ActionInventory,
	"inventory": ActionInventory,

	// Save / load
	"f5":   ActionSave,
	"save": ActionSave,
	"f9":   ActionLoad,
	"load": ActionLoad,

	// Quit
	"quit":   ActionQuit,
	"q":      ActionQuit,
	"escape": ActionQuit,
}

// MapToIntent is the 3rd+4th layer: it applies the current bindings to a
// debounced input and returns a high‑level Intent.
func MapToIntent(ev DebouncedInput) Intent {
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act, Arg: ev.Arg}
	}
	return Intent{Action: ActionNone}
}

// Parse runs a single command string through every layer.
func Parse(device Device, code string) Intent {
	return MapToIntent(NewDebouncedInput(RawInput{Device: device, Code: code, Timestamp: time.Now()}))
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionMoveNorth:
		return "Move North"
	case ActionMoveSouth:
		return "Move South"
	case ActionMoveWest:
		return "Move West"
	case ActionMoveEast:
		return "Move East"
	case ActionGoto:
		return "Go To"
	case ActionHint:
		return "Hint"
	case ActionSweep:
		return "Sweep"
	case ActionRoute:
		return "Route"
	case ActionMap:
		return "Map"
	case ActionInventory:
		return "Inventory"
	case ActionSave:
		return "Save"
	case ActionLoad:
		return "Load"
	case ActionQuit:
		return "Quit"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Stable ordering so help output does not shuffle between runs.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}
