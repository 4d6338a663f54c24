package renderer

import (
	"territory/pkg/game/state"
)

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleWall
	StyleFloor
	StyleFog
	StyleChest
	StyleChestOpen
	StyleExitLocked
	StyleExitOpen
	StylePlayer
	StylePath
	StyleItem
	StyleAction
	StyleActionShort
	StyleDenied
	StyleSubtle
)

// Renderer defines the interface for game rendering backends
type Renderer interface {
	// Init initializes the renderer (colors, markup patterns)
	Init()

	// Clear clears the display
	Clear()

	// RenderFrame renders a complete game frame: the fogged map, the status
	// line and the message log.
	RenderFrame(g *state.Game)

	// RenderMap renders the whole map without fog
	RenderMap(g *state.Game)

	// RenderInventory lists the items the player holds
	RenderInventory(g *state.Game)

	// StyleText applies a style to text and returns the styled string
	StyleText(text string, style TextStyle) string

	// FormatText formats a message with the renderer's markup system
	FormatText(msg string, args ...any) string

	// ShowMessage displays a message to the user
	ShowMessage(msg string)
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}

// Init initializes the current renderer
func Init() {
	if Current != nil {
		Current.Init()
	}
}

// Clear clears the display using the current renderer
func Clear() {
	if Current != nil {
		Current.Clear()
	}
}

// RenderFrame renders a complete game frame
func RenderFrame(g *state.Game) {
	if Current != nil {
		Current.RenderFrame(g)
	}
}

// RenderMap renders the unfogged map
func RenderMap(g *state.Game) {
	if Current != nil {
		Current.RenderMap(g)
	}
}

// RenderInventory renders the player's items
func RenderInventory(g *state.Game) {
	if Current != nil {
		Current.RenderInventory(g)
	}
}
