// Package renderer decides how each tile of the maze is drawn and holds the
// active rendering backend.
package renderer

import (
	"github.com/zyedidia/generic/mapset"

	"territory/pkg/engine/world"
	"territory/pkg/game/state"
)

// Icon constants
const (
	PlayerIcon       = "@"
	IconWall         = "█"
	IconFloor        = "·"
	IconFog          = " "
	IconChest        = "B"
	IconChestOpen    = "b"
	IconEntrance     = "P"
	IconExitLocked   = "E"
	IconExitUnlocked = "⌂"
	IconPath         = "*"
)

// Glyph is one drawn tile
type Glyph struct {
	Icon  string
	Style TextStyle
}

// Options controls which overlays a map drawing shows
type Options struct {
	// Fog hides tiles the player has not discovered.
	Fog bool
	// Path marks the game's highlighted nodes.
	Path bool
}

// highlighted collects the grid points of the game's highlighted nodes
func highlighted(g *state.Game) mapset.Set[world.Point] {
	set := mapset.New[world.Point]()
	for _, id := range g.Highlight {
		if p, ok := g.World.Coord(id); ok {
			set.Put(p)
		}
	}
	return set
}

// cellGlyph returns how the tile at p is drawn. The player is drawn over
// everything; the highlighted path is drawn over plain floor only.
func cellGlyph(g *state.Game, p world.Point, opts Options, path mapset.Set[world.Point]) Glyph {
	w := g.World
	if pos, ok := w.Coord(g.Player.Position); ok && pos == p {
		return Glyph{PlayerIcon, StylePlayer}
	}

	if opts.Fog && !discovered(g, p) {
		return Glyph{IconFog, StyleFog}
	}

	switch w.Grid.At(p) {
	case world.Wall:
		return Glyph{IconWall, StyleWall}
	case world.Entrance:
		return Glyph{IconEntrance, StyleSubtle}
	case world.Exit:
		if g.HasKey() {
			return Glyph{IconExitUnlocked, StyleExitOpen}
		}
		return Glyph{IconExitLocked, StyleExitLocked}
	case world.Chest:
		if id, ok := w.NodeAt(p); ok && !w.IsActive(id) {
			return Glyph{IconChestOpen, StyleChestOpen}
		}
		return Glyph{IconChest, StyleChest}
	}

	if opts.Path && path.Has(p) {
		return Glyph{IconPath, StylePath}
	}
	return Glyph{IconFloor, StyleFloor}
}

// discovered reports whether p shows through the fog. Walls are never
// revealed themselves; one shows once a tile next to it has been seen.
func discovered(g *state.Game, p world.Point) bool {
	if g.Fog.Discovered(p) {
		return true
	}
	if g.World.Grid.At(p) != world.Wall {
		return false
	}
	for _, d := range world.AllDirections() {
		if g.Fog.Discovered(p.Add(d)) {
			return true
		}
	}
	return false
}

// Glyphs returns the glyphs of the whole grid, row by row
func Glyphs(g *state.Game, opts Options) [][]Glyph {
	grid := g.World.Grid
	path := highlighted(g)

	rows := make([][]Glyph, grid.Height())
	for y := range rows {
		rows[y] = make([]Glyph, grid.Width())
		for x := range rows[y] {
			rows[y][x] = cellGlyph(g, world.Point{X: x, Y: y}, opts, path)
		}
	}
	return rows
}
