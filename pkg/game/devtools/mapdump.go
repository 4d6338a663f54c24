// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"territory/pkg/engine/world"
	"territory/pkg/game/state"
)

const mapDumpFilename = "map.txt"

// tileSymbol returns the single-character symbol for a tile (no player overlay).
// If revealedOnly is true, undiscovered tiles return '?'.
func tileSymbol(g *state.Game, p world.Point, revealedOnly bool) rune {
	if revealedOnly && !g.Fog.Discovered(p) {
		return '?'
	}
	t := g.World.Grid.At(p)
	if t == world.Chest {
		if id, ok := g.World.NodeAt(p); ok && !g.World.IsActive(id) {
			return 'b'
		}
	}
	return rune(t)
}

// writeMapGrid writes the grid to out with the player drawn as '@'.
func writeMapGrid(out io.Writer, g *state.Game, revealedOnly bool) {
	player, hasPlayer := g.World.Coord(g.Player.Position)
	grid := g.World.Grid
	for y := range grid.Height() {
		var b strings.Builder
		for x := range grid.Width() {
			p := world.Point{X: x, Y: y}
			if hasPlayer && p == player {
				b.WriteByte('@')
				continue
			}
			b.WriteRune(tileSymbol(g, p, revealedOnly))
		}
		fmt.Fprintln(out, b.String())
	}
}

// WriteMapDump writes a full debug dump: metadata, legend, revealed-only map,
// full map, chest contents and the adjacency list of every node.
func WriteMapDump(out io.Writer, g *state.Game) {
	w := g.World
	player, _ := w.Coord(g.Player.Position)
	start, _ := w.Coord(w.Start)
	exit, _ := w.Coord(w.Exit)

	fmt.Fprintln(out, "=== MAP DUMP DEBUG (layout, room graph, chests) ===")
	fmt.Fprintln(out, "")
	fmt.Fprintln(out, "--- Metadata ---")
	fmt.Fprintf(out, "seed: %d\n", w.Seed)
	fmt.Fprintf(out, "generator: %s\n", w.Generator)
	fmt.Fprintf(out, "attempts: %d\n", w.Attempts)
	fmt.Fprintf(out, "fallback: %v\n", w.Fallback)
	fmt.Fprintf(out, "grid_width: %d\n", w.Grid.Width())
	fmt.Fprintf(out, "grid_height: %d\n", w.Grid.Height())
	fmt.Fprintf(out, "coordinate_system: x,y (0-based, x=horizontal, y=vertical)\n")
	fmt.Fprintf(out, "player: %s at %s\n", g.Player.Position, player)
	fmt.Fprintf(out, "start: %s at %s\n", w.Start, start)
	fmt.Fprintf(out, "exit: %s at %s\n", w.Exit, exit)
	fmt.Fprintf(out, "key_room: %s\n", w.KeyRoom)
	fmt.Fprintf(out, "steps: %d\n", g.Player.Steps)
	fmt.Fprintf(out, "nodes: %d\n", w.Graph.Len())
	fmt.Fprintln(out, "")

	fmt.Fprintln(out, "--- Legend (tile symbols) ---")
	fmt.Fprintln(out, ". = floor  # = wall  P = entrance  E = exit  B = closed chest  b = opened chest  ? = unrevealed  @ = player")
	fmt.Fprintln(out, "")

	fmt.Fprintln(out, "--- Map (revealed tiles only; unrevealed = ?) ---")
	writeMapGrid(out, g, true)
	fmt.Fprintln(out, "")

	fmt.Fprintln(out, "--- Map (fully revealed) ---")
	writeMapGrid(out, g, false)
	fmt.Fprintln(out, "")

	fmt.Fprintln(out, "--- Chests ---")
	for _, id := range w.ChestRooms {
		p, _ := w.Coord(id)
		item := w.Contents[id]
		fmt.Fprintf(out, "  %s at %s item: %q opened: %v\n", id, p, item, !w.IsActive(id))
	}
	fmt.Fprintln(out, "")

	fmt.Fprintln(out, "--- Adjacency ---")
	for _, id := range w.Graph.Vertices() {
		fmt.Fprintf(out, "  %s -> %s\n", id, strings.Join(state.NodeStrings(w.Neighbors(id)), ", "))
	}
}

// DumpMapToFile writes the map dump to map.txt in dir and returns its path
func DumpMapToFile(g *state.Game, dir string) (string, error) {
	absPath, err := filepath.Abs(filepath.Join(dir, mapDumpFilename))
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", fmt.Errorf("create map dump: %w", err)
	}
	defer f.Close()

	WriteMapDump(f, g)
	return absPath, nil
}
