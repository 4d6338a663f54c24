package world

import (
	"errors"
	"fmt"
	"strings"
)

// Default map dimensions
const (
	DefaultWidth  = 15
	DefaultHeight = 15
)

// Grid is a rectangular tile map indexed by Point.
type Grid struct {
	tiles  [][]Tile
	width  int
	height int
}

// NewGrid creates a grid of the given size filled with floor tiles
func NewGrid(width, height int) *Grid {
	g := &Grid{}
	g.Build(width, height)
	return g
}

// ParseRows builds a grid from one string per row using the map characters
// of the Tile constants. All rows must have the same length.
func ParseRows(rows []string) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, errors.New("grid has no rows")
	}

	g := NewGrid(len(rows[0]), len(rows))
	for y, row := range rows {
		if len(row) != g.width {
			return nil, fmt.Errorf("row %d has %d tiles, want %d", y, len(row), g.width)
		}
		for x := 0; x < len(row); x++ {
			t := Tile(row[x])
			if !t.IsValid() {
				return nil, fmt.Errorf("row %d col %d: unknown tile %q", y, x, row[x])
			}
			g.tiles[y][x] = t
		}
	}
	return g, nil
}

// Build initializes the grid with the given dimensions
func (g *Grid) Build(width, height int) {
	if width <= 0 || height <= 0 {
		panic("Grid dimensions must be positive")
	}

	g.width = width
	g.height = height
	g.tiles = make([][]Tile, height)
	for y := range g.tiles {
		row := make([]Tile, width)
		for x := range row {
			row[x] = Floor
		}
		g.tiles[y] = row
	}
}

// Fill sets every tile of the grid to t
func (g *Grid) Fill(t Tile) {
	for _, row := range g.tiles {
		for x := range row {
			row[x] = t
		}
	}
}

// Width returns the number of columns in the grid
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows in the grid
func (g *Grid) Height() int {
	return g.height
}

// InBounds checks if a point lies inside the grid
func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// At returns the tile at p. Out-of-bounds points read as Wall.
func (g *Grid) At(p Point) Tile {
	if !g.InBounds(p) {
		return Wall
	}
	return g.tiles[p.Y][p.X]
}

// Set changes the tile at p. Returns false if p is out of bounds.
func (g *Grid) Set(p Point, t Tile) bool {
	if !g.InBounds(p) {
		return false
	}
	g.tiles[p.Y][p.X] = t
	return true
}

// Passable reports whether p is inside the grid and not a wall
func (g *Grid) Passable(p Point) bool {
	return g.At(p).Passable()
}

// Neighbors returns the passable points next to p, in AllDirections order.
func (g *Grid) Neighbors(p Point) []Point {
	out := make([]Point, 0, 4)
	for _, dir := range AllDirections() {
		if n := p.Add(dir); g.Passable(n) {
			out = append(out, n)
		}
	}
	return out
}

// ForEachTile iterates over the grid row by row, calling fn for every tile
func (g *Grid) ForEachTile(fn func(p Point, t Tile)) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			fn(Point{X: x, Y: y}, g.tiles[y][x])
		}
	}
}

// Find returns every point holding tile t in row-major scan order
func (g *Grid) Find(t Tile) []Point {
	var out []Point
	g.ForEachTile(func(p Point, tile Tile) {
		if tile == t {
			out = append(out, p)
		}
	})
	return out
}

// Count returns how many tiles of kind t the grid holds
func (g *Grid) Count(t Tile) int {
	return len(g.Find(t))
}

// Rows renders the grid back to one string per row
func (g *Grid) Rows() []string {
	rows := make([]string, g.height)
	var sb strings.Builder
	for y, row := range g.tiles {
		sb.Reset()
		for _, t := range row {
			sb.WriteByte(byte(t))
		}
		rows[y] = sb.String()
	}
	return rows
}

// Clone returns an independent copy of the grid
func (g *Grid) Clone() *Grid {
	c := &Grid{width: g.width, height: g.height, tiles: make([][]Tile, g.height)}
	for y, row := range g.tiles {
		c.tiles[y] = append([]Tile(nil), row...)
	}
	return c
}

// Validate checks the grid for common issues and returns an error description or empty string if valid
func (g *Grid) Validate() string {
	if g.width <= 0 || g.height <= 0 {
		return "Grid has invalid dimensions"
	}

	if n := g.Count(Entrance); n != 1 {
		return fmt.Sprintf("Grid has %d entrance tiles, want 1", n)
	}

	if n := g.Count(Exit); n != 1 {
		return fmt.Sprintf("Grid has %d exit tiles, want 1", n)
	}

	return ""
}
