// Package world provides 2D tile-grid primitives: tile kinds, points,
// cardinal directions and visibility.
package world

import "fmt"

// Tile is the kind of a single grid cell, stored as its map character.
type Tile byte

// Tile kinds
const (
	Wall     Tile = '#'
	Floor    Tile = '.'
	Entrance Tile = 'P'
	Chest    Tile = 'B'
	Exit     Tile = 'E'
)

// String returns the map character for the tile
func (t Tile) String() string {
	return string(rune(t))
}

// IsValid returns true if t is one of the known tile kinds
func (t Tile) IsValid() bool {
	switch t {
	case Wall, Floor, Entrance, Chest, Exit:
		return true
	default:
		return false
	}
}

// Passable reports whether a player may stand on the tile
func (t Tile) Passable() bool {
	return t.IsValid() && t != Wall
}

// Point is a grid coordinate. X is the column, Y the row.
type Point struct {
	X int
	Y int
}

// Add returns p moved by the direction's offset
func (p Point) Add(d Direction) Point {
	dx, dy := d.Delta()
	return Point{X: p.X + dx, Y: p.Y + dy}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
