package world

import "github.com/zyedidia/generic/mapset"

// FOVRadius is the default reveal radius (Chebyshev distance).
const FOVRadius = 2

// CalculateFOV returns the passable points within radius of center using a
// square (Chebyshev) shape. Walls are never returned and do not block sight.
func CalculateFOV(grid *Grid, center Point, radius int) []Point {
	if grid == nil || !grid.InBounds(center) {
		return nil
	}

	var visible []Point
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if chebyshevDist(dx, dy) > radius {
				continue
			}
			p := Point{X: center.X + dx, Y: center.Y + dy}
			if grid.Passable(p) {
				visible = append(visible, p)
			}
		}
	}
	return visible
}

// chebyshevDist returns Chebyshev (chessboard) distance for (dx, dy).
func chebyshevDist(dx, dy int) int {
	return max(abs(dx), abs(dy))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Fog tracks which passable tiles have been discovered.
type Fog struct {
	seen mapset.Set[Point]
}

// NewFog creates a fog with nothing discovered
func NewFog() *Fog {
	return &Fog{seen: mapset.New[Point]()}
}

// Reveal marks every tile within radius of center as discovered and returns
// how many were newly revealed.
func (f *Fog) Reveal(grid *Grid, center Point, radius int) int {
	added := 0
	for _, p := range CalculateFOV(grid, center, radius) {
		if !f.seen.Has(p) {
			f.seen.Put(p)
			added++
		}
	}
	return added
}

// Discovered reports whether p has been revealed
func (f *Fog) Discovered(p Point) bool {
	return f.seen.Has(p)
}

// Len returns the number of discovered tiles
func (f *Fog) Len() int {
	return f.seen.Size()
}
