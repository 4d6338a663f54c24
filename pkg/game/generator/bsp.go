package generator

import (
	"math/rand"

	"territory/pkg/engine/world"
)

// BSPGenerator generates maps using Binary Space Partitioning: the grid is
// split into leaves, each leaf gets a rectangular hall, sibling halls are
// joined by L-shaped corridors and the corners are tunnelled to the nearest
// hall. The result is always connected.
type BSPGenerator struct {
	Width   int
	Height  int
	Chests  int
	MinNode int
	MinRoom int
}

// NewBSPGenerator returns a BSP generator sized for the standard 15x15 layout
func NewBSPGenerator() *BSPGenerator {
	return &BSPGenerator{
		Width:   world.DefaultWidth,
		Height:  world.DefaultHeight,
		Chests:  6,
		MinNode: 5,
		MinRoom: 2,
	}
}

// Name returns the name of this generator
func (g *BSPGenerator) Name() string {
	return "bsp"
}

// bspNode represents a node in the BSP tree
type bspNode struct {
	x, y, width, height int
	left, right         *bspNode
	room                *bspRoom
}

// bspRoom represents a hall within a BSP leaf node
type bspRoom struct {
	x, y, width, height int
}

func (r *bspRoom) center() world.Point {
	return world.Point{X: r.x + r.width/2, Y: r.y + r.height/2}
}

// Generate creates a new grid using the BSP algorithm
func (g *BSPGenerator) Generate(rng *rand.Rand) *world.Grid {
	grid := world.NewGrid(g.Width, g.Height)
	grid.Fill(world.Wall)

	root := &bspNode{width: g.Width, height: g.Height}
	g.split(rng, root)
	g.createRooms(rng, root)
	carveRooms(grid, root)
	connectRooms(grid, rng, root)

	entrance, exit := entranceAndExit(g.Width, g.Height)
	rooms := collectRooms(root)
	for _, corner := range []world.Point{entrance, exit} {
		if nearest := nearestRoom(rooms, corner); nearest != nil {
			carveL(grid, rng, corner, nearest.center())
		} else {
			carveL(grid, rng, entrance, exit)
		}
	}

	grid.Set(entrance, world.Entrance)
	grid.Set(exit, world.Exit)
	placeChests(grid, rng, g.Chests)
	return grid
}

// split recursively splits a BSP node
func (g *BSPGenerator) split(rng *rand.Rand, node *bspNode) {
	minSize := g.MinNode
	canSplitX := node.width >= minSize*2
	canSplitY := node.height >= minSize*2

	var splitHorizontal bool
	switch {
	case canSplitX && canSplitY:
		if node.width != node.height {
			splitHorizontal = node.height > node.width
		} else {
			splitHorizontal = rng.Intn(2) == 0
		}
	case canSplitX:
		splitHorizontal = false
	case canSplitY:
		splitHorizontal = true
	default:
		return // Too small to split
	}

	if splitHorizontal {
		// Split horizontally (top and bottom)
		splitPoint := minSize + rng.Intn(node.height-minSize*2+1)
		node.left = &bspNode{x: node.x, y: node.y, width: node.width, height: splitPoint}
		node.right = &bspNode{x: node.x, y: node.y + splitPoint, width: node.width, height: node.height - splitPoint}
	} else {
		// Split vertically (left and right)
		splitPoint := minSize + rng.Intn(node.width-minSize*2+1)
		node.left = &bspNode{x: node.x, y: node.y, width: splitPoint, height: node.height}
		node.right = &bspNode{x: node.x + splitPoint, y: node.y, width: node.width - splitPoint, height: node.height}
	}

	g.split(rng, node.left)
	g.split(rng, node.right)
}

// createRooms creates a hall in every leaf, leaving at least one wall tile
// between the hall and the leaf edge where the leaf allows it.
func (g *BSPGenerator) createRooms(rng *rand.Rand, node *bspNode) {
	if node.left != nil || node.right != nil {
		if node.left != nil {
			g.createRooms(rng, node.left)
		}
		if node.right != nil {
			g.createRooms(rng, node.right)
		}
		return
	}

	maxWidth := max(node.width-1, 1)
	maxHeight := max(node.height-1, 1)
	roomWidth := min(g.MinRoom, maxWidth) + rng.Intn(max(maxWidth-g.MinRoom, 0)+1)
	roomHeight := min(g.MinRoom, maxHeight) + rng.Intn(max(maxHeight-g.MinRoom, 0)+1)
	roomWidth = min(roomWidth, maxWidth)
	roomHeight = min(roomHeight, maxHeight)

	node.room = &bspRoom{
		x:      node.x + rng.Intn(node.width-roomWidth+1),
		y:      node.y + rng.Intn(node.height-roomHeight+1),
		width:  roomWidth,
		height: roomHeight,
	}
}

// carveRooms marks hall tiles as floor
func carveRooms(grid *world.Grid, node *bspNode) {
	if node.room != nil {
		for y := node.room.y; y < node.room.y+node.room.height; y++ {
			for x := node.room.x; x < node.room.x+node.room.width; x++ {
				grid.Set(world.Point{X: x, Y: y}, world.Floor)
			}
		}
	}

	if node.left != nil {
		carveRooms(grid, node.left)
	}
	if node.right != nil {
		carveRooms(grid, node.right)
	}
}

// connectRooms joins a hall of each subtree with an L-shaped corridor
func connectRooms(grid *world.Grid, rng *rand.Rand, node *bspNode) {
	if node.left == nil || node.right == nil {
		return
	}

	leftRoom := getRoom(rng, node.left)
	rightRoom := getRoom(rng, node.right)
	if leftRoom != nil && rightRoom != nil {
		carveL(grid, rng, leftRoom.center(), rightRoom.center())
	}

	connectRooms(grid, rng, node.left)
	connectRooms(grid, rng, node.right)
}

// carveL carves an L-shaped corridor between a and b, turning at a random
// corner.
func carveL(grid *world.Grid, rng *rand.Rand, a, b world.Point) {
	if rng.Intn(2) == 0 {
		// Horizontal first, then vertical
		carveCorridorHorizontal(grid, a.Y, a.X, b.X)
		carveCorridorVertical(grid, b.X, a.Y, b.Y)
	} else {
		// Vertical first, then horizontal
		carveCorridorVertical(grid, a.X, a.Y, b.Y)
		carveCorridorHorizontal(grid, b.Y, a.X, b.X)
	}
}

func carveCorridorHorizontal(grid *world.Grid, y, startX, endX int) {
	if startX > endX {
		startX, endX = endX, startX
	}
	for x := startX; x <= endX; x++ {
		grid.Set(world.Point{X: x, Y: y}, world.Floor)
	}
}

func carveCorridorVertical(grid *world.Grid, x, startY, endY int) {
	if startY > endY {
		startY, endY = endY, startY
	}
	for y := startY; y <= endY; y++ {
		grid.Set(world.Point{X: x, Y: y}, world.Floor)
	}
}

// getRoom returns a hall from a subtree (picks randomly from leaves)
func getRoom(rng *rand.Rand, node *bspNode) *bspRoom {
	if node.room != nil {
		return node.room
	}

	var leftRoom, rightRoom *bspRoom
	if node.left != nil {
		leftRoom = getRoom(rng, node.left)
	}
	if node.right != nil {
		rightRoom = getRoom(rng, node.right)
	}

	if leftRoom != nil && rightRoom != nil {
		if rng.Intn(2) == 0 {
			return leftRoom
		}
		return rightRoom
	}
	if leftRoom != nil {
		return leftRoom
	}
	return rightRoom
}

// collectRooms collects all halls from the BSP tree
func collectRooms(node *bspNode) []*bspRoom {
	var rooms []*bspRoom
	if node.room != nil {
		rooms = append(rooms, node.room)
	}
	if node.left != nil {
		rooms = append(rooms, collectRooms(node.left)...)
	}
	if node.right != nil {
		rooms = append(rooms, collectRooms(node.right)...)
	}
	return rooms
}

// nearestRoom returns the hall whose center is closest to p by Manhattan
// distance; the first one wins ties.
func nearestRoom(rooms []*bspRoom, p world.Point) *bspRoom {
	var best *bspRoom
	bestDist := 0
	for _, r := range rooms {
		c := r.center()
		d := abs(c.X-p.X) + abs(c.Y-p.Y)
		if best == nil || d < bestDist {
			best, bestDist = r, d
		}
	}
	return best
}

// abs returns the absolute value of an integer
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
