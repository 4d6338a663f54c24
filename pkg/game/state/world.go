package state

import (
	"fmt"
	"maps"
	"slices"

	"github.com/zyedidia/generic/mapset"

	"territory/pkg/engine/graph"
	"territory/pkg/engine/world"
)

// World is a generated maze: the tile grid, the room graph built from it,
// and what each chest holds. The setup package fills it in.
type World struct {
	Grid  *world.Grid
	Graph *graph.Graph[NodeID]

	Start NodeID
	Exit  NodeID

	// ChestRooms lists every chest in map scan order (Bau_1, Bau_2, ...).
	ChestRooms []NodeID
	// Contents maps a chest to its item. It outlives the chest being opened.
	Contents map[NodeID]string
	KeyRoom  NodeID
	KeyItem  string

	// Seed and Generator record how the grid was made; Fallback is set when
	// no random candidate was accepted.
	Seed      int64
	Generator string
	Attempts  int
	Fallback  bool

	rooms  map[string]world.Point
	roomAt map[world.Point]NodeID
	active mapset.Set[NodeID]
}

// NewWorld wraps grid in an empty world. Rooms, edges and contents are
// added afterwards.
func NewWorld(grid *world.Grid, keyItem string) *World {
	return &World{
		Grid:     grid,
		Graph:    graph.New[NodeID](),
		Contents: make(map[NodeID]string),
		KeyItem:  keyItem,
		rooms:    make(map[string]world.Point),
		roomAt:   make(map[world.Point]NodeID),
		active:   mapset.New[NodeID](),
	}
}

// AddRoom records a named room at p and adds it to the graph
func (w *World) AddRoom(name string, p world.Point) NodeID {
	id := RoomID(name)
	w.rooms[name] = p
	w.roomAt[p] = id
	w.Graph.AddVertex(id)
	return id
}

// AddChest records a chest room and marks it unopened
func (w *World) AddChest(name string, p world.Point) NodeID {
	id := w.AddRoom(name, p)
	w.ChestRooms = append(w.ChestRooms, id)
	w.active.Put(id)
	return id
}

// Rooms returns the room name to coordinate table
func (w *World) Rooms() map[string]world.Point {
	return maps.Clone(w.rooms)
}

// NodeAt returns the node for a grid point: the room standing there, or a
// corridor node for any other passable tile.
func (w *World) NodeAt(p world.Point) (NodeID, bool) {
	if id, ok := w.roomAt[p]; ok {
		return id, true
	}
	if !w.Grid.Passable(p) {
		return NodeID{}, false
	}
	return CorridorID(p.X, p.Y), true
}

// Coord returns the grid point of a node
func (w *World) Coord(id NodeID) (world.Point, bool) {
	switch id.Kind {
	case KindRoom:
		p, ok := w.rooms[id.Name]
		return p, ok
	case KindCorridor:
		p := world.Point{X: id.X, Y: id.Y}
		return p, w.Grid.Passable(p)
	default:
		return world.Point{}, false
	}
}

// ParseNode resolves the text form produced by NodeID.String. Room names are
// looked up first; N{x}_{y} must name a passable tile.
func (w *World) ParseNode(s string) (NodeID, bool) {
	if _, ok := w.rooms[s]; ok {
		return RoomID(s), true
	}

	var x, y int
	var rest string
	n, _ := fmt.Sscanf(s, "N%d_%d%s", &x, &y, &rest)
	if n != 2 {
		return NodeID{}, false
	}
	id := CorridorID(x, y)
	if id.String() != s || !w.Graph.Has(id) {
		return NodeID{}, false
	}
	return id, true
}

// Neighbors returns the nodes reachable in one step from id
func (w *World) Neighbors(id NodeID) []NodeID {
	return w.Graph.Neighbors(id)
}

// ActiveChests returns the unopened chests in scan order
func (w *World) ActiveChests() []NodeID {
	return slices.DeleteFunc(slices.Clone(w.ChestRooms), func(id NodeID) bool {
		return !w.active.Has(id)
	})
}

// IsActive reports whether id is an unopened chest
func (w *World) IsActive(id NodeID) bool {
	return w.active.Has(id)
}

// OpenChest marks a chest as opened without granting anything. It is used
// when restoring a saved game.
func (w *World) OpenChest(id NodeID) {
	w.active.Remove(id)
}

// CheckEvent applies the effect of standing on id. Entering an unopened
// chest opens it for good and reports its content; entering the exit wins
// only when hasKey reports the key item as held.
func (w *World) CheckEvent(id NodeID, hasKey func(item string) bool) Event {
	if w.active.Has(id) {
		w.active.Remove(id)

		item, ok := w.Contents[id]
		switch {
		case !ok || item == "":
			return chestEmptyEvent(id)
		case item == w.KeyItem:
			return keyFoundEvent(id, item)
		default:
			return itemFoundEvent(id, item)
		}
	}

	if id == w.Exit {
		if hasKey != nil && hasKey(w.KeyItem) {
			return victoryEvent(id)
		}
		return exitLockedEvent(id)
	}

	return Event{Kind: EventNone, Room: id}
}
