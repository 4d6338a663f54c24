package state

import "fmt"

// Well-known room names
const (
	EntranceRoom = "Entrada"
	ExitRoom     = "Portão"
)

// ChestRoomName returns the name of the n-th chest found when scanning the map
func ChestRoomName(n int) string {
	return fmt.Sprintf("Bau_%d", n)
}

// NodeKind tells a named room from a synthesized corridor tile
type NodeKind int

const (
	KindRoom NodeKind = iota + 1
	KindCorridor
)

// NodeID identifies a graph node. Rooms are identified by name, corridors by
// their grid coordinate. The zero value is no node.
type NodeID struct {
	Kind NodeKind
	Name string
	X    int
	Y    int
}

// RoomID returns the identifier of a named room
func RoomID(name string) NodeID {
	return NodeID{Kind: KindRoom, Name: name}
}

// CorridorID returns the identifier of the corridor tile at (x, y)
func CorridorID(x, y int) NodeID {
	return NodeID{Kind: KindCorridor, X: x, Y: y}
}

// IsZero reports whether id refers to no node
func (id NodeID) IsZero() bool {
	return id.Kind == 0
}

// IsRoom reports whether id names a room
func (id NodeID) IsRoom() bool {
	return id.Kind == KindRoom
}

// String is the canonical text form: the room name, or N{x}_{y} for a
// corridor tile.
func (id NodeID) String() string {
	switch id.Kind {
	case KindRoom:
		return id.Name
	case KindCorridor:
		return fmt.Sprintf("N%d_%d", id.X, id.Y)
	default:
		return ""
	}
}

// NodeStrings converts a path to its text form
func NodeStrings(path []NodeID) []string {
	out := make([]string, len(path))
	for i, id := range path {
		out[i] = id.String()
	}
	return out
}
