package state

import "territory/pkg/engine/avl"

// Player is the explorer walking the maze. The inventory maps item names to
// a short description.
type Player struct {
	Name      string
	Position  NodeID
	Steps     int
	History   []NodeID
	Inventory *avl.Tree[string, string]
}

// NewPlayer creates a player standing at start with an empty inventory
func NewPlayer(name string, start NodeID) *Player {
	return &Player{
		Name:      name,
		Position:  start,
		History:   []NodeID{start},
		Inventory: avl.NewOrdered[string, string](),
	}
}

// Move puts the player on to and counts one step. Adjacency is checked by
// the caller.
func (p *Player) Move(to NodeID) {
	p.Position = to
	p.Steps++
	p.History = append(p.History, to)
}

// AddItem stores an item, replacing the description if it is already held
func (p *Player) AddItem(name, description string) {
	p.Inventory.Insert(name, description)
}

// RemoveItem drops an item; dropping one that is not held does nothing
func (p *Player) RemoveItem(name string) {
	p.Inventory.Remove(name)
}

// HasItem reports whether the player holds the item
func (p *Player) HasItem(name string) bool {
	return p.Inventory.Has(name)
}

// ItemCount returns the number of distinct items held
func (p *Player) ItemCount() int {
	return p.Inventory.Len()
}

// Items returns the held item names in ascending order
func (p *Player) Items() []string {
	return p.Inventory.Keys()
}
