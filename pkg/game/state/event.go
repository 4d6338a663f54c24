package state

import "github.com/leonelquinteros/gotext"

// EventKind is the outcome of stepping on a node
type EventKind int

const (
	EventNone EventKind = iota
	EventItemFound
	EventKeyFound
	EventChestEmpty
	EventVictory
	EventExitLocked
)

// String returns a short name for the event kind
func (k EventKind) String() string {
	switch k {
	case EventNone:
		return "none"
	case EventItemFound:
		return "item found"
	case EventKeyFound:
		return "key found"
	case EventChestEmpty:
		return "chest empty"
	case EventVictory:
		return "victory"
	case EventExitLocked:
		return "exit locked"
	default:
		return "unknown"
	}
}

// Event describes what happened when the player entered a node. Item and
// Description are set when a chest gave something up.
type Event struct {
	Kind        EventKind
	Room        NodeID
	Item        string
	Description string
	Message     string
}

// Won reports whether the event ends the game
func (e Event) Won() bool {
	return e.Kind == EventVictory
}

// GrantsItem reports whether the player should receive Item
func (e Event) GrantsItem() bool {
	return e.Kind == EventItemFound || e.Kind == EventKeyFound
}

func keyFoundEvent(room NodeID, item string) Event {
	return Event{
		Kind:        EventKeyFound,
		Room:        room,
		Item:        item,
		Description: gotext.Get("Opens the final gate"),
		Message:     gotext.Get("You found the KEY!"),
	}
}

func itemFoundEvent(room NodeID, item string) Event {
	return Event{
		Kind:        EventItemFound,
		Room:        room,
		Item:        item,
		Description: gotext.Get("Item found."),
		Message:     gotext.Get("You found: %s", item),
	}
}

func chestEmptyEvent(room NodeID) Event {
	return Event{Kind: EventChestEmpty, Room: room, Message: gotext.Get("The chest is empty.")}
}

func victoryEvent(room NodeID) Event {
	return Event{Kind: EventVictory, Room: room, Message: gotext.Get("You used the key and escaped!")}
}

func exitLockedEvent(room NodeID) Event {
	return Event{Kind: EventExitLocked, Room: room, Message: gotext.Get("You need the KEY to open the gate.")}
}
