package state

import (
	"fmt"
	"slices"
	"testing"

	"territory/pkg/engine/world"
)

// tinyWorld builds "P.B" / "..E" by hand: a chest holding the key at (2,0)
// and the exit at (2,1).
func tinyWorld(t *testing.T) *World {
	t.Helper()
	grid, err := world.ParseRows([]string{"P.B", "..E"})
	if err != nil {
		t.Fatalf("ParseRows() error = %v", err)
	}
	w := NewWorld(grid, "Chave")
	w.Start = w.AddRoom(EntranceRoom, world.Point{X: 0, Y: 0})
	w.Exit = w.AddRoom(ExitRoom, world.Point{X: 2, Y: 1})
	chest := w.AddChest(ChestRoomName(1), world.Point{X: 2, Y: 0})
	w.Contents[chest] = "Chave"
	w.KeyRoom = chest

	grid.ForEachTile(func(p world.Point, tile world.Tile) {
		if !tile.Passable() {
			return
		}
		from, _ := w.NodeAt(p)
		for _, n := range grid.Neighbors(p) {
			to, _ := w.NodeAt(n)
			w.Graph.AddEdge(from, to)
		}
	})
	return w
}

func TestNodeID_String(t *testing.T) {
	tests := []struct {
		id   NodeID
		want string
	}{
		{RoomID("Entrada"), "Entrada"},
		{RoomID(ChestRoomName(3)), "Bau_3"},
		{CorridorID(4, 11), "N4_11"},
		{NodeID{}, ""},
	}
	for _, tt := range tests {
		if got := tt.id.String(); got != tt.want {
			t.Errorf("%+v.String() = %q, want %q", tt.id, got, tt.want)
		}
	}
	if !(NodeID{}).IsZero() || RoomID("x").IsZero() {
		t.Error("IsZero() wrong for zero or room id")
	}
}

func TestNodeID_CorridorNeverEqualsRoom(t *testing.T) {
	// A room deliberately named like a corridor still differs by kind.
	if RoomID("N1_0") == CorridorID(1, 0) {
		t.Error("RoomID(\"N1_0\") == CorridorID(1, 0), want distinct identifiers")
	}
}

func TestWorld_ParseNode(t *testing.T) {
	w := tinyWorld(t)
	tests := []struct {
		in     string
		want   NodeID
		wantOK bool
	}{
		{"Entrada", RoomID(EntranceRoom), true},
		{"Bau_1", RoomID("Bau_1"), true},
		{"N1_0", CorridorID(1, 0), true},
		{"N0_1", CorridorID(0, 1), true},
		{"N2_0", NodeID{}, false}, // the chest's tile is a room, not a corridor
		{"N9_9", NodeID{}, false},
		{"N1_0x", NodeID{}, false},
		{"N+1_0", NodeID{}, false},
		{"Bau_7", NodeID{}, false},
		{"", NodeID{}, false},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.in), func(t *testing.T) {
			got, ok := w.ParseNode(tt.in)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ParseNode(%q) = %v, %v, want %v, %v", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestWorld_CoordAndNodeAt(t *testing.T) {
	w := tinyWorld(t)

	for _, id := range w.Graph.Vertices() {
		p, ok := w.Coord(id)
		if !ok {
			t.Fatalf("Coord(%v) not found", id)
		}
		back, ok := w.NodeAt(p)
		if !ok || back != id {
			t.Errorf("NodeAt(Coord(%v)) = %v, %v, want %v", id, back, ok, id)
		}
	}
	if _, ok := w.Coord(CorridorID(9, 9)); ok {
		t.Error("Coord(N9_9) found, want not found")
	}
}

func TestWorld_CheckEvent(t *testing.T) {
	w := tinyWorld(t)
	p := NewPlayer("Explorador", w.Start)
	chest := RoomID("Bau_1")

	if e := w.CheckEvent(w.Exit, p.HasItem); e.Kind != EventExitLocked {
		t.Errorf("exit without key: Kind = %v, want %v", e.Kind, EventExitLocked)
	}

	e := w.CheckEvent(chest, p.HasItem)
	if e.Kind != EventKeyFound || e.Item != "Chave" || !e.GrantsItem() {
		t.Fatalf("opening key chest = %+v, want key found with Chave", e)
	}
	p.AddItem(e.Item, e.Description)

	if w.IsActive(chest) {
		t.Error("chest still active after opening")
	}
	if e := w.CheckEvent(chest, p.HasItem); e.Kind != EventNone {
		t.Errorf("re-entering opened chest: Kind = %v, want %v", e.Kind, EventNone)
	}
	if w.Contents[chest] != "Chave" {
		t.Error("content forgotten after opening")
	}

	if e := w.CheckEvent(w.Exit, p.HasItem); !e.Won() {
		t.Errorf("exit with key: Kind = %v, want %v", e.Kind, EventVictory)
	}
	if e := w.CheckEvent(CorridorID(1, 0), p.HasItem); e.Kind != EventNone || e.Message != "" {
		t.Errorf("corridor event = %+v, want none", e)
	}
}

func TestWorld_CheckEvent_ItemAndEmpty(t *testing.T) {
	w := tinyWorld(t)
	full := w.AddChest(ChestRoomName(2), world.Point{X: 1, Y: 1})
	empty := w.AddChest(ChestRoomName(3), world.Point{X: 0, Y: 1})
	w.Contents[full] = "Rubi"

	e := w.CheckEvent(full, nil)
	if e.Kind != EventItemFound || e.Item != "Rubi" || e.Message != "You found: Rubi" {
		t.Errorf("CheckEvent(full) = %+v, want item Rubi", e)
	}
	if e := w.CheckEvent(empty, nil); e.Kind != EventChestEmpty || e.GrantsItem() {
		t.Errorf("CheckEvent(empty) = %+v, want chest empty", e)
	}
	if e := w.CheckEvent(w.Exit, nil); e.Kind != EventExitLocked {
		t.Errorf("exit with nil predicate: Kind = %v, want %v", e.Kind, EventExitLocked)
	}
}

func TestWorld_ActiveChests(t *testing.T) {
	w := tinyWorld(t)
	second := w.AddChest(ChestRoomName(2), world.Point{X: 1, Y: 1})
	w.OpenChest(RoomID("Bau_1"))

	got := w.ActiveChests()
	if !slices.Equal(got, []NodeID{second}) {
		t.Errorf("ActiveChests() = %v, want [Bau_2]", got)
	}
	if len(w.ChestRooms) != 2 {
		t.Errorf("len(ChestRooms) = %d, want 2", len(w.ChestRooms))
	}
}

func TestPlayer(t *testing.T) {
	p := NewPlayer("Explorador", RoomID(EntranceRoom))
	p.Move(CorridorID(1, 0))
	p.Move(RoomID("Bau_1"))
	p.AddItem("Ouro", "Item found.")
	p.AddItem("Anel", "Item found.")
	p.AddItem("Ouro", "again")

	if p.Steps != 2 {
		t.Errorf("Steps = %d, want 2", p.Steps)
	}
	if len(p.History) != 3 || p.History[0] != RoomID(EntranceRoom) {
		t.Errorf("History = %v, want 3 entries starting at the entrance", p.History)
	}
	if got := p.Items(); !slices.Equal(got, []string{"Anel", "Ouro"}) {
		t.Errorf("Items() = %v, want [Anel Ouro]", got)
	}
	p.RemoveItem("Anel")
	p.RemoveItem("Coroa")
	if p.HasItem("Anel") || p.ItemCount() != 1 {
		t.Errorf("after RemoveItem: HasItem(Anel) = %v, ItemCount() = %d", p.HasItem("Anel"), p.ItemCount())
	}
}

func TestGame_MessageLogCapped(t *testing.T) {
	g := NewGame(tinyWorld(t), "Explorador")
	for i := 1; i <= 9; i++ {
		g.AddMessage(fmt.Sprintf("msg %d", i))
	}
	if len(g.Messages) != MaxMessages {
		t.Fatalf("len(Messages) = %d, want %d", len(g.Messages), MaxMessages)
	}
	if g.Messages[0] != "msg 4" || g.LastMessage() != "msg 9" {
		t.Errorf("Messages = %v, want msg 4..msg 9", g.Messages)
	}
	g.ClearMessages()
	if g.LastMessage() != "" {
		t.Errorf("LastMessage() = %q after clear, want empty", g.LastMessage())
	}
	if g.HasKey() {
		t.Error("HasKey() = true for a new game")
	}
}
