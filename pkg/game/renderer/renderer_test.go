package renderer

import (
	"math/rand"
	"strings"
	"testing"

	"territory/pkg/engine/world"
	"territory/pkg/game/setup"
	"territory/pkg/game/state"
)

func newGame(t *testing.T, rows ...string) *state.Game {
	t.Helper()
	grid, err := world.ParseRows(rows)
	if err != nil {
		t.Fatalf("ParseRows() error = %v", err)
	}
	w := setup.WorldFromGrid(grid, rand.New(rand.NewSource(1)), setup.DefaultItemPool, setup.DefaultKeyItem)
	return state.NewGame(w, "tester")
}

func icons(rows [][]Glyph) []string {
	out := make([]string, len(rows))
	for y, row := range rows {
		var b strings.Builder
		for _, g := range row {
			b.WriteString(g.Icon)
		}
		out[y] = b.String()
	}
	return out
}

func TestGlyphs_WithoutFog(t *testing.T) {
	g := newGame(t, "P.B", "#.E")
	got := icons(Glyphs(g, Options{}))
	want := []string{"@" + IconFloor + IconChest, IconWall + IconFloor + IconExitLocked}
	for y := range want {
		if got[y] != want[y] {
			t.Errorf("row %d = %q, want %q", y, got[y], want[y])
		}
	}
}

func TestGlyphs_OpenedChestAndUnlockedExit(t *testing.T) {
	g := newGame(t, "P.B", "#.E")
	chest := g.World.ChestRooms[0]
	g.World.OpenChest(chest)
	g.Player.AddItem(setup.DefaultKeyItem, "")

	rows := Glyphs(g, Options{})
	if rows[0][2].Icon != IconChestOpen {
		t.Errorf("opened chest drawn as %q, want %q", rows[0][2].Icon, IconChestOpen)
	}
	if rows[1][2].Style != StyleExitOpen {
		t.Errorf("exit style with key = %v, want %v", rows[1][2].Style, StyleExitOpen)
	}
}

func TestGlyphs_FogHidesUnseenTiles(t *testing.T) {
	g := newGame(t, "P....", "####.", "....E")
	g.Fog.Reveal(g.World.Grid, world.Point{X: 0, Y: 0}, 1)

	rows := Glyphs(g, Options{Fog: true})
	if rows[0][1].Icon != IconFloor {
		t.Errorf("revealed floor drawn as %q", rows[0][1].Icon)
	}
	if rows[1][0].Icon != IconWall {
		t.Errorf("wall next to a revealed tile drawn as %q, want %q", rows[1][0].Icon, IconWall)
	}
	if rows[2][4].Style != StyleFog {
		t.Errorf("unseen exit style = %v, want %v", rows[2][4].Style, StyleFog)
	}
}

func TestGlyphs_PathOverlaysFloorOnly(t *testing.T) {
	g := newGame(t, "P.B", "#.E")
	g.Highlight = g.World.Graph.ShortestPath(g.World.Start, g.World.Exit)

	rows := Glyphs(g, Options{Path: true})
	if rows[0][1].Icon != IconPath {
		t.Errorf("corridor on path drawn as %q, want %q", rows[0][1].Icon, IconPath)
	}
	if rows[0][2].Icon != IconChest {
		t.Errorf("chest on path drawn as %q, want %q", rows[0][2].Icon, IconChest)
	}
	if rows[1][1].Icon != IconFloor {
		t.Errorf("corridor off path drawn as %q, want %q", rows[1][1].Icon, IconFloor)
	}
}

// recorder counts the calls the package functions forward to it
type recorder struct{ calls []string }

func (r *recorder) Init() { r.calls = append(r.calls, "init") }
func (r *recorder) Clear() { r.calls = append(r.calls, "clear") }
func (r *recorder) RenderFrame(*state.Game) { r.calls = append(r.calls, "frame") }
func (r *recorder) RenderMap(*state.Game) { r.calls = append(r.calls, "map") }
func (r *recorder) RenderInventory(*state.Game) { r.calls = append(r.calls, "inventory") }
func (r *recorder) StyleText(text string, _ TextStyle) string { return text }
func (r *recorder) FormatText(msg string, _ ...any) string { return msg }
func (r *recorder) ShowMessage(string) {}

func TestPackageFunctionsForwardToCurrent(t *testing.T) {
	prev := Current
	t.Cleanup(func() { SetRenderer(prev) })

	SetRenderer(nil)
	Init()
	Clear()

	r := &recorder{}
	SetRenderer(r)
	g := newGame(t, "P.B", "#.E")
	Init()
	Clear()
	RenderFrame(g)
	RenderMap(g)
	RenderInventory(g)

	want := []string{"init", "clear", "frame", "map", "inventory"}
	if strings.Join(r.calls, ",") != strings.Join(want, ",") {
		t.Errorf("calls = %v, want %v", r.calls, want)
	}
}
