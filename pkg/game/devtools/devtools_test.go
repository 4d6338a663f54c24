package devtools

import (
	"bytes"
	"math/rand"
	"os"
	"strings"
	"testing"

	"github.com/dominikbraun/graph"

	"territory/pkg/engine/world"
	"territory/pkg/game/setup"
	"territory/pkg/game/state"
)

func newGame(t *testing.T) *state.Game {
	t.Helper()
	grid, err := world.ParseRows([]string{"P.B", "#.E"})
	if err != nil {
		t.Fatalf("ParseRows() error = %v", err)
	}
	w := setup.WorldFromGrid(grid, rand.New(rand.NewSource(1)), setup.DefaultItemPool, setup.DefaultKeyItem)
	return state.NewGame(w, "tester")
}

func TestWriteMapDump(t *testing.T) {
	g := newGame(t)
	g.Fog.Reveal(g.World.Grid, world.Point{}, 1)

	var buf bytes.Buffer
	WriteMapDump(&buf, g)
	out := buf.String()

	for _, want := range []string{
		"--- Map (revealed tiles only; unrevealed = ?) ---\n@.?\n?.?\n",
		"--- Map (fully revealed) ---\n@.B\n#.E\n",
		`Bau_1 at (2,0) item: "Chave" opened: false`,
		"Entrada -> N1_0\n",
		"N1_0 -> Entrada, Bau_1, N1_1\n",
		"key_room: Bau_1\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("dump lacks %q\n%s", want, out)
		}
	}
}

func TestDumpMapToFile(t *testing.T) {
	path, err := DumpMapToFile(newGame(t), t.TempDir())
	if err != nil {
		t.Fatalf("DumpMapToFile() error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !bytes.HasPrefix(data, []byte("=== MAP DUMP DEBUG")) {
		t.Errorf("dump starts with %q", data[:min(len(data), 40)])
	}
}

func TestExportGraph_MatchesRoomGraph(t *testing.T) {
	w := setup.NewWorld(setup.DefaultOptions(), 99)
	g, err := ExportGraph(w)
	if err != nil {
		t.Fatalf("ExportGraph() error = %v", err)
	}

	order, err := g.Order()
	if err != nil || order != w.Graph.Len() {
		t.Fatalf("Order() = %d, %v, want %d", order, err, w.Graph.Len())
	}

	for _, chest := range w.ChestRooms {
		path, err := graph.ShortestPath(g, w.Start.String(), chest.String())
		if err != nil {
			t.Fatalf("ShortestPath(%s) error = %v", chest, err)
		}
		if got, want := len(path)-1, w.Graph.Distance(w.Start, chest); got != want {
			t.Errorf("distance to %s = %d, room graph says %d", chest, got, want)
		}
	}
}

func TestWriteDOT(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteDOT(&buf, newGame(t).World); err != nil {
		t.Fatalf("WriteDOT() error = %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "strict graph") && !strings.HasPrefix(out, "graph") {
		t.Errorf("DOT output starts with %q", out[:min(len(out), 20)])
	}
	for _, want := range []string{`"Entrada"`, `"Bau_1"`, `"Portão"`, `"N1_1"`} {
		if !strings.Contains(out, want) {
			t.Errorf("DOT output lacks %s", want)
		}
	}
}

func TestWriteScreenshotHTML(t *testing.T) {
	g := newGame(t)
	g.Fog.Reveal(g.World.Grid, world.Point{}, 1)

	var buf bytes.Buffer
	if err := WriteScreenshotHTML(&buf, g); err != nil {
		t.Fatalf("WriteScreenshotHTML() error = %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		`<div class="map-row"><span class="player">@</span><span class="floor">·</span><span class="void"> </span></div>`,
		"(empty)",
		"In: Entrada, steps: 0",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("screenshot lacks %q\n%s", want, out)
		}
	}

	g.Player.AddItem("Chave", "Opens the final gate")
	g.AddMessage("<b>found</b>")
	buf.Reset()
	if err := WriteScreenshotHTML(&buf, g); err != nil {
		t.Fatalf("WriteScreenshotHTML() error = %v", err)
	}
	out = buf.String()
	if !strings.Contains(out, `<span class="inventory-item">Chave</span>`) {
		t.Error("screenshot lacks the held item")
	}
	if !strings.Contains(out, "&lt;b&gt;found&lt;/b&gt;") {
		t.Error("message was not escaped")
	}
}

func TestSaveScreenshotHTML(t *testing.T) {
	path, err := SaveScreenshotHTML(newGame(t), t.TempDir())
	if err != nil {
		t.Fatalf("SaveScreenshotHTML() error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !bytes.HasPrefix(data, []byte("<!DOCTYPE html>")) {
		t.Errorf("screenshot starts with %q", data[:min(len(data), 20)])
	}
}
