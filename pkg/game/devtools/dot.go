package devtools

import (
	"errors"
	"fmt"
	"io"

	"github.com/dominikbraun/graph"
	"github.com/dominikbraun/graph/draw"

	"territory/pkg/game/state"
)

// ExportGraph copies the room graph into a dominikbraun graph keyed by node
// text form. Rooms are drawn as boxes; the key chest and the exit are coloured.
func ExportGraph(w *state.World) (graph.Graph[string, string], error) {
	g := graph.New(graph.StringHash)

	for _, id := range w.Graph.Vertices() {
		attrs := map[string]string{"shape": "point"}
		if id.IsRoom() {
			attrs = map[string]string{"shape": "box"}
		}
		switch id {
		case w.KeyRoom:
			attrs["color"] = "gold"
		case w.Exit:
			attrs["color"] = "red"
		case w.Start:
			attrs["color"] = "green"
		}
		if err := g.AddVertex(id.String(), graph.VertexAttributes(attrs)); err != nil {
			return nil, fmt.Errorf("add vertex %s: %w", id, err)
		}
	}

	for _, id := range w.Graph.Vertices() {
		for _, n := range w.Neighbors(id) {
			err := g.AddEdge(id.String(), n.String())
			if err != nil && !errors.Is(err, graph.ErrEdgeAlreadyExists) {
				return nil, fmt.Errorf("add edge %s-%s: %w", id, n, err)
			}
		}
	}
	return g, nil
}

// WriteDOT writes the room graph in Graphviz DOT format
func WriteDOT(out io.Writer, w *state.World) error {
	g, err := ExportGraph(w)
	if err != nil {
		return err
	}
	return draw.DOT(g, out)
}
