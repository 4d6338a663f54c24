package graph

import (
	"slices"
	"testing"
)

// twoChestMap has Bau_1 two steps from the entrance, Bau_2 five steps away on
// the other branch, and the gate reachable only past Bau_2.
func twoChestMap() *Graph[string] {
	g := New[string]()
	g.AddEdge("Entrada", "a1")
	g.AddEdge("a1", "Bau_1")
	g.AddEdge("Entrada", "b1")
	g.AddEdge("b1", "b2")
	g.AddEdge("b2", "b3")
	g.AddEdge("b3", "b4")
	g.AddEdge("b4", "Bau_2")
	g.AddEdge("Bau_2", "x1")
	g.AddEdge("x1", "Portão")
	return g
}

func TestCollectionRoute_NearestFirst(t *testing.T) {
	g := twoChestMap()

	route := g.CollectionRoute("Entrada", []string{"Bau_2", "Bau_1"}, "Portão")

	i1 := slices.Index(route, "Bau_1")
	i2 := slices.Index(route, "Bau_2")
	if i1 < 0 || i2 < 0 || i1 > i2 {
		t.Fatalf("route %v should visit Bau_1 before Bau_2", route)
	}
	if route[0] != "Entrada" || route[len(route)-1] != "Portão" {
		t.Errorf("route %v should run from Entrada to Portão", route)
	}

	e1 := g.Distance("Entrada", "Bau_1")
	e2 := g.Distance("Bau_1", "Bau_2")
	e3 := g.Distance("Bau_2", "Portão")
	if want := e1 + e2 + e3 + 1; len(route) != want {
		t.Errorf("len(route) = %d, want %d (legs %d+%d+%d, junctions dropped)", len(route), want, e1, e2, e3)
	}
	if got := RouteLength(route); got != e1+e2+e3 {
		t.Errorf("RouteLength(route) = %d, want %d", got, e1+e2+e3)
	}
}

func TestCollectionRoute_TieGoesToFirstListed(t *testing.T) {
	g := New[string]()
	g.AddEdge("S", "L")
	g.AddEdge("S", "R")
	g.AddEdge("R", "E")

	got := g.CollectionRoute("S", []string{"R", "L"}, "E")
	want := []string{"S", "R", "S", "L", "S", "R", "E"}
	if !slices.Equal(got, want) {
		t.Errorf("CollectionRoute = %v, want %v", got, want)
	}

	got = g.CollectionRoute("S", []string{"L", "R"}, "E")
	want = []string{"S", "L", "S", "R", "E"}
	if !slices.Equal(got, want) {
		t.Errorf("CollectionRoute = %v, want %v", got, want)
	}
}

func TestCollectionRoute_SkipsUnreachable(t *testing.T) {
	g := twoChestMap()
	g.AddVertex("Bau_3")

	got := g.CollectionRoute("Entrada", []string{"Bau_3", "Bau_1"}, "a1")
	want := []string{"Entrada", "a1", "Bau_1", "a1"}
	if !slices.Equal(got, want) {
		t.Errorf("CollectionRoute = %v, want %v", got, want)
	}
}

func TestCollectionRoute_NoTargets(t *testing.T) {
	g := twoChestMap()
	got := g.CollectionRoute("Bau_2", nil, "Portão")
	want := []string{"Bau_2", "x1", "Portão"}
	if !slices.Equal(got, want) {
		t.Errorf("CollectionRoute = %v, want %v", got, want)
	}

	if got := g.CollectionRoute("Entrada", nil, "missing"); len(got) != 0 {
		t.Errorf("CollectionRoute to unknown dest = %v, want empty", got)
	}
}

func TestCollectionRoute_DoesNotMutateTargets(t *testing.T) {
	g := twoChestMap()
	targets := []string{"Bau_2", "Bau_1"}
	g.CollectionRoute("Entrada", targets, "Portão")
	if !slices.Equal(targets, []string{"Bau_2", "Bau_1"}) {
		t.Errorf("targets = %v after CollectionRoute, want unchanged", targets)
	}
}
