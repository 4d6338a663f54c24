// Package graph provides an undirected, unweighted adjacency-list graph with
// breadth-first shortest paths and depth-first ordering. Neighbour lists keep
// insertion order so that search results are reproducible.
package graph

import (
	"slices"

	"github.com/zyedidia/generic/mapset"
)

// EventKind identifies what an Observer is being told about.
type EventKind int

const (
	EventVertexAdded EventKind = iota
	EventEdgeAdded
	EventVertexRemoved
	EventEdgeRemoved
	EventPathFound
	EventPathNotFound
)

// String returns a short name for the event kind
func (k EventKind) String() string {
	switch k {
	case EventVertexAdded:
		return "vertex added"
	case EventEdgeAdded:
		return "edge added"
	case EventVertexRemoved:
		return "vertex removed"
	case EventEdgeRemoved:
		return "edge removed"
	case EventPathFound:
		return "path found"
	case EventPathNotFound:
		return "path not found"
	default:
		return "unknown"
	}
}

// Event is a diagnostic notification. From and To are the endpoints for
// edge and path events; vertex events only set From. Length is the number
// of nodes in a found path.
type Event[K comparable] struct {
	Kind   EventKind
	From   K
	To     K
	Length int
}

// Observer receives diagnostic events. It must not mutate the graph.
type Observer[K comparable] func(Event[K])

// Graph is an undirected graph without weights or self-loops.
type Graph[K comparable] struct {
	adj      map[K][]K
	order    []K
	observer Observer[K]
}

// New creates an empty graph
func New[K comparable]() *Graph[K] {
	return &Graph[K]{adj: make(map[K][]K)}
}

// SetObserver installs (or clears, with nil) the diagnostic hook.
func (g *Graph[K]) SetObserver(fn Observer[K]) {
	g.observer = fn
}

func (g *Graph[K]) emit(e Event[K]) {
	if g.observer != nil {
		g.observer(e)
	}
}

// Len returns the number of vertices
func (g *Graph[K]) Len() int {
	return len(g.order)
}

// Has reports whether id is a vertex of the graph
func (g *Graph[K]) Has(id K) bool {
	_, ok := g.adj[id]
	return ok
}

// Vertices returns all vertices in the order they were first added.
func (g *Graph[K]) Vertices() []K {
	return slices.Clone(g.order)
}

// AddVertex adds an isolated vertex. Adding an existing vertex does nothing.
func (g *Graph[K]) AddVertex(id K) {
	if g.Has(id) {
		return
	}
	g.adj[id] = nil
	g.order = append(g.order, id)
	g.emit(Event[K]{Kind: EventVertexAdded, From: id})
}

// AddEdge connects a and b, creating either vertex if needed. The edge is
// recorded on both sides at most once; a self-loop is ignored.
func (g *Graph[K]) AddEdge(a, b K) {
	g.AddVertex(a)
	g.AddVertex(b)
	if a == b {
		return
	}

	added := false
	if !slices.Contains(g.adj[a], b) {
		g.adj[a] = append(g.adj[a], b)
		added = true
	}
	if !slices.Contains(g.adj[b], a) {
		g.adj[b] = append(g.adj[b], a)
		added = true
	}
	if added {
		g.emit(Event[K]{Kind: EventEdgeAdded, From: a, To: b})
	}
}

// RemoveVertex deletes id and every edge touching it. Unknown ids are ignored.
func (g *Graph[K]) RemoveVertex(id K) {
	if !g.Has(id) {
		return
	}
	for _, n := range g.adj[id] {
		g.adj[n] = slices.DeleteFunc(g.adj[n], func(v K) bool { return v == id })
	}
	delete(g.adj, id)
	g.order = slices.DeleteFunc(g.order, func(v K) bool { return v == id })
	g.emit(Event[K]{Kind: EventVertexRemoved, From: id})
}

// RemoveEdge deletes the edge between a and b if present.
func (g *Graph[K]) RemoveEdge(a, b K) {
	removed := false
	if list, ok := g.adj[a]; ok {
		if i := slices.Index(list, b); i >= 0 {
			g.adj[a] = slices.Delete(list, i, i+1)
			removed = true
		}
	}
	if list, ok := g.adj[b]; ok {
		if i := slices.Index(list, a); i >= 0 {
			g.adj[b] = slices.Delete(list, i, i+1)
			removed = true
		}
	}
	if removed {
		g.emit(Event[K]{Kind: EventEdgeRemoved, From: a, To: b})
	}
}

// Neighbors returns the neighbours of id in insertion order. The result is a
// copy; an unknown id yields an empty slice.
func (g *Graph[K]) Neighbors(id K) []K {
	return slices.Clone(g.adj[id])
}

// Adjacent reports whether a and b share an edge
func (g *Graph[K]) Adjacent(a, b K) bool {
	return slices.Contains(g.adj[a], b)
}

// ShortestPath returns the nodes from start to goal inclusive along a path
// with the fewest edges. Neighbours are expanded in insertion order, so among
// equally short paths the one found first wins. The result is empty when
// either endpoint is unknown or goal cannot be reached.
func (g *Graph[K]) ShortestPath(start, goal K) []K {
	if !g.Has(start) || !g.Has(goal) {
		g.emit(Event[K]{Kind: EventPathNotFound, From: start, To: goal})
		return nil
	}
	if start == goal {
		g.emit(Event[K]{Kind: EventPathFound, From: start, To: goal, Length: 1})
		return []K{start}
	}

	parent := make(map[K]K)
	visited := mapset.New[K]()
	visited.Put(start)
	queue := []K{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, next := range g.adj[current] {
			if visited.Has(next) {
				continue
			}
			visited.Put(next)
			parent[next] = current

			if next == goal {
				path := tracePath(parent, start, goal)
				g.emit(Event[K]{Kind: EventPathFound, From: start, To: goal, Length: len(path)})
				return path
			}
			queue = append(queue, next)
		}
	}

	g.emit(Event[K]{Kind: EventPathNotFound, From: start, To: goal})
	return nil
}

func tracePath[K comparable](parent map[K]K, start, goal K) []K {
	path := []K{goal}
	for at := goal; at != start; {
		at = parent[at]
		path = append(path, at)
	}
	slices.Reverse(path)
	return path
}

// Distance returns the number of edges on the shortest path from start to
// goal, or -1 if there is none.
func (g *Graph[K]) Distance(start, goal K) int {
	return len(g.ShortestPath(start, goal)) - 1
}

// DepthFirstOrder lists every vertex reachable from start in recursive
// pre-order, visiting neighbours in insertion order. An unknown start yields
// an empty slice.
func (g *Graph[K]) DepthFirstOrder(start K) []K {
	if !g.Has(start) {
		return nil
	}
	var order []K
	visited := mapset.New[K]()
	g.dfs(start, &visited, &order)
	return order
}

func (g *Graph[K]) dfs(id K, visited *mapset.Set[K], order *[]K) {
	visited.Put(id)
	*order = append(*order, id)
	for _, next := range g.adj[id] {
		if !visited.Has(next) {
			g.dfs(next, visited, order)
		}
	}
}
