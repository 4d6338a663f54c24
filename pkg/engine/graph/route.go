package graph

import "slices"

// CollectionRoute builds a walk from start that picks up every target and
// then ends at dest. At each step it moves to the nearest uncollected target
// by shortest path; ties go to the target listed first. This is the greedy
// nearest-neighbour heuristic, so the walk is not guaranteed to be the
// shortest possible tour.
//
// Targets that cannot be reached from the current position are skipped and
// collection stops once none of the remaining ones can be reached. If dest is
// unreachable the route ends at the last collected target.
func (g *Graph[K]) CollectionRoute(start K, targets []K, dest K) []K {
	var route []K
	current := start
	remaining := slices.Clone(targets)

	for len(remaining) > 0 {
		best := -1
		var bestPath []K
		for i, t := range remaining {
			path := g.ShortestPath(current, t)
			if len(path) == 0 {
				continue
			}
			if best < 0 || len(path) < len(bestPath) {
				best = i
				bestPath = path
			}
		}
		if best < 0 {
			break
		}

		route = appendLeg(route, bestPath)
		current = remaining[best]
		remaining = slices.Delete(remaining, best, best+1)
	}

	return appendLeg(route, g.ShortestPath(current, dest))
}

// appendLeg joins leg onto route, dropping the junction node that both share.
func appendLeg[K comparable](route, leg []K) []K {
	if len(route) > 0 && len(leg) > 0 {
		leg = leg[1:]
	}
	return append(route, leg...)
}

// RouteLength returns the number of edges walked by a route
func RouteLength[K any](route []K) int {
	if len(route) == 0 {
		return 0
	}
	return len(route) - 1
}
