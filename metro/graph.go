// Package metro models a multi-line transit network: a catalog of lines with
// their stations, distance weights and fare matrices, the weighted graph
// derived from it, and the route and fare computations run on that graph.
package metro

import (
	"math"
	"slices"

	"github.com/rhartert/sparsesets"
	"github.com/rhartert/yagh"
)

// Unreachable is the distance returned by ShortestPath when no path exists.
const Unreachable = math.MaxInt

// Edge represents a directed edge between two stations of the graph.
type Edge struct {
	From     int
	To       int
	Distance int
	Fare     int
}

// Graph is a weighted undirected graph over station names. Each undirected
// connection is stored as two directed edges that carry a distance and a
// fare.
//
// Station names are interned to dense node IDs in the order they are first
// seen. The neighbors of a node are visited in the order their edges were
// first added.
type Graph struct {
	Nexts [][]int
	Edges []Edge

	names []string
	ids   map[string]int
	index map[[2]int]int // (from, to) -> edge
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{
		ids:   map[string]int{},
		index: map[[2]int]int{},
	}
}

// Stations returns the names of all the stations in the graph, in the order
// they were first added.
func (g *Graph) Stations() []string {
	return slices.Clone(g.names)
}

// Contains returns true if the station is a node of the graph.
func (g *Graph) Contains(station string) bool {
	_, ok := g.ids[station]
	return ok
}

// AddEdge adds an edge between a and b in both directions. Unknown stations
// are added to the graph. If the edge already exists, its distance and fare
// are overwritten.
func (g *Graph) AddEdge(a, b string, distance, fare int) {
	u := g.node(a)
	v := g.node(b)
	g.putEdge(u, v, distance, fare)
	g.putEdge(v, u, distance, fare)
}

// Fare returns the fare of the edge from a to b, or 0 if there is no such
// edge.
func (g *Graph) Fare(a, b string) int {
	e, ok := g.edge(a, b)
	if !ok {
		return 0
	}
	return g.Edges[e].Fare
}

// UpdateFare sets the fare between a and b in each direction where the edge
// already exists. Missing edges are left alone.
func (g *Graph) UpdateFare(a, b string, fare int) {
	if e, ok := g.edge(a, b); ok {
		g.Edges[e].Fare = fare
	}
	if e, ok := g.edge(b, a); ok {
		g.Edges[e].Fare = fare
	}
}

// PathFare returns the sum of the fares between each pair of consecutive
// stations in path.
func (g *Graph) PathFare(path []string) int {
	total := 0
	for i := 1; i < len(path); i++ {
		total += g.Fare(path[i-1], path[i])
	}
	return total
}

// ShortestPath computes a path of minimum total distance from start to end
// with Dijkstra's algorithm. It returns the distance of that path and the
// sequence of stations from start to end (both included).
//
// The search stops as soon as end is popped from the frontier. When several
// paths have the same distance, the one whose last edge was relaxed first
// wins.
//
// If end cannot be reached, the returned distance is Unreachable and the
// path is the single station end. Callers must use the distance, not the
// length of the path, to tell an unreachable destination from a trivial one.
func (g *Graph) ShortestPath(start, end string) (int, []string) {
	if start == end {
		return 0, []string{start}
	}

	src, okSrc := g.ids[start]
	dst, okDst := g.ids[end]
	if !okSrc || !okDst {
		return Unreachable, []string{end}
	}

	nNodes := len(g.names)
	costs := make([]int, nNodes)
	prevs := make([]int, nNodes)
	for i := range costs {
		costs[i] = Unreachable
		prevs[i] = -1
	}

	settled := sparsesets.New(nNodes)
	h := yagh.New[int](nNodes)
	h.Put(src, 0)
	costs[src] = 0

	for h.Size() > 0 {
		entry := h.Pop()
		u, c := entry.Elem, entry.Cost
		if u == dst {
			break
		}
		settled.Insert(u)

		for _, e := range g.Nexts[u] {
			v := g.Edges[e].To
			// Only saves work: with non-negative distances a settled node
			// never gets a lower cost.
			if settled.Contains(v) {
				continue
			}
			newCost := c + g.Edges[e].Distance
			if newCost < costs[v] {
				costs[v] = newCost
				prevs[v] = u
				h.Put(v, newCost)
			}
		}
	}

	path := []string{}
	for n := dst; n != -1; n = prevs[n] {
		path = append(path, g.names[n])
	}
	slices.Reverse(path)

	return costs[dst], path
}

// node returns the ID of the station, adding it to the graph if needed.
func (g *Graph) node(station string) int {
	if id, ok := g.ids[station]; ok {
		return id
	}
	id := len(g.names)
	g.ids[station] = id
	g.names = append(g.names, station)
	g.Nexts = append(g.Nexts, nil)
	return id
}

func (g *Graph) edge(a, b string) (int, bool) {
	u, ok := g.ids[a]
	if !ok {
		return 0, false
	}
	v, ok := g.ids[b]
	if !ok {
		return 0, false
	}
	e, ok := g.index[[2]int{u, v}]
	return e, ok
}

func (g *Graph) putEdge(u, v, distance, fare int) {
	if e, ok := g.index[[2]int{u, v}]; ok {
		g.Edges[e].Distance = distance
		g.Edges[e].Fare = fare
		return
	}
	e := len(g.Edges)
	g.Edges = append(g.Edges, Edge{From: u, To: v, Distance: distance, Fare: fare})
	g.Nexts[u] = append(g.Nexts[u], e)
	g.index[[2]int{u, v}] = e
}
