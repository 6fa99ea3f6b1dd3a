package metro

import "fmt"

// BuildGraph derives the Network Graph from the catalog. Every pair of
// stations of a line is connected, in both directions, with the line's
// distance weight and the pair's fare. The interchange station gets a
// zero-weight self-loop so that it is always a node of the graph.
//
// The graph is meant to be built right before a query and discarded after.
func BuildGraph(c *Catalog) *Graph {
	g := NewGraph()
	for _, name := range c.names {
		l := c.lines[name]
		for i, a := range l.Stations {
			for j, b := range l.Stations {
				if i == j {
					continue
				}
				g.AddEdge(a, b, l.Distance, l.Fares[i][j])
			}
		}
	}
	g.AddEdge(c.interchange, c.interchange, 0, 0)
	return g
}

// Route is the result of a route query.
type Route struct {
	Distance int
	Path     []string
	Fare     int
}

// Reachable returns true if a path exists between the two stations.
func (r Route) Reachable() bool {
	return r.Distance != Unreachable
}

// FindRoute rebuilds the Network Graph from the catalog and returns the
// shortest path from start to end together with its fare. Both stations must
// be on a line of the catalog.
//
// An unreachable destination is not an error: the returned route has
// distance Unreachable.
func FindRoute(c *Catalog, start, end string) (Route, error) {
	for _, s := range []string{start, end} {
		if !c.HasStation(s) {
			return Route{}, fmt.Errorf("%w: station %q", ErrNotFound, s)
		}
	}

	g := BuildGraph(c)
	dist, path := g.ShortestPath(start, end)
	return Route{
		Distance: dist,
		Path:     path,
		Fare:     g.PathFare(path),
	}, nil
}
