package metro

import "slices"

// DisplayRoute returns the route a rider follows from source to destination,
// read from the catalog rather than from the Network Graph:
//
//   - if both stations are on the same line, the stations between them on
//     that line;
//   - otherwise, the stations from source to the interchange on the source's
//     line, then from the interchange to destination on the destination's
//     line, with the interchange listed once;
//   - if either station is on no line, just [source, destination].
//
// The result may differ from the path found by ShortestPath, which is free to
// skip stations of a line.
func DisplayRoute(c *Catalog, source, destination string) []string {
	srcName, okSrc := c.FindLine(source)
	dstName, okDst := c.FindLine(destination)
	if !okSrc || !okDst {
		return []string{source, destination}
	}

	src := c.lines[srcName]
	if srcName == dstName {
		return src.Run(src.Index(source), src.Index(destination), false)
	}

	dst := c.lines[dstName]
	route := src.Run(src.Index(source), src.Index(c.interchange), false)
	route = append(route, dst.Run(dst.Index(c.interchange), dst.Index(destination), true)...)
	return route
}

// TransferStation returns the interchange station if the rider has to change
// lines along path: the path goes through the interchange, neither endpoint
// is the interchange, and the endpoints are on different lines.
func TransferStation(c *Catalog, path []string, source, destination string) (string, bool) {
	x := c.interchange
	if !slices.Contains(path, x) || source == x || destination == x {
		return "", false
	}
	srcLine, okSrc := c.FindLine(source)
	dstLine, okDst := c.FindLine(destination)
	if !okSrc || !okDst || srcLine == dstLine {
		return "", false
	}
	return x, true
}
