package metro

import (
	"fmt"
	"strings"
)

// DefaultInterchange is the interchange station of the default topology.
const DefaultInterchange = "Civil Court"

// Catalog is the authoritative description of the network: the lines in the
// order they were added, and the name of the interchange station shared by
// the lines.
//
// A Catalog is owned by a single actor and is not safe for concurrent use.
// The Network Graph is never stored in the catalog; it is derived from it
// with BuildGraph each time a route is computed.
type Catalog struct {
	interchange string
	names       []string
	lines       map[string]*Line
}

// NewCatalog returns an empty catalog with the given interchange station.
func NewCatalog(interchange string) *Catalog {
	return &Catalog{
		interchange: interchange,
		lines:       map[string]*Line{},
	}
}

// NewCatalogFromLines returns a catalog made of the given lines, in order. The
// lines are copied. It returns an error if any line is invalid, if two lines
// have the same name, if a station other than the interchange is on more than
// one line, or if the lines do not contain the interchange at all.
func NewCatalogFromLines(interchange string, lines []Line) (*Catalog, error) {
	c := NewCatalog(interchange)
	for i := range lines {
		if err := c.Add(lines[i]); err != nil {
			return nil, err
		}
		if err := c.checkShared(LineKey(lines[i].Name)); err != nil {
			return nil, err
		}
	}
	if len(lines) > 0 && !c.HasStation(interchange) {
		return nil, fmt.Errorf("%w: interchange station %q is on no line", ErrInvalidArgument, interchange)
	}
	return c, nil
}

// LineKey returns the normalized form of a line name used as catalog key.
// Line names are case-insensitive.
func LineKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Interchange returns the name of the interchange station.
func (c *Catalog) Interchange() string {
	return c.interchange
}

// Add validates the line and appends a copy of it to the catalog. The line
// name is normalized with LineKey.
func (c *Catalog) Add(line Line) error {
	l := line.Clone()
	l.Name = LineKey(l.Name)
	if err := l.Validate(); err != nil {
		return err
	}
	if _, ok := c.lines[l.Name]; ok {
		return fmt.Errorf("%w: line %q already exists", ErrForbidden, l.Name)
	}
	c.names = append(c.names, l.Name)
	c.lines[l.Name] = &l
	return nil
}

// LineNames returns the names of the lines in catalog order.
func (c *Catalog) LineNames() []string {
	names := make([]string, len(c.names))
	copy(names, c.names)
	return names
}

// Len returns the number of lines in the catalog.
func (c *Catalog) Len() int {
	return len(c.names)
}

// Line returns a copy of the named line.
func (c *Catalog) Line(name string) (Line, bool) {
	l, ok := c.lines[LineKey(name)]
	if !ok {
		return Line{}, false
	}
	return l.Clone(), true
}

// Stations returns the station sequence of the named line.
func (c *Catalog) Stations(name string) ([]string, error) {
	l, err := c.line(name)
	if err != nil {
		return nil, err
	}
	return l.Clone().Stations, nil
}

// Fares returns the fare matrix of the named line.
func (c *Catalog) Fares(name string) ([][]int, error) {
	l, err := c.line(name)
	if err != nil {
		return nil, err
	}
	return l.Clone().Fares, nil
}

// Distance returns the distance weight of the named line.
func (c *Catalog) Distance(name string) (int, error) {
	l, err := c.line(name)
	if err != nil {
		return 0, err
	}
	return l.Distance, nil
}

// FindLine returns the name of the first line, in catalog order, that
// contains the station.
func (c *Catalog) FindLine(station string) (string, bool) {
	for _, name := range c.names {
		if c.lines[name].Contains(station) {
			return name, true
		}
	}
	return "", false
}

// HasStation returns true if the station is on at least one line.
func (c *Catalog) HasStation(station string) bool {
	_, ok := c.FindLine(station)
	return ok
}

// Lines returns a copy of every line in catalog order. This is the view
// used to serialize the catalog.
func (c *Catalog) Lines() []Line {
	lines := make([]Line, 0, len(c.names))
	for _, name := range c.names {
		lines = append(lines, c.lines[name].Clone())
	}
	return lines
}

// StationByNumber returns the station with the given 1-based number, where
// stations are numbered line after line in catalog order. The interchange
// station has one number per line it appears on.
func (c *Catalog) StationByNumber(n int) (string, bool) {
	counter := 1
	for _, name := range c.names {
		stations := c.lines[name].Stations
		if counter <= n && n < counter+len(stations) {
			return stations[n-counter], true
		}
		counter += len(stations)
	}
	return "", false
}

// Listing returns every station with its number, as used by StationByNumber.
// The interchange station is listed once per line it appears on.
func (c *Catalog) Listing() []NumberedStation {
	var listing []NumberedStation
	for _, name := range c.names {
		for _, s := range c.lines[name].Stations {
			listing = append(listing, NumberedStation{
				Number:      len(listing) + 1,
				Line:        name,
				Station:     s,
				Interchange: s == c.interchange,
			})
		}
	}
	return listing
}

// NumberedStation is an entry of the station listing.
type NumberedStation struct {
	Number      int
	Line        string
	Station     string
	Interchange bool
}

// checkShared rejects the named line if it reuses a station of a line that
// comes before it, unless that station is the interchange.
func (c *Catalog) checkShared(name string) error {
	for _, s := range c.lines[name].Stations {
		if s == c.interchange {
			continue
		}
		if other, _ := c.FindLine(s); other != name {
			return fmt.Errorf("%w: station %q is on lines %q and %q", ErrInvalidArgument, s, other, name)
		}
	}
	return nil
}

func (c *Catalog) line(name string) (*Line, error) {
	l, ok := c.lines[LineKey(name)]
	if !ok {
		return nil, fmt.Errorf("%w: line %q", ErrNotFound, name)
	}
	return l, nil
}
