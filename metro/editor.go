package metro

import "fmt"

// Store persists a catalog. Save is called with the whole catalog after every
// successful mutation.
type Store interface {
	Save(c *Catalog) error
}

// FareFunc returns the fare between the stations at positions i and j of a
// line being created. It is only called with i < j.
type FareFunc func(i, j int) int

// Editor applies topology and fare changes to a catalog and persists the
// catalog after each successful change.
//
// If persisting fails, the change is kept in memory and the returned error
// wraps ErrNotSaved: the catalog and the store may disagree until the next
// successful save.
type Editor struct {
	Catalog *Catalog
	Store   Store
	Pricing Pricing
}

// NewEditor returns an editor for the catalog. The store may be nil, in which
// case changes are only applied in memory.
func NewEditor(c *Catalog, store Store, p Pricing) *Editor {
	return &Editor{
		Catalog: c,
		Store:   store,
		Pricing: p,
	}
}

// InsertStation inserts a new station on the line before the 1-based
// position pos, where 1 <= pos <= len(stations)+1. The line's fare matrix is
// rebuilt as described in Line.Insert.
func (ed *Editor) InsertStation(lineName, station string, pos int) error {
	l, err := ed.Catalog.line(lineName)
	if err != nil {
		return err
	}
	if err := validateName("station", station); err != nil {
		return err
	}
	if l.Contains(station) {
		return fmt.Errorf("%w: station %q is already on line %q", ErrInvalidArgument, station, l.Name)
	}
	if err := ed.checkNewStation(station); err != nil {
		return err
	}
	if !l.Insert(station, pos, ed.Pricing) {
		return fmt.Errorf("%w: position must be between 1 and %d, got %d", ErrInvalidArgument, len(l.Stations)+1, pos)
	}
	return ed.save()
}

// RemoveStation removes the station from the line, together with its row
// and column in the fare matrix.
//
// The interchange station can never be removed, whatever the line. A line
// with two stations or less cannot lose a station.
func (ed *Editor) RemoveStation(lineName, station string) error {
	if station == ed.Catalog.interchange {
		return fmt.Errorf("%w: interchange station %q cannot be removed", ErrForbidden, station)
	}
	l, err := ed.Catalog.line(lineName)
	if err != nil {
		return err
	}
	if len(l.Stations) <= 2 {
		return fmt.Errorf("%w: line %q must keep at least two stations", ErrForbidden, l.Name)
	}
	pos := l.Index(station)
	if pos == -1 {
		return fmt.Errorf("%w: station %q is not on line %q", ErrNotFound, station, l.Name)
	}
	l.Remove(pos)
	return ed.save()
}

// AddLine creates a new line with the given stations and distance weight.
// The fare of every pair i < j is obtained from fares and mirrored so that
// the matrix is symmetric with a zero diagonal.
func (ed *Editor) AddLine(name string, stations []string, distance int, fares FareFunc) error {
	if _, ok := ed.Catalog.lines[LineKey(name)]; ok {
		return fmt.Errorf("%w: line %q already exists", ErrForbidden, LineKey(name))
	}
	if len(stations) == 0 {
		return fmt.Errorf("%w: line %q has no stations", ErrInvalidArgument, name)
	}
	for _, s := range stations {
		if err := ed.checkNewStation(s); err != nil {
			return err
		}
	}

	n := len(stations)
	matrix := squareMatrix(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			f := 0
			if fares != nil {
				f = fares(i, j)
			}
			matrix[i][j] = f
			matrix[j][i] = f
		}
	}

	line := Line{
		Name:     name,
		Stations: stations,
		Distance: distance,
		Fares:    matrix,
	}
	if err := ed.Catalog.Add(line); err != nil {
		return err
	}
	return ed.save()
}

// UpdateFare sets the fare between source and destination on the first line,
// in catalog order, that contains both stations.
func (ed *Editor) UpdateFare(source, destination string, fare int) error {
	if source == destination {
		return fmt.Errorf("%w: source and destination are the same station", ErrInvalidArgument)
	}
	if fare < 0 {
		return fmt.Errorf("%w: fare must be non-negative, got %d", ErrInvalidArgument, fare)
	}
	for _, name := range ed.Catalog.names {
		l := ed.Catalog.lines[name]
		i, j := l.Index(source), l.Index(destination)
		if i == -1 || j == -1 {
			continue
		}
		l.SetFare(i, j, fare)
		return ed.save()
	}
	return fmt.Errorf("%w: stations %q and %q are not together on any line", ErrNotFound, source, destination)
}

// checkNewStation rejects station names that are already used on another
// line, except for the interchange station.
func (ed *Editor) checkNewStation(station string) error {
	if station == ed.Catalog.interchange {
		return nil
	}
	if line, ok := ed.Catalog.FindLine(station); ok {
		return fmt.Errorf("%w: station %q is already on line %q", ErrInvalidArgument, station, line)
	}
	return nil
}

func (ed *Editor) save() error {
	if ed.Store == nil {
		return nil
	}
	if err := ed.Store.Save(ed.Catalog); err != nil {
		return fmt.Errorf("%w: %w", ErrNotSaved, err)
	}
	return nil
}
