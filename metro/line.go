package metro

import (
	"fmt"
	"slices"
	"strings"
)

// Line is a named, ordered sequence of stations. Consecutive stations are
// directly connected. Every hop on the line has the same distance weight.
//
// Fares is the fare matrix of the line, indexed by station position. A valid
// line respects the following invariants:
//
//   - len(Fares) == len(Fares[i]) == len(Stations) for all i
//   - Fares[i][j] == Fares[j][i]
//   - Fares[i][i] == 0
//
// The symmetry and zero diagonal are maintained by every operation of this
// package but are not enforced on lines loaded from records.
type Line struct {
	Name     string
	Stations []string
	Distance int
	Fares    [][]int
}

// Pricing holds the constants used to re-price a fare matrix when a station
// is inserted in a line.
type Pricing struct {
	// AdjacentFare is the fare between two stations that end up exactly one
	// position apart after the insertion.
	AdjacentFare int

	// FarFare is the fare used when a pair cannot be mapped back to the
	// matrix that existed before the insertion.
	FarFare int
}

// DefaultPricing is the pricing used when none is configured.
var DefaultPricing = Pricing{
	AdjacentFare: 10,
	FarFare:      25,
}

// Index returns the position of station in the line, or -1 if the station
// is not on the line.
func (l *Line) Index(station string) int {
	return slices.Index(l.Stations, station)
}

// Contains returns true if the station is on the line.
func (l *Line) Contains(station string) bool {
	return l.Index(station) != -1
}

// Clone returns a deep copy of the line.
func (l *Line) Clone() Line {
	fares := make([][]int, len(l.Fares))
	for i, row := range l.Fares {
		fares[i] = slices.Clone(row)
	}
	return Line{
		Name:     l.Name,
		Stations: slices.Clone(l.Stations),
		Distance: l.Distance,
		Fares:    fares,
	}
}

// Validate checks that the line is well-formed: a valid name, at least one
// station, unique valid station names, a positive distance weight and a
// square fare matrix of non-negative fares matching the number of stations.
func (l *Line) Validate() error {
	if err := validateName("line", l.Name); err != nil {
		return err
	}
	if len(l.Stations) == 0 {
		return fmt.Errorf("%w: line %q has no stations", ErrInvalidArgument, l.Name)
	}
	seen := make(map[string]bool, len(l.Stations))
	for _, s := range l.Stations {
		if err := validateName("station", s); err != nil {
			return err
		}
		if seen[s] {
			return fmt.Errorf("%w: station %q appears twice on line %q", ErrInvalidArgument, s, l.Name)
		}
		seen[s] = true
	}
	if l.Distance <= 0 {
		return fmt.Errorf("%w: distance weight must be positive, got %d", ErrInvalidArgument, l.Distance)
	}
	n := len(l.Stations)
	if len(l.Fares) != n {
		return fmt.Errorf("%w: line %q has %d stations but %d fare rows", ErrInvalidArgument, l.Name, n, len(l.Fares))
	}
	for i, row := range l.Fares {
		if len(row) != n {
			return fmt.Errorf("%w: fare row %d of line %q has %d values, want %d", ErrInvalidArgument, i, l.Name, len(row), n)
		}
		for _, f := range row {
			if f < 0 {
				return fmt.Errorf("%w: negative fare %d on line %q", ErrInvalidArgument, f, l.Name)
			}
		}
	}
	return nil
}

// CanInsert returns true if a station can be inserted before the 1-based
// position pos.
func (l *Line) CanInsert(pos int) bool {
	return 1 <= pos && pos <= len(l.Stations)+1
}

// Insert inserts station before the 1-based position pos. The station
// originally at pos (and all subsequent stations) are shifted one position to
// the right. It returns false if pos is out of range.
//
// The fare matrix is rebuilt heuristically: pairs that end up exactly one
// position apart get p.AdjacentFare, other pairs copy their fare from the
// previous matrix, or get p.FarFare when they cannot be mapped back to it.
// This is an approximation, not an exact re-pricing of the line.
func (l *Line) Insert(station string, pos int, p Pricing) bool {
	if !l.CanInsert(pos) {
		return false
	}

	at := pos - 1
	old := l.Fares
	oldSize := len(l.Stations)
	l.Stations = slices.Insert(l.Stations, at, station)

	n := len(l.Stations)
	fares := squareMatrix(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			switch {
			case i == j:
				fares[i][j] = 0
			case i-j == 1 || j-i == 1:
				fares[i][j] = p.AdjacentFare
			default:
				oi, oj := i, j
				if i > at {
					oi--
				}
				if j > at {
					oj--
				}
				if oi < oldSize && oj < oldSize {
					fares[i][j] = old[oi][oj]
				} else {
					fares[i][j] = p.FarFare
				}
			}
		}
	}
	l.Fares = fares
	return true
}

// CanRemove returns true if the station at position pos (0-based) can be
// removed without leaving the line with less than two stations.
func (l *Line) CanRemove(pos int) bool {
	return len(l.Stations) > 2 && 0 <= pos && pos < len(l.Stations)
}

// Remove removes the station at position pos (0-based) together with its row
// and column in the fare matrix. All other fares are preserved. It returns
// false if the removal would violate CanRemove.
func (l *Line) Remove(pos int) bool {
	if !l.CanRemove(pos) {
		return false
	}

	n := len(l.Stations) - 1
	fares := squareMatrix(n)
	for i, oi := 0, 0; oi < len(l.Stations); oi++ {
		if oi == pos {
			continue
		}
		for j, oj := 0, 0; oj < len(l.Stations); oj++ {
			if oj == pos {
				continue
			}
			fares[i][j] = l.Fares[oi][oj]
			j++
		}
		i++
	}

	l.Stations = slices.Delete(l.Stations, pos, pos+1)
	l.Fares = fares
	return true
}

// SetFare sets the fare between the stations at positions i and j in both
// directions.
func (l *Line) SetFare(i, j, fare int) {
	l.Fares[i][j] = fare
	l.Fares[j][i] = fare
}

// Run returns the stations between positions from and to (both included),
// walking the line forward or backward depending on their order. If
// skipFirst is true, the station at from is left out. It returns nil if
// either position is -1.
func (l *Line) Run(from, to int, skipFirst bool) []string {
	if from == -1 || to == -1 {
		return nil
	}
	var run []string
	if from <= to {
		if skipFirst {
			from++
		}
		for i := from; i <= to; i++ {
			run = append(run, l.Stations[i])
		}
		return run
	}
	if skipFirst {
		from--
	}
	for i := from; i >= to; i-- {
		run = append(run, l.Stations[i])
	}
	return run
}

func squareMatrix(n int) [][]int {
	m := make([][]int, n)
	for i := range m {
		m[i] = make([]int, n)
	}
	return m
}

// validateName checks that a line or station name can be written to the
// record format.
func validateName(kind, name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: %s name is empty", ErrInvalidArgument, kind)
	}
	if strings.ContainsAny(name, ",\r\n") {
		return fmt.Errorf("%w: %s name %q contains a comma or line break", ErrInvalidArgument, kind, name)
	}
	return nil
}
