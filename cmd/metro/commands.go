package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rhartert/metro-ls/metro"
)

type command struct {
	name  string
	usage string
	nArgs int
	run   func(ed *metro.Editor, args []string, w io.Writer) error
}

var commands []command

func init() {
	commands = []command{
		{"stations", "list the stations of every line", 0, runStations},
		{"route", "<src> <dst>: show the route and fare between two stations", 2, runRoute},
		{"insert-station", "<line> <station> <position>: insert a station before a 1-based position", 3, runInsertStation},
		{"remove-station", "<line> <station>: remove a station from a line", 2, runRemoveStation},
		{"add-line", "<name> <s1,s2,...> <distance> <fare rows 'a,b;c,d'>: add a line", 4, runAddLine},
		{"update-fare", "<src> <dst> <fare>: update the fare between two stations", 3, runUpdateFare},
	}
}

func findCommand(name string) (command, bool) {
	for _, c := range commands {
		if c.name == name {
			return c, true
		}
	}
	return command{}, false
}

// exec runs the command after checking the number of arguments.
func (c command) exec(ed *metro.Editor, args []string, w io.Writer) error {
	if len(args) != c.nArgs {
		return fmt.Errorf("expected %d arguments, got %d", c.nArgs, len(args))
	}
	return c.run(ed, args, w)
}

// resolveStation accepts either a station name or its number in the
// station listing.
func resolveStation(c *metro.Catalog, arg string) string {
	if n, err := strconv.Atoi(arg); err == nil {
		if s, ok := c.StationByNumber(n); ok {
			return s
		}
	}
	return arg
}

func runStations(ed *metro.Editor, args []string, w io.Writer) error {
	c := ed.Catalog
	line := ""
	for _, e := range c.Listing() {
		if e.Line != line {
			line = e.Line
			stations, _ := c.Stations(line)
			fmt.Fprintf(w, "\n=== %s Line (%s → %s) ===\n",
				strings.ToUpper(line[:1])+line[1:],
				stations[0], stations[len(stations)-1])
		}
		fmt.Fprintf(w, "%d. %s\n", e.Number, e.Station)
		if e.Interchange {
			fmt.Fprintf(w, "   ↳ (Interchange with other lines)\n")
		}
	}
	return nil
}

func runRoute(ed *metro.Editor, args []string, w io.Writer) error {
	c := ed.Catalog
	src := resolveStation(c, args[0])
	dst := resolveStation(c, args[1])
	if src == dst {
		return fmt.Errorf("%w: source and destination cannot be the same", metro.ErrInvalidArgument)
	}

	r, err := metro.FindRoute(c, src, dst)
	if err != nil {
		return err
	}
	if !r.Reachable() {
		fmt.Fprintf(w, "No route from %s to %s\n", src, dst)
		return nil
	}

	fmt.Fprintf(w, "Route: %s\n", strings.Join(metro.DisplayRoute(c, src, dst), " -> "))
	fmt.Fprintf(w, "Total Fare: ₹%d\n", r.Fare)
	fmt.Fprintf(w, "Distance: %d\n", r.Distance)
	if x, ok := metro.TransferStation(c, r.Path, src, dst); ok {
		fmt.Fprintf(w, "   ↳ Change at %s to switch lines\n", x)
	}
	return nil
}

func runInsertStation(ed *metro.Editor, args []string, w io.Writer) error {
	pos, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("%w: invalid position: %s", metro.ErrInvalidArgument, err)
	}
	if err := ed.InsertStation(args[0], args[1], pos); err != nil {
		return err
	}
	fmt.Fprintf(w, "Station '%s' added successfully to %s line.\n", args[1], metro.LineKey(args[0]))
	return nil
}

func runRemoveStation(ed *metro.Editor, args []string, w io.Writer) error {
	if err := ed.RemoveStation(args[0], args[1]); err != nil {
		return err
	}
	fmt.Fprintf(w, "Station '%s' removed successfully from %s line.\n", args[1], metro.LineKey(args[0]))
	return nil
}

func runAddLine(ed *metro.Editor, args []string, w io.Writer) error {
	stations := strings.Split(args[1], ",")
	for i := range stations {
		stations[i] = strings.TrimSpace(stations[i])
	}
	distance, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("%w: invalid distance: %s", metro.ErrInvalidArgument, err)
	}
	fares, err := parseFareMatrix(args[3], len(stations))
	if err != nil {
		return err
	}

	fareFn := func(i, j int) int { return fares[i][j] }
	if err := ed.AddLine(args[0], stations, distance, fareFn); err != nil {
		return err
	}
	fmt.Fprintf(w, "New line '%s' added successfully.\n", metro.LineKey(args[0]))
	return nil
}

func runUpdateFare(ed *metro.Editor, args []string, w io.Writer) error {
	c := ed.Catalog
	src := resolveStation(c, args[0])
	dst := resolveStation(c, args[1])
	fare, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("%w: invalid fare: %s", metro.ErrInvalidArgument, err)
	}
	if err := ed.UpdateFare(src, dst, fare); err != nil {
		return err
	}
	fmt.Fprintf(w, "Fare between '%s' and '%s' updated to ₹%d\n", src, dst, fare)
	return nil
}

// parseFareMatrix parses a square matrix of n rows separated by ';' whose
// values are separated by ','. The matrix must be symmetric.
func parseFareMatrix(s string, n int) ([][]int, error) {
	rows := strings.Split(s, ";")
	if len(rows) != n {
		return nil, fmt.Errorf("%w: expected %d fare rows, got %d", metro.ErrInvalidArgument, n, len(rows))
	}
	m := make([][]int, n)
	for i, row := range rows {
		parts := strings.Split(row, ",")
		if len(parts) != n {
			return nil, fmt.Errorf("%w: fare row %d has %d values, want %d", metro.ErrInvalidArgument, i, len(parts), n)
		}
		m[i] = make([]int, n)
		for j, p := range parts {
			f, err := strconv.Atoi(strings.TrimSpace(p))
			if err != nil {
				return nil, fmt.Errorf("%w: invalid fare: %s", metro.ErrInvalidArgument, err)
			}
			m[i][j] = f
		}
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if m[i][j] != m[j][i] {
				return nil, fmt.Errorf("%w: fare from %d to %d differs from fare from %d to %d", metro.ErrInvalidArgument, i+1, j+1, j+1, i+1)
			}
		}
	}
	return m, nil
}
