// Package records reads and writes the text record format used to persist a
// metro.Catalog. Each line of the catalog is stored as:
//
//	<name> Line
//	<comma-separated station names>
//	<distance weight>
//	<fare row 0, comma-separated integers>
//	...
//	<fare row n-1, comma-separated integers>
//	<blank line>
package records

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rhartert/metro-ls/metro"
)

const headerSuffix = " Line"

// ErrMalformed is returned when the records cannot be parsed.
var ErrMalformed = errors.New("malformed records")

// Write writes the lines to w in the record format.
func Write(w io.Writer, lines []metro.Line) error {
	bw := bufio.NewWriter(w)
	for _, l := range lines {
		fmt.Fprintf(bw, "%s%s\n", l.Name, headerSuffix)
		fmt.Fprintf(bw, "%s\n", strings.Join(l.Stations, ","))
		fmt.Fprintf(bw, "%d\n", l.Distance)
		for _, row := range l.Fares {
			values := make([]string, len(row))
			for i, f := range row {
				values[i] = strconv.Itoa(f)
			}
			fmt.Fprintf(bw, "%s\n", strings.Join(values, ","))
		}
		bw.WriteString("\n")
	}
	return bw.Flush()
}

// Read parses the lines stored in r. Line names are normalized with
// metro.LineKey. It returns an error wrapping ErrMalformed if a record is
// incomplete or if a fare matrix does not match the number of stations.
func Read(r io.Reader) ([]metro.Line, error) {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	next := func() (string, bool) {
		if !scanner.Scan() {
			return "", false
		}
		lineNo++
		return strings.TrimRight(scanner.Text(), "\r"), true
	}
	malformed := func(format string, args ...any) error {
		return fmt.Errorf("%w: line %d: %s", ErrMalformed, lineNo, fmt.Sprintf(format, args...))
	}

	lines := []metro.Line{}
	for {
		header, ok := next()
		if !ok {
			break
		}
		header = strings.TrimSpace(header)
		if header == "" {
			continue
		}
		if !strings.HasSuffix(header, headerSuffix) {
			return nil, malformed("expected %q header, got %q", "<name>"+headerSuffix, header)
		}
		name := metro.LineKey(strings.TrimSuffix(header, headerSuffix))

		stationsLine, ok := next()
		if !ok {
			return nil, malformed("missing stations of line %q", name)
		}
		stations := strings.Split(stationsLine, ",")

		distanceLine, ok := next()
		if !ok {
			return nil, malformed("missing distance of line %q", name)
		}
		distance, err := strconv.Atoi(strings.TrimSpace(distanceLine))
		if err != nil {
			return nil, malformed("invalid distance of line %q: %s", name, err)
		}

		n := len(stations)
		fares := make([][]int, n)
		for i := 0; i < n; i++ {
			rowLine, ok := next()
			if !ok {
				return nil, malformed("line %q has %d stations but %d fare rows", name, n, i)
			}
			parts := strings.Split(rowLine, ",")
			if len(parts) != n {
				return nil, malformed("fare row %d of line %q has %d values, want %d", i, name, len(parts), n)
			}
			fares[i] = make([]int, n)
			for j, p := range parts {
				f, err := strconv.Atoi(strings.TrimSpace(p))
				if err != nil {
					return nil, malformed("invalid fare in line %q: %s", name, err)
				}
				fares[i][j] = f
			}
		}

		lines = append(lines, metro.Line{
			Name:     name,
			Stations: stations,
			Distance: distance,
			Fares:    fares,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}

// File stores a catalog in a record file. It implements metro.Store.
type File struct {
	Path string
}

// FileMode is the permission of a newly created record file. An existing
// file keeps its permission.
const FileMode os.FileMode = 0o644

// Save writes the catalog to a temporary file next to f.Path, then renames it
// over f.Path so that a failed write never leaves a truncated file behind.
func (f File) Save(c *metro.Catalog) error {
	mode := FileMode
	if fi, err := os.Stat(f.Path); err == nil {
		mode = fi.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.Path), filepath.Base(f.Path)+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name()) // no-op once renamed

	if err := tmp.Chmod(mode); err != nil {
		tmp.Close()
		return err
	}
	if err := Write(tmp, c.Lines()); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), f.Path)
}

// Load reads the catalog stored in f.Path.
func (f File) Load(interchange string) (*metro.Catalog, error) {
	file, err := os.Open(f.Path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	lines, err := Read(file)
	if err != nil {
		return nil, err
	}
	c, err := metro.NewCatalogFromLines(interchange, lines)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	return c, nil
}

// LoadCatalog loads the catalog stored at path. If the file does not exist
// or cannot be parsed, nothing of it is kept and the default topology is
// returned instead, with fellBack set to true.
//
// The default topology has metro.DefaultInterchange as interchange. Falling
// back with any other interchange is an error, since the first save would
// otherwise write a file that can no longer be loaded with that interchange.
func LoadCatalog(path string, interchange string) (c *metro.Catalog, fellBack bool, err error) {
	c, err = File{Path: path}.Load(interchange)
	switch {
	case err == nil:
		return c, false, nil
	case errors.Is(err, os.ErrNotExist):
		log.Printf("No data file found at %s, initializing with default data", path)
	default:
		log.Printf("Error reading data file %s: %s. Initializing with default data", path, err)
	}
	if interchange != metro.DefaultInterchange {
		return nil, true, fmt.Errorf("%w: default data has interchange %q, not %q", metro.ErrInvalidArgument, metro.DefaultInterchange, interchange)
	}
	return metro.DefaultCatalog(), true, nil
}
