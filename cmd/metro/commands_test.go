package main

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/rhartert/metro-ls/metro"
	"github.com/rhartert/metro-ls/metro/records"
)

func newTestEditor(t *testing.T) (*metro.Editor, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "metro_data.txt")
	return metro.NewEditor(metro.DefaultCatalog(), records.File{Path: path}, metro.DefaultPricing), path
}

func run(t *testing.T, ed *metro.Editor, name string, args ...string) (string, error) {
	t.Helper()
	cmd, ok := findCommand(name)
	if !ok {
		t.Fatalf("unknown command %q", name)
	}
	var out bytes.Buffer
	err := cmd.exec(ed, args, &out)
	return out.String(), err
}

func TestStations(t *testing.T) {
	ed, _ := newTestEditor(t)

	out, err := run(t, ed, "stations")
	if err != nil {
		t.Fatalf("stations: %s", err)
	}

	for _, want := range []string{
		"=== Purple Line (PCMC → Swargate) ===",
		"1. PCMC\n",
		"9. Civil Court\n   ↳ (Interchange with other lines)\n",
		"=== Aqua Line (Vanaz → Ramwadi) ===",
		"13. Vanaz\n",
		"28. Ramwadi\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("stations: output does not contain %q:\n%s", want, out)
		}
	}
}

func TestRoute(t *testing.T) {
	ed, _ := newTestEditor(t)

	// 1 is PCMC on the purple line, 13 is Vanaz on the aqua line.
	out, err := run(t, ed, "route", "1", "13")
	if err != nil {
		t.Fatalf("route: %s", err)
	}

	for _, want := range []string{
		"Route: PCMC -> Sant Tukaram Nagar",
		"-> Civil Court -> PMC",
		"-> Vanaz\n",
		"Change at Civil Court to switch lines",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("route: output does not contain %q:\n%s", want, out)
		}
	}
}

func TestRoute_errors(t *testing.T) {
	ed, _ := newTestEditor(t)

	if _, err := run(t, ed, "route", "PCMC", "PCMC"); !errors.Is(err, metro.ErrInvalidArgument) {
		t.Errorf("route PCMC PCMC: want ErrInvalidArgument, got %v", err)
	}
	if _, err := run(t, ed, "route", "PCMC", "Nowhere"); !errors.Is(err, metro.ErrNotFound) {
		t.Errorf("route PCMC Nowhere: want ErrNotFound, got %v", err)
	}
	if _, err := run(t, ed, "route", "PCMC"); err == nil {
		t.Errorf("route PCMC: want error for missing argument, got none")
	}
}

func TestMutations_persist(t *testing.T) {
	ed, path := newTestEditor(t)

	steps := [][]string{
		{"insert-station", "Purple", "Nigdi", "1"},
		{"remove-station", "aqua", "Ramwadi"},
		{"update-fare", "Nigdi", "PCMC", "12"},
		{"add-line", "green", "Civil Court, Hadapsar", "3", "0,20;20,0"},
	}
	for _, s := range steps {
		if _, err := run(t, ed, s[0], s[1:]...); err != nil {
			t.Fatalf("%v: %s", s, err)
		}
	}

	got, err := records.File{Path: path}.Load(metro.DefaultInterchange)
	if err != nil {
		t.Fatalf("Load(): %s", err)
	}
	if diff := cmp.Diff(ed.Catalog.Lines(), got.Lines()); diff != "" {
		t.Errorf("saved catalog: mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"purple", "aqua", "green"}, got.LineNames()); diff != "" {
		t.Errorf("LineNames(): mismatch (-want +got):\n%s", diff)
	}
	fares, _ := got.Fares("purple")
	if fares[0][1] != 12 {
		t.Errorf("fare Nigdi -> PCMC: want 12, got %d", fares[0][1])
	}
}

func TestMutations_errors(t *testing.T) {
	testCases := []struct {
		desc    string
		args    []string
		wantErr error
	}{
		{"remove interchange", []string{"remove-station", "purple", "Civil Court"}, metro.ErrForbidden},
		{"insert bad position", []string{"insert-station", "purple", "Nigdi", "x"}, metro.ErrInvalidArgument},
		{"insert unknown line", []string{"insert-station", "blue", "Nigdi", "1"}, metro.ErrNotFound},
		{"update fare across lines", []string{"update-fare", "PCMC", "Vanaz", "5"}, metro.ErrNotFound},
		{"add existing line", []string{"add-line", "aqua", "K,L", "1", "0,1;1,0"}, metro.ErrForbidden},
		{"add asymmetric fares", []string{"add-line", "green", "K,L", "1", "0,1;2,0"}, metro.ErrInvalidArgument},
		{"add short matrix", []string{"add-line", "green", "K,L", "1", "0,1"}, metro.ErrInvalidArgument},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			ed, _ := newTestEditor(t)

			_, err := run(t, ed, tc.args[0], tc.args[1:]...)

			if !errors.Is(err, tc.wantErr) {
				t.Errorf("%v: want error %v, got %v", tc.args, tc.wantErr, err)
			}
		})
	}
}

func TestParseFareMatrix(t *testing.T) {
	got, err := parseFareMatrix("0, 5, 9; 5,0,4 ;9,4,0", 3)
	if err != nil {
		t.Fatalf("parseFareMatrix(): %s", err)
	}

	want := [][]int{{0, 5, 9}, {5, 0, 4}, {9, 4, 0}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("parseFareMatrix(): mismatch (-want +got):\n%s", diff)
	}
}
