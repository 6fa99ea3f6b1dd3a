package metro

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBuildGraph(t *testing.T) {
	c := twoLines(t)

	g := BuildGraph(c)

	if diff := cmp.Diff([]string{"P", "Q", "X", "Y", "Z"}, g.Stations()); diff != "" {
		t.Errorf("Stations(): mismatch (-want +got):\n%s", diff)
	}
	for _, l := range c.Lines() {
		for i, a := range l.Stations {
			for j, b := range l.Stations {
				if i == j {
					continue
				}
				if got, want := g.Fare(a, b), l.Fares[i][j]; got != want {
					t.Errorf("Fare(%s, %s): want %d, got %d", a, b, want, got)
				}
			}
		}
	}
	if got := g.Fare("P", "Z"); got != 0 {
		t.Errorf("Fare(P, Z): want 0 across lines, got %d", got)
	}
}

func TestBuildGraph_isolatedInterchange(t *testing.T) {
	c := NewCatalog("Hub")
	if err := c.Add(lineA()); err != nil {
		t.Fatal(err)
	}

	g := BuildGraph(c)

	if !g.Contains("Hub") {
		t.Errorf("Contains(Hub): want true, got false")
	}
	if dist, _ := g.ShortestPath("Hub", "Hub"); dist != 0 {
		t.Errorf("ShortestPath(Hub, Hub): want 0, got %d", dist)
	}
}

func TestFindRoute(t *testing.T) {
	c := twoLines(t)

	got, err := FindRoute(c, "P", "Z")
	if err != nil {
		t.Fatalf("FindRoute(P, Z): %s", err)
	}

	want := Route{
		Distance: 2,
		Path:     []string{"P", "X", "Z"},
		Fare:     50, // 20 on line A, 30 on line B
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("FindRoute(P, Z): mismatch (-want +got):\n%s", diff)
	}
	if !got.Reachable() {
		t.Errorf("Reachable(): want true, got false")
	}
}

func TestFindRoute_fareMatchesPath(t *testing.T) {
	c := DefaultCatalog()
	g := BuildGraph(c)
	stations := g.Stations()

	for _, s := range stations {
		for _, d := range stations {
			r, err := FindRoute(c, s, d)
			if err != nil {
				t.Fatalf("FindRoute(%s, %s): %s", s, d, err)
			}
			if r.Path[0] != s || r.Path[len(r.Path)-1] != d {
				t.Errorf("FindRoute(%s, %s): path %v does not join the stations", s, d, r.Path)
			}
			want := 0
			for i := 1; i < len(r.Path); i++ {
				want += g.Fare(r.Path[i-1], r.Path[i])
			}
			if r.Fare != want || r.Fare < 0 {
				t.Errorf("FindRoute(%s, %s): want fare %d, got %d", s, d, want, r.Fare)
			}
		}
	}
}

func TestFindRoute_sameStation(t *testing.T) {
	c := twoLines(t)

	got, err := FindRoute(c, "Q", "Q")
	if err != nil {
		t.Fatalf("FindRoute(Q, Q): %s", err)
	}

	want := Route{Distance: 0, Path: []string{"Q"}, Fare: 0}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("FindRoute(Q, Q): mismatch (-want +got):\n%s", diff)
	}
}

func TestFindRoute_unreachable(t *testing.T) {
	c, err := NewCatalogFromLines("X", []Line{
		lineA(),
		{Name: "island", Stations: []string{"I", "J"}, Distance: 1, Fares: [][]int{{0, 5}, {5, 0}}},
	})
	if err != nil {
		t.Fatal(err)
	}

	got, err := FindRoute(c, "P", "J")
	if err != nil {
		t.Fatalf("FindRoute(P, J): %s", err)
	}

	want := Route{Distance: Unreachable, Path: []string{"J"}, Fare: 0}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("FindRoute(P, J): mismatch (-want +got):\n%s", diff)
	}
	if got.Reachable() {
		t.Errorf("Reachable(): want false, got true")
	}
}

func TestFindRoute_unknownStation(t *testing.T) {
	c := twoLines(t)

	if _, err := FindRoute(c, "P", "W"); !errors.Is(err, ErrNotFound) {
		t.Errorf("FindRoute(P, W): want ErrNotFound, got %v", err)
	}
	if _, err := FindRoute(c, "W", "P"); !errors.Is(err, ErrNotFound) {
		t.Errorf("FindRoute(W, P): want ErrNotFound, got %v", err)
	}
}

func TestFindRoute_seesLatestMutation(t *testing.T) {
	ed := NewEditor(twoLines(t), nil, DefaultPricing)
	before, err := FindRoute(ed.Catalog, "P", "Z")
	if err != nil {
		t.Fatal(err)
	}

	if err := ed.UpdateFare("P", "X", 5); err != nil {
		t.Fatalf("UpdateFare(P, X, 5): %s", err)
	}
	after, err := FindRoute(ed.Catalog, "P", "Z")
	if err != nil {
		t.Fatal(err)
	}

	if before.Fare != 50 || after.Fare != 35 {
		t.Errorf("FindRoute(P, Z): want fares 50 then 35, got %d then %d", before.Fare, after.Fare)
	}
}
