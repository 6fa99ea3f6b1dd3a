package metro

// fareBand gives the fare of every trip up to MaxHops stations long.
type fareBand struct {
	MaxHops int
	Fare    int
}

// bandedFares returns the fare matrix of a line of n stations where the fare
// of a trip depends only on the number of hops. Trips longer than the last
// band use the last band's fare.
func bandedFares(n int, bands []fareBand) [][]int {
	m := squareMatrix(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			f := bands[len(bands)-1].Fare
			for _, b := range bands {
				if j-i <= b.MaxHops {
					f = b.Fare
					break
				}
			}
			m[i][j] = f
			m[j][i] = f
		}
	}
	return m
}

// DefaultLines returns the lines of the default topology: the purple and aqua
// lines, which share the DefaultInterchange station.
func DefaultLines() []Line {
	purple := []string{
		"PCMC", "Sant Tukaram Nagar", "Bhosari", "Kasarwadi", "Phugewadi",
		"Dapodi", "Bopodi", "Shivaji Nagar", DefaultInterchange,
		"Kasba Peth (Budhwar Peth)", "Mandal", "Swargate",
	}
	aqua := []string{
		"Vanaz", "Anand Nagar", "Ideal Colony", "Nal Stop",
		"Garware College", "Deccan Gymkhana", "Chhatrapati Sambhaji Udyan",
		"PMC", DefaultInterchange, "Mangalwar Peth",
		"Pune Railway Station", "Ruby Hall Clinic", "Bund Garden",
		"Yerwada", "Kalyani Nagar", "Ramwadi",
	}
	return []Line{
		{
			Name:     "purple",
			Stations: purple,
			Distance: 1,
			Fares: bandedFares(len(purple), []fareBand{
				{1, 10}, {2, 15}, {4, 20}, {6, 25}, {len(purple), 30},
			}),
		},
		{
			Name:     "aqua",
			Stations: aqua,
			Distance: 2,
			Fares: bandedFares(len(aqua), []fareBand{
				{1, 10}, {2, 20}, {13, 30}, {len(aqua), 35},
			}),
		},
	}
}

// DefaultCatalog returns a catalog holding the default topology, with
// DefaultInterchange as interchange station.
func DefaultCatalog() *Catalog {
	c, err := NewCatalogFromLines(DefaultInterchange, DefaultLines())
	if err != nil {
		// The default lines are valid by construction.
		panic(err)
	}
	return c
}
