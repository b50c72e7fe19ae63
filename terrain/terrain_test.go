package terrain_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/hillclimb/terrain"
)

// sample is the 8×5 reference height map used throughout the tests.
const sample = `Sabqponm
abcryxxl
accszExk
acctuvwj
abdefghi
`

//----------------------------------------------------------------------------//
// New and parsing
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects empty, ragged or badly marked inputs.
func TestNew_Errors(t *testing.T) {
	lvl := func(e terrain.Elevation) terrain.Cell { return terrain.Cell{Elevation: e} }
	s := terrain.Cell{Elevation: terrain.Lowest, Marker: terrain.StartMarker}
	e := terrain.Cell{Elevation: terrain.Highest, Marker: terrain.GoalMarker}

	cases := []struct {
		name string
		rows [][]terrain.Cell
		err  error
	}{
		{"EmptyRows", [][]terrain.Cell{}, terrain.ErrEmptyGrid},
		{"EmptyCols", [][]terrain.Cell{{}}, terrain.ErrEmptyGrid},
		{"NonRectangular", [][]terrain.Cell{{s, e}, {lvl(1)}}, terrain.ErrMalformedGrid},
		{"ElevationTooHigh", [][]terrain.Cell{{s, e, lvl(26)}}, terrain.ErrMalformedGrid},
		{"UnknownMarker", [][]terrain.Cell{{s, e, {Marker: terrain.Marker(9)}}}, terrain.ErrMalformedGrid},
		{"NoStart", [][]terrain.Cell{{lvl(0), e}}, terrain.ErrMarkerNotFound},
		{"NoGoal", [][]terrain.Cell{{s, lvl(25)}}, terrain.ErrMarkerNotFound},
		{"TwoStarts", [][]terrain.Cell{{s, e}, {s, lvl(3)}}, terrain.ErrMultipleMarkers},
		{"TwoGoals", [][]terrain.Cell{{s, e, e}}, terrain.ErrMultipleMarkers},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := terrain.New(tc.rows)
			if !errors.Is(err, tc.err) {
				t.Errorf("New(%v) error = %v; want %v", tc.rows, err, tc.err)
			}
			if g != nil {
				t.Errorf("New(%v) returned a grid alongside error %v", tc.rows, err)
			}
		})
	}
}

// TestNew_CopiesInput ensures later edits to the input rows do not leak into the Grid.
func TestNew_CopiesInput(t *testing.T) {
	rows := [][]terrain.Cell{{
		{Elevation: terrain.Lowest, Marker: terrain.StartMarker},
		{Elevation: 1},
		{Elevation: terrain.Highest, Marker: terrain.GoalMarker},
	}}
	g, err := terrain.New(rows)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	rows[0][1].Elevation = 20
	if got, _ := g.ElevationAt(terrain.Position{X: 1, Y: 0}); got != 1 {
		t.Errorf("ElevationAt(1,0) = %v after input mutation; want b", got)
	}
}

// TestNew_NormalizesMarkers checks that marker cells take Lowest/Highest
// regardless of the elevation stored in the input Cell.
func TestNew_NormalizesMarkers(t *testing.T) {
	g, err := terrain.New([][]terrain.Cell{{
		{Elevation: 7, Marker: terrain.StartMarker},
		{Elevation: 3, Marker: terrain.GoalMarker},
	}})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if got, _ := g.ElevationAt(g.Start()); got != terrain.Lowest {
		t.Errorf("start elevation = %v; want %v", got, terrain.Lowest)
	}
	if got, _ := g.ElevationAt(g.Goal()); got != terrain.Highest {
		t.Errorf("goal elevation = %v; want %v", got, terrain.Highest)
	}
}

// TestFromLines_Malformed checks character and shape validation of the text form.
func TestFromLines_Malformed(t *testing.T) {
	cases := []struct {
		name  string
		lines []string
		err   error
	}{
		{"Empty", nil, terrain.ErrEmptyGrid},
		{"OnlyBlank", []string{"", "  "}, terrain.ErrEmptyGrid},
		{"Uppercase", []string{"SaBE"}, terrain.ErrMalformedGrid},
		{"Digit", []string{"S1E"}, terrain.ErrMalformedGrid},
		{"Ragged", []string{"Sab", "cE"}, terrain.ErrMalformedGrid},
		{"InnerBlank", []string{"SE", "", "ab"}, terrain.ErrMalformedGrid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := terrain.FromLines(tc.lines); !errors.Is(err, tc.err) {
				t.Errorf("FromLines(%q) error = %v; want %v", tc.lines, err, tc.err)
			}
		})
	}
}

// TestParse_Sample checks dimensions, markers and the round trip through String.
func TestParse_Sample(t *testing.T) {
	g := terrain.MustParse(sample)
	if g.Width() != 8 || g.Height() != 5 {
		t.Fatalf("size = %dx%d; want 8x5", g.Width(), g.Height())
	}
	if want := (terrain.Position{X: 0, Y: 0}); g.Start() != want {
		t.Errorf("Start = %v; want %v", g.Start(), want)
	}
	if want := (terrain.Position{X: 5, Y: 2}); g.Goal() != want {
		t.Errorf("Goal = %v; want %v", g.Goal(), want)
	}
	if got := g.String(); got != sample {
		t.Errorf("String() =\n%s\nwant\n%s", got, sample)
	}
}

// TestParse_CRLF accepts Windows line endings.
func TestParse_CRLF(t *testing.T) {
	g, err := terrain.FromLines([]string{"Sab\r", "cdE\r", ""})
	if err != nil {
		t.Fatalf("FromLines error: %v", err)
	}
	if g.Width() != 3 || g.Height() != 2 {
		t.Errorf("size = %dx%d; want 3x2", g.Width(), g.Height())
	}
}

//----------------------------------------------------------------------------//
// Queries
//----------------------------------------------------------------------------//

// TestElevationAt covers ordinary cells, markers and out-of-bounds lookups.
func TestElevationAt(t *testing.T) {
	g := terrain.MustParse(sample)
	cases := []struct {
		pos  terrain.Position
		want terrain.Elevation
	}{
		{terrain.Position{X: 0, Y: 0}, terrain.Lowest},  // S
		{terrain.Position{X: 5, Y: 2}, terrain.Highest}, // E
		{terrain.Position{X: 1, Y: 0}, 0},               // a
		{terrain.Position{X: 3, Y: 0}, 'q' - 'a'},
		{terrain.Position{X: 7, Y: 4}, 'i' - 'a'},
	}
	for _, tc := range cases {
		got, err := g.ElevationAt(tc.pos)
		if err != nil {
			t.Errorf("ElevationAt(%v) error: %v", tc.pos, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ElevationAt(%v) = %v; want %v", tc.pos, got, tc.want)
		}
	}

	for _, p := range []terrain.Position{{X: -1}, {X: 8}, {Y: 5}, {X: 2, Y: -1}} {
		if _, err := g.ElevationAt(p); !errors.Is(err, terrain.ErrOutOfBounds) {
			t.Errorf("ElevationAt(%v) error = %v; want ErrOutOfBounds", p, err)
		}
	}
}

// TestInBounds checks InBounds on the 8×5 sample.
func TestInBounds(t *testing.T) {
	g := terrain.MustParse(sample)
	valid := []terrain.Position{{X: 0, Y: 0}, {X: 7, Y: 4}, {X: 3, Y: 2}}
	for _, p := range valid {
		if !g.InBounds(p) {
			t.Errorf("InBounds(%v)=false; want true", p)
		}
	}
	invalid := []terrain.Position{{X: -1, Y: 0}, {X: 8, Y: 0}, {X: 1, Y: 5}, {X: 2, Y: -1}}
	for _, p := range invalid {
		if g.InBounds(p) {
			t.Errorf("InBounds(%v)=true; want false", p)
		}
	}
}

// TestNeighbors verifies the climbing rule and bounds filtering.
func TestNeighbors(t *testing.T) {
	g := terrain.MustParse(sample)
	cases := []struct {
		name string
		pos  terrain.Position
		want []terrain.Position
	}{
		// c at (2,1): up b, right r (too high), down c, left b.
		{"Middle", terrain.Position{X: 2, Y: 1}, []terrain.Position{{X: 2, Y: 0}, {X: 2, Y: 2}, {X: 1, Y: 1}}},
		// S at (0,0) counts as a: right a, down a.
		{"StartCorner", terrain.Position{X: 0, Y: 0}, []terrain.Position{{X: 1, Y: 0}, {X: 0, Y: 1}}},
		// z at (4,2) may climb onto E and step down anywhere.
		{"IntoGoal", terrain.Position{X: 4, Y: 2}, []terrain.Position{{X: 4, Y: 1}, {X: 5, Y: 2}, {X: 4, Y: 3}, {X: 3, Y: 2}}},
		// y at (4,1) steps up onto z but not further.
		{"Ridge", terrain.Position{X: 4, Y: 1}, []terrain.Position{{X: 4, Y: 0}, {X: 5, Y: 1}, {X: 4, Y: 2}, {X: 3, Y: 1}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := g.Neighbors(tc.pos)
			if err != nil {
				t.Fatalf("Neighbors(%v) error: %v", tc.pos, err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Neighbors(%v) = %v; want %v", tc.pos, got, tc.want)
			}
		})
	}

	if _, err := g.Neighbors(terrain.Position{X: 9, Y: 9}); !errors.Is(err, terrain.ErrOutOfBounds) {
		t.Errorf("Neighbors out of bounds error = %v; want ErrOutOfBounds", err)
	}
}

// TestFind returns both markers and rejects NoMarker.
func TestFind(t *testing.T) {
	g := terrain.MustParse(sample)
	if p, err := g.Find(terrain.StartMarker); err != nil || p != g.Start() {
		t.Errorf("Find(Start) = %v, %v; want %v", p, err, g.Start())
	}
	if p, err := g.Find(terrain.GoalMarker); err != nil || p != g.Goal() {
		t.Errorf("Find(Goal) = %v, %v; want %v", p, err, g.Goal())
	}
	if _, err := g.Find(terrain.NoMarker); !errors.Is(err, terrain.ErrMarkerNotFound) {
		t.Errorf("Find(NoMarker) error = %v; want ErrMarkerNotFound", err)
	}
}

// TestCellsAt lists the lowest cells of the sample, start cell included.
func TestCellsAt(t *testing.T) {
	g := terrain.MustParse(sample)
	got := g.CellsAt(terrain.Lowest)
	want := []terrain.Position{
		{X: 0, Y: 0}, {X: 1, Y: 0},
		{X: 0, Y: 1},
		{X: 0, Y: 2},
		{X: 0, Y: 3},
		{X: 0, Y: 4},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CellsAt(a) = %v; want %v", got, want)
	}
	if got := g.CellsAt(terrain.Highest); !reflect.DeepEqual(got, []terrain.Position{{X: 4, Y: 2}, {X: 5, Y: 2}}) {
		t.Errorf("CellsAt(z) = %v; want [4,2 5,2]", got)
	}
	if got := g.CellsAt(terrain.Elevation(20)); len(got) != 1 {
		t.Errorf("CellsAt(u) = %v; want one cell", got)
	}
	if g.MinElevation() != terrain.Lowest {
		t.Errorf("MinElevation = %v; want a", g.MinElevation())
	}
}

// TestElevation_String covers letters and out-of-range values.
func TestElevation_String(t *testing.T) {
	if got := terrain.Lowest.String(); got != "a" {
		t.Errorf("Lowest.String() = %q; want a", got)
	}
	if got := terrain.Highest.String(); got != "z" {
		t.Errorf("Highest.String() = %q; want z", got)
	}
	if got := terrain.Elevation(30).String(); got != "Elevation(30)" {
		t.Errorf("Elevation(30).String() = %q", got)
	}
	if !terrain.Elevation(3).CanStep(4) || terrain.Elevation(3).CanStep(5) || !terrain.Elevation(3).CanStep(0) {
		t.Error("CanStep must allow +1 and any descent, and reject +2")
	}
}
