package surface_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/hillclimb/surface"
)

const canonical = "Sabqponm\n" +
	"abcryxxl\n" +
	"accszExk\n" +
	"acctuvwj\n" +
	"abdefghi"

//----------------------------------------------------------------------------//
// Parse and StartPosition Tests
//----------------------------------------------------------------------------//

// TestParse_Errors verifies that Parse rejects malformed elevation text.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		text string
		err  error
	}{
		{"Empty", "", surface.ErrEmptySurface},
		{"NonRectangular", "Sab\nabE\nab", surface.ErrNonRectangular},
		{"BadCharacter", "Sa1\nabE", surface.ErrBadCharacter},
		{"BadCharacterUpper", "SaX\nabE", surface.ErrBadCharacter},
		{"NoStart", "aab\nabE", surface.ErrNoStart},
		{"NoTarget", "Sab\nabc", surface.ErrNoTarget},
		{"StartOnly", "S", surface.ErrNoTarget},
		{"MultipleStart", "SSb\nabE", surface.ErrMultipleStart},
		{"MultipleTarget", "SaE\nabE", surface.ErrMultipleTarget},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := surface.Parse(tc.text); !errors.Is(err, tc.err) {
				t.Errorf("Parse(%q) error = %v; want %v", tc.text, err, tc.err)
			}
		})
	}
}

// TestParse_Canonical checks dimensions, marker resolution, and the target
// cell on the canonical 5×8 grid.
func TestParse_Canonical(t *testing.T) {
	s, err := surface.Parse(canonical)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if s.Width() != 8 || s.Height() != 5 {
		t.Errorf("dimensions = %d×%d; want 8×5", s.Width(), s.Height())
	}
	if got, want := s.Target(), (surface.Position{X: 5, Y: 2}); got != want {
		t.Errorf("Target() = %v; want %v", got, want)
	}
	if e := s.At(s.Target()); e != surface.MaxElevation {
		t.Errorf("At(target) = %q; want %q", e, surface.MaxElevation)
	}
	start, err := surface.StartPosition(canonical)
	if err != nil {
		t.Fatalf("StartPosition error: %v", err)
	}
	if start != (surface.Position{X: 0, Y: 0}) {
		t.Errorf("StartPosition = %v; want (0,0)", start)
	}
	if e := s.At(start); e != surface.MinElevation {
		t.Errorf("At(start) = %q; want %q", e, surface.MinElevation)
	}
	// Plain letters pass through untouched.
	if e := s.At(surface.Position{X: 3, Y: 0}); e != 'q' {
		t.Errorf("At(3,0) = %q; want 'q'", e)
	}
}

// TestStartPosition_SharesValidation confirms StartPosition rejects the
// same malformed inputs as Parse.
func TestStartPosition_SharesValidation(t *testing.T) {
	if _, err := surface.StartPosition("Sab\nab"); !errors.Is(err, surface.ErrNonRectangular) {
		t.Errorf("ragged rows: want ErrNonRectangular, got %v", err)
	}
	if _, err := surface.StartPosition("aab\nabE"); !errors.Is(err, surface.ErrNoStart) {
		t.Errorf("missing start: want ErrNoStart, got %v", err)
	}
}

// TestParse_TrailingNewline verifies a trailing newline does not create a
// phantom empty row.
func TestParse_TrailingNewline(t *testing.T) {
	s, err := surface.Parse("Sb\nbE\n")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if s.Height() != 2 {
		t.Errorf("Height = %d; want 2", s.Height())
	}
}

//----------------------------------------------------------------------------//
// New Tests
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects empty, ragged, out-of-alphabet,
// and out-of-bounds-target inputs.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name   string
		rows   [][]byte
		target surface.Position
		err    error
	}{
		{"EmptyRows", [][]byte{}, surface.Position{}, surface.ErrEmptySurface},
		{"EmptyCols", [][]byte{{}}, surface.Position{}, surface.ErrEmptySurface},
		{"NonRectangular", [][]byte{{'a', 'b'}, {'c'}}, surface.Position{}, surface.ErrNonRectangular},
		{"BadCharacter", [][]byte{{'a', 'S'}}, surface.Position{}, surface.ErrBadCharacter},
		{"TargetOutOfBounds", [][]byte{{'a', 'b'}}, surface.Position{X: 2, Y: 0}, surface.ErrTargetOutOfBounds},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := surface.New(tc.rows, tc.target); !errors.Is(err, tc.err) {
				t.Errorf("New(%v, %v) error = %v; want %v", tc.rows, tc.target, err, tc.err)
			}
		})
	}
}

// TestNew_DeepCopy confirms the constructor copies its input: mutating the
// source rows afterwards must not alter the Surface.
func TestNew_DeepCopy(t *testing.T) {
	rows := [][]byte{{'a', 'b'}, {'c', 'd'}}
	s, err := surface.New(rows, surface.Position{X: 1, Y: 1})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	rows[0][0] = 'z'
	if e := s.At(surface.Position{X: 0, Y: 0}); e != 'a' {
		t.Errorf("At(0,0) = %q after source mutation; want 'a'", e)
	}
}

//----------------------------------------------------------------------------//
// InBounds, Index, Coordinate Tests
//----------------------------------------------------------------------------//

// TestInBounds checks InBounds on a 3×2 grid.
func TestInBounds(t *testing.T) {
	s, err := surface.New([][]byte{{'a', 'b', 'c'}, {'d', 'e', 'f'}}, surface.Position{X: 2, Y: 1})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	valid := []surface.Position{{X: 0, Y: 0}, {X: 2, Y: 1}, {X: 1, Y: 1}}
	for _, p := range valid {
		if !s.InBounds(p) {
			t.Errorf("InBounds(%v) = false; want true", p)
		}
	}
	invalid := []surface.Position{{X: -1, Y: 0}, {X: 3, Y: 0}, {X: 1, Y: 2}, {X: 2, Y: -1}}
	for _, p := range invalid {
		if s.InBounds(p) {
			t.Errorf("InBounds(%v) = true; want false", p)
		}
	}
}

// TestIndexCoordinate_RoundTrip verifies row-major indexing round-trips for
// every cell of the canonical grid.
func TestIndexCoordinate_RoundTrip(t *testing.T) {
	s, err := surface.Parse(canonical)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			p := surface.Position{X: x, Y: y}
			idx := s.Index(p)
			if idx != y*s.Width()+x {
				t.Errorf("Index(%v) = %d; want %d", p, idx, y*s.Width()+x)
			}
			if got := s.Coordinate(idx); got != p {
				t.Errorf("Coordinate(%d) = %v; want %v", idx, got, p)
			}
		}
	}
}
