// Package surface defines core types, marker constants, and sentinel errors
// for the surface subpackage of github.com/katalvlaran/hillclimb.
package surface

import (
	"errors"
)

// Sentinel errors for surface construction.
var (
	// ErrEmptySurface indicates input has no rows or no columns.
	ErrEmptySurface = errors.New("surface: input must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("surface: all rows must have the same length")
	// ErrBadCharacter indicates a character outside {a..z, 'S', 'E'}.
	ErrBadCharacter = errors.New("surface: character outside elevation alphabet")
	// ErrNoStart indicates the start marker 'S' is absent.
	ErrNoStart = errors.New("surface: start marker not found")
	// ErrNoTarget indicates the target marker 'E' is absent.
	ErrNoTarget = errors.New("surface: target marker not found")
	// ErrMultipleStart indicates more than one start marker.
	ErrMultipleStart = errors.New("surface: multiple start markers")
	// ErrMultipleTarget indicates more than one target marker.
	ErrMultipleTarget = errors.New("surface: multiple target markers")
	// ErrTargetOutOfBounds indicates an explicit target outside the grid.
	ErrTargetOutOfBounds = errors.New("surface: target position out of bounds")
)

// Markers and elevation bounds of the input alphabet.
const (
	// StartMarker designates the initial cell; its elevation is MinElevation.
	StartMarker = 'S'
	// TargetMarker designates the best-signal cell; its elevation is MaxElevation.
	TargetMarker = 'E'
	// MinElevation is the lowest elevation letter.
	MinElevation = byte('a')
	// MaxElevation is the highest elevation letter.
	MaxElevation = byte('z')
)

// Position identifies a single grid cell by column (X) and row (Y),
// both 0-indexed. It is a comparable value type; two Positions are equal
// exactly when both coordinates match.
type Position struct {
	X, Y int
}

// Surface holds a rectangular elevation grid and the designated target cell.
// Elevations are lowercase letters in [MinElevation, MaxElevation];
// the start and target markers are resolved to 'a' and 'z' during parsing.
// Surface is immutable once built.
type Surface struct {
	width, height int
	elevations    [][]byte
	target        Position
}
