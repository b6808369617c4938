package surface

import (
	"fmt"
	"strings"
)

// Parse constructs a Surface from newline-separated elevation text.
// Each character must be a lowercase letter, the start marker 'S'
// (resolved to 'a'), or the target marker 'E' (resolved to 'z');
// exactly one of each marker must be present.
// Returns ErrEmptySurface, ErrNonRectangular, ErrBadCharacter,
// ErrNoStart, ErrNoTarget, ErrMultipleStart, or ErrMultipleTarget.
// Algorithmic complexity: O(W×H) time and memory.
func Parse(text string) (*Surface, error) {
	rows, _, target, err := scan(text)
	if err != nil {
		return nil, err
	}

	return &Surface{
		width:      len(rows[0]),
		height:     len(rows),
		elevations: rows,
		target:     target,
	}, nil
}

// StartPosition locates the start marker 'S' in elevation text using the
// same scan as Parse, with the same validation. The start cell is the
// player's initial location and is deliberately not stored inside Surface.
// Complexity: O(W×H).
func StartPosition(text string) (Position, error) {
	_, start, _, err := scan(text)
	if err != nil {
		return Position{}, err
	}

	return start, nil
}

// New constructs a Surface from explicit elevation rows and a target cell.
// It deep-copies the input to ensure immutability.
// Rows must be non-empty, rectangular, and contain only letters in
// ['a','z']; target must lie within the grid.
// Returns ErrEmptySurface, ErrNonRectangular, ErrBadCharacter,
// or ErrTargetOutOfBounds.
// Complexity: O(W×H) time and memory.
func New(elevations [][]byte, target Position) (*Surface, error) {
	if len(elevations) == 0 || len(elevations[0]) == 0 {
		return nil, ErrEmptySurface
	}
	h, w := len(elevations), len(elevations[0])
	rows := make([][]byte, h)
	for y, row := range elevations {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		rows[y] = make([]byte, w)
		for x, e := range row {
			if e < MinElevation || e > MaxElevation {
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrBadCharacter, e, x, y)
			}
			rows[y][x] = e
		}
	}
	if target.X < 0 || target.X >= w || target.Y < 0 || target.Y >= h {
		return nil, fmt.Errorf("%w: (%d,%d)", ErrTargetOutOfBounds, target.X, target.Y)
	}

	return &Surface{
		width:      w,
		height:     h,
		elevations: rows,
		target:     target,
	}, nil
}

// scan validates elevation text and resolves markers in a single pass.
// It returns the resolved elevation rows plus the start and target cells.
func scan(text string) (rows [][]byte, start, target Position, err error) {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, Position{}, Position{}, ErrEmptySurface
	}
	w := len(lines[0])
	rows = make([][]byte, len(lines))
	starts, targets := 0, 0

	for y, line := range lines {
		if len(line) != w {
			return nil, Position{}, Position{}, ErrNonRectangular
		}
		row := make([]byte, w)
		for x := 0; x < w; x++ {
			switch c := line[x]; {
			case c >= MinElevation && c <= MaxElevation:
				row[x] = c
			case c == StartMarker:
				starts++
				start = Position{X: x, Y: y}
				row[x] = MinElevation
			case c == TargetMarker:
				targets++
				target = Position{X: x, Y: y}
				row[x] = MaxElevation
			default:
				return nil, Position{}, Position{}, fmt.Errorf("%w: %q at (%d,%d)", ErrBadCharacter, c, x, y)
			}
		}
		rows[y] = row
	}

	switch {
	case starts == 0:
		return nil, Position{}, Position{}, ErrNoStart
	case starts > 1:
		return nil, Position{}, Position{}, ErrMultipleStart
	case targets == 0:
		return nil, Position{}, Position{}, ErrNoTarget
	case targets > 1:
		return nil, Position{}, Position{}, ErrMultipleTarget
	}

	return rows, start, target, nil
}

// Width returns the number of columns.
// Complexity: O(1).
func (s *Surface) Width() int {
	return s.width
}

// Height returns the number of rows.
// Complexity: O(1).
func (s *Surface) Height() int {
	return s.height
}

// Target returns the designated best-signal cell.
// Complexity: O(1).
func (s *Surface) Target() Position {
	return s.target
}

// At returns the elevation letter at p. The caller must ensure p is in
// bounds; use InBounds first when the position is not already validated.
// Complexity: O(1).
func (s *Surface) At(p Position) byte {
	return s.elevations[p.Y][p.X]
}

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (s *Surface) InBounds(p Position) bool {
	return p.X >= 0 && p.X < s.width && p.Y >= 0 && p.Y < s.height
}

// Index maps p to a row-major index: Y*Width + X.
// Complexity: O(1).
func (s *Surface) Index(p Position) int {
	return p.Y*s.width + p.X
}

// Coordinate converts a row-major index back to a Position.
// Complexity: O(1).
func (s *Surface) Coordinate(idx int) Position {
	return Position{X: idx % s.width, Y: idx / s.width}
}
