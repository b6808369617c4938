// Package surface models a height-mapped rectangular grid parsed from
// letter-coded text, as used by the climb search engine.
//
// What:
//
//   - Surface wraps a rectangular elevation grid with one letter per cell.
//   - 'a' (lowest) .. 'z' (highest) are direct elevations; the start marker
//     'S' stands on elevation 'a' and the target marker 'E' on elevation 'z'.
//   - Parse builds a Surface from newline-separated text and records the
//     target ("best signal") cell; StartPosition locates the start cell.
//   - New builds a Surface from explicit elevation rows and a target cell.
//   - Row-major Index/Coordinate helpers support flat per-cell arrays.
//
// Why:
//
//   - Puzzle maps: hill-climbing grids with a single start and summit.
//   - Terrain analysis: any single-letter-per-cell elevation encoding.
//
// Complexity:
//
//   - Parse / StartPosition / New: O(W×H) time, O(W×H) memory.
//   - At, InBounds, Index, Coordinate: O(1).
//
// Errors:
//
//   - ErrEmptySurface: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadCharacter: a character outside {a..z, 'S', 'E'}.
//   - ErrNoStart / ErrNoTarget: a required marker is absent.
//   - ErrMultipleStart / ErrMultipleTarget: a marker appears more than once.
//   - ErrTargetOutOfBounds: explicit target lies outside the grid.
//
// Surface is immutable after construction: both constructors deep-copy
// their input, and all accessors are read-only.
package surface
