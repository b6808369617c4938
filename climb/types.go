// Package climb provides tunable options and error definitions
// for elevation-constrained shortest-path search over a surface.Surface.
package climb

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/hillclimb/surface"
)

// Sentinel errors for search execution.
var (
	// ErrNilSurface is returned if a nil surface pointer is passed.
	ErrNilSurface = errors.New("climb: surface is nil")

	// ErrStartOutOfBounds is returned when the start cell lies outside the grid.
	ErrStartOutOfBounds = errors.New("climb: start position out of bounds")

	// ErrNilGoal is returned when no goal predicate is supplied.
	ErrNilGoal = errors.New("climb: goal predicate is nil")

	// ErrBadDirection is returned for a Direction outside {Ascend, Descend}.
	ErrBadDirection = errors.New("climb: unknown traversal direction")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("climb: invalid option supplied")

	// ErrNoPath is returned by Result.PathTo when the search reached no goal.
	ErrNoPath = errors.New("climb: no path to a goal cell")
)

// Unreachable is the sentinel step count reported when no path satisfies
// the goal. Callers must compare against it before treating a result as a
// real distance; it must never feed arithmetic.
const Unreachable = math.MaxInt

// Direction selects the per-step elevation rule.
type Direction int

const (
	// Ascend allows climbing at most one level per step; any descent is free.
	Ascend Direction = iota
	// Descend is the mirrored rule used to walk backward from the summit:
	// at most one level down per step, any ascent is free.
	Descend
)

// Goal is a pure termination predicate over (surface, position).
// The engine stops the first time a dequeued cell satisfies it.
type Goal func(s *surface.Surface, p surface.Position) bool

// GoalBestSignal reports whether p is the designated target cell.
func GoalBestSignal(s *surface.Surface, p surface.Position) bool {
	return p == s.Target()
}

// GoalLowestElevation reports whether p sits at the minimum elevation 'a'.
func GoalLowestElevation(s *surface.Surface, p surface.Position) bool {
	return s.At(p) == surface.MinElevation
}

// GoalPosition returns a Goal satisfied exactly at dest.
func GoalPosition(dest surface.Position) Goal {
	return func(_ *surface.Surface, p surface.Position) bool {
		return p == dest
	}
}

// Move pairs a legal neighbor cell with its elevation.
type Move struct {
	To        surface.Position
	Elevation byte
}

// Option configures search behavior via functional arguments.
// If an Option is invalid (e.g. negative step limit), it is recorded
// internally and surfaced as ErrOptionViolation when Search is invoked.
type Option func(*SearchOptions)

// SearchOptions holds parameters and callbacks to customize search execution.
type SearchOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when visiting a cell with its step distance from
	// the start. If it returns an error, the search aborts with it.
	OnVisit func(p surface.Position, steps int) error

	// MaxSteps, if > 0, stops exploring beyond this step count.
	// A value of 0 explicitly disables any limit.
	MaxSteps int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a SearchOptions with sane defaults:
//   - context.Background()
//   - no step limit (MaxSteps == 0)
//   - no-op OnVisit hook
//   - error channel clear.
func DefaultOptions() SearchOptions {
	return SearchOptions{
		Ctx:      context.Background(),
		OnVisit:  func(surface.Position, int) error { return nil },
		MaxSteps: 0,
		err:      nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *SearchOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on each visit; returning an error
// from this callback stops the search.
func WithOnVisit(fn func(p surface.Position, steps int) error) Option {
	return func(o *SearchOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxSteps stops the search at the given step count (exclusive).
//
//	n > 0: limit to n steps
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxSteps(n int) Option {
	return func(o *SearchOptions) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOptionViolation, n)
		case n == 0:
			// explicit "no limit"
			o.MaxSteps = 0
		default:
			o.MaxSteps = n
		}
	}
}
