// Package climb computes elevation-constrained shortest paths over a
// surface.Surface, returning step counts, per-cell distances, parent links,
// and visit order.
package climb

import (
	"fmt"

	"github.com/katalvlaran/hillclimb/surface"
)

// Result holds the outcome of a search:
//   - Order: cells visited, in visit sequence.
//   - Dist: row-major best step count per cell; Unreachable where never seen.
//   - Parent: row-major predecessor index per cell; -1 where none.
//   - Steps: shortest step count to a goal cell, or Unreachable.
//   - Goal: the goal cell that terminated the search (zero if unreachable).
type Result struct {
	Order  []surface.Position
	Dist   []int
	Parent []int
	Steps  int
	Goal   surface.Position

	s *surface.Surface
}

// PathTo reconstructs the start → goal path from the Parent links.
// The returned path includes both endpoints and never repeats a cell.
// Returns ErrNoPath if the search reached no goal cell.
func (r *Result) PathTo() ([]surface.Position, error) {
	if r.Steps == Unreachable {
		return nil, ErrNoPath
	}
	// build reversed path
	path := make([]surface.Position, 0, r.Steps+1)
	for at := r.s.Index(r.Goal); at >= 0; at = r.Parent[at] {
		path = append(path, r.s.Coordinate(at))
	}
	// reverse to get start → goal
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// walker encapsulates mutable search state.
type walker struct {
	s     *surface.Surface
	dir   Direction
	goal  Goal
	opts  SearchOptions
	queue []surface.Position
	res   *Result
}

// Search runs a breadth-first exploration of s from start under the
// elevation rule selected by dir, stopping at the first dequeued cell that
// satisfies goal. Cells are expanded in non-decreasing step count with
// per-cell best-distance pruning, so the reported Steps is the minimum.
// Returns ErrNilSurface, ErrStartOutOfBounds, ErrNilGoal, ErrBadDirection,
// or ErrOptionViolation for invalid input, a context error on cancellation,
// or any user-supplied hook error. An exhausted search is not an error:
// Result.Steps carries the Unreachable sentinel.
// Complexity: O(W×H) time and memory.
func Search(s *surface.Surface, start surface.Position, dir Direction, goal Goal, opts ...Option) (*Result, error) {
	if s == nil {
		return nil, ErrNilSurface
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if goal == nil {
		return nil, ErrNilGoal
	}
	if dir != Ascend && dir != Descend {
		return nil, fmt.Errorf("%w: %d", ErrBadDirection, dir)
	}
	if !s.InBounds(start) {
		return nil, fmt.Errorf("%w: (%d,%d)", ErrStartOutOfBounds, start.X, start.Y)
	}

	// Prepare walker
	n := s.Width() * s.Height()
	w := &walker{
		s:     s,
		dir:   dir,
		goal:  goal,
		opts:  o,
		queue: make([]surface.Position, 0, n),
		res: &Result{
			Order:  make([]surface.Position, 0, n),
			Dist:   make([]int, n),
			Parent: make([]int, n),
			Steps:  Unreachable,
			s:      s,
		},
	}
	for i := range w.res.Dist {
		w.res.Dist[i] = Unreachable
		w.res.Parent[i] = -1
	}

	// Seed queue with the start cell at distance 0
	w.res.Dist[s.Index(start)] = 0
	w.queue = append(w.queue, start)
	// Main loop
	return w.res, w.loop()
}

// loop processes the queue until a goal cell, exhaustion, error, or
// cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		p := w.queue[0]
		w.queue = w.queue[1:]
		done, err := w.visit(p)
		if err != nil || done {
			return err
		}
		w.enqueueMoves(p)
	}
	return nil
}

// visit records the cell in Order, runs the OnVisit hook, and tests the
// goal predicate. A true first return value terminates the search.
func (w *walker) visit(p surface.Position) (bool, error) {
	steps := w.res.Dist[w.s.Index(p)]
	w.res.Order = append(w.res.Order, p)
	if err := w.opts.OnVisit(p, steps); err != nil {
		return false, fmt.Errorf("climb: OnVisit error at (%d,%d): %w", p.X, p.Y, err)
	}
	if w.goal(w.s, p) {
		w.res.Steps = steps
		w.res.Goal = p
		return true, nil
	}
	return false, nil
}

// enqueueMoves expands the legal moves of p, applies MaxSteps, and enqueues
// each neighbor reached on a strictly better distance than recorded so far.
func (w *walker) enqueueMoves(p surface.Position) {
	u := w.s.Index(p)
	next := w.res.Dist[u] + 1
	if w.opts.MaxSteps > 0 && next > w.opts.MaxSteps {
		return
	}
	for _, m := range LegalMoves(w.s, p, w.dir) {
		v := w.s.Index(m.To)
		if next < w.res.Dist[v] {
			w.res.Dist[v] = next
			w.res.Parent[v] = u
			w.queue = append(w.queue, m.To)
		}
	}
}

// ShortestPathUp parses elevation text and returns the minimum step count
// from the start marker to the best-signal cell under the ascend rule.
// Returns Unreachable (with a nil error) when no such path exists; any
// returned error is a parse failure.
func ShortestPathUp(text string) (int, error) {
	s, err := surface.Parse(text)
	if err != nil {
		return 0, err
	}
	start, err := surface.StartPosition(text)
	if err != nil {
		return 0, err
	}
	res, err := Search(s, start, Ascend, GoalBestSignal)
	if err != nil {
		return 0, err
	}

	return res.Steps, nil
}

// ShortestPathDown parses elevation text and returns the minimum step count
// from the best-signal cell to any lowest-elevation cell, walking the
// mirrored descend rule. Returns Unreachable (with a nil error) when no
// such path exists; any returned error is a parse failure.
func ShortestPathDown(text string) (int, error) {
	s, err := surface.Parse(text)
	if err != nil {
		return 0, err
	}
	res, err := Search(s, s.Target(), Descend, GoalLowestElevation)
	if err != nil {
		return 0, err
	}

	return res.Steps, nil
}
