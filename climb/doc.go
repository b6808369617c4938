// Package climb provides a production-grade shortest-path search over a
// height-mapped surface, subject to a per-step elevation-change rule.
//
// What
//
//   - Explore grid cells in non-decreasing step count from a start cell.
//   - Two traversal directions:
//   - Ascend: a step may climb at most one level (any descent is free)
//   - Descend: the exact mirror, for walking backward from the summit
//   - Pluggable goal predicates decide termination:
//   - GoalBestSignal (reached the designated target cell)
//   - GoalLowestElevation (reached any cell at elevation 'a')
//   - GoalPosition (reached one specific cell)
//   - Returns a Result containing:
//   - Steps: shortest step count to a goal cell, or Unreachable
//   - Order: visit sequence
//   - Dist: row-major best step count per cell
//   - Parent: row-major predecessor links for path reconstruction
//   - Supports an OnVisit hook (may abort with an error), context
//     cancellation, and a MaxSteps limit (n>0) or explicit "no limit" (n==0).
//
// Why
//
//   - Compute minimum climb lengths on puzzle-style elevation maps.
//   - Walk the reverse problem (summit to valley floor) with the same engine
//     by flipping the direction tag and the goal predicate.
//
// Determinism
//
//	LegalMoves orders neighbors by elevation, highest first (stable within
//	ties), and the queue preserves insertion order, so the visit sequence
//	is fully reproducible. The ordering is a greedy heuristic only; it
//	never changes the reported step count.
//
// Unreachable
//
//	"No path" is a regular outcome, not an error: Result.Steps (and the
//	top-level entry points) carry the Unreachable sentinel. Compare against
//	it before using a result as a distance; never feed it into arithmetic.
//
// Complexity (W = width, H = height)
//
//   - Time:   O(W×H)   (each cell dequeued at most once, ≤4 neighbors)
//   - Memory: O(W×H)   (for queue, Dist, Parent, Order)
//
// Usage
//
//	// Whole-map answers straight from elevation text:
//	up, err := climb.ShortestPathUp(text)    // S → E, ascend rule
//	down, err := climb.ShortestPathDown(text) // E → nearest 'a', descend rule
//
//	// Engine-level search with options:
//	res, err := climb.Search(
//	    s, start, climb.Ascend, climb.GoalBestSignal,
//	    climb.WithContext(ctx),
//	    climb.WithMaxSteps(100),
//	    climb.WithOnVisit(func(p surface.Position, steps int) error { return nil }),
//	)
//
// Options
//
//   - DefaultOptions(): background Context, no-op hook, no step limit.
//   - WithContext(ctx):  set a custom context for cancellation.
//   - WithMaxSteps(n):   stop exploring beyond n steps (>0).
//   - WithOnVisit(fn):   hook during visit; returning error aborts the search.
//
// Errors
//
//   - ErrNilSurface        if the surface pointer is nil.
//   - ErrStartOutOfBounds  if the start cell lies outside the grid.
//   - ErrNilGoal           if no goal predicate is supplied.
//   - ErrBadDirection      if the direction tag is unknown.
//   - ErrOptionViolation   if an invalid Option (e.g. negative MaxSteps).
//   - ErrNoPath            from Result.PathTo after an exhausted search.
//   - Wrapped user-supplied hook errors from OnVisit.
package climb
