package climb

import (
	"sort"

	"github.com/katalvlaran/hillclimb/surface"
)

// neighborOffsets enumerates the 4-directional neighborhood: W, E, N, S.
var neighborOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// legal reports whether stepping from elevation cur to elevation nbr is
// allowed under dir: ascending may climb at most one level (any descent is
// free); descending is the exact mirror, so a legal ascend move A→B is a
// legal descend move B→A.
func legal(cur, nbr byte, dir Direction) bool {
	if dir == Ascend {
		return nbr <= cur+1
	}
	return nbr+1 >= cur
}

// LegalMoves enumerates the in-bounds neighbors of p reachable in one step
// under dir, each paired with its elevation. The result is ordered by
// elevation, highest first (stable within equal elevations) — a greedy
// exploration heuristic that fixes the visit order; it does not affect
// which step count is shortest. Directions outside {Ascend, Descend}
// yield nil.
// Complexity: O(1) — at most 4 neighbors.
func LegalMoves(s *surface.Surface, p surface.Position, dir Direction) []Move {
	if dir != Ascend && dir != Descend {
		return nil
	}
	cur := s.At(p)
	moves := make([]Move, 0, 4)
	for _, d := range neighborOffsets {
		n := surface.Position{X: p.X + d[0], Y: p.Y + d[1]}
		if !s.InBounds(n) {
			continue
		}
		e := s.At(n)
		if legal(cur, e, dir) {
			moves = append(moves, Move{To: n, Elevation: e})
		}
	}
	sort.SliceStable(moves, func(i, j int) bool {
		return moves[i].Elevation > moves[j].Elevation
	})

	return moves
}
