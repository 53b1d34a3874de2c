package solver

import (
	"sort"

	"github.com/SeamusWaldron/cubesolver/internal/move"
)

// searchState is one node on the iterative-deepening stack.
type searchState struct {
	x1, x2, x3 uint16
	lastMove   move.Move
	depth      int
	h          int
}

type nextCoordFunc func(x1, x2, x3 uint16, m move.Move) (uint16, uint16, uint16)
type heuristicFunc func(x1, x2, x3 uint16) uint8
type endgameSearchFunc func(x1, x2, x3 uint16) ([]move.Move, bool)

// idaStar runs iterative deepening over max_depth from the start state's
// own heuristic value up to limit, returning the first solution found at
// the smallest depth for which one exists.
func (s *Solver) idaStar(
	moves []move.Move, limit, endgameMaxDepth int,
	nextCoord nextCoordFunc, heuristic heuristicFunc, searchDB endgameSearchFunc,
	x1, x2, x3 uint16,
) ([]move.Move, bool) {
	if x1 == 0 && x2 == 0 && x3 == 0 {
		return nil, true
	}

	minDepth := int(heuristic(x1, x2, x3))
	for maxDepth := minDepth; maxDepth <= limit; maxDepth++ {
		stack := []searchState{{x1, x2, x3, move.None, 0, minDepth}}
		path := make([]move.Move, maxDepth+1)
		if solution, ok := s.searchIterative(stack, path, maxDepth, endgameMaxDepth, moves, nextCoord, heuristic, searchDB); ok {
			return solution, true
		}
	}
	return nil, false
}

// searchIterative drains one depth-bounded DFS pass, expanding nodes in
// ascending heuristic order so the cheapest-looking branch is explored
// first.
func (s *Solver) searchIterative(
	stack []searchState, path []move.Move, maxDepth, endgameMaxDepth int,
	moves []move.Move, nextCoord nextCoordFunc, heuristic heuristicFunc, searchDB endgameSearchFunc,
) ([]move.Move, bool) {
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		path[current.depth] = current.lastMove

		if current.h <= endgameMaxDepth {
			if endgamePath, found := searchDB(current.x1, current.x2, current.x3); found {
				solution := append([]move.Move{}, path[:current.depth+1]...)
				solution = append(solution, endgamePath...)
				return solution, true
			}
			if s.StrengthenHeuristic {
				if current.depth+endgameMaxDepth > maxDepth {
					continue
				}
				current.h = endgameMaxDepth + 1
			}
		}

		if current.x1 == 0 && current.x2 == 0 && current.x3 == 0 {
			return append([]move.Move{}, path[:current.depth+1]...), true
		}

		var candidates []searchState
		for _, m := range moves {
			if !isValidMove(m, current.lastMove) {
				continue
			}

			nx1, nx2, nx3 := nextCoord(current.x1, current.x2, current.x3, m)
			nextH := int(heuristic(nx1, nx2, nx3))
			if s.StrengthenHeuristic && current.h-1 > nextH {
				nextH = current.h - 1
			}

			if current.depth+1+nextH <= maxDepth {
				candidates = append(candidates, searchState{nx1, nx2, nx3, m, current.depth + 1, nextH})
			}
		}

		sort.Slice(candidates, func(i, j int) bool { return candidates[i].h < candidates[j].h })
		for i := len(candidates) - 1; i >= 0; i-- {
			stack = append(stack, candidates[i])
		}
	}
	return nil, false
}

// isValidMove rejects a second consecutive turn of the same face (the
// two would combine into a single turn, so exploring both is wasted
// work). The very first move of a branch, marked by the None sentinel,
// is always allowed.
func isValidMove(current, last move.Move) bool {
	if last == move.None {
		return true
	}
	return current.Face() != last.Face()
}
