package tables

import "github.com/SeamusWaldron/cubesolver/internal/move"

// Endgame database generation depth bounds: how far the BFS that builds
// the database explores from the solved state. These are shallower than
// the solver's own endgame-database consultation threshold (see
// internal/solver), since a database entry is only useful once its whole
// subtree up to this depth has been enumerated.
const (
	phase1EndgameDepth = 5
	phase2EndgameDepth = 6
)

func packKey(x1, x2, x3 uint16) uint64 {
	return uint64(x1)<<32 | uint64(x2)<<16 | uint64(x3)
}

type endgameState struct {
	x1, x2, x3 uint16
	path       []move.Move
}

func reversedMoves(moves []move.Move) []move.Move {
	out := make([]move.Move, len(moves))
	for i, m := range moves {
		out[len(moves)-1-i] = m
	}
	return out
}

// buildEndgameDB performs a bounded breadth-first search from the solved
// triple (0,0,0) over the given three coordinate move tables, recording
// for every newly discovered triple the move sequence that solves it.
// Nodes at maxDepth are still expanded, so triples maxDepth+1 moves from
// solved are recorded too; those are not expanded further. The solver
// consults the database once a node's heuristic is at most maxDepth+1
// (see internal/solver).
func buildEndgameDB(maxDepth int, moves []move.Move, table1, table2, table3 [][]uint16) map[uint64][]move.Move {
	db := map[uint64][]move.Move{0: {}}
	frontier := []endgameState{{0, 0, 0, nil}}
	depth := 0

	for len(frontier) > 0 {
		var next []endgameState
		for _, cur := range frontier {
			for _, m := range moves {
				nx1 := table1[cur.x1][int(m)]
				nx2 := table2[cur.x2][int(m)]
				nx3 := table3[cur.x3][int(m)]
				key := packKey(nx1, nx2, nx3)

				if _, seen := db[key]; seen {
					continue
				}

				nextPath := make([]move.Move, len(cur.path), len(cur.path)+1)
				copy(nextPath, cur.path)
				nextPath = append(nextPath, m.Invert())

				if depth < maxDepth {
					next = append(next, endgameState{nx1, nx2, nx3, nextPath})
				}
				db[key] = reversedMoves(nextPath)
			}
		}
		frontier = next
		depth++
	}
	return db
}
