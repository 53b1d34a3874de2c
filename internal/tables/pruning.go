package tables

import (
	"fmt"

	"github.com/SeamusWaldron/cubesolver/internal/coord"
	"github.com/SeamusWaldron/cubesolver/internal/move"
)

// unvisited is the pruning-table sentinel for "distance not yet known",
// matching the reference implementation's 0xFF fill value.
const unvisited = 0xFF

// buildPruningTable runs a breadth-first search over one coordinate
// axis's move table, starting from the solved coordinate 0, to compute
// each coordinate's minimum distance (in moves) back to solved. It
// reports coord.ErrInvalidCoordinate if a move table entry points
// outside the table's range, the way the reference implementation's
// table generator guards against a corrupt move table.
func buildPruningTable(n int, moves []move.Move, moveTable [][]uint16) ([]uint8, error) {
	table := make([]uint8, n)
	for i := range table {
		table[i] = unvisited
	}
	table[0] = 0

	frontier := []uint16{0}
	depth := uint8(0)
	for len(frontier) > 0 {
		var next []uint16
		for _, cur := range frontier {
			row := moveTable[cur]
			for _, m := range moves {
				candidate := row[int(m)]
				if int(candidate) >= n {
					return nil, fmt.Errorf("%w: move table entry %d outside table of size %d", coord.ErrInvalidCoordinate, candidate, n)
				}
				if table[candidate] == unvisited {
					table[candidate] = depth + 1
					next = append(next, candidate)
				}
			}
		}
		frontier = next
		depth++
	}
	return table, nil
}
