// Package solver implements the two-phase IDA* search: phase 1 drives
// the cube into the G1 subgroup, phase 2 solves it from there using only
// moves that keep G1 invariant.
package solver

import (
	"errors"
	"fmt"

	"github.com/SeamusWaldron/cubesolver/internal/coord"
	"github.com/SeamusWaldron/cubesolver/internal/cube"
	"github.com/SeamusWaldron/cubesolver/internal/move"
	"github.com/SeamusWaldron/cubesolver/internal/tables"
)

// ErrUnsolvable is returned when a phase's IDA* search exhausts its
// depth limit without finding a solution. This should never happen for
// a legally scrambled cube; it signals a corrupt cube or a limit set
// too low.
var ErrUnsolvable = errors.New("cubesolver: no solution found within depth limit")

const (
	phase1DepthLimit      = 12
	phase2MinDepthLimit   = 8
	phase2BudgetFromStart = 25

	endgameDBMaxDepthPhase1 = 6
	endgameDBMaxDepthPhase2 = 7
)

// phase2Moves mirrors the subset in internal/tables: full U/D turns,
// half turns only of F/B/L/R.
var phase2Moves = []move.Move{
	move.U, move.UPrime, move.U2,
	move.D, move.DPrime, move.D2,
	move.F2, move.B2, move.L2, move.R2,
}

// Solver runs the two-phase search against a fixed set of tables.
// StrengthenHeuristic enables the heuristic-strengthening refinement
// (next_h = max(heuristic(child), parent.h-1)), which bounds solution
// length more tightly at the cost of occasionally missing a cheaper
// solution that the unstrengthened search would have found sooner. Off
// by default, matching the reference tool's default build.
type Solver struct {
	tables              *tables.Manager
	StrengthenHeuristic bool
}

// New returns a Solver backed by tm.
func New(tm *tables.Manager) *Solver {
	return &Solver{tables: tm}
}

// Solve finds a move sequence that solves c, without mutating c.
func (s *Solver) Solve(c *cube.Cube) ([]move.Move, error) {
	co := coord.EncodeCornerOrientation(c)
	eo := coord.EncodeEdgeOrientation(c)
	uds := coord.EncodeUDSlicePosition(c)

	phase1, ok := s.idaStar(
		move.All[:], phase1DepthLimit, endgameDBMaxDepthPhase1,
		s.tables.Phase1Moves, s.tables.Phase1Pruning, s.tables.SearchPhase1EndgameDB,
		co, eo, uds,
	)
	if !ok {
		return nil, fmt.Errorf("phase 1: %w", ErrUnsolvable)
	}
	phase1 = stripNone(phase1)

	intermediate := c.Clone()
	intermediate.ApplySequence(phase1)

	cp, err := coord.EncodeCornerPermutation(intermediate)
	if err != nil {
		return nil, fmt.Errorf("phase 2 setup: %w", err)
	}
	udep, err := coord.EncodeUDEdgePermutation(intermediate)
	if err != nil {
		return nil, fmt.Errorf("phase 2 setup: %w", err)
	}
	sep, err := coord.EncodeSliceEdgePermutation(intermediate)
	if err != nil {
		return nil, fmt.Errorf("phase 2 setup: %w", err)
	}

	limit2 := phase2MinDepthLimit
	if budget := phase2BudgetFromStart - len(phase1); budget > limit2 {
		limit2 = budget
	}

	phase2, ok := s.idaStar(
		phase2Moves, limit2, endgameDBMaxDepthPhase2,
		s.tables.Phase2Moves, s.tables.Phase2Pruning, s.tables.SearchPhase2EndgameDB,
		cp, udep, sep,
	)
	if !ok {
		return nil, fmt.Errorf("phase 2: %w", ErrUnsolvable)
	}
	phase2 = stripNone(phase2)

	return append(phase1, phase2...), nil
}

func stripNone(moves []move.Move) []move.Move {
	out := make([]move.Move, 0, len(moves))
	for _, m := range moves {
		if m != move.None {
			out = append(out, m)
		}
	}
	return out
}
