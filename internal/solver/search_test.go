package solver

import (
	"testing"

	"github.com/SeamusWaldron/cubesolver/internal/move"
)

func TestIsValidMoveRejectsSameFace(t *testing.T) {
	if isValidMove(move.U2, move.U) {
		t.Error("two U-face moves in a row should be rejected")
	}
	if !isValidMove(move.R, move.U) {
		t.Error("a different-face move should be allowed")
	}
	if !isValidMove(move.U, move.None) {
		t.Error("the first move of a branch should always be allowed")
	}
}

// The synthetic helpers below exercise idaStar/searchIterative against a
// tiny hand-built coordinate space, independent of the real tables, so the
// search mechanics (iterative deepening, pair filter, move ordering) can
// be checked without building full move/pruning tables.
//
// States are encoded entirely in x1; x2 and x3 stay 0. State 0 is
// solved. Both U and D decrement x1 by one, modeling a straight-line
// distance-to-goal; two different faces are used so the pair filter
// doesn't block consecutive moves in the test solutions below.
func syntheticNextCoord(x1, x2, x3 uint16, m move.Move) (uint16, uint16, uint16) {
	if (m == move.U || m == move.D) && x1 > 0 {
		return x1 - 1, x2, x3
	}
	return x1, x2, x3
}

var syntheticMoves = []move.Move{move.U, move.D}

func syntheticHeuristic(x1, x2, x3 uint16) uint8 {
	return uint8(x1)
}

func syntheticEndgameDB(x1, x2, x3 uint16) ([]move.Move, bool) {
	if x1 == 0 {
		return []move.Move{}, true
	}
	return nil, false
}

func TestIdaStarFindsStraightLineSolution(t *testing.T) {
	s := &Solver{}
	solution, ok := s.idaStar(syntheticMoves, 5, 0, syntheticNextCoord, syntheticHeuristic, syntheticEndgameDB, 3, 0, 0)
	if !ok {
		t.Fatal("expected a solution")
	}
	moveCount := 0
	for _, m := range solution {
		if m != move.None {
			moveCount++
		}
	}
	if moveCount != 3 {
		t.Errorf("solution = %v, want 3 moves", solution)
	}
}

func TestIdaStarAlreadySolved(t *testing.T) {
	s := &Solver{}
	solution, ok := s.idaStar(syntheticMoves, 5, 0, syntheticNextCoord, syntheticHeuristic, syntheticEndgameDB, 0, 0, 0)
	if !ok {
		t.Fatal("expected an already-solved state to report solved")
	}
	if len(solution) != 0 {
		t.Errorf("expected an empty solution, got %v", solution)
	}
}

func TestIdaStarUnreachableWithinLimit(t *testing.T) {
	s := &Solver{}
	// Limit 2 is too shallow for a state 5 moves away.
	_, ok := s.idaStar(syntheticMoves, 2, 0, syntheticNextCoord, syntheticHeuristic, syntheticEndgameDB, 5, 0, 0)
	if ok {
		t.Fatal("expected no solution within an insufficient depth limit")
	}
}

func TestIdaStarUsesEndgameDBShortcut(t *testing.T) {
	// An endgame DB that always claims success at depth 0 should make
	// the search terminate immediately regardless of the real distance.
	alwaysSolved := func(x1, x2, x3 uint16) ([]move.Move, bool) {
		return []move.Move{move.R, move.UPrime}, true
	}
	s := &Solver{}
	solution, ok := s.idaStar(syntheticMoves, 10, 10, syntheticNextCoord, syntheticHeuristic, alwaysSolved, 3, 0, 0)
	if !ok {
		t.Fatal("expected a solution via the endgame database")
	}
	found := false
	for i := 0; i+1 < len(solution); i++ {
		if solution[i] == move.R && solution[i+1] == move.UPrime {
			found = true
		}
	}
	if !found {
		t.Errorf("expected the endgame database's moves to appear in the solution, got %v", solution)
	}
}

func TestIdaStarStrengthenedHeuristicStillSolves(t *testing.T) {
	s := &Solver{StrengthenHeuristic: true}
	solution, ok := s.idaStar(syntheticMoves, 5, 0, syntheticNextCoord, syntheticHeuristic, syntheticEndgameDB, 3, 0, 0)
	if !ok {
		t.Fatal("expected a solution with heuristic strengthening enabled")
	}
	moveCount := 0
	for _, m := range solution {
		if m != move.None {
			moveCount++
		}
	}
	if moveCount != 3 {
		t.Errorf("solution = %v, want 3 moves", solution)
	}
}
