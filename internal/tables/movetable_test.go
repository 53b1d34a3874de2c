package tables

import (
	"testing"

	"github.com/SeamusWaldron/cubesolver/internal/move"
)

func TestCOMoveTableSolvedRowIsFixedUnderZeroDeltaMoves(t *testing.T) {
	table := buildCOMoveTable()
	// U and D never change corner orientation, so from CO=0 they must
	// stay at CO=0.
	if table[0][move.U] != 0 {
		t.Errorf("CO move table [0][U] = %d, want 0", table[0][move.U])
	}
	if table[0][move.D2] != 0 {
		t.Errorf("CO move table [0][D2] = %d, want 0", table[0][move.D2])
	}
	// F twists corners, so CO=0 must move away from 0.
	if table[0][move.F] == 0 {
		t.Error("CO move table [0][F] should be nonzero: F twists corners")
	}
}

func TestUDSMoveTableTracksSliceMembership(t *testing.T) {
	table := buildUDSMoveTable()
	if table[0][move.F2] != 0 {
		t.Errorf("UDS move table [0][F2] = %d, want 0 (F2 keeps slice edges in the slice)", table[0][move.F2])
	}
	if table[0][move.R] == 0 {
		t.Error("UDS move table [0][R] should be nonzero: R moves a slice edge out of the slice")
	}
}

func TestCPMoveTableOnlyFillsPhase2Columns(t *testing.T) {
	table := buildCPMoveTable()
	if table[0][move.F] != 0 {
		t.Errorf("CP move table column for a non-phase-2 move should stay at its zero default, got %d", table[0][move.F])
	}
	if table[0][move.F2] == 0 {
		t.Error("CP move table [0][F2] should be nonzero: F2 permutes corners")
	}
}

func TestSEPMoveTableF2TwiceReturnsToSolved(t *testing.T) {
	table := buildSEPMoveTable()
	coord := uint16(0)
	// F2 is a half turn and therefore self-inverse: applying it twice
	// from solved must return to solved.
	coord = table[coord][move.F2]
	coord = table[coord][move.F2]
	if coord != 0 {
		t.Errorf("F2 F2 on SEP should return to 0, got %d", coord)
	}
}
