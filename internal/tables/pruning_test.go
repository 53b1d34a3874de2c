package tables

import (
	"errors"
	"testing"

	"github.com/SeamusWaldron/cubesolver/internal/coord"
	"github.com/SeamusWaldron/cubesolver/internal/move"
)

// A synthetic three-state "cycle" move table: a single move M1 advances
// 0 -> 1 -> 2 -> 0. This is enough to exercise the BFS without needing a
// real coordinate axis.
func cycleMoveTable() [][]uint16 {
	return [][]uint16{
		{1},
		{2},
		{0},
	}
}

func TestBuildPruningTableOnCycle(t *testing.T) {
	table, err := buildPruningTable(3, []move.Move{move.U}, cycleMoveTableWithColumn())
	if err != nil {
		t.Fatalf("buildPruningTable: %v", err)
	}
	want := []uint8{0, 1, 2}
	for i, w := range want {
		if table[i] != w {
			t.Errorf("table[%d] = %d, want %d", i, table[i], w)
		}
	}
}

// cycleMoveTableWithColumn places the cycle transition at column
// move.U's index so buildPruningTable (which indexes by move ordinal)
// reads it correctly.
func cycleMoveTableWithColumn() [][]uint16 {
	rows := cycleMoveTable()
	table := make([][]uint16, len(rows))
	for i, r := range rows {
		row := make([]uint16, move.Count)
		row[move.U] = r[0]
		table[i] = row
	}
	return table
}

func TestBuildPruningTableUnreachableStaysUnvisited(t *testing.T) {
	// State 2 is unreachable from 0 via the only available move.
	table := make([][]uint16, 3)
	for i := range table {
		row := make([]uint16, move.Count)
		row[move.U] = uint16(i) // every state maps to itself: only 0 is ever visited
		table[i] = row
	}
	result, err := buildPruningTable(3, []move.Move{move.U}, table)
	if err != nil {
		t.Fatalf("buildPruningTable: %v", err)
	}
	if result[0] != 0 {
		t.Errorf("table[0] = %d, want 0", result[0])
	}
	if result[1] != unvisited || result[2] != unvisited {
		t.Errorf("unreachable states should stay unvisited, got %v", result)
	}
}

func TestBuildPruningTableRejectsMoveTableEntryOutOfRange(t *testing.T) {
	table := make([][]uint16, 3)
	for i := range table {
		row := make([]uint16, move.Count)
		row[move.U] = 5 // outside the 3-entry table
		table[i] = row
	}
	if _, err := buildPruningTable(3, []move.Move{move.U}, table); !errors.Is(err, coord.ErrInvalidCoordinate) {
		t.Errorf("got err %v, want coord.ErrInvalidCoordinate", err)
	}
}

func TestRealCOPruningTableReachesEveryCoordinate(t *testing.T) {
	moveTable := buildCOMoveTable()
	prune, err := buildPruningTable(sizeCO, phase1Moves, moveTable)
	if err != nil {
		t.Fatalf("buildPruningTable: %v", err)
	}
	if prune[0] != 0 {
		t.Fatalf("solved CO coordinate should have pruning value 0, got %d", prune[0])
	}
	for _, v := range prune {
		if v == unvisited {
			t.Fatal("every CO coordinate should be reachable from solved")
		}
	}
}
