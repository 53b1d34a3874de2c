package tables

import (
	"path/filepath"
	"testing"

	"github.com/SeamusWaldron/cubesolver/internal/move"
)

func TestUint16TableRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "table.bin")
	table := [][]uint16{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	}
	if err := saveUint16Table(path, table); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := loadUint16Table(path, 3, 3)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	for i := range table {
		for j := range table[i] {
			if got[i][j] != table[i][j] {
				t.Errorf("got[%d][%d] = %d, want %d", i, j, got[i][j], table[i][j])
			}
		}
	}
}

func TestUint8TableRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prune.bin")
	table := []uint8{0, 1, 2, 255, 7}
	if err := saveUint8Table(path, table); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := loadUint8Table(path, len(table))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	for i := range table {
		if got[i] != table[i] {
			t.Errorf("got[%d] = %d, want %d", i, got[i], table[i])
		}
	}
}

func TestEndgameDBRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "endgame.bin")
	db := map[uint64][]move.Move{
		0:                {},
		packKey(1, 2, 3): {move.R, move.UPrime},
		packKey(5, 0, 0): {move.F2},
	}
	if err := saveEndgameDB(path, db); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := loadEndgameDB(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != len(db) {
		t.Fatalf("got %d entries, want %d", len(got), len(db))
	}
	for key, moves := range db {
		gotMoves, ok := got[key]
		if !ok {
			t.Fatalf("missing key %d", key)
		}
		if len(gotMoves) != len(moves) {
			t.Fatalf("key %d: got %v, want %v", key, gotMoves, moves)
		}
		for i := range moves {
			if gotMoves[i] != moves[i] {
				t.Errorf("key %d move %d: got %v, want %v", key, i, gotMoves[i], moves[i])
			}
		}
	}
}

func TestLoadUint16TableMissingFile(t *testing.T) {
	if _, err := loadUint16Table(filepath.Join(t.TempDir(), "missing.bin"), 3, 3); err == nil {
		t.Fatal("expected an error loading a nonexistent table")
	}
}
