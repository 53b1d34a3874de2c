package tables

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/SeamusWaldron/cubesolver/internal/move"
)

// file layout is little-endian and documented as a committed format, not
// an implementation accident: a 2D move table is N rows of 18
// little-endian uint16 columns; a pruning table is a flat byte array;
// an endgame database is a uint64 entry count followed by
// (uint64 key, uint64 move count, one byte per move) records.

func saveUint16Table(path string, table [][]uint16) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cubesolver: create %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, row := range table {
		if err := binary.Write(w, binary.LittleEndian, row); err != nil {
			return fmt.Errorf("cubesolver: write %s: %w", path, err)
		}
	}
	return w.Flush()
}

func loadUint16Table(path string, rows, cols int) ([][]uint16, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := bufio.NewReader(f)
	table := make([][]uint16, rows)
	for i := 0; i < rows; i++ {
		row := make([]uint16, cols)
		if err := binary.Read(r, binary.LittleEndian, row); err != nil {
			return nil, fmt.Errorf("cubesolver: read %s: %w", path, err)
		}
		table[i] = row
	}
	return table, nil
}

func saveUint8Table(path string, table []uint8) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cubesolver: create %s: %w", path, err)
	}
	defer f.Close()

	if _, err := f.Write(table); err != nil {
		return fmt.Errorf("cubesolver: write %s: %w", path, err)
	}
	return nil
}

func loadUint8Table(path string, n int) ([]uint8, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	table := make([]uint8, n)
	if _, err := io.ReadFull(f, table); err != nil {
		return nil, fmt.Errorf("cubesolver: read %s: %w", path, err)
	}
	return table, nil
}

func saveEndgameDB(path string, db map[uint64][]move.Move) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cubesolver: create %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := binary.Write(w, binary.LittleEndian, uint64(len(db))); err != nil {
		return fmt.Errorf("cubesolver: write %s: %w", path, err)
	}
	for key, moves := range db {
		if err := binary.Write(w, binary.LittleEndian, key); err != nil {
			return fmt.Errorf("cubesolver: write %s: %w", path, err)
		}
		if err := binary.Write(w, binary.LittleEndian, uint64(len(moves))); err != nil {
			return fmt.Errorf("cubesolver: write %s: %w", path, err)
		}
		raw := make([]byte, len(moves))
		for i, m := range moves {
			raw[i] = byte(m)
		}
		if _, err := w.Write(raw); err != nil {
			return fmt.Errorf("cubesolver: write %s: %w", path, err)
		}
	}
	return w.Flush()
}

func loadEndgameDB(path string) (map[uint64][]move.Move, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := bufio.NewReader(f)
	var count uint64
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, fmt.Errorf("cubesolver: read %s: %w", path, err)
	}

	db := make(map[uint64][]move.Move, count)
	for i := uint64(0); i < count; i++ {
		var key uint64
		if err := binary.Read(r, binary.LittleEndian, &key); err != nil {
			return nil, fmt.Errorf("cubesolver: read %s: %w", path, err)
		}
		var vecSize uint64
		if err := binary.Read(r, binary.LittleEndian, &vecSize); err != nil {
			return nil, fmt.Errorf("cubesolver: read %s: %w", path, err)
		}
		raw := make([]byte, vecSize)
		if _, err := io.ReadFull(r, raw); err != nil {
			return nil, fmt.Errorf("cubesolver: read %s: %w", path, err)
		}
		moves := make([]move.Move, vecSize)
		for i, b := range raw {
			moves[i] = move.Move(b)
		}
		db[key] = moves
	}
	return db, nil
}
