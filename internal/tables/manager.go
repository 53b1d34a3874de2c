// Package tables builds, persists, and serves the move tables, pruning
// tables, and endgame databases the two-phase search depends on.
package tables

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/SeamusWaldron/cubesolver/internal/move"
)

// ErrGenerate wraps a failure that occurred while generating tables from
// scratch; unlike a load failure (which silently falls back to
// generation), a generation failure is fatal.
var ErrGenerate = errors.New("cubesolver: table generation failed")

// Manager is the process-wide, read-only holder of every table the
// solver needs. Build one with Load; there is no mutation after that.
type Manager struct {
	coMove, eoMove, udsMove      [][]uint16
	cpMove, udepMove, sepMove    [][]uint16
	coPrune, eoPrune, udsPrune   []uint8
	cpPrune, udepPrune, sepPrune []uint8
	phase1DB, phase2DB           map[uint64][]move.Move
}

var moveTableFiles = []string{
	"co_move_table.bin", "eo_move_table.bin", "uds_move_table.bin",
	"cp_move_table.bin", "udep_move_table.bin", "sep_move_table.bin",
}

var pruneTableFiles = []string{
	"co_pruning_table.bin", "eo_pruning_table.bin", "uds_pruning_table.bin",
	"cp_pruning_table.bin", "udep_pruning_table.bin", "sep_pruning_table.bin",
}

var endgameDBFiles = []string{"p1_endgame_db.bin", "p2_endgame_db.bin"}

// Load loads every table from dir, generating and persisting any that
// are missing or truncated. Generation failures are fatal; a missing or
// corrupt file on disk is not, it just triggers regeneration for that
// table family.
func Load(dir string) (*Manager, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cubesolver: create table directory: %w", err)
	}

	m := &Manager{}
	if err := m.loadOrBuildMoveTables(dir); err != nil {
		return nil, err
	}
	if err := m.loadOrBuildPruningTables(dir); err != nil {
		return nil, err
	}
	if err := m.loadOrBuildEndgameDBs(dir); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Manager) loadOrBuildMoveTables(dir string) error {
	sizes := []int{sizeCO, sizeEO, sizeUDS, sizeCP, sizeUDEP, sizeSEP}
	tables := make([][][]uint16, len(moveTableFiles))
	ok := true
	for i, name := range moveTableFiles {
		t, err := loadUint16Table(filepath.Join(dir, name), sizes[i], move.Count)
		if err != nil {
			ok = false
			break
		}
		tables[i] = t
	}

	if !ok {
		m.coMove = buildCOMoveTable()
		m.eoMove = buildEOMoveTable()
		m.udsMove = buildUDSMoveTable()
		m.cpMove = buildCPMoveTable()
		m.udepMove = buildUDEPMoveTable()
		m.sepMove = buildSEPMoveTable()

		built := [][][]uint16{m.coMove, m.eoMove, m.udsMove, m.cpMove, m.udepMove, m.sepMove}
		for i, name := range moveTableFiles {
			if err := saveUint16Table(filepath.Join(dir, name), built[i]); err != nil {
				return fmt.Errorf("%w: %v", ErrGenerate, err)
			}
		}
		return nil
	}

	m.coMove, m.eoMove, m.udsMove = tables[0], tables[1], tables[2]
	m.cpMove, m.udepMove, m.sepMove = tables[3], tables[4], tables[5]
	return nil
}

func (m *Manager) loadOrBuildPruningTables(dir string) error {
	sizes := []int{sizeCO, sizeEO, sizeUDS, sizeCP, sizeUDEP, sizeSEP}
	tables := make([][]uint8, len(pruneTableFiles))
	ok := true
	for i, name := range pruneTableFiles {
		t, err := loadUint8Table(filepath.Join(dir, name), sizes[i])
		if err != nil {
			ok = false
			break
		}
		tables[i] = t
	}

	if !ok {
		var err error
		if m.coPrune, err = buildPruningTable(sizeCO, phase1Moves, m.coMove); err != nil {
			return fmt.Errorf("%w: %v", ErrGenerate, err)
		}
		if m.eoPrune, err = buildPruningTable(sizeEO, phase1Moves, m.eoMove); err != nil {
			return fmt.Errorf("%w: %v", ErrGenerate, err)
		}
		if m.udsPrune, err = buildPruningTable(sizeUDS, phase1Moves, m.udsMove); err != nil {
			return fmt.Errorf("%w: %v", ErrGenerate, err)
		}
		if m.cpPrune, err = buildPruningTable(sizeCP, phase2Moves, m.cpMove); err != nil {
			return fmt.Errorf("%w: %v", ErrGenerate, err)
		}
		if m.udepPrune, err = buildPruningTable(sizeUDEP, phase2Moves, m.udepMove); err != nil {
			return fmt.Errorf("%w: %v", ErrGenerate, err)
		}
		if m.sepPrune, err = buildPruningTable(sizeSEP, phase2Moves, m.sepMove); err != nil {
			return fmt.Errorf("%w: %v", ErrGenerate, err)
		}

		built := [][]uint8{m.coPrune, m.eoPrune, m.udsPrune, m.cpPrune, m.udepPrune, m.sepPrune}
		for i, name := range pruneTableFiles {
			if err := saveUint8Table(filepath.Join(dir, name), built[i]); err != nil {
				return fmt.Errorf("%w: %v", ErrGenerate, err)
			}
		}
		return nil
	}

	m.coPrune, m.eoPrune, m.udsPrune = tables[0], tables[1], tables[2]
	m.cpPrune, m.udepPrune, m.sepPrune = tables[3], tables[4], tables[5]
	return nil
}

func (m *Manager) loadOrBuildEndgameDBs(dir string) error {
	p1, err1 := loadEndgameDB(filepath.Join(dir, endgameDBFiles[0]))
	p2, err2 := loadEndgameDB(filepath.Join(dir, endgameDBFiles[1]))
	if err1 == nil && err2 == nil {
		m.phase1DB, m.phase2DB = p1, p2
		return nil
	}

	m.phase1DB = buildEndgameDB(phase1EndgameDepth, phase1Moves, m.coMove, m.eoMove, m.udsMove)
	m.phase2DB = buildEndgameDB(phase2EndgameDepth, phase2Moves, m.cpMove, m.udepMove, m.sepMove)

	if err := saveEndgameDB(filepath.Join(dir, endgameDBFiles[0]), m.phase1DB); err != nil {
		return fmt.Errorf("%w: %v", ErrGenerate, err)
	}
	if err := saveEndgameDB(filepath.Join(dir, endgameDBFiles[1]), m.phase2DB); err != nil {
		return fmt.Errorf("%w: %v", ErrGenerate, err)
	}
	return nil
}

// Phase1Moves returns the successor coordinates reached by applying m to
// the phase-1 coordinate triple (co, eo, uds).
func (m *Manager) Phase1Moves(co, eo, uds uint16, mv move.Move) (uint16, uint16, uint16) {
	return m.coMove[co][mv], m.eoMove[eo][mv], m.udsMove[uds][mv]
}

// Phase2Moves returns the successor coordinates reached by applying m to
// the phase-2 coordinate triple (cp, udep, sep).
func (m *Manager) Phase2Moves(cp, udep, sep uint16, mv move.Move) (uint16, uint16, uint16) {
	return m.cpMove[cp][mv], m.udepMove[udep][mv], m.sepMove[sep][mv]
}

// Phase1Pruning returns the composite phase-1 heuristic: the maximum of
// the three independent axis lower bounds.
func (m *Manager) Phase1Pruning(co, eo, uds uint16) uint8 {
	return max3(m.coPrune[co], m.eoPrune[eo], m.udsPrune[uds])
}

// Phase2Pruning returns the composite phase-2 heuristic.
func (m *Manager) Phase2Pruning(cp, udep, sep uint16) uint8 {
	return max3(m.cpPrune[cp], m.udepPrune[udep], m.sepPrune[sep])
}

func max3(a, b, c uint8) uint8 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}

// SearchPhase1EndgameDB looks up the exact solving move sequence for a
// phase-1 coordinate triple, if it was within the database's build
// depth.
func (m *Manager) SearchPhase1EndgameDB(co, eo, uds uint16) ([]move.Move, bool) {
	path, ok := m.phase1DB[packKey(co, eo, uds)]
	return path, ok
}

// SearchPhase2EndgameDB looks up the exact solving move sequence for a
// phase-2 coordinate triple.
func (m *Manager) SearchPhase2EndgameDB(cp, udep, sep uint16) ([]move.Move, bool) {
	path, ok := m.phase2DB[packKey(cp, udep, sep)]
	return path, ok
}
