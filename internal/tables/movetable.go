package tables

import (
	"github.com/SeamusWaldron/cubesolver/internal/coord"
	"github.com/SeamusWaldron/cubesolver/internal/cube"
	"github.com/SeamusWaldron/cubesolver/internal/move"
)

const (
	sizeCO   = 2187
	sizeEO   = 2048
	sizeUDS  = 495
	sizeCP   = 40320
	sizeUDEP = 40320
	sizeSEP  = 24
)

// phase1Moves is the move set phase-1 coordinates (CO, EO, UDS) are
// allowed to range over: all eighteen turns.
var phase1Moves = move.All[:]

// phase2Moves is the move set phase-2 coordinates (CP, UDEP, SEP) are
// allowed to range over: full turns of U/D, half turns only of F/B/L/R —
// the subset that keeps a solved phase-1 cube inside the G1 subgroup.
var phase2Moves = []move.Move{
	move.U, move.UPrime, move.U2,
	move.D, move.DPrime, move.D2,
	move.F2, move.B2, move.L2, move.R2,
}

// buildMoveTable constructs an N x 18 next-coordinate table for one
// coordinate axis. Row i holds, at column m, the coordinate reached by
// decoding i into a solved cube, applying move m, and re-encoding. Only
// the columns named in moves are filled; the rest keep the zero value,
// mirroring the reference implementation's fixed-width 18-column arrays
// where a phase-2 axis's unused columns (non-G1 moves) are never
// written.
func buildMoveTable(n int, moves []move.Move, decode func(*cube.Cube, uint16), encode func(*cube.Cube) uint16) [][]uint16 {
	table := make([][]uint16, n)
	for i := 0; i < n; i++ {
		row := make([]uint16, move.Count)
		c := cube.New()
		decode(c, uint16(i))
		for _, m := range moves {
			next := c.Clone()
			next.Apply(m)
			row[int(m)] = encode(next)
		}
		table[i] = row
	}
	return table
}

func buildCOMoveTable() [][]uint16 {
	return buildMoveTable(sizeCO, phase1Moves, coord.DecodeCornerOrientation, coord.EncodeCornerOrientation)
}

func buildEOMoveTable() [][]uint16 {
	return buildMoveTable(sizeEO, phase1Moves, coord.DecodeEdgeOrientation, coord.EncodeEdgeOrientation)
}

func buildUDSMoveTable() [][]uint16 {
	return buildMoveTable(sizeUDS, phase1Moves, coord.DecodeUDSlicePosition, coord.EncodeUDSlicePosition)
}

// encodePermutationIgnoringError adapts one of the Lehmer-based encoders
// to buildMoveTable's plain encode signature. Every coordinate this is
// called with during table generation was itself produced by the
// matching decode function over 0..n-1, so it is always a well-formed
// permutation and ErrInvalidCoordinate is unreachable here.
func encodePermutationIgnoringError(encode func(*cube.Cube) (uint16, error)) func(*cube.Cube) uint16 {
	return func(c *cube.Cube) uint16 {
		v, _ := encode(c)
		return v
	}
}

func buildCPMoveTable() [][]uint16 {
	return buildMoveTable(sizeCP, phase2Moves, coord.DecodeCornerPermutation, encodePermutationIgnoringError(coord.EncodeCornerPermutation))
}

func buildUDEPMoveTable() [][]uint16 {
	return buildMoveTable(sizeUDEP, phase2Moves, coord.DecodeUDEdgePermutation, encodePermutationIgnoringError(coord.EncodeUDEdgePermutation))
}

func buildSEPMoveTable() [][]uint16 {
	return buildMoveTable(sizeSEP, phase2Moves, coord.DecodeSliceEdgePermutation, encodePermutationIgnoringError(coord.EncodeSliceEdgePermutation))
}
