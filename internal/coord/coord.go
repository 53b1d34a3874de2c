package coord

import "github.com/SeamusWaldron/cubesolver/internal/cube"

// EncodeCornerOrientation ranks the orientation of the first seven
// corners as a base-3 number; the eighth corner's orientation is always
// determined by the other seven (their sum is invariant mod 3), so it
// carries no information and is dropped.
func EncodeCornerOrientation(c *cube.Cube) uint16 {
	var co uint16
	for i := 0; i < 7; i++ {
		co = co*3 + uint16(c.Corners[i].Orientation)
	}
	return co
}

// DecodeCornerOrientation sets every corner's orientation field on c to
// match the coordinate co, inferring the eighth corner from the mod-3
// invariant. It does not touch corner piece identities.
func DecodeCornerOrientation(c *cube.Cube, co uint16) {
	parity := 0
	for i := 6; i >= 0; i-- {
		ori := co % 3
		co /= 3
		c.Corners[i].Orientation = uint8(ori)
		parity += int(ori)
	}
	c.Corners[7].Orientation = uint8((3 - parity%3) % 3)
}

// EncodeEdgeOrientation ranks the orientation of the first eleven edges
// as a base-2 number; the twelfth is determined by the mod-2 invariant.
func EncodeEdgeOrientation(c *cube.Cube) uint16 {
	var eo uint16
	for i := 0; i < 11; i++ {
		eo = eo*2 + uint16(c.Edges[i].Orientation)
	}
	return eo
}

// DecodeEdgeOrientation sets every edge's orientation field on c to match
// the coordinate eo.
func DecodeEdgeOrientation(c *cube.Cube, eo uint16) {
	parity := 0
	for i := 10; i >= 0; i-- {
		ori := eo % 2
		eo /= 2
		c.Edges[i].Orientation = uint8(ori)
		parity += int(ori)
	}
	c.Edges[11].Orientation = uint8((2 - parity%2) % 2)
}

// EncodeUDSlicePosition ranks which four of the twelve edge slots hold
// the middle-slice edges (pieces 8..11), using the combinatorial number
// system: the four occupied slots, renumbered 11-slot and sorted
// descending, map to a unique number in 0..494 via sums of C(n,k).
func EncodeUDSlicePosition(c *cube.Cube) uint16 {
	var sliceIndices []int
	for i := 0; i < 12 && len(sliceIndices) < 4; i++ {
		piece := c.Edges[i].Piece
		if piece >= 8 && piece <= 11 {
			sliceIndices = append(sliceIndices, 11-i)
		}
	}
	sortDescending(sliceIndices)

	var uds uint16
	k := 4
	for _, index := range sliceIndices {
		uds += uint16(binomial[index][k])
		k--
	}
	return uds
}

// DecodeUDSlicePosition places placeholder slice-edge pieces (8..11) into
// the four slots the coordinate selects and renumbers every other edge
// slot down by 4 if it happened to hold a slice piece id. This is a
// one-way decode: it reconstructs which slots are slice slots, not which
// specific piece occupies each, so the result does not round-trip back
// to the original permutation. That is acceptable because phase-1 search
// and table generation only need the UD-slice membership, not edge
// identity within the slice.
func DecodeUDSlicePosition(c *cube.Cube, uds uint16) {
	for i := 0; i < 12; i++ {
		piece := c.Edges[i].Piece
		if piece >= 8 {
			c.Edges[i].Piece = piece - 4
		}
	}

	k := 4
	for i := 0; i < 12 && k > 0; i++ {
		threshold := uint16(binomial[11-i][k])
		if uds >= threshold {
			uds -= threshold
			c.Edges[i].Piece = uint8(7 + k)
			k--
		}
	}
}

func sortDescending(s []int) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] < s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}

// EncodeCornerPermutation ranks the permutation of all eight corners
// (alphabet 0..7) via its Lehmer code. It returns ErrInvalidCoordinate
// if c's corner pieces are not a permutation of 0..7.
func EncodeCornerPermutation(c *cube.Cube) (uint16, error) {
	pieces := make([]uint8, 8)
	for i, corner := range c.Corners {
		pieces[i] = corner.Piece
	}
	return lehmerRank(pieces, 0)
}

// DecodeCornerPermutation sets each corner slot's piece identity from the
// permutation rank cp. Orientation is untouched.
func DecodeCornerPermutation(c *cube.Cube, cp uint16) {
	pieces := lehmerUnrank(cp, 8, 0)
	for i, p := range pieces {
		c.Corners[i].Piece = p
	}
}

// EncodeUDEdgePermutation ranks the permutation of the eight U/D-layer
// edges (slots 0..7, alphabet 0..7). Valid only once the cube is in the
// G1 subgroup, where those slots are guaranteed to hold exactly pieces
// 0..7; ErrInvalidCoordinate signals that the cube was not actually in
// G1 when this was called.
func EncodeUDEdgePermutation(c *cube.Cube) (uint16, error) {
	pieces := make([]uint8, 8)
	for i := 0; i < 8; i++ {
		pieces[i] = c.Edges[i].Piece
	}
	return lehmerRank(pieces, 0)
}

// DecodeUDEdgePermutation sets edge slots 0..7's piece identities from
// the permutation rank udep.
func DecodeUDEdgePermutation(c *cube.Cube, udep uint16) {
	pieces := lehmerUnrank(udep, 8, 0)
	for i, p := range pieces {
		c.Edges[i].Piece = p
	}
}

// EncodeSliceEdgePermutation ranks the permutation of the four
// middle-slice edges (slots 8..11, alphabet 8..11).
func EncodeSliceEdgePermutation(c *cube.Cube) (uint16, error) {
	pieces := make([]uint8, 4)
	for i := 0; i < 4; i++ {
		pieces[i] = c.Edges[8+i].Piece
	}
	return lehmerRank(pieces, 8)
}

// DecodeSliceEdgePermutation sets edge slots 8..11's piece identities
// from the permutation rank sep.
func DecodeSliceEdgePermutation(c *cube.Cube, sep uint16) {
	pieces := lehmerUnrank(sep, 4, 8)
	for i, p := range pieces {
		c.Edges[8+i].Piece = p
	}
}
