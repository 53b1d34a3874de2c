// Package cube implements the minimal cube state model: the permutation and
// orientation of the eight corners and twelve edges, and the move-effect
// table that drives every state transition.
package cube

import "github.com/SeamusWaldron/cubesolver/internal/move"

// Color is a facelet color, used only by the sticker-level read interface
// that internal/render consumes; the cubie model never stores colors.
type Color uint8

const (
	White  Color = iota // U face when solved
	Yellow              // D face when solved
	Red                 // F face when solved
	Orange              // B face when solved
	Green               // L face when solved
	Blue                // R face when solved
)

func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Yellow:
		return "Y"
	case Red:
		return "R"
	case Orange:
		return "O"
	case Green:
		return "G"
	case Blue:
		return "B"
	default:
		return "?"
	}
}

// Corner slot order: UFL, UBL, UBR, UFR, DFL, DBL, DBR, DFR.
const (
	UFL = iota
	UBL
	UBR
	UFR
	DFL
	DBL
	DBR
	DFR
)

// Edge slot order: UF, UL, UB, UR, DF, DL, DB, DR, FL, BL, BR, FR. Slots
// 8..11 (FL, BL, BR, FR) are the middle (UD) slice edges.
const (
	UF = iota
	UL
	UB
	UR
	DF
	DL
	DB
	DR
	FL
	BL
	BR
	FR
)

// cornerColors[piece] gives the solved-state sticker colors of that
// corner piece in (U/D, secondary, tertiary) order matching the slot it
// sits in when solved.
var cornerColors = [8][3]Color{
	{White, Red, Green},
	{White, Green, Orange},
	{White, Orange, Blue},
	{White, Blue, Red},
	{Yellow, Green, Red},
	{Yellow, Orange, Green},
	{Yellow, Blue, Orange},
	{Yellow, Red, Blue},
}

// edgeColors[piece] gives the solved-state sticker colors of that edge
// piece.
var edgeColors = [12][2]Color{
	{White, Red},
	{White, Green},
	{White, Orange},
	{White, Blue},
	{Yellow, Red},
	{Yellow, Green},
	{Yellow, Orange},
	{Yellow, Blue},
	{Red, Green},
	{Orange, Green},
	{Orange, Blue},
	{Red, Blue},
}

// Corner is one of the eight corner cubies: which piece occupies a slot,
// and how that piece is twisted relative to the slot.
type Corner struct {
	Piece       uint8
	Orientation uint8
}

// Edge is one of the twelve edge cubies.
type Edge struct {
	Piece       uint8
	Orientation uint8
}

// Cube is the full cubie-level state: eight corners and twelve edges in
// their fixed slot order. The zero value is not solved; use New.
type Cube struct {
	Corners [8]Corner
	Edges   [12]Edge
}

// New returns a solved cube.
func New() *Cube {
	c := &Cube{}
	for i := range c.Corners {
		c.Corners[i] = Corner{Piece: uint8(i)}
	}
	for i := range c.Edges {
		c.Edges[i] = Edge{Piece: uint8(i)}
	}
	return c
}

// Clone returns a deep copy of c.
func (c *Cube) Clone() *Cube {
	clone := *c
	return &clone
}

// IsSolved reports whether every cubie is in its home slot with zero
// orientation.
func (c *Cube) IsSolved() bool {
	for i, corner := range c.Corners {
		if corner.Piece != uint8(i) || corner.Orientation != 0 {
			return false
		}
	}
	for i, edge := range c.Edges {
		if edge.Piece != uint8(i) || edge.Orientation != 0 {
			return false
		}
	}
	return true
}

// Apply performs one move on the cube in place, using the static
// move-effect table as ground truth.
func (c *Cube) Apply(m move.Move) {
	eff := &moveEffects[m]

	var tempC [4]Corner
	for i, idx := range eff.cornerAffected {
		tempC[i] = c.Corners[idx]
	}
	for i, idx := range eff.cornerTarget {
		c.Corners[idx] = tempC[i]
	}

	var tempE [4]Edge
	for i, idx := range eff.edgeAffected {
		tempE[i] = c.Edges[idx]
	}
	for i, idx := range eff.edgeTarget {
		c.Edges[idx] = tempE[i]
	}

	for i, idx := range eff.cornerAffected {
		c.Corners[idx].Orientation = (c.Corners[idx].Orientation + eff.cornerOriDelta[i]) % 3
	}
	for i, idx := range eff.edgeAffected {
		c.Edges[idx].Orientation = (c.Edges[idx].Orientation + eff.edgeOriDelta[i]) % 2
	}
}

// ApplySequence folds Apply over moves in order.
func (c *Cube) ApplySequence(moves []move.Move) {
	for _, m := range moves {
		c.Apply(m)
	}
}

// FromScramble builds a cube by applying a whitespace-separated move
// sequence to a solved cube.
func FromScramble(scramble string) (*Cube, error) {
	moves, err := move.ParseSequence(scramble)
	if err != nil {
		return nil, err
	}
	c := New()
	c.ApplySequence(moves)
	return c, nil
}

// CornerSticker returns the color of one of the three stickers belonging
// to the corner in the given slot. stickerPos is 0..2, in the slot's own
// local numbering; orientation rotates which piece-local sticker currently
// faces that position.
func (c *Cube) CornerSticker(slot, stickerPos int) Color {
	corner := c.Corners[slot]
	actual := (stickerPos - int(corner.Orientation) + 3) % 3
	return cornerColors[corner.Piece][actual]
}

// EdgeSticker returns the color of one of the two stickers belonging to
// the edge in the given slot.
func (c *Cube) EdgeSticker(slot, stickerPos int) Color {
	edge := c.Edges[slot]
	actual := (stickerPos + int(edge.Orientation)) % 2
	return edgeColors[edge.Piece][actual]
}

// FaceColors returns the nine facelet colors of one face, laid out
// row-major (0,1,2 top row ... 6,7,8 bottom row), with index 4 the fixed
// center.
func (c *Cube) FaceColors(f move.Face) [9]Color {
	switch f {
	case move.FaceU:
		return [9]Color{
			c.CornerSticker(UBL, 0), c.EdgeSticker(UB, 0), c.CornerSticker(UBR, 0),
			c.EdgeSticker(UL, 0), White, c.EdgeSticker(UR, 0),
			c.CornerSticker(UFL, 0), c.EdgeSticker(UF, 0), c.CornerSticker(UFR, 0),
		}
	case move.FaceD:
		return [9]Color{
			c.CornerSticker(DFL, 0), c.EdgeSticker(DF, 0), c.CornerSticker(DFR, 0),
			c.EdgeSticker(DL, 0), Yellow, c.EdgeSticker(DR, 0),
			c.CornerSticker(DBL, 0), c.EdgeSticker(DB, 0), c.CornerSticker(DBR, 0),
		}
	case move.FaceF:
		return [9]Color{
			c.CornerSticker(UFL, 1), c.EdgeSticker(UF, 1), c.CornerSticker(UFR, 2),
			c.EdgeSticker(FL, 0), Red, c.EdgeSticker(FR, 0),
			c.CornerSticker(DFL, 2), c.EdgeSticker(DF, 1), c.CornerSticker(DFR, 1),
		}
	case move.FaceB:
		return [9]Color{
			c.CornerSticker(UBR, 1), c.EdgeSticker(UB, 1), c.CornerSticker(UBL, 2),
			c.EdgeSticker(BR, 0), Orange, c.EdgeSticker(BL, 0),
			c.CornerSticker(DBR, 2), c.EdgeSticker(DB, 1), c.CornerSticker(DBL, 1),
		}
	case move.FaceL:
		return [9]Color{
			c.CornerSticker(UBL, 1), c.EdgeSticker(UL, 1), c.CornerSticker(UFL, 2),
			c.EdgeSticker(BL, 1), Green, c.EdgeSticker(FL, 1),
			c.CornerSticker(DBL, 2), c.EdgeSticker(DL, 1), c.CornerSticker(DFL, 1),
		}
	case move.FaceR:
		return [9]Color{
			c.CornerSticker(UFR, 1), c.EdgeSticker(UR, 1), c.CornerSticker(UBR, 2),
			c.EdgeSticker(FR, 1), Blue, c.EdgeSticker(BR, 1),
			c.CornerSticker(DFR, 2), c.EdgeSticker(DR, 1), c.CornerSticker(DBR, 1),
		}
	default:
		return [9]Color{}
	}
}
