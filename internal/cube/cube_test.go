package cube

import (
	"testing"

	"github.com/SeamusWaldron/cubesolver/internal/move"
)

func TestNewIsSolved(t *testing.T) {
	if !New().IsSolved() {
		t.Fatal("New() should be solved")
	}
}

func TestApplyFourQuartersIsIdentity(t *testing.T) {
	for _, f := range []move.Move{move.U, move.D, move.F, move.B, move.L, move.R} {
		c := New()
		for i := 0; i < 4; i++ {
			c.Apply(f)
		}
		if !c.IsSolved() {
			t.Errorf("applying %v four times did not return to solved", f)
		}
	}
}

func TestApplyTwiceEqualsHalfTurn(t *testing.T) {
	for _, pair := range [][2]move.Move{
		{move.U, move.U2}, {move.D, move.D2}, {move.F, move.F2},
		{move.B, move.B2}, {move.L, move.L2}, {move.R, move.R2},
	} {
		quarter, half := pair[0], pair[1]
		c1 := New()
		c1.Apply(quarter)
		c1.Apply(quarter)
		c2 := New()
		c2.Apply(half)
		if *c1 != *c2 {
			t.Errorf("%v twice should equal %v", quarter, half)
		}
	}
}

func TestInvertUndoesScramble(t *testing.T) {
	scramble := []move.Move{move.R, move.U, move.RPrime, move.UPrime, move.F, move.B2, move.L}
	c := New()
	c.ApplySequence(scramble)
	for i := len(scramble) - 1; i >= 0; i-- {
		c.Apply(scramble[i].Invert())
	}
	if !c.IsSolved() {
		t.Fatal("applying a scramble then its inverse in reverse order should solve the cube")
	}
}

func TestFromScrambleMatchesManualApply(t *testing.T) {
	c1, err := FromScramble("R U R' U' F2")
	if err != nil {
		t.Fatalf("FromScramble: %v", err)
	}
	c2 := New()
	c2.ApplySequence([]move.Move{move.R, move.U, move.RPrime, move.UPrime, move.F2})
	if *c1 != *c2 {
		t.Fatal("FromScramble should match manual ApplySequence")
	}
}

func TestFromScrambleRejectsBadNotation(t *testing.T) {
	if _, err := FromScramble("R U X"); err != move.ErrParseMove {
		t.Errorf("expected ErrParseMove, got %v", err)
	}
}

func TestOrientationSumInvariant(t *testing.T) {
	scramble := []move.Move{
		move.R, move.U2, move.F, move.LPrime, move.D, move.B, move.RPrime,
		move.U, move.F2, move.L, move.DPrime, move.B2,
	}
	c := New()
	for _, m := range scramble {
		c.Apply(m)

		coSum := 0
		seenCorner := [8]bool{}
		for _, corner := range c.Corners {
			coSum += int(corner.Orientation)
			seenCorner[corner.Piece] = true
		}
		if coSum%3 != 0 {
			t.Fatalf("corner orientation sum %d not divisible by 3 after %v", coSum, m)
		}
		for i, seen := range seenCorner {
			if !seen {
				t.Fatalf("corner piece %d missing after %v", i, m)
			}
		}

		eoSum := 0
		seenEdge := [12]bool{}
		for _, edge := range c.Edges {
			eoSum += int(edge.Orientation)
			seenEdge[edge.Piece] = true
		}
		if eoSum%2 != 0 {
			t.Fatalf("edge orientation sum %d not even after %v", eoSum, m)
		}
		for i, seen := range seenEdge {
			if !seen {
				t.Fatalf("edge piece %d missing after %v", i, m)
			}
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	c := New()
	clone := c.Clone()
	clone.Apply(move.R)
	if !c.IsSolved() {
		t.Fatal("mutating a clone should not affect the original")
	}
	if clone.IsSolved() {
		t.Fatal("clone should reflect the applied move")
	}
}

func TestFaceColorsCentersMatchSolvedScheme(t *testing.T) {
	c := New()
	tests := []struct {
		face   move.Face
		center Color
	}{
		{move.FaceU, White}, {move.FaceD, Yellow}, {move.FaceF, Red},
		{move.FaceB, Orange}, {move.FaceL, Green}, {move.FaceR, Blue},
	}
	for _, tc := range tests {
		colors := c.FaceColors(tc.face)
		if colors[4] != tc.center {
			t.Errorf("face %v center = %v, want %v", tc.face, colors[4], tc.center)
		}
		for _, col := range colors {
			if col != tc.center {
				t.Errorf("solved face %v should be uniform, got %v on center %v", tc.face, col, tc.center)
			}
		}
	}
}
