package render

import (
	"strings"
	"testing"

	"github.com/SeamusWaldron/cubesolver/internal/cube"
)

func TestCubeRendersNineRowsOfContent(t *testing.T) {
	out := Cube(cube.New())
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 11 {
		t.Fatalf("got %d lines, want 11 (3 U rows, blank, 3 middle rows, blank, 3 D rows)", len(lines))
	}
	if strings.TrimSpace(lines[3]) != "" {
		t.Errorf("expected a blank separator line between U and the middle band, got %q", lines[3])
	}
	if strings.TrimSpace(lines[7]) != "" {
		t.Errorf("expected a blank separator line between the middle band and D, got %q", lines[7])
	}
}

func TestCubeRendersDifferentlyAfterAMove(t *testing.T) {
	solved := Cube(cube.New())
	c, err := cube.FromScramble("R U R' U'")
	if err != nil {
		t.Fatalf("FromScramble: %v", err)
	}
	scrambled := Cube(c)
	if solved == scrambled {
		t.Error("expected a scrambled cube to render differently from a solved one")
	}
}
