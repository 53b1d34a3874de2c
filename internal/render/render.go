// Package render draws a cube's facelets as an ANSI-colored net for
// terminal display.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/SeamusWaldron/cubesolver/internal/cube"
	"github.com/SeamusWaldron/cubesolver/internal/move"
)

// sticker is the printed width of one facelet cell.
const sticker = "  "

// Stickers are drawn with ANSI-256 colors whether or not stdout is a
// terminal; without this, lipgloss drops the colors off-terminal and
// every sticker renders as plain spaces.
func init() {
	lipgloss.SetColorProfile(termenv.ANSI256)
}

var colorStyle = map[cube.Color]lipgloss.Style{
	cube.White:  lipgloss.NewStyle().Background(lipgloss.Color("255")).Foreground(lipgloss.Color("0")),
	cube.Yellow: lipgloss.NewStyle().Background(lipgloss.Color("226")).Foreground(lipgloss.Color("0")),
	cube.Red:    lipgloss.NewStyle().Background(lipgloss.Color("196")).Foreground(lipgloss.Color("0")),
	cube.Orange: lipgloss.NewStyle().Background(lipgloss.Color("208")).Foreground(lipgloss.Color("0")),
	cube.Green:  lipgloss.NewStyle().Background(lipgloss.Color("46")).Foreground(lipgloss.Color("0")),
	cube.Blue:   lipgloss.NewStyle().Background(lipgloss.Color("21")).Foreground(lipgloss.Color("15")),
}

func renderSticker(c cube.Color) string {
	return colorStyle[c].Render(sticker)
}

func row(colors [9]cube.Color, r int) string {
	var b strings.Builder
	for i := 0; i < 3; i++ {
		b.WriteString(renderSticker(colors[r*3+i]))
	}
	return b.String()
}

// Cube renders c as an unfolded net:
//
//	      U U U
//	      U U U
//	      U U U
//
//	L L L F F F R R R B B B
//	L L L F F F R R R B B B
//	L L L F F F R R R B B B
//
//	      D D D
//	      D D D
//	      D D D
func Cube(c *cube.Cube) string {
	u := c.FaceColors(move.FaceU)
	d := c.FaceColors(move.FaceD)
	f := c.FaceColors(move.FaceF)
	b := c.FaceColors(move.FaceB)
	l := c.FaceColors(move.FaceL)
	r := c.FaceColors(move.FaceR)

	indent := strings.Repeat(" ", len(sticker)*3)

	var out strings.Builder
	for i := 0; i < 3; i++ {
		out.WriteString(indent)
		out.WriteString(row(u, i))
		out.WriteString("\n")
	}
	out.WriteString("\n")
	for i := 0; i < 3; i++ {
		out.WriteString(row(l, i))
		out.WriteString(row(f, i))
		out.WriteString(row(r, i))
		out.WriteString(row(b, i))
		out.WriteString("\n")
	}
	out.WriteString("\n")
	for i := 0; i < 3; i++ {
		out.WriteString(indent)
		out.WriteString(row(d, i))
		out.WriteString("\n")
	}
	return out.String()
}
