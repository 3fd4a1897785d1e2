package widget

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/rileyhilliard/widgetmon/internal/layout"
)

// canvas is a fixed-size grid of terminal lines that blocks are painted onto.
// Anything painted outside the grid is cropped.
type canvas struct {
	width int
	lines []string
}

func newCanvas(width, height int) *canvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	blank := strings.Repeat(" ", width)
	lines := make([]string, height)
	for i := range lines {
		lines[i] = blank
	}
	return &canvas{width: width, lines: lines}
}

// draw paints block with its top-left corner at at. Negative coordinates
// and overflow past the right or bottom edge are cut off.
func (c *canvas) draw(at layout.Point, block string) {
	for i, line := range strings.Split(block, "\n") {
		y := at.Y + i
		if y < 0 || y >= len(c.lines) {
			continue
		}

		start := max(0, -at.X)
		end := min(ansi.StringWidth(line), c.width-at.X)
		if end <= start {
			continue
		}

		seg := ansi.Cut(line, start, end)
		dst := max(at.X, 0)
		row := c.lines[y]
		c.lines[y] = ansi.Cut(row, 0, dst) + seg + ansi.Cut(row, dst+end-start, c.width)
	}
}

func (c *canvas) String() string {
	return strings.Join(c.lines, "\n")
}
