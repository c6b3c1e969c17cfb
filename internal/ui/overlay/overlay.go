// Package overlay composes styled terminal blocks onto a base view.
package overlay

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Canvas is a fixed-size grid of styled lines.
type Canvas struct {
	width int
	lines []string
}

// New returns a blank canvas.
func New(width, height int) *Canvas {
	c := &Canvas{width: max(width, 0), lines: make([]string, max(height, 0))}
	blank := strings.Repeat(" ", c.width)
	for i := range c.lines {
		c.lines[i] = blank
	}
	return c
}

// Place draws block with its top-left corner at (col, row). Cells of the
// block replace the base; parts falling outside the canvas are clipped.
// ANSI sequences in both base and block are preserved.
func (c *Canvas) Place(block string, col, row int) {
	if block == "" {
		return
	}
	for i, line := range strings.Split(block, "\n") {
		y := row + i
		if y < 0 || y >= len(c.lines) {
			continue
		}
		start, w := col, ansi.StringWidth(line)
		if start < 0 {
			line = ansi.Cut(line, -start, w)
			w += start
			start = 0
		}
		if start >= c.width || w <= 0 {
			continue
		}
		end := min(start+w, c.width)
		line = ansi.Truncate(line, end-start, "")

		base := c.lines[y]
		c.lines[y] = ansi.Cut(base, 0, start) + line + ansi.Cut(base, end, c.width)
	}
}

// String joins the canvas lines.
func (c *Canvas) String() string {
	return strings.Join(c.lines, "\n")
}

// Compose overlays content on top of a base view. Spaces at the edges of
// overlay lines are transparent.
func Compose(base, overlay string, width int) string {
	baseLines := strings.Split(base, "\n")
	c := &Canvas{width: width, lines: make([]string, len(baseLines))}
	for i, l := range baseLines {
		if pad := width - ansi.StringWidth(l); pad > 0 {
			l += strings.Repeat(" ", pad)
		}
		c.lines[i] = l
	}
	for i, l := range strings.Split(overlay, "\n") {
		plain := ansi.Strip(l)
		if strings.TrimSpace(plain) == "" {
			continue
		}
		lead := len(plain) - len(strings.TrimLeft(plain, " "))
		visible := ansi.StringWidth(strings.TrimSpace(plain))
		c.Place(ansi.Cut(l, lead, lead+visible), lead, i)
	}
	return c.String()
}
