package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// fallbackGray stands in for ANSI palette colors, which have no RGB value
// to blend.
var fallbackGray = colorful.Color{R: 0.5, G: 0.5, B: 0.5}

// Gradient colors each grapheme of text along a ramp from one color to
// the other. The played part of the progress bar uses it.
func Gradient(text string, from, to lipgloss.Color) string {
	return paint(text, lipgloss.NewStyle(), from, to)
}

// BoldGradient is Gradient in bold, for the item title.
func BoldGradient(text string, from, to lipgloss.Color) string {
	return paint(text, lipgloss.NewStyle().Bold(true), from, to)
}

func paint(text string, base lipgloss.Style, from, to lipgloss.Color) string {
	var clusters []string
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		clusters = append(clusters, g.Str())
	}
	switch len(clusters) {
	case 0:
		return ""
	case 1:
		return base.Foreground(from).Render(text)
	}

	var b strings.Builder
	for i, c := range ramp(len(clusters), from, to) {
		b.WriteString(base.Foreground(c).Render(clusters[i]))
	}
	return b.String()
}

// ramp returns n colors evenly spaced in HCL between from and to.
func ramp(n int, from, to lipgloss.Color) []lipgloss.Color {
	if n < 2 {
		return []lipgloss.Color{from}
	}
	a, b := toColorful(from), toColorful(to)
	out := make([]lipgloss.Color, n)
	for i := range n {
		out[i] = lipgloss.Color(a.BlendHcl(b, float64(i)/float64(n-1)).Clamped().Hex())
	}
	return out
}

func toColorful(c lipgloss.Color) colorful.Color {
	if col, err := colorful.Hex(string(c)); err == nil {
		return col
	}
	return fallbackGray
}
