// Package render provides text helpers for terminal views: sanitizing
// media metadata and fitting text into a fixed number of cells.
package render

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// Sanitize removes control characters (except tab) and invalid UTF-8
// bytes. Tags and cue text come from files and may contain either.
func Sanitize(s string) string {
	if utf8.ValidString(s) && strings.IndexFunc(s, isControl) < 0 && !strings.ContainsRune(s, '\u00a0') {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		i += size
		if r == utf8.RuneError && size <= 1 {
			continue
		}
		if isControl(r) {
			continue
		}
		if r == '\u00a0' {
			r = ' '
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isControl(r rune) bool {
	return r != '\t' && unicode.IsControl(r)
}

// Truncate shortens s to maxWidth cells, ending with "…" when cut.
// ANSI styling in s is preserved.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	return ansi.Truncate(s, maxWidth, "…")
}

// Pad fills s with spaces up to width cells.
func Pad(s string, width int) string {
	if w := ansi.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

// Fit sanitizes, truncates and pads s to exactly width cells.
func Fit(s string, width int) string {
	return Pad(Truncate(Sanitize(s), width), width)
}

// Center places s in the middle of width cells.
func Center(s string, width int) string {
	s = Truncate(s, width)
	lead := (width - ansi.StringWidth(s)) / 2
	return Pad(strings.Repeat(" ", lead)+s, width)
}

// Row creates a row with left and right aligned content separated by
// at least one space.
func Row(left, right string, width int) string {
	gap := max(width-ansi.StringWidth(left)-ansi.StringWidth(right), 1)
	return left + strings.Repeat(" ", gap) + right
}

// Width returns the cell width of a plain glyph, counting East Asian
// ambiguous runes as narrow.
func Width(s string) int {
	return runewidth.StringWidth(s)
}
