package overlay

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestCanvas_Place(t *testing.T) {
	tests := []struct {
		name  string
		block string
		col   int
		row   int
		want  string
	}{
		{"inside", "ab", 1, 0, " ab  \n     "},
		{"second row", "xy\nzw", 3, 0, "   xy\n   zw"},
		{"clipped right", "abcd", 3, 1, "     \n   ab"},
		{"clipped left", "abcd", -2, 0, "cd   \n     "},
		{"below", "ab", 0, 5, "     \n     "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(5, 2)
			c.Place(tt.block, tt.col, tt.row)
			assert.Equal(t, tt.want, c.String())
		})
	}
}

func TestCanvas_PlaceKeepsStyles(t *testing.T) {
	c := New(6, 1)
	c.Place("\x1b[1mab\x1b[0m", 2, 0)
	assert.Equal(t, "  ab  ", ansi.Strip(c.String()))
	assert.Equal(t, 6, ansi.StringWidth(c.String()))
}

func TestCompose(t *testing.T) {
	got := Compose("aaaa\nbbbb", "  x \n", 4)
	assert.Equal(t, "aaxa\nbbbb", got)
}
