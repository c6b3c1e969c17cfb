package icons

import "testing"

var names = []string{
	Play, Pause, Reload, Prev, Next, Muted, Low, Full,
	Enter, Exit, Captions, Settings, Playlist, Bookmark, Close,
}

func TestInit(t *testing.T) {
	tests := []struct {
		style string
		want  map[string]string
	}{
		{"nerd", nerdIcons},
		{"unicode", unicodeIcons},
		{"none", noneIcons},
		{"", noneIcons},
		{"NERD", noneIcons},
	}
	for _, tt := range tests {
		t.Run(tt.style, func(t *testing.T) {
			Init(tt.style)
			if got := Glyph(Play); got != tt.want[Play] {
				t.Errorf("Glyph(play) = %q, want %q", got, tt.want[Play])
			}
		})
	}
	Init("none")
}

func TestEverySetIsComplete(t *testing.T) {
	for style, set := range map[string]map[string]string{
		"nerd":    nerdIcons,
		"unicode": unicodeIcons,
		"none":    noneIcons,
	} {
		for _, n := range names {
			if set[n] == "" {
				t.Errorf("%s: no glyph for %q", style, n)
			}
		}
	}
}

func TestLabel(t *testing.T) {
	Init("unicode")
	defer Init("none")

	if got := Label(Settings, "S"); got != "⚙" {
		t.Errorf("Label(settings) = %q", got)
	}
	if got := Label("unknown", "?"); got != "?" {
		t.Errorf("Label(unknown) = %q, want fallback", got)
	}
}
