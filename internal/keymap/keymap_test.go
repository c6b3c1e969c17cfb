//nolint:goconst // test cases intentionally repeat strings for readability
package keymap

import (
	"slices"
	"testing"
)

func TestByContext(t *testing.T) {
	tests := []struct {
		context string
		want    int
	}{
		{"player", 3},
		{"terminal", 8},
		{"unknown", 0},
	}
	for _, tt := range tests {
		t.Run(tt.context, func(t *testing.T) {
			result := ByContext(tt.context)
			if len(result) != tt.want {
				t.Errorf("ByContext(%q) returned %d items, want %d", tt.context, len(result), tt.want)
			}
			for _, b := range result {
				if b.Context != tt.context {
					t.Errorf("binding context = %q, want %q", b.Context, tt.context)
				}
			}
		})
	}
}

func TestPlayerResolver(t *testing.T) {
	r := PlayerResolver()
	tests := []struct {
		key  string
		want Action
	}{
		{" ", ActionPlayPause},
		{"Escape", ActionExitFullscreen},
		{"m", ActionToggleMute},
		{"M", ActionToggleMute},
		{"q", ""},
		{"Enter", ""},
	}
	for _, tt := range tests {
		if got := r.Resolve(tt.key); got != tt.want {
			t.Errorf("Resolve(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestResolver_KeysForDedupes(t *testing.T) {
	r := NewResolver([]Binding{
		{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "terminal"},
		{ActionQuit, []string{"q"}, "Quit", "other"},
	})
	if got := r.KeysFor(ActionQuit); !slices.Equal(got, []string{"q", "ctrl+c"}) {
		t.Errorf("KeysFor(quit) = %v, want [q ctrl+c]", got)
	}
	if got := r.KeysFor(ActionHelp); len(got) != 0 {
		t.Errorf("KeysFor(help) = %v, want empty", got)
	}
}

func TestAll_NoDuplicateKeysWithinContext(t *testing.T) {
	seen := map[string]Action{}
	for _, b := range All {
		for _, k := range b.Keys {
			id := b.Context + "/" + k
			if prev, ok := seen[id]; ok && prev != b.Action {
				t.Errorf("key %q bound to %q and %q", id, prev, b.Action)
			}
			seen[id] = b.Action
		}
	}
}

func TestResolver_FirstBindingKeepsKey(t *testing.T) {
	r := NewResolver([]Binding{
		{ActionToggleMute, []string{"m"}, "Mute", "player"},
		{ActionQuit, []string{"m", "q"}, "Quit", "player"},
	})
	if got := r.Resolve("m"); got != ActionToggleMute {
		t.Errorf("Resolve(m) = %q, want %q", got, ActionToggleMute)
	}
	if got := r.Resolve("q"); got != ActionQuit {
		t.Errorf("Resolve(q) = %q, want %q", got, ActionQuit)
	}
}
