package keymap

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "player" (document key names) or "terminal"
}

// All contains all key bindings for help generation.
var All = []Binding{
	// Player
	{ActionPlayPause, []string{" "}, "Play/pause", "player"},
	{ActionExitFullscreen, []string{"Escape"}, "Exit fullscreen", "player"},
	{ActionToggleMute, []string{"m", "M"}, "Mute/unmute", "player"},

	// Terminal
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "terminal"},
	{ActionHelp, []string{"?"}, "Show help", "terminal"},
	{ActionNextItem, []string{"n"}, "Next item", "terminal"},
	{ActionPrevItem, []string{"p"}, "Previous item", "terminal"},
	{ActionToggleFullscreen, []string{"f"}, "Fullscreen", "terminal"},
	{ActionToggleCaptions, []string{"c"}, "Captions", "terminal"},
	{ActionToggleSettings, []string{"s"}, "Settings", "terminal"},
	{ActionTogglePlaylist, []string{"l"}, "Playlist", "terminal"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

// PlayerResolver returns a resolver for the document keydown shortcuts.
func PlayerResolver() *Resolver {
	return NewResolver(ByContext("player"))
}

// TerminalResolver returns a resolver for the terminal-only shortcuts.
func TerminalResolver() *Resolver {
	return NewResolver(ByContext("terminal"))
}
