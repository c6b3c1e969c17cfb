// Package icons maps the chrome's data-icon names to terminal glyphs.
package icons

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icon names, as carried by the data-icon attribute of chrome buttons.
const (
	Play       = "play"
	Pause      = "pause"
	Reload     = "reload"
	Prev       = "prev"
	Next       = "next"
	Muted      = "muted"
	Low        = "low"
	Full       = "full"
	Enter      = "enter"
	Exit       = "exit"
	Captions   = "captions"
	Settings   = "settings"
	Playlist   = "playlist"
	Bookmark   = "bookmark"
	Close      = "close"
	Fullscreen = "full-screen"
)

var (
	nerdIcons = map[string]string{
		Play:     "\U000F040A", // nf-md-play
		Pause:    "\U000F03E4", // nf-md-pause
		Reload:   "\U000F0453", // nf-md-reload
		Prev:     "\U000F04AE", // nf-md-skip_previous
		Next:     "\U000F04AD", // nf-md-skip_next
		Muted:    "\U000F0581", // nf-md-volume_off
		Low:      "\U000F0580", // nf-md-volume_medium
		Full:     "\U000F057E", // nf-md-volume_high
		Enter:    "\U000F0293", // nf-md-fullscreen
		Exit:     "\U000F0294", // nf-md-fullscreen_exit
		Captions: "\U000F016E", // nf-md-closed_caption
		Settings: "\U000F0493", // nf-md-cog
		Playlist: "\U000F0CB8", // nf-md-playlist_music
		Bookmark: "\U000F00C0", // nf-md-bookmark
		Close:    "\U000F0156", // nf-md-close
	}

	unicodeIcons = map[string]string{
		Play:     "▶",
		Pause:    "⏸",
		Reload:   "↻",
		Prev:     "⏮",
		Next:     "⏭",
		Muted:    "🔇",
		Low:      "🔉",
		Full:     "🔊",
		Enter:    "⤢",
		Exit:     "⤡",
		Captions: "㏄",
		Settings: "⚙",
		Playlist: "☰",
		Bookmark: "🔖",
		Close:    "✕",
	}

	noneIcons = map[string]string{
		Play:     "[>]",
		Pause:    "[||]",
		Reload:   "[<<]",
		Prev:     "|<",
		Next:     ">|",
		Muted:    "[m]",
		Low:      "[v]",
		Full:     "[V]",
		Enter:    "[ ]",
		Exit:     "[x]",
		Captions: "CC",
		Settings: "[*]",
		Playlist: "[=]",
		Bookmark: "[+]",
		Close:    "x",
	}

	// current holds the active icon set
	current = noneIcons
)

// Init selects the icon set. Call it once at startup with the config value;
// unknown styles fall back to plain text.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleUnicode:
		current = unicodeIcons
	default:
		current = noneIcons
	}
}

// Glyph returns the glyph for an icon name, or "" for unknown names.
func Glyph(name string) string {
	return current[name]
}

// Label returns the glyph for name, falling back to fallback when the
// name has no glyph.
func Label(name, fallback string) string {
	if g := Glyph(name); g != "" {
		return g
	}
	return fallback
}
