// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Player actions, resolved from document keydown key names
	ActionPlayPause      Action = "play_pause"
	ActionExitFullscreen Action = "exit_fullscreen"
	ActionToggleMute     Action = "toggle_mute"

	// Terminal actions, resolved from terminal key strings
	ActionQuit             Action = "quit"
	ActionHelp             Action = "help"
	ActionNextItem         Action = "next_item"         // clicks the next button
	ActionPrevItem         Action = "prev_item"         // clicks the prev button
	ActionToggleFullscreen Action = "toggle_fullscreen" // clicks the fullscreen button
	ActionToggleCaptions   Action = "toggle_captions"   // clicks the captions button
	ActionToggleSettings   Action = "toggle_settings"   // clicks the settings button
	ActionTogglePlaylist   Action = "toggle_playlist"   // clicks the playlist button
)
