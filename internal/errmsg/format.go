// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Startup
	OpLoadConfig   Op = "load configuration"
	OpOpenState    Op = "open preferences"
	OpCollectMedia Op = "collect media files"
	OpInitPlayer   Op = "initialize player"
	OpSetupLog     Op = "set up logging"

	// Playback
	OpPlaybackStart Op = "start playback"
	OpLoadMedia     Op = "load media"

	// Navigation
	OpNavigate       Op = "switch item"
	OpChangeLanguage Op = "change language"

	// Platform
	OpFullscreen Op = "toggle fullscreen"

	// Preferences
	OpSavePrefs Op = "save preferences"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
