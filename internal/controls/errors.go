package controls

import "errors"

// NotFoundError reports a hook class the chrome does not provide.
type NotFoundError struct {
	Hook string
}

func (e *NotFoundError) Error() string {
	return "controls: element ." + e.Hook + " not found"
}

var (
	// ErrDestroyed is returned by operations on a destroyed player.
	ErrDestroyed = errors.New("controls: player destroyed")
	// ErrInitialized is returned by a second Init.
	ErrInitialized = errors.New("controls: player already initialized")
	// ErrUnknownLanguage is returned when the playing item has no variant
	// for the requested language.
	ErrUnknownLanguage = errors.New("controls: no variant for language")
	// ErrNoFullscreen is returned when the platform exposes no fullscreen
	// method to call.
	ErrNoFullscreen = errors.New("controls: fullscreen not supported")
)
