// internal/playback/state.go
package playback

// State represents the playback state of the media element as the chrome
// sees it.
//
//	┌──────────┐      play       ┌──────────┐
//	│  Paused  │ ───────────────▶│  Playing │◀──┐
//	└──────────┘◀─────────────── └──────────┘   │
//	                  pause           │         │ play
//	                            ended │         │ (rewind first)
//	                                  ▼         │
//	                             ┌──────────┐   │
//	                             │  Ended   │───┘
//	                             └──────────┘
//
// Transitions only happen on notifications from the media (play, pause,
// ended). Requests made by the user never change the state directly.
// Ended shows the reload button; a pause notification after ended keeps
// the state at Ended.
type State int

const (
	StatePaused State = iota
	StatePlaying
	StateEnded
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StatePaused:
		return "Paused"
	case StatePlaying:
		return "Playing"
	case StateEnded:
		return "Ended"
	default:
		return "Unknown"
	}
}

// IsActive returns true while media is playing.
func (s State) IsActive() bool {
	return s == StatePlaying
}

// Button is the play button face for a state.
type Button int

const (
	ButtonPlay Button = iota
	ButtonPause
	ButtonReload
)

// String returns the icon name.
func (b Button) String() string {
	switch b {
	case ButtonPlay:
		return "play"
	case ButtonPause:
		return "pause"
	case ButtonReload:
		return "reload"
	default:
		return "unknown"
	}
}

// Title returns the button tooltip.
func (b Button) Title() string {
	switch b {
	case ButtonPause:
		return "Pause"
	case ButtonReload:
		return "Reload"
	default:
		return "Play"
	}
}

// ButtonFor returns the button face shown in state s.
func ButtonFor(s State) Button {
	switch s {
	case StatePlaying:
		return ButtonPause
	case StateEnded:
		return ButtonReload
	default:
		return ButtonPlay
	}
}
