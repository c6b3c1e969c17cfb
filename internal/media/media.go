// Package media defines the media control primitive the player chrome is
// bound to: playback position, volume, ready state, buffered ranges, text
// tracks and the notifications it emits.
package media

import (
	"github.com/llehouerou/vplayer/internal/dom"
)

// Media event types.
const (
	EventPlay           = "play"
	EventPause          = "pause"
	EventEnded          = "ended"
	EventTimeUpdate     = "timeupdate"
	EventProgress       = "progress"
	EventLoadedData     = "loadeddata"
	EventLoadedMetadata = "loadedmetadata"
	EventVolumeChange   = "volumechange"
	EventRateChange     = "ratechange"
	EventEmptied        = "emptied"
	EventCueChange      = "cuechange"
	EventError          = "error"
)

// ReadyState mirrors the HTML media readiness levels.
type ReadyState int

const (
	HaveNothing ReadyState = iota
	HaveMetadata
	HaveCurrentData
	HaveFutureData
	HaveEnoughData
)

// String returns the state name for debugging.
func (r ReadyState) String() string {
	switch r {
	case HaveNothing:
		return "HaveNothing"
	case HaveMetadata:
		return "HaveMetadata"
	case HaveCurrentData:
		return "HaveCurrentData"
	case HaveFutureData:
		return "HaveFutureData"
	case HaveEnoughData:
		return "HaveEnoughData"
	default:
		return "Unknown"
	}
}

// TrackSource describes a text track attached to a source.
type TrackSource struct {
	Src     string `koanf:"src"`
	Kind    string `koanf:"kind"`
	Label   string `koanf:"label"`
	Lang    string `koanf:"lang"`
	Default bool   `koanf:"default"`
}

// Source is what gets bound to the media element.
type Source struct {
	ID     string
	URL    string
	Poster string
	Type   string
	Tracks []TrackSource
}

// Element is the media control primitive.
type Element interface {
	AddEventListener(typ string, fn dom.Listener) dom.ListenerID
	RemoveEventListener(id dom.ListenerID) bool
	ListenerCount() int

	// Source returns the bound source.
	Source() Source
	// SetSource binds a new source and starts loading it.
	SetSource(src Source)
	// Load restarts loading the bound source.
	Load()

	// Play requests playback. State changes are reported through events.
	Play() error
	Pause()

	CurrentTime() float64
	SetCurrentTime(t float64)
	// Duration is NaN until metadata is known.
	Duration() float64

	// Volume is in [0, 1].
	Volume() float64
	SetVolume(v float64)
	Muted() bool
	SetMuted(m bool)

	Paused() bool
	Ended() bool

	PlaybackRate() float64
	SetPlaybackRate(r float64)

	ReadyState() ReadyState
	Buffered() TimeRanges
	TextTracks() []*TextTrack
}
