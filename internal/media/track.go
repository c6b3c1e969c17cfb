package media

import (
	"slices"

	"github.com/llehouerou/vplayer/internal/dom"
)

// TrackMode is a text track display mode.
type TrackMode string

const (
	ModeDisabled TrackMode = "disabled"
	ModeHidden   TrackMode = "hidden"
	ModeShowing  TrackMode = "showing"
)

// Cue is a timed text segment, active while Start <= t < End.
type Cue struct {
	Start float64
	End   float64
	Text  string
}

// TextTrack is a list of cues plus the set currently active. It fires
// EventCueChange when the active set changes and the track is not disabled.
type TextTrack struct {
	dom.Target

	Kind     string
	Label    string
	Language string
	Default  bool

	mode   TrackMode
	cues   []Cue
	active []Cue
}

// NewTextTrack returns a disabled track with the given cues.
func NewTextTrack(src TrackSource, cues []Cue) *TextTrack {
	return &TextTrack{
		Kind:     src.Kind,
		Label:    src.Label,
		Language: src.Lang,
		Default:  src.Default,
		mode:     ModeDisabled,
		cues:     slices.Clone(cues),
	}
}

// Mode returns the display mode.
func (t *TextTrack) Mode() TrackMode { return t.mode }

// SetMode changes the display mode. Disabling clears the active cues.
func (t *TextTrack) SetMode(m TrackMode) {
	t.mode = m
	if m == ModeDisabled {
		t.active = nil
	}
}

// Cues returns every cue.
func (t *TextTrack) Cues() []Cue { return slices.Clone(t.cues) }

// ActiveCues returns the cues active at the last update.
func (t *TextTrack) ActiveCues() []Cue { return slices.Clone(t.active) }

// Update recomputes the active cues for position pos and fires
// EventCueChange if they changed. It reports whether they changed.
func (t *TextTrack) Update(pos float64) bool {
	if t.mode == ModeDisabled {
		return false
	}
	var active []Cue
	for _, c := range t.cues {
		if pos >= c.Start && pos < c.End {
			active = append(active, c)
		}
	}
	if slices.Equal(active, t.active) {
		return false
	}
	t.active = active
	t.Emit(dom.NewEvent(EventCueChange))
	return true
}
