package controls

import (
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/llehouerou/vplayer/internal/chrome"
	"github.com/llehouerou/vplayer/internal/dom"
	"github.com/llehouerou/vplayer/internal/media"
)

// CaptionState is what the caption overlay shows.
type CaptionState struct {
	Enabled       bool
	ActiveCueText string
}

// Captions mirrors the default text track into the caption overlay.
type Captions struct {
	sess  *Session
	log   logrus.FieldLogger
	btn   *dom.Element
	block *dom.Element

	enabled bool
	track   *media.TextTrack
	cue     bindings
}

func newCaptions(sess *Session, f *finder) *Captions {
	return &Captions{
		sess:  sess,
		log:   sess.logger("captions"),
		btn:   f.find(chrome.ClassCaptionButton),
		block: f.find(chrome.ClassCaptionBlock),
	}
}

// Button returns the caption button.
func (c *Captions) Button() *dom.Element { return c.btn }

// Available reports whether the media has a default text track.
func (c *Captions) Available() bool { return c.track != nil }

// State returns the enabled flag and the overlay text.
func (c *Captions) State() CaptionState {
	return CaptionState{Enabled: c.enabled, ActiveCueText: c.block.Text()}
}

// Init is run on every loadedmetadata: all text tracks are hidden and the
// default one is followed when captions are enabled. Without tracks the
// button is disabled.
func (c *Captions) Init() {
	c.detach()
	c.track = nil
	c.enabled = c.sess.Config.EnableCaptions
	c.btn.SetAttr("aria-pressed", strconv.FormatBool(c.enabled))

	tracks := c.sess.Media.TextTracks()
	if len(tracks) == 0 {
		c.btn.AddClass(chrome.StateDisabled)
		c.show(false)
		return
	}
	c.btn.RemoveClass(chrome.StateDisabled)
	for _, t := range tracks {
		t.SetMode(media.ModeHidden)
	}
	for _, t := range tracks {
		if t.Default {
			c.track = t
			break
		}
	}
	c.log.WithFields(logrus.Fields{
		"tracks":  len(tracks),
		"default": c.track != nil,
	}).Debug("text tracks ready")

	if c.enabled {
		c.enable()
	} else {
		c.disable()
	}
}

// Toggle flips captions on the default track. Without one it does nothing.
func (c *Captions) Toggle() {
	if c.track == nil {
		return
	}
	c.enabled = !c.enabled
	c.sess.Config.EnableCaptions = c.enabled
	c.btn.SetAttr("aria-pressed", strconv.FormatBool(c.enabled))
	if c.enabled {
		c.enable()
	} else {
		c.disable()
	}
}

func (c *Captions) enable() {
	if c.track == nil {
		return
	}
	c.track.SetMode(media.ModeHidden)
	if len(c.cue) == 0 {
		c.cue.add(c.track, media.EventCueChange, func(e *dom.Event) {
			e.PreventDefault()
			c.show(true)
		})
	}
	c.show(true)
}

func (c *Captions) disable() {
	if c.track == nil {
		return
	}
	c.show(false)
	c.track.SetMode(media.ModeDisabled)
}

// show writes the first active cue, or clears the overlay.
func (c *Captions) show(on bool) {
	if !on || c.track == nil {
		c.block.SetText("")
		return
	}
	cues := c.track.ActiveCues()
	if len(cues) > 0 && cues[0].Text != "" {
		c.block.SetText(cues[0].Text)
		return
	}
	c.block.SetText("")
}

// ListenerCount returns the number of cue listeners installed.
func (c *Captions) ListenerCount() int { return len(c.cue) }

func (c *Captions) detach() {
	c.cue.removeAll()
}

// Destroy removes the cue listener, disables the button and clears the
// overlay.
func (c *Captions) Destroy() {
	c.detach()
	c.btn.AddClass(chrome.StateDisabled)
	c.show(false)
	c.track = nil
}
