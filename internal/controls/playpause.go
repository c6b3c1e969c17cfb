package controls

import (
	"github.com/sirupsen/logrus"

	"github.com/llehouerou/vplayer/internal/chrome"
	"github.com/llehouerou/vplayer/internal/dom"
	"github.com/llehouerou/vplayer/internal/errmsg"
	"github.com/llehouerou/vplayer/internal/playback"
)

// PlayButton drives play/pause and mirrors the playback state machine on
// the play button.
type PlayButton struct {
	sess    *Session
	log     logrus.FieldLogger
	btn     *dom.Element
	machine *playback.Machine
}

func newPlayButton(sess *Session, f *finder, m *playback.Machine) *PlayButton {
	return &PlayButton{
		sess:    sess,
		log:     sess.logger("playback"),
		btn:     f.find(chrome.ClassPlayButton),
		machine: m,
	}
}

// Button returns the play button element.
func (c *PlayButton) Button() *dom.Element { return c.btn }

// Toggle plays a paused or ended media and pauses a playing one.
func (c *PlayButton) Toggle() {
	m := c.sess.Media
	if m.Paused() || m.Ended() {
		c.Play(false)
		return
	}
	c.Pause()
}

// Play starts playback. From the ended state the position is rewound to
// the start first. Autoplay may start muted when configured to.
func (c *PlayButton) Play(autoplay bool) {
	m := c.sess.Media
	if c.machine.NeedsRewind() || m.Ended() {
		m.SetCurrentTime(0)
	}
	if autoplay && c.sess.Config.AutoplayMuted {
		m.SetMuted(true)
	}
	if err := m.Play(); err != nil {
		c.log.WithError(err).WithField("autoplay", autoplay).Warn("play request failed")
		c.sess.report(errmsg.OpPlaybackStart, err)
	}
}

// Pause pauses playback.
func (c *PlayButton) Pause() {
	c.sess.Media.Pause()
}

// Observe feeds a media event to the state machine and redraws the button
// when the state changed.
func (c *PlayButton) Observe(event string) (playback.StateChange, bool) {
	change, ok := c.machine.Observe(event)
	if ok {
		c.log.WithFields(logrus.Fields{
			"event": event,
			"from":  change.Previous,
			"to":    change.Current,
		}).Debug("playback state")
		c.render()
	}
	return change, ok
}

// Reset returns the machine to paused for a newly loaded source.
func (c *PlayButton) Reset() {
	c.machine.Reset()
	c.render()
}

func (c *PlayButton) render() {
	b := c.machine.Button()
	chrome.SetIcon(c.btn, b.String(), b.Title())
}
