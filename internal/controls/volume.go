package controls

import (
	"github.com/sirupsen/logrus"

	"github.com/llehouerou/vplayer/internal/chrome"
	"github.com/llehouerou/vplayer/internal/dom"
	"github.com/llehouerou/vplayer/internal/slider"
)

// Icon is the volume button face.
type Icon string

const (
	IconMuted Icon = "muted"
	IconLow   Icon = "low"
	IconFull  Icon = "full"
)

// IconFor maps a 0-100 volume to its icon: 0 is muted, up to 50 is low,
// above 50 is full.
func IconFor(volume float64) Icon {
	switch {
	case volume <= 0:
		return IconMuted
	case volume <= 50:
		return IconLow
	default:
		return IconFull
	}
}

// Button titles.
const (
	TitleMute   = "Mute (M)"
	TitleUnmute = "UnMute (M)"
)

// Volume owns the mute button, the hover-revealed panel and the volume
// slider.
type Volume struct {
	sess     *Session
	log      logrus.FieldLogger
	wrapper  *dom.Element
	btn      *dom.Element
	controls *dom.Element
	panel    *dom.Element
	input    *dom.Element
	track    *dom.Element
	handle   *dom.Element

	slider *slider.Slider
	muted  bool
	// saved is the last audible level, restored on unmute.
	saved float64
}

func newVolume(sess *Session, f *finder) *Volume {
	return &Volume{
		sess:     sess,
		log:      sess.logger("volume"),
		wrapper:  f.find(chrome.ClassVolumeWrapper),
		btn:      f.find(chrome.ClassVolumeButton),
		controls: f.find(chrome.ClassControls),
		panel:    f.find(chrome.ClassVolumePanel),
		input:    f.find(chrome.ClassVolumeInput),
		track:    f.find(chrome.ClassVolumeSlider),
		handle:   f.find(chrome.ClassVolumeHandle),
	}
}

func (v *Volume) bind() error {
	if v.slider != nil {
		return nil
	}
	s, err := slider.New(slider.Config{
		Source:   v.input,
		Track:    v.track,
		Handle:   v.handle,
		Aria:     v.panel,
		OnChange: v.SetVolume,
	})
	if err != nil {
		return err
	}
	v.slider = s
	return nil
}

// Slider returns the volume slider, nil before the player is active.
func (v *Volume) Slider() *slider.Slider { return v.slider }

// Muted reports the controller's mute flag.
func (v *Volume) Muted() bool { return v.muted }

// Hover reveals or hides the volume panel.
func (v *Volume) Hover(on bool) {
	v.controls.ToggleClass(chrome.StateVolumeActive, on)
	v.panel.ToggleClass(chrome.StateVolumeHover, on)
}

// ToggleMuted flips mute. Muting moves the slider to 0 and keeps the media
// volume; unmuting puts the last audible level back on both.
func (v *Volume) ToggleMuted() {
	if v.muted {
		v.unmute()
		return
	}
	v.muted = true
	v.sess.Media.SetMuted(true)
	if v.slider != nil {
		v.slider.SetValue(0)
	}
	v.log.WithField("muted", true).Debug("mute toggled")
	v.render(0)
}

// unmute restores the last audible level, or the configured volume when
// no level above zero was ever applied.
func (v *Volume) unmute() {
	restore := v.saved
	if restore <= 0 {
		restore = v.sess.Config.Volume
	}
	if restore <= 0 {
		restore = 100
	}
	v.log.WithField("muted", false).Debug("mute toggled")
	v.Apply(restore)
}

// SetVolume applies a 0-100 slider value to the media. Zero mutes.
func (v *Volume) SetVolume(level float64) {
	v.muted = level == 0
	if level > 0 {
		v.saved = level
	}
	v.sess.Media.SetVolume(level / 100)
	v.sess.Media.SetMuted(v.muted)
	v.render(level)
}

// Apply moves the slider to level and applies it, as when restoring the
// configured volume.
func (v *Volume) Apply(level float64) {
	if v.slider != nil {
		v.slider.SetValue(level)
		level = v.slider.Value()
	}
	v.SetVolume(level)
}

func (v *Volume) render(level float64) {
	title := TitleMute
	if level == 0 {
		title = TitleUnmute
	}
	chrome.SetIcon(v.btn, string(IconFor(level)), title)
}

// Destroy removes the slider listeners.
func (v *Volume) Destroy() {
	if v.slider != nil {
		v.slider.Destroy()
	}
}
