package controls

import (
	"github.com/sirupsen/logrus"

	"github.com/llehouerou/vplayer/internal/chrome"
	"github.com/llehouerou/vplayer/internal/dom"
)

// Fullscreen button faces.
const (
	IconEnterFullscreen = "enter"
	IconExitFullscreen  = "exit"
)

// Fullscreen requests and exits fullscreen through whichever platform
// method exists and mirrors the platform state on the chrome.
type Fullscreen struct {
	sess           *Session
	log            logrus.FieldLogger
	btn            *dom.Element
	topGradient    *dom.Element
	topLayer       *dom.Element
	bottomGradient *dom.Element
}

func newFullscreen(sess *Session, f *finder) *Fullscreen {
	return &Fullscreen{
		sess:           sess,
		log:            sess.logger("fullscreen"),
		btn:            f.find(chrome.ClassFullscreenButton),
		topGradient:    f.find(chrome.ClassGradientTop),
		topLayer:       f.find(chrome.ClassTopLayer),
		bottomGradient: f.find(chrome.ClassGradientBottom),
	}
}

// Button returns the fullscreen button.
func (fs *Fullscreen) Button() *dom.Element { return fs.btn }

// IsFullscreen reports whether the platform has a fullscreen element.
func (fs *Fullscreen) IsFullscreen() bool {
	return fs.sess.Doc.FullscreenElement() != nil
}

// Click toggles from the current platform state.
func (fs *Fullscreen) Click() error {
	return fs.Toggle(!fs.IsFullscreen())
}

// Toggle requests (on) or exits fullscreen with the first available
// method. A successful call marks the wrapper; the button face waits for
// the platform change event. Failures change nothing and are not retried.
func (fs *Fullscreen) Toggle(on bool) error {
	doc := fs.sess.Doc
	var err error
	called := false
	if on {
		for _, name := range dom.RequestFullscreenMethods {
			if fn, ok := doc.RequestFullscreenMethod(name); ok {
				err, called = fn(fs.sess.Wrapper), true
				break
			}
		}
	} else {
		for _, name := range dom.ExitFullscreenMethods {
			if fn, ok := doc.ExitFullscreenMethod(name); ok {
				err, called = fn(), true
				break
			}
		}
	}
	if !called {
		return ErrNoFullscreen
	}
	if err != nil {
		fs.log.WithError(err).WithField("on", on).Warn("fullscreen request failed")
		return err
	}
	fs.setWrapperClass(on)
	return nil
}

// OnChange applies the platform state after a fullscreen change event.
func (fs *Fullscreen) OnChange() {
	on := fs.IsFullscreen()
	fs.setWrapperClass(on)
	if on {
		chrome.SetIcon(fs.btn, IconExitFullscreen, "Exit full screen")
	} else {
		chrome.SetIcon(fs.btn, IconEnterFullscreen, "Full screen")
	}
}

func (fs *Fullscreen) setWrapperClass(on bool) {
	fs.sess.Wrapper.ToggleClass(chrome.StateFullscreen, on)
	cfg := fs.sess.Config
	if !cfg.IsModal || cfg.ModalClass == "" {
		return
	}
	if modal := fs.sess.Doc.Query(cfg.ModalClass); modal != nil {
		modal.ToggleClass(chrome.StateModalFullscreen, on)
	}
}

// IsSurface reports whether a double click on el toggles fullscreen.
func (fs *Fullscreen) IsSurface(el *dom.Element) bool {
	return el == fs.topGradient || el == fs.topLayer || el == fs.bottomGradient
}
