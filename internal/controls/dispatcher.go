package controls

import (
	"errors"

	"github.com/llehouerou/vplayer/internal/chrome"
	"github.com/llehouerou/vplayer/internal/dom"
	"github.com/llehouerou/vplayer/internal/errmsg"
	"github.com/llehouerou/vplayer/internal/keymap"
	"github.com/llehouerou/vplayer/internal/media"
	"github.com/llehouerou/vplayer/internal/playlist"
)

type handler func(e *dom.Event)

// Dispatcher is the single entry point for media, wrapper and document
// events. Each event type maps to exactly one handler.
type Dispatcher struct {
	p    *Player
	keys *keymap.Resolver

	load     map[string]handler
	media    map[string]handler
	wrapper  map[string]handler
	document map[string]handler

	gate  bindings
	bound bindings
}

func newDispatcher(p *Player) *Dispatcher {
	d := &Dispatcher{p: p, keys: keymap.PlayerResolver()}
	d.load = map[string]handler{
		media.EventLoadedData:     d.onLoadedData,
		media.EventLoadedMetadata: d.onLoadedMetadata,
	}
	d.media = map[string]handler{
		media.EventPlay:       d.onPlay,
		media.EventPause:      d.onPause,
		media.EventEnded:      d.onEnded,
		media.EventTimeUpdate: d.onTimeUpdate,
		media.EventProgress:   d.onProgress,
	}
	d.wrapper = map[string]handler{
		dom.Click:     d.onClick,
		dom.DblClick:  d.onDblClick,
		dom.MouseOver: d.onMouseOver,
		dom.MouseOut:  d.onMouseOut,
	}
	d.document = map[string]handler{
		dom.KeyDown: d.onKeyDown,
	}
	for _, typ := range dom.FullscreenChangeEvents {
		d.document[typ] = d.onFullscreenChange
	}
	return d
}

// bindLoad installs the readiness listeners bound from Init.
func (d *Dispatcher) bindLoad() {
	for typ, h := range d.load {
		d.gate.add(d.p.sess.Media, typ, d.wrap(h))
	}
}

// bind installs the listeners of an active player.
func (d *Dispatcher) bind() {
	s := d.p.sess
	for typ, h := range d.media {
		d.bound.add(s.Media, typ, d.wrap(h))
	}
	for typ, h := range d.wrapper {
		d.bound.add(s.Wrapper, typ, d.wrap(h))
	}
	for typ, h := range d.document {
		d.bound.add(s.Doc, typ, d.wrap(h))
	}
}

func (d *Dispatcher) unbind() {
	d.bound.removeAll()
	d.gate.removeAll()
}

func (d *Dispatcher) wrap(h handler) dom.Listener {
	return func(e *dom.Event) {
		if d.p.sess == nil {
			return
		}
		e.PreventDefault()
		h(e)
	}
}

// --- media ---

func (d *Dispatcher) onLoadedData(*dom.Event) {
	d.p.onLoadedData()
}

func (d *Dispatcher) onLoadedMetadata(*dom.Event) {
	d.p.captions.Init()
}

func (d *Dispatcher) onPlay(*dom.Event) {
	p := d.p
	p.play.Observe(media.EventPlay)
	p.sess.Wrapper.RemoveClass(chrome.StatePaused)
	p.scrub.Start()
}

func (d *Dispatcher) onPause(*dom.Event) {
	p := d.p
	p.play.Observe(media.EventPause)
	p.sess.Wrapper.AddClass(chrome.StatePaused)
	p.sess.Wrapper.AddClass(chrome.StateShowInfo)
	p.scrub.Stop()
}

func (d *Dispatcher) onEnded(*dom.Event) {
	p := d.p
	p.play.Observe(media.EventEnded)
	p.sess.Wrapper.AddClass(chrome.StateShowInfo)
	p.scrub.Stop()
	p.scrub.Update()
	if !p.sess.Config.Autoplay {
		return
	}
	err := p.nav.Next()
	var oor *playlist.OutOfRangeError
	if errors.As(err, &oor) {
		p.sess.logger("playback").Debug("end of playlist")
		return
	}
	p.report(errmsg.OpNavigate, err)
}

func (d *Dispatcher) onTimeUpdate(*dom.Event) {
	d.p.timer.UpdateTime()
}

func (d *Dispatcher) onProgress(*dom.Event) {
	if d.p.sess.Media.ReadyState() == media.HaveEnoughData {
		d.p.scrub.LoadProgress()
	}
}

// --- wrapper ---

// onClick resolves a click in priority order: closing an open settings
// menu from outside, the buttons, settings rows, then the chrome layers
// outside the progress bar toggling playback.
func (d *Dispatcher) onClick(e *dom.Event) {
	p := d.p
	t := e.Target
	if t == nil {
		return
	}

	sm := p.settings
	if sm.Visible() && t != sm.Button() && t.Closest(chrome.ClassSettingsMenu) == nil {
		sm.ToggleView()
	}

	switch {
	case t == p.nav.NextButton():
		if !chrome.IsDisabled(t) {
			p.report(errmsg.OpNavigate, p.nav.Next())
		}
	case t == p.nav.PrevButton():
		if !chrome.IsDisabled(t) {
			p.report(errmsg.OpNavigate, p.nav.Prev())
		}
	case t == p.fullscreen.Button():
		p.report(errmsg.OpFullscreen, p.fullscreen.Click())
	case t.Closest(chrome.ClassVolumeWrapper) != nil:
		if t.Closest(chrome.ClassVolumePanel) == nil {
			p.volume.ToggleMuted()
		}
	case t == p.captions.Button():
		p.captions.Toggle()
	case t == sm.Button():
		sm.ToggleView()
	case t == p.bookmark.Button():
		p.bookmark.Press()
	case t == p.drawer.Button():
		if !chrome.IsDisabled(t) {
			p.drawer.Toggle(true)
		}
	case t == p.drawer.CloseButton():
		p.drawer.Toggle(false)
	case p.drawer.HandleCard(t):
	case t.Closest(chrome.ClassSettingsMenu) != nil:
		sm.HandleClick(t)
	case t.Closest(chrome.ClassProgressWrapper) == nil && d.inChrome(t):
		p.play.Toggle()
	}
}

func (d *Dispatcher) inChrome(t *dom.Element) bool {
	for _, hook := range []string{
		chrome.ClassBottomLayer,
		chrome.ClassGradientBottom,
		chrome.ClassTopLayer,
		chrome.ClassGradientTop,
		chrome.ClassContainer,
	} {
		if t.Closest(hook) != nil {
			return true
		}
	}
	return t == d.p.play.Button()
}

func (d *Dispatcher) onDblClick(e *dom.Event) {
	p := d.p
	t := e.Target
	if t == nil {
		return
	}
	if p.fullscreen.IsSurface(t) || t.HasClass(chrome.ClassStream) || t.HasClass(chrome.ClassContainer) {
		p.report(errmsg.OpFullscreen, p.fullscreen.Click())
	}
}

func (d *Dispatcher) onMouseOver(e *dom.Event) {
	p := d.p
	t := e.Target
	if t == nil {
		return
	}
	switch {
	case t == p.nav.NextButton():
		d.preview(t, PreviewNext)
	case t == p.nav.PrevButton():
		d.preview(t, PreviewPrev)
	case t.Closest(chrome.ClassVolumeWrapper) != nil:
		p.volume.Hover(true)
	}
	if !p.sess.Wrapper.HasClass(chrome.StatePlaylistOpen) {
		p.sess.Wrapper.AddClass(chrome.StateShowInfo)
	}
}

func (d *Dispatcher) preview(btn *dom.Element, kind PreviewKind) {
	if chrome.IsDisabled(btn) {
		return
	}
	if pv, ok := d.p.nav.Preview(kind); ok {
		d.p.tooltip.SetPreview(pv)
	}
}

func (d *Dispatcher) onMouseOut(e *dom.Event) {
	p := d.p
	t := e.Target
	if t == nil {
		return
	}
	switch {
	case t == p.nav.NextButton(), t == p.nav.PrevButton():
		p.tooltip.Reset()
	case t.Closest(chrome.ClassVolumeWrapper) != nil:
		p.volume.Hover(false)
	}
	if !p.sess.Wrapper.HasClass(chrome.StatePaused) {
		p.sess.Wrapper.RemoveClass(chrome.StateShowInfo)
	}
}

// --- document ---

func (d *Dispatcher) onKeyDown(e *dom.Event) {
	p := d.p
	switch d.keys.Resolve(e.Key) {
	case keymap.ActionPlayPause:
		p.play.Toggle()
	case keymap.ActionExitFullscreen:
		if p.fullscreen.IsFullscreen() {
			p.report(errmsg.OpFullscreen, p.fullscreen.Toggle(false))
		}
	case keymap.ActionToggleMute:
		p.volume.ToggleMuted()
	}
}

func (d *Dispatcher) onFullscreenChange(*dom.Event) {
	d.p.fullscreen.OnChange()
}
