package controls

import (
	"fmt"
	"math"
	"time"

	"github.com/llehouerou/vplayer/internal/chrome"
	"github.com/llehouerou/vplayer/internal/dom"
	"github.com/llehouerou/vplayer/internal/loop"
)

// PollInterval is the period of the progress polling loop.
const PollInterval = 50 * time.Millisecond

// Scrub owns the progress bar: the polling loop that follows playback,
// drag seeking and the buffered range indicator.
type Scrub struct {
	sess     *Session
	holder   *dom.Element
	played   *dom.Element
	loaded   *dom.Element
	scrubber *dom.Element
	handle   *dom.Element

	timer    loop.Timer
	bound    bindings
	drag     bindings
	dragging bool
}

func newScrub(sess *Session, f *finder) *Scrub {
	return &Scrub{
		sess:     sess,
		holder:   f.find(chrome.ClassProgressBar),
		played:   f.find(chrome.ClassPlayProgress),
		loaded:   f.find(chrome.ClassLoadProgress),
		scrubber: f.find(chrome.ClassScrubberContainer),
		handle:   f.find(chrome.ClassScrubberButton),
	}
}

func (s *Scrub) bind() {
	s.bound.add(s.holder, dom.MouseDown, s.onMouseDown)
}

// Polling reports whether the polling loop is scheduled.
func (s *Scrub) Polling() bool { return s.timer != nil }

// Dragging reports whether a drag seek is in progress.
func (s *Scrub) Dragging() bool { return s.dragging }

// Start begins polling. It does nothing when already polling or while the
// handle is dragged; the drop restarts it.
func (s *Scrub) Start() {
	if s.timer != nil || s.dragging {
		return
	}
	s.tick()
}

// Stop cancels polling. It does nothing when not polling.
func (s *Scrub) Stop() {
	if s.timer == nil {
		return
	}
	s.timer.Stop()
	s.timer = nil
}

func (s *Scrub) tick() {
	s.Update()
	s.timer = s.sess.Loop.AfterFunc(PollInterval, s.tick)
}

// Update writes the played width and scrubber offset for the current time.
func (s *Scrub) Update() {
	m := s.sess.Media
	pos := 0.0
	if d := m.Duration(); d > 0 && !math.IsInf(d, 0) {
		pos = m.CurrentTime() / d * s.holder.OffsetWidth()
	}
	s.paint(pos)
}

func (s *Scrub) paint(pos float64) {
	s.played.SetStyle("width", px(pos))
	s.scrubber.SetStyle("transform", "translateX("+px(pos)+")")
}

// span is the usable track width: the bar minus the scrubber handle.
func (s *Scrub) span() float64 {
	return s.holder.OffsetWidth() - s.handle.OffsetWidth()
}

// Fraction maps a page x coordinate to a clamped [0, 1] track fraction.
func (s *Scrub) Fraction(pageX float64) float64 {
	span := s.span()
	if span <= 0 {
		return 0
	}
	return max(0, min(1, (pageX-s.holder.PageLeft())/span))
}

// SeekTo seeks to the time under pageX and paints the bar there.
func (s *Scrub) SeekTo(pageX float64) {
	frac := s.Fraction(pageX)
	m := s.sess.Media
	if d := m.Duration(); d > 0 && !math.IsInf(d, 0) {
		m.SetCurrentTime(frac * d)
	}
	s.paint(frac * s.holder.OffsetWidth())
}

func (s *Scrub) onMouseDown(*dom.Event) {
	if s.dragging {
		return
	}
	s.Stop()
	s.dragging = true
	s.drag.add(s.sess.Doc, dom.MouseMove, func(e *dom.Event) { s.SeekTo(e.PageX) })
	s.drag.add(s.sess.Doc, dom.MouseUp, s.onMouseUp)
}

func (s *Scrub) onMouseUp(e *dom.Event) {
	s.drag.removeAll()
	s.dragging = false
	s.SeekTo(e.PageX)
	if !s.sess.Media.Paused() {
		s.Start()
	}
}

// LoadProgress renders the length of the buffered range containing the
// current time as a percentage of the duration. No containing range
// renders 0%.
func (s *Scrub) LoadProgress() {
	m := s.sess.Media
	b := m.Buffered()
	t := m.CurrentTime()
	d := m.Duration()
	pct := 0.0
	if b != nil && d > 0 && !math.IsInf(d, 0) {
		for i := 0; i < b.Len(); i++ {
			if b.Start(i) <= t && t <= b.End(i) {
				pct = math.Round((b.End(i) - b.Start(i)) / d * 100)
				break
			}
		}
	}
	s.loaded.SetStyle("width", fmt.Sprintf("%g%%", pct))
}

// Destroy stops polling and removes every listener.
func (s *Scrub) Destroy() {
	s.Stop()
	s.drag.removeAll()
	s.dragging = false
	s.bound.removeAll()
}

func px(v float64) string {
	return fmt.Sprintf("%gpx", math.Round(v*100)/100)
}
