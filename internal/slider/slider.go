// Package slider implements a range control bound to a track element and
// its drag handle. It keeps a step-aligned value, moves the handle to match
// and reports user changes through a callback.
package slider

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/llehouerou/vplayer/internal/dom"
)

// ErrNoTrack is returned when the track or handle element is missing.
var ErrNoTrack = errors.New("slider: track and handle are required")

// Config binds a slider to its elements.
type Config struct {
	// Source is an input-like element carrying min, max, step and value
	// attributes. Nil uses 0, 360 and 1.
	Source *dom.Element
	// Track is the range element; Handle is the dragger inside it.
	Track  *dom.Element
	Handle *dom.Element
	// Decrease and Increase are optional step buttons.
	Decrease *dom.Element
	Increase *dom.Element
	// Aria, when set, receives aria-valuemin/max/now/valuetext.
	Aria *dom.Element
	// AriaText formats aria-valuetext. Defaults to "N% volume".
	AriaText func(v float64) string
	// OnChange is called with the new value after a user change.
	OnChange func(v float64)
}

type binding struct {
	target *dom.Element
	id     dom.ListenerID
}

// Slider is a bound range control.
type Slider struct {
	cfg      Config
	doc      *dom.Document
	state    State
	start    float64
	moveID   dom.ListenerID
	moving   bool
	bindings []binding
	closed   bool
}

// New binds a slider, positions the handle for the initial value and
// mirrors the aria attributes.
func New(cfg Config) (*Slider, error) {
	if cfg.Track == nil || cfg.Handle == nil {
		return nil, ErrNoTrack
	}
	if cfg.AriaText == nil {
		cfg.AriaText = func(v float64) string { return formatNumber(v) + "% volume" }
	}
	s := &Slider{cfg: cfg, doc: cfg.Track.Document()}
	s.state = readState(cfg.Source)

	s.bind(cfg.Handle, dom.MouseDown, s.onHandleDown)
	s.bind(cfg.Track, dom.Click, s.onTrackClick)
	if cfg.Decrease != nil {
		s.bind(cfg.Decrease, dom.Click, func(e *dom.Event) {
			e.StopPropagation()
			s.Decrement()
		})
	}
	if cfg.Increase != nil {
		s.bind(cfg.Increase, dom.Click, func(e *dom.Event) {
			e.StopPropagation()
			s.Increment()
		})
	}
	if s.doc != nil {
		register(s.doc, s)
	}

	s.render()
	return s, nil
}

func readState(src *dom.Element) State {
	if src == nil {
		return Sanitize(defaultMin, defaultMax, defaultStep, defaultMin)
	}
	return Sanitize(
		parseAttr(src, "min"),
		parseAttr(src, "max"),
		parseAttr(src, "step"),
		parseAttr(src, "value"),
	)
}

func parseAttr(el *dom.Element, name string) float64 {
	v, err := strconv.ParseFloat(el.AttrOr(name, ""), 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

func (s *Slider) bind(el *dom.Element, typ string, fn dom.Listener) {
	s.bindings = append(s.bindings, binding{target: el, id: el.AddEventListener(typ, fn)})
}

// State returns a copy of the model.
func (s *Slider) State() State { return s.state }

// Value returns the current value.
func (s *Slider) Value() float64 { return s.state.Value }

// Dragging reports whether a drag is in progress.
func (s *Slider) Dragging() bool { return s.state.Dragging }

// HandleLeft returns the handle offset in pixels.
func (s *Slider) HandleLeft() float64 {
	return s.state.ValueToPosition(s.state.Value, s.span())
}

func (s *Slider) span() float64 {
	return s.cfg.Track.OffsetWidth() - s.cfg.Handle.OffsetWidth()
}

// SetValue sets the value programmatically without calling OnChange. It
// reports whether the value changed.
func (s *Slider) SetValue(v float64) bool {
	if math.IsNaN(v) {
		return false
	}
	aligned := s.state.Align(v)
	changed := aligned != s.state.Value
	s.state.Value = aligned
	s.render()
	return changed
}

// Increment steps the value up by one step.
func (s *Slider) Increment() bool {
	return s.change(s.state.Value + s.state.Step)
}

// Decrement steps the value down by one step.
func (s *Slider) Decrement() bool {
	return s.change(s.state.Value - s.state.Step)
}

// change applies a user-originated value and notifies when it moved.
func (s *Slider) change(v float64) bool {
	if !s.SetValue(v) {
		return false
	}
	if s.cfg.OnChange != nil {
		s.cfg.OnChange(s.state.Value)
	}
	return true
}

func (s *Slider) pointerValue(pageX float64) float64 {
	return s.state.PositionToValue(pageX-s.cfg.Track.PageLeft(), s.span())
}

func (s *Slider) onHandleDown(e *dom.Event) {
	e.StopPropagation()
	s.state.Dragging = true
	s.start = s.state.Value
	if s.doc != nil && !s.moving {
		s.moveID = s.doc.AddEventListener(dom.MouseMove, s.onMove)
		s.moving = true
	}
}

func (s *Slider) onMove(e *dom.Event) {
	if !s.state.Dragging {
		return
	}
	s.change(s.pointerValue(e.PageX))
}

func (s *Slider) onTrackClick(e *dom.Event) {
	if s.cfg.Handle.Contains(e.Target) {
		return
	}
	s.change(s.pointerValue(e.PageX))
}

func (s *Slider) endDrag() {
	if !s.state.Dragging {
		return
	}
	s.state.Dragging = false
	s.removeMove()
}

func (s *Slider) removeMove() {
	if s.moving && s.doc != nil {
		s.doc.RemoveEventListener(s.moveID)
	}
	s.moving = false
}

// DragStartValue returns the value recorded when the last drag began.
func (s *Slider) DragStartValue() float64 { return s.start }

func (s *Slider) render() {
	s.cfg.Handle.SetStyle("left", fmt.Sprintf("%gpx", s.HandleLeft()))
	if s.cfg.Source != nil {
		s.cfg.Source.SetAttr("value", formatNumber(s.state.Value))
	}
	if a := s.cfg.Aria; a != nil {
		a.SetAttr("aria-valuemin", formatNumber(s.state.Min))
		a.SetAttr("aria-valuemax", formatNumber(s.state.Max))
		a.SetAttr("aria-valuenow", formatNumber(s.state.Value))
		a.SetAttr("aria-valuetext", s.cfg.AriaText(s.state.Value))
	}
}

// Refresh repositions the handle, for example after a layout change.
func (s *Slider) Refresh() { s.render() }

// Destroy removes every listener the slider installed. Safe to call twice.
func (s *Slider) Destroy() {
	if s.closed {
		return
	}
	s.closed = true
	s.state.Dragging = false
	s.removeMove()
	for _, b := range s.bindings {
		b.target.RemoveEventListener(b.id)
	}
	s.bindings = nil
	if s.doc != nil {
		unregister(s.doc, s)
	}
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
