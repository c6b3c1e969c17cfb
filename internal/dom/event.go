package dom

// Common event types.
const (
	Click            = "click"
	DblClick         = "dblclick"
	MouseDown        = "mousedown"
	MouseUp          = "mouseup"
	MouseMove        = "mousemove"
	MouseOver        = "mouseover"
	MouseOut         = "mouseout"
	KeyDown          = "keydown"
	FullscreenChange = "fullscreenchange"
)

// Event is a dispatched UI or platform event.
type Event struct {
	Type string
	// Target is the element the event was dispatched on. Nil for events
	// fired directly on a document or a media element.
	Target *Element
	// CurrentTarget is the element whose listeners are running.
	CurrentTarget *Element

	// PageX and PageY are pointer coordinates in page space.
	PageX float64
	PageY float64
	// Key is the key name for keyboard events (" ", "Escape", "m", ...).
	Key string

	defaultPrevented bool
	stopped          bool
	immediateStopped bool
}

// NewEvent returns an event of the given type.
func NewEvent(typ string) *Event {
	return &Event{Type: typ}
}

// PreventDefault marks the event as handled.
func (e *Event) PreventDefault() { e.defaultPrevented = true }

// DefaultPrevented reports whether PreventDefault was called.
func (e *Event) DefaultPrevented() bool { return e.defaultPrevented }

// StopPropagation stops bubbling after the current target.
func (e *Event) StopPropagation() { e.stopped = true }

// StopImmediatePropagation also skips the remaining listeners of the current target.
func (e *Event) StopImmediatePropagation() {
	e.stopped = true
	e.immediateStopped = true
}
