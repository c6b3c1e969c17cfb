package dom

// Fullscreen request methods, in the order a caller should try them.
var RequestFullscreenMethods = []string{
	"requestFullScreen",
	"webkitRequestFullScreen",
	"mozRequestFullScreen",
}

// Fullscreen exit methods, in the order a caller should try them.
var ExitFullscreenMethods = []string{
	"exitFullscreen",
	"mozCancelFullScreen",
	"webkitCancelFullScreen",
	"msExitFullscreen",
}

// FullscreenChangeEvents lists the four fullscreen change notifications.
var FullscreenChangeEvents = []string{
	"fullscreenchange",
	"webkitfullscreenchange",
	"mozfullscreenchange",
	"msfullscreenchange",
}

// Document owns the element tree, document-level listeners and the
// fullscreen platform API.
type Document struct {
	Target

	root       *Element
	fullscreen *Element
	request    map[string]func(*Element) error
	exit       map[string]func() error
}

// NewDocument returns an empty document with an <html> root.
func NewDocument() *Document {
	d := &Document{
		request: make(map[string]func(*Element) error),
		exit:    make(map[string]func() error),
	}
	d.root = d.CreateElement("html")
	return d
}

// Root returns the document element.
func (d *Document) Root() *Element { return d.root }

// CreateElement creates an element owned by the document but not attached.
func (d *Document) CreateElement(tag string, classes ...string) *Element {
	el := NewElement(tag, classes...)
	el.doc = d
	return el
}

// Query returns the first element in the document carrying class.
func (d *Document) Query(class string) *Element {
	if d.root.HasClass(class) {
		return d.root
	}
	return d.root.Query(class)
}

// Dispatch fires e on the document listeners only.
func (d *Document) Dispatch(e *Event) {
	d.Emit(e)
}

// SetRequestFullscreen installs a platform request method under a vendor name.
func (d *Document) SetRequestFullscreen(name string, fn func(*Element) error) {
	d.request[name] = fn
}

// SetExitFullscreen installs a platform exit method under a vendor name.
func (d *Document) SetExitFullscreen(name string, fn func() error) {
	d.exit[name] = fn
}

// RequestFullscreenMethod looks up a request method by vendor name.
func (d *Document) RequestFullscreenMethod(name string) (func(*Element) error, bool) {
	fn, ok := d.request[name]
	return fn, ok
}

// ExitFullscreenMethod looks up an exit method by vendor name.
func (d *Document) ExitFullscreenMethod(name string) (func() error, bool) {
	fn, ok := d.exit[name]
	return fn, ok
}

// FullscreenElement returns the element currently in fullscreen, or nil.
func (d *Document) FullscreenElement() *Element { return d.fullscreen }

// SetFullscreenElement records the platform fullscreen element and fires
// the given change event on the document. Platforms call this once the
// transition has actually happened.
func (d *Document) SetFullscreenElement(el *Element, event string) {
	d.fullscreen = el
	if event == "" {
		event = FullscreenChange
	}
	d.Emit(NewEvent(event))
}
