package dom

import (
	"slices"
	"strings"
)

// Box is an element's layout box relative to its parent.
type Box struct {
	Left   float64
	Top    float64
	Width  float64
	Height float64
}

// Rect is a box in page coordinates.
type Rect struct {
	Left   float64
	Top    float64
	Width  float64
	Height float64
}

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.Left && x < r.Left+r.Width && y >= r.Top && y < r.Top+r.Height
}

// Element is a node of the headless element tree.
type Element struct {
	Target

	tag      string
	classes  []string
	attrs    map[string]string
	style    map[string]string
	styleKey []string
	text     string
	box      Box

	parent   *Element
	children []*Element
	doc      *Document
}

// NewElement creates a detached element. Prefer Document.CreateElement.
func NewElement(tag string, classes ...string) *Element {
	el := &Element{
		tag:   strings.ToLower(tag),
		attrs: make(map[string]string),
		style: make(map[string]string),
	}
	for _, c := range classes {
		el.AddClass(c)
	}
	return el
}

// Tag returns the lower-cased tag name.
func (el *Element) Tag() string { return el.tag }

// Document returns the owning document, nil when detached from any document.
func (el *Element) Document() *Document { return el.doc }

// Parent returns the parent element.
func (el *Element) Parent() *Element { return el.parent }

// Children returns the child elements.
func (el *Element) Children() []*Element { return slices.Clone(el.children) }

// --- classes ---

// Classes returns the class list.
func (el *Element) Classes() []string { return slices.Clone(el.classes) }

// HasClass reports whether the element carries class.
func (el *Element) HasClass(class string) bool {
	return slices.Contains(el.classes, class)
}

// AddClass adds class if not already present.
func (el *Element) AddClass(class string) {
	if class == "" || el.HasClass(class) {
		return
	}
	el.classes = append(el.classes, class)
}

// RemoveClass removes class.
func (el *Element) RemoveClass(class string) {
	el.classes = slices.DeleteFunc(el.classes, func(c string) bool { return c == class })
}

// ToggleClass adds or removes class depending on on.
func (el *Element) ToggleClass(class string, on bool) {
	if on {
		el.AddClass(class)
	} else {
		el.RemoveClass(class)
	}
}

// --- attributes ---

// Attr returns the attribute value and whether it is present.
func (el *Element) Attr(name string) (string, bool) {
	v, ok := el.attrs[name]
	return v, ok
}

// AttrOr returns the attribute value or def when absent.
func (el *Element) AttrOr(name, def string) string {
	if v, ok := el.attrs[name]; ok {
		return v
	}
	return def
}

// HasAttr reports whether the attribute is present.
func (el *Element) HasAttr(name string) bool {
	_, ok := el.attrs[name]
	return ok
}

// SetAttr sets an attribute. "class" and "style" update the class list and
// the inline style.
func (el *Element) SetAttr(name, value string) {
	switch name {
	case "class":
		el.classes = nil
		for c := range strings.FieldsSeq(value) {
			el.AddClass(c)
		}
	case "style":
		el.ClearStyle()
		for decl := range strings.SplitSeq(value, ";") {
			prop, val, ok := strings.Cut(decl, ":")
			if !ok {
				continue
			}
			el.SetStyle(strings.TrimSpace(prop), strings.TrimSpace(val))
		}
	default:
		el.attrs[name] = value
	}
}

// RemoveAttr removes an attribute. Removing "style" clears the inline style.
func (el *Element) RemoveAttr(name string) {
	if name == "style" {
		el.ClearStyle()
		return
	}
	delete(el.attrs, name)
}

// Data returns a data-* attribute.
func (el *Element) Data(key string) string {
	return el.attrs["data-"+key]
}

// --- style ---

// Style returns an inline style property.
func (el *Element) Style(prop string) string { return el.style[prop] }

// SetStyle sets an inline style property. An empty value removes it.
func (el *Element) SetStyle(prop, value string) {
	if value == "" {
		delete(el.style, prop)
		el.styleKey = slices.DeleteFunc(el.styleKey, func(k string) bool { return k == prop })
		return
	}
	if _, ok := el.style[prop]; !ok {
		el.styleKey = append(el.styleKey, prop)
	}
	el.style[prop] = value
}

// ClearStyle removes every inline style property.
func (el *Element) ClearStyle() {
	clear(el.style)
	el.styleKey = nil
}

// StyleString serializes the inline style in insertion order.
func (el *Element) StyleString() string {
	parts := make([]string, 0, len(el.styleKey))
	for _, k := range el.styleKey {
		parts = append(parts, k+": "+el.style[k])
	}
	return strings.Join(parts, "; ")
}

// --- text ---

// Text returns the text content of the element and its descendants.
func (el *Element) Text() string {
	var b strings.Builder
	b.WriteString(el.text)
	for _, c := range el.children {
		b.WriteString(c.Text())
	}
	return b.String()
}

// SetText replaces the element content with text.
func (el *Element) SetText(text string) {
	el.RemoveChildren()
	el.text = text
}

// --- tree ---

// AppendChild attaches child as the last child, detaching it first.
func (el *Element) AppendChild(child *Element) {
	if child.parent != nil {
		child.parent.RemoveChild(child)
	}
	child.parent = el
	child.setDocument(el.doc)
	el.children = append(el.children, child)
}

// RemoveChild detaches child.
func (el *Element) RemoveChild(child *Element) {
	i := slices.Index(el.children, child)
	if i < 0 {
		return
	}
	el.children = slices.Delete(el.children, i, i+1)
	child.parent = nil
}

// RemoveChildren detaches every child.
func (el *Element) RemoveChildren() {
	for _, c := range el.children {
		c.parent = nil
	}
	el.children = nil
}

func (el *Element) setDocument(doc *Document) {
	el.doc = doc
	for _, c := range el.children {
		c.setDocument(doc)
	}
}

// Contains reports whether other is el or one of its descendants.
func (el *Element) Contains(other *Element) bool {
	for n := other; n != nil; n = n.parent {
		if n == el {
			return true
		}
	}
	return false
}

// Closest returns el or its nearest ancestor carrying class.
func (el *Element) Closest(class string) *Element {
	for n := el; n != nil; n = n.parent {
		if n.HasClass(class) {
			return n
		}
	}
	return nil
}

// Query returns the first descendant carrying class, depth first.
func (el *Element) Query(class string) *Element {
	for _, c := range el.children {
		if c.HasClass(class) {
			return c
		}
		if found := c.Query(class); found != nil {
			return found
		}
	}
	return nil
}

// QueryAll returns every descendant carrying class in document order.
func (el *Element) QueryAll(class string) []*Element {
	var out []*Element
	el.Walk(func(n *Element) bool {
		if n != el && n.HasClass(class) {
			out = append(out, n)
		}
		return true
	})
	return out
}

// QueryTag returns the first descendant with the given tag.
func (el *Element) QueryTag(tag string) *Element {
	var found *Element
	el.Walk(func(n *Element) bool {
		if found != nil {
			return false
		}
		if n != el && n.tag == tag {
			found = n
			return false
		}
		return true
	})
	return found
}

// Walk visits el and its descendants in document order. Returning false
// from fn skips the children of the visited node.
func (el *Element) Walk(fn func(*Element) bool) {
	if !fn(el) {
		return
	}
	for _, c := range el.children {
		c.Walk(fn)
	}
}

// --- layout ---

// Box returns the layout box.
func (el *Element) Box() Box { return el.box }

// SetBox assigns the layout box, relative to the parent.
func (el *Element) SetBox(b Box) { el.box = b }

// OffsetLeft returns the left offset relative to the parent.
func (el *Element) OffsetLeft() float64 { return el.box.Left }

// OffsetTop returns the top offset relative to the parent.
func (el *Element) OffsetTop() float64 { return el.box.Top }

// OffsetWidth returns the layout width.
func (el *Element) OffsetWidth() float64 { return el.box.Width }

// OffsetHeight returns the layout height.
func (el *Element) OffsetHeight() float64 { return el.box.Height }

// PageLeft returns the horizontal page position, the sum of the offsets of
// the element and all its ancestors.
func (el *Element) PageLeft() float64 {
	x := 0.0
	for n := el; n != nil; n = n.parent {
		x += n.box.Left
	}
	return x
}

// PageTop returns the vertical page position.
func (el *Element) PageTop() float64 {
	y := 0.0
	for n := el; n != nil; n = n.parent {
		y += n.box.Top
	}
	return y
}

// BoundingRect returns the layout box in page coordinates.
func (el *Element) BoundingRect() Rect {
	return Rect{Left: el.PageLeft(), Top: el.PageTop(), Width: el.box.Width, Height: el.box.Height}
}

// --- events ---

// Dispatch fires e on el, then bubbles it through the ancestors and finally
// to the owning document, unless propagation is stopped.
func (el *Element) Dispatch(e *Event) {
	if e.Target == nil {
		e.Target = el
	}
	for n := el; n != nil; n = n.parent {
		e.CurrentTarget = n
		n.Emit(e)
		if e.stopped {
			return
		}
	}
	e.CurrentTarget = nil
	if el.doc != nil {
		el.doc.Emit(e)
	}
}
