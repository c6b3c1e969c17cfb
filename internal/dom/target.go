// internal/dom/target.go
package dom

// Listener handles a dispatched event.
type Listener func(e *Event)

// ListenerID identifies a registration returned by AddEventListener.
type ListenerID uint64

type registration struct {
	id  ListenerID
	typ string
	fn  Listener
}

// Target is an event listener registry. The zero value is ready to use and
// is embedded by Element, Document and the media implementations.
type Target struct {
	regs   []registration
	nextID ListenerID
}

// AddEventListener registers fn for events of type typ.
func (t *Target) AddEventListener(typ string, fn Listener) ListenerID {
	t.nextID++
	t.regs = append(t.regs, registration{id: t.nextID, typ: typ, fn: fn})
	return t.nextID
}

// RemoveEventListener unregisters a listener. It reports whether the id was
// still registered.
func (t *Target) RemoveEventListener(id ListenerID) bool {
	for i, r := range t.regs {
		if r.id == id {
			t.regs = append(t.regs[:i], t.regs[i+1:]...)
			return true
		}
	}
	return false
}

// ListenerCount returns the number of registered listeners of every type.
func (t *Target) ListenerCount() int {
	return len(t.regs)
}

// ListenerCountFor returns the number of listeners registered for typ.
func (t *Target) ListenerCountFor(typ string) int {
	n := 0
	for _, r := range t.regs {
		if r.typ == typ {
			n++
		}
	}
	return n
}

func (t *Target) registered(id ListenerID) bool {
	for _, r := range t.regs {
		if r.id == id {
			return true
		}
	}
	return false
}

// Emit invokes the listeners registered for e.Type on this target only.
// Listeners removed by an earlier listener of the same dispatch are skipped.
func (t *Target) Emit(e *Event) {
	var snapshot []registration
	for _, r := range t.regs {
		if r.typ == e.Type {
			snapshot = append(snapshot, r)
		}
	}
	for _, r := range snapshot {
		if e.immediateStopped {
			return
		}
		if !t.registered(r.id) {
			continue
		}
		r.fn(e)
	}
}
