package slider

import (
	"slices"
	"sync"

	"github.com/llehouerou/vplayer/internal/dom"
)

// stopHub holds the single document mouseup listener shared by every
// slider on a document.
type stopHub struct {
	id      dom.ListenerID
	sliders []*Slider
}

var (
	hubsMu sync.Mutex
	hubs   = map[*dom.Document]*stopHub{}
)

func register(doc *dom.Document, s *Slider) {
	hubsMu.Lock()
	defer hubsMu.Unlock()
	hub, ok := hubs[doc]
	if !ok {
		hub = &stopHub{}
		hub.id = doc.AddEventListener(dom.MouseUp, func(*dom.Event) { StopDrag(doc) })
		hubs[doc] = hub
	}
	hub.sliders = append(hub.sliders, s)
}

func unregister(doc *dom.Document, s *Slider) {
	hubsMu.Lock()
	defer hubsMu.Unlock()
	hub, ok := hubs[doc]
	if !ok {
		return
	}
	hub.sliders = slices.DeleteFunc(hub.sliders, func(o *Slider) bool { return o == s })
	if len(hub.sliders) == 0 {
		doc.RemoveEventListener(hub.id)
		delete(hubs, doc)
	}
}

// StopDrag ends the drag of every slider on doc.
func StopDrag(doc *dom.Document) {
	hubsMu.Lock()
	hub, ok := hubs[doc]
	var sliders []*Slider
	if ok {
		sliders = slices.Clone(hub.sliders)
	}
	hubsMu.Unlock()
	for _, s := range sliders {
		s.endDrag()
	}
}
