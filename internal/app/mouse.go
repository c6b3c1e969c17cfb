package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/vplayer/internal/dom"
)

// dblClickWindow is the longest gap between two clicks on the same
// element that still counts as a double click.
const dblClickWindow = 400 * time.Millisecond

// pointer tracks the state needed to synthesize DOM mouse events from
// terminal mouse reports.
type pointer struct {
	hover     *dom.Element
	pressed   *dom.Element
	lastClick *dom.Element
	lastAt    time.Time
}

// handleMouse hit-tests a terminal mouse report and dispatches the DOM
// events a pointer would produce: over/out on target changes, move,
// down, up, click and dblclick.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	if m.showHelp {
		return
	}
	cols, rows := m.view.Size()
	if msg.X >= cols || msg.Y >= rows {
		m.setHover(nil, msg)
		return
	}
	el := m.view.HitTest(msg.X, msg.Y)
	x, y := m.view.CellCenter(msg.X, msg.Y)
	event := func(typ string) *dom.Event {
		return &dom.Event{Type: typ, PageX: x, PageY: y}
	}

	switch msg.Action {
	case tea.MouseActionMotion:
		m.setHover(el, msg)
		el.Dispatch(event(dom.MouseMove))

	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		m.setHover(el, msg)
		m.ptr.pressed = el
		el.Dispatch(event(dom.MouseDown))

	case tea.MouseActionRelease:
		pressed := m.ptr.pressed
		m.ptr.pressed = nil
		el.Dispatch(event(dom.MouseUp))
		if pressed != el {
			return
		}
		el.Dispatch(event(dom.Click))
		now := m.now()
		if m.ptr.lastClick == el && now.Sub(m.ptr.lastAt) <= dblClickWindow {
			el.Dispatch(event(dom.DblClick))
			m.ptr.lastClick = nil
			return
		}
		m.ptr.lastClick, m.ptr.lastAt = el, now
	}
}

func (m *Model) setHover(el *dom.Element, msg tea.MouseMsg) {
	if el == m.ptr.hover {
		return
	}
	x, y := m.view.CellCenter(msg.X, msg.Y)
	if old := m.ptr.hover; old != nil {
		old.Dispatch(&dom.Event{Type: dom.MouseOut, PageX: x, PageY: y})
	}
	m.ptr.hover = el
	if el != nil {
		el.Dispatch(&dom.Event{Type: dom.MouseOver, PageX: x, PageY: y})
	}
}
