package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/vplayer/internal/dom"
)

// installFullscreen makes the terminal's alternate screen the document's
// fullscreen platform. The switch is queued as a command and the change
// event fires on the next loop turn, like a browser would.
func (m *Model) installFullscreen() {
	m.doc.SetRequestFullscreen(dom.RequestFullscreenMethods[0], func(el *dom.Element) error {
		m.screen = tea.EnterAltScreen
		m.loop.Post(func() {
			m.fullscreen = true
			m.layout()
			m.doc.SetFullscreenElement(el, "")
		})
		return nil
	})
	m.doc.SetExitFullscreen(dom.ExitFullscreenMethods[0], func() error {
		m.screen = tea.ExitAltScreen
		m.loop.Post(func() {
			m.fullscreen = false
			m.layout()
			m.doc.SetFullscreenElement(nil, "")
		})
		return nil
	})
}

// Fullscreen reports whether the chrome fills the alternate screen.
func (m *Model) Fullscreen() bool { return m.fullscreen }
