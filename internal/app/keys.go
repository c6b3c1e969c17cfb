package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/vplayer/internal/dom"
	"github.com/llehouerou/vplayer/internal/keymap"
)

// keyMap adapts the keymap bindings to bubbles/help.
type keyMap struct {
	player   []key.Binding
	terminal []key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		player:   bindings(keymap.ByContext("player")),
		terminal: bindings(keymap.ByContext("terminal")),
	}
}

func bindings(kbs []keymap.Binding) []key.Binding {
	out := make([]key.Binding, 0, len(kbs))
	for _, kb := range kbs {
		out = append(out, key.NewBinding(
			key.WithKeys(terminalKeys(kb.Keys)...),
			key.WithHelp(helpKey(kb.Keys[0]), strings.ToLower(kb.Description)),
		))
	}
	return out
}

// terminalKeys turns document key names into bubbletea key strings.
func terminalKeys(keys []string) []string {
	out := make([]string, len(keys))
	for i, k := range keys {
		switch k {
		case "Escape":
			out[i] = "esc"
		default:
			out[i] = k
		}
	}
	return out
}

func helpKey(k string) string {
	switch k {
	case " ":
		return "space"
	case "Escape":
		return "esc"
	}
	return k
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	short := make([]key.Binding, 0, 4)
	short = append(short, k.player[0])
	for _, b := range k.terminal {
		if b.Help().Key == "?" || b.Help().Key == "q" {
			short = append(short, b)
		}
	}
	return short
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.player, k.terminal}
}

// documentKey maps a terminal key to the key name a document keydown
// carries, or "" for keys the chrome does not see.
func documentKey(msg tea.KeyMsg) string {
	switch msg.Type {
	case tea.KeySpace:
		return " "
	case tea.KeyEsc:
		return "Escape"
	case tea.KeyEnter:
		return "Enter"
	case tea.KeyRunes:
		if len(msg.Runes) == 1 {
			return string(msg.Runes)
		}
	}
	return ""
}

// handleKey resolves terminal actions first, then forwards the key to
// the document.
func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch m.terminal.Resolve(msg.String()) {
	case keymap.ActionQuit:
		return m.quit()
	case keymap.ActionHelp:
		m.showHelp = !m.showHelp
		return nil
	case keymap.ActionNextItem:
		m.click(m.ctl.Navigator().NextButton())
		return nil
	case keymap.ActionPrevItem:
		m.click(m.ctl.Navigator().PrevButton())
		return nil
	case keymap.ActionToggleFullscreen:
		m.click(m.ctl.Fullscreen().Button())
		return nil
	case keymap.ActionToggleCaptions:
		m.click(m.ctl.Captions().Button())
		return nil
	case keymap.ActionToggleSettings:
		m.click(m.ctl.Settings().Button())
		return nil
	case keymap.ActionTogglePlaylist:
		m.click(m.ctl.Drawer().Button())
		return nil
	}

	if m.showHelp && msg.Type == tea.KeyEsc {
		m.showHelp = false
		return nil
	}
	if k := documentKey(msg); k != "" {
		m.doc.Dispatch(&dom.Event{Type: dom.KeyDown, Key: k})
	}
	return nil
}

// click dispatches a click on a chrome element, as if the user pressed it.
func (m *Model) click(el *dom.Element) {
	if el == nil {
		return
	}
	x, y := el.BoundingRect().Left, el.BoundingRect().Top
	el.Dispatch(&dom.Event{Type: dom.Click, PageX: x, PageY: y})
}
