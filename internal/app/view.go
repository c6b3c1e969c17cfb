package app

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/vplayer/internal/ui/overlay"
	"github.com/llehouerou/vplayer/internal/ui/render"
	"github.com/llehouerou/vplayer/internal/ui/styles"
)

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	cols, rows := m.view.Size()
	chrome := m.view.Render()
	if m.showHelp {
		panel := styles.PanelStyle(true).Render(m.help.FullHelpView(m.keys.FullHelp()))
		placed := lipgloss.Place(cols, rows, lipgloss.Center, lipgloss.Center, panel)
		chrome = overlay.Compose(chrome, placed, cols)
	}
	return chrome + "\n" + m.statusLine(cols)
}

// statusLine shows the last error, or the playlist position and item
// details, with the short help on the right.
func (m *Model) statusLine(width int) string {
	s := styles.T().S()
	right := m.help.ShortHelpView(m.keys.ShortHelp())
	left := s.Muted.Render(m.itemSummary())
	if m.status != "" {
		left = s.Error.Render(m.status)
	}
	avail := width - lipgloss.Width(right) - 1
	if avail < 10 {
		return render.Truncate(left, width)
	}
	return render.Row(render.Truncate(left, avail), right, width)
}

func (m *Model) itemSummary() string {
	pl := m.ctl.Playlist()
	it := pl.Current()
	if it == nil {
		return ""
	}
	parts := []string{fmt.Sprintf("%d/%d", pl.CurrentIndex()+1, pl.Len())}
	if v := it.ActiveVariant(); v != nil {
		parts = append(parts, strings.ToUpper(v.Language))
	}
	if it.Size > 0 {
		parts = append(parts, humanize.Bytes(uint64(it.Size)))
	}
	if r := m.media.PlaybackRate(); r != 1 {
		parts = append(parts, strconv.FormatFloat(r, 'f', -1, 64)+"×")
	}
	return strings.Join(parts, " · ")
}
