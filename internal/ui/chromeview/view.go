package chromeview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/vplayer/internal/chrome"
	"github.com/llehouerou/vplayer/internal/dom"
	"github.com/llehouerou/vplayer/internal/icons"
	"github.com/llehouerou/vplayer/internal/ui/overlay"
	"github.com/llehouerou/vplayer/internal/ui/render"
	"github.com/llehouerou/vplayer/internal/ui/styles"
)

// Bar glyphs.
const (
	playedBlock   = "━"
	trackBlock    = "─"
	scrubberGlyph = "●"
	volumeFilled  = "▮"
	volumeEmpty   = "▯"
)

// Render draws the chrome. The result is exactly the view's size.
func (v *View) Render() string {
	v.Layout()
	c := overlay.New(v.cols, v.rows)
	bottom := v.rows - bottomRows

	c.Place(v.renderTitle(), 0, 0)
	if centre := v.renderStage(); centre != "" {
		c.Place(centre, 0, (bottom-1)/2)
	}
	if line := v.renderCaption(); line != "" {
		c.Place(line, 0, bottom-2)
	}
	c.Place(v.renderProgress(), 1, bottom)
	c.Place(v.renderControls(), 0, bottom+1)

	if menu, col, row, ok := v.renderMenu(); ok {
		c.Place(menu, col, row)
	}
	if drawer, col, row, ok := v.renderDrawer(); ok {
		c.Place(drawer, col, row)
	}
	if tip, col, row, ok := v.renderTooltip(); ok {
		c.Place(tip, col, row)
	}
	return c.String()
}

func (v *View) text(class string) string {
	if el := v.wrapper.Query(class); el != nil {
		return render.Sanitize(el.Text())
	}
	return ""
}

func (v *View) renderTitle() string {
	t := styles.T()
	title := v.text(chrome.ClassTitleLink)
	if title == "" {
		return ""
	}
	title = render.Truncate(title, v.cols-2)
	return " " + styles.BoldGradient(title, t.Primary, t.Secondary)
}

// renderStage shows the big state glyph while paused.
func (v *View) renderStage() string {
	if !v.wrapper.HasClass(chrome.StatePaused) {
		return ""
	}
	btn := v.wrapper.Query(chrome.ClassPlayButton)
	if btn == nil {
		return ""
	}
	return styles.T().S().Muted.Render(render.Center(glyph(btn), v.cols))
}

func (v *View) renderCaption() string {
	text := v.text(chrome.ClassCaptionBlock)
	if text == "" {
		return ""
	}
	text = render.Truncate(text, v.cols-4)
	line := styles.T().S().Caption.Render(" " + text + " ")
	lead := (v.cols - ansi.StringWidth(line)) / 2
	return strings.Repeat(" ", max(lead, 0)) + line
}

// renderProgress draws the played, buffered and remaining parts of the
// bar from the widths the scrub controller painted.
func (v *View) renderProgress() string {
	t := styles.T()
	s := t.S()
	bar := v.wrapper.Query(chrome.ClassProgressBar)
	if bar == nil {
		return ""
	}
	width := toCols(bar.OffsetWidth())
	played := 0
	if el := v.wrapper.Query(chrome.ClassPlayProgress); el != nil {
		played = min(toCols(px(el.Style("width"))), width)
	}
	loaded := 0
	if el := v.wrapper.Query(chrome.ClassLoadProgress); el != nil {
		loaded = int(percent(el.Style("width")) / 100 * float64(width))
	}
	loaded = max(0, min(loaded, width)-played)
	rest := width - played - loaded

	var b strings.Builder
	b.WriteString(styles.Gradient(strings.Repeat(playedBlock, played), t.Primary, t.Secondary))
	b.WriteString(s.Loaded.Render(strings.Repeat(trackBlock, loaded)))
	b.WriteString(s.Track.Render(strings.Repeat(trackBlock, rest)))
	line := b.String()

	if sc := v.wrapper.Query(chrome.ClassScrubberContainer); sc != nil {
		col := min(toCols(translateX(sc.Style("transform"))), width-1)
		knob := s.Active.Render(scrubberGlyph)
		line = ansi.Cut(line, 0, col) + knob + ansi.Cut(line, col+1, width)
	}
	return line
}

func percent(v string) float64 {
	var f float64
	if _, err := fmt.Sscanf(strings.TrimSpace(v), "%g%%", &f); err != nil {
		return 0
	}
	return f
}

// renderControls draws every laid-out control on the controls row.
func (v *View) renderControls() string {
	c := overlay.New(v.cols, 1)
	controls := v.wrapper.Query(chrome.ClassControls)
	if controls == nil {
		return ""
	}
	controls.Walk(func(el *dom.Element) bool {
		if hidden(el) {
			return false
		}
		col := toCols(el.PageLeft())
		switch {
		case el.HasClass(chrome.ClassButton):
			c.Place(renderButton(el), col, 0)
		case el.HasClass(chrome.ClassVolumeSlider):
			c.Place(v.renderVolume(el), col, 0)
		}
		return true
	})
	if td := v.wrapper.Query(chrome.ClassTimeDisplay); td != nil {
		c.Place(styles.T().S().Muted.Render(td.Text()), toCols(td.PageLeft()), 0)
	}
	return c.String()
}

func renderButton(btn *dom.Element) string {
	s := styles.T().S()
	style := s.Button
	switch {
	case chrome.IsDisabled(btn):
		style = s.Disabled
	case btn.AttrOr("aria-pressed", "false") == "true":
		style = s.Active
	}
	return style.Render(" " + glyph(btn) + " ")
}

func (v *View) renderVolume(track *dom.Element) string {
	s := styles.T().S()
	width := toCols(track.OffsetWidth())
	level := 0
	if h := track.Query(chrome.ClassVolumeHandle); h != nil {
		level = min(toCols(h.OffsetLeft())+1, width)
	}
	if btn := v.wrapper.Query(chrome.ClassVolumeButton); btn != nil && btn.AttrOr(chrome.AttrIcon, "") == icons.Muted {
		level = 0
	}
	return s.Active.Render(strings.Repeat(volumeFilled, level)) +
		s.Subtle.Render(strings.Repeat(volumeEmpty, width-level))
}

// renderMenu draws the open settings menu: one row per menu element, the
// label on the left and the current value or check mark on the right.
func (v *View) renderMenu() (string, int, int, bool) {
	menu := v.wrapper.Query(chrome.ClassSettingsMenu)
	if menu == nil || hidden(menu) || menu.OffsetHeight() == 0 {
		return "", 0, 0, false
	}
	s := styles.T().S()
	width := toCols(menu.OffsetWidth())
	var lines []string
	for _, row := range menu.Children() {
		if row.OffsetHeight() == 0 {
			continue
		}
		lines = append(lines, menuLine(row, width, s))
	}
	r := menu.BoundingRect()
	return strings.Join(lines, "\n"), toCols(r.Left), int(r.Top) / CellHeight, true
}

func menuLine(row *dom.Element, width int, s *styles.Styles) string {
	if row.HasClass(chrome.ClassPanelHeader) {
		title := "‹ " + render.Sanitize(row.Text())
		return s.Panel.Bold(true).Render(render.Fit(" "+title, width))
	}
	label := render.Sanitize(textOf(row, chrome.ClassMenuLabel))
	var right string
	checked := row.AttrOr("aria-checked", "") == "true"
	switch row.AttrOr("role", "") {
	case "menuitemradio":
		if checked {
			right = "✓"
		}
	case "menuitemcheckbox":
		right = "[ ]"
		if checked {
			right = "[x]"
		}
	default:
		right = textOf(row, chrome.ClassMenuContent) + " ›"
	}
	line := render.Row(" "+render.Truncate(label, width-ansi.StringWidth(right)-3), right+" ", width)
	style := s.Panel
	switch {
	case row.AttrOr("aria-disabled", "") == "true":
		style = style.Foreground(styles.T().FgSubtle)
	case checked && row.AttrOr("role", "") == "menuitemradio":
		style = s.Selected
	}
	return style.Render(render.Fit(line, width))
}

func textOf(el *dom.Element, class string) string {
	if c := el.Query(class); c != nil {
		return c.Text()
	}
	return ""
}

// renderDrawer draws the open playlist drawer: a header row, then one row
// per visible card with the playing card highlighted.
func (v *View) renderDrawer() (string, int, int, bool) {
	drawer := v.wrapper.Query(chrome.ClassDrawer)
	if drawer == nil || !drawer.HasClass(chrome.StateDrawerOpen) || drawer.OffsetWidth() == 0 {
		return "", 0, 0, false
	}
	s := styles.T().S()
	width := toCols(drawer.OffsetWidth())
	height := int(drawer.OffsetHeight()) / CellHeight

	closeGlyph := ""
	if btn := drawer.Query(chrome.ClassDrawerClose); btn != nil {
		closeGlyph = " " + glyph(btn) + " "
	}
	title := render.Truncate(v.text(chrome.ClassDrawerTitle), width-ansi.StringWidth(closeGlyph)-2)
	lines := []string{s.Panel.Bold(true).Render(render.Row(" "+title, closeGlyph, width))}

	for _, card := range drawer.QueryAll(chrome.ClassCard) {
		if card.OffsetHeight() == 0 {
			continue
		}
		meta := textOf(card, chrome.ClassCardMeta)
		title := render.Sanitize(textOf(card, chrome.ClassCardTitle))
		if meta != "" {
			meta = " " + meta + " "
		}
		line := render.Row(" "+render.Truncate(title, width-ansi.StringWidth(meta)-2), meta, width)
		style := s.Panel
		if card.HasClass(chrome.StateCardPlaying) {
			style = s.Selected
		}
		lines = append(lines, style.Render(render.Fit(line, width)))
	}
	blank := s.Panel.Render(strings.Repeat(" ", width))
	for len(lines) < height {
		lines = append(lines, blank)
	}
	r := drawer.BoundingRect()
	return strings.Join(lines, "\n"), toCols(r.Left), int(r.Top) / CellHeight, true
}

// renderTooltip draws the preview bubble where the tooltip controller put
// it: the page type, the item title and its duration.
func (v *View) renderTooltip() (string, int, int, bool) {
	tip := v.wrapper.Query(chrome.ClassTooltip)
	if tip == nil || tip.AttrOr("aria-hidden", "true") != "false" {
		return "", 0, 0, false
	}
	s := styles.T().S()
	var rows []string
	for _, class := range []string{chrome.ClassTooltipTitle, chrome.ClassTooltipText, chrome.ClassTooltipDuration} {
		if t := v.text(class); t != "" {
			rows = append(rows, t)
		}
	}
	if len(rows) == 0 {
		return "", 0, 0, false
	}
	for i, r := range rows {
		rows[i] = s.Tooltip.Render(render.Fit(" "+r, tooltipCols))
	}
	col := min(toCols(tip.OffsetLeft()), v.cols-tooltipCols)
	row := int(tip.OffsetTop()) / CellHeight
	row += tooltipRows - len(rows)
	return lipgloss.JoinVertical(lipgloss.Left, rows...), max(col, 0), row, true
}
