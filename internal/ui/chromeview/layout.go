// Package chromeview lays out a player chrome tree on a terminal grid,
// draws it with lipgloss and maps terminal cells back to elements.
//
// Element boxes are kept in page pixels so the controllers' geometry
// (slider spans, tooltip offsets, the narrow-menu threshold) works
// unchanged. One terminal cell is CellWidth by CellHeight pixels.
package chromeview

import (
	"strconv"
	"strings"

	"github.com/llehouerou/vplayer/internal/chrome"
	"github.com/llehouerou/vplayer/internal/dom"
	"github.com/llehouerou/vplayer/internal/icons"
	"github.com/llehouerou/vplayer/internal/ui/render"
)

// Cell size in page pixels.
const (
	CellWidth  = 8
	CellHeight = 16
)

const (
	bottomRows  = 2  // progress bar, controls
	volumeCols  = 10 // volume slider track
	menuCols    = 28
	drawerCols  = 34
	tooltipCols = 24
	tooltipRows = 3
	minCols     = 40
	minRows     = 8
)

// View draws one chrome wrapper.
type View struct {
	wrapper    *dom.Element
	cols, rows int
}

// New returns a view of wrapper. Call Resize before drawing.
func New(wrapper *dom.Element) *View {
	return &View{wrapper: wrapper, cols: minCols, rows: minRows}
}

// Size returns the grid size in cells.
func (v *View) Size() (cols, rows int) { return v.cols, v.rows }

// Resize sets the grid size and lays the tree out again.
func (v *View) Resize(cols, rows int) {
	v.cols, v.rows = max(cols, minCols), max(rows, minRows)
	v.Layout()
}

func cells(col, row, w, h int) dom.Box {
	return dom.Box{
		Left:   float64(col * CellWidth),
		Top:    float64(row * CellHeight),
		Width:  float64(w * CellWidth),
		Height: float64(h * CellHeight),
	}
}

// px parses a "12.5px" style value.
func px(v string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(v), "px"), 64)
	if err != nil {
		return 0
	}
	return f
}

// translateX parses a "translateX(12px)" transform.
func translateX(v string) float64 {
	v = strings.TrimPrefix(v, "translateX(")
	return px(strings.TrimSuffix(v, ")"))
}

func toCols(p float64) int { return int(p) / CellWidth }

func (v *View) set(class string, b dom.Box) {
	if el := v.wrapper.Query(class); el != nil {
		el.SetBox(b)
	}
}

// hidden reports whether el takes no room: hidden buttons and closed
// panels.
func hidden(el *dom.Element) bool {
	return el.HasClass(chrome.StateHidden) || el.AttrOr("aria-hidden", "false") == "true"
}

// buttonCols is the width of a button: its glyph plus one cell of padding
// on each side.
func buttonCols(btn *dom.Element) int {
	return render.Width(glyph(btn)) + 2
}

func glyph(btn *dom.Element) string {
	name := btn.AttrOr(chrome.AttrIcon, "")
	return icons.Label(name, name)
}

// Layout assigns a box to every element the controllers measure or the
// user can point at. Boxes are relative to the parent element.
func (v *View) Layout() {
	cols, rows := v.cols, v.rows
	bottom := rows - bottomRows

	v.wrapper.SetBox(cells(0, 0, cols, rows))
	v.set(chrome.ClassContainer, cells(0, 0, cols, rows))
	v.set(chrome.ClassStream, cells(0, 0, cols, rows))
	v.set(chrome.ClassGradientTop, cells(0, 0, cols, 1))
	v.set(chrome.ClassTopLayer, cells(0, 0, cols, 1))
	v.set(chrome.ClassGradientBottom, cells(0, bottom, cols, bottomRows))
	v.set(chrome.ClassBottomLayer, cells(0, bottom, cols, bottomRows))
	v.set(chrome.ClassCaptionWindow, cells(0, bottom-2, cols, 1))

	bar := cols - 2
	v.set(chrome.ClassProgressWrapper, cells(1, 0, bar, 1))
	v.set(chrome.ClassProgressBar, cells(0, 0, bar, 1))
	if sc := v.wrapper.Query(chrome.ClassScrubberContainer); sc != nil {
		b := cells(0, 0, 1, 1)
		b.Left = translateX(sc.Style("transform"))
		sc.SetBox(b)
	}
	v.set(chrome.ClassScrubberButton, cells(0, 0, 1, 1))

	v.set(chrome.ClassControls, cells(0, 1, cols, 1))
	v.layoutLeft()
	v.layoutRight()
	v.layoutMenu()
	v.layoutDrawer()

	if tip := v.wrapper.Query(chrome.ClassTooltip); tip != nil {
		tip.SetBox(dom.Box{
			Left:   px(tip.Style("left")),
			Top:    px(tip.Style("top")),
			Width:  tooltipCols * CellWidth,
			Height: tooltipRows * CellHeight,
		})
	}
}

func (v *View) layoutLeft() {
	left := v.wrapper.Query(chrome.ClassControlsLeft)
	if left == nil {
		return
	}
	col := 0
	for _, el := range left.Children() {
		switch {
		case el.HasClass(chrome.ClassVolumeWrapper):
			col += v.layoutVolume(el, col)
		case el.HasClass(chrome.ClassButton):
			col += placeButton(el, col)
		}
	}
	left.SetBox(cells(1, 0, col, 1))

	if td := v.wrapper.Query(chrome.ClassTimeDisplay); td != nil {
		td.SetBox(cells(col+2, bottomRows-1, render.Width(td.Text()), 1))
	}
}

func placeButton(btn *dom.Element, col int) int {
	if hidden(btn) {
		btn.SetBox(dom.Box{})
		return 0
	}
	w := buttonCols(btn)
	btn.SetBox(cells(col, 0, w, 1))
	return w
}

// layoutVolume places the mute button followed by the slider track, and
// returns the columns used.
func (v *View) layoutVolume(wrapper *dom.Element, col int) int {
	w := 0
	if btn := wrapper.Query(chrome.ClassVolumeButton); btn != nil {
		w = placeButton(btn, 0)
	}
	if panel := wrapper.Query(chrome.ClassVolumePanel); panel != nil {
		panel.SetBox(cells(w, 0, volumeCols, 1))
		w += volumeCols + 1
	}
	v.set(chrome.ClassVolumeSlider, cells(0, 0, volumeCols, 1))
	if h := wrapper.Query(chrome.ClassVolumeHandle); h != nil {
		b := cells(0, 0, 1, 1)
		b.Left = px(h.Style("left"))
		h.SetBox(b)
	}
	wrapper.SetBox(cells(col, 0, w, 1))
	return w
}

func (v *View) layoutRight() {
	right := v.wrapper.Query(chrome.ClassControlsRight)
	if right == nil {
		return
	}
	total := 0
	for _, btn := range right.Children() {
		if !hidden(btn) {
			total += buttonCols(btn)
		}
	}
	col := 0
	for _, btn := range right.Children() {
		col += placeButton(btn, col)
	}
	right.SetBox(cells(v.cols-1-total, 0, total, 1))
}

// layoutMenu stacks the menu rows above the bottom layer, right-aligned.
func (v *View) layoutMenu() {
	menu := v.wrapper.Query(chrome.ClassSettingsMenu)
	if menu == nil {
		return
	}
	rows := menu.Children()
	if hidden(menu) || len(rows) == 0 {
		menu.SetBox(dom.Box{})
		for _, r := range rows {
			r.SetBox(dom.Box{})
		}
		return
	}
	n := min(len(rows), v.rows-bottomRows-1)
	menu.SetBox(cells(v.cols-menuCols-1, v.rows-bottomRows-n, menuCols, n))
	for i, r := range rows {
		if i >= n {
			r.SetBox(dom.Box{})
			continue
		}
		r.SetBox(cells(0, i, menuCols, 1))
	}
}

// layoutDrawer docks the open drawer on the right, between the title row
// and the bottom layer. The header holds the title and the close button;
// each card takes one row.
func (v *View) layoutDrawer() {
	drawer := v.wrapper.Query(chrome.ClassDrawer)
	if drawer == nil {
		return
	}
	header := drawer.Query(chrome.ClassDrawerHeader)
	closeBtn := drawer.Query(chrome.ClassDrawerClose)
	body := drawer.Query(chrome.ClassDrawerBody)
	cards := drawer.QueryAll(chrome.ClassCard)

	if !drawer.HasClass(chrome.StateDrawerOpen) {
		for _, el := range append([]*dom.Element{drawer, header, closeBtn, body}, cards...) {
			if el != nil {
				el.SetBox(dom.Box{})
			}
		}
		for _, c := range drawer.QueryAll(chrome.ClassCardClick) {
			c.SetBox(dom.Box{})
		}
		return
	}

	height := v.rows - bottomRows - 1
	w := min(drawerCols, v.cols/2)
	drawer.SetBox(cells(v.cols-w, 1, w, height))
	if header != nil {
		header.SetBox(cells(0, 0, w, 1))
	}
	if closeBtn != nil {
		cw := buttonCols(closeBtn)
		closeBtn.SetBox(cells(w-cw, 0, cw, 1))
	}
	if body != nil {
		body.SetBox(cells(0, 1, w, height-1))
	}
	for i, c := range cards {
		b := cells(0, i, w, 1)
		if i >= height-1 {
			b = dom.Box{}
		}
		c.SetBox(b)
		if click := c.Query(chrome.ClassCardClick); click != nil {
			click.SetBox(dom.Box{Width: b.Width, Height: b.Height})
		}
	}
}

// HitTest returns the topmost element under the cell (col, row), or the
// wrapper when nothing else is there. The tooltip never takes pointer
// events.
func (v *View) HitTest(col, row int) *dom.Element {
	v.Layout()
	x, y := v.CellCenter(col, row)
	var hit *dom.Element
	v.wrapper.Walk(func(el *dom.Element) bool {
		if el.HasClass(chrome.ClassTooltip) || hidden(el) && el != v.wrapper {
			return false
		}
		if el.BoundingRect().Contains(x, y) {
			hit = el
		}
		return true
	})
	if hit == nil {
		return v.wrapper
	}
	return hit
}

// CellCenter returns the page coordinates of the middle of a cell.
func (v *View) CellCenter(col, row int) (x, y float64) {
	return float64(col*CellWidth) + CellWidth/2, float64(row*CellHeight) + CellHeight/2
}
