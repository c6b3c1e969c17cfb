package controls

import (
	"fmt"

	"github.com/llehouerou/vplayer/internal/chrome"
	"github.com/llehouerou/vplayer/internal/dom"
)

// PreviewKind is what a tooltip previews.
type PreviewKind string

const (
	PreviewNext     PreviewKind = "next"
	PreviewPrev     PreviewKind = "prev"
	PreviewTimeline PreviewKind = "timeline"
)

// Preview thumbnail size in pixels.
const (
	previewWidth  = 160
	previewHeight = 90
)

// Preview is the content of a hover preview. Empty fields are left as
// they are.
type Preview struct {
	Kind     PreviewKind
	Image    string
	Duration string
	Title    string
	PageType string
}

// Tooltip is the hover preview bubble above the control bar.
type Tooltip struct {
	sess     *Session
	el       *dom.Element
	image    *dom.Element
	duration *dom.Element
	text     *dom.Element
	title    *dom.Element
	bottom   *dom.Element
	anchors  map[PreviewKind]*dom.Element
}

func newTooltip(sess *Session, f *finder) *Tooltip {
	return &Tooltip{
		sess:     sess,
		el:       f.find(chrome.ClassTooltip),
		image:    f.find(chrome.ClassTooltipImage),
		duration: f.find(chrome.ClassTooltipDuration),
		text:     f.find(chrome.ClassTooltipText),
		title:    f.find(chrome.ClassTooltipTitle),
		bottom:   f.find(chrome.ClassBottomLayer),
		anchors: map[PreviewKind]*dom.Element{
			PreviewNext: f.find(chrome.ClassNextButton),
			PreviewPrev: f.find(chrome.ClassPrevButton),
		},
	}
}

// Element returns the tooltip wrapper.
func (t *Tooltip) Element() *dom.Element { return t.el }

// Visible reports whether the tooltip is shown.
func (t *Tooltip) Visible() bool {
	return t.el.AttrOr("aria-hidden", "true") == "false"
}

// SetPreview fills the provided pieces of p, positions the bubble above
// the button it belongs to and shows it.
func (t *Tooltip) SetPreview(p Preview) {
	if p.Image != "" {
		t.image.ClearStyle()
		t.image.SetStyle("background-image", "url("+p.Image+")")
		t.image.SetStyle("background-position", "0px 0px")
		t.image.SetStyle("background-size", fmt.Sprintf("%dpx %dpx", previewWidth, previewHeight))
		t.image.SetStyle("width", fmt.Sprintf("%dpx", previewWidth))
		t.image.SetStyle("height", fmt.Sprintf("%dpx", previewHeight))
		t.el.AddClass(chrome.StateTooltipPreview)
	}
	if p.Duration != "" {
		t.duration.SetText(p.Duration)
		t.el.AddClass(chrome.StateTooltipDuration)
	}
	if p.Title != "" {
		t.text.SetText(p.Title)
		t.el.AddClass(chrome.StateTooltipText)
	}
	if p.PageType != "" {
		t.title.SetText(p.PageType)
	}
	t.position(p.Kind)
	t.el.SetAttr("aria-hidden", "false")
}

// position places the bubble at the anchor button's offset, just above
// the bottom layer.
func (t *Tooltip) position(kind PreviewKind) {
	anchor, ok := t.anchors[kind]
	if !ok {
		return
	}
	left := anchor.OffsetLeft()
	top := t.sess.Wrapper.BoundingRect().Height - t.bottom.BoundingRect().Height - t.el.OffsetHeight()
	t.el.SetAttr("style", fmt.Sprintf("left: %gpx; top: %gpx", left, top))
}

// Reset clears every piece of the preview and hides the bubble.
func (t *Tooltip) Reset() {
	t.el.RemoveClass(chrome.StateTooltipPreview)
	t.el.RemoveClass(chrome.StateTooltipText)
	t.el.RemoveClass(chrome.StateTooltipDuration)
	t.image.RemoveAttr("style")
	t.duration.SetText("")
	t.text.SetText("")
	t.title.SetText("")
	t.el.SetAttr("aria-hidden", "true")
}
