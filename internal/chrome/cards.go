package chrome

import (
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/llehouerou/vplayer/internal/dom"
	"github.com/llehouerou/vplayer/internal/playlist"
)

// RenderCards fills the drawer content with one card per item, or one per
// language variant for items that have them.
func RenderCards(content *dom.Element, items []playlist.Item) {
	content.RemoveChildren()
	for _, it := range items {
		playing := it.State == playlist.Playing
		if !it.HasLanguages() {
			content.AppendChild(card(it.ID, "", itemTitle(it.Info.Title, it.URL), sizeLabel(it.Size), playing))
			continue
		}
		for _, v := range it.Languages {
			title := itemTitle(v.Info.Title, v.URL)
			if title == "" {
				title = itemTitle(it.Info.Title, it.URL)
			}
			content.AppendChild(card(v.ID, it.ID, title, strings.ToUpper(v.Language), playing && v.PlayingState))
		}
	}
}

func card(id, parentID, title, meta string, playing bool) *dom.Element {
	el := dom.NewElement("div", ClassCard)
	el.ToggleClass(StateCardPlaying, playing)

	click := dom.NewElement("div", ClassCardClick)
	click.SetAttr(AttrVideoID, id)
	if parentID != "" {
		click.SetAttr(AttrParentID, parentID)
	}
	t := dom.NewElement("div", ClassCardTitle)
	t.SetText(title)
	click.AppendChild(t)
	if meta != "" {
		m := dom.NewElement("div", ClassCardMeta)
		m.SetText(meta)
		click.AppendChild(m)
	}
	el.AppendChild(click)
	return el
}

func itemTitle(title, url string) string {
	if title != "" {
		return title
	}
	if url == "" {
		return ""
	}
	return filepath.Base(url)
}

func sizeLabel(size int64) string {
	if size <= 0 {
		return ""
	}
	return humanize.Bytes(uint64(size))
}
