package chrome

import (
	"strconv"

	"github.com/llehouerou/vplayer/internal/dom"
	"github.com/llehouerou/vplayer/internal/settings"
)

// RenderSettings replaces the content of the settings menu element with
// the rows of v. Every row carries data-attr; choices also carry
// data-parent-attr and data-value.
func RenderSettings(menu *dom.Element, v settings.View) {
	menu.RemoveChildren()
	for _, r := range v.Rows {
		menu.AppendChild(settingsRow(r))
	}
}

func settingsRow(r settings.Row) *dom.Element {
	if r.Kind == settings.RowHeader {
		el := dom.NewElement("div", ClassPanelHeader)
		el.SetAttr(AttrAttr, r.Attr)
		title := dom.NewElement("button", ClassPanelTitle)
		title.SetText(r.Title)
		el.AppendChild(title)
		return el
	}

	el := dom.NewElement("div", ClassMenuItem)
	el.SetAttr(AttrAttr, r.Attr)
	label := dom.NewElement("div", ClassMenuLabel)
	label.SetText(r.Title)
	el.AppendChild(label)

	switch {
	case r.Kind == settings.RowChoice:
		el.SetAttr("role", "menuitemradio")
		el.SetAttr(AttrParentAttr, r.Parent)
		el.SetAttr(AttrValue, r.Value)
		el.SetAttr("aria-checked", strconv.FormatBool(r.Checked))
	case r.Role == settings.RoleCheckbox:
		el.SetAttr("role", "menuitemcheckbox")
		el.SetAttr("aria-checked", strconv.FormatBool(r.Checked))
	default:
		el.SetAttr("role", "menuitem")
		el.SetAttr("aria-haspopup", "true")
		content := dom.NewElement("div", ClassMenuContent)
		content.SetText(r.Value)
		el.AppendChild(content)
	}
	if r.Disabled {
		el.SetAttr("aria-disabled", "true")
	}
	return el
}
