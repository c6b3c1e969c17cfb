// Package chrome builds the player's element tree: the wrapper with its
// media surface, control bar, progress bar, settings menu, tooltip and
// playlist drawer. Controllers find their elements through the hook class
// names in hooks.go.
package chrome

import (
	"cmp"
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/llehouerou/vplayer/internal/dom"
	"github.com/llehouerou/vplayer/internal/playlist"
)

//go:embed template.html
var template string

// ErrNoWrapper is returned when the template has no wrapper element.
var ErrNoWrapper = errors.New("chrome: template has no " + ClassWrapper)

// Options configures the built tree.
type Options struct {
	Width    int
	Height   int
	Autoplay bool
	Preload  string
	Loop     bool
	Muted    bool
}

// Build parses the chrome template, applies opts and appends the wrapper
// to root, or to the document root when root is nil.
func Build(doc *dom.Document, root *dom.Element, opts Options) (*dom.Element, error) {
	nodes, err := doc.Parse(strings.NewReader(template))
	if err != nil {
		return nil, fmt.Errorf("parse chrome template: %w", err)
	}
	var wrapper *dom.Element
	for _, n := range nodes {
		if n.HasClass(ClassWrapper) {
			wrapper = n
			break
		}
	}
	if wrapper == nil {
		return nil, ErrNoWrapper
	}

	if opts.Width > 0 {
		wrapper.SetStyle("width", fmt.Sprintf("%dpx", opts.Width))
	}
	if opts.Height > 0 {
		wrapper.SetStyle("height", fmt.Sprintf("%dpx", opts.Height))
	}
	if stream := wrapper.Query(ClassStream); stream != nil {
		if opts.Preload != "" {
			stream.SetAttr("preload", opts.Preload)
		}
		setFlag(stream, "autoplay", opts.Autoplay)
		setFlag(stream, "loop", opts.Loop)
		setFlag(stream, "muted", opts.Muted)
	}

	if root == nil {
		root = doc.Root()
	}
	root.AppendChild(wrapper)
	return wrapper, nil
}

func setFlag(el *dom.Element, name string, on bool) {
	if on {
		el.SetAttr(name, "")
	} else {
		el.RemoveAttr(name)
	}
}

// BindItem writes the playing item onto the media element: source, id,
// type, poster and one track child per text track. The title link in the
// top layer is replaced.
func BindItem(wrapper *dom.Element, it *playlist.Item) {
	src := it.Source()
	if stream := wrapper.Query(ClassStream); stream != nil {
		stream.SetAttr("src", src.URL)
		stream.SetAttr(AttrVideoID, src.ID)
		stream.SetAttr("type", src.Type)
		if src.Poster != "" {
			stream.SetAttr("poster", src.Poster)
		} else {
			stream.RemoveAttr("poster")
		}

		for _, t := range stream.QueryAll(ClassTrack) {
			stream.RemoveChild(t)
		}
		for _, t := range src.Tracks {
			el := dom.NewElement("track", ClassTrack)
			el.SetAttr("src", t.Src)
			el.SetAttr("lang", t.Lang)
			el.SetAttr("label", t.Label)
			el.SetAttr("kind", t.Kind)
			if t.Default {
				el.AddClass(ClassTrackDefault)
				el.SetAttr("default", "")
			}
			stream.AppendChild(el)
		}
	}

	text := wrapper.Query(ClassTitleText)
	if text == nil {
		return
	}
	text.RemoveChildren()
	info := it.Info
	if v := it.ActiveVariant(); v != nil && v.Info.Title != "" {
		info = v.Info
	}
	if info.Title == "" {
		return
	}
	link := dom.NewElement("a", ClassTitleLink)
	link.SetAttr("title", info.Title)
	if info.Link != "" {
		link.SetAttr("href", info.Link)
		link.SetAttr("target", cmp.Or(info.Target, "_blank"))
	}
	link.SetText(info.Title)
	text.AppendChild(link)
}

// SetEnabled shows a button, or disables and hides it.
func SetEnabled(btn *dom.Element, enabled bool) {
	btn.ToggleClass(StateDisabled, !enabled)
	btn.ToggleClass(StateHidden, !enabled)
}

// IsDisabled reports whether a button carries the disabled state.
func IsDisabled(btn *dom.Element) bool {
	return btn.HasClass(StateDisabled)
}

// SetIcon sets the icon name a renderer draws for btn, and its title.
func SetIcon(btn *dom.Element, icon, title string) {
	btn.SetAttr(AttrIcon, icon)
	btn.SetAttr("title", title)
}
