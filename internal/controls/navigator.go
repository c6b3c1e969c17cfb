package controls

import (
	"github.com/sirupsen/logrus"

	"github.com/llehouerou/vplayer/internal/chrome"
	"github.com/llehouerou/vplayer/internal/dom"
	"github.com/llehouerou/vplayer/internal/playlist"
)

// Navigator moves through the playlist and binds the playing item to the
// media.
type Navigator struct {
	sess *Session
	log  logrus.FieldLogger
	prev *dom.Element
	next *dom.Element
}

func newNavigator(sess *Session, f *finder) *Navigator {
	return &Navigator{
		sess: sess,
		log:  sess.logger("navigator"),
		prev: f.find(chrome.ClassPrevButton),
		next: f.find(chrome.ClassNextButton),
	}
}

// PrevButton returns the previous button element.
func (n *Navigator) PrevButton() *dom.Element { return n.prev }

// NextButton returns the next button element.
func (n *Navigator) NextButton() *dom.Element { return n.next }

// Next plays the following item. Past the end it returns a
// *playlist.OutOfRangeError and changes nothing.
func (n *Navigator) Next() error {
	if _, err := n.sess.Playlist.Next(); err != nil {
		return err
	}
	n.switched()
	return nil
}

// Prev plays the preceding item.
func (n *Navigator) Prev() error {
	if _, err := n.sess.Playlist.Prev(); err != nil {
		return err
	}
	n.switched()
	return nil
}

// Select plays an item, or one language variant of it, by id.
func (n *Navigator) Select(parentID, id string) error {
	if _, err := n.sess.Playlist.Select(parentID, id); err != nil {
		return err
	}
	n.switched()
	return nil
}

// switched syncs the session language with the new item's variant, resets
// the speed to normal and loads it.
func (n *Navigator) switched() {
	cfg := n.sess.Config
	if v := n.sess.Current().ActiveVariant(); v != nil {
		cfg.Lang = v.Language
		n.sess.Playlist.SetLang(v.Language)
	}
	cfg.Speed = 1
	n.Load()
}

// ChangeLanguage switches the playing item to its variant for lang
// without moving in the playlist.
func (n *Navigator) ChangeLanguage(lang string) error {
	if !n.sess.Current().SelectLanguage(lang) {
		return ErrUnknownLanguage
	}
	n.sess.Config.Lang = lang
	n.sess.Playlist.SetLang(lang)
	n.Load()
	return nil
}

// Load binds the playing item to the chrome and the media, then updates
// the prev/next buttons.
func (n *Navigator) Load() {
	it := n.sess.Current()
	chrome.BindItem(n.sess.Wrapper, it)
	src := it.Source()
	n.sess.Media.SetSource(src)
	n.log.WithFields(logrus.Fields{
		"item":  it.ID,
		"index": n.sess.Playlist.CurrentIndex(),
		"url":   src.URL,
	}).Info("item loaded")
	n.UpdateButtons()
}

// UpdateButtons disables prev at the first item and next at the last;
// with fewer than two items both are disabled.
func (n *Navigator) UpdateButtons() {
	pl := n.sess.Playlist
	chrome.SetEnabled(n.prev, pl.Len() > 1 && pl.HasPrev())
	chrome.SetEnabled(n.next, pl.Len() > 1 && pl.HasNext())
}

// Preview returns the tooltip content for the neighbour in direction
// kind, or false at a boundary.
func (n *Navigator) Preview(kind PreviewKind) (Preview, bool) {
	pl := n.sess.Playlist
	var it *playlist.Item
	label := ""
	switch kind {
	case PreviewNext:
		it, label = pl.Item(pl.CurrentIndex()+1), "Next"
	case PreviewPrev:
		it, label = pl.Item(pl.CurrentIndex()-1), "Prev"
	}
	if it == nil {
		return Preview{}, false
	}
	src := it.Source()
	return Preview{
		Kind:     kind,
		Image:    src.Poster,
		Title:    it.Title(),
		PageType: label,
	}, true
}
