package controls

import (
	"github.com/sirupsen/logrus"

	"github.com/llehouerou/vplayer/internal/chrome"
	"github.com/llehouerou/vplayer/internal/dom"
)

// Drawer is the playlist drawer and its toggle button.
type Drawer struct {
	sess     *Session
	log      logrus.FieldLogger
	btn      *dom.Element
	el       *dom.Element
	title    *dom.Element
	closeBtn *dom.Element
	content  *dom.Element
	open     bool

	onSelect func(parentID, id string) error
}

func newDrawer(sess *Session, f *finder) *Drawer {
	return &Drawer{
		sess:     sess,
		log:      sess.logger("drawer"),
		btn:      f.find(chrome.ClassPlaylistButton),
		el:       f.find(chrome.ClassDrawer),
		title:    f.find(chrome.ClassDrawerTitle),
		closeBtn: f.find(chrome.ClassDrawerClose),
		content:  f.find(chrome.ClassDrawerBody),
	}
}

// Button returns the playlist button.
func (d *Drawer) Button() *dom.Element { return d.btn }

// CloseButton returns the drawer close button.
func (d *Drawer) CloseButton() *dom.Element { return d.closeBtn }

// IsOpen reports whether the drawer is shown.
func (d *Drawer) IsOpen() bool { return d.open }

// Refresh redraws the cards. The playlist button is only offered for
// playlists of more than one item.
func (d *Drawer) Refresh() {
	if !d.open {
		chrome.SetEnabled(d.btn, d.sess.Playlist.Len() > 1)
	}
	d.title.SetText("Playlist")
	chrome.RenderCards(d.content, d.sess.Playlist.Items())
}

// Toggle opens or closes the drawer.
func (d *Drawer) Toggle(open bool) {
	d.open = open
	w := d.sess.Wrapper
	w.ToggleClass(chrome.StatePlaylistOpen, open)
	w.ToggleClass(chrome.StateShowInfo, !open)
	chrome.SetEnabled(d.btn, !open && d.sess.Playlist.Len() > 1)
	d.el.ToggleClass(chrome.StateDrawerOpen, open)
	if open {
		d.el.RemoveAttr("aria-hidden")
	} else {
		d.el.SetAttr("aria-hidden", "true")
	}
}

// HandleCard plays the item of the card under target. It reports whether
// target was a card of the open drawer.
func (d *Drawer) HandleCard(target *dom.Element) bool {
	if !d.open {
		return false
	}
	card := target.Closest(chrome.ClassCardClick)
	if card == nil || !d.content.Contains(card) {
		return false
	}
	id, parentID := card.Data("video-id"), card.Data("video-parent-id")
	d.Toggle(false)
	if d.onSelect == nil {
		return true
	}
	if err := d.onSelect(parentID, id); err != nil {
		d.log.WithError(err).WithFields(logrus.Fields{
			"item":   id,
			"parent": parentID,
		}).Warn("card select failed")
	}
	return true
}

// Bookmark is the bookmark button, offered when a bookmark endpoint is
// configured.
type Bookmark struct {
	sess *Session
	log  logrus.FieldLogger
	btn  *dom.Element
}

func newBookmark(sess *Session, f *finder) *Bookmark {
	return &Bookmark{
		sess: sess,
		log:  sess.logger("bookmark"),
		btn:  f.find(chrome.ClassBookmarkButton),
	}
}

// Button returns the bookmark button.
func (b *Bookmark) Button() *dom.Element { return b.btn }

// Refresh shows the button when a bookmark endpoint is configured.
func (b *Bookmark) Refresh() {
	chrome.SetEnabled(b.btn, b.sess.Config.HasBookmark())
}

// Press logs a bookmark request for the current position.
func (b *Bookmark) Press() {
	if !b.sess.Config.HasBookmark() {
		return
	}
	b.log.WithFields(logrus.Fields{
		"url":  b.sess.Config.BookmarkURL,
		"item": b.sess.Current().ID,
		"time": b.sess.Media.CurrentTime(),
	}).Info("bookmark requested")
}
