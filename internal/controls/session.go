package controls

import (
	"github.com/sirupsen/logrus"

	"github.com/llehouerou/vplayer/internal/config"
	"github.com/llehouerou/vplayer/internal/dom"
	"github.com/llehouerou/vplayer/internal/errmsg"
	"github.com/llehouerou/vplayer/internal/loop"
	"github.com/llehouerou/vplayer/internal/media"
	"github.com/llehouerou/vplayer/internal/playlist"
)

// Session is the state shared by the controllers of one player.
type Session struct {
	Media    media.Element
	Wrapper  *dom.Element
	Doc      *dom.Document
	Loop     loop.Loop
	Config   *config.Config
	Playlist *playlist.Playlist
	Log      logrus.FieldLogger
	// Report surfaces a failed user action. Nil drops it.
	Report func(op errmsg.Op, err error)
}

func (s *Session) report(op errmsg.Op, err error) {
	if err != nil && s.Report != nil {
		s.Report(op, err)
	}
}

// Current returns the playing item.
func (s *Session) Current() *playlist.Item {
	return s.Playlist.Current()
}

// logger returns the session logger scoped to a component.
func (s *Session) logger(component string) logrus.FieldLogger {
	return s.Log.WithField("component", component)
}

// finder resolves hook elements under the wrapper and keeps the first
// missing one. A missing hook yields a detached placeholder.
type finder struct {
	root *dom.Element
	err  error
}

func (f *finder) find(hook string) *dom.Element {
	el := f.root.Query(hook)
	if el == nil {
		if f.root.HasClass(hook) {
			return f.root
		}
		if f.err == nil {
			f.err = &NotFoundError{Hook: hook}
		}
		return dom.NewElement("div", hook)
	}
	return el
}

// eventTarget is anything listeners can be attached to.
type eventTarget interface {
	AddEventListener(typ string, fn dom.Listener) dom.ListenerID
	RemoveEventListener(id dom.ListenerID) bool
}

type binding struct {
	target eventTarget
	id     dom.ListenerID
}

// bindings records installed listeners so they can be removed together.
type bindings []binding

func (b *bindings) add(t eventTarget, typ string, fn dom.Listener) {
	*b = append(*b, binding{target: t, id: t.AddEventListener(typ, fn)})
}

func (b *bindings) removeAll() {
	for _, x := range *b {
		x.target.RemoveEventListener(x.id)
	}
	*b = nil
}
