// Package controls is the playback orchestration engine: the controllers
// behind the player chrome and the dispatcher routing media, pointer,
// keyboard and fullscreen events to them.
//
// A Player is built over an existing chrome tree and a media element.
// Init resolves every hook and binds the playing item; the controllers
// become active on the first loadeddata and are torn down by Destroy.
package controls

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/llehouerou/vplayer/internal/chrome"
	"github.com/llehouerou/vplayer/internal/config"
	"github.com/llehouerou/vplayer/internal/dom"
	"github.com/llehouerou/vplayer/internal/errmsg"
	"github.com/llehouerou/vplayer/internal/log"
	"github.com/llehouerou/vplayer/internal/loop"
	"github.com/llehouerou/vplayer/internal/media"
	"github.com/llehouerou/vplayer/internal/playback"
	"github.com/llehouerou/vplayer/internal/playlist"
	"github.com/llehouerou/vplayer/internal/settings"
)

// Options are the collaborators of a Player.
type Options struct {
	Media    media.Element
	Wrapper  *dom.Element
	Document *dom.Document // defaults to the wrapper's document
	Loop     loop.Loop
	Config   *config.Config // defaults to config.Default()
	Logger   logrus.FieldLogger

	// OnError receives failures of user actions.
	OnError func(op errmsg.Op, err error)
}

// Player owns one session and its controllers.
type Player struct {
	opts     Options
	playlist *playlist.Playlist
	machine  *playback.Machine

	sess       *Session
	play       *PlayButton
	scrub      *Scrub
	volume     *Volume
	nav        *Navigator
	settings   *SettingsMenu
	captions   *Captions
	fullscreen *Fullscreen
	tooltip    *Tooltip
	timer      *TimeDisplay
	drawer     *Drawer
	bookmark   *Bookmark
	dispatch   *Dispatcher

	active    bool
	destroyed bool
}

// New validates opts and builds the playlist from the configuration.
func New(opts Options) (*Player, error) {
	if opts.Media == nil || opts.Wrapper == nil {
		return nil, errors.New("controls: media and wrapper are required")
	}
	if opts.Loop == nil {
		return nil, errors.New("controls: loop is required")
	}
	if opts.Document == nil {
		opts.Document = opts.Wrapper.Document()
	}
	if opts.Document == nil {
		return nil, errors.New("controls: wrapper is not attached to a document")
	}
	if opts.Config == nil {
		opts.Config = config.Default()
	}
	if len(opts.Config.Settings) == 0 {
		opts.Config.Settings = settings.Default()
	}
	if opts.Logger == nil {
		opts.Logger = log.Discard()
	}

	pl, err := playlist.New(opts.Config.Src, opts.Config.Lang)
	if err != nil {
		return nil, fmt.Errorf("build playlist: %w", err)
	}
	return &Player{
		opts:     opts,
		playlist: pl,
		machine:  playback.NewMachine(),
	}, nil
}

// Init creates the session, resolves the chrome hooks and binds the
// playing item. A missing hook is reported as a *NotFoundError.
func (p *Player) Init() error {
	if p.destroyed {
		return ErrDestroyed
	}
	if p.sess != nil {
		return ErrInitialized
	}
	o := p.opts
	sess := &Session{
		Media:    o.Media,
		Wrapper:  o.Wrapper,
		Doc:      o.Document,
		Loop:     o.Loop,
		Config:   o.Config,
		Playlist: p.playlist,
		Log:      o.Logger,
		Report:   p.report,
	}

	f := &finder{root: o.Wrapper}
	p.play = newPlayButton(sess, f, p.machine)
	p.scrub = newScrub(sess, f)
	p.volume = newVolume(sess, f)
	p.nav = newNavigator(sess, f)
	p.settings = newSettingsMenu(sess, f)
	p.captions = newCaptions(sess, f)
	p.fullscreen = newFullscreen(sess, f)
	p.tooltip = newTooltip(sess, f)
	p.timer = newTimeDisplay(sess, f)
	p.drawer = newDrawer(sess, f)
	p.bookmark = newBookmark(sess, f)
	if f.err != nil {
		return f.err
	}

	p.settings.onAutoplay = func() {
		if sess.Media.Paused() {
			p.play.Play(true)
		}
	}
	p.settings.onLanguage = p.nav.ChangeLanguage
	p.drawer.onSelect = p.nav.Select

	p.sess = sess
	p.dispatch = newDispatcher(p)
	p.dispatch.bindLoad()
	p.nav.Load()
	return nil
}

// onLoadedData activates the controllers on the first load with current
// data, and refreshes them on later loads.
func (p *Player) onLoadedData() {
	if p.sess.Media.ReadyState() < media.HaveCurrentData {
		return
	}
	if !p.active {
		p.activate()
		return
	}
	p.refresh()
}

func (p *Player) activate() {
	if err := p.volume.bind(); err != nil {
		p.report(errmsg.OpInitPlayer, err)
	}
	p.scrub.bind()
	p.dispatch.bind()
	p.active = true

	cfg := p.sess.Config
	p.volume.Apply(cfg.Volume)
	if cfg.Muted {
		p.volume.ToggleMuted()
	}
	p.sess.logger("player").WithField("items", p.playlist.Len()).Info("controls active")
	p.refresh()
}

// refresh brings every controller in line with a newly loaded source.
func (p *Player) refresh() {
	sess := p.sess
	cfg := sess.Config
	sess.Media.SetPlaybackRate(cfg.Speed)
	sess.Wrapper.AddClass(chrome.StatePaused)

	p.play.Reset()
	p.timer.UpdateDuration()
	p.timer.UpdateTime()
	p.scrub.Update()
	p.settings.Rebuild()
	p.nav.UpdateButtons()
	p.drawer.Refresh()
	p.bookmark.Refresh()

	if cfg.Autoplay {
		p.play.Play(true)
	}
}

func (p *Player) report(op errmsg.Op, err error) {
	if err == nil {
		return
	}
	p.opts.Logger.WithError(err).WithField("op", string(op)).Warn("action failed")
	if p.opts.OnError != nil {
		p.opts.OnError(op, err)
	}
}

// Destroy stops polling, removes every listener, unloads the media and
// drops the session. Calling it again does nothing.
func (p *Player) Destroy() {
	if p.destroyed {
		return
	}
	p.destroyed = true
	if p.sess == nil {
		return
	}

	p.dispatch.unbind()
	p.scrub.Destroy()
	p.volume.Destroy()
	p.captions.Destroy()
	p.tooltip.Reset()

	m := p.sess.Media
	m.Pause()
	m.SetSource(media.Source{})
	m.Load()
	p.machine.Close()

	p.sess.Media = nil
	p.sess.Wrapper = nil
	p.sess = nil
	p.active = false
}

// Active reports whether the controllers are bound.
func (p *Player) Active() bool { return p.active }

// Session returns the live session, nil before Init and after Destroy.
func (p *Player) Session() *Session { return p.sess }

// Playlist returns the playlist.
func (p *Player) Playlist() *playlist.Playlist { return p.playlist }

// Machine returns the playback state machine.
func (p *Player) Machine() *playback.Machine { return p.machine }

// Subscribe returns a subscription to playback state changes.
func (p *Player) Subscribe() *playback.Subscription { return p.machine.Subscribe() }

// PlayButton returns the play/pause button.
func (p *Player) PlayButton() *PlayButton { return p.play }

// Scrub returns the progress bar controller.
func (p *Player) Scrub() *Scrub { return p.scrub }

// Volume returns the volume controller.
func (p *Player) Volume() *Volume { return p.volume }

// Navigator returns the previous/next controller.
func (p *Player) Navigator() *Navigator { return p.nav }

// Settings returns the speed and language menu.
func (p *Player) Settings() *SettingsMenu { return p.settings }

// Captions returns the caption toggle.
func (p *Player) Captions() *Captions { return p.captions }

// Fullscreen returns the fullscreen toggle.
func (p *Player) Fullscreen() *Fullscreen { return p.fullscreen }

// Tooltip returns the progress bar tooltip.
func (p *Player) Tooltip() *Tooltip { return p.tooltip }

// TimeDisplay returns the elapsed and total time labels.
func (p *Player) TimeDisplay() *TimeDisplay { return p.timer }

// Drawer returns the playlist drawer.
func (p *Player) Drawer() *Drawer { return p.drawer }

// Bookmark returns the bookmark button.
func (p *Player) Bookmark() *Bookmark { return p.bookmark }

// Dispatcher returns the media event dispatcher.
func (p *Player) Dispatcher() *Dispatcher { return p.dispatch }

// Next plays the following item.
func (p *Player) Next() error {
	if p.sess == nil {
		return ErrDestroyed
	}
	return p.nav.Next()
}

// Prev plays the preceding item.
func (p *Player) Prev() error {
	if p.sess == nil {
		return ErrDestroyed
	}
	return p.nav.Prev()
}

// ChangeLanguage switches the playing item's language variant.
func (p *Player) ChangeLanguage(lang string) error {
	if p.sess == nil {
		return ErrDestroyed
	}
	return p.nav.ChangeLanguage(lang)
}
