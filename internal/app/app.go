// Package app is the terminal front end: a bubbletea model that hosts the
// player chrome, feeds it mouse and keyboard input and draws it.
package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/llehouerou/vplayer/internal/chrome"
	"github.com/llehouerou/vplayer/internal/config"
	"github.com/llehouerou/vplayer/internal/controls"
	"github.com/llehouerou/vplayer/internal/dom"
	"github.com/llehouerou/vplayer/internal/errmsg"
	"github.com/llehouerou/vplayer/internal/keymap"
	"github.com/llehouerou/vplayer/internal/log"
	"github.com/llehouerou/vplayer/internal/media"
	"github.com/llehouerou/vplayer/internal/playback"
	"github.com/llehouerou/vplayer/internal/player"
	"github.com/llehouerou/vplayer/internal/state"
	"github.com/llehouerou/vplayer/internal/ui/chromeview"
)

// inlineRows is the chrome height outside fullscreen when the config sets
// no height.
const inlineRows = 14

// Store persists preferences. *state.Manager implements it.
type Store interface {
	SavePreferences(p state.Preferences)
}

// Options configure the model.
type Options struct {
	Config *config.Config
	Store  Store // optional
	Logger logrus.FieldLogger
	// Output is the audio device; nil uses the speaker.
	Output player.Output
	// Media replaces the audio backend, for tests.
	Media media.Element
}

// Model is the root bubbletea model.
type Model struct {
	cfg   *config.Config
	store Store
	log   logrus.FieldLogger

	loop    *Loop
	doc     *dom.Document
	wrapper *dom.Element
	media   media.Element
	ctl     *controls.Player
	view    *chromeview.View
	sub     *playback.Subscription
	mediaL  []dom.ListenerID

	terminal *keymap.Resolver
	keys     keyMap
	help     help.Model
	showHelp bool

	ptr        pointer
	fullscreen bool
	screen     tea.Cmd // alt-screen switch queued by the platform methods
	status     string
	quitting   bool

	width, height int
	now           func() time.Time
}

// New builds the chrome, the audio backend and the controllers. The
// player is initialized; playback starts once the first item loads.
func New(opts Options) (*Model, error) {
	if opts.Config == nil {
		return nil, errors.New("app: config is required")
	}
	if opts.Logger == nil {
		opts.Logger = log.Discard()
	}
	cfg := opts.Config

	m := &Model{
		cfg:      cfg,
		store:    opts.Store,
		log:      opts.Logger.WithField("component", "app"),
		loop:     NewLoop(),
		doc:      dom.NewDocument(),
		terminal: keymap.TerminalResolver(),
		keys:     newKeyMap(),
		help:     help.New(),
		now:      time.Now,
	}

	wrapper, err := chrome.Build(m.doc, nil, chrome.Options{
		Width:    cfg.Width,
		Height:   cfg.Height,
		Autoplay: cfg.Autoplay,
		Preload:  cfg.Preload,
		Loop:     cfg.Loop,
		Muted:    cfg.Muted,
	})
	if err != nil {
		return nil, fmt.Errorf("build chrome: %w", err)
	}
	m.wrapper = wrapper
	m.view = chromeview.New(wrapper)
	m.installFullscreen()

	m.media = opts.Media
	if m.media == nil {
		m.media = player.New(m.loop, player.Options{
			Output: opts.Output,
			Logger: opts.Logger,
			Repeat: cfg.Loop,
		})
	}

	m.ctl, err = controls.New(controls.Options{
		Media:    m.media,
		Wrapper:  wrapper,
		Document: m.doc,
		Loop:     m.loop,
		Config:   cfg,
		Logger:   opts.Logger,
		OnError:  m.onError,
	})
	if err != nil {
		return nil, err
	}
	m.resize(80, inlineRows+1)
	if err := m.ctl.Init(); err != nil {
		return nil, err
	}
	m.sub = m.ctl.Subscribe()
	for _, typ := range []string{media.EventVolumeChange, media.EventRateChange, media.EventError} {
		m.mediaL = append(m.mediaL, m.media.AddEventListener(typ, m.onMediaEvent))
	}
	return m, nil
}

// Controls returns the player controllers.
func (m *Model) Controls() *controls.Player { return m.ctl }

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.loop.Wait(),
		m.loop.Flush(),
		WatchPlayback(m.sub),
		tea.SetWindowTitle("vplayer"),
	)
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.layout()
	case wakeMsg:
		m.loop.Drain()
		cmds = append(cmds, m.loop.Wait())
	case timerMsg:
		m.loop.fire(msg)
	case PlaybackMsg:
		cmds = append(cmds, tea.SetWindowTitle(m.title(msg.Current)), WatchPlayback(m.sub))
	case tea.KeyMsg:
		cmds = append(cmds, m.handleKey(msg))
	case tea.MouseMsg:
		m.handleMouse(msg)
	}
	if m.quitting {
		return m, tea.Quit
	}
	if m.screen != nil {
		cmds = append(cmds, m.screen)
		m.screen = nil
	}
	cmds = append(cmds, m.loop.Flush())
	return m, tea.Batch(cmds...)
}

func (m *Model) onError(op errmsg.Op, err error) {
	m.status = errmsg.Format(op, err)
}

func (m *Model) onMediaEvent(e *dom.Event) {
	switch e.Type {
	case media.EventError:
		p, ok := m.media.(*player.Player)
		if !ok || p.Err() == nil {
			return
		}
		title := ""
		if it := m.ctl.Playlist().Current(); it != nil {
			title = it.Info.Title
		}
		m.status = errmsg.FormatWith(errmsg.OpLoadMedia, title, p.Err())
	default:
		m.status = ""
		m.savePreferences()
	}
}

// savePreferences records the live volume and speed with the other
// user choices. The store debounces writes.
func (m *Model) savePreferences() {
	if m.store == nil {
		return
	}
	m.cfg.Volume = m.media.Volume() * 100
	m.cfg.Muted = m.media.Muted()
	if r := m.media.PlaybackRate(); r > 0 {
		m.cfg.Speed = r
	}
	m.store.SavePreferences(state.Capture(m.cfg))
}

// quit saves preferences and tears the player down.
func (m *Model) quit() tea.Cmd {
	m.savePreferences()
	for _, id := range m.mediaL {
		m.media.RemoveEventListener(id)
	}
	m.mediaL = nil
	m.ctl.Destroy()
	m.quitting = true
	m.log.Info("quit")
	return tea.Quit
}

func (m *Model) title(s playback.State) string {
	it := m.ctl.Playlist().Current()
	if it == nil {
		return "vplayer"
	}
	glyph := ""
	switch s {
	case playback.StatePlaying:
		glyph = "▶ "
	case playback.StatePaused:
		glyph = "⏸ "
	}
	return glyph + it.Info.Title + " - vplayer"
}

// layout sizes the chrome: the whole terminal minus the status line in
// fullscreen, the configured box otherwise.
func (m *Model) layout() {
	if m.width == 0 {
		return
	}
	if m.fullscreen {
		m.resize(m.width, m.height-1)
		return
	}
	cols, rows := m.width, inlineRows
	if m.cfg.Width > 0 {
		cols = min(cols, m.cfg.Width/chromeview.CellWidth)
	}
	if m.cfg.Height > 0 {
		rows = m.cfg.Height / chromeview.CellHeight
	}
	m.resize(cols, min(rows, m.height-1))
}

func (m *Model) resize(cols, rows int) {
	m.view.Resize(cols, rows)
	if m.ctl != nil && m.ctl.Active() {
		m.ctl.Scrub().Update()
		if s := m.ctl.Volume().Slider(); s != nil {
			s.Refresh()
		}
	}
}
