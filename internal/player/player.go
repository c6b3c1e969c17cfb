// Package player is the audio backend of the media element: it decodes
// local files with beep, mixes them into the speaker and reports playback
// through media events on the loop.
package player

import (
	"math"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/sirupsen/logrus"

	"github.com/llehouerou/vplayer/internal/captions"
	"github.com/llehouerou/vplayer/internal/dom"
	"github.com/llehouerou/vplayer/internal/log"
	"github.com/llehouerou/vplayer/internal/loop"
	"github.com/llehouerou/vplayer/internal/media"
)

// Options configure a Player.
type Options struct {
	Output Output // default: Speaker
	Logger logrus.FieldLogger
	// Repeat restarts the source at its end instead of ending.
	Repeat bool
}

// Player implements media.Element over a beep stream. Every method must
// be called on the loop; the audio thread only reaches the player through
// loop.Post.
type Player struct {
	dom.Target

	loop   loop.Loop
	out    Output
	log    logrus.FieldLogger
	repeat bool

	src media.Source
	gen int
	err error

	stream beep.StreamSeekCloser
	format beep.Format
	rater  *beep.Resampler
	ctrl   *beep.Ctrl
	vol    *effects.Volume
	queued bool

	duration float64
	ready    media.ReadyState
	paused   bool
	ended    bool
	level    float64
	muted    bool
	rate     float64
	tracks   []*media.TextTrack
	ticker   loop.Timer
}

var _ media.Element = (*Player)(nil)

// New returns an empty, paused player.
func New(lp loop.Loop, opts Options) *Player {
	if opts.Output == nil {
		opts.Output = Speaker
	}
	if opts.Logger == nil {
		opts.Logger = log.Discard()
	}
	return &Player{
		loop:     lp,
		out:      opts.Output,
		log:      opts.Logger.WithField("component", "media"),
		repeat:   opts.Repeat,
		duration: math.NaN(),
		paused:   true,
		level:    1,
		rate:     1,
	}
}

func (p *Player) fire(typ string) {
	p.Emit(dom.NewEvent(typ))
}

// Err returns the error of the last failed load.
func (p *Player) Err() error { return p.err }

func (p *Player) Source() media.Source { return p.src }

// SetSource unloads the current source and starts loading src.
func (p *Player) SetSource(src media.Source) {
	p.src = src
	p.Load()
}

// Load discards the current stream and decodes the bound source in the
// background. A playing element reports pause first. Results land on the loop; a newer Load wins.
func (p *Player) Load() {
	hadStream, wasPlaying := p.stream != nil, !p.paused
	p.unload()
	if wasPlaying {
		p.fire(media.EventPause)
	}
	if hadStream {
		p.fire(media.EventEmptied)
	}
	p.gen++
	if p.src.URL == "" {
		return
	}
	gen, path := p.gen, p.src.URL
	go func() {
		s, format, err := open(path)
		p.loop.Post(func() { p.loaded(gen, s, format, err) })
	}()
}

func (p *Player) loaded(gen int, s beep.StreamSeekCloser, format beep.Format, err error) {
	if gen != p.gen {
		if s != nil {
			s.Close()
		}
		return
	}
	if err != nil {
		p.err = err
		p.log.WithError(err).WithField("url", p.src.URL).Warn("load failed")
		p.fire(media.EventError)
		return
	}

	rate, err := p.out.Init(format.SampleRate)
	if err != nil {
		s.Close()
		p.err = err
		p.log.WithError(err).Error("audio output unavailable")
		p.fire(media.EventError)
		return
	}

	var src beep.Streamer = s
	if format.SampleRate != rate {
		src = beep.Resample(4, format.SampleRate, rate, s)
	}
	p.stream = s
	p.format = format
	p.rater = beep.ResampleRatio(4, p.rate, src)
	p.ctrl = &beep.Ctrl{Streamer: p.rater, Paused: true}
	p.vol = &effects.Volume{Streamer: p.ctrl, Base: 2}
	p.applyVolume()

	p.duration = format.SampleRate.D(s.Len()).Seconds()
	p.ready = media.HaveMetadata
	p.tracks = p.loadTracks()
	p.log.WithFields(logrus.Fields{
		"url":      p.src.URL,
		"duration": p.duration,
		"rate":     int(format.SampleRate),
		"tracks":   len(p.tracks),
	}).Debug("source loaded")
	p.fire(media.EventLoadedMetadata)

	p.ready = media.HaveEnoughData
	p.fire(media.EventLoadedData)
	p.fire(media.EventProgress)
}

func (p *Player) loadTracks() []*media.TextTrack {
	var tracks []*media.TextTrack
	for _, ts := range p.src.Tracks {
		t, err := captions.Load(ts, p.duration)
		if err != nil {
			p.log.WithError(err).WithField("src", ts.Src).Warn("caption track skipped")
			continue
		}
		tracks = append(tracks, t)
	}
	return tracks
}

// unload stops the audio and resets the element to its empty state.
func (p *Player) unload() {
	p.stopTicker()
	if p.queued {
		p.out.Clear()
		p.queued = false
	}
	if p.stream != nil {
		p.stream.Close()
	}
	p.stream, p.rater, p.ctrl, p.vol = nil, nil, nil, nil
	p.err = nil
	p.duration = math.NaN()
	p.ready = media.HaveNothing
	p.paused = true
	p.ended = false
	p.tracks = nil
}

func (p *Player) Duration() float64 { return p.duration }

func (p *Player) ReadyState() media.ReadyState { return p.ready }

// Buffered reports the whole file once loaded.
func (p *Player) Buffered() media.TimeRanges {
	if p.ready < media.HaveMetadata {
		return media.Ranges(nil)
	}
	return media.Ranges{{Start: 0, End: p.duration}}
}

func (p *Player) TextTracks() []*media.TextTrack { return p.tracks }
