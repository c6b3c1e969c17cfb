package player

import (
	"errors"
	"math"
	"time"

	"github.com/gopxl/beep/v2"

	"github.com/llehouerou/vplayer/internal/media"
)

// TickInterval is how often timeupdate fires while playing.
const TickInterval = 250 * time.Millisecond

// ErrNotLoaded is returned by Play before a source has loaded.
var ErrNotLoaded = errors.New("no media loaded")

// Play starts or resumes playback. From the end it restarts at zero.
func (p *Player) Play() error {
	if p.ctrl == nil {
		if p.err != nil {
			return p.err
		}
		return ErrNotLoaded
	}
	if p.ended {
		p.seek(0)
	}
	if !p.paused {
		return nil
	}

	p.out.Lock()
	p.ctrl.Paused = false
	p.out.Unlock()
	if !p.queued {
		gen := p.gen
		p.out.Play(beep.Seq(p.vol, beep.Callback(func() {
			p.loop.Post(func() { p.finished(gen) })
		})))
		p.queued = true
	}
	p.paused = false
	p.fire(media.EventPlay)
	p.startTicker()
	return nil
}

// Pause pauses playback. It does nothing when already paused.
func (p *Player) Pause() {
	if p.paused || p.ctrl == nil {
		return
	}
	p.out.Lock()
	p.ctrl.Paused = true
	p.out.Unlock()
	p.paused = true
	p.stopTicker()
	p.update()
	p.fire(media.EventPause)
}

// finished runs on the loop once the stream is drained.
func (p *Player) finished(gen int) {
	if gen != p.gen || p.ctrl == nil {
		return
	}
	p.queued = false
	if p.repeat && !p.paused {
		p.seek(0)
		p.paused = true
		_ = p.Play()
		return
	}
	p.stopTicker()
	p.paused = true
	p.ended = true
	p.update()
	p.fire(media.EventPause)
	p.fire(media.EventEnded)
}

func (p *Player) Paused() bool { return p.paused }

func (p *Player) Ended() bool { return p.ended }

// CurrentTime returns the stream position in seconds.
func (p *Player) CurrentTime() float64 {
	if p.stream == nil {
		return 0
	}
	p.out.Lock()
	pos := p.stream.Position()
	p.out.Unlock()
	return p.format.SampleRate.D(pos).Seconds()
}

// SetCurrentTime seeks to t seconds, clamped to the stream.
func (p *Player) SetCurrentTime(t float64) {
	if p.stream == nil || math.IsNaN(t) {
		return
	}
	p.seek(t)
	p.ended = false
	p.update()
}

func (p *Player) seek(t float64) {
	n := p.format.SampleRate.N(time.Duration(t * float64(time.Second)))
	n = max(0, min(n, p.stream.Len()))
	p.out.Lock()
	err := p.stream.Seek(n)
	p.out.Unlock()
	if err != nil {
		p.log.WithError(err).WithField("time", t).Warn("seek failed")
	}
	p.ended = false
}

func (p *Player) startTicker() {
	if p.ticker != nil {
		return
	}
	p.ticker = p.loop.AfterFunc(TickInterval, p.tick)
}

func (p *Player) stopTicker() {
	if p.ticker == nil {
		return
	}
	p.ticker.Stop()
	p.ticker = nil
}

func (p *Player) tick() {
	p.ticker = nil
	if p.paused {
		return
	}
	p.update()
	p.startTicker()
}

// update advances the text tracks and reports the position.
func (p *Player) update() {
	pos := p.CurrentTime()
	for _, t := range p.tracks {
		t.Update(pos)
	}
	p.fire(media.EventTimeUpdate)
}

func (p *Player) Volume() float64 { return p.level }

// SetVolume sets the level in [0, 1].
func (p *Player) SetVolume(v float64) {
	v = max(0, min(1, v))
	if v == p.level {
		return
	}
	p.level = v
	p.applyVolume()
	p.fire(media.EventVolumeChange)
}

func (p *Player) Muted() bool { return p.muted }

func (p *Player) SetMuted(m bool) {
	if m == p.muted {
		return
	}
	p.muted = m
	p.applyVolume()
	p.fire(media.EventVolumeChange)
}

func (p *Player) applyVolume() {
	if p.vol == nil {
		return
	}
	p.out.Lock()
	p.vol.Volume = gain(p.level)
	p.vol.Silent = p.muted || p.level == 0
	p.out.Unlock()
}

// gain maps a linear level to beep's base-2 volume: 1 is 0, 0.5 is -1.
func gain(level float64) float64 {
	if level <= 0 {
		return -10
	}
	return math.Log2(min(level, 1))
}

func (p *Player) PlaybackRate() float64 { return p.rate }

// SetPlaybackRate changes the speed; pitch follows.
func (p *Player) SetPlaybackRate(r float64) {
	if r <= 0 || math.IsNaN(r) || r == p.rate {
		return
	}
	p.rate = r
	if p.rater != nil {
		p.out.Lock()
		p.rater.SetRatio(r)
		p.out.Unlock()
	}
	p.fire(media.EventRateChange)
}
