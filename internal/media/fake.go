package media

import (
	"math"

	"github.com/llehouerou/vplayer/internal/dom"
)

// Fake is a test double for Element. Play, Pause and seeks fire their
// events synchronously unless Hold is set, in which case the test fires
// them with Fire.
type Fake struct {
	dom.Target

	src         Source
	currentTime float64
	duration    float64
	volume      float64
	muted       bool
	paused      bool
	ended       bool
	rate        float64
	readyState  ReadyState
	buffered    Ranges
	tracks      []*TextTrack
	playErr     error
	playCalls   int
	pauseCalls  int
	loadCalls   int
	seeks       []float64
	sourceCalls []Source

	// Hold suppresses the events Play, Pause and SetCurrentTime would fire.
	Hold bool
}

// NewFake returns a paused fake with no metadata.
func NewFake() *Fake {
	return &Fake{
		duration: math.NaN(),
		volume:   1,
		paused:   true,
		rate:     1,
	}
}

var _ Element = (*Fake)(nil)

// Fire emits an event of type typ.
func (f *Fake) Fire(typ string) {
	f.Emit(dom.NewEvent(typ))
}

func (f *Fake) Source() Source { return f.src }

// SetSource resets the fake to an empty element. A playing fake fires
// pause, as Player does.
func (f *Fake) SetSource(src Source) {
	wasPlaying := !f.paused
	f.src = src
	f.sourceCalls = append(f.sourceCalls, src)
	f.readyState = HaveNothing
	f.paused = true
	f.ended = false
	f.currentTime = 0
	if wasPlaying {
		f.Fire(EventPause)
	}
}

func (f *Fake) Load() { f.loadCalls++ }

func (f *Fake) Play() error {
	f.playCalls++
	if f.playErr != nil {
		return f.playErr
	}
	if f.Hold {
		return nil
	}
	f.paused = false
	f.ended = false
	f.Fire(EventPlay)
	return nil
}

func (f *Fake) Pause() {
	f.pauseCalls++
	if f.Hold {
		return
	}
	if !f.paused {
		f.paused = true
		f.Fire(EventPause)
	}
}

func (f *Fake) CurrentTime() float64 { return f.currentTime }

func (f *Fake) SetCurrentTime(t float64) {
	f.seeks = append(f.seeks, t)
	f.currentTime = t
	if !f.Hold {
		f.Fire(EventTimeUpdate)
	}
}

func (f *Fake) Duration() float64 { return f.duration }

func (f *Fake) Volume() float64 { return f.volume }

func (f *Fake) SetVolume(v float64) { f.volume = v }

func (f *Fake) Muted() bool { return f.muted }

func (f *Fake) SetMuted(m bool) { f.muted = m }

func (f *Fake) Paused() bool { return f.paused }

func (f *Fake) Ended() bool { return f.ended }

func (f *Fake) PlaybackRate() float64 { return f.rate }

func (f *Fake) SetPlaybackRate(r float64) { f.rate = r }

func (f *Fake) ReadyState() ReadyState { return f.readyState }

func (f *Fake) Buffered() TimeRanges { return f.buffered }

func (f *Fake) TextTracks() []*TextTrack { return f.tracks }

// --- test helpers ---

// SetDuration sets the duration reported once metadata is loaded.
func (f *Fake) SetDuration(d float64) { f.duration = d }

// SetReadyState sets the readiness level.
func (f *Fake) SetReadyState(r ReadyState) { f.readyState = r }

// SetBuffered sets the buffered ranges.
func (f *Fake) SetBuffered(r ...Range) { f.buffered = r }

// SetTextTracks replaces the text tracks.
func (f *Fake) SetTextTracks(tracks ...*TextTrack) { f.tracks = tracks }

// SetPosition moves the playhead without firing events.
func (f *Fake) SetPosition(t float64) { f.currentTime = t }

// SetPlayError makes Play fail with err.
func (f *Fake) SetPlayError(err error) { f.playErr = err }

// SetPlaying forces the paused flag without firing events.
func (f *Fake) SetPlaying(playing bool) { f.paused = !playing }

// Finish simulates reaching the end: pause then ended.
func (f *Fake) Finish() {
	f.paused = true
	f.ended = true
	if !math.IsNaN(f.duration) {
		f.currentTime = f.duration
	}
	f.Fire(EventPause)
	f.Fire(EventEnded)
}

// LoadData simulates a completed load with the given duration: metadata,
// then data at HaveEnoughData.
func (f *Fake) LoadData(duration float64) {
	f.duration = duration
	f.readyState = HaveMetadata
	f.Fire(EventLoadedMetadata)
	f.readyState = HaveEnoughData
	f.Fire(EventLoadedData)
}

func (f *Fake) PlayCalls() int        { return f.playCalls }
func (f *Fake) PauseCalls() int       { return f.pauseCalls }
func (f *Fake) LoadCalls() int        { return f.loadCalls }
func (f *Fake) Seeks() []float64      { return f.seeks }
func (f *Fake) SourceCalls() []Source { return f.sourceCalls }
