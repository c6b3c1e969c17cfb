package player

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/vplayer/internal/dom"
	"github.com/llehouerou/vplayer/internal/loop"
	"github.com/llehouerou/vplayer/internal/media"
)

const testRate = beep.SampleRate(8000)

// fakeOutput records the streams handed to the device.
type fakeOutput struct {
	mu     sync.Mutex
	plays  []beep.Streamer
	clears int
}

func (o *fakeOutput) Init(rate beep.SampleRate) (beep.SampleRate, error) { return rate, nil }
func (o *fakeOutput) Play(s beep.Streamer)                               { o.plays = append(o.plays, s) }
func (o *fakeOutput) Clear()                                             { o.clears++ }
func (o *fakeOutput) Lock()                                              { o.mu.Lock() }
func (o *fakeOutput) Unlock()                                            { o.mu.Unlock() }

// drain plays the last queued stream to its end.
func (o *fakeOutput) drain() {
	s := o.plays[len(o.plays)-1]
	buf := make([][2]float64, 512)
	for range 1000 {
		if _, ok := s.Stream(buf); !ok {
			return
		}
	}
}

// writeWAV writes sec seconds of mono silence.
func writeWAV(t *testing.T, sec float64) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "clip.wav")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	format := beep.Format{SampleRate: testRate, NumChannels: 1, Precision: 2}
	require.NoError(t, wav.Encode(f, beep.Silence(int(sec*float64(testRate))), format))
	return path
}

type harness struct {
	lp     *loop.Manual
	out    *fakeOutput
	p      *Player
	events []string
}

func newHarness(t *testing.T, opts Options) *harness {
	t.Helper()
	h := &harness{lp: loop.NewManual(), out: &fakeOutput{}}
	opts.Output = h.out
	h.p = New(h.lp, opts)
	for _, typ := range []string{
		media.EventPlay, media.EventPause, media.EventEnded, media.EventTimeUpdate,
		media.EventProgress, media.EventLoadedData, media.EventLoadedMetadata,
		media.EventVolumeChange, media.EventRateChange, media.EventEmptied, media.EventError,
	} {
		h.p.AddEventListener(typ, func(e *dom.Event) { h.events = append(h.events, e.Type) })
	}
	return h
}

// load binds path and waits for the background decode to land.
func (h *harness) load(t *testing.T, src media.Source) {
	t.Helper()
	h.p.SetSource(src)
	require.Eventually(t, func() bool {
		h.lp.RunPending()
		return h.p.ReadyState() == media.HaveEnoughData || h.p.Err() != nil
	}, 2*time.Second, time.Millisecond)
}

func (h *harness) count(typ string) int {
	n := 0
	for _, e := range h.events {
		if e == typ {
			n++
		}
	}
	return n
}

func TestLoad_ReadinessEvents(t *testing.T) {
	h := newHarness(t, Options{})
	assert.True(t, h.p.Paused())
	assert.Equal(t, media.HaveNothing, h.p.ReadyState())

	h.load(t, media.Source{URL: writeWAV(t, 1)})

	require.NoError(t, h.p.Err())
	assert.Equal(t, []string{media.EventLoadedMetadata, media.EventLoadedData, media.EventProgress}, h.events)
	assert.InDelta(t, 1, h.p.Duration(), 1e-6)
	b := h.p.Buffered()
	require.Equal(t, 1, b.Len())
	assert.InDelta(t, 1, b.End(0), 1e-6)
	assert.True(t, h.p.Paused())
	assert.Empty(t, h.out.plays)
}

func TestLoad_Unsupported(t *testing.T) {
	h := newHarness(t, Options{})
	h.load(t, media.Source{URL: "/videos/clip.mkv"})

	assert.ErrorIs(t, h.p.Err(), ErrUnsupported)
	assert.Equal(t, []string{media.EventError}, h.events)
	assert.Equal(t, media.HaveNothing, h.p.ReadyState())
	assert.ErrorIs(t, h.p.Play(), ErrUnsupported)
}

func TestPlay_BeforeLoad(t *testing.T) {
	h := newHarness(t, Options{})
	assert.ErrorIs(t, h.p.Play(), ErrNotLoaded)
	h.p.Pause()
	assert.Empty(t, h.events)
}

func TestPlayPause(t *testing.T) {
	h := newHarness(t, Options{})
	h.load(t, media.Source{URL: writeWAV(t, 1)})
	h.events = nil

	require.NoError(t, h.p.Play())
	assert.False(t, h.p.Paused())
	assert.Equal(t, []string{media.EventPlay}, h.events)
	assert.Len(t, h.out.plays, 1)

	require.NoError(t, h.p.Play())
	assert.Equal(t, 1, h.count(media.EventPlay), "play while playing fired again")

	h.p.Pause()
	assert.True(t, h.p.Paused())
	assert.Equal(t, 1, h.count(media.EventPause))

	require.NoError(t, h.p.Play())
	assert.Len(t, h.out.plays, 1, "resume queued a second stream")
}

func TestTicker_TimeUpdates(t *testing.T) {
	h := newHarness(t, Options{})
	h.load(t, media.Source{URL: writeWAV(t, 1)})
	require.NoError(t, h.p.Play())
	h.events = nil

	h.lp.Advance(3 * TickInterval)
	assert.Equal(t, 3, h.count(media.EventTimeUpdate))
	assert.Equal(t, 1, h.lp.Pending())

	h.p.Pause()
	assert.Equal(t, 0, h.lp.Pending())
}

func TestSetCurrentTime(t *testing.T) {
	h := newHarness(t, Options{})
	h.load(t, media.Source{URL: writeWAV(t, 1)})
	h.events = nil

	h.p.SetCurrentTime(0.5)
	assert.InDelta(t, 0.5, h.p.CurrentTime(), 1e-3)
	assert.Equal(t, []string{media.EventTimeUpdate}, h.events)

	h.p.SetCurrentTime(10)
	assert.InDelta(t, 1, h.p.CurrentTime(), 1e-3)
	h.p.SetCurrentTime(-3)
	assert.InDelta(t, 0, h.p.CurrentTime(), 1e-3)
}

func TestEnded_RestartsFromZero(t *testing.T) {
	h := newHarness(t, Options{})
	h.load(t, media.Source{URL: writeWAV(t, 0.2)})
	require.NoError(t, h.p.Play())
	h.events = nil

	h.out.drain()
	h.lp.RunPending()

	assert.True(t, h.p.Ended())
	assert.True(t, h.p.Paused())
	assert.Equal(t, []string{media.EventTimeUpdate, media.EventPause, media.EventEnded}, h.events)

	require.NoError(t, h.p.Play())
	assert.False(t, h.p.Ended())
	assert.InDelta(t, 0, h.p.CurrentTime(), 1e-3)
	assert.Len(t, h.out.plays, 2)
}

func TestEnded_Repeat(t *testing.T) {
	h := newHarness(t, Options{Repeat: true})
	h.load(t, media.Source{URL: writeWAV(t, 0.2)})
	require.NoError(t, h.p.Play())

	h.out.drain()
	h.lp.RunPending()

	assert.False(t, h.p.Ended())
	assert.False(t, h.p.Paused())
	assert.Zero(t, h.count(media.EventEnded))
	assert.Len(t, h.out.plays, 2)
}

func TestSetSource_Supersedes(t *testing.T) {
	h := newHarness(t, Options{})
	first := writeWAV(t, 1)
	h.load(t, media.Source{URL: first})
	require.NoError(t, h.p.Play())
	h.events = nil

	second := writeWAV(t, 0.5)
	h.p.SetSource(media.Source{URL: "/missing.wav"})
	h.load(t, media.Source{URL: second})

	assert.Equal(t, second, h.p.Source().URL)
	assert.InDelta(t, 0.5, h.p.Duration(), 1e-6)
	assert.NoError(t, h.p.Err())
	assert.Equal(t, 1, h.count(media.EventEmptied))
	assert.Equal(t, 1, h.count(media.EventPause), "switching away from a playing source")
	assert.Equal(t, media.EventPause, h.events[0])
	assert.Equal(t, 1, h.count(media.EventLoadedData))
	assert.Zero(t, h.count(media.EventError), "stale load reported")
	assert.Equal(t, 1, h.out.clears)
	assert.True(t, h.p.Paused())
}

func TestVolumeAndMute(t *testing.T) {
	h := newHarness(t, Options{})
	h.load(t, media.Source{URL: writeWAV(t, 1)})
	h.events = nil

	h.p.SetVolume(0.5)
	assert.Equal(t, 0.5, h.p.Volume())
	assert.InDelta(t, -1, h.p.vol.Volume, 1e-9)

	h.p.SetVolume(0.5)
	h.p.SetMuted(true)
	assert.True(t, h.p.vol.Silent)
	h.p.SetMuted(false)
	assert.False(t, h.p.vol.Silent)
	assert.Equal(t, 3, h.count(media.EventVolumeChange))

	h.p.SetVolume(7)
	assert.Equal(t, 1.0, h.p.Volume())
	assert.InDelta(t, 0, h.p.vol.Volume, 1e-9)
}

func TestGain(t *testing.T) {
	assert.Equal(t, 0.0, gain(1))
	assert.Equal(t, -1.0, gain(0.5))
	assert.Equal(t, -2.0, gain(0.25))
	assert.Equal(t, -10.0, gain(0))
}

func TestPlaybackRate(t *testing.T) {
	h := newHarness(t, Options{})
	h.p.SetPlaybackRate(1.5)
	h.load(t, media.Source{URL: writeWAV(t, 1)})

	assert.Equal(t, 1.5, h.p.PlaybackRate())
	assert.Equal(t, 1.5, h.p.rater.Ratio())

	h.p.SetPlaybackRate(0)
	assert.Equal(t, 1.5, h.p.PlaybackRate())
	h.p.SetPlaybackRate(2)
	assert.Equal(t, 2.0, h.p.rater.Ratio())
}

func TestLoad_CaptionTracks(t *testing.T) {
	dir := t.TempDir()
	vtt := filepath.Join(dir, "clip.vtt")
	require.NoError(t, os.WriteFile(vtt, []byte("WEBVTT\n\n00:00.000 --> 00:00.400\nHello\n"), 0o600))

	h := newHarness(t, Options{})
	h.load(t, media.Source{
		URL: writeWAV(t, 1),
		Tracks: []media.TrackSource{
			{Src: vtt, Kind: "captions", Lang: "en", Default: true},
			{Src: filepath.Join(dir, "missing.vtt"), Kind: "captions", Lang: "fr"},
		},
	})

	tracks := h.p.TextTracks()
	require.Len(t, tracks, 1)
	assert.True(t, tracks[0].Default)

	tracks[0].SetMode(media.ModeHidden)
	h.p.SetCurrentTime(0.1)
	require.Len(t, tracks[0].ActiveCues(), 1)
	assert.Equal(t, "Hello", tracks[0].ActiveCues()[0].Text)
}

func TestSupports(t *testing.T) {
	assert.True(t, Supports("/a/b.MP3"))
	assert.True(t, Supports("x.flac"))
	assert.False(t, Supports("x.mp4"))
	assert.False(t, Supports("noext"))
}
