package player

import (
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
)

// Output is the audio device streams are mixed into.
type Output interface {
	// Init prepares the device for format rate and returns the rate the
	// device actually runs at. Only the first call opens the device.
	Init(rate beep.SampleRate) (beep.SampleRate, error)
	Play(s beep.Streamer)
	Clear()
	// Lock and Unlock guard streamer state shared with the audio thread.
	Lock()
	Unlock()
}

// Speaker is the system audio device.
var Speaker Output = &speakerOutput{}

type speakerOutput struct {
	once sync.Once
	rate beep.SampleRate
	err  error
}

func (o *speakerOutput) Init(rate beep.SampleRate) (beep.SampleRate, error) {
	o.once.Do(func() {
		o.rate = rate
		o.err = speaker.Init(rate, rate.N(time.Second/10))
	})
	return o.rate, o.err
}

func (o *speakerOutput) Play(s beep.Streamer) { speaker.Play(s) }

func (o *speakerOutput) Clear() { speaker.Clear() }

func (o *speakerOutput) Lock() { speaker.Lock() }

func (o *speakerOutput) Unlock() { speaker.Unlock() }
