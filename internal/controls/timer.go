package controls

import (
	"fmt"
	"math"

	"github.com/llehouerou/vplayer/internal/chrome"
	"github.com/llehouerou/vplayer/internal/dom"
)

// TimeDisplay writes the current time and duration as m:ss.
type TimeDisplay struct {
	sess     *Session
	current  *dom.Element
	duration *dom.Element
}

func newTimeDisplay(sess *Session, f *finder) *TimeDisplay {
	return &TimeDisplay{
		sess:     sess,
		current:  f.find(chrome.ClassTimeCurrent),
		duration: f.find(chrome.ClassTimeDuration),
	}
}

// UpdateTime writes the current time.
func (t *TimeDisplay) UpdateTime() {
	t.current.SetText(FormatClock(t.sess.Media.CurrentTime()))
}

// UpdateDuration writes the duration.
func (t *TimeDisplay) UpdateDuration() {
	t.duration.SetText(FormatClock(t.sess.Media.Duration()))
}

// FormatClock formats seconds as m:ss. Unknown or negative values are 0:00.
func FormatClock(sec float64) string {
	if math.IsNaN(sec) || math.IsInf(sec, 0) || sec < 0 {
		sec = 0
	}
	s := int(sec)
	return fmt.Sprintf("%d:%02d", s/60, s%60)
}
