package captions

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/llehouerou/vplayer/internal/media"
)

// Cues converts lyric lines into cues. Each line lasts until the next one
// starts; the last lasts until duration, or five seconds when the duration
// is unknown. Empty lines only end the previous cue.
func (l *Lyrics) Cues(duration float64) []media.Cue {
	var cues []media.Cue
	for i, line := range l.Lines {
		start := line.Time.Seconds()
		end := start + 5
		if i+1 < len(l.Lines) {
			end = l.Lines[i+1].Time.Seconds()
		} else if !math.IsNaN(duration) && duration > start {
			end = duration
		}
		if line.Text == "" || end <= start {
			continue
		}
		cues = append(cues, media.Cue{Start: start, End: end, Text: line.Text})
	}
	return cues
}

// Load reads the caption file of src and returns a disabled text track.
// The format is chosen by extension: .lrc or .vtt.
func Load(src media.TrackSource, duration float64) (*media.TextTrack, error) {
	f, err := os.Open(src.Src)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cues []media.Cue
	switch ext := strings.ToLower(filepath.Ext(src.Src)); ext {
	case ".lrc":
		lyrics, err := ParseLRC(f)
		if err != nil {
			return nil, err
		}
		cues = lyrics.Cues(duration)
	case ".vtt":
		cues, err = ParseVTT(f)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported caption format %q", ext)
	}
	return media.NewTextTrack(src, cues), nil
}
