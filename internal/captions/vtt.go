package captions

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/llehouerou/vplayer/internal/media"
)

// ErrNotVTT is returned when the input lacks the WEBVTT signature.
var ErrNotVTT = errors.New("missing WEBVTT header")

// ParseVTT parses WebVTT cues. Cue settings after the end timestamp and
// NOTE/STYLE blocks are ignored.
func ParseVTT(r io.Reader) ([]media.Cue, error) {
	scanner := bufio.NewScanner(r)
	if !scanner.Scan() || !strings.HasPrefix(strings.TrimPrefix(scanner.Text(), "\ufeff"), "WEBVTT") {
		return nil, ErrNotVTT
	}

	var cues []media.Cue
	var cur *media.Cue
	var text []string
	flush := func() {
		if cur != nil {
			cur.Text = strings.Join(text, "\n")
			cues = append(cues, *cur)
		}
		cur, text = nil, nil
	}

	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		switch {
		case strings.TrimSpace(line) == "":
			flush()
		case cur == nil && strings.Contains(line, "-->"):
			start, end, ok := parseTiming(line)
			if ok {
				cur = &media.Cue{Start: start, End: end}
			}
		case cur != nil:
			text = append(text, line)
		}
	}
	flush()
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return cues, nil
}

func parseTiming(line string) (float64, float64, bool) {
	from, rest, ok := strings.Cut(line, "-->")
	if !ok {
		return 0, 0, false
	}
	fields := strings.Fields(rest)
	if len(fields) == 0 {
		return 0, 0, false
	}
	start, err := parseVTTTime(strings.TrimSpace(from))
	if err != nil {
		return 0, 0, false
	}
	end, err := parseVTTTime(fields[0])
	if err != nil {
		return 0, 0, false
	}
	return start, end, true
}

// parseVTTTime parses hh:mm:ss.ttt or mm:ss.ttt into seconds.
func parseVTTTime(s string) (float64, error) {
	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, errors.New("bad timestamp " + strconv.Quote(s))
	}
	secs, err := strconv.ParseFloat(parts[len(parts)-1], 64)
	if err != nil {
		return 0, err
	}
	total := secs
	mult := 60.0
	for i := len(parts) - 2; i >= 0; i-- {
		n, err := strconv.Atoi(parts[i])
		if err != nil {
			return 0, err
		}
		total += float64(n) * mult
		mult *= 60
	}
	return total, nil
}
