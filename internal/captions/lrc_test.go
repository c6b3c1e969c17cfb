package captions

import (
	"strings"
	"testing"
	"time"
)

func TestParseLRC_Basic(t *testing.T) {
	lrc := `[ar:Test Artist]
[ti:Test Title]
[00:12.34]First line
[00:15.67]Second line
[00:20.00]Third line`

	lyrics, err := ParseLRC(strings.NewReader(lrc))
	if err != nil {
		t.Fatalf("ParseLRC error: %v", err)
	}

	if lyrics.Artist != "Test Artist" {
		t.Errorf("Artist = %q, want %q", lyrics.Artist, "Test Artist")
	}
	if lyrics.Title != "Test Title" {
		t.Errorf("Title = %q, want %q", lyrics.Title, "Test Title")
	}
	if len(lyrics.Lines) != 3 {
		t.Fatalf("len(Lines) = %d, want 3", len(lyrics.Lines))
	}

	expected := []struct {
		time time.Duration
		text string
	}{
		{12*time.Second + 340*time.Millisecond, "First line"},
		{15*time.Second + 670*time.Millisecond, "Second line"},
		{20 * time.Second, "Third line"},
	}
	for i, exp := range expected {
		if lyrics.Lines[i].Time != exp.time {
			t.Errorf("Lines[%d].Time = %v, want %v", i, lyrics.Lines[i].Time, exp.time)
		}
		if lyrics.Lines[i].Text != exp.text {
			t.Errorf("Lines[%d].Text = %q, want %q", i, lyrics.Lines[i].Text, exp.text)
		}
	}
}

func TestParseLRC_MultipleTimestamps(t *testing.T) {
	lyrics, err := ParseLRC(strings.NewReader("[00:30.00][00:10.00]Chorus\n[00:20.00]Verse"))
	if err != nil {
		t.Fatalf("ParseLRC error: %v", err)
	}
	got := make([]string, 0, len(lyrics.Lines))
	for _, l := range lyrics.Lines {
		got = append(got, l.Text)
	}
	if strings.Join(got, ",") != "Chorus,Verse,Chorus" {
		t.Errorf("lines = %v, want sorted Chorus,Verse,Chorus", got)
	}
}

func TestLyrics_Cues(t *testing.T) {
	lyrics, err := ParseLRC(strings.NewReader("[00:01.00]One\n[00:03.00]\n[00:04.00]Two"))
	if err != nil {
		t.Fatalf("ParseLRC error: %v", err)
	}

	cues := lyrics.Cues(10)
	if len(cues) != 2 {
		t.Fatalf("len(cues) = %d, want 2", len(cues))
	}
	if cues[0].Start != 1 || cues[0].End != 3 || cues[0].Text != "One" {
		t.Errorf("cues[0] = %+v, want 1-3 One", cues[0])
	}
	if cues[1].Start != 4 || cues[1].End != 10 {
		t.Errorf("cues[1] = %+v, want 4-10", cues[1])
	}
}
