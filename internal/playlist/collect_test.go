package playlist

import (
	"os"
	"path/filepath"
	"testing"
)

func TestIsMediaFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"song.mp3", true},
		{"SONG.FLAC", true},
		{"clip.wav", true},
		{"cover.jpg", false},
		{"lyrics.lrc", false},
	}
	for _, tt := range tests {
		if got := IsMediaFile(tt.path); got != tt.want {
			t.Errorf("IsMediaFile(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestCollectFromPaths(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.mp3", "a.flac", "notes.txt", "a.lrc"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o600); err != nil {
			t.Fatal(err)
		}
	}

	items, err := CollectFromPaths([]string{dir})
	if err != nil {
		t.Fatalf("CollectFromPaths() error = %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("len(items) = %d, want 2", len(items))
	}
	if filepath.Base(items[0].URL) != "a.flac" || filepath.Base(items[1].URL) != "b.mp3" {
		t.Errorf("order = %s, %s", items[0].URL, items[1].URL)
	}
	if items[0].Info.Title != "a.flac" {
		t.Errorf("untagged title = %q, want file name", items[0].Info.Title)
	}
	if len(items[0].Tracks) != 1 || !items[0].Tracks[0].Default {
		t.Errorf("a.flac tracks = %+v, want the lrc sidecar", items[0].Tracks)
	}
	if len(items[1].Tracks) != 0 {
		t.Errorf("b.mp3 tracks = %+v, want none", items[1].Tracks)
	}
	if items[0].Size != 1 {
		t.Errorf("Size = %d, want 1", items[0].Size)
	}
}

func TestCollectFromPaths_Missing(t *testing.T) {
	if _, err := CollectFromPaths([]string{filepath.Join(t.TempDir(), "nope")}); err == nil {
		t.Error("expected error for missing path")
	}
}
