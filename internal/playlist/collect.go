package playlist

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/dhowden/tag"

	"github.com/llehouerou/vplayer/internal/media"
)

var mediaExtensions = []string{".mp3", ".flac", ".wav", ".ogg"}

// IsMediaFile reports whether path has a playable extension.
func IsMediaFile(path string) bool {
	return slices.Contains(mediaExtensions, strings.ToLower(filepath.Ext(path)))
}

// FromPath creates an item for a local file, reading its tags for the
// title. A sidecar .lrc file becomes a default captions track.
func FromPath(path string) Item {
	it := Item{
		URL:  path,
		Type: strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), "."),
		Info: Info{Title: filepath.Base(path)},
	}
	if st, err := os.Stat(path); err == nil {
		it.Size = st.Size()
	}
	if title := readTitle(path); title != "" {
		it.Info.Title = title
	}
	if lrc := SidecarPath(path); lrc != "" {
		it.Tracks = append(it.Tracks, captionTrack(lrc))
	}
	return it
}

func readTitle(path string) string {
	f, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		return ""
	}
	switch {
	case m.Title() == "":
		return ""
	case m.Artist() == "":
		return m.Title()
	default:
		return m.Artist() + " - " + m.Title()
	}
}

// SidecarPath returns the .lrc file next to path, or "" if none exists.
func SidecarPath(path string) string {
	lrc := strings.TrimSuffix(path, filepath.Ext(path)) + ".lrc"
	if _, err := os.Stat(lrc); err != nil {
		return ""
	}
	return lrc
}

func captionTrack(src string) media.TrackSource {
	return media.TrackSource{
		Src:     src,
		Kind:    "captions",
		Label:   "Lyrics",
		Default: true,
	}
}

// CollectFromPaths collects items for files and directories. Directories
// are walked recursively and sorted by path.
func CollectFromPaths(paths []string) ([]Item, error) {
	var items []Item
	for _, root := range paths {
		st, err := os.Stat(root)
		if err != nil {
			return nil, err
		}
		if !st.IsDir() {
			if IsMediaFile(root) {
				items = append(items, FromPath(root))
			}
			continue
		}

		var found []string
		err = filepath.WalkDir(root, func(path string, d os.DirEntry, walkErr error) error {
			if walkErr != nil {
				// Skip directories/files with errors, continue walking
				return nil //nolint:nilerr // intentionally skipping errors
			}
			if !d.IsDir() && IsMediaFile(path) {
				found = append(found, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
		slices.Sort(found)
		for _, path := range found {
			items = append(items, FromPath(path))
		}
	}
	return items, nil
}
