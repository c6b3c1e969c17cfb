package playlist

import (
	"github.com/samber/lo"

	"github.com/llehouerou/vplayer/internal/media"
)

// PlayState marks whether an item is the one bound to the media.
type PlayState string

const (
	Playing    PlayState = "playing"
	NotPlaying PlayState = "not-playing"
)

// Info is the display metadata of an item.
type Info struct {
	Title  string `koanf:"title"`
	Link   string `koanf:"link"`
	Target string `koanf:"target"`
}

// Variant is a language-specific source of an item.
type Variant struct {
	ID           string `koanf:"id"`
	Language     string `koanf:"language"`
	URL          string `koanf:"url"`
	Poster       string `koanf:"poster"`
	Info         Info   `koanf:"info"`
	PlayingState bool   `koanf:"playing"`
}

// Item is a playlist entry.
type Item struct {
	ID        string              `koanf:"id"`
	URL       string              `koanf:"url"`
	Poster    string              `koanf:"poster"`
	Type      string              `koanf:"type"`
	Info      Info                `koanf:"info"`
	Languages []Variant           `koanf:"languages"`
	Tracks    []media.TrackSource `koanf:"tracks"`
	// Size is the file size in bytes, zero when unknown.
	Size  int64     `koanf:"size"`
	State PlayState `koanf:"-"`
}

// HasLanguages reports whether the item has language variants.
func (it *Item) HasLanguages() bool { return len(it.Languages) > 0 }

// ActiveVariant returns the variant marked for playback, or nil.
func (it *Item) ActiveVariant() *Variant {
	for i := range it.Languages {
		if it.Languages[i].PlayingState {
			return &it.Languages[i]
		}
	}
	return nil
}

// LanguageCodes returns the variant languages in order.
func (it *Item) LanguageCodes() []string {
	return lo.Map(it.Languages, func(v Variant, _ int) string { return v.Language })
}

// SelectLanguage marks the variant for lang as the only playing variant.
// It reports false, leaving the item unchanged, when no variant matches.
func (it *Item) SelectLanguage(lang string) bool {
	_, idx, ok := lo.FindIndexOf(it.Languages, func(v Variant) bool { return v.Language == lang })
	if !ok {
		return false
	}
	it.markVariant(idx)
	return true
}

// SelectVariant marks the variant with the given id.
func (it *Item) SelectVariant(id string) bool {
	_, idx, ok := lo.FindIndexOf(it.Languages, func(v Variant) bool { return v.ID == id })
	if !ok {
		return false
	}
	it.markVariant(idx)
	return true
}

func (it *Item) markVariant(idx int) {
	for i := range it.Languages {
		it.Languages[i].PlayingState = i == idx
	}
}

// restoreVariant re-establishes the single-variant invariant: the first
// marked variant wins; with none marked, lang is tried, then the first.
func (it *Item) restoreVariant(lang string) {
	if !it.HasLanguages() {
		return
	}
	if _, idx, ok := lo.FindIndexOf(it.Languages, func(v Variant) bool { return v.PlayingState }); ok {
		it.markVariant(idx)
		return
	}
	if !it.SelectLanguage(lang) {
		it.markVariant(0)
	}
}

// Title returns the display title, from the active variant when it has one.
func (it *Item) Title() string {
	if v := it.ActiveVariant(); v != nil && v.Info.Title != "" {
		return v.Info.Title
	}
	return it.Info.Title
}

// Source returns what gets bound to the media: the active variant's URL
// and poster when the item has variants.
func (it *Item) Source() media.Source {
	src := media.Source{
		ID:     it.ID,
		URL:    it.URL,
		Poster: it.Poster,
		Type:   it.Type,
		Tracks: it.Tracks,
	}
	if v := it.ActiveVariant(); v != nil {
		src.URL = v.URL
		if v.Poster != "" {
			src.Poster = v.Poster
		}
	}
	return src
}
