//nolint:goconst // test data
package playlist

import (
	"errors"
	"testing"
)

func videoItems() []Item {
	return []Item{
		{ID: "a", URL: "a.mp3", Info: Info{Title: "A"}},
		{
			ID:  "b",
			URL: "b.mp3",
			Languages: []Variant{
				{ID: "b-en", Language: "en", URL: "b-en.mp3", Info: Info{Title: "B (en)"}},
				{ID: "b-fr", Language: "fr", URL: "b-fr.mp3", Info: Info{Title: "B (fr)"}},
			},
		},
		{ID: "c", URL: "c.mp3"},
	}
}

func TestNew_Empty(t *testing.T) {
	if _, err := New(nil, "en"); !errors.Is(err, ErrEmpty) {
		t.Errorf("New(nil) error = %v, want ErrEmpty", err)
	}
}

func TestNew_FirstItemPlaying(t *testing.T) {
	p, err := New(videoItems(), "fr")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if p.CurrentIndex() != 0 {
		t.Errorf("CurrentIndex() = %d, want 0", p.CurrentIndex())
	}
	if p.PlayingCount() != 1 {
		t.Errorf("PlayingCount() = %d, want 1", p.PlayingCount())
	}
	if v := p.Item(1).ActiveVariant(); v == nil || v.Language != "fr" {
		t.Errorf("item b active variant = %+v, want fr", v)
	}
}

func TestNew_AssignsMissingIDs(t *testing.T) {
	p, err := New([]Item{{URL: "x.mp3"}, {URL: "y.mp3"}}, "en")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if p.Item(0).ID == "" || p.Item(0).ID == p.Item(1).ID {
		t.Errorf("ids = %q, %q, want distinct non-empty", p.Item(0).ID, p.Item(1).ID)
	}
}

func TestNew_DoesNotAliasInput(t *testing.T) {
	items := videoItems()
	p, _ := New(items, "en")
	p.Item(1).SelectLanguage("fr")
	if items[1].Languages[1].PlayingState {
		t.Error("playlist should not mutate the caller's variants")
	}
}

func TestNavigation_Boundaries(t *testing.T) {
	p, _ := New(videoItems(), "en")

	if p.HasPrev() {
		t.Error("HasPrev() at start should be false")
	}
	_, err := p.Prev()
	var oor *OutOfRangeError
	if !errors.As(err, &oor) {
		t.Fatalf("Prev() at start error = %v, want *OutOfRangeError", err)
	}
	if oor.Index != -1 || oor.Len != 3 {
		t.Errorf("OutOfRangeError = %+v", oor)
	}
	if p.CurrentIndex() != 0 {
		t.Errorf("failed Prev() moved to %d", p.CurrentIndex())
	}

	for range 2 {
		if _, err := p.Next(); err != nil {
			t.Fatalf("Next() error = %v", err)
		}
	}
	if p.HasNext() {
		t.Error("HasNext() at end should be false")
	}
	if _, err := p.Next(); !errors.As(err, &oor) {
		t.Errorf("Next() at end error = %v, want *OutOfRangeError", err)
	}
}

func TestNavigation_ExactlyOnePlaying(t *testing.T) {
	p, _ := New(videoItems(), "en")
	ops := []func() (*Item, error){p.Next, p.Next, p.Next, p.Prev, p.Prev, p.Prev, p.Next}
	for i, op := range ops {
		_, _ = op()
		if p.PlayingCount() != 1 {
			t.Fatalf("after op %d PlayingCount() = %d, want 1", i, p.PlayingCount())
		}
		if p.Current().State != Playing {
			t.Fatalf("after op %d current item not playing", i)
		}
		if cur := p.Current(); cur.HasLanguages() {
			n := 0
			for _, v := range cur.Languages {
				if v.PlayingState {
					n++
				}
			}
			if n != 1 {
				t.Fatalf("after op %d %d variants playing, want 1", i, n)
			}
		}
	}
}

func TestNavigation_KeepsMarkedVariant(t *testing.T) {
	p, _ := New(videoItems(), "en")
	b, _ := p.Next()
	b.SelectLanguage("fr")
	_, _ = p.Next()
	b, _ = p.Prev()

	if b.ActiveVariant().Language != "fr" {
		t.Errorf("active variant = %q, want fr", b.ActiveVariant().Language)
	}
	if got := b.Source().URL; got != "b-fr.mp3" {
		t.Errorf("Source().URL = %q, want b-fr.mp3", got)
	}
	if b.Title() != "B (fr)" {
		t.Errorf("Title() = %q, want B (fr)", b.Title())
	}
}

func TestSelect(t *testing.T) {
	p, _ := New(videoItems(), "en")

	it, err := p.Select("b", "b-fr")
	if err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	if p.CurrentIndex() != 1 || it.ActiveVariant().ID != "b-fr" {
		t.Errorf("Select(b, b-fr) -> index %d variant %q", p.CurrentIndex(), it.ActiveVariant().ID)
	}

	if _, err := p.Select("", "c"); err != nil {
		t.Fatalf("Select(\"\", c) error = %v", err)
	}
	if p.CurrentIndex() != 2 {
		t.Errorf("CurrentIndex() = %d, want 2", p.CurrentIndex())
	}

	if _, err := p.Select("missing", ""); !errors.Is(err, ErrNotFound) {
		t.Errorf("Select(missing) error = %v, want ErrNotFound", err)
	}
	if _, err := p.Select("b", "b-de"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Select(b, b-de) error = %v, want ErrNotFound", err)
	}
}

func TestItem_SelectLanguageUnknown(t *testing.T) {
	p, _ := New(videoItems(), "en")
	b := p.Item(1)
	if b.SelectLanguage("de") {
		t.Error("SelectLanguage(de) should report false")
	}
	if b.ActiveVariant().Language != "en" {
		t.Errorf("active variant changed to %q", b.ActiveVariant().Language)
	}
	if got := b.LanguageCodes(); len(got) != 2 || got[0] != "en" || got[1] != "fr" {
		t.Errorf("LanguageCodes() = %v", got)
	}
}
