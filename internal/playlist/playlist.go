package playlist

import (
	"slices"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// Playlist is an ordered list of items with exactly one item playing.
type Playlist struct {
	items        []Item
	currentIndex int
	lang         string
}

// New builds a playlist from items. The first item becomes the playing one
// and lang picks the default variant of items with languages. Items
// without an id get a random one.
func New(items []Item, lang string) (*Playlist, error) {
	if len(items) == 0 {
		return nil, ErrEmpty
	}
	p := &Playlist{
		items: slices.Clone(items),
		lang:  lang,
	}
	for i := range p.items {
		it := &p.items[i]
		if it.ID == "" {
			it.ID = uuid.NewString()
		}
		it.Languages = slices.Clone(it.Languages)
		for j := range it.Languages {
			if it.Languages[j].ID == "" {
				it.Languages[j].ID = uuid.NewString()
			}
		}
		it.restoreVariant(lang)
	}
	p.mark(0)
	return p, nil
}

// Len returns the number of items.
func (p *Playlist) Len() int { return len(p.items) }

// Items returns a copy of the items.
func (p *Playlist) Items() []Item {
	return slices.Clone(p.items)
}

// Item returns the item at index, or nil if out of bounds.
func (p *Playlist) Item(index int) *Item {
	if index < 0 || index >= len(p.items) {
		return nil
	}
	return &p.items[index]
}

// Current returns the playing item.
func (p *Playlist) Current() *Item {
	return &p.items[p.currentIndex]
}

// CurrentIndex returns the index of the playing item.
func (p *Playlist) CurrentIndex() int { return p.currentIndex }

// Lang returns the default language used when restoring variants.
func (p *Playlist) Lang() string { return p.lang }

// SetLang changes the default language.
func (p *Playlist) SetLang(lang string) { p.lang = lang }

// HasNext returns true if there's an item after the current one.
func (p *Playlist) HasNext() bool {
	return p.currentIndex < len(p.items)-1
}

// HasPrev returns true if there's an item before the current one.
func (p *Playlist) HasPrev() bool {
	return p.currentIndex > 0
}

// Next moves to the following item.
func (p *Playlist) Next() (*Item, error) {
	return p.JumpTo(p.currentIndex + 1)
}

// Prev moves to the preceding item.
func (p *Playlist) Prev() (*Item, error) {
	return p.JumpTo(p.currentIndex - 1)
}

// JumpTo makes the item at index the playing one. Out of range indexes
// return an *OutOfRangeError and leave the playlist unchanged.
func (p *Playlist) JumpTo(index int) (*Item, error) {
	if index < 0 || index >= len(p.items) {
		return nil, &OutOfRangeError{Index: index, Len: len(p.items)}
	}
	p.mark(index)
	return p.Current(), nil
}

// Select plays the item with id parentID, or when variantID is set, that
// variant of it. A variant id alone, with an empty parentID, is matched
// against item ids too.
func (p *Playlist) Select(parentID, variantID string) (*Item, error) {
	id := parentID
	if id == "" {
		id = variantID
		variantID = ""
	}
	idx := p.Find(id)
	if idx < 0 {
		return nil, ErrNotFound
	}
	if variantID != "" && !p.items[idx].SelectVariant(variantID) {
		return nil, ErrNotFound
	}
	return p.JumpTo(idx)
}

// Find returns the index of the item with the given id, or -1.
func (p *Playlist) Find(id string) int {
	_, idx, ok := lo.FindIndexOf(p.items, func(it Item) bool { return it.ID == id })
	if !ok {
		return -1
	}
	return idx
}

// mark sets the playing item and restores its variant.
func (p *Playlist) mark(index int) {
	for i := range p.items {
		p.items[i].State = NotPlaying
	}
	p.items[index].State = Playing
	p.items[index].restoreVariant(p.lang)
	p.currentIndex = index
}

// PlayingCount returns how many items are marked playing.
func (p *Playlist) PlayingCount() int {
	return lo.CountBy(p.items, func(it Item) bool { return it.State == Playing })
}
