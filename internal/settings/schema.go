// Package settings models the player settings menu: the option schema,
// its merge with live session values and the two-level menu state.
package settings

import (
	"slices"
	"strconv"
)

// Role is the kind of control an option renders as.
type Role string

const (
	RoleCheckbox Role = "checkbox"
	RoleDropdown Role = "dropdown"
)

// Option labels with dedicated behaviour.
const (
	LabelAutoplay = "autoplay"
	LabelSpeed    = "speed"
	LabelLang     = "lang"
)

// Entry is one choice of a dropdown option.
type Entry struct {
	Label    string `koanf:"label"`
	Value    string `koanf:"value"`
	Selected bool   `koanf:"selected"`
}

// Option is one row of the main menu.
type Option struct {
	Label string `koanf:"label"`
	Title string `koanf:"title"`
	Role  Role   `koanf:"role"`
	// Value is the checked state of checkbox options.
	Value    bool    `koanf:"value"`
	Options  []Entry `koanf:"options"`
	Disabled bool    `koanf:"disabled"`
}

// Selected returns the selected entry of a dropdown, or nil.
func (o *Option) Selected() *Entry {
	for i := range o.Options {
		if o.Options[i].Selected {
			return &o.Options[i]
		}
	}
	return nil
}

// Select marks the entry with value as the only selected one. It reports
// false when no entry has that value.
func (o *Option) Select(value string) bool {
	if !slices.ContainsFunc(o.Options, func(e Entry) bool { return e.Value == value }) {
		return false
	}
	for i := range o.Options {
		o.Options[i].Selected = o.Options[i].Value == value
	}
	return true
}

// Schema is the ordered list of options.
type Schema []Option

// Clone returns a deep copy.
func (s Schema) Clone() Schema {
	out := make(Schema, len(s))
	for i, o := range s {
		o.Options = slices.Clone(o.Options)
		out[i] = o
	}
	return out
}

// Find returns the option with label, or nil.
func (s Schema) Find(label string) *Option {
	for i := range s {
		if s[i].Label == label {
			return &s[i]
		}
	}
	return nil
}

// FormatSpeed formats a playback rate the way speed entries store it.
func FormatSpeed(rate float64) string {
	return strconv.FormatFloat(rate, 'f', -1, 64)
}

// Default returns the built-in schema: an autoplay checkbox and a speed
// dropdown with Normal selected.
func Default() Schema {
	return Schema{
		{
			Label: LabelAutoplay,
			Title: "Autoplay",
			Role:  RoleCheckbox,
		},
		{
			Label: LabelSpeed,
			Title: "Speed",
			Role:  RoleDropdown,
			Options: []Entry{
				{Label: "0.25", Value: "0.25"},
				{Label: "0.50", Value: "0.5"},
				{Label: "0.75", Value: "0.75"},
				{Label: "Normal", Value: "1", Selected: true},
				{Label: "1.25", Value: "1.25"},
				{Label: "1.50", Value: "1.5"},
				{Label: "1.75", Value: "1.75"},
				{Label: "2.00", Value: "2"},
			},
		},
	}
}
