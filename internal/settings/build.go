package settings

import (
	"strings"

	"github.com/samber/lo"
)

// Live carries the session values merged into the schema.
type Live struct {
	Autoplay bool
	Speed    float64
	Lang     string
	// Languages are the variant languages of the playing item.
	Languages []string
}

// Build merges a copy of canonical with live values: the autoplay
// checkbox, the selected speed, and a synthesized lang dropdown when the
// playing item has language variants. canonical is never modified.
func Build(canonical Schema, live Live) Schema {
	s := canonical.Clone()
	if o := s.Find(LabelAutoplay); o != nil {
		o.Value = live.Autoplay
	}
	if o := s.Find(LabelSpeed); o != nil {
		o.Select(FormatSpeed(live.Speed))
	}

	s = lo.Reject(s, func(o Option, _ int) bool { return o.Label == LabelLang })
	if len(live.Languages) > 0 {
		s = append(s, Option{
			Label: LabelLang,
			Title: "Language",
			Role:  RoleDropdown,
			Options: lo.Map(live.Languages, func(lang string, _ int) Entry {
				return Entry{
					Label:    strings.ToUpper(lang),
					Value:    lang,
					Selected: lang == live.Lang,
				}
			}),
		})
	}
	return s
}
