// Package styles holds the color palette and lipgloss styles of the
// terminal chrome.
package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette and pre-built styles for the chrome.
type Theme struct {
	Primary   lipgloss.Color // played range, active states
	Secondary lipgloss.Color // end of the played gradient

	FgBase   lipgloss.Color
	FgMuted  lipgloss.Color
	FgSubtle lipgloss.Color

	BgBase  lipgloss.Color // menus, drawer, tooltip
	BgStage lipgloss.Color // area behind the media
	BgHover lipgloss.Color // checked rows, playing card

	Border lipgloss.Color
	Error  lipgloss.Color

	styles *Styles
}

// Styles contains pre-built lipgloss styles for the chrome parts.
type Styles struct {
	Base     lipgloss.Style
	Muted    lipgloss.Style
	Subtle   lipgloss.Style
	Title    lipgloss.Style
	Button   lipgloss.Style
	Disabled lipgloss.Style
	Active   lipgloss.Style // pressed toggles: captions on, fullscreen
	Loaded   lipgloss.Style // buffered part of the progress bar
	Track    lipgloss.Style // unbuffered part of the progress bar
	Caption  lipgloss.Style
	Panel    lipgloss.Style // settings menu and drawer rows
	Selected lipgloss.Style // checked row, playing card
	Tooltip  lipgloss.Style
	Error    lipgloss.Style
}

var defaultTheme = Theme{
	Primary:   lipgloss.Color("#a78bfa"),
	Secondary: lipgloss.Color("#f1a208"),

	FgBase:   lipgloss.Color("#c0c0c0"),
	FgMuted:  lipgloss.Color("#808080"),
	FgSubtle: lipgloss.Color("#585858"),

	BgBase:  lipgloss.Color("#1a1a1a"),
	BgStage: lipgloss.Color("#000000"),
	BgHover: lipgloss.Color("#303030"),

	Border: lipgloss.Color("#585858"),
	Error:  lipgloss.Color("#ff5555"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)
	panel := base.Background(t.BgBase)

	return &Styles{
		Base:     base,
		Muted:    lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle:   lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:    base.Bold(true),
		Button:   base,
		Disabled: lipgloss.NewStyle().Foreground(t.FgSubtle),
		Active:   lipgloss.NewStyle().Foreground(t.Primary).Bold(true),
		Loaded:   lipgloss.NewStyle().Foreground(t.FgMuted),
		Track:    lipgloss.NewStyle().Foreground(t.FgSubtle),
		Caption:  lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Background(lipgloss.Color("#202020")),
		Panel:    panel,
		Selected: panel.Background(t.BgHover).Foreground(t.Primary),
		Tooltip:  panel.Foreground(t.FgBase),
		Error:    lipgloss.NewStyle().Foreground(t.Error),
	}
}
