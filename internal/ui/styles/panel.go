package styles

import "github.com/charmbracelet/lipgloss"

// PanelStyle returns a bordered panel for floating views such as help.
func PanelStyle(focused bool) lipgloss.Style {
	t := T()
	border := t.Border
	if focused {
		border = t.Primary
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Background(t.BgBase).
		Padding(0, 1)
}
