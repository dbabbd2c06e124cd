package styles

import "github.com/charmbracelet/lipgloss"

// TileStyle returns the bordered box for a carousel tile. The centered tile
// gets the accent border; a playing tile gets the success border.
func TileStyle(centered, playing bool) lipgloss.Style {
	t := T()
	border := t.Border
	switch {
	case playing:
		border = t.Success
	case centered:
		border = t.BorderFocus
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(border)
}
