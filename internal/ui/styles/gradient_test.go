package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestBlend(t *testing.T) {
	from := lipgloss.Color("#000000")
	to := lipgloss.Color("#ffffff")

	colors := Blend(3, from, to)

	assert.Len(t, colors, 3)
	assert.NotEqual(t, colors[0], colors[2])
}

func TestBlend_Single(t *testing.T) {
	colors := Blend(1, "#a78bfa", "#f1a208")
	assert.Equal(t, []lipgloss.Color{"#a78bfa"}, colors)
}

func TestApplyGradient_Empty(t *testing.T) {
	assert.Empty(t, ApplyGradient("", "#000000", "#ffffff"))
}

func TestApplyGradient_KeepsText(t *testing.T) {
	out := ApplyBoldGradient("reel", "#a78bfa", "#f1a208")
	assert.Equal(t, 4, lipgloss.Width(out))
}

func TestTileStyle_BorderPriority(t *testing.T) {
	th := T()
	assert.Equal(t, lipgloss.TerminalColor(th.Success), TileStyle(true, true).GetBorderTopForeground())
	assert.Equal(t, lipgloss.TerminalColor(th.BorderFocus), TileStyle(true, false).GetBorderTopForeground())
	assert.Equal(t, lipgloss.TerminalColor(th.Border), TileStyle(false, false).GetBorderTopForeground())
}
