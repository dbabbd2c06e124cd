package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// neutral stands in for colors that are not #rrggbb hex (ANSI indices).
var neutral = colorful.Color{R: 0.5, G: 0.5, B: 0.5}

// ApplyGradient renders text with a horizontal color gradient.
func ApplyGradient(text string, from, to lipgloss.Color) string {
	return gradient(text, false, from, to)
}

// ApplyBoldGradient renders bold text with a horizontal color gradient.
func ApplyBoldGradient(text string, from, to lipgloss.Color) string {
	return gradient(text, true, from, to)
}

func gradient(text string, bold bool, from, to lipgloss.Color) string {
	// Grapheme clusters keep combining marks and emoji intact
	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}

	switch len(clusters) {
	case 0:
		return ""
	case 1:
		return lipgloss.NewStyle().Foreground(from).Bold(bold).Render(text)
	}

	var b strings.Builder
	for i, c := range Blend(len(clusters), from, to) {
		style := lipgloss.NewStyle().Foreground(c).Bold(bold)
		b.WriteString(style.Render(clusters[i]))
	}
	return b.String()
}

// Blend returns size colors spaced evenly from from to to, blended in HCL
// space.
func Blend(size int, from, to lipgloss.Color) []lipgloss.Color {
	if size < 2 {
		return []lipgloss.Color{from}
	}

	c1, c2 := toColorful(from), toColorful(to)
	out := make([]lipgloss.Color, size)
	for i := range size {
		t := float64(i) / float64(size-1)
		out[i] = lipgloss.Color(c1.BlendHcl(c2, t).Clamped().Hex())
	}
	return out
}

func toColorful(c lipgloss.Color) colorful.Color {
	col, err := colorful.Hex(string(c))
	if err != nil {
		return neutral
	}
	return col
}
