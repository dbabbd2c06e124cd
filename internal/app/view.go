// internal/app/view.go
package app

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/reel/internal/icons"
	"github.com/llehouerou/reel/internal/ui/render"
	"github.com/llehouerou/reel/internal/ui/styles"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.Width <= 0 || m.Height <= 0 {
		return ""
	}
	if m.Playback.Fullscreen() {
		return m.Carousel.View()
	}

	body := m.bodyHeight()
	var content string
	if m.help.ShowAll {
		content = lipgloss.Place(m.Width, body, lipgloss.Center, lipgloss.Center, m.help.View(m.helpKeys))
	} else {
		content = lipgloss.Place(m.Width, body, lipgloss.Left, lipgloss.Center, m.Carousel.View())
	}

	return lipgloss.JoinVertical(lipgloss.Left, m.headerView(), content, m.statusView())
}

func (m Model) headerView() string {
	t := styles.T()
	title := styles.ApplyBoldGradient("reel", t.Primary, t.Secondary)

	n := m.Carousel.Len()
	count := humanize.Comma(int64(n)) + " clips"
	if n == 1 {
		count = "1 clip"
	}
	return render.Row(" "+title, t.S().Muted.Render(count)+" ", m.Width)
}

func (m Model) statusView() string {
	s := styles.T().S()

	right := m.positionText()
	hints := m.help
	hints.Width = max(m.Width/2-lipgloss.Width(right)-2, 0)
	if hint := hints.View(m.helpKeys); hint != "" && hints.Width > 0 {
		right += "  " + hint
	}

	avail := max(m.Width-lipgloss.Width(right)-3, 0)
	var left string
	switch {
	case m.StatusMsg != "" && m.statusErr:
		left = s.Error.Render(render.Truncate(m.StatusMsg, avail))
	case m.StatusMsg != "":
		left = s.Warning.Render(render.Truncate(m.StatusMsg, avail))
	default:
		left = m.clipText(avail)
	}

	return s.Bar.Width(m.Width).Render(render.Row(" "+left, right+" ", m.Width))
}

// clipText describes the centered clip and its play history.
func (m Model) clipText(width int) string {
	s := styles.T().S()
	idx := m.Carousel.Target()
	clip, ok := m.Carousel.Clip(idx)
	if !ok {
		return ""
	}

	icon := icons.Paused()
	style := s.Base
	if m.Playback.Active() == idx {
		icon = icons.Playing()
		style = s.Playing
	}
	label := icon + " " + clip.Label()

	var history string
	if st, ok := m.stats[clip.Key()]; ok && st.Plays > 0 {
		plays := "played once"
		if st.Plays > 1 {
			plays = fmt.Sprintf("played %s times", humanize.Comma(int64(st.Plays)))
		}
		history = plays + ", " + humanize.Time(st.LastPlayed)
	}

	if history == "" || lipgloss.Width(label)+lipgloss.Width(history)+3 > width {
		return style.Render(render.Truncate(label, width))
	}
	return style.Render(label) + s.Muted.Render(" · "+history)
}

func (m Model) positionText() string {
	idx := m.Carousel.Target()
	if !idx.Valid() {
		return ""
	}
	return fmt.Sprintf("%d/%d", int(idx)+1, m.Carousel.Len())
}
