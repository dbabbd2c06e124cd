package carousel

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/reel/internal/ui/styles"
)

const (
	filledBlock = "▓"
	emptyBlock  = "░"

	minBarWidth = 3
)

// ProgressBar renders a block-style progress line.
// Format: ▶ 1:23 ▓▓▓▓▓░░░░░ 4:56
func ProgressBar(position, duration time.Duration, width int, playing bool) string {
	s := styles.T().S()
	status := s.Muted.Render("⏸")
	if playing {
		status = s.Success.Render("▶")
	}

	pos := formatDuration(position)
	dur := formatDuration(duration)

	barWidth := width - lipgloss.Width(status) - len(pos) - len(dur) - 3
	if barWidth < minBarWidth {
		compact := status + " " + pos + "/" + dur
		if lipgloss.Width(compact) > width {
			return status + " " + pos
		}
		return compact
	}

	var ratio float64
	if duration > 0 {
		ratio = float64(position) / float64(duration)
	}
	filled := min(max(int(float64(barWidth)*ratio), 0), barWidth)

	bar := s.Playing.Render(strings.Repeat(filledBlock, filled)) +
		s.Subtle.Render(strings.Repeat(emptyBlock, barWidth-filled))

	return status + " " + pos + " " + bar + " " + dur
}

func formatDuration(d time.Duration) string {
	m := int(d.Minutes())
	sec := int(d.Seconds()) % 60
	return fmt.Sprintf("%d:%02d", m, sec)
}
