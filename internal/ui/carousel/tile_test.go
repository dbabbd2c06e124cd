package carousel

import (
	"errors"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/reel/internal/media"
	"github.com/llehouerou/reel/internal/player"
)

func newTile() (*Tile, *player.Mock) {
	p := player.NewMock()
	p.SetDuration(90 * time.Second)
	return NewTile(2, media.Clip{Title: "Intro", Artist: "Host"}, p), p
}

func TestTile_InitLoadsOnce(t *testing.T) {
	tile, p := newTile()

	tile.Init()
	tile.Init()

	assert.Equal(t, 1, p.Loads())
	assert.NoError(t, tile.Err())
}

func TestTile_PlayPause(t *testing.T) {
	tile, p := newTile()

	tile.Play()
	assert.True(t, tile.Playing())
	assert.Equal(t, 1, p.Plays())

	p.SetPosition(12 * time.Second)
	tile.Pause()
	assert.False(t, tile.Playing())
	assert.Equal(t, 12*time.Second, tile.Position())
}

func TestTile_LoadErrorBlocksPlay(t *testing.T) {
	tile, p := newTile()
	p.SetLoadError(errors.New("no such file"))

	tile.Play()

	assert.False(t, tile.Playing())
	assert.EqualError(t, tile.Err(), "no such file")
	assert.Contains(t, ansi.Strip(tile.View(60, 8, 1, true)), "Failed to load clip")
}

func TestTile_ReleaseAllowsReload(t *testing.T) {
	tile, p := newTile()
	tile.Play()

	tile.Release()
	assert.Equal(t, 1, p.Closes())
	assert.Equal(t, player.Stopped, p.State())

	tile.Init()
	assert.Equal(t, 2, p.Loads())
}

func TestTile_UpdateData(t *testing.T) {
	tile, p := newTile()
	tile.Play()
	p.SetPosition(30 * time.Second)

	tile.UpdateData()

	assert.Equal(t, 30*time.Second, tile.Position())
}

func TestTile_View(t *testing.T) {
	tile, _ := newTile()
	tile.Play()

	out := ansi.Strip(tile.View(36, 9, 0.5, true))

	assert.Contains(t, out, "Intro")
	assert.Contains(t, out, "Host")
	assert.Contains(t, out, "1:30")
	assert.Contains(t, out, "50% visible")
}

func TestProgressBar(t *testing.T) {
	tests := []struct {
		name  string
		width int
		want  string
	}{
		{"full bar", 30, "0:45 ▓"},
		{"compact", 12, "0:45/1:30"},
		{"position only", 8, "0:45"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := ansi.Strip(ProgressBar(45*time.Second, 90*time.Second, tt.width, true))
			assert.Contains(t, out, tt.want)
			assert.LessOrEqual(t, ansi.StringWidth(out), tt.width)
		})
	}
}
