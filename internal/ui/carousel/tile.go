package carousel

import (
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/llehouerou/reel/internal/errmsg"
	"github.com/llehouerou/reel/internal/icons"
	"github.com/llehouerou/reel/internal/item"
	"github.com/llehouerou/reel/internal/log"
	"github.com/llehouerou/reel/internal/media"
	"github.com/llehouerou/reel/internal/player"
	"github.com/llehouerou/reel/internal/ui/render"
	"github.com/llehouerou/reel/internal/ui/styles"
)

// PlayerFactory creates the backend for a clip.
type PlayerFactory func(media.Clip) player.Interface

// Tile is the controller bound to one visible clip. It owns the clip's
// player while bound and frees it on Release.
type Tile struct {
	index  item.Index
	clip   media.Clip
	player player.Interface

	loaded   bool
	err      error
	position time.Duration // refreshed by UpdateData
	log      *logrus.Entry
}

// NewTile creates the controller for clip at idx.
func NewTile(idx item.Index, clip media.Clip, p player.Interface) *Tile {
	return &Tile{
		index:  idx,
		clip:   clip,
		player: p,
		log:    log.For("tile").WithField("index", idx),
	}
}

// Index returns the carousel position of the tile.
func (t *Tile) Index() item.Index { return t.index }

// Clip returns the clip shown by the tile.
func (t *Tile) Clip() media.Clip { return t.clip }

// Err returns the last load or play failure.
func (t *Tile) Err() error { return t.err }

// Playing reports whether the clip is audibly playing.
func (t *Tile) Playing() bool { return t.player.State() == player.Playing }

// Position returns the playback position seen at the last refresh.
func (t *Tile) Position() time.Duration { return t.position }

// Duration returns the clip length, zero until loaded.
func (t *Tile) Duration() time.Duration { return t.player.Duration() }

// Init loads the clip once.
func (t *Tile) Init() {
	if t.loaded {
		return
	}
	t.loaded = true
	if err := t.player.Load(); err != nil {
		t.err = err
		t.log.WithError(err).Warn("load failed")
	}
}

// Play starts playback, loading first if needed.
func (t *Tile) Play() {
	t.Init()
	if t.err != nil {
		return
	}
	if err := t.player.Play(); err != nil {
		t.err = err
		t.log.WithError(err).Warn("play failed")
	}
	t.UpdateData()
}

// Pause pauses playback.
func (t *Tile) Pause() {
	t.player.Pause()
	t.UpdateData()
}

// UpdateData refreshes the displayed position.
func (t *Tile) UpdateData() {
	t.position = t.player.Position()
}

// Release closes the player. The tile can be initialized again.
func (t *Tile) Release() {
	t.player.Close()
	t.loaded = false
	t.err = nil
	t.position = 0
}

// View renders the tile into a width x height box. visible is the fraction
// of the tile inside the viewport.
func (t *Tile) View(width, height int, visible float64, centered bool) string {
	s := styles.T().S()
	inner := max(width-2, 1)

	title := render.Truncate(icons.FormatClip(t.clip.Title, t.clip.Silent()), inner)
	if t.Playing() {
		title = styles.ApplyBoldGradient(title, styles.T().Primary, styles.T().Secondary)
	} else {
		title = s.Title.Render(title)
	}

	lines := []string{
		title,
		s.Muted.Render(render.Truncate(t.clip.Artist, inner)),
		"",
	}

	switch {
	case t.err != nil:
		lines = append(lines, s.Error.Render(render.Truncate(errmsg.Format(errmsg.OpClipLoad, t.err), inner)))
	case t.loaded:
		lines = append(lines, ProgressBar(t.position, t.Duration(), inner, t.Playing()))
	default:
		lines = append(lines, s.Subtle.Render("not loaded"))
	}
	info := fmt.Sprintf("#%d  %3.0f%% visible", int(t.index)+1, visible*100)
	lines = append(lines, s.Subtle.Render(render.Truncate(info, inner)))

	body := strings.Join(lines, "\n")
	return styles.TileStyle(centered, t.Playing()).
		Width(inner).
		Height(max(height-2, 1)).
		MaxHeight(height).
		Render(body)
}

// Verify Tile implements the controller contract at compile time.
var (
	_ item.Controller = (*Tile)(nil)
	_ item.Releaser   = (*Tile)(nil)
)
