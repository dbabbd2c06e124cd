// Package media builds the list of clips shown in the carousel.
package media

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/llehouerou/reel/internal/config"
	"github.com/llehouerou/reel/internal/player"
)

// DefaultSilentDuration is the length of a clip with neither a file nor a
// configured duration.
const DefaultSilentDuration = 15 * time.Second

// Clip is one carousel entry.
type Clip struct {
	Title    string
	Artist   string
	Path     string        // audio file; empty for silent clips
	Duration time.Duration // only meaningful for silent clips
}

// Silent reports whether the clip plays without audio.
func (c Clip) Silent() bool {
	return c.Path == ""
}

// Label returns "Artist - Title", or the title alone.
func (c Clip) Label() string {
	if c.Artist == "" {
		return c.Title
	}
	return c.Artist + " - " + c.Title
}

// Key identifies the clip across runs: its path, or its label for silent
// clips.
func (c Clip) Key() string {
	if c.Path != "" {
		return c.Path
	}
	return "silent:" + c.Label()
}

// NewPlayer creates the backend for the clip.
func (c Clip) NewPlayer() player.Interface {
	if c.Silent() {
		d := c.Duration
		if d <= 0 {
			d = DefaultSilentDuration
		}
		return player.NewClock(d)
	}
	return player.NewAudio(c.Path)
}

// FromConfig returns the configured clips followed by the audio files found
// in the clips directory, sorted by path. Files already listed explicitly are
// not repeated.
func FromConfig(cfg *config.Config) ([]Clip, error) {
	clips := make([]Clip, 0, len(cfg.Clips))
	for i, cc := range cfg.Clips {
		clips = append(clips, fromEntry(i, cc))
	}

	if cfg.ClipsDir == "" {
		return clips, nil
	}

	found, err := Scan(cfg.ClipsDir)
	if err != nil {
		return clips, fmt.Errorf("scan %s: %w", cfg.ClipsDir, err)
	}

	listed := lo.SliceToMap(clips, func(c Clip) (string, struct{}) {
		return filepath.Clean(c.Path), struct{}{}
	})
	for _, c := range found {
		if _, dup := listed[filepath.Clean(c.Path)]; !dup {
			clips = append(clips, c)
		}
	}
	return clips, nil
}

func fromEntry(i int, cc config.ClipConfig) Clip {
	c := Clip{
		Title:    cc.Title,
		Artist:   cc.Artist,
		Path:     cc.Path,
		Duration: cc.Duration,
	}
	if c.Title != "" {
		return c
	}
	if c.Path != "" {
		if m, err := ReadTags(c.Path); err == nil {
			c.Title = m.Title
			c.Artist = lo.CoalesceOrEmpty(c.Artist, m.Artist)
			return c
		}
		c.Title = titleFromPath(c.Path)
		return c
	}
	c.Title = fmt.Sprintf("Clip %d", i+1)
	return c
}

// Scan walks dir for playable audio files and reads their tags.
func Scan(dir string) ([]Clip, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && player.IsAudioFile(path) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	slices.Sort(paths)

	return lo.Map(paths, func(path string, _ int) Clip {
		c := Clip{Path: path, Title: titleFromPath(path)}
		if m, err := ReadTags(path); err == nil {
			c.Title = m.Title
			c.Artist = m.Artist
		}
		return c
	}), nil
}

// Placeholders returns n silent clips, used when nothing is configured.
func Placeholders(n int) []Clip {
	return lo.Times(n, func(i int) Clip {
		return Clip{
			Title:    fmt.Sprintf("Clip %d", i+1),
			Duration: DefaultSilentDuration,
		}
	})
}

func titleFromPath(path string) string {
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}
