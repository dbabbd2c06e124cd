// internal/app/persistence.go
package app

import (
	"github.com/samber/lo"

	"github.com/llehouerou/reel/internal/config"
	"github.com/llehouerou/reel/internal/errmsg"
	"github.com/llehouerou/reel/internal/item"
	"github.com/llehouerou/reel/internal/media"
	"github.com/llehouerou/reel/internal/state"
)

// restorePosition picks the clip centered at startup: the saved clip if it
// is still listed, else the saved index, else the configured autoplay index.
func restorePosition(cfg *config.Config, clips []media.Clip, st state.Interface) (item.Index, bool, error) {
	start := clampIndex(cfg.GetAutoplayIndex(), len(clips))
	fullscreen := cfg.Fullscreen
	if !cfg.ShouldRestorePosition() || st == nil {
		return start, fullscreen, nil
	}

	saved, err := st.GetCarousel()
	if err != nil {
		return start, fullscreen, err
	}
	if saved == nil {
		return start, fullscreen, nil
	}

	fullscreen = fullscreen || saved.Fullscreen
	if _, idx, ok := lo.FindIndexOf(clips, func(c media.Clip) bool {
		return saved.ClipKey != "" && c.Key() == saved.ClipKey
	}); ok {
		return item.Index(idx), fullscreen, nil
	}
	if saved.Index >= 0 && saved.Index < len(clips) {
		return item.Index(saved.Index), fullscreen, nil
	}
	return start, fullscreen, nil
}

func clampIndex(i, n int) item.Index {
	if n == 0 {
		return item.NoIndex
	}
	return item.Index(min(max(i, 0), n-1))
}

func errorText(err error) string {
	return errmsg.Format(errmsg.OpStateRestore, err)
}

// persist saves the centered clip and display mode.
func (m Model) persist() {
	idx := m.Carousel.Target()
	clip, ok := m.Carousel.Clip(idx)
	if !ok || m.StateMgr == nil {
		return
	}
	m.StateMgr.SaveCarousel(state.Carousel{
		Index:      int(idx),
		ClipKey:    clip.Key(),
		Fullscreen: m.Playback.Fullscreen(),
	})
}

// recordPlay counts a play of the clip at idx and refreshes its stats.
func (m Model) recordPlay(idx item.Index) error {
	clip, ok := m.Carousel.Clip(idx)
	if !ok || m.StateMgr == nil {
		return nil
	}
	key := clip.Key()
	delete(m.stats, key)
	if err := m.StateMgr.RecordPlay(key, m.now()); err != nil {
		return err
	}
	m.statsFor(idx)
	return nil
}

// statsFor returns the play history of the clip at idx, loading it once.
func (m Model) statsFor(idx item.Index) (state.ClipStats, bool) {
	clip, ok := m.Carousel.Clip(idx)
	if !ok || m.StateMgr == nil {
		return state.ClipStats{}, false
	}
	key := clip.Key()
	if s, ok := m.stats[key]; ok {
		return s, true
	}
	s, err := m.StateMgr.GetStats(key)
	if err != nil {
		m.log.WithError(err).WithField("clip", key).Debug("load stats")
		return state.ClipStats{}, false
	}
	m.stats[key] = s
	return s, true
}
