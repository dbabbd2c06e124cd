//go:build linux

package mpris

import (
	"fmt"
	"hash/fnv"

	"github.com/godbus/dbus/v5"
	"github.com/quarckster/go-mpris-server/pkg/server"
	"github.com/quarckster/go-mpris-server/pkg/types"
	"github.com/sirupsen/logrus"

	"github.com/llehouerou/reel/internal/log"
)

// Adapter serves the MPRIS interfaces for the carousel.
type Adapter struct {
	bridge *bridge
	server *server.Server
	log    *logrus.Entry
}

// New creates and starts a new MPRIS adapter. Commands are posted to sender.
func New(sender Sender) (*Adapter, error) {
	a := &Adapter{
		bridge: newBridge(sender),
		log:    log.For("mpris"),
	}

	a.server = server.NewServer("reel", &rootAdapter{}, &playerAdapter{bridge: a.bridge})

	go func() {
		if err := a.server.Listen(); err != nil {
			a.log.WithError(err).Warn("listen stopped")
		}
	}()

	return a, nil
}

// Publish replaces the state reported to the desktop. Call it from the UI
// loop whenever the active or centered clip changes.
func (a *Adapter) Publish(s Snapshot) {
	a.bridge.publish(s)
}

// Close stops the adapter and releases D-Bus resources.
func (a *Adapter) Close() error {
	return a.server.Stop()
}

// rootAdapter implements OrgMprisMediaPlayer2Adapter.
type rootAdapter struct{}

func (r *rootAdapter) Raise() error {
	return nil // Not supported
}

func (r *rootAdapter) Quit() error {
	return nil // Not supported - app manages its own lifecycle
}

func (r *rootAdapter) CanQuit() (bool, error) {
	return false, nil
}

func (r *rootAdapter) CanRaise() (bool, error) {
	return false, nil
}

func (r *rootAdapter) HasTrackList() (bool, error) {
	return false, nil
}

func (r *rootAdapter) Identity() (string, error) {
	return "Reel", nil
}

//nolint:revive // Method name required by interface.
func (r *rootAdapter) SupportedUriSchemes() ([]string, error) {
	return []string{"file"}, nil
}

func (r *rootAdapter) SupportedMimeTypes() ([]string, error) {
	return []string{"audio/mpeg", "audio/flac", "audio/wav"}, nil
}

// playerAdapter implements OrgMprisMediaPlayer2PlayerAdapter.
type playerAdapter struct {
	bridge *bridge
}

func (p *playerAdapter) Next() error {
	p.bridge.post(CommandNext)
	return nil
}

func (p *playerAdapter) Previous() error {
	p.bridge.post(CommandPrevious)
	return nil
}

func (p *playerAdapter) Pause() error {
	p.bridge.post(CommandPause)
	return nil
}

func (p *playerAdapter) PlayPause() error {
	p.bridge.post(CommandPlayPause)
	return nil
}

func (p *playerAdapter) Stop() error {
	p.bridge.post(CommandStop)
	return nil
}

func (p *playerAdapter) Play() error {
	p.bridge.post(CommandPlay)
	return nil
}

func (p *playerAdapter) Seek(_ types.Microseconds) error {
	return nil // Clips are short; seeking is not offered
}

func (p *playerAdapter) SetPosition(_ string, _ types.Microseconds) error {
	return nil
}

//nolint:revive // Method name required by interface.
func (p *playerAdapter) OpenUri(_ string) error {
	return nil // Not supported
}

func (p *playerAdapter) PlaybackStatus() (types.PlaybackStatus, error) {
	switch p.bridge.snapshot().Status {
	case StatusPlaying:
		return types.PlaybackStatusPlaying, nil
	case StatusPaused:
		return types.PlaybackStatusPaused, nil
	case StatusStopped:
		return types.PlaybackStatusStopped, nil
	}
	return types.PlaybackStatusStopped, nil
}

func (p *playerAdapter) Rate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) SetRate(_ float64) error {
	return nil // Not supported
}

func (p *playerAdapter) Metadata() (types.Metadata, error) {
	s := p.bridge.snapshot()
	if s.Index < 0 {
		return types.Metadata{}, nil
	}

	meta := types.Metadata{
		TrackId:     dbus.ObjectPath(formatTrackID(s.Index, s.Path)),
		Length:      types.Microseconds(s.Length.Microseconds()),
		Title:       s.Title,
		TrackNumber: s.Index + 1,
	}
	if s.Artist != "" {
		meta.Artist = []string{s.Artist}
	}
	if art := FindArt(s.Path); art != "" {
		meta.ArtUrl = "file://" + art
	}

	return meta, nil
}

func (p *playerAdapter) Volume() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) SetVolume(_ float64) error {
	return nil // Not supported
}

func (p *playerAdapter) Position() (int64, error) {
	return p.bridge.snapshot().Position.Microseconds(), nil
}

func (p *playerAdapter) MinimumRate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) MaximumRate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) CanGoNext() (bool, error) {
	s := p.bridge.snapshot()
	return s.Index+1 < s.Count, nil
}

func (p *playerAdapter) CanGoPrevious() (bool, error) {
	return p.bridge.snapshot().Index > 0, nil
}

func (p *playerAdapter) CanPlay() (bool, error) {
	return p.bridge.snapshot().Count > 0, nil
}

func (p *playerAdapter) CanPause() (bool, error) {
	return true, nil
}

func (p *playerAdapter) CanSeek() (bool, error) {
	return false, nil
}

func (p *playerAdapter) CanControl() (bool, error) {
	return true, nil
}

// formatTrackID builds a stable D-Bus object path for a clip. Silent clips
// have no path and are keyed by position.
func formatTrackID(index int, path string) string {
	h := fnv.New64a()
	if path == "" {
		path = fmt.Sprintf("#%d", index)
	}
	h.Write([]byte(path))
	return fmt.Sprintf("/org/mpris/MediaPlayer2/Track/%x", h.Sum64())
}
