// internal/app/update.go
package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/llehouerou/reel/internal/errmsg"
	"github.com/llehouerou/reel/internal/item"
	"github.com/llehouerou/reel/internal/keymap"
	"github.com/llehouerou/reel/internal/mpris"
	"github.com/llehouerou/reel/internal/notify"
	"github.com/llehouerou/reel/internal/sched"
	"github.com/llehouerou/reel/internal/ui"
)

// dispatcher runs the callbacks of a scheduler that posts FireMsg.
type dispatcher interface {
	Dispatch(msg sched.FireMsg)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m, cmd := m.update(msg)
	m.statsFor(m.Carousel.Target())
	return m, cmd
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.help.Width = msg.Width
		m.layout()
		return m, nil

	case sched.FireMsg:
		if d, ok := m.Scheduler.(dispatcher); ok {
			d.Dispatch(msg)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.FocusMsg:
		m.Playback.OnResume()
		return m, nil

	case tea.BlurMsg:
		m.Playback.OnPause()
		return m, nil

	case tea.ResumeMsg:
		m.Playback.OnStart()
		m.Playback.OnResume()
		return m, nil

	case mpris.CommandMsg:
		return m, m.handleCommand(msg.Command)

	case ActiveChangedMsg:
		m = m.handleActiveChanged(msg)
		var notice tea.Cmd
		if !msg.Resumed {
			notice = m.nowPlaying(msg.Current)
		}
		return m, tea.Batch(m.WatchEvents(), m.statusCmd(), notice)

	case notifiedMsg:
		if msg.err != nil {
			m.log.WithError(msg.err).Debug("notify")
			return m, nil
		}
		m.remote.notifyID = msg.id
		return m, nil

	case FullscreenChangedMsg:
		m.layout()
		m.persist()
		return m, m.WatchEvents()

	case LifecycleChangedMsg:
		m.log.WithFields(logrus.Fields{"from": msg.Previous, "to": msg.Current}).Debug("lifecycle changed")
		m.publish()
		return m, m.WatchEvents()

	case EventsClosedMsg:
		return m, nil

	case StderrMsg:
		m = m.setStatus(msg.Line, false)
		return m, tea.Batch(WatchStderr(), m.statusCmd())

	case NoticeMsg:
		m = m.setStatus(msg.Text, msg.Err)
		return m, m.statusCmd()

	case RefreshMsg:
		m.Carousel.Refresh()
		m.publish()
		return m, RefreshTickCmd()

	case clearStatusMsg:
		if msg.gen == m.statusGen {
			m.StatusMsg = ""
			m.statusErr = false
		}
		return m, nil
	}

	// Mouse input and animation frames belong to the strip.
	return m, m.Carousel.Update(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch m.keys.Resolve(msg.String()) {
	case keymap.ActionQuit:
		return m, m.quit()

	case keymap.ActionBack:
		if m.help.ShowAll {
			m.help.ShowAll = false
			return m, nil
		}
		if m.Playback.OnBackPressed() {
			m.layout()
			return m, nil
		}
		return m, m.quit()

	case keymap.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case keymap.ActionSuspend:
		m.Playback.OnStop()
		return m, tea.Suspend

	case keymap.ActionPlayPause:
		m.togglePlayback()
		return m, nil

	case keymap.ActionFullscreen:
		m.Playback.SetFullscreenMode(!m.Playback.Fullscreen())
		m.layout()
		return m, nil

	case keymap.ActionNext:
		return m, m.Carousel.ScrollBy(1)
	case keymap.ActionPrev:
		return m, m.Carousel.ScrollBy(-1)
	case keymap.ActionFirst:
		return m, m.Carousel.Home()
	case keymap.ActionLast:
		return m, m.Carousel.End()
	case keymap.ActionPageNext:
		return m, m.Carousel.Page(1)
	case keymap.ActionPagePrev:
		return m, m.Carousel.Page(-1)
	}
	return m, nil
}

func (m Model) handleCommand(c mpris.Command) tea.Cmd {
	m.log.WithField("command", c).Debug("media control")
	switch c {
	case mpris.CommandPlay:
		if !m.Playback.Active().Valid() {
			m.Playback.Play(m.resumeIndex())
		}
	case mpris.CommandPause, mpris.CommandStop:
		m.Playback.Pause(m.Playback.Active())
	case mpris.CommandPlayPause:
		m.togglePlayback()
	case mpris.CommandNext:
		return m.Carousel.ScrollBy(1)
	case mpris.CommandPrevious:
		return m.Carousel.ScrollBy(-1)
	}
	m.publish()
	return nil
}

// togglePlayback pauses the active clip, or plays the clip the strip last
// settled on.
func (m Model) togglePlayback() {
	if idx := m.Playback.Active(); idx.Valid() {
		m.Playback.Pause(idx)
		return
	}
	m.Playback.Play(m.resumeIndex())
}

func (m Model) resumeIndex() item.Index {
	if idx := m.Scroll.LastKnown(); idx.Valid() {
		return idx
	}
	return m.Carousel.Resolve()
}

func (m Model) handleActiveChanged(msg ActiveChangedMsg) Model {
	m.log.WithFields(logrus.Fields{"from": msg.Previous, "to": msg.Current, "resumed": msg.Resumed}).Info("active changed")
	if msg.Current.Valid() {
		if !msg.Resumed {
			if err := m.recordPlay(msg.Current); err != nil {
				m.log.WithError(err).Warn("record play")
			}
		}
		if t, ok := m.Carousel.Tile(msg.Current); ok && t.Err() != nil {
			m = m.setStatus(errmsg.FormatWith(errmsg.OpClipPlay, t.Clip().Title, t.Err()), true)
		}
	}
	m.persist()
	m.publish()
	return m
}

// nowPlaying announces the clip at idx on the desktop.
func (m Model) nowPlaying(idx item.Index) tea.Cmd {
	if !idx.Valid() || !m.Config.Notifications || m.remote.notifier == nil {
		return nil
	}
	clip, ok := m.Carousel.Clip(idx)
	if !ok {
		return nil
	}
	var art string
	if clip.Path != "" {
		art = mpris.FindArt(clip.Path)
	}
	return notifyCmd(m.remote.notifier, notify.NowPlaying(clip.Title, clip.Artist, art, m.remote.notifyID))
}

// quit saves the position and tears the playback session down.
func (m Model) quit() tea.Cmd {
	m.persist()
	m.Scroll.Close()
	m.Playback.OnDestroy()
	m.Carousel.Close()
	m.publish()
	return tea.Quit
}

func (m Model) setStatus(text string, isErr bool) Model {
	m.StatusMsg = text
	m.statusErr = isErr
	m.statusGen++
	return m
}

func (m Model) statusCmd() tea.Cmd {
	if m.StatusMsg == "" {
		return nil
	}
	return clearStatusCmd(m.statusGen)
}

// layout sizes the strip. Fullscreen gives one clip the whole terminal;
// otherwise tiles keep their configured width below the header.
func (m Model) layout() {
	if m.Width <= 0 || m.Height <= 0 {
		return
	}
	if m.Playback.Fullscreen() {
		m.Carousel.SetTileWidth(m.Width)
		m.Carousel.SetSize(m.Width, m.Height)
		return
	}
	m.Carousel.SetTileWidth(m.Config.GetTileWidth())
	m.Carousel.SetSize(m.Width, m.tileHeight())
}

func (m Model) bodyHeight() int {
	return max(m.Height-ui.ChromeHeight, 0)
}

func (m Model) tileHeight() int {
	body := m.bodyHeight()
	if body < ui.MinTileHeight {
		return body
	}
	return min(body, ui.MaxTileHeight)
}

// publish hands the current state to the media controls.
func (m Model) publish() {
	if m.remote.pub == nil {
		return
	}
	m.remote.pub.Publish(m.snapshot())
}

func (m Model) snapshot() mpris.Snapshot {
	s := mpris.Snapshot{Status: mpris.StatusStopped, Index: -1, Count: m.Carousel.Len()}
	active := m.Playback.Active()
	idx := active
	if !idx.Valid() {
		idx = m.Carousel.Target()
	}
	clip, ok := m.Carousel.Clip(idx)
	if !ok {
		return s
	}
	s.Index = int(idx)
	s.Title = clip.Title
	s.Artist = clip.Artist
	s.Path = clip.Path
	if t, ok := m.Carousel.Tile(idx); ok {
		s.Position = t.Position()
		s.Length = t.Duration()
		if s.Position > 0 {
			s.Status = mpris.StatusPaused
		}
	}
	if active.Valid() && m.Playback.Lifecycle().CanPlay() {
		s.Status = mpris.StatusPlaying
	}
	return s
}
