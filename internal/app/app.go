// internal/app/app.go
package app

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/llehouerou/reel/internal/config"
	"github.com/llehouerou/reel/internal/item"
	"github.com/llehouerou/reel/internal/keymap"
	"github.com/llehouerou/reel/internal/log"
	"github.com/llehouerou/reel/internal/media"
	"github.com/llehouerou/reel/internal/mpris"
	"github.com/llehouerou/reel/internal/notify"
	"github.com/llehouerou/reel/internal/playback"
	"github.com/llehouerou/reel/internal/sched"
	"github.com/llehouerou/reel/internal/scroll"
	"github.com/llehouerou/reel/internal/state"
	"github.com/llehouerou/reel/internal/ui/carousel"
	"github.com/llehouerou/reel/internal/ui/styles"
)

// Publisher receives the state shown to desktop media controls.
type Publisher interface {
	Publish(s mpris.Snapshot)
}

// remote holds the publisher. The mpris adapter needs the running
// tea.Program, so it is attached after the model has been handed over.
type remote struct {
	pub      Publisher
	notifier notify.Notifier
	notifyID uint32 // last now playing notification, replaced by the next
}

// Option configures a Model.
type Option func(*options)

type options struct {
	scheduler sched.Scheduler
	players   carousel.PlayerFactory
	publisher Publisher
	notifier  notify.Notifier
	now       func() time.Time
}

// WithScheduler sets the scheduler driving the settle delay. A
// *sched.Program also receives the FireMsg messages it posts.
func WithScheduler(s sched.Scheduler) Option {
	return func(o *options) { o.scheduler = s }
}

// WithPlayerFactory replaces the backend created for each tile.
func WithPlayerFactory(f carousel.PlayerFactory) Option {
	return func(o *options) { o.players = f }
}

// WithPublisher sets the media controls publisher.
func WithPublisher(p Publisher) Option {
	return func(o *options) { o.publisher = p }
}

// WithNotifier sets the desktop notifier used when Notifications is enabled.
func WithNotifier(n notify.Notifier) Option {
	return func(o *options) { o.notifier = n }
}

// WithClock replaces time.Now for play history.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// Model is the root application model.
type Model struct {
	Config    *config.Config
	Carousel  *carousel.Model
	Registry  *item.Registry
	Playback  *playback.Coordinator
	Scroll    *scroll.Aggregator
	Scheduler sched.Scheduler
	StateMgr  state.Interface

	sub      *playback.Subscription
	remote   *remote
	keys     *keymap.Resolver
	help     help.Model
	helpKeys keymap.Help
	stats    map[string]state.ClipStats
	now      func() time.Time
	log      *logrus.Entry

	start      item.Index
	fullscreen bool // initial mode, applied in Init

	StatusMsg string
	statusErr bool
	statusGen int

	Width  int
	Height int
}

// New creates the application model. A failure to read the saved position
// is reported in the status bar and the configured autoplay index is used.
func New(cfg *config.Config, clips []media.Clip, st state.Interface, opts ...Option) Model {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	if o.scheduler == nil {
		o.scheduler = sched.NewProgram(nil)
	}

	reg := item.NewRegistry()
	var carouselOpts []carousel.Option
	if o.players != nil {
		carouselOpts = append(carouselOpts, carousel.WithPlayerFactory(o.players))
	}
	strip := carousel.New(clips, cfg.GetTileWidth(), reg, carouselOpts...)
	coord := playback.New(reg, playback.WithVisibility(strip, cfg.GetVisibilityThreshold()))
	agg := scroll.New(strip, coord, reg, o.scheduler, cfg.GetQuietPeriod())
	strip.SetListener(agg)

	h := help.New()
	h.Styles.ShortKey = styles.T().S().Key
	h.Styles.FullKey = styles.T().S().Key

	m := Model{
		Config:    cfg,
		Carousel:  strip,
		Registry:  reg,
		Playback:  coord,
		Scroll:    agg,
		Scheduler: o.scheduler,
		StateMgr:  st,
		sub:       coord.Subscribe(),
		remote:    &remote{pub: o.publisher, notifier: o.notifier},
		keys:      keymap.NewResolver(keymap.All),
		help:      h,
		helpKeys: keymap.NewHelp(keymap.All,
			keymap.ActionPrev, keymap.ActionNext, keymap.ActionPlayPause,
			keymap.ActionFullscreen, keymap.ActionHelp, keymap.ActionQuit),
		stats: make(map[string]state.ClipStats),
		now:   o.now,
		log:   log.For("app"),
	}

	start, fullscreen, err := restorePosition(cfg, clips, st)
	if err != nil {
		m.log.WithError(err).Warn("restore position")
		m.StatusMsg = errorText(err)
		m.statusErr = true
	}
	m.start = start
	m.fullscreen = fullscreen

	return m
}

// SetPublisher attaches the media controls publisher.
func (m Model) SetPublisher(p Publisher) {
	m.remote.pub = p
}

// Init implements tea.Model. It brings the host to the foreground, centers
// the starting clip and schedules the settle that autoplays it.
func (m Model) Init() tea.Cmd {
	m.Playback.OnStart()
	m.Playback.OnResume()
	if m.fullscreen {
		m.Playback.SetFullscreenMode(true)
	}

	m.Carousel.Jump(m.start)
	m.Scroll.SetLastKnown(m.Carousel.Target())
	m.Scroll.Settle()
	m.log.WithField("index", m.Carousel.Target()).Info("started")

	cmds := []tea.Cmd{m.WatchEvents(), WatchStderr(), RefreshTickCmd()}
	if m.StatusMsg != "" {
		cmds = append(cmds, clearStatusCmd(m.statusGen))
	}
	return tea.Batch(cmds...)
}
