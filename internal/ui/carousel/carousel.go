// Package carousel provides the horizontal, snapping strip of clip tiles.
//
// The strip owns its scroll offset and animates it toward the nearest snap
// with a spring. It reports motion to a Listener, materializes tiles only
// around the viewport, and answers the geometry questions the playback core
// asks: which clip is centered and how much of a clip is visible.
package carousel

import (
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/harmonica"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"

	"github.com/llehouerou/reel/internal/item"
	"github.com/llehouerou/reel/internal/media"
	"github.com/llehouerou/reel/internal/scroll"
	"github.com/llehouerou/reel/internal/snap"
	"github.com/llehouerou/reel/internal/ui"
	"github.com/llehouerou/reel/internal/ui/render"
	"github.com/llehouerou/reel/internal/ui/styles"
)

const (
	// Gap is the number of blank columns between tiles.
	Gap = 1

	// WheelStep is how far one mouse wheel notch moves the strip, in columns.
	WheelStep = 3

	fps             = 60
	springFrequency = 10.0
	springDamping   = 1.0

	settlePosition = 0.05
	settleVelocity = 0.5
)

// Listener receives motion notifications from the strip.
type Listener interface {
	OnScrollStateChanged(s scroll.State)
	OnScrolled(delta float64)
}

// frameMsg advances the glide animation. Frames from a superseded
// animation carry a stale generation and are dropped.
type frameMsg struct {
	gen int
}

// Option configures a Model.
type Option func(*Model)

// WithPlayerFactory replaces the backend used for new tiles.
func WithPlayerFactory(f PlayerFactory) Option {
	return func(m *Model) {
		m.newPlayer = f
	}
}

// Model is the carousel strip.
type Model struct {
	ui.Base
	clips     []media.Clip
	tileWidth int
	newPlayer PlayerFactory

	registry *item.Registry
	tiles    map[item.Index]*Tile
	listener Listener

	offset   float64 // strip column shown at the viewport's left edge
	velocity float64
	target   float64
	spring   harmonica.Spring
	state    scroll.State
	ticking  bool
	gen      int
}

// New creates a strip over clips. Tiles are bound into reg as they come
// into range.
func New(clips []media.Clip, tileWidth int, reg *item.Registry, opts ...Option) *Model {
	m := &Model{
		clips:     clips,
		tileWidth: max(tileWidth, 1),
		newPlayer: media.Clip.NewPlayer,
		registry:  reg,
		tiles:     make(map[item.Index]*Tile),
		spring:    harmonica.NewSpring(harmonica.FPS(fps), springFrequency, springDamping),
		state:     scroll.Idle,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// SetListener sets the receiver of motion notifications.
func (m *Model) SetListener(l Listener) {
	m.listener = l
}

// Len returns the number of clips.
func (m *Model) Len() int { return len(m.clips) }

// Clip returns the clip at idx.
func (m *Model) Clip(idx item.Index) (media.Clip, bool) {
	if !m.contains(idx) {
		return media.Clip{}, false
	}
	return m.clips[idx], true
}

// Tile returns the bound tile at idx.
func (m *Model) Tile(idx item.Index) (*Tile, bool) {
	t, ok := m.tiles[idx]
	return t, ok
}

// State returns the current motion state.
func (m *Model) State() scroll.State { return m.state }

// Offset returns the current scroll offset in columns.
func (m *Model) Offset() float64 { return m.offset }

// TileWidth returns the width of one tile in columns.
func (m *Model) TileWidth() int { return m.tileWidth }

// SetSize resizes the viewport and keeps the centered clip centered.
func (m *Model) SetSize(width, height int) {
	keep := m.nearest(m.target)
	m.Base.SetSize(width, height)
	m.Jump(keep)
}

// SetTileWidth changes the tile width and keeps the centered clip centered.
func (m *Model) SetTileWidth(w int) {
	keep := m.nearest(m.target)
	m.tileWidth = max(w, 1)
	m.Jump(keep)
}

// Target returns the clip the strip is at or gliding to.
func (m *Model) Target() item.Index {
	if len(m.clips) == 0 {
		return item.NoIndex
	}
	return m.nearest(m.target)
}

// Jump moves the strip to idx without animation. A running glide is
// abandoned.
func (m *Model) Jump(idx item.Index) {
	m.gen++
	m.ticking = false
	m.velocity = 0
	m.target = m.snapOffset(m.clamp(idx))
	m.offset = m.target
	m.sync()
	m.setState(scroll.Idle)
}

// ScrollTo glides the strip until idx is centered.
func (m *Model) ScrollTo(idx item.Index) tea.Cmd {
	if len(m.clips) == 0 {
		return nil
	}
	m.target = m.snapOffset(m.clamp(idx))
	return m.animate()
}

// ScrollBy glides n tiles forward, or backward for negative n. Repeated
// calls during a glide accumulate.
func (m *Model) ScrollBy(n int) tea.Cmd {
	return m.ScrollTo(m.nearest(m.target) + item.Index(n))
}

// Page glides by the number of tiles that fit in the viewport.
func (m *Model) Page(dir int) tea.Cmd {
	per := max(m.Width()/m.stride(), 1)
	return m.ScrollBy(dir * per)
}

// Home glides to the first clip.
func (m *Model) Home() tea.Cmd { return m.ScrollTo(0) }

// End glides to the last clip.
func (m *Model) End() tea.Cmd { return m.ScrollTo(item.Index(len(m.clips) - 1)) }

// Drag moves the strip by delta columns immediately, then glides to the
// nearest snap.
func (m *Model) Drag(delta float64) tea.Cmd {
	if len(m.clips) == 0 || delta == 0 {
		return nil
	}
	m.setState(scroll.Active)
	prev := m.offset
	m.offset = min(max(m.offset+delta, m.snapOffset(0)), m.snapOffset(m.last()))
	m.sync()
	if moved := m.offset - prev; moved != 0 && m.listener != nil {
		m.listener.OnScrolled(moved)
	}
	m.target = m.snapOffset(m.nearest(m.offset))
	return m.animate()
}

// Update handles animation frames and mouse input.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case frameMsg:
		if msg.gen != m.gen {
			return nil
		}
		return m.frame()
	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	switch msg.Button { //nolint:exhaustive // only wheel and left click move the strip
	case tea.MouseButtonWheelDown, tea.MouseButtonWheelRight:
		return m.Drag(WheelStep)
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelLeft:
		return m.Drag(-WheelStep)
	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress {
			return nil
		}
		if idx, ok := m.At(msg.X); ok {
			return m.ScrollTo(idx)
		}
	}
	return nil
}

// At returns the clip under viewport column x. Gaps hit nothing.
func (m *Model) At(x int) (item.Index, bool) {
	col := float64(x) + m.offset
	if col < 0 {
		return item.NoIndex, false
	}
	idx := item.Index(math.Floor(col / float64(m.stride())))
	if !m.contains(idx) || col-float64(int(idx)*m.stride()) >= float64(m.tileWidth) {
		return item.NoIndex, false
	}
	return idx, true
}

func (m *Model) animate() tea.Cmd {
	if m.offset == m.target && m.velocity == 0 {
		m.setState(scroll.Idle)
		return nil
	}
	m.setState(scroll.Active)
	if m.ticking {
		return nil
	}
	m.ticking = true
	m.gen++
	return m.tick()
}

func (m *Model) tick() tea.Cmd {
	gen := m.gen
	return tea.Tick(time.Second/fps, func(time.Time) tea.Msg {
		return frameMsg{gen: gen}
	})
}

func (m *Model) frame() tea.Cmd {
	prev := m.offset
	m.offset, m.velocity = m.spring.Update(m.offset, m.velocity, m.target)

	settled := math.Abs(m.offset-m.target) < settlePosition && math.Abs(m.velocity) < settleVelocity
	if settled {
		m.offset = m.target
		m.velocity = 0
	}
	m.sync()

	if delta := m.offset - prev; delta != 0 && m.listener != nil {
		m.listener.OnScrolled(delta)
	}

	if !settled {
		return m.tick()
	}
	m.ticking = false
	m.setState(scroll.Idle)
	return nil
}

func (m *Model) setState(s scroll.State) {
	if m.state == s {
		return
	}
	m.state = s
	if m.listener != nil {
		m.listener.OnScrollStateChanged(s)
	}
}

// Resolve returns the clip whose center is closest to the viewport center.
func (m *Model) Resolve() item.Index {
	return snap.Center(m.Layout())
}

// Layout returns the slots intersecting the viewport.
func (m *Model) Layout() snap.Layout {
	vp := m.viewport()
	slots := lo.Map(m.indicesIn(vp), func(idx item.Index, _ int) snap.Slot {
		return snap.Slot{Index: idx, Span: m.slot(idx)}
	})
	return snap.Layout{Viewport: vp, Slots: slots}
}

// VisibleFraction returns how much of the tile at idx is inside the viewport.
func (m *Model) VisibleFraction(idx item.Index) float64 {
	if !m.contains(idx) {
		return 0
	}
	return snap.VisibleFraction(m.slot(idx), m.viewport())
}

// Refresh updates the displayed data of every bound tile.
func (m *Model) Refresh() {
	for _, idx := range m.registry.Indices() {
		if t, ok := m.tiles[idx]; ok {
			t.UpdateData()
		}
	}
}

// Close stops the animation and releases every tile.
func (m *Model) Close() {
	m.gen++
	m.ticking = false
	m.registry.Clear()
	clear(m.tiles)
}

// sync binds tiles within one tile of the viewport and releases the rest.
func (m *Model) sync() {
	stride := float64(m.stride())
	vp := m.viewport()
	want := m.indicesIn(snap.Span{Start: vp.Start - stride, Extent: vp.Extent + 2*stride})

	leaving, entering := lo.Difference(m.registry.Indices(), want)
	for _, idx := range leaving {
		m.registry.Unbind(idx)
		delete(m.tiles, idx)
	}
	for _, idx := range entering {
		clip := m.clips[idx]
		t := NewTile(idx, clip, m.newPlayer(clip))
		m.tiles[idx] = t
		m.registry.Bind(idx, t)
	}
}

// indicesIn returns the clips whose slots intersect span, ascending.
func (m *Model) indicesIn(span snap.Span) []item.Index {
	if len(m.clips) == 0 || span.Extent <= 0 {
		return nil
	}
	stride := float64(m.stride())
	first := max(int(math.Floor((span.Start+m.offset-float64(m.tileWidth))/stride)), 0)
	last := min(int(math.Ceil((span.End()+m.offset)/stride)), len(m.clips)-1)

	var out []item.Index
	for i := first; i <= last; i++ {
		idx := item.Index(i)
		if m.slot(idx).Intersects(span) {
			out = append(out, idx)
		}
	}
	return out
}

func (m *Model) viewport() snap.Span {
	return snap.Span{Start: 0, Extent: float64(m.Width())}
}

func (m *Model) slot(idx item.Index) snap.Span {
	return snap.Span{
		Start:  float64(int(idx)*m.stride()) - m.offset,
		Extent: float64(m.tileWidth),
	}
}

func (m *Model) stride() int { return m.tileWidth + Gap }

// snapOffset is the offset that centers idx in the viewport.
func (m *Model) snapOffset(idx item.Index) float64 {
	return float64(int(idx)*m.stride()) - float64(m.Width()-m.tileWidth)/2
}

// nearest returns the clip that offset would center, clamped to the strip.
func (m *Model) nearest(offset float64) item.Index {
	mid := offset + float64(m.Width()-m.tileWidth)/2
	return m.clamp(item.Index(math.Round(mid / float64(m.stride()))))
}

func (m *Model) clamp(idx item.Index) item.Index {
	return min(max(idx, 0), m.last())
}

func (m *Model) last() item.Index {
	return max(item.Index(len(m.clips)-1), 0)
}

func (m *Model) contains(idx item.Index) bool {
	return idx.Valid() && int(idx) < len(m.clips)
}

// View renders the visible part of the strip.
func (m *Model) View() string {
	if m.Empty() {
		return ""
	}
	width, height := m.Size()
	if len(m.clips) == 0 {
		msg := styles.T().S().Muted.Render("No clips. Set clips_dir or add [[clips]] to config.toml")
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg)
	}

	visible := m.indicesIn(m.viewport())
	if len(visible) == 0 {
		return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Top, "")
	}

	centered := m.Resolve()
	gap := strings.TrimSuffix(strings.Repeat(strings.Repeat(" ", Gap)+"\n", height), "\n")
	blocks := make([]string, 0, 2*len(visible))
	for i, idx := range visible {
		if i > 0 {
			blocks = append(blocks, gap)
		}
		blocks = append(blocks, m.tileView(idx, height, idx == centered))
	}
	strip := lipgloss.JoinHorizontal(lipgloss.Top, blocks...)

	left := int(math.Round(m.offset)) - int(visible[0])*m.stride()
	return render.Crop(strip, left, width)
}

func (m *Model) tileView(idx item.Index, height int, centered bool) string {
	frac := m.VisibleFraction(idx)
	if t, ok := m.tiles[idx]; ok {
		return t.View(m.tileWidth, height, frac, centered)
	}
	// Not yet bound; sync runs before every render in practice.
	return lipgloss.NewStyle().Width(m.tileWidth).Height(height).Render("")
}
