package keymap

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/samber/lo"
)

// Binding describes a single key binding.
type Binding struct {
	Keys        []string
	Action      Action
	Description string
	Context     string // "global", "playback", "navigation"
}

// All contains all key bindings.
var All = []Binding{
	// Global
	{[]string{"q", "ctrl+c"}, ActionQuit, "Quit", "global"},
	{[]string{"esc", "backspace"}, ActionBack, "Back", "global"},
	{[]string{"?"}, ActionHelp, "Toggle help", "global"},
	{[]string{"ctrl+z"}, ActionSuspend, "Suspend", "global"},

	// Playback
	{[]string{"space", " "}, ActionPlayPause, "Play/pause", "playback"},
	{[]string{"f"}, ActionFullscreen, "Fullscreen", "playback"},

	// Navigation
	{[]string{"l", "right"}, ActionNext, "Next clip", "navigation"},
	{[]string{"h", "left"}, ActionPrev, "Previous clip", "navigation"},
	{[]string{"g", "home"}, ActionFirst, "First clip", "navigation"},
	{[]string{"G", "end"}, ActionLast, "Last clip", "navigation"},
	{[]string{"L", "pgdown"}, ActionPageNext, "Next page", "navigation"},
	{[]string{"H", "pgup"}, ActionPagePrev, "Previous page", "navigation"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	return lo.Filter(All, func(b Binding, _ int) bool {
		return b.Context == context
	})
}

// Help adapts bindings to the bubbles help component.
type Help struct {
	short []key.Binding
	full  [][]key.Binding
}

// NewHelp builds the help key map. The short view lists one binding per
// action in short; the full view groups every binding by context.
func NewHelp(bindings []Binding, short ...Action) Help {
	byAction := lo.KeyBy(bindings, func(b Binding) Action { return b.Action })

	h := Help{}
	for _, a := range short {
		if b, ok := byAction[a]; ok {
			h.short = append(h.short, toKey(b))
		}
	}
	for _, ctx := range []string{"navigation", "playback", "global"} {
		group := lo.FilterMap(bindings, func(b Binding, _ int) (key.Binding, bool) {
			return toKey(b), b.Context == ctx
		})
		if len(group) > 0 {
			h.full = append(h.full, group)
		}
	}
	return h
}

func toKey(b Binding) key.Binding {
	// " " is an alias of "space" and reads badly in help
	shown := lo.Without(b.Keys, " ")
	return key.NewBinding(
		key.WithKeys(b.Keys...),
		key.WithHelp(lo.FirstOr(shown, ""), b.Description),
	)
}

// ShortHelp implements help.KeyMap.
func (h Help) ShortHelp() []key.Binding { return h.short }

// FullHelp implements help.KeyMap.
func (h Help) FullHelp() [][]key.Binding { return h.full }
