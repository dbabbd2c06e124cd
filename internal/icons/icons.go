package icons

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the icon characters for the current style.
type Icons struct {
	Playing string
	Paused  string
	Audio   string // prefix for clips backed by a file
	Silent  string // prefix for clips without audio
}

var (
	nerdIcons = Icons{
		Playing: "\uf04b",      // nf-fa-play
		Paused:  "\uf04c",      // nf-fa-pause
		Audio:   "\uf001 ",     // nf-fa-music
		Silent:  "\U000f075f ", // nf-md-volume_off
	}

	unicodeIcons = Icons{
		Playing: "▶",
		Paused:  "⏸",
		Audio:   "♪ ",
		Silent:  "∅ ",
	}

	noneIcons = Icons{
		Playing: ">",
		Paused:  "=",
		Audio:   "",
		Silent:  "",
	}

	// current holds the active icon set
	current = noneIcons
)

// Init initializes the icons based on the style.
// Call this once at startup with the config value.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleUnicode:
		current = unicodeIcons
	default:
		current = noneIcons
	}
}

// Playing returns the playing indicator.
func Playing() string {
	return current.Playing
}

// Paused returns the paused indicator.
func Paused() string {
	return current.Paused
}

// FormatClip prefixes a clip title with its kind.
func FormatClip(title string, silent bool) string {
	if silent {
		return current.Silent + title
	}
	return current.Audio + title
}
