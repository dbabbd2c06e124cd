// Package notify sends desktop notifications when a clip starts.
package notify

// Urgency represents notification priority levels as defined by the freedesktop notification protocol.
type Urgency byte

const (
	UrgencyLow      Urgency = 0
	UrgencyNormal   Urgency = 1
	UrgencyCritical Urgency = 2
)

// nowPlayingTimeout is how long a now playing bubble stays up, in ms.
const nowPlayingTimeout = 4000

// Notification contains data for a desktop notification.
type Notification struct {
	Title      string  // Summary text (required)
	Body       string  // Body text (optional, supports basic markup)
	Icon       string  // Path to image file or icon name (optional)
	Timeout    int32   // ms, -1 = server default, 0 = never expire
	ReplacesID uint32  // 0 = new notification, >0 = replace existing
	Urgency    Urgency // Low, Normal, Critical
}

// Notifier sends desktop notifications.
type Notifier interface {
	// Notify shows n and returns its ID, or 0 when notifications are
	// unavailable.
	Notify(n Notification) (uint32, error)
	// Dismiss closes a notification by ID.
	Dismiss(id uint32) error
}

// NowPlaying builds the notification for a clip that started playing.
// replaces is the ID of the previous now playing notification, so only one
// is ever on screen.
func NowPlaying(title, artist, icon string, replaces uint32) Notification {
	body := artist
	if body == "" {
		body = "Now playing"
	}
	if icon == "" {
		icon = "media-playback-start"
	}
	return Notification{
		Title:      title,
		Body:       body,
		Icon:       icon,
		Timeout:    nowPlayingTimeout,
		ReplacesID: replaces,
		Urgency:    UrgencyLow,
	}
}
