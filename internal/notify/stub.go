//go:build !linux

package notify

// New returns a notifier that does nothing on non-Linux platforms.
func New() Notifier {
	return nopNotifier{}
}
