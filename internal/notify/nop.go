package notify

// nopNotifier is used where no notification daemon is reachable.
type nopNotifier struct{}

func (nopNotifier) Notify(Notification) (uint32, error) { return 0, nil }

func (nopNotifier) Dismiss(uint32) error { return nil }
