package playback

const eventBufferSize = 16

// Subscription provides event channels for a subscriber.
type Subscription struct {
	ActiveChanged     <-chan ActiveChange
	FullscreenChanged <-chan FullscreenChange
	LifecycleChanged  <-chan LifecycleChange
	Done              <-chan struct{}

	// Internal write channels
	activeCh     chan ActiveChange
	fullscreenCh chan FullscreenChange
	lifecycleCh  chan LifecycleChange
	doneCh       chan struct{}
}

// newSubscription creates a new subscription with buffered channels.
func newSubscription() *Subscription {
	s := &Subscription{
		activeCh:     make(chan ActiveChange, eventBufferSize),
		fullscreenCh: make(chan FullscreenChange, eventBufferSize),
		lifecycleCh:  make(chan LifecycleChange, eventBufferSize),
		doneCh:       make(chan struct{}),
	}
	s.ActiveChanged = s.activeCh
	s.FullscreenChanged = s.fullscreenCh
	s.LifecycleChanged = s.lifecycleCh
	s.Done = s.doneCh
	return s
}

// close signals subscribers to stop by closing doneCh.
func (s *Subscription) close() {
	close(s.doneCh)
}

// sendActive sends an active change event (non-blocking).
func (s *Subscription) sendActive(e ActiveChange) {
	select {
	case s.activeCh <- e:
	default:
		// Drop if buffer full
	}
}

// sendFullscreen sends a fullscreen change event (non-blocking).
func (s *Subscription) sendFullscreen(e FullscreenChange) {
	select {
	case s.fullscreenCh <- e:
	default:
	}
}

// sendLifecycle sends a lifecycle change event (non-blocking).
func (s *Subscription) sendLifecycle(e LifecycleChange) {
	select {
	case s.lifecycleCh <- e:
	default:
	}
}
