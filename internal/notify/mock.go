package notify

// Mock records notifications for tests.
type Mock struct {
	sent      []Notification
	dismissed []uint32
	nextID    uint32
	err       error
}

// NewMock creates a mock notifier. IDs start at 1 and a notification that
// replaces another keeps its ID.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) Notify(n Notification) (uint32, error) {
	if m.err != nil {
		return 0, m.err
	}
	m.sent = append(m.sent, n)
	if n.ReplacesID != 0 {
		return n.ReplacesID, nil
	}
	m.nextID++
	return m.nextID, nil
}

func (m *Mock) Dismiss(id uint32) error {
	m.dismissed = append(m.dismissed, id)
	return nil
}

// Test helpers

func (m *Mock) SetError(err error) { m.err = err }

func (m *Mock) Sent() []Notification { return m.sent }

func (m *Mock) Dismissed() []uint32 { return m.dismissed }

// Verify implementations satisfy Notifier at compile time.
var (
	_ Notifier = (*Mock)(nil)
	_ Notifier = nopNotifier{}
)
