package item

import "fmt"

// Call is one controller invocation observed by a Recorder.
type Call struct {
	Index  Index
	Method string
}

func (c Call) String() string {
	return fmt.Sprintf("%s(%s)", c.Method, c.Index)
}

// Recorder collects calls across several mocks so tests can assert ordering.
type Recorder struct {
	calls []Call
}

// Calls returns every recorded call in order.
func (r *Recorder) Calls() []Call { return r.calls }

// Reset forgets recorded calls.
func (r *Recorder) Reset() { r.calls = nil }

// Count returns how many times method was called for idx.
func (r *Recorder) Count(idx Index, method string) int {
	n := 0
	for _, c := range r.calls {
		if c.Index == idx && c.Method == method {
			n++
		}
	}
	return n
}

func (r *Recorder) add(idx Index, method string) {
	if r != nil {
		r.calls = append(r.calls, Call{Index: idx, Method: method})
	}
}

// Mock is a test double for Controller.
type Mock struct {
	idx      Index
	rec      *Recorder
	inits    int
	plays    int
	pauses   int
	updates  int
	released bool
	playing  bool
}

// NewMock creates a mock controller for idx reporting to rec (which may be nil).
func NewMock(idx Index, rec *Recorder) *Mock {
	return &Mock{idx: idx, rec: rec}
}

func (m *Mock) Init() {
	m.inits++
	m.rec.add(m.idx, "init")
}

func (m *Mock) Play() {
	m.plays++
	m.playing = true
	m.rec.add(m.idx, "play")
}

func (m *Mock) Pause() {
	m.pauses++
	m.playing = false
	m.rec.add(m.idx, "pause")
}

func (m *Mock) UpdateData() {
	m.updates++
	m.rec.add(m.idx, "update")
}

func (m *Mock) Release() {
	m.released = true
	m.playing = false
	m.rec.add(m.idx, "release")
}

// Test helpers

func (m *Mock) Inits() int { return m.inits }

func (m *Mock) Plays() int { return m.plays }

func (m *Mock) Pauses() int { return m.pauses }

func (m *Mock) Updates() int { return m.updates }

func (m *Mock) Released() bool { return m.released }

func (m *Mock) Playing() bool { return m.playing }

// Verify Mock implements Controller and Releaser at compile time.
var (
	_ Controller = (*Mock)(nil)
	_ Releaser   = (*Mock)(nil)
)
