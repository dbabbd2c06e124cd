// internal/playback/coordinator_test.go
package playback

import (
	"testing"

	"github.com/llehouerou/reel/internal/item"
)

// fixture binds mock controllers for the given indices.
type fixture struct {
	rec   *item.Recorder
	reg   *item.Registry
	mocks map[item.Index]*item.Mock
}

func newFixture(indices ...item.Index) *fixture {
	f := &fixture{
		rec:   &item.Recorder{},
		reg:   item.NewRegistry(),
		mocks: make(map[item.Index]*item.Mock),
	}
	for _, idx := range indices {
		m := item.NewMock(idx, f.rec)
		f.mocks[idx] = m
		f.reg.Bind(idx, m)
	}
	return f
}

// newResumed returns a coordinator whose host is in the foreground.
func newResumed(f *fixture, opts ...Option) *Coordinator {
	c := New(f.reg, opts...)
	c.OnStart()
	c.OnResume()
	return c
}

func assertCalls(t *testing.T, rec *item.Recorder, want ...string) {
	t.Helper()
	got := rec.Calls()
	if len(got) != len(want) {
		t.Fatalf("calls = %v, want %v", got, want)
	}
	for i := range want {
		if got[i].String() != want[i] {
			t.Errorf("call[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestNew_NoActiveIndex(t *testing.T) {
	c := New(newFixture().reg)

	if c.Active() != item.NoIndex {
		t.Errorf("Active() = %v, want none", c.Active())
	}
	if c.Fullscreen() {
		t.Error("Fullscreen() = true, want false")
	}
	if c.Lifecycle() != LifecycleCreated {
		t.Errorf("Lifecycle() = %v, want Created", c.Lifecycle())
	}
}

func TestPlay_SwitchPausesPreviousFirst(t *testing.T) {
	f := newFixture(2, 5)
	c := newResumed(f)

	c.Play(2)
	f.rec.Reset()
	c.Play(5)

	assertCalls(t, f.rec, "pause(2)", "init(5)", "play(5)")
	if c.Active() != 5 {
		t.Errorf("Active() = %v, want 5", c.Active())
	}
	if f.mocks[2].Playing() {
		t.Error("index 2 still playing after switching to 5")
	}
}

func TestPlay_Idempotent(t *testing.T) {
	f := newFixture(1)
	c := newResumed(f)

	c.Play(1)
	c.Play(1)

	if got := f.mocks[1].Plays(); got != 1 {
		t.Errorf("Plays() = %d, want 1", got)
	}
	if got := f.mocks[1].Inits(); got != 1 {
		t.Errorf("Inits() = %d, want 1", got)
	}
	if c.Active() != 1 {
		t.Errorf("Active() = %v, want 1", c.Active())
	}
}

func TestPlay_MissingControllerIsNoop(t *testing.T) {
	f := newFixture(2)
	c := newResumed(f)
	c.Play(2)
	f.rec.Reset()

	c.Play(9)

	if c.Active() != 2 {
		t.Errorf("Active() = %v, want 2 (unbound target ignored)", c.Active())
	}
	assertCalls(t, f.rec)
}

func TestPlay_NoIndexIsNoop(t *testing.T) {
	f := newFixture(0)
	c := newResumed(f)

	c.Play(item.NoIndex)

	assertCalls(t, f.rec)
}

func TestPlay_PreviousUnboundStillSwitches(t *testing.T) {
	f := newFixture(1, 2)
	c := newResumed(f)
	c.Play(1)
	f.reg.Unbind(1)
	f.rec.Reset()

	c.Play(2)

	assertCalls(t, f.rec, "init(2)", "play(2)")
	if c.Active() != 2 {
		t.Errorf("Active() = %v, want 2", c.Active())
	}
}

func TestInit_OncePerController(t *testing.T) {
	f := newFixture(3)
	c := newResumed(f)

	c.Init(3)
	c.Init(3)

	if got := f.mocks[3].Inits(); got != 1 {
		t.Errorf("Inits() = %d, want 1", got)
	}
	if c.Active() != item.NoIndex {
		t.Error("Init must not start playback")
	}
}

func TestInit_ReboundControllerInitializedAgain(t *testing.T) {
	f := newFixture(3)
	c := newResumed(f)
	c.Init(3)

	fresh := item.NewMock(3, nil)
	f.reg.Bind(3, fresh)
	c.Init(3)

	if fresh.Inits() != 1 {
		t.Errorf("fresh.Inits() = %d, want 1", fresh.Inits())
	}
}

func TestInit_DoesNotTouchOtherIndices(t *testing.T) {
	f := newFixture(1, 2)
	c := newResumed(f)
	c.Play(1)
	f.rec.Reset()

	c.Init(2)

	assertCalls(t, f.rec, "init(2)")
	if c.Active() != 1 {
		t.Errorf("Active() = %v, want 1", c.Active())
	}
}

func TestPause_ActiveClears(t *testing.T) {
	f := newFixture(3)
	c := newResumed(f)
	c.Play(3)

	c.Pause(3)

	if c.Active() != item.NoIndex {
		t.Errorf("Active() = %v, want none", c.Active())
	}
	if f.mocks[3].Pauses() != 1 {
		t.Errorf("Pauses() = %d, want 1", f.mocks[3].Pauses())
	}
}

func TestPause_StaleIndexIgnored(t *testing.T) {
	f := newFixture(3, 4)
	c := newResumed(f)
	c.Play(3)
	f.rec.Reset()

	c.Pause(4)

	if c.Active() != 3 {
		t.Errorf("Active() = %v, want 3", c.Active())
	}
	assertCalls(t, f.rec)
}

func TestPause_UnboundActiveStillClears(t *testing.T) {
	f := newFixture(3)
	c := newResumed(f)
	c.Play(3)
	f.reg.Unbind(3)

	c.Pause(3)

	if c.Active() != item.NoIndex {
		t.Errorf("Active() = %v, want none", c.Active())
	}
}

func TestIsPauseNeeded_Visibility(t *testing.T) {
	f := newFixture(3)
	visible := 1.0
	c := newResumed(f, WithVisibility(VisibilityFunc(func(item.Index) float64 {
		return visible
	}), DefaultVisibilityThreshold))

	if c.IsPauseNeeded() {
		t.Error("IsPauseNeeded() with no active index should be false")
	}

	c.Play(3)
	if c.IsPauseNeeded() {
		t.Error("IsPauseNeeded() while fully visible should be false")
	}

	visible = 0.8
	if !c.IsPauseNeeded() {
		t.Fatal("IsPauseNeeded() while partly hidden should be true")
	}

	c.Pause(c.Active())
	if c.Active() != item.NoIndex {
		t.Errorf("Active() = %v after pause, want none", c.Active())
	}
	if c.IsPauseNeeded() {
		t.Error("IsPauseNeeded() after pause should be false")
	}
}

func TestIsPauseNeeded_Threshold(t *testing.T) {
	f := newFixture(0)
	c := newResumed(f, WithVisibility(VisibilityFunc(func(item.Index) float64 {
		return 0.6
	}), 0.5))
	c.Play(0)

	if c.IsPauseNeeded() {
		t.Error("60% visible with a 50% threshold should keep playing")
	}
}

func TestIsPauseNeeded_NoVisibilityProbe(t *testing.T) {
	f := newFixture(0)
	c := newResumed(f)
	c.Play(0)

	if c.IsPauseNeeded() {
		t.Error("without a visibility probe nothing forces a pause")
	}
}

func TestRequestPause(t *testing.T) {
	f := newFixture(0)
	c := newResumed(f)

	c.RequestPause()
	if c.IsPauseNeeded() {
		t.Error("request without an active index should be dropped")
	}

	c.Play(0)
	c.RequestPause()
	if !c.IsPauseNeeded() {
		t.Fatal("IsPauseNeeded() should honor a pending request")
	}

	c.Pause(0)
	c.Play(0)
	if c.IsPauseNeeded() {
		t.Error("request must be cleared by pause")
	}
}

func TestSetFullscreenMode_DoesNotAffectPlayback(t *testing.T) {
	f := newFixture(1)
	c := newResumed(f)
	c.Play(1)
	f.rec.Reset()

	c.SetFullscreenMode(true)

	if !c.Fullscreen() {
		t.Error("Fullscreen() = false, want true")
	}
	assertCalls(t, f.rec)
	if c.Active() != 1 {
		t.Errorf("Active() = %v, want 1", c.Active())
	}
}

func TestPlay_FreshCoordinatorPlaysImmediately(t *testing.T) {
	f := newFixture(2, 5)
	c := New(f.reg)

	c.Play(2)
	c.Play(5)

	if c.Active() != 5 {
		t.Fatalf("Active() = %v, want 5", c.Active())
	}
	assertCalls(t, f.rec, "init(2)", "play(2)", "pause(2)", "init(5)", "play(5)")
}

func TestPlay_WhilePausedIsDeferred(t *testing.T) {
	f := newFixture(2)
	c := newResumed(f)
	c.OnPause()

	c.Play(2)
	if c.Active() != item.NoIndex {
		t.Fatalf("Active() = %v while paused, want none", c.Active())
	}
	assertCalls(t, f.rec)

	c.OnResume()
	if c.Active() != 2 {
		t.Errorf("Active() = %v after resume, want 2", c.Active())
	}
	assertCalls(t, f.rec, "init(2)", "play(2)")
}

func TestOnPauseOnResume_RestartsActive(t *testing.T) {
	f := newFixture(4)
	c := newResumed(f)
	c.Play(4)

	c.OnPause()
	if c.Active() != item.NoIndex {
		t.Errorf("Active() = %v after OnPause, want none", c.Active())
	}
	if f.mocks[4].Playing() {
		t.Error("item should be paused after OnPause")
	}

	c.OnResume()
	if c.Active() != 4 {
		t.Errorf("Active() = %v after OnResume, want 4", c.Active())
	}
	if !f.mocks[4].Playing() {
		t.Error("item should play again after OnResume")
	}
}

func TestOnStop_ThenStartResume(t *testing.T) {
	f := newFixture(1)
	c := newResumed(f)
	c.Play(1)

	c.OnPause()
	c.OnStop()
	c.OnStart()
	c.OnResume()

	if c.Active() != 1 {
		t.Errorf("Active() = %v, want 1", c.Active())
	}
	if got := f.mocks[1].Plays(); got != 2 {
		t.Errorf("Plays() = %d, want 2", got)
	}
}

func TestOnResume_NothingRemembered(t *testing.T) {
	f := newFixture(1)
	c := newResumed(f)

	c.OnPause()
	c.OnResume()

	assertCalls(t, f.rec)
}

func TestOnBackPressed(t *testing.T) {
	f := newFixture(1)
	c := newResumed(f)
	c.Play(1)
	c.SetFullscreenMode(true)

	if !c.OnBackPressed() {
		t.Error("back in fullscreen should be consumed")
	}
	if c.Fullscreen() {
		t.Error("back should leave fullscreen")
	}
	if c.Active() != 1 {
		t.Error("leaving fullscreen must not stop playback")
	}

	if c.OnBackPressed() {
		t.Error("back outside fullscreen should not be consumed")
	}
	if c.Active() != item.NoIndex {
		t.Errorf("Active() = %v after back, want none", c.Active())
	}
}

func TestOnDestroy_ReleasesEverything(t *testing.T) {
	f := newFixture(1, 2)
	c := newResumed(f)
	c.Init(2)
	c.Play(1)

	c.OnDestroy()

	if c.Active() != item.NoIndex {
		t.Errorf("Active() = %v, want none", c.Active())
	}
	if !f.mocks[1].Released() || !f.mocks[2].Released() {
		t.Error("prepared controllers should be released")
	}
	if c.Lifecycle() != LifecycleDestroyed {
		t.Errorf("Lifecycle() = %v, want Destroyed", c.Lifecycle())
	}

	f.rec.Reset()
	c.Play(2)
	c.Init(1)
	c.OnResume()
	c.SetFullscreenMode(true)
	assertCalls(t, f.rec)
	if c.Active() != item.NoIndex || c.Fullscreen() {
		t.Error("operations after destroy must be no-ops")
	}
}

func TestOnDestroy_SkipsRecycledControllers(t *testing.T) {
	f := newFixture(1)
	c := newResumed(f)
	c.Init(1)
	old := f.mocks[1]
	fresh := item.NewMock(1, nil)
	f.reg.Bind(1, fresh) // releases old

	c.OnDestroy()

	if !old.Released() {
		t.Error("old controller was released by the registry")
	}
	if fresh.Released() {
		t.Error("controller never prepared should not be released by destroy")
	}
}

func TestSubscribe_ReceivesEvents(t *testing.T) {
	f := newFixture(2, 5)
	c := newResumed(f)
	sub := c.Subscribe()

	c.Play(2)
	c.Play(5)
	c.Pause(5)
	c.SetFullscreenMode(true)

	want := []ActiveChange{
		{Previous: item.NoIndex, Current: 2},
		{Previous: 2, Current: 5},
		{Previous: 5, Current: item.NoIndex},
	}
	for i, w := range want {
		select {
		case got := <-sub.ActiveChanged:
			if got != w {
				t.Errorf("event[%d] = %+v, want %+v", i, got, w)
			}
		default:
			t.Fatalf("missing event[%d]", i)
		}
	}

	select {
	case e := <-sub.FullscreenChanged:
		if !e.Fullscreen {
			t.Error("FullscreenChanged.Fullscreen = false, want true")
		}
	default:
		t.Error("missing fullscreen event")
	}
}

func TestSubscribe_StalePauseEmitsNothing(t *testing.T) {
	f := newFixture(2)
	c := newResumed(f)
	c.Play(2)
	sub := c.Subscribe()

	c.Pause(7)
	c.Play(2)

	select {
	case e := <-sub.ActiveChanged:
		t.Errorf("unexpected event %+v", e)
	default:
	}
}

func TestSubscribe_ClosedOnDestroy(t *testing.T) {
	c := newResumed(newFixture())
	sub := c.Subscribe()

	c.OnDestroy()

	select {
	case <-sub.Done:
	default:
		t.Error("Done should be closed after OnDestroy")
	}

	late := c.Subscribe()
	select {
	case <-late.Done:
	default:
		t.Error("subscription after destroy should already be done")
	}
}

// sliceController cannot be compared with ==.
type sliceController struct {
	rec []string
}

func (sliceController) Init()       {}
func (sliceController) Play()       {}
func (sliceController) Pause()      {}
func (sliceController) UpdateData() {}

func TestPlay_NonComparableControllerDoesNotPanic(t *testing.T) {
	reg := item.NewRegistry()
	reg.Bind(0, sliceController{rec: []string{"x"}})
	reg.Bind(1, sliceController{})
	c := New(reg)

	c.Init(0)
	c.Init(0)
	c.Play(0)
	c.Play(1)
	c.OnDestroy()

	if c.Active() != item.NoIndex {
		t.Errorf("Active() = %v after destroy, want none", c.Active())
	}
}

func TestPrepare_ForgetsUnboundControllers(t *testing.T) {
	f := newFixture(1, 2, 3)
	c := newResumed(f)
	c.Init(1)
	c.Init(2)

	f.reg.Unbind(1)
	c.Init(3)

	if _, ok := c.prepared[1]; ok {
		t.Error("unbound index 1 should be forgotten")
	}
	if len(c.prepared) != 2 {
		t.Errorf("prepared = %d entries, want 2", len(c.prepared))
	}

	fresh := item.NewMock(1, f.rec)
	f.reg.Bind(1, fresh)
	c.Init(1)
	if fresh.Inits() != 1 {
		t.Errorf("rebound controller Inits() = %d, want 1", fresh.Inits())
	}
}

func TestSubscribe_ResumeMarksRestart(t *testing.T) {
	f := newFixture(2, 5)
	c := newResumed(f)
	sub := c.Subscribe()

	c.Play(2)
	c.OnPause()
	c.OnResume()

	c.OnPause()
	c.Play(5) // picked while paused
	c.OnResume()

	want := []ActiveChange{
		{Previous: item.NoIndex, Current: 2},
		{Previous: 2, Current: item.NoIndex},
		{Previous: item.NoIndex, Current: 2, Resumed: true},
		{Previous: 2, Current: item.NoIndex},
		{Previous: item.NoIndex, Current: 5},
	}
	for i, w := range want {
		select {
		case got := <-sub.ActiveChanged:
			if got != w {
				t.Errorf("event[%d] = %+v, want %+v", i, got, w)
			}
		default:
			t.Fatalf("missing event[%d]", i)
		}
	}
}
