package sched

import (
	"testing"
	"testing/synctest"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func TestManual_RunsTaskWhenDue(t *testing.T) {
	m := NewManual()
	fired := 0
	m.After(500*time.Millisecond, func() { fired++ })

	m.Advance(499 * time.Millisecond)
	if fired != 0 {
		t.Fatalf("fired = %d before deadline, want 0", fired)
	}

	m.Advance(time.Millisecond)
	if fired != 1 {
		t.Errorf("fired = %d at deadline, want 1", fired)
	}
	if m.Pending() != 0 {
		t.Errorf("Pending() = %d after fire, want 0", m.Pending())
	}
}

func TestManual_CancelPreventsFire(t *testing.T) {
	m := NewManual()
	fired := false
	task := m.After(100*time.Millisecond, func() { fired = true })

	if !task.Cancel() {
		t.Error("Cancel() on pending task should return true")
	}
	if task.Cancel() {
		t.Error("second Cancel() should return false")
	}

	m.Advance(time.Second)
	if fired {
		t.Error("canceled task fired")
	}
}

func TestManual_DeadlineOrder(t *testing.T) {
	m := NewManual()
	var order []string
	m.After(300*time.Millisecond, func() { order = append(order, "late") })
	m.After(100*time.Millisecond, func() { order = append(order, "early") })
	m.After(100*time.Millisecond, func() { order = append(order, "early2") })

	m.Advance(time.Second)

	want := []string{"early", "early2", "late"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("order[%d] = %q, want %q", i, order[i], want[i])
		}
	}
}

func TestManual_NowDuringCallback(t *testing.T) {
	m := NewManual()
	var at time.Duration
	m.After(250*time.Millisecond, func() { at = m.Now() })

	m.Advance(time.Second)

	if at != 250*time.Millisecond {
		t.Errorf("Now() in callback = %v, want 250ms", at)
	}
	if m.Now() != time.Second {
		t.Errorf("Now() after Advance = %v, want 1s", m.Now())
	}
}

func TestCancel_NilTask(t *testing.T) {
	if Cancel(nil) {
		t.Error("Cancel(nil) should return false")
	}
}

type chanSender chan tea.Msg

func (c chanSender) Send(msg tea.Msg) { c <- msg }

func TestProgram_FiresThroughSender(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		msgs := make(chanSender, 4)
		p := NewProgram(msgs)
		fired := 0
		p.After(500*time.Millisecond, func() { fired++ })

		time.Sleep(499 * time.Millisecond)
		synctest.Wait()
		if len(msgs) != 0 {
			t.Fatalf("message delivered before deadline")
		}

		time.Sleep(time.Millisecond)
		synctest.Wait()
		msg, ok := (<-msgs).(FireMsg)
		if !ok {
			t.Fatal("expected FireMsg")
		}
		if fired != 0 {
			t.Fatal("callback must not run before Dispatch")
		}

		p.Dispatch(msg)
		p.Dispatch(msg)
		if fired != 1 {
			t.Errorf("fired = %d, want 1", fired)
		}
	})
}

func TestProgram_CancelBeforeDeadline(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		msgs := make(chanSender, 4)
		p := NewProgram(msgs)
		task := p.After(500*time.Millisecond, func() { t.Error("canceled task ran") })

		time.Sleep(300 * time.Millisecond)
		if !task.Cancel() {
			t.Error("Cancel() should report pending task")
		}

		time.Sleep(time.Second)
		synctest.Wait()
		if len(msgs) != 0 {
			t.Errorf("got %d messages after cancel, want 0", len(msgs))
		}
	})
}

func TestProgram_CancelAfterTimerFired(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		msgs := make(chanSender, 4)
		p := NewProgram(msgs)
		task := p.After(100*time.Millisecond, func() { t.Error("stale task ran") })

		time.Sleep(200 * time.Millisecond)
		synctest.Wait()

		// The timer already posted its message; canceling still suppresses it.
		task.Cancel()
		p.Dispatch((<-msgs).(FireMsg))
	})
}
