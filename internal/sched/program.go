package sched

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FireMsg is delivered to the tea program when a task's delay elapses.
// The root model must hand it to Program.Dispatch.
type FireMsg struct {
	task *programTask
}

// Sender delivers messages into a running tea program (tea.Program.Send).
type Sender interface {
	Send(msg tea.Msg)
}

// Program schedules tasks with real timers and runs them on the tea loop.
type Program struct {
	sender Sender
}

// NewProgram creates a scheduler posting into sender.
func NewProgram(sender Sender) *Program {
	return &Program{sender: sender}
}

// SetSender replaces the message sink. The tea.Program only exists after the
// root model is built, so main wires it in late.
func (p *Program) SetSender(sender Sender) {
	p.sender = sender
}

type programTask struct {
	timer    *time.Timer
	fn       func()
	canceled bool
	fired    bool
}

// Cancel implements Task. Must be called from the event loop.
func (t *programTask) Cancel() bool {
	if t.canceled || t.fired {
		return false
	}
	t.canceled = true
	t.timer.Stop()
	return true
}

// After implements Scheduler.
func (p *Program) After(d time.Duration, fn func()) Task {
	t := &programTask{fn: fn}
	sender := p.sender
	t.timer = time.AfterFunc(d, func() {
		if sender != nil {
			sender.Send(FireMsg{task: t})
		}
	})
	return t
}

// Dispatch runs the callback carried by msg unless its task was canceled
// after the timer had already fired. It must be called from Update.
func (p *Program) Dispatch(msg FireMsg) {
	t := msg.task
	if t == nil || t.canceled || t.fired {
		return
	}
	t.fired = true
	t.fn()
}

// Verify Program implements Scheduler at compile time.
var _ Scheduler = (*Program)(nil)
