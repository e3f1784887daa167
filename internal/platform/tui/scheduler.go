// Package tui provides the Bubble Tea integration for breakout.
// It handles the terminal UI loop, input mapping, the scoreboard and SSH hosting.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

// TickMsg is sent when a scheduled callback is due.
type TickMsg struct {
	Handle breakout.TimerHandle
	Time   time.Time
}

type timer struct {
	fn       func()
	interval time.Duration
}

// TeaScheduler implements breakout.Scheduler on top of tea.Tick.
// Callbacks run inside Update, so they never race with input handling.
type TeaScheduler struct {
	next    breakout.TimerHandle
	timers  map[breakout.TimerHandle]timer
	pending []breakout.TimerHandle
}

// NewTeaScheduler creates an empty scheduler.
func NewTeaScheduler() *TeaScheduler {
	return &TeaScheduler{timers: make(map[breakout.TimerHandle]timer)}
}

// ScheduleRepeating registers fn. The first tick is armed by Pending.
func (s *TeaScheduler) ScheduleRepeating(fn func(), interval time.Duration) breakout.TimerHandle {
	s.next++
	s.timers[s.next] = timer{fn: fn, interval: interval}
	s.pending = append(s.pending, s.next)
	return s.next
}

// Cancel stops a schedule. Ticks already in flight for it are dropped.
func (s *TeaScheduler) Cancel(h breakout.TimerHandle) {
	delete(s.timers, h)
}

// Active reports whether h is still scheduled.
func (s *TeaScheduler) Active(h breakout.TimerHandle) bool {
	_, ok := s.timers[h]
	return ok
}

// Pending returns the commands that arm newly registered schedules.
func (s *TeaScheduler) Pending() tea.Cmd {
	var cmds []tea.Cmd
	for _, h := range s.pending {
		if t, ok := s.timers[h]; ok {
			cmds = append(cmds, tickCmd(h, t.interval))
		}
	}
	s.pending = nil
	return tea.Batch(cmds...)
}

// Fire runs the callback for h and re-arms it. Returns nil once h is
// cancelled, including when the callback cancels itself.
func (s *TeaScheduler) Fire(h breakout.TimerHandle) tea.Cmd {
	t, ok := s.timers[h]
	if !ok {
		return nil
	}
	t.fn()
	if !s.Active(h) {
		return nil
	}
	return tickCmd(h, t.interval)
}

// Hold re-arms h without running its callback.
func (s *TeaScheduler) Hold(h breakout.TimerHandle) tea.Cmd {
	t, ok := s.timers[h]
	if !ok {
		return nil
	}
	return tickCmd(h, t.interval)
}

// tickCmd returns a Bubble Tea command that sends one tick after interval.
func tickCmd(h breakout.TimerHandle, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Handle: h, Time: t}
	})
}

var _ breakout.Scheduler = (*TeaScheduler)(nil)
