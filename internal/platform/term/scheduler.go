// Package term runs breakout directly on a tcell screen with a select loop,
// for terminals where the Bubble Tea renderer is too slow or unwanted.
package term

import (
	"time"

	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

// LoopScheduler implements breakout.Scheduler for a select loop.
// It holds at most one schedule; registering a new one replaces the old.
// The loop selects on C and calls Fire, so callbacks run on the loop goroutine.
type LoopScheduler struct {
	next   breakout.TimerHandle
	handle breakout.TimerHandle
	fn     func()
	ticker *time.Ticker
}

// NewLoopScheduler creates an idle scheduler.
func NewLoopScheduler() *LoopScheduler {
	return &LoopScheduler{}
}

// ScheduleRepeating starts a ticker for fn.
func (s *LoopScheduler) ScheduleRepeating(fn func(), interval time.Duration) breakout.TimerHandle {
	s.Stop()
	s.next++
	s.handle = s.next
	s.fn = fn
	s.ticker = time.NewTicker(interval)
	return s.handle
}

// Cancel stops h if it is the active schedule.
func (s *LoopScheduler) Cancel(h breakout.TimerHandle) {
	if h == s.handle {
		s.Stop()
	}
}

// Stop cancels whatever is scheduled.
func (s *LoopScheduler) Stop() {
	if s.ticker != nil {
		s.ticker.Stop()
	}
	s.ticker = nil
	s.fn = nil
	s.handle = 0
}

// Active reports whether a schedule is running.
func (s *LoopScheduler) Active() bool {
	return s.ticker != nil
}

// C returns the tick channel, or nil when idle so a select case on it
// never fires.
func (s *LoopScheduler) C() <-chan time.Time {
	if s.ticker == nil {
		return nil
	}
	return s.ticker.C
}

// Fire runs the scheduled callback.
func (s *LoopScheduler) Fire() {
	if s.fn != nil {
		s.fn()
	}
}

var _ breakout.Scheduler = (*LoopScheduler)(nil)
