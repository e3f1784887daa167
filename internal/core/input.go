package core

// Action is a semantic input, abstracted from physical key presses.
type Action int

const (
	ActionNone       Action = iota
	ActionLeft              // Left arrow, A, H - move paddle left
	ActionRight             // Right arrow, D, L - move paddle right
	ActionRestart           // R - new session after a terminal phase
	ActionQuit              // Q, Ctrl+C
	ActionScreenshot        // Ctrl+S
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionScreenshot:
		return "Screenshot"
	default:
		return "Unknown"
	}
}

// DirectionLatch receives press/release transitions for the two paddle
// directions.
type DirectionLatch interface {
	SetMovingLeft(bool)
	SetMovingRight(bool)
}

// HoldLatch turns a stream of key events into press/release transitions.
// Terminals never report key release, only the initial press and the
// auto-repeat that follows while a key is held. The first press holds a
// direction for first ticks, long enough to bridge the keyboard's initial
// repeat delay. Each repeat then renews the hold for repeat ticks, and the
// direction is released when that window runs out. Pressing one direction
// releases the other, since a terminal only repeats the most recently
// pressed key.
type HoldLatch struct {
	first  int
	repeat int
	left   int // ticks remaining, 0 = released
	right  int
}

// NewHoldLatch creates a latch that holds a fresh press for first ticks and
// a repeated one for repeat ticks.
func NewHoldLatch(first, repeat int) *HoldLatch {
	if repeat < 1 {
		repeat = 1
	}
	if first < repeat {
		first = repeat
	}
	return &HoldLatch{first: first, repeat: repeat}
}

// Press records a key event for a direction and forwards any transitions.
// Actions other than ActionLeft and ActionRight are ignored.
func (l *HoldLatch) Press(a Action, dst DirectionLatch) {
	switch a {
	case ActionLeft:
		if l.right > 0 {
			l.right = 0
			dst.SetMovingRight(false)
		}
		l.left = l.renew(l.left, dst.SetMovingLeft)
	case ActionRight:
		if l.left > 0 {
			l.left = 0
			dst.SetMovingLeft(false)
		}
		l.right = l.renew(l.right, dst.SetMovingRight)
	}
}

// renew returns the new hold for a direction with remaining ticks left.
func (l *HoldLatch) renew(remaining int, set func(bool)) int {
	if remaining == 0 {
		set(true)
		return l.first
	}
	return l.repeat
}

// Step advances the hold windows by one tick and releases expired directions.
func (l *HoldLatch) Step(dst DirectionLatch) {
	if l.left > 0 {
		l.left--
		if l.left == 0 {
			dst.SetMovingLeft(false)
		}
	}
	if l.right > 0 {
		l.right--
		if l.right == 0 {
			dst.SetMovingRight(false)
		}
	}
}

// Reset releases both directions without notifying anyone.
func (l *HoldLatch) Reset() {
	l.left = 0
	l.right = 0
}

// Pressed reports which directions are currently held.
func (l *HoldLatch) Pressed() (left, right bool) {
	return l.left > 0, l.right > 0
}
