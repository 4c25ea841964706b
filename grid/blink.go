package grid

import "time"

// BlinkPeriod is the fixed blink interval from spec.md §6 ("blink period
// (fixed 500 ms)") — not configurable, matching the original's hardcoded
// itimerspec.
const BlinkPeriod = 500 * time.Millisecond

// BlinkPhase is whether blinking cells are currently showing or hidden.
type BlinkPhase int

const (
	BlinkOn BlinkPhase = iota
	BlinkOff
)

// BlinkState tracks the blink timer described in spec.md §4.F: armed
// lazily the first time a blinking cell is about to be drawn, disarmed by
// the frame orchestrator once no visible cell blinks any more.
type BlinkState struct {
	Active bool
	Phase  BlinkPhase
	timer  *time.Timer
}

// Arm starts (or restarts) the blink timer if it isn't already active.
// onTick is invoked every BlinkPeriod, on its own goroutine, after Phase
// has already been flipped; it only needs to request a refresh — it stands in for the "surfaced by an
// external event loop" timerfd wakeup in spec.md §4.F.
func (b *BlinkState) Arm(onTick func()) {
	if b.Active {
		return
	}
	b.Active = true
	b.Phase = BlinkOn
	b.timer = time.AfterFunc(BlinkPeriod, func() {
		b.tick(onTick)
	})
}

func (b *BlinkState) tick(onTick func()) {
	if !b.Active {
		return
	}
	if b.Phase == BlinkOn {
		b.Phase = BlinkOff
	} else {
		b.Phase = BlinkOn
	}
	onTick()
	if b.Active {
		b.timer = time.AfterFunc(BlinkPeriod, func() { b.tick(onTick) })
	}
}

// Disarm stops the timer and forces Phase back to BlinkOn, matching the
// C core's disarm block ("term->blink.state = BLINK_ON").
func (b *BlinkState) Disarm() {
	if !b.Active {
		return
	}
	b.Active = false
	b.Phase = BlinkOn
	if b.timer != nil {
		b.timer.Stop()
	}
}
