package textinput

import "time"

// BlinkInterval is the standard cursor blink rate.
const BlinkInterval = 530 * time.Millisecond

// cursorTimer is the per-widget blink state: a periodic visibility flip
// with a reset-to-visible rule applied after any edit or cursor motion.
type cursorTimer struct {
	visible  bool
	last     time.Time
	interval time.Duration
}

func newCursorTimer(interval time.Duration) cursorTimer {
	if interval <= 0 {
		interval = BlinkInterval
	}
	return cursorTimer{visible: true, interval: interval}
}

// update advances the blink phase. Returns true if visibility flipped.
func (c *cursorTimer) update(now time.Time) bool {
	if c.last.IsZero() {
		c.last = now
		return false
	}
	if now.Sub(c.last) >= c.interval {
		c.visible = !c.visible
		c.last = now
		return true
	}
	return false
}

// reset makes the cursor visible and restarts the interval.
func (c *cursorTimer) reset(now time.Time) {
	c.visible = true
	c.last = now
}
