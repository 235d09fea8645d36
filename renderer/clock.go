package renderer

// FrameClock turns absolute timestamps into loop-relative time, a per-frame
// delta and a frame counter.
type FrameClock struct {
	start   float64
	last    float64
	count   int64
	started bool
}

// Tick records a new frame at time now (seconds) and returns its time, delta and index.
// A timestamp earlier than the previous one is treated as no time passing.
func (c *FrameClock) Tick(now float64) (elapsed, delta float64, count int64) {
	if !c.started {
		c.start, c.last, c.started = now, now, true
	}
	if now < c.last {
		now = c.last
	}
	delta = now - c.last
	c.last = now
	count = c.count
	c.count++
	return now - c.start, delta, count
}
