package obj

import "time"

// Clock is the monotonic time source entities read timers from.
type Clock interface {
	Now() time.Duration
}

// TickClock measures time in fixed game ticks, so it stops while the game is
// paused and is deterministic under test.
type TickClock struct {
	ticks int64
	tps   int64
}

func NewTickClock(tps int) *TickClock {
	if tps <= 0 {
		tps = 60
	}
	return &TickClock{tps: int64(tps)}
}

// Tick advances the clock by one game tick.
func (c *TickClock) Tick() {
	c.ticks++
}

func (c *TickClock) Ticks() int64 {
	return c.ticks
}

func (c *TickClock) Now() time.Duration {
	return time.Duration(c.ticks) * time.Second / time.Duration(c.tps)
}
