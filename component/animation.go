package component

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Cursor is a fractional index into a frame sequence. It moves forward by Step
// on every Advance and the displayed frame is floor(Pos).
type Cursor struct {
	Pos  float64
	Step float64
}

func NewCursor(step float64) Cursor {
	return Cursor{Step: step}
}

// Advance moves the cursor one step and wraps it back to 0 once it reaches
// frameCount. It reports whether the wrap happened on this call.
func (c *Cursor) Advance(frameCount int) bool {
	c.Pos += c.Step
	if c.Pos >= float64(frameCount) {
		c.Pos = 0
		return true
	}
	return false
}

// Reset sets the cursor back to the first frame.
func (c *Cursor) Reset() {
	c.Pos = 0
}

// Index returns the frame the cursor currently selects.
func (c Cursor) Index() int {
	return int(math.Floor(c.Pos))
}

// Frame returns frames[c.Index()], or an AnimationIndexError naming anim when
// the cursor has left the sequence.
func (c Cursor) Frame(anim string, frames []*ebiten.Image) (*ebiten.Image, error) {
	i := c.Index()
	if i < 0 || i >= len(frames) {
		return nil, &AnimationIndexError{Anim: anim, Index: i, Count: len(frames)}
	}
	return frames[i], nil
}
