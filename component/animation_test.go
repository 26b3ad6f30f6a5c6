package component

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestCursorAdvanceStaysInRange(t *testing.T) {
	cases := []struct {
		name   string
		step   float64
		frames int
	}{
		{"actor_step_single_frame", 0.15, 1},
		{"actor_step_eight_frames", 0.15, 8},
		{"bolt_step_five_frames", 0.3, 5},
		{"bolt_step_three_frames", 0.3, 3},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cur := NewCursor(c.step)
			for n := 0; n < 1000; n++ {
				cur.Advance(c.frames)
				if cur.Pos < 0 || cur.Pos >= float64(c.frames) {
					t.Fatalf("tick %d: cursor %v outside [0,%d)", n, cur.Pos, c.frames)
				}
				if i := cur.Index(); i < 0 || i >= c.frames {
					t.Fatalf("tick %d: index %d outside [0,%d)", n, i, c.frames)
				}
			}
		})
	}
}

func TestCursorAdvanceReportsWrap(t *testing.T) {
	cur := NewCursor(0.5)
	wraps := 0
	for n := 0; n < 8; n++ {
		if cur.Advance(2) {
			wraps++
			if cur.Pos != 0 {
				t.Fatalf("cursor should reset to 0 on wrap, got %v", cur.Pos)
			}
		}
	}
	if wraps != 2 {
		t.Fatalf("expected 2 wraps over 8 half steps of a 2-frame loop, got %d", wraps)
	}
}

func TestCursorFrame(t *testing.T) {
	frames := []*ebiten.Image{ebiten.NewImage(2, 2), ebiten.NewImage(2, 2)}

	cur := Cursor{Pos: 1.9}
	img, err := cur.Frame("idle", frames)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if img != frames[1] {
		t.Fatalf("expected frame 1")
	}

	cur.Pos = 2
	if _, err := cur.Frame("idle", frames); err == nil {
		t.Fatalf("expected error for cursor past the end")
	} else {
		var idxErr *AnimationIndexError
		if !errors.As(err, &idxErr) {
			t.Fatalf("expected AnimationIndexError, got %T", err)
		}
		if idxErr.Index != 2 || idxErr.Count != 2 || idxErr.Anim != "idle" {
			t.Fatalf("unexpected error fields: %+v", idxErr)
		}
	}

	if _, err := (Cursor{}).Frame("death", nil); err == nil {
		t.Fatalf("expected error for empty sequence")
	}
}

func TestMotionStateString(t *testing.T) {
	want := []string{"idle", "run", "jump", "attack", "death"}
	states := MotionStates()
	if len(states) != len(want) {
		t.Fatalf("expected %d states, got %d", len(want), len(states))
	}
	for i, s := range states {
		if s.String() != want[i] {
			t.Fatalf("state %d: got %q, want %q", i, s.String(), want[i])
		}
	}
	if MotionState(42).Valid() {
		t.Fatalf("42 should not be a valid state")
	}
}

func TestHealth(t *testing.T) {
	h := NewHealth(100)
	if !h.IsAlive() || h.Fraction() != 1 {
		t.Fatalf("fresh health should be full: %+v", h)
	}
	h.Current = 25
	if h.Fraction() != 0.25 {
		t.Fatalf("fraction = %v, want 0.25", h.Fraction())
	}
	h.Current = 0
	if h.IsAlive() {
		t.Fatalf("zero health should not be alive")
	}
	if NewHealth(0).Max != 1 {
		t.Fatalf("non-positive max should clamp to 1")
	}
}
