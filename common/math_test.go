package common

import (
	"math"
	"testing"
)

func TestSign(t *testing.T) {
	cases := []struct {
		in, want int
	}{
		{10, 1},
		{1, 1},
		{0, 1},
		{-1, -1},
		{-10, -1},
	}
	for _, c := range cases {
		if got := Sign(c.in); got != c.want {
			t.Fatalf("Sign(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestRotatedBounds(t *testing.T) {
	w, h := RotatedBounds(20, 10, 90)
	if math.Abs(w-10) > 1e-9 || math.Abs(h-20) > 1e-9 {
		t.Fatalf("90deg: got %vx%v, want 10x20", w, h)
	}
	w, h = RotatedBounds(10, 10, 45)
	want := 10 * math.Sqrt2
	if math.Abs(w-want) > 1e-9 || math.Abs(h-want) > 1e-9 {
		t.Fatalf("45deg: got %vx%v, want %vx%v", w, h, want, want)
	}
}

func TestRectCentered(t *testing.T) {
	r := RectCentered(100, 50, 40, 20)
	if r.X != 80 || r.Y != 40 {
		t.Fatalf("top-left = (%v,%v), want (80,40)", r.X, r.Y)
	}
	cx, cy := r.Center()
	if cx != 100 || cy != 50 {
		t.Fatalf("center = (%v,%v), want (100,50)", cx, cy)
	}
}
