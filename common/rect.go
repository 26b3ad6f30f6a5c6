package common

type Rect struct {
	X, Y          float64
	Width, Height float64
}

// RectCentered builds a rect of the given size whose center is (cx, cy).
func RectCentered(cx, cy, w, h float64) Rect {
	return Rect{X: cx - w/2, Y: cy - h/2, Width: w, Height: h}
}

func (r Rect) Center() (float64, float64) {
	return r.X + r.Width/2, r.Y + r.Height/2
}
