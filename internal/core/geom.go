// Package core holds the terminal-independent drawing primitives: a rune
// buffer with colour roles, rectangles, and the semantic player actions.
// Nothing here imports Bubble Tea, so boards can be drawn and checked in tests.
package core

// Rect is an axis-aligned area of the screen. Right and Bottom are exclusive.
type Rect struct {
	X, Y int
	W, H int
}

func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

func (r Rect) Right() int  { return r.X + r.W }
func (r Rect) Bottom() int { return r.Y + r.H }

// Contains reports whether (x, y) falls inside r.
func (r Rect) Contains(x, y int) bool {
	return r.X <= x && x < r.Right() && r.Y <= y && y < r.Bottom()
}

// Inset shrinks r by n cells on every side. The result never has negative size.
func (r Rect) Inset(n int) Rect {
	in := Rect{X: r.X + n, Y: r.Y + n, W: r.W - 2*n, H: r.H - 2*n}
	in.W = max(in.W, 0)
	in.H = max(in.H, 0)
	return in
}

// CenteredIn places a w×h rectangle in the middle of r, rounding towards the top left.
func (r Rect) CenteredIn(w, h int) Rect {
	return Rect{
		X: r.X + (r.W-w)/2,
		Y: r.Y + (r.H-h)/2,
		W: w,
		H: h,
	}
}
