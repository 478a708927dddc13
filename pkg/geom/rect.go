package geom

import "fmt"

// Rect is an integer rectangle in screen coordinates. The zero value is the
// empty rect at the origin.
type Rect struct {
	Left   int
	Top    int
	Right  int
	Bottom int
}

// NewRect constructs a Rect from its four edges.
func NewRect(left, top, right, bottom int) Rect {
	return Rect{Left: left, Top: top, Right: right, Bottom: bottom}
}

// Width returns the horizontal extent of the rect.
func (r Rect) Width() int {
	return r.Right - r.Left
}

// Height returns the vertical extent of the rect.
func (r Rect) Height() int {
	return r.Bottom - r.Top
}

// IsEmpty reports whether the rect encloses no area.
func (r Rect) IsEmpty() bool {
	return r.Right <= r.Left || r.Bottom <= r.Top
}

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d,%d,%d)", r.Left, r.Top, r.Right, r.Bottom)
}

// Lerp linearly interpolates between from and to at t. t is not clamped;
// callers normalize it first.
func Lerp(from, to float64, t float64) float64 {
	return from + (to-from)*t
}

// LerpRect interpolates each edge of the rect independently, rounding to the
// nearest integer so that t=0 and t=1 reproduce the endpoints exactly.
func LerpRect(from, to Rect, t float64) Rect {
	return Rect{
		Left:   lerpInt(from.Left, to.Left, t),
		Top:    lerpInt(from.Top, to.Top, t),
		Right:  lerpInt(from.Right, to.Right, t),
		Bottom: lerpInt(from.Bottom, to.Bottom, t),
	}
}

func lerpInt(from, to int, t float64) int {
	v := Lerp(float64(from), float64(to), t)
	if v >= 0 {
		return int(v + 0.5)
	}
	return int(v - 0.5)
}
