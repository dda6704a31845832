package geo

import "fmt"

// Rect is an axis-aligned rectangle described by its top-left origin and
// size. It is a plain value; copies are independent.
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// IsEmpty reports whether the rectangle has no usable area.
func (r Rect) IsEmpty() bool {
	return r.W <= 0 || r.H <= 0
}

func (r Rect) Center() (x, y float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Round rounds all four fields to the nearest integer.
func (r Rect) Round() Rect {
	return Rect{
		X: float64(RoundToInt(r.X)),
		Y: float64(RoundToInt(r.Y)),
		W: float64(RoundToInt(r.W)),
		H: float64(RoundToInt(r.H)),
	}
}

func (r Rect) String() string {
	return fmt.Sprintf("{X: %v, Y: %v, W: %v, H: %v}", r.X, r.Y, r.W, r.H)
}
