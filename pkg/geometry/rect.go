// Package geometry provides the axis-aligned rectangle primitives used by
// the layout engine. All coordinates are meters in plan space, with the
// origin at the south-west corner of the footprint.
package geometry

import "math"

// Rect is an axis-aligned rectangle: position of the south-west corner plus
// width (along x) and length (along y).
type Rect struct {
	X, Y float64
	W, L float64
}

// Area returns the rectangle area in square meters.
func (r Rect) Area() float64 { return r.W * r.L }

// MaxX returns the east edge coordinate.
func (r Rect) MaxX() float64 { return r.X + r.W }

// MaxY returns the north edge coordinate.
func (r Rect) MaxY() float64 { return r.Y + r.L }

// CenterX returns the horizontal center.
func (r Rect) CenterX() float64 { return r.X + r.W/2 }

// CenterY returns the vertical center.
func (r Rect) CenterY() float64 { return r.Y + r.L/2 }

// overlapEps absorbs float drift from summed centimeter coordinates so edge
// contact never counts as overlap.
const overlapEps = 1e-9

// Overlaps reports whether the open interiors of r and o intersect.
// Rectangles that merely share an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.MaxX()-overlapEps && o.X < r.MaxX()-overlapEps &&
		r.Y < o.MaxY()-overlapEps && o.Y < r.MaxY()-overlapEps
}

// Within reports whether r lies entirely inside a footprint of the given
// width and length anchored at the origin.
func (r Rect) Within(width, length float64) bool {
	return r.X >= 0 && r.Y >= 0 && r.MaxX() <= width && r.MaxY() <= length
}

// Expand grows the rectangle by m on every side. Negative m shrinks it.
func (r Rect) Expand(m float64) Rect {
	return Rect{X: r.X - m, Y: r.Y - m, W: r.W + 2*m, L: r.L + 2*m}
}

// Round1 rounds to 0.1 m (the occupancy grid resolution).
func Round1(v float64) float64 { return math.Round(v*10) / 10 }

// Round2 rounds to 0.01 m (centimeter precision, used for all emitted
// coordinates so output is stable).
func Round2(v float64) float64 { return math.Round(v*100) / 100 }
