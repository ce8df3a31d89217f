// Package geom holds the point math and the randomized point sets the
// animation morphs between. Coordinates are centered on the viewport.
package geom

import "math"

// Point is a 2D coordinate with the origin at the viewport center.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Length returns the distance from the origin.
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Lerp interpolates from p toward q. t=0 yields p and t=1 yields q exactly.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X*(1-t) + q.X*t,
		Y: p.Y*(1-t) + q.Y*t,
	}
}

// Rotate turns p clockwise by theta radians around the origin.
func (p Point) Rotate(theta float64) Point {
	x, y := Rotate(theta, p.X, p.Y)
	return Point{X: x, Y: y}
}

// Rotate applies x' = cos*x + sin*y, y' = cos*y - sin*x.
func Rotate(theta, x, y float64) (float64, float64) {
	sin, cos := math.Sincos(theta)
	return cos*x + sin*y, cos*y - sin*x
}

// LerpAll interpolates two equal-length point sets into a new slice.
// Extra points in the longer set are ignored.
func LerpAll(from, to []Point, t float64) []Point {
	n := min(len(from), len(to))
	out := make([]Point, n)
	for i := 0; i < n; i++ {
		out[i] = from[i].Lerp(to[i], t)
	}
	return out
}
