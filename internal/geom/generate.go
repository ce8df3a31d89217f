package geom

import "math"

// Source yields uniform values in [0, 1). *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	Float64() float64
}

// RadialEndpoints holds the inner and outer end of a radial line, in that order.
type RadialEndpoints [2]Point

// CurveControlSet is the control polygon of one smoothed curve.
type CurveControlSet []Point

// Generator produces fresh randomized geometry for a viewport size.
type Generator struct {
	rnd Source
}

func NewGenerator(rnd Source) *Generator {
	return &Generator{rnd: rnd}
}

// radius is half the shorter viewport side, floored at zero so degenerate
// viewports collapse geometry onto the origin instead of inverting it.
func radius(width, height float64) float64 {
	r := min(height/2, width/2)
	if r < 0 || math.IsNaN(r) {
		return 0
	}
	return r
}

// RadialEndpoints places the inner end within the first eighth of the radius
// and the outer end within the last quarter.
func (g *Generator) RadialEndpoints(width, height float64) RadialEndpoints {
	r := radius(width, height)
	return RadialEndpoints{
		{X: 0, Y: g.rnd.Float64() * r / 8},
		{X: 0, Y: r - g.rnd.Float64()*r/4},
	}
}

// CurveControlPoints walks outward from the origin in segments equal steps. Odd
// indices get a small random x offset that the renderer scales by amplitude;
// even indices stay on the axis. Each y is jittered by up to 2.5 steps.
func (g *Generator) CurveControlPoints(width, height float64, segments int) CurveControlSet {
	if segments <= 0 {
		return CurveControlSet{}
	}
	step := radius(width, height) / float64(segments)
	pts := make(CurveControlSet, segments)
	for i := range pts {
		var x float64
		if i%2 == 1 {
			x = g.rnd.Float64()
		}
		y := step*float64(i) + (g.rnd.Float64()-0.5)*step*5
		pts[i] = Point{X: x, Y: y}
	}
	return pts
}
