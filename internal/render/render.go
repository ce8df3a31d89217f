// Package render turns the interpolated geometry into rotated strokes.
package render

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/iburimskiy/radial-morph/internal/canvas"
	"github.com/iburimskiy/radial-morph/internal/geom"
	"github.com/iburimskiy/radial-morph/internal/params"
)

type Style struct {
	LineWidth  float64
	CurveWidth float64
	// LightnessSwing is the peak lightness offset over one cycle.
	LightnessSwing float64
}

type Renderer struct {
	style Style
}

func New(style Style) *Renderer {
	return &Renderer{style: style}
}

// LightnessOffset is the brightness shift at progress t. It completes one full
// sine period per cycle and stays within [-swing, swing].
func LightnessOffset(t, swing float64) float64 {
	return math.Sin(2*math.Pi*t) * swing
}

// Oscillate shifts the HCL lightness of c by the offset for t and maps the
// result back into displayable RGB.
func Oscillate(c colorful.Color, t, swing float64) colorful.Color {
	h, chroma, l := c.Hcl()
	return colorful.Hcl(h, chroma, l+LightnessOffset(t, swing)).Clamped()
}

// angles returns the rotation for each of n copies around the origin.
func angles(n int) []float64 {
	if n <= 0 {
		return nil
	}
	step := 2 * math.Pi / float64(n)
	out := make([]float64, n)
	for i := range out {
		out[i] = step * float64(i)
	}
	return out
}

// RadialLines draws p.RepeatCount straight segments, each its own path,
// between the interpolated inner and outer endpoints.
func (r *Renderer) RadialLines(c canvas.Canvas, from, to geom.RadialEndpoints, t float64, p *params.Set) {
	inner := from[0].Lerp(to[0], t)
	outer := from[1].Lerp(to[1], t)
	stroke := Oscillate(p.Color1, t, r.style.LightnessSwing)

	for _, theta := range angles(p.RepeatCount) {
		a, b := inner.Rotate(theta), outer.Rotate(theta)
		c.BeginPath()
		c.MoveTo(a.X, a.Y)
		c.LineTo(b.X, b.Y)
		c.SetLineWidth(r.style.LineWidth)
		c.SetStrokeColor(stroke)
		c.Stroke()
	}
}

// RadialCurves draws one family: for every rotation a smoothed curve and its
// mirror across the axis, stroked together. Interpolated x is scaled by
// p.Amplitude; y is left as generated.
func (r *Renderer) RadialCurves(c canvas.Canvas, from, to geom.CurveControlSet, t float64, col colorful.Color, p *params.Set) {
	pts := geom.LerpAll(from, to, t)
	for i := range pts {
		pts[i].X *= p.Amplitude
	}
	stroke := Oscillate(col, t, r.style.LightnessSwing)

	ptsA := make([]geom.Point, len(pts))
	ptsB := make([]geom.Point, len(pts))
	for _, theta := range angles(p.RepeatCount) {
		for i, pt := range pts {
			ptsA[i] = pt.Rotate(theta)
			ptsB[i] = geom.Pt(-pt.X, pt.Y).Rotate(theta)
		}
		c.BeginPath()
		geom.BasisSpline(c, ptsA)
		geom.BasisSpline(c, ptsB)
		c.SetLineWidth(r.style.CurveWidth)
		c.SetStrokeColor(stroke)
		c.Stroke()
	}
}
