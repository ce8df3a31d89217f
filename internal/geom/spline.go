package geom

// PathBuilder receives the segments of a path. canvas.Canvas satisfies it.
type PathBuilder interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	CubicTo(x1, y1, x2, y2, x, y float64)
}

// BasisSpline emits a uniform cubic B-spline through pts onto b. The curve
// starts at the first point and ends at the last but is only pulled toward
// the interior points. A single point emits a bare MoveTo, two points a line.
func BasisSpline(b PathBuilder, pts []Point) {
	if len(pts) == 0 {
		return
	}
	b.MoveTo(pts[0].X, pts[0].Y)
	if len(pts) == 1 {
		return
	}
	if len(pts) == 2 {
		b.LineTo(pts[1].X, pts[1].Y)
		return
	}

	p0, p1 := pts[0], pts[1]
	b.LineTo((5*p0.X+p1.X)/6, (5*p0.Y+p1.Y)/6)
	for _, p := range pts[2:] {
		basisSegment(b, p0, p1, p)
		p0, p1 = p1, p
	}
	// close out on the last point twice so the curve lands on it
	basisSegment(b, p0, p1, p1)
	b.LineTo(p1.X, p1.Y)
}

func basisSegment(b PathBuilder, p0, p1, p Point) {
	b.CubicTo(
		(2*p0.X+p1.X)/3, (2*p0.Y+p1.Y)/3,
		(p0.X+2*p1.X)/3, (p0.Y+2*p1.Y)/3,
		(p0.X+4*p1.X+p.X)/6, (p0.Y+4*p1.Y+p.Y)/6,
	)
}
