package geom

import (
	"math"
	"math/rand/v2"
	"testing"
)

const eps = 1e-9

func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func TestRadialEndpoints(t *testing.T) {
	g := NewGenerator(newRand())
	for i := 0; i < 100; i++ {
		pts := g.RadialEndpoints(800, 600)
		if len(pts) != 2 {
			t.Fatalf("expected 2 points, got %d", len(pts))
		}
		inner, outer := pts[0], pts[1]
		if inner.X != 0 || outer.X != 0 {
			t.Fatalf("radial endpoints must sit on the y axis, got %v %v", inner, outer)
		}
		// R = min(300, 400) = 300
		if inner.Y < 0 || inner.Y >= 300.0/8 {
			t.Errorf("inner y = %v, want in [0, 37.5)", inner.Y)
		}
		if outer.Y <= 300-300.0/4 || outer.Y > 300 {
			t.Errorf("outer y = %v, want in (225, 300]", outer.Y)
		}
		if outer.Length() < inner.Length() {
			t.Errorf("outer %v closer than inner %v", outer, inner)
		}
	}
}

func TestCurveControlPoints(t *testing.T) {
	g := NewGenerator(newRand())
	for _, segments := range []int{0, 1, 2, 7, 10, 33} {
		pts := g.CurveControlPoints(800, 600, segments)
		if len(pts) != segments {
			t.Errorf("CurveControlPoints(%d) returned %d points", segments, len(pts))
			continue
		}
		step := 300.0 / float64(max(segments, 1))
		for i, p := range pts {
			if i%2 == 0 && p.X != 0 {
				t.Errorf("segments=%d point %d x = %v, want 0 on even index", segments, i, p.X)
			}
			if i%2 == 1 && (p.X < 0 || p.X >= 1) {
				t.Errorf("segments=%d point %d x = %v, want in [0,1)", segments, i, p.X)
			}
			base := step * float64(i)
			if math.Abs(p.Y-base) > step*2.5 {
				t.Errorf("segments=%d point %d y = %v, jitter beyond 2.5 steps of %v", segments, i, p.Y, base)
			}
		}
	}
}

func TestCurveControlPoints_Negative(t *testing.T) {
	g := NewGenerator(newRand())
	if pts := g.CurveControlPoints(800, 600, -3); len(pts) != 0 {
		t.Fatalf("expected no points for negative segment count, got %d", len(pts))
	}
}

func TestDegenerateViewport(t *testing.T) {
	g := NewGenerator(newRand())
	for _, size := range [][2]float64{{0, 0}, {-10, 600}, {800, -1}} {
		radial := g.RadialEndpoints(size[0], size[1])
		for _, p := range radial {
			if p != (Point{}) {
				t.Errorf("viewport %v: radial point %v, want origin", size, p)
			}
		}
		for _, p := range g.CurveControlPoints(size[0], size[1], 10) {
			if math.IsNaN(p.X) || math.IsNaN(p.Y) || p.Y != 0 {
				t.Errorf("viewport %v: curve point %v, want y=0", size, p)
			}
		}
	}
}

func TestRotate_Identity(t *testing.T) {
	for _, p := range []Point{{0, 0}, {1, 2}, {-3.5, 7.25}, {1e9, -1e-9}} {
		if got := p.Rotate(0); got != p {
			t.Errorf("Rotate(0) of %v = %v", p, got)
		}
	}
}

func TestRotate_Isometry(t *testing.T) {
	r := newRand()
	for i := 0; i < 200; i++ {
		p := Pt(r.Float64()*200-100, r.Float64()*200-100)
		theta := r.Float64() * 4 * math.Pi
		got := p.Rotate(theta)
		if math.Abs(got.Length()-p.Length()) > eps {
			t.Fatalf("|Rotate(%v, %v)| = %v, want %v", theta, p, got.Length(), p.Length())
		}
	}
}

func TestRotate_Clockwise(t *testing.T) {
	// quarter turn maps +x onto -y in this convention
	got := Pt(1, 0).Rotate(math.Pi / 2)
	if math.Abs(got.X) > eps || math.Abs(got.Y+1) > eps {
		t.Errorf("Rotate(pi/2, (1,0)) = %v, want (0,-1)", got)
	}
}

func TestLerp_Endpoints(t *testing.T) {
	a, b := Pt(0.1, 0.7), Pt(0.3, -123.456)
	if got := a.Lerp(b, 0); got != a {
		t.Errorf("Lerp(t=0) = %v, want %v", got, a)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Errorf("Lerp(t=1) = %v, want %v", got, b)
	}
	mid := a.Lerp(b, 0.5)
	if math.Abs(mid.X-0.2) > eps {
		t.Errorf("Lerp(t=0.5).X = %v, want 0.2", mid.X)
	}
}

func TestLerpAll_DoesNotMutate(t *testing.T) {
	from := []Point{{0, 0}, {1, 1}}
	to := []Point{{2, 2}, {3, 3}}
	out := LerpAll(from, to, 0.5)
	if len(out) != 2 || out[1] != Pt(2, 2) {
		t.Fatalf("LerpAll = %v", out)
	}
	if from[1] != Pt(1, 1) || to[1] != Pt(3, 3) {
		t.Fatal("LerpAll mutated its inputs")
	}
}

type recordedPath struct {
	ops  []string
	last Point
	pts  []Point
}

func (r *recordedPath) MoveTo(x, y float64) {
	r.ops = append(r.ops, "M")
	r.last = Pt(x, y)
	r.pts = append(r.pts, r.last)
}

func (r *recordedPath) LineTo(x, y float64) {
	r.ops = append(r.ops, "L")
	r.last = Pt(x, y)
	r.pts = append(r.pts, r.last)
}

func (r *recordedPath) CubicTo(x1, y1, x2, y2, x, y float64) {
	r.ops = append(r.ops, "C")
	r.last = Pt(x, y)
	r.pts = append(r.pts, r.last)
}

func TestBasisSpline(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want string
	}{
		{"empty", 0, ""},
		{"single", 1, "M"},
		{"pair", 2, "ML"},
		{"three", 3, "MLCCL"},
		{"seven", 7, "MLCCCCCCL"},
		{"ten", 10, "MLCCCCCCCCCL"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pts := make([]Point, tt.n)
			for i := range pts {
				pts[i] = Pt(float64(i%2), float64(i*10))
			}
			var rec recordedPath
			BasisSpline(&rec, pts)

			got := ""
			for _, op := range rec.ops {
				got += op
			}
			if got != tt.want {
				t.Fatalf("ops = %q, want %q", got, tt.want)
			}
			if tt.n == 0 {
				return
			}
			if rec.pts[0] != pts[0] {
				t.Errorf("path starts at %v, want %v", rec.pts[0], pts[0])
			}
			if rec.last != pts[tt.n-1] {
				t.Errorf("path ends at %v, want %v", rec.last, pts[tt.n-1])
			}
		})
	}
}
