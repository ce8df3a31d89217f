package canvas

import (
	"bytes"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/iburimskiy/radial-morph/internal/geom"
)

// everything implements the full drawing surface
var (
	_ Canvas = (*Recorder)(nil)
	_ Canvas = (*Raster)(nil)
	_ Canvas = (*SVG)(nil)
)

func TestRecorder_TranslateAppliesToPath(t *testing.T) {
	r := NewRecorder(800, 600)
	r.ResetTransform()
	r.Clear()
	r.Translate(400, 300)

	r.BeginPath()
	r.MoveTo(0, 10)
	r.LineTo(0, 100)
	r.SetLineWidth(1)
	r.SetStrokeColor(color.White)
	r.Stroke()

	if len(r.Strokes) != 1 {
		t.Fatalf("expected 1 stroke, got %d", len(r.Strokes))
	}
	sp := r.Strokes[0].Subpaths
	if len(sp) != 1 || len(sp[0]) != 2 {
		t.Fatalf("expected one 2-segment subpath, got %v", sp)
	}
	if got := sp[0][0].End(); got != geom.Pt(400, 310) {
		t.Errorf("move = %v, want (400,310)", got)
	}
	if got := sp[0][1].End(); got != geom.Pt(400, 400) {
		t.Errorf("line = %v, want (400,400)", got)
	}

	r.ResetTransform()
	if x, y := r.Origin(); x != 0 || y != 0 {
		t.Errorf("origin after reset = %v,%v", x, y)
	}
	if r.Resets != 2 || r.Clears != 1 {
		t.Errorf("resets=%d clears=%d, want 2 and 1", r.Resets, r.Clears)
	}
}

func TestRecorder_StrokeKeepsPathUntilBegin(t *testing.T) {
	r := NewRecorder(10, 10)
	r.BeginPath()
	r.MoveTo(0, 0)
	r.LineTo(1, 1)
	r.Stroke()
	r.Stroke()
	if len(r.Strokes) != 2 || len(r.Strokes[1].Subpaths) != 1 {
		t.Fatalf("second stroke should repeat the pending path, got %+v", r.Strokes)
	}

	r.BeginPath()
	r.Stroke()
	if len(r.Strokes[2].Subpaths) != 0 {
		t.Errorf("stroke after BeginPath should be empty, got %v", r.Strokes[2].Subpaths)
	}

	r.Clear()
	if len(r.Strokes) != 0 {
		t.Errorf("Clear kept %d strokes", len(r.Strokes))
	}
}

func TestPath_LineToWithoutMove(t *testing.T) {
	var p Path
	p.LineTo(3, 4)
	sp := p.Subpaths()
	if len(sp) != 1 || sp[0][0].Op != OpMove {
		t.Fatalf("LineTo on an empty path should start a subpath, got %v", sp)
	}
}

func TestSVG_PathPerStroke(t *testing.T) {
	var buf bytes.Buffer
	s := NewSVG(&buf, 200, 100, color.Black)
	s.ResetTransform()
	s.Clear()
	s.Translate(100, 50)
	for i := 0; i < 3; i++ {
		s.BeginPath()
		s.MoveTo(0, 0)
		s.CubicTo(1, 2, 3, 4, 5, 6)
		s.SetLineWidth(1.5)
		s.SetStrokeColor(color.RGBA{R: 255, A: 255})
		s.Stroke()
	}
	s.BeginPath()
	s.Stroke()
	s.Close()

	out := buf.String()
	if got := strings.Count(out, "<path"); got != 3 {
		t.Errorf("expected 3 <path> elements, got %d\n%s", got, out)
	}
	if !strings.Contains(out, "M 100 50 C 101 52 103 54 105 56") {
		t.Errorf("path data not translated:\n%s", out)
	}
	if !strings.Contains(out, "stroke:#ff0000;stroke-width:1.5") {
		t.Errorf("missing stroke style:\n%s", out)
	}
	if !strings.Contains(out, `width="200"`) || !strings.Contains(out, "</svg>") {
		t.Errorf("document not sized or closed:\n%s", out)
	}
}

func TestRaster_EncodesRequestedSize(t *testing.T) {
	r := NewRaster(64, 32, color.Black)
	r.ResetTransform()
	r.Clear()
	r.Translate(32, 16)
	r.BeginPath()
	r.MoveTo(-10, 0)
	r.LineTo(10, 0)
	r.SetLineWidth(2)
	r.SetStrokeColor(color.White)
	r.Stroke()

	var buf bytes.Buffer
	if err := r.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 32 {
		t.Fatalf("image = %dx%d, want 64x32", b.Dx(), b.Dy())
	}
	// the stroke crosses the center, the corner stays background
	if cr, _, _, _ := img.At(32, 16).RGBA(); cr == 0 {
		t.Error("expected the stroke to light the center pixel")
	}
	if cr, _, _, _ := img.At(0, 0).RGBA(); cr != 0 {
		t.Error("expected the corner to stay background")
	}
}

func TestRaster_SetSize(t *testing.T) {
	r := NewRaster(10, 10, color.Black)
	r.SetSize(30, 20)
	if w, h := r.Size(); w != 30 || h != 20 {
		t.Errorf("Size() = %dx%d, want 30x20", w, h)
	}
	r.SetSize(0, -5)
	if w, h := r.Size(); w != 1 || h != 1 {
		t.Errorf("degenerate Size() = %dx%d, want 1x1", w, h)
	}
}
