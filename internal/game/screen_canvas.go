package game

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/radial-morph/internal/canvas"
)

// pathSink is the part of vector.Path a recorded path is replayed into.
type pathSink interface {
	MoveTo(x, y float32)
	LineTo(x, y float32)
	CubicTo(x1, y1, x2, y2, x3, y3 float32)
}

// appendSubpaths replays recorded segments into dst.
func appendSubpaths(dst pathSink, subpaths []canvas.Subpath) {
	for _, sp := range subpaths {
		for _, seg := range sp {
			p := seg.Pts
			switch seg.Op {
			case canvas.OpMove:
				dst.MoveTo(float32(p[0].X), float32(p[0].Y))
			case canvas.OpLine:
				dst.LineTo(float32(p[0].X), float32(p[0].Y))
			case canvas.OpCubic:
				dst.CubicTo(float32(p[0].X), float32(p[0].Y), float32(p[1].X), float32(p[1].Y), float32(p[2].X), float32(p[2].Y))
			}
		}
	}
}

// screenCanvas draws onto the ebiten screen handed to Draw. Each Stroke
// becomes one vector.Path drawn with a single DrawTriangles call.
type screenCanvas struct {
	canvas.Path
	dst        *ebiten.Image
	background color.Color
	lineWidth  float32
	color      color.Color

	white    *ebiten.Image
	vertices []ebiten.Vertex
	indices  []uint16
}

func newScreenCanvas(background color.Color) *screenCanvas {
	return &screenCanvas{background: background, lineWidth: 1, color: color.White}
}

// target points the canvas at the image to draw on for this frame.
func (s *screenCanvas) target(dst *ebiten.Image) { s.dst = dst }

func (s *screenCanvas) Size() (int, int) {
	if s.dst == nil {
		return 0, 0
	}
	b := s.dst.Bounds()
	return b.Dx(), b.Dy()
}

func (s *screenCanvas) Clear() {
	if s.dst != nil {
		s.dst.Fill(s.background)
	}
}

func (s *screenCanvas) SetLineWidth(w float64) { s.lineWidth = float32(w) }

func (s *screenCanvas) SetStrokeColor(c color.Color) { s.color = c }

func (s *screenCanvas) Stroke() {
	subpaths := s.Subpaths()
	if s.dst == nil || len(subpaths) == 0 {
		return
	}

	var path vector.Path
	appendSubpaths(&path, subpaths)
	s.vertices, s.indices = path.AppendVerticesAndIndicesForStroke(s.vertices[:0], s.indices[:0], &vector.StrokeOptions{
		Width:    s.lineWidth,
		LineJoin: vector.LineJoinRound,
		LineCap:  vector.LineCapButt,
	})

	r, g, b, a := s.color.RGBA()
	for i := range s.vertices {
		v := &s.vertices[i]
		v.SrcX, v.SrcY = 1, 1
		v.ColorR = float32(r) / 0xffff
		v.ColorG = float32(g) / 0xffff
		v.ColorB = float32(b) / 0xffff
		v.ColorA = float32(a) / 0xffff
	}
	s.dst.DrawTriangles(s.vertices, s.indices, s.source(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// source is a 1x1 white region the stroke triangles sample from.
func (s *screenCanvas) source() *ebiten.Image {
	if s.white == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		s.white = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return s.white
}
