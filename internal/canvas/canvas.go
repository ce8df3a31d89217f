// Package canvas is the immediate-mode 2D drawing surface the renderer
// targets, with PNG, SVG and in-memory recorder backends. The live window
// embeds Path from the game package.
package canvas

import (
	"image/color"

	"github.com/iburimskiy/radial-morph/internal/geom"
)

// Canvas mirrors the subset of an HTML canvas 2D context the renderer uses.
// Path coordinates are mapped through the current translation when added,
// and Stroke leaves the path in place until the next BeginPath.
type Canvas interface {
	geom.PathBuilder

	Size() (width, height int)
	Clear()
	ResetTransform()
	Translate(x, y float64)

	BeginPath()
	SetLineWidth(w float64)
	SetStrokeColor(c color.Color)
	Stroke()
}

type Op byte

const (
	OpMove  Op = 'M'
	OpLine  Op = 'L'
	OpCubic Op = 'C'
)

// Segment is one path command in surface coordinates. Move and line use
// Pts[0]; cubic uses Pts[0] and Pts[1] as control points and Pts[2] as the end.
type Segment struct {
	Op  Op
	Pts [3]geom.Point
}

// End returns the point the segment finishes on.
func (s Segment) End() geom.Point {
	if s.Op == OpCubic {
		return s.Pts[2]
	}
	return s.Pts[0]
}

// Subpath starts with a move and runs until the next one.
type Subpath []Segment

// Path keeps a translation and the pending subpaths. Backends that cannot
// build paths natively embed it.
type Path struct {
	tx, ty   float64
	subpaths []Subpath
}

func (p *Path) ResetTransform() { p.tx, p.ty = 0, 0 }

func (p *Path) Translate(x, y float64) {
	p.tx += x
	p.ty += y
}

// BeginPath drops the pending path.
func (p *Path) BeginPath() { p.subpaths = nil }

// Subpaths returns the pending path in surface coordinates.
func (p *Path) Subpaths() []Subpath { return p.subpaths }

func (p *Path) at(x, y float64) geom.Point {
	return geom.Point{X: x + p.tx, Y: y + p.ty}
}

func (p *Path) MoveTo(x, y float64) {
	p.subpaths = append(p.subpaths, Subpath{{Op: OpMove, Pts: [3]geom.Point{p.at(x, y)}}})
}

func (p *Path) LineTo(x, y float64) {
	if len(p.subpaths) == 0 {
		p.MoveTo(x, y)
		return
	}
	p.push(Segment{Op: OpLine, Pts: [3]geom.Point{p.at(x, y)}})
}

func (p *Path) CubicTo(x1, y1, x2, y2, x, y float64) {
	if len(p.subpaths) == 0 {
		p.MoveTo(x1, y1)
	}
	p.push(Segment{Op: OpCubic, Pts: [3]geom.Point{p.at(x1, y1), p.at(x2, y2), p.at(x, y)}})
}

func (p *Path) push(s Segment) {
	last := len(p.subpaths) - 1
	p.subpaths[last] = append(p.subpaths[last], s)
}
