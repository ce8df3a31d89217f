package canvas

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/fogleman/gg"
)

// Raster renders into an offscreen gg context for PNG snapshots.
type Raster struct {
	ctx        *gg.Context
	background color.Color
	color      color.Color
}

func NewRaster(width, height int, background color.Color) *Raster {
	return &Raster{
		ctx:        gg.NewContext(max(width, 1), max(height, 1)),
		background: background,
		color:      color.White,
	}
}

// SetSize reallocates the backing image when the size changes.
func (r *Raster) SetSize(width, height int) {
	width, height = max(width, 1), max(height, 1)
	if width == r.ctx.Width() && height == r.ctx.Height() {
		return
	}
	r.ctx = gg.NewContext(width, height)
}

func (r *Raster) Size() (int, int) { return r.ctx.Width(), r.ctx.Height() }

func (r *Raster) Clear() {
	r.ctx.SetColor(r.background)
	r.ctx.Clear()
}

func (r *Raster) ResetTransform() { r.ctx.Identity() }

func (r *Raster) Translate(x, y float64) { r.ctx.Translate(x, y) }

func (r *Raster) BeginPath() { r.ctx.ClearPath() }

func (r *Raster) MoveTo(x, y float64) { r.ctx.MoveTo(x, y) }

func (r *Raster) LineTo(x, y float64) { r.ctx.LineTo(x, y) }

func (r *Raster) CubicTo(x1, y1, x2, y2, x, y float64) { r.ctx.CubicTo(x1, y1, x2, y2, x, y) }

func (r *Raster) SetLineWidth(w float64) { r.ctx.SetLineWidth(w) }

func (r *Raster) SetStrokeColor(c color.Color) { r.color = c }

func (r *Raster) Stroke() {
	r.ctx.SetColor(r.color)
	r.ctx.StrokePreserve()
}

func (r *Raster) Image() image.Image { return r.ctx.Image() }

func (r *Raster) EncodePNG(w io.Writer) error {
	if err := r.ctx.EncodePNG(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
