package canvas

import "image/color"

// Stroke is one recorded Stroke call.
type Stroke struct {
	Width    float64
	Color    color.Color
	Subpaths []Subpath
}

// Recorder is an in-memory Canvas that keeps every stroke issued since the
// last Clear, for tests and tooling.
type Recorder struct {
	Path
	width, height int
	lineWidth     float64
	color         color.Color

	Strokes []Stroke
	Clears  int
	Resets  int
}

func NewRecorder(width, height int) *Recorder {
	return &Recorder{width: width, height: height, lineWidth: 1, color: color.Black}
}

func (r *Recorder) Size() (int, int) { return r.width, r.height }

// SetSize lets the recorder stand in as a viewport surface.
func (r *Recorder) SetSize(width, height int) {
	r.width, r.height = width, height
}

func (r *Recorder) Clear() {
	r.Clears++
	r.Strokes = nil
}

func (r *Recorder) ResetTransform() {
	r.Resets++
	r.Path.ResetTransform()
}

func (r *Recorder) SetLineWidth(w float64) { r.lineWidth = w }

func (r *Recorder) SetStrokeColor(c color.Color) { r.color = c }

func (r *Recorder) Stroke() {
	r.Strokes = append(r.Strokes, Stroke{Width: r.lineWidth, Color: r.color, Subpaths: append([]Subpath(nil), r.subpaths...)})
}

// Origin returns the current translation.
func (r *Recorder) Origin() (float64, float64) { return r.tx, r.ty }
