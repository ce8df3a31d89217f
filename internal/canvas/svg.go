package canvas

import (
	"fmt"
	"image/color"
	"io"
	"strconv"
	"strings"

	svg "github.com/ajstarks/svgo"
	"github.com/lucasb-eyer/go-colorful"
)

// SVG writes every stroke as a <path> element. Call Close to finish the document.
type SVG struct {
	Path
	doc           *svg.SVG
	width, height int
	background    color.Color
	lineWidth     float64
	color         color.Color
}

func NewSVG(w io.Writer, width, height int, background color.Color) *SVG {
	doc := svg.New(w)
	doc.Start(width, height)
	return &SVG{
		doc:        doc,
		width:      width,
		height:     height,
		background: background,
		lineWidth:  1,
		color:      color.White,
	}
}

func (s *SVG) Size() (int, int) { return s.width, s.height }

func (s *SVG) Clear() {
	s.doc.Rect(0, 0, s.width, s.height, "fill:"+hexOf(s.background))
}

func (s *SVG) SetLineWidth(w float64) { s.lineWidth = w }

func (s *SVG) SetStrokeColor(c color.Color) { s.color = c }

func (s *SVG) Stroke() {
	if len(s.subpaths) == 0 {
		return
	}
	style := fmt.Sprintf("fill:none;stroke:%s;stroke-width:%s", hexOf(s.color), formatFloat(s.lineWidth))
	s.doc.Path(pathData(s.subpaths), style)
}

func (s *SVG) Close() { s.doc.End() }

func pathData(subpaths []Subpath) string {
	var sb strings.Builder
	for _, sp := range subpaths {
		for _, seg := range sp {
			if sb.Len() > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte(byte(seg.Op))
			n := 1
			if seg.Op == OpCubic {
				n = 3
			}
			for i := 0; i < n; i++ {
				sb.WriteByte(' ')
				sb.WriteString(formatFloat(seg.Pts[i].X))
				sb.WriteByte(' ')
				sb.WriteString(formatFloat(seg.Pts[i].Y))
			}
		}
	}
	return sb.String()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func hexOf(c color.Color) string {
	col, _ := colorful.MakeColor(c)
	return col.Clamped().Hex()
}
