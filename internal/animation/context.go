// Package animation owns the morph state and the per-frame driver loop.
package animation

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/iburimskiy/radial-morph/internal/config"
	"github.com/iburimskiy/radial-morph/internal/geom"
	"github.com/iburimskiy/radial-morph/internal/logging"
	"github.com/iburimskiy/radial-morph/internal/params"
	"github.com/iburimskiy/radial-morph/internal/render"
	"github.com/iburimskiy/radial-morph/internal/tween"
	"github.com/iburimskiy/radial-morph/internal/viewport"
)

// Family is one curve family and its current/target control points.
type Family struct {
	Segments int
	// Color is the params color field the family strokes with.
	Color   string
	Current geom.CurveControlSet
	Target  geom.CurveControlSet
}

// Geometry is the full set of live point collections. Collections are
// replaced wholesale at cycle boundaries and never edited in place.
type Geometry struct {
	RadialCurrent geom.RadialEndpoints
	RadialTarget  geom.RadialEndpoints
	Families      []Family
}

func newGeometry(gen *geom.Generator, width, height float64, families []config.Family) *Geometry {
	g := &Geometry{
		RadialCurrent: gen.RadialEndpoints(width, height),
		RadialTarget:  gen.RadialEndpoints(width, height),
		Families:      make([]Family, len(families)),
	}
	for i, f := range families {
		g.Families[i] = Family{
			Segments: f.Segments,
			Color:    f.Color,
			Current:  gen.CurveControlPoints(width, height, f.Segments),
			Target:   gen.CurveControlPoints(width, height, f.Segments),
		}
	}
	return g
}

// Promote moves every target into the current slot and draws fresh targets
// for the given viewport size.
func (g *Geometry) Promote(gen *geom.Generator, width, height float64) {
	g.RadialCurrent = g.RadialTarget
	g.RadialTarget = gen.RadialEndpoints(width, height)
	for i := range g.Families {
		f := &g.Families[i]
		f.Current = f.Target
		f.Target = gen.CurveControlPoints(width, height, f.Segments)
	}
}

// Context is the single animation instance, built once at startup and
// handed to the driver.
type Context struct {
	Params    *params.Set
	Geometry  *Geometry
	Engine    *tween.Engine
	Viewport  *viewport.Manager
	Generator *geom.Generator
	Renderer  *render.Renderer
}

// NewContext builds the animation for a width x height viewport. surface, if
// set, is resized along with the viewport.
func NewContext(cfg *config.Config, width, height int, surface viewport.Surface, rnd geom.Source, log *zap.Logger) (*Context, error) {
	log = logging.OrNop(log)

	p, err := params.FromConfig(cfg.Params)
	if err != nil {
		return nil, err
	}
	ease, err := tween.EasingByName(cfg.Animation.Easing)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", config.ErrInvalid, err)
	}

	gen := geom.NewGenerator(rnd)
	vp := viewport.New(width, height, surface, log)
	return &Context{
		Params:    p,
		Geometry:  newGeometry(gen, float64(width), float64(height), cfg.Animation.Families),
		Engine:    tween.NewEngine(cfg.Animation.Duration, ease),
		Viewport:  vp,
		Generator: gen,
		Renderer: render.New(render.Style{
			LineWidth:      cfg.Render.LineWidth,
			CurveWidth:     cfg.Render.CurveWidth,
			LightnessSwing: cfg.Render.LightnessSwing,
		}),
	}, nil
}
