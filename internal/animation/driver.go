package animation

import (
	"go.uber.org/zap"

	"github.com/iburimskiy/radial-morph/internal/canvas"
	"github.com/iburimskiy/radial-morph/internal/logging"
	"github.com/iburimskiy/radial-morph/internal/tween"
)

// Driver runs one frame per host refresh: advance the tween, reset the
// canvas, then draw. Work within a frame always happens in that order.
type Driver struct {
	ctx   *Context
	clock Clock
	log   *zap.Logger
}

// NewDriver starts the first morph cycle at the clock's current time.
func NewDriver(ctx *Context, clock Clock, log *zap.Logger) *Driver {
	ctx.Engine.Start(clock.Now())
	return &Driver{ctx: ctx, clock: clock, log: logging.OrNop(log)}
}

func (d *Driver) Context() *Context { return d.ctx }

func (d *Driver) Clock() Clock { return d.clock }

// Frame renders the next frame onto c.
func (d *Driver) Frame(c canvas.Canvas) {
	d.Advance()
	d.reset(c)
	d.draw(c)
}

// Advance runs the tween step of a frame without drawing, handling a cycle
// boundary if one was reached.
func (d *Driver) Advance() {
	now := d.clock.Now()
	e := d.ctx.Engine
	if e.Update(now) != tween.Completing {
		return
	}
	w, h := d.ctx.Viewport.Size()
	d.ctx.Geometry.Promote(d.ctx.Generator, float64(w), float64(h))
	e.Restart(now)
	d.log.Debug("morph cycle complete", zap.Int("cycle", e.Cycles()), zap.Int("width", w), zap.Int("height", h))
}

func (d *Driver) reset(c canvas.Canvas) {
	c.ResetTransform()
	c.Clear()
	c.Translate(d.ctx.Viewport.Center())
}

func (d *Driver) draw(c canvas.Canvas) {
	ctx := d.ctx
	if ctx.Viewport.Empty() || ctx.Params.RepeatCount <= 0 {
		return
	}
	t := ctx.Engine.Progress()
	g := ctx.Geometry

	ctx.Renderer.RadialLines(c, g.RadialCurrent, g.RadialTarget, t, ctx.Params)
	for _, f := range g.Families {
		col, ok := ctx.Params.Color(f.Color)
		if !ok {
			continue
		}
		ctx.Renderer.RadialCurves(c, f.Current, f.Target, t, col, ctx.Params)
	}
}
