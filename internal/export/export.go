// Package export renders single frames to files instead of a window.
package export

import (
	"fmt"
	"io"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"go.uber.org/zap"

	"github.com/iburimskiy/radial-morph/internal/animation"
	"github.com/iburimskiy/radial-morph/internal/canvas"
	"github.com/iburimskiy/radial-morph/internal/config"
	"github.com/iburimskiy/radial-morph/internal/geom"
	"github.com/iburimskiy/radial-morph/internal/viewport"
)

// FrameInterval is the step used to replay time up to the requested frame,
// so cycle boundaries land where they would at 60 fps.
const FrameInterval = time.Second / 60

// Options picks the frame to render.
type Options struct {
	Width, Height int
	// At is the elapsed time since the animation started.
	At time.Duration
}

// PNG renders the frame at opts.At and writes it as a PNG.
func PNG(w io.Writer, cfg *config.Config, opts Options, rnd geom.Source, log *zap.Logger) error {
	bg, err := background(cfg)
	if err != nil {
		return err
	}
	r := canvas.NewRaster(opts.Width, opts.Height, bg)
	if err := frame(r, r, cfg, opts, rnd, log); err != nil {
		return err
	}
	return r.EncodePNG(w)
}

// SVG renders the frame at opts.At as an SVG document.
func SVG(w io.Writer, cfg *config.Config, opts Options, rnd geom.Source, log *zap.Logger) error {
	bg, err := background(cfg)
	if err != nil {
		return err
	}
	s := canvas.NewSVG(w, opts.Width, opts.Height, bg)
	if err := frame(s, nil, cfg, opts, rnd, log); err != nil {
		return err
	}
	s.Close()
	return nil
}

func frame(c canvas.Canvas, surface viewport.Surface, cfg *config.Config, opts Options, rnd geom.Source, log *zap.Logger) error {
	if opts.At < 0 {
		return fmt.Errorf("frame time %v: %w", opts.At, config.ErrInvalid)
	}
	ctx, err := animation.NewContext(cfg, opts.Width, opts.Height, surface, rnd, log)
	if err != nil {
		return err
	}
	clock := animation.NewManualClock(time.Unix(0, 0))
	d := animation.NewDriver(ctx, clock, log)
	for elapsed := FrameInterval; elapsed < opts.At; elapsed += FrameInterval {
		clock.Advance(FrameInterval)
		d.Advance()
	}
	clock.Advance(opts.At - clock.Now().Sub(time.Unix(0, 0)))
	d.Frame(c)
	return nil
}

func background(cfg *config.Config) (colorful.Color, error) {
	bg, err := colorful.Hex(cfg.Render.Background)
	if err != nil {
		return bg, fmt.Errorf("background %q: %w", cfg.Render.Background, config.ErrInvalid)
	}
	return bg, nil
}
