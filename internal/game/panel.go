package game

import (
	"errors"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/ncruces/zenity"
	"go.uber.org/zap"

	"github.com/iburimskiy/radial-morph/internal/params"
)

// colorPicker asks the user for a color, starting from current.
type colorPicker func(title string, current color.Color) (color.Color, error)

func zenityPicker(title string, current color.Color) (color.Color, error) {
	return zenity.SelectColor(zenity.Title(title), zenity.Color(current))
}

type colorPick struct {
	field string
	color color.Color
	err   error
}

// panel binds the five parameters to keyboard actions. Numeric writes are
// clamped to each field's range; color picks run off the frame loop and are
// applied when drained.
type panel struct {
	params  *params.Set
	pick    colorPicker
	picks   chan colorPick
	picking bool
	lastErr error
	log     *zap.Logger
}

func newPanel(p *params.Set, pick colorPicker, log *zap.Logger) *panel {
	return &panel{params: p, pick: pick, picks: make(chan colorPick, 1), log: log}
}

// nudge moves a numeric field by steps of its declared step size.
func (p *panel) nudge(name string, steps int) {
	f, ok := params.FieldByName(name)
	if !ok || f.Kind != params.Number {
		return
	}
	cur, _ := p.params.Number(name)
	next := f.Clamp(cur + float64(steps)*f.Step)
	if next == cur {
		return
	}
	p.params.SetNumber(name, next)
	p.log.Info("parameter changed", zap.String("field", name), zap.Float64("value", next))
}

// requestColor opens the picker for a color field unless one is already open.
func (p *panel) requestColor(name string) {
	f, ok := params.FieldByName(name)
	if !ok || f.Kind != params.Color || p.picking {
		return
	}
	cur, _ := p.params.Color(name)
	p.picking = true
	go func() {
		c, err := p.pick("Pick "+f.Label, cur)
		p.picks <- colorPick{field: name, color: c, err: err}
	}()
}

// drain applies a finished pick, if any. It never blocks.
func (p *panel) drain() {
	select {
	case res := <-p.picks:
		p.picking = false
		p.apply(res)
	default:
	}
}

func (p *panel) apply(res colorPick) {
	if res.err != nil {
		if !errors.Is(res.err, zenity.ErrCanceled) {
			p.lastErr = res.err
			p.log.Warn("color picker failed", zap.String("field", res.field), zap.Error(res.err))
		}
		return
	}
	c, ok := colorful.MakeColor(res.color)
	if !ok {
		return
	}
	p.lastErr = nil
	p.params.SetColor(res.field, c)
	p.log.Info("parameter changed", zap.String("field", res.field), zap.String("value", c.Hex()))
}
