// Package params holds the user tunable values the renderer reads every frame.
package params

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/iburimskiy/radial-morph/internal/config"
)

// Kind says how a control panel should present a field.
type Kind int

const (
	Number Kind = iota
	Color
)

// Field describes one bound value for the control panel. Min, Max and Step
// only apply to Number fields.
type Field struct {
	Name  string
	Label string
	Kind  Kind
	Min   float64
	Max   float64
	Step  float64
}

// Clamp snaps v into the field range on the step grid.
func (f Field) Clamp(v float64) float64 {
	if f.Kind != Number {
		return v
	}
	if f.Step > 0 {
		v = f.Min + math.Round((v-f.Min)/f.Step)*f.Step
	}
	return math.Min(math.Max(v, f.Min), f.Max)
}

var fields = []Field{
	{Name: "complexity", Label: "complexity", Kind: Number, Min: config.ComplexityMin, Max: config.ComplexityMax, Step: 1},
	{Name: "amplitude", Label: "amplitude", Kind: Number, Min: config.AmplitudeMin, Max: config.AmplitudeMax, Step: config.AmplitudeStep},
	{Name: "color1", Label: "color 1", Kind: Color},
	{Name: "color2", Label: "color 2", Kind: Color},
	{Name: "color3", Label: "color 3", Kind: Color},
}

// Fields lists the five bindable values in panel order.
func Fields() []Field {
	out := make([]Field, len(fields))
	copy(out, fields)
	return out
}

// FieldByName looks up a field descriptor.
func FieldByName(name string) (Field, bool) {
	for _, f := range fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Set is the live parameter record. Writes are not range checked here; the
// control panel clamps before writing and programmatic writes go through as is.
type Set struct {
	// RepeatCount is the number of rotational copies, labeled "complexity".
	RepeatCount int
	Amplitude   float64
	Color1      colorful.Color
	Color2      colorful.Color
	Color3      colorful.Color
}

// FromConfig parses the configured defaults.
func FromConfig(p config.Params) (*Set, error) {
	s := &Set{RepeatCount: p.Complexity, Amplitude: p.Amplitude}
	for _, c := range []struct {
		name string
		hex  string
		dst  *colorful.Color
	}{
		{"color1", p.Color1, &s.Color1},
		{"color2", p.Color2, &s.Color2},
		{"color3", p.Color3, &s.Color3},
	} {
		col, err := colorful.Hex(c.hex)
		if err != nil {
			return nil, fmt.Errorf("%s %q: %w", c.name, c.hex, config.ErrInvalid)
		}
		*c.dst = col
	}
	return s, nil
}

// Number reads a numeric field by name.
func (s *Set) Number(name string) (float64, bool) {
	switch name {
	case "complexity":
		return float64(s.RepeatCount), true
	case "amplitude":
		return s.Amplitude, true
	}
	return 0, false
}

// SetNumber writes a numeric field by name. complexity is rounded to an integer.
func (s *Set) SetNumber(name string, v float64) bool {
	switch name {
	case "complexity":
		s.RepeatCount = int(math.Round(v))
	case "amplitude":
		s.Amplitude = v
	default:
		return false
	}
	return true
}

// Color reads a color field by name.
func (s *Set) Color(name string) (colorful.Color, bool) {
	if p := s.colorSlot(name); p != nil {
		return *p, true
	}
	return colorful.Color{}, false
}

// SetColor writes a color field by name.
func (s *Set) SetColor(name string, c colorful.Color) bool {
	p := s.colorSlot(name)
	if p == nil {
		return false
	}
	*p = c
	return true
}

func (s *Set) colorSlot(name string) *colorful.Color {
	switch name {
	case "color1":
		return &s.Color1
	case "color2":
		return &s.Color2
	case "color3":
		return &s.Color3
	}
	return nil
}
