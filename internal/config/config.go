package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	WindowWidth  = 1024
	WindowHeight = 768
	WindowTitle  = "Radial Morph - arrows: complexity/amplitude, 1-3: colors, H: hud, Esc/Q: quit"

	// Morph cycle
	CycleDuration = 8000 * time.Millisecond
	DefaultEasing = "cubic"

	// Curve families: segment count and the color parameter each one strokes with
	PrimarySegments   = 10
	SecondarySegments = 7

	// Parameter defaults and control panel ranges
	Complexity    = 35
	ComplexityMin = 15
	ComplexityMax = 70
	Amplitude     = 300
	AmplitudeMin  = 50
	AmplitudeMax  = 500
	AmplitudeStep = 10
	Color1        = "#ff111c"
	Color2        = "#1f79ed"
	Color3        = "#e9ee55"

	// Stroke styling
	Background     = "#0b0b12"
	LineWidth      = 1.0
	CurveWidth     = 1.5
	LightnessSwing = 0.1

	LogLevel = "info"
)

// ErrInvalid wraps every validation failure returned by Validate.
var ErrInvalid = errors.New("invalid config")

var easings = map[string]bool{"linear": true, "cubic": true, "cubic-in-out": true}

type Config struct {
	Window    Window    `yaml:"window"`
	Animation Animation `yaml:"animation"`
	Params    Params    `yaml:"params"`
	Render    Render    `yaml:"render"`
	Log       Log       `yaml:"log"`
}

type Window struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Title     string `yaml:"title"`
	Resizable bool   `yaml:"resizable"`
}

type Animation struct {
	Duration time.Duration `yaml:"duration"`
	Easing   string        `yaml:"easing"`
	// Seed of 0 picks a time based seed at startup.
	Seed     int64    `yaml:"seed"`
	Families []Family `yaml:"families"`
}

// Family is one independently tweened set of curve control points.
type Family struct {
	Segments int `yaml:"segments"`
	// Color names the parameter the family strokes with: color2 or color3.
	Color string `yaml:"color"`
}

type Params struct {
	Complexity int     `yaml:"complexity"`
	Amplitude  float64 `yaml:"amplitude"`
	Color1     string  `yaml:"color1"`
	Color2     string  `yaml:"color2"`
	Color3     string  `yaml:"color3"`
}

type Render struct {
	Background     string  `yaml:"background"`
	LineWidth      float64 `yaml:"line_width"`
	CurveWidth     float64 `yaml:"curve_width"`
	LightnessSwing float64 `yaml:"lightness_swing"`
}

type Log struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

func Default() *Config {
	return &Config{
		Window: Window{
			Width:     WindowWidth,
			Height:    WindowHeight,
			Title:     WindowTitle,
			Resizable: true,
		},
		Animation: Animation{
			Duration: CycleDuration,
			Easing:   DefaultEasing,
			Families: []Family{
				{Segments: PrimarySegments, Color: "color2"},
				{Segments: SecondarySegments, Color: "color3"},
			},
		},
		Params: Params{
			Complexity: Complexity,
			Amplitude:  Amplitude,
			Color1:     Color1,
			Color2:     Color2,
			Color3:     Color3,
		},
		Render: Render{
			Background:     Background,
			LineWidth:      LineWidth,
			CurveWidth:     CurveWidth,
			LightnessSwing: LightnessSwing,
		},
		Log: Log{Level: LogLevel},
	}
}

// Load reads a yaml file over the defaults and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	if c.Animation.Duration <= 0 {
		return fmt.Errorf("%w: animation duration %v", ErrInvalid, c.Animation.Duration)
	}
	if !easings[c.Animation.Easing] {
		return fmt.Errorf("%w: unknown easing %q", ErrInvalid, c.Animation.Easing)
	}
	if len(c.Animation.Families) == 0 {
		return fmt.Errorf("%w: no curve families", ErrInvalid)
	}
	for i, f := range c.Animation.Families {
		if f.Segments < 0 {
			return fmt.Errorf("%w: family %d has %d segments", ErrInvalid, i, f.Segments)
		}
		switch f.Color {
		case "color1", "color2", "color3":
		default:
			return fmt.Errorf("%w: family %d color %q", ErrInvalid, i, f.Color)
		}
	}
	if c.Render.LineWidth <= 0 || c.Render.CurveWidth <= 0 {
		return fmt.Errorf("%w: stroke widths must be positive", ErrInvalid)
	}
	return nil
}
