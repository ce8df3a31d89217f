package export

import (
	"bytes"
	"errors"
	"image/png"
	"strings"
	"testing"
	"time"

	"github.com/iburimskiy/radial-morph/internal/animation"
	"github.com/iburimskiy/radial-morph/internal/config"
)

func TestSVG_StrokeCount(t *testing.T) {
	var buf bytes.Buffer
	rnd, _ := animation.NewSource(3)
	opts := Options{Width: 800, Height: 600, At: 2 * time.Second}
	if err := SVG(&buf, config.Default(), opts, rnd, nil); err != nil {
		t.Fatalf("SVG: %v", err)
	}
	// 35 radial lines plus 35 curve pairs for each family
	if got := strings.Count(buf.String(), "<path"); got != 105 {
		t.Errorf("paths = %d, want 105", got)
	}
	if !strings.HasSuffix(strings.TrimSpace(buf.String()), "</svg>") {
		t.Error("SVG document not closed")
	}
}

func TestSVG_Deterministic(t *testing.T) {
	render := func() string {
		var buf bytes.Buffer
		rnd, _ := animation.NewSource(11)
		opts := Options{Width: 400, Height: 400, At: 9 * time.Second}
		if err := SVG(&buf, config.Default(), opts, rnd, nil); err != nil {
			t.Fatalf("SVG: %v", err)
		}
		return buf.String()
	}
	if render() != render() {
		t.Fatal("same seed and time produced different SVG output")
	}
}

func TestPNG_Size(t *testing.T) {
	var buf bytes.Buffer
	rnd, _ := animation.NewSource(5)
	opts := Options{Width: 320, Height: 240, At: 500 * time.Millisecond}
	if err := PNG(&buf, config.Default(), opts, rnd, nil); err != nil {
		t.Fatalf("PNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 320 || b.Dy() != 240 {
		t.Errorf("image = %dx%d, want 320x240", b.Dx(), b.Dy())
	}
}

func TestFrame_RejectsNegativeTime(t *testing.T) {
	var buf bytes.Buffer
	rnd, _ := animation.NewSource(5)
	err := SVG(&buf, config.Default(), Options{Width: 10, Height: 10, At: -time.Second}, rnd, nil)
	if !errors.Is(err, config.ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
}

func TestBadBackground(t *testing.T) {
	cfg := config.Default()
	cfg.Render.Background = "nope"
	rnd, _ := animation.NewSource(5)
	if err := PNG(&bytes.Buffer{}, cfg, Options{Width: 10, Height: 10}, rnd, nil); !errors.Is(err, config.ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
}
