// Package game hosts the animation in an ebiten window with a keyboard
// control panel and a small HUD.
package game

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lucasb-eyer/go-colorful"
	"go.uber.org/zap"

	"github.com/iburimskiy/radial-morph/internal/animation"
	"github.com/iburimskiy/radial-morph/internal/config"
	"github.com/iburimskiy/radial-morph/internal/geom"
	"github.com/iburimskiy/radial-morph/internal/logging"
)

const frameRingSize = 60

type Game struct {
	// animation
	driver *animation.Driver
	clock  *animation.PausableClock
	screen *screenCanvas

	// surface size handed back from Layout
	width, height int

	// control panel
	panel  *panel
	hud    bool
	frames *frameTap

	log *zap.Logger
}

// New builds the game for the configured window size.
func New(cfg *config.Config, rnd geom.Source, log *zap.Logger) (*Game, error) {
	log = logging.OrNop(log)
	bg, err := colorful.Hex(cfg.Render.Background)
	if err != nil {
		return nil, fmt.Errorf("background %q: %w", cfg.Render.Background, config.ErrInvalid)
	}

	g := &Game{
		screen: newScreenCanvas(bg),
		hud:    true,
		frames: newFrameTap(frameRingSize),
		log:    log,
	}
	ctx, err := animation.NewContext(cfg, cfg.Window.Width, cfg.Window.Height, g, rnd, log)
	if err != nil {
		return nil, err
	}
	g.clock = animation.NewPausableClock(animation.SystemClock{})
	g.driver = animation.NewDriver(ctx, g.clock, log)
	g.panel = newPanel(ctx.Params, zenityPicker, log)
	return g, nil
}

// SetSize makes the game the viewport's surface: ebiten sizes the screen
// from what Layout returns.
func (g *Game) SetSize(width, height int) {
	g.width, g.height = width, height
}

func (g *Game) Update() error {
	g.panel.drain()

	held := inpututil.KeyPressDuration
	switch {
	case repeating(held(ebiten.KeyArrowUp)):
		g.panel.nudge("complexity", 1)
	case repeating(held(ebiten.KeyArrowDown)):
		g.panel.nudge("complexity", -1)
	}
	switch {
	case repeating(held(ebiten.KeyArrowRight)):
		g.panel.nudge("amplitude", 1)
	case repeating(held(ebiten.KeyArrowLeft)):
		g.panel.nudge("amplitude", -1)
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyDigit1):
		g.panel.requestColor("color1")
	case inpututil.IsKeyJustPressed(ebiten.KeyDigit2):
		g.panel.requestColor("color2")
	case inpututil.IsKeyJustPressed(ebiten.KeyDigit3):
		g.panel.requestColor("color3")
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.hud = !g.hud
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		paused := g.clock.Toggle()
		g.log.Info("pause toggled", zap.Bool("paused", paused))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.frames.record(time.Now())

	g.screen.target(screen)
	g.driver.Frame(g.screen)

	if g.hud {
		g.drawProgressBar(screen)
		g.drawStatus(screen)
	}
}

func (g *Game) drawStatus(screen *ebiten.Image) {
	ctx := g.driver.Context()
	p := ctx.Params
	status := fmt.Sprintf("complexity %d (up/down)  amplitude %.0f (left/right)  colors %s %s %s (1/2/3)",
		p.RepeatCount, p.Amplitude, p.Color1.Hex(), p.Color2.Hex(), p.Color3.Hex())
	cycle := fmt.Sprintf("cycle %d  %s / %s  %.0f fps",
		ctx.Engine.Cycles()+1,
		formatDuration(ctx.Engine.Elapsed(g.clock.Now())),
		formatDuration(ctx.Engine.Duration()),
		g.frames.fps())
	if g.clock.Paused() {
		cycle += "  paused (space)"
	}
	if g.panel.lastErr != nil {
		cycle += " | Error: " + g.panel.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 12)
	ebitenutil.DebugPrintAt(screen, cycle, 12, 28)
}

// drawProgressBar shows how far the current morph cycle has run.
func (g *Game) drawProgressBar(screen *ebiten.Image) {
	w, h := g.driver.Context().Viewport.Size()
	barX, barY := float32(12), float32(h-18)
	barWidth, barHeight := float32(w-24), float32(6)
	if barWidth <= 0 || barY <= 0 {
		return
	}

	progress := clamp01(g.driver.Context().Engine.Progress())
	vector.DrawFilledRect(screen, barX, barY, barWidth, barHeight, color.RGBA{R: 25, G: 30, B: 40, A: 200}, false)
	vector.DrawFilledRect(screen, barX, barY, barWidth*float32(progress), barHeight, color.RGBA{R: 150, G: 170, B: 200, A: 220}, false)
	vector.StrokeRect(screen, barX, barY, barWidth, barHeight, 1, color.RGBA{R: 70, G: 80, B: 100, A: 255}, false)
}

// Layout forwards the window size in device pixels to the viewport, which
// resizes the surface through SetSize before the next frame is drawn.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := deviceSize(outsideWidth, outsideHeight, ebiten.Monitor().DeviceScaleFactor())
	g.driver.Context().Viewport.Resize(w, h)
	return max(g.width, 1), max(g.height, 1)
}

// Run opens the window and blocks until it is closed or the user quits.
func Run(cfg *config.Config, rnd geom.Source, log *zap.Logger) error {
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	if cfg.Window.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	g, err := New(cfg, rnd, log)
	if err != nil {
		return err
	}
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
