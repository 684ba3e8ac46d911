package game

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/falling-dna/internal/config"
	"github.com/iburimskiy/falling-dna/internal/dna"
	"github.com/iburimskiy/falling-dna/internal/render"
)

// Game hosts the animation in an ebiten window. Each Draw is one repaint:
// it runs whatever frame the driver requested last.
type Game struct {
	width, height int

	surface   *render.EbitenSurface
	scheduler *dna.FrameScheduler
	driver    *dna.Driver
}

// NewGame sizes the canvas from the window config, falling back to the
// monitor size, and builds the driver over it.
func NewGame(cfg config.Config) (*Game, error) {
	width, height := cfg.Window.Width, cfg.Window.Height
	if width == 0 || height == 0 {
		mw, mh := ebiten.Monitor().Size()
		if width == 0 {
			width = mw
		}
		if height == 0 {
			height = mh
		}
	}

	surface, err := render.NewEbitenSurface(width, height, cfg.FontFamily)
	if err != nil {
		return nil, err
	}

	scheduler := &dna.FrameScheduler{}
	driver, err := dna.NewDriver(cfg, surface, scheduler)
	if err != nil {
		return nil, err
	}
	// The first frame waits for a screen to paint on.
	scheduler.RequestFrame(driver.Update)

	return &Game{
		width:     width,
		height:    height,
		surface:   surface,
		scheduler: scheduler,
		driver:    driver,
	}, nil
}

// Update only watches for the quit keys; animation runs in Draw.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.Bind(screen)
	g.scheduler.RunPending()
}

// Layout keeps the canvas at its startup size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// RunWindow opens the window and blocks until it is closed.
func RunWindow(cfg config.Config) error {
	g, err := NewGame(cfg)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetFullscreen(cfg.Window.Fullscreen)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("game loop: %w", err)
	}
	return nil
}
