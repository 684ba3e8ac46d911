package game

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/falling-dna/internal/config"
	"github.com/iburimskiy/falling-dna/internal/dna"
	"github.com/iburimskiy/falling-dna/internal/render"
)

// Terminal hosts the animation on a tcell screen. A ticker stands in for
// the display refresh; input is only read to notice quit keys.
type Terminal struct {
	screen    tcell.Screen
	surface   *render.TerminalSurface
	scheduler *dna.FrameScheduler
	driver    *dna.Driver
	interval  time.Duration
}

// NewTerminal builds the driver over an initialized screen and paints the
// first frame.
func NewTerminal(screen tcell.Screen, cfg config.Config) (*Terminal, error) {
	surface := render.NewTerminalSurface(screen, cfg.Terminal.CellWidth, cfg.Terminal.CellHeight, cfg.MaxFontSize)
	scheduler := &dna.FrameScheduler{}

	driver, err := dna.NewDriver(cfg, surface, scheduler)
	if err != nil {
		return nil, err
	}

	t := &Terminal{
		screen:    screen,
		surface:   surface,
		scheduler: scheduler,
		driver:    driver,
		interval:  time.Second / time.Duration(cfg.Terminal.FPS),
	}

	driver.Start()
	surface.Show()
	return t, nil
}

// Step runs the pending frame and flushes it.
func (t *Terminal) Step() bool {
	if !t.scheduler.RunPending() {
		return false
	}
	t.surface.Show()
	return true
}

// Run ticks until ctx is done or a quit key arrives.
func (t *Terminal) Run(ctx context.Context) error {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if !t.handleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			t.Step()
		}
	}
}

func (t *Terminal) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyRune && ev.Rune() == 'q' {
			return false
		}
	case *tcell.EventResize:
		// The canvas keeps its startup size; only repaint what is there.
		t.screen.Sync()
	}
	return true
}

// RunTerminal takes over the controlling terminal until ctx is done or the
// user quits.
func RunTerminal(ctx context.Context, cfg config.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init terminal: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	t, err := NewTerminal(screen, cfg)
	if err != nil {
		return err
	}
	return t.Run(ctx)
}
