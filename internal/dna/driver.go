package dna

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/iburimskiy/falling-dna/internal/config"
)

// Driver owns the sequence pool and repaints it once per frame.
type Driver struct {
	cfg       config.Config
	surface   Surface
	scheduler Scheduler

	field *field
	pool  []*Sequence
	ticks uint64
}

// NewDriver validates cfg against the surface and fills the pool. The
// surface size is read once; later resizes are not tracked.
func NewDriver(cfg config.Config, surface Surface, scheduler Scheduler) (*Driver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	width, height := surface.Size()
	if width < cfg.MaxFontSize {
		return nil, fmt.Errorf("surface width %d is narrower than maxFontSize(%d)", width, cfg.MaxFontSize)
	}
	if height < 1 {
		return nil, fmt.Errorf("surface height must be positive, got %d", height)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	f := &field{
		cfg:       cfg,
		reference: []rune(cfg.Reference),
		width:     float64(width),
		height:    float64(height),
		rng:       rand.New(rand.NewSource(seed)),
	}

	d := &Driver{
		cfg:       cfg,
		surface:   surface,
		scheduler: scheduler,
		field:     f,
		pool:      make([]*Sequence, cfg.NumSeqs),
	}
	for i := range d.pool {
		d.pool[i] = newSequence(f)
	}

	log.Printf("[Driver] %d sequences on a %dx%d surface (seed %d)", len(d.pool), width, height, seed)
	return d, nil
}

// Start paints the first frame; every frame schedules the next.
func (d *Driver) Start() {
	d.Update()
}

// Update clears the surface, draws every sequence in pool order, and
// requests the next frame.
func (d *Driver) Update() {
	d.surface.SetFillColor(d.cfg.BackgroundColor)
	d.surface.FillRect(0, 0, d.field.width, d.field.height)

	for _, s := range d.pool {
		s.Draw(d.surface)
	}
	d.ticks++

	d.scheduler.RequestFrame(d.Update)
}

// Sequences returns the pool in draw order.
func (d *Driver) Sequences() []*Sequence {
	out := make([]*Sequence, len(d.pool))
	copy(out, d.pool)
	return out
}

// Ticks is the number of frames painted so far.
func (d *Driver) Ticks() uint64 {
	return d.ticks
}
