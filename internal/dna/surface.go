package dna

import "image/color"

// Surface is an immediate-mode 2D drawing target measured in pixels.
type Surface interface {
	// Size reports the fixed pixel dimensions of the surface.
	Size() (width, height int)
	SetFillColor(c color.Color)
	FillRect(x, y, width, height float64)
	// SetFont selects the face used by FillText. size is in pixels.
	SetFont(family string, size int)
	// FillText paints s with its baseline starting at (x, y).
	FillText(s string, x, y float64)
}

// Scheduler runs fn once before the next repaint.
type Scheduler interface {
	RequestFrame(fn func())
}

// FrameScheduler holds at most one pending frame callback. Hosts call
// RunPending once per repaint; tests call it to step the animation by hand.
type FrameScheduler struct {
	pending func()
}

func (s *FrameScheduler) RequestFrame(fn func()) {
	s.pending = fn
}

// Pending reports whether a callback is waiting.
func (s *FrameScheduler) Pending() bool {
	return s.pending != nil
}

// RunPending runs the waiting callback, if any. The callback may request
// the next frame while it runs.
func (s *FrameScheduler) RunPending() bool {
	fn := s.pending
	if fn == nil {
		return false
	}
	s.pending = nil
	fn()
	return true
}
