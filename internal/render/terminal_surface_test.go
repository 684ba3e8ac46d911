package render

import (
	"image/color"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/falling-dna/internal/config"
)

type cell struct {
	r     rune
	style tcell.Style
}

// mockScreen records SetContent calls; other tcell.Screen methods panic.
type mockScreen struct {
	tcell.Screen
	cols, rows int
	cells      map[[2]int]cell
	shows      int
}

func newMockScreen(cols, rows int) *mockScreen {
	return &mockScreen{cols: cols, rows: rows, cells: map[[2]int]cell{}}
}

func (m *mockScreen) Size() (int, int) { return m.cols, m.rows }
func (m *mockScreen) Show()            { m.shows++ }

func (m *mockScreen) SetContent(x, y int, mainc rune, combc []rune, style tcell.Style) {
	m.cells[[2]int{x, y}] = cell{r: mainc, style: style}
}

var (
	green = color.RGBA{G: 255, A: 255}
	black = color.RGBA{A: 255}
)

func TestTerminalSurfaceSize(t *testing.T) {
	s := NewTerminalSurface(newMockScreen(80, 24), 8, 16, 70)
	w, h := s.Size()
	if w != 640 || h != 384 {
		t.Errorf("Size() = %dx%d, want 640x384", w, h)
	}
}

func TestTerminalSurfaceFillRect(t *testing.T) {
	screen := newMockScreen(10, 5)
	s := NewTerminalSurface(screen, 8, 16, 70)

	s.SetFillColor(black)
	s.FillRect(0, 0, 80, 80)

	if len(screen.cells) != 50 {
		t.Fatalf("cleared %d cells, want 50", len(screen.cells))
	}
	want := tcell.StyleDefault.Background(toTcell(black))
	for pos, c := range screen.cells {
		if c.r != ' ' || c.style != want {
			t.Errorf("cell %v = %+v, want blank on black", pos, c)
		}
	}
}

func TestTerminalSurfaceTakesConfigColors(t *testing.T) {
	screen := newMockScreen(2, 2)
	s := NewTerminalSurface(screen, 8, 16, 70)

	s.SetFillColor(config.MustParseColor("#102030"))
	s.FillRect(0, 0, 16, 32)

	want := tcell.StyleDefault.Background(toTcell(color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff}))
	if c := screen.cells[[2]int{1, 1}]; c.style != want {
		t.Errorf("cell style = %+v, want background #102030", c.style)
	}
}

func TestTerminalSurfaceFillRectClipsToScreen(t *testing.T) {
	screen := newMockScreen(4, 4)
	s := NewTerminalSurface(screen, 8, 16, 70)

	s.FillRect(-100, -100, 1000, 1000)

	if len(screen.cells) != 16 {
		t.Errorf("cleared %d cells, want 16", len(screen.cells))
	}
}

func TestTerminalSurfaceFillText(t *testing.T) {
	tests := []struct {
		name     string
		x, y     float64
		size     int
		wantCell [2]int
		wantOK   bool
	}{
		{"inside", 17, 40, 16, [2]int{2, 2}, true},
		{"baseline on row edge", 0, 32, 2, [2]int{0, 1}, true},
		{"above top", 10, -5, 16, [2]int{}, false},
		{"below bottom", 10, 500, 16, [2]int{}, false},
		{"right of screen", 200, 40, 16, [2]int{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			screen := newMockScreen(10, 5)
			s := NewTerminalSurface(screen, 8, 16, 70)
			s.SetFillColor(green)
			s.SetFont("mono", tt.size)

			s.FillText("G", tt.x, tt.y)

			c, ok := screen.cells[tt.wantCell]
			if ok != tt.wantOK || len(screen.cells) != map[bool]int{true: 1, false: 0}[tt.wantOK] {
				t.Fatalf("cells = %v, want G at %v: %v", screen.cells, tt.wantCell, tt.wantOK)
			}
			if ok && c.r != 'G' {
				t.Errorf("rune = %q, want 'G'", c.r)
			}
		})
	}
}

func TestTerminalSurfaceIgnoresEmptyText(t *testing.T) {
	screen := newMockScreen(10, 5)
	s := NewTerminalSurface(screen, 8, 16, 70)
	s.FillText("", 10, 40)
	if len(screen.cells) != 0 {
		t.Errorf("empty text painted %d cells", len(screen.cells))
	}
}

func TestTerminalSurfaceDimsSmallFonts(t *testing.T) {
	screen := newMockScreen(10, 5)
	s := NewTerminalSurface(screen, 8, 16, 70)
	s.SetFillColor(black)
	s.FillRect(0, 0, 80, 80)
	s.SetFillColor(green)

	s.SetFont("mono", 70)
	s.FillText("A", 0, 70)
	near := screen.cells[[2]int{0, 2}]

	s.SetFont("mono", 7)
	s.FillText("B", 16, 70)
	far := screen.cells[[2]int{2, 4}]

	wantNear := tcell.StyleDefault.Foreground(toTcell(green)).Background(toTcell(black))
	if near.r != 'A' || near.style != wantNear {
		t.Errorf("near glyph = %+v, want full green A", near)
	}
	if far.r != 'B' || far.style == wantNear {
		t.Errorf("far glyph = %+v, want a dimmer B", far)
	}
}

func TestShade(t *testing.T) {
	tests := []struct {
		t    float64
		want uint8
	}{
		{1, 200},
		{0, 60},
		{0.5, 130},
	}
	for _, tt := range tests {
		got := shade(color.RGBA{R: 200, A: 255}, tt.t)
		if got.R != tt.want || got.A != 255 {
			t.Errorf("shade(%v).R = %d, want %d", tt.t, got.R, tt.want)
		}
	}
}

func TestShowFlushesScreen(t *testing.T) {
	screen := newMockScreen(1, 1)
	NewTerminalSurface(screen, 8, 16, 70).Show()
	if screen.shows != 1 {
		t.Errorf("Show() flushed %d times, want 1", screen.shows)
	}
}
