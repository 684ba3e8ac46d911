package render

import (
	"image/color"
	"math"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// Far columns never fade below this share of the fill color.
const minShade = 0.3

// TerminalSurface presents a tcell screen as a pixel surface where every
// cell covers cellWidth x cellHeight pixels. The font family is ignored;
// the font size dims the glyph so distant columns read as further away.
type TerminalSurface struct {
	screen tcell.Screen

	cellWidth  int
	cellHeight int
	maxFont    int

	fill       color.RGBA
	background color.RGBA
	fontSize   int
}

func NewTerminalSurface(screen tcell.Screen, cellWidth, cellHeight, maxFont int) *TerminalSurface {
	return &TerminalSurface{
		screen:     screen,
		cellWidth:  cellWidth,
		cellHeight: cellHeight,
		maxFont:    maxFont,
		fill:       color.RGBA{R: 255, G: 255, B: 255, A: 255},
		background: color.RGBA{A: 255},
		fontSize:   maxFont,
	}
}

func (s *TerminalSurface) Size() (int, int) {
	cols, rows := s.screen.Size()
	return cols * s.cellWidth, rows * s.cellHeight
}

func (s *TerminalSurface) SetFillColor(c color.Color) {
	s.fill = color.RGBAModel.Convert(c).(color.RGBA)
}

// FillRect blanks every cell the rectangle touches. The fill color also
// becomes the background behind glyphs painted afterwards.
func (s *TerminalSurface) FillRect(x, y, width, height float64) {
	s.background = s.fill
	style := tcell.StyleDefault.Background(toTcell(s.background))

	c0, r0 := s.cell(x, y)
	c1 := int(math.Ceil((x + width) / float64(s.cellWidth)))
	r1 := int(math.Ceil((y + height) / float64(s.cellHeight)))

	cols, rows := s.screen.Size()
	c0, c1 = max(c0, 0), min(c1, cols)
	r0, r1 = max(r0, 0), min(r1, rows)

	for row := r0; row < r1; row++ {
		for col := c0; col < c1; col++ {
			s.screen.SetContent(col, row, ' ', nil, style)
		}
	}
}

func (s *TerminalSurface) SetFont(_ string, size int) {
	s.fontSize = size
}

// FillText places the first rune of str in the cell holding the middle of
// the glyph box that sits on the baseline at (x, y).
func (s *TerminalSurface) FillText(str string, x, y float64) {
	r, n := utf8.DecodeRuneInString(str)
	if n == 0 {
		return
	}

	col, row := s.cell(x, y-float64(s.fontSize)/2)
	cols, rows := s.screen.Size()
	if col < 0 || col >= cols || row < 0 || row >= rows {
		return
	}

	fg := shade(s.fill, clamp01(float64(s.fontSize)/float64(s.maxFont)))
	style := tcell.StyleDefault.Foreground(toTcell(fg)).Background(toTcell(s.background))
	s.screen.SetContent(col, row, r, nil, style)
}

// Show flushes the frame to the terminal.
func (s *TerminalSurface) Show() {
	s.screen.Show()
}

func (s *TerminalSurface) cell(x, y float64) (int, int) {
	return int(math.Floor(x / float64(s.cellWidth))), int(math.Floor(y / float64(s.cellHeight)))
}

// shade scales c toward black; t=1 keeps it, t=0 leaves minShade of it.
func shade(c color.RGBA, t float64) color.RGBA {
	f := minShade + (1-minShade)*t
	return color.RGBA{
		R: uint8(math.Round(float64(c.R) * f)),
		G: uint8(math.Round(float64(c.G) * f)),
		B: uint8(math.Round(float64(c.B) * f)),
		A: c.A,
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func toTcell(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
