package dna

import (
	"math"
	"math/rand"

	"github.com/iburimskiy/falling-dna/internal/config"
)

// field is the state every sequence in a pool shares: the configuration,
// the surface bounds captured at startup, and the random generator.
type field struct {
	cfg       config.Config
	reference []rune
	width     float64
	height    float64
	rng       *rand.Rand
}

// Sequence is one falling column of text. Each character sits one font
// size above the previous, so the column reads top to bottom as it falls.
type Sequence struct {
	Text  string
	Depth float64

	FontSize int
	Speed    float64

	X, Y        float64
	TotalHeight float64

	// Generation counts initializations, starting at 1.
	Generation int

	field *field
}

func newSequence(f *field) *Sequence {
	s := &Sequence{field: f}
	s.Init()
	return s
}

// Init rolls a new text slice, depth, and position, replacing every field.
func (s *Sequence) Init() {
	f := s.field
	cfg := f.cfg
	rng := f.rng

	n := randomInt(rng, cfg.MinSeqLen, cfg.MaxSeqLen)
	text := sampleSlice(rng, f.reference, n, cfg.MaxSeqLen)
	text = foldCase(rng, text, cfg.FracUppercase)

	depth := randomFloat(rng, cfg.DepthMin, cfg.DepthMax)
	fontSize := fontSizeAt(cfg, depth)

	*s = Sequence{
		Text:        text,
		Depth:       depth,
		FontSize:    fontSize,
		Speed:       speedAt(cfg, depth),
		X:           randomFloat(rng, 0, f.width-float64(fontSize)),
		Y:           randomFloat(rng, -cfg.SpawnBand, 0),
		TotalHeight: float64(fontSize * n),
		Generation:  s.Generation + 1,
		field:       f,
	}
}

// Draw paints the column, advances it by Speed, and re-initializes it once
// it has scrolled fully past the bottom edge.
func (s *Sequence) Draw(dst Surface) {
	cfg := s.field.cfg

	dst.SetFillColor(cfg.FontColor)
	dst.SetFont(cfg.FontFamily, s.FontSize)

	i := 0
	for _, r := range s.Text {
		dst.FillText(string(r), s.X, s.Y-float64(i*s.FontSize))
		i++
	}

	s.Y += s.Speed

	if s.Y > s.TotalHeight+s.field.height {
		s.Init()
	}
}

// fontSizeAt shrinks the font as depth grows.
func fontSizeAt(cfg config.Config, depth float64) int {
	span := float64(cfg.MaxFontSize - cfg.MinFontSize)
	return cfg.MinFontSize + int(math.Floor(span/depth))
}

// speedAt slows the fall as depth grows.
func speedAt(cfg config.Config, depth float64) float64 {
	return cfg.MinSpeed + (cfg.MaxSpeed-cfg.MinSpeed)/depth
}
