package render

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type faceKey struct {
	family string
	size   int
}

// EbitenSurface paints onto the ebiten screen image handed to Game.Draw.
// Faces are created lazily and kept for the life of the surface.
type EbitenSurface struct {
	dst           *ebiten.Image
	width, height int

	fill color.Color
	face *text.GoTextFace

	defaultFamily string
	sources       map[string]*text.GoTextFaceSource
	faces         map[faceKey]*text.GoTextFace
}

// NewEbitenSurface loads the default font family up front so a bad family
// fails at startup rather than mid-frame.
func NewEbitenSurface(width, height int, family string) (*EbitenSurface, error) {
	source, err := LoadFontSource(family)
	if err != nil {
		return nil, err
	}

	return &EbitenSurface{
		width:         width,
		height:        height,
		fill:          color.White,
		defaultFamily: family,
		sources:       map[string]*text.GoTextFaceSource{family: source},
		faces:         map[faceKey]*text.GoTextFace{},
	}, nil
}

// Bind points the surface at the image for the current frame.
func (s *EbitenSurface) Bind(dst *ebiten.Image) {
	s.dst = dst
}

func (s *EbitenSurface) Size() (int, int) {
	return s.width, s.height
}

func (s *EbitenSurface) SetFillColor(c color.Color) {
	s.fill = c
}

func (s *EbitenSurface) FillRect(x, y, width, height float64) {
	if s.dst == nil {
		return
	}
	vector.DrawFilledRect(s.dst, float32(x), float32(y), float32(width), float32(height), s.fill, false)
}

func (s *EbitenSurface) SetFont(family string, size int) {
	s.face = s.faceFor(family, size)
}

// FillText matches canvas fillText: (x, y) is the start of the baseline.
func (s *EbitenSurface) FillText(str string, x, y float64) {
	if s.dst == nil || s.face == nil {
		return
	}
	m := s.face.Metrics()

	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y-m.HAscent)
	op.ColorScale.ScaleWithColor(s.fill)
	text.Draw(s.dst, str, s.face, op)
}

func (s *EbitenSurface) faceFor(family string, size int) *text.GoTextFace {
	key := faceKey{family: family, size: size}
	if face, ok := s.faces[key]; ok {
		return face
	}

	source, ok := s.sources[family]
	if !ok {
		loaded, err := LoadFontSource(family)
		if err != nil {
			log.Printf("[EbitenSurface] Warning: %v, using %s", err, s.defaultFamily)
			loaded = s.sources[s.defaultFamily]
		}
		s.sources[family] = loaded
		source = loaded
	}

	face := &text.GoTextFace{
		Source:    source,
		Size:      float64(size),
		Direction: text.DirectionLeftToRight,
	}
	s.faces[key] = face
	return face
}
