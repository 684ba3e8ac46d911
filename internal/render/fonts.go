package render

import (
	"bytes"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// Built-in font families. Any other family name is read as a font file path.
const (
	FamilyMono    = "mono"
	FamilyRegular = "regular"
)

// LoadFontSource resolves a family name to a face source.
func LoadFontSource(family string) (*text.GoTextFaceSource, error) {
	var data []byte
	switch family {
	case FamilyMono:
		data = gomono.TTF
	case FamilyRegular:
		data = goregular.TTF
	default:
		b, err := os.ReadFile(family)
		if err != nil {
			return nil, fmt.Errorf("failed to read font %s: %w", family, err)
		}
		data = b
	}

	source, err := text.NewGoTextFaceSource(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create font source %s: %w", family, err)
	}
	return source, nil
}
