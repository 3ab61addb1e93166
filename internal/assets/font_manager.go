package assets

import (
	"fmt"
	"log"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// FontManager управляет загрузкой и кэшированием шрифтов.
// One parsed TTF, one face per requested size.
type FontManager struct {
	font  *opentype.Font
	faces map[float64]font.Face
}

// NewFontManager parses the embedded Go Regular font.
func NewFontManager() (*FontManager, error) {
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	return &FontManager{
		font:  tt,
		faces: make(map[float64]font.Face),
	}, nil
}

// Face returns a cached face of the given size in points at 72 DPI.
func (m *FontManager) Face(size float64) font.Face {
	if f, ok := m.faces[size]; ok {
		return f
	}
	face, err := opentype.NewFace(m.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		// Only invalid sizes fail here; callers pass positive constants.
		log.Printf("WARNING: failed to create %.1fpt face: %v", size, err)
		return nil
	}
	m.faces[size] = face
	return face
}

// Close releases every cached face.
func (m *FontManager) Close() {
	for size, f := range m.faces {
		f.Close()
		delete(m.faces, size)
	}
}
