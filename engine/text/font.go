// Package text rasterises short labels into images that become textures.
package text

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Font is a sized face plus its vertical metrics in pixels.
type Font struct {
	SizePx                   float32
	Ascent, Descent, LineGap float32
	Face                     font.Face
}

func (f *Font) Close() {
	if f != nil && f.Face != nil {
		_ = f.Face.Close()
		f.Face = nil
	}
}

// LoadTTF parses TrueType/OpenType data and builds a face at sizePx.
func LoadTTF(ttfData []byte, sizePx float32) (*Font, error) {
	ft, err := opentype.Parse(ttfData)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}

	face, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size: float64(sizePx), DPI: 72, Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}

	// Metrics in pixels
	m := face.Metrics()
	ascent := float32(m.Ascent.Round())
	descent := float32(-m.Descent.Round())
	lineGap := float32(m.Height.Round()) - ascent + descent

	return &Font{
		SizePx: sizePx,
		Ascent: ascent, Descent: descent, LineGap: lineGap,
		Face: face,
	}, nil
}

// Default loads the bundled Go Regular face.
func Default(sizePx float32) (*Font, error) {
	return LoadTTF(goregular.TTF, sizePx)
}

func (f *Font) LineHeight() float32 { return f.Ascent - f.Descent + f.LineGap }
