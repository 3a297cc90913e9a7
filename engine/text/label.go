package text

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/hubastard/playground/engine/colors"
)

// MeasureText returns the advance width of a single line and the font's line height.
func MeasureText(f *Font, s string) (width, height float32) {
	var prev rune = -1
	for _, r := range s {
		adv, ok := f.Face.GlyphAdvance(r)
		if !ok {
			prev = r
			continue
		}
		if prev >= 0 {
			width += float32(f.Face.Kern(prev, r)) / 64.0
		}
		width += float32(adv) / 64.0
		prev = r
	}
	return width, f.LineHeight()
}

// DrawText draws s with its baseline starting at (x, y), y growing downward.
func DrawText(dst draw.Image, f *Font, x, y float32, s string, c color.Color) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: f.Face,
		Dot:  fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)},
	}
	d.DrawString(s)
}

// LabelStyle describes a button label.
type LabelStyle struct {
	FontSize   float32 // in window units
	Background color.NRGBA
	Foreground color.NRGBA
}

func DefaultLabelStyle(fontSize float32) LabelStyle {
	return LabelStyle{FontSize: fontSize, Background: colors.LabelBackground, Foreground: colors.LabelText}
}

// RenderLabel paints s centred on a w×h window-unit box filled with the
// background colour. The image is ratio times larger so it stays sharp on
// high density displays.
func RenderLabel(s string, w, h, ratio float32, style LabelStyle) (*image.RGBA, error) {
	if ratio <= 0 {
		ratio = 1
	}
	pw, ph := int(w*ratio+0.5), int(h*ratio+0.5)
	if pw < 1 || ph < 1 {
		return nil, fmt.Errorf("render label %q: empty size %dx%d", s, pw, ph)
	}

	f, err := Default(style.FontSize * ratio)
	if err != nil {
		return nil, fmt.Errorf("render label %q: %w", s, err)
	}
	defer f.Close()

	dst := image.NewRGBA(image.Rect(0, 0, pw, ph))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(style.Background), image.Point{}, draw.Src)

	tw, _ := MeasureText(f, s)
	// Centre the ascent/descent box on the middle row.
	x := (float32(pw) - tw) / 2
	y := float32(ph)/2 + (f.Ascent+f.Descent)/2
	DrawText(dst, f, x, y, s, style.Foreground)
	return dst, nil
}
