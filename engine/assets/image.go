package assets

import (
	"image"
	"image/draw"
)

// Pixels returns width, height and tightly packed, non-premultiplied RGBA8
// pixels (row-major, top-left origin), ready for a texture upload.
func Pixels(img image.Image) (w, h int, rgba []byte) {
	m := ToNRGBA(img)
	w, h = m.Bounds().Dx(), m.Bounds().Dy()
	if m.Stride == w*4 {
		return w, h, m.Pix
	}

	// Repack in tight rows (stride == 4*w)
	out := make([]byte, w*h*4)
	for y := 0; y < h; y++ {
		copy(out[y*w*4:(y+1)*w*4], m.Pix[y*m.Stride:y*m.Stride+w*4])
	}
	return w, h, out
}

// ToNRGBA converts img to straight-alpha RGBA anchored at the origin.
func ToNRGBA(img image.Image) *image.NRGBA {
	if m, ok := img.(*image.NRGBA); ok && m.Rect.Min == (image.Point{}) {
		return m
	}
	dst := image.NewNRGBA(image.Rect(0, 0, img.Bounds().Dx(), img.Bounds().Dy()))
	draw.Draw(dst, dst.Bounds(), img, img.Bounds().Min, draw.Src)
	return dst
}
