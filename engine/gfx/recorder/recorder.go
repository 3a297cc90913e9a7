// Package recorder is a headless core.Renderer that remembers what it was
// asked to draw. Views and widgets are tested against it without a GL context.
package recorder

import (
	"errors"
	"image"
	"image/color"

	"github.com/hubastard/playground/engine/core"
	"github.com/hubastard/playground/engine/geom"
)

// Texture is a fake GPU texture.
type Texture struct {
	ID            int
	Width, Height int
	Color         color.NRGBA // for flat textures
	Image         image.Image // for image textures
	Deleted       int         // times DeleteTexture saw it
}

func (t *Texture) Size() (int, int) { return t.Width, t.Height }

// QuadCall is one RenderQuad invocation.
type QuadCall struct {
	Texture *Texture
	Bounds  geom.Bounds
	Options core.QuadOptions
}

type Renderer struct {
	Width, Height int
	Ratio         float32
	ClearColor    [4]float32
	Frames        int
	Quads         []QuadCall
	Textures      []*Texture
	// FailTextures makes texture creation return an error.
	FailTextures bool
	Closed       bool
}

var ErrTexture = errors.New("recorder: texture creation failed")

func New() *Renderer { return &Renderer{Ratio: 1} }

func (r *Renderer) Resize(w, h int, ratio float32) {
	r.Width, r.Height, r.Ratio = w, h, ratio
}

// Clear begins a frame and forgets the previous frame's quads.
func (r *Renderer) Clear(red, g, b, a float32) {
	r.ClearColor = [4]float32{red, g, b, a}
	r.Frames++
	r.Quads = r.Quads[:0]
}

func (r *Renderer) RenderQuad(tex core.Texture, b geom.Bounds, opts ...core.QuadOption) {
	t, _ := tex.(*Texture)
	r.Quads = append(r.Quads, QuadCall{Texture: t, Bounds: b, Options: core.ResolveQuadOptions(opts...)})
}

func (r *Renderer) CreateFlatTexture(c color.NRGBA) (core.Texture, error) {
	if r.FailTextures {
		return nil, ErrTexture
	}
	t := &Texture{ID: len(r.Textures) + 1, Width: 1, Height: 1, Color: c}
	r.Textures = append(r.Textures, t)
	return t, nil
}

func (r *Renderer) InitializeTexture(img image.Image) (core.Texture, error) {
	if r.FailTextures {
		return nil, ErrTexture
	}
	b := img.Bounds()
	t := &Texture{ID: len(r.Textures) + 1, Width: b.Dx(), Height: b.Dy(), Image: img}
	r.Textures = append(r.Textures, t)
	return t, nil
}

func (r *Renderer) DeleteTexture(tex core.Texture) {
	if t, ok := tex.(*Texture); ok && t != nil {
		t.Deleted++
	}
}

func (r *Renderer) Shutdown() { r.Closed = true }

// Live counts textures created and not yet deleted.
func (r *Renderer) Live() int {
	n := 0
	for _, t := range r.Textures {
		if t.Deleted == 0 {
			n++
		}
	}
	return n
}

// Reset drops recorded quads without counting a frame.
func (r *Renderer) Reset() { r.Quads = r.Quads[:0] }
