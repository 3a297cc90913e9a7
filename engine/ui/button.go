package ui

import (
	"fmt"
	"image"
	"time"

	"github.com/hubastard/playground/engine/core"
	"github.com/hubastard/playground/engine/geom"
	"github.com/hubastard/playground/engine/text"
)

// Button is a focusable picture. Its texture is uploaded on first render and
// released by Destroy.
type Button struct {
	ctx        *Context
	bounds     geom.Bounds
	image      image.Image
	texture    core.Texture
	failed     bool
	Label      string
	OnActivate func()
}

func NewButton(ctx *Context, b geom.Bounds, img image.Image) *Button {
	return &Button{ctx: ctx, bounds: b, image: img}
}

// NewLabelButton renders label onto a translucent box the size of b.
func NewLabelButton(ctx *Context, label string, b geom.Bounds, fontSize float32) (*Button, error) {
	img, err := text.RenderLabel(label, b.Width, b.Height, ctx.PixelRatio, text.DefaultLabelStyle(fontSize))
	if err != nil {
		return nil, fmt.Errorf("button %q: %w", label, err)
	}
	btn := NewButton(ctx, b, img)
	btn.Label = label
	return btn, nil
}

func (b *Button) Bounds() geom.Bounds { return b.bounds }

func (b *Button) Render(time.Duration) {
	if b.texture == nil {
		if b.image == nil || b.failed {
			return
		}
		tex, err := b.ctx.Renderer.InitializeTexture(b.image)
		if err != nil {
			b.ctx.Log.Error().Err(err).Str("button", b.Label).Msg("button texture")
			b.failed = true
			return
		}
		b.texture = tex
	}
	b.ctx.Renderer.RenderQuad(b.texture, b.bounds)
}

// Activate runs the button's action, if any.
func (b *Button) Activate() {
	if b.OnActivate != nil {
		b.OnActivate()
	}
}

func (b *Button) Destroy() {
	if b.texture != nil {
		b.ctx.Renderer.DeleteTexture(b.texture)
		b.texture = nil
	}
	b.image = nil
}
