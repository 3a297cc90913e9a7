// Package ui holds the focus-navigation widgets: focusable items, the animated
// selector that highlights the focused one, and the list that moves focus
// between them.
package ui

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/hubastard/playground/engine/colors"
	"github.com/hubastard/playground/engine/core"
	"github.com/hubastard/playground/engine/input"
)

// Context carries the services widgets draw and listen with, plus textures
// shared between widget instances.
type Context struct {
	Renderer   core.Renderer
	Input      *input.Devices
	Log        zerolog.Logger
	PixelRatio float32

	selectorTex core.Texture
}

func NewContext(r core.Renderer, in *input.Devices, log zerolog.Logger, pixelRatio float32) *Context {
	if pixelRatio <= 0 {
		pixelRatio = 1
	}
	return &Context{Renderer: r, Input: in, Log: log, PixelRatio: pixelRatio}
}

// SelectorTexture returns the highlight texture, creating it on first use.
// Every selector built on this context shares it.
func (c *Context) SelectorTexture() (core.Texture, error) {
	if c.selectorTex != nil {
		return c.selectorTex, nil
	}
	tex, err := c.Renderer.CreateFlatTexture(colors.SelectorHighlight)
	if err != nil {
		return nil, fmt.Errorf("selector texture: %w", err)
	}
	c.selectorTex = tex
	return tex, nil
}

// Release deletes the shared textures. Widgets still alive recreate them on
// their next render.
func (c *Context) Release() {
	if c.selectorTex != nil {
		c.Renderer.DeleteTexture(c.selectorTex)
		c.selectorTex = nil
	}
}
