package ui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hubastard/playground/engine/colors"
	"github.com/hubastard/playground/engine/geom"
)

func TestSelectorStartsAtInitialBounds(t *testing.T) {
	ctx, _ := newTestContext(t)

	assert.Equal(t, geom.Bounds{}, NewSelector(ctx).Bounds())
	assert.Equal(t, geom.Rect(1, 2, 3, 4), NewSelector(ctx, geom.Rect(1, 2, 3, 4)).Bounds())
}

func TestSelectorPlaceThenRenderDrawsExactBounds(t *testing.T) {
	ctx, rec := newTestContext(t)
	s := NewSelector(ctx)
	s.Animate(geom.Rect(500, 500, 50, 50))
	s.Update(100 * time.Millisecond)

	target := geom.Rect(10, 20, 240, 80)
	s.Place(target)
	more := s.Render(17 * time.Millisecond)

	assert.False(t, more)
	require.Len(t, rec.Quads, 1)
	assert.Equal(t, target, rec.Quads[0].Bounds)
	assert.Equal(t, colors.SelectorHighlight, rec.Quads[0].Texture.Color)
}

func TestSelectorAnimationSettlesExactly(t *testing.T) {
	ctx, _ := newTestContext(t)
	from := geom.Rect(0, 0, 100, 50)
	to := geom.Bounds{X: 33.3, Y: -71.7, Z: 0.25, Width: 240, Height: 80}
	s := NewSelector(ctx, from)

	s.Animate(to)
	assert.True(t, s.Update(150*time.Millisecond))
	mid := s.Bounds()
	assert.InDelta(t, 16.65, mid.X, 1e-3)
	assert.InDelta(t, 170, mid.Width, 1e-3)

	for i := 0; i < 7; i++ {
		s.Update(23 * time.Millisecond)
	}

	assert.Equal(t, to, s.Bounds())
	assert.False(t, s.Animating())
	assert.False(t, s.Update(time.Second), "idle update is a no-op")
	assert.Equal(t, to, s.Bounds())
}

func TestSelectorAnimateRestartsFromCurrentBounds(t *testing.T) {
	ctx, _ := newTestContext(t)
	s := NewSelector(ctx, geom.Rect(0, 0, 10, 10))

	s.Animate(geom.Rect(100, 0, 10, 10))
	s.Update(150 * time.Millisecond)
	s.Animate(geom.Rect(0, 0, 10, 10))
	s.Update(150 * time.Millisecond)

	assert.InDelta(t, 25, s.Bounds().X, 1e-3)
}

func TestSelectorsShareOneTexture(t *testing.T) {
	ctx, rec := newTestContext(t)

	NewSelector(ctx).Render(0)
	NewSelector(ctx).Render(0)

	assert.Len(t, rec.Textures, 1)
	require.Len(t, rec.Quads, 2)
	assert.Same(t, rec.Quads[0].Texture, rec.Quads[1].Texture)

	ctx.Release()
	assert.Zero(t, rec.Live())
}

func TestSelectorSkipsDrawWhenTextureFails(t *testing.T) {
	ctx, rec := newTestContext(t)
	rec.FailTextures = true
	s := NewSelector(ctx)
	s.Animate(geom.Rect(10, 0, 1, 1))

	assert.True(t, s.Render(time.Millisecond))
	assert.Empty(t, rec.Quads)
}
