// Package colors holds the palette and colour parsing used by the app.
package colors

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Color is RGBA in [0,1], the form GL clear and tint calls take.
type Color [4]float32

var (
	White    = Color{1, 1, 1, 1}
	Black    = Color{0, 0, 0, 1}
	Gray     = Color{0.5, 0.5, 0.5, 1}
	DarkGray = Color{0.08, 0.10, 0.12, 1}
)

// Texture colours.
var (
	SelectorHighlight = color.NRGBA{R: 107, G: 68, B: 159, A: 150}
	LabelBackground   = color.NRGBA{R: 100, G: 100, B: 100, A: 128}
	LabelText         = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

func (c Color) WithAlpha(a float32) Color {
	c[3] = a
	return c
}

// NRGBA converts c to 8-bit straight alpha, clamping out of range channels.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: to8(c[0]), G: to8(c[1]), B: to8(c[2]), A: to8(c[3])}
}

// Hex formats c as #rrggbbaa.
func (c Color) Hex() string {
	n := c.NRGBA()
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}

func FromNRGBA(n color.NRGBA) Color {
	return Color{float32(n.R) / 255, float32(n.G) / 255, float32(n.B) / 255, float32(n.A) / 255}
}

// Parse reads #rrggbb or #rrggbbaa. The leading # is optional.
func Parse(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return Color{}, fmt.Errorf("parse color %q: want 6 or 8 hex digits", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	return FromNRGBA(color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}), nil
}

func to8(v float32) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return uint8(v*255 + 0.5)
}
