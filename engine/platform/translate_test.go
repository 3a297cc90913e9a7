package platform

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"

	"github.com/hubastard/playground/engine/input"
)

func TestTranslateKey(t *testing.T) {
	tests := []struct {
		in   glfw.Key
		want input.Key
	}{
		{glfw.KeyUp, input.KeyUp},
		{glfw.KeyKPEnter, input.KeyEnter},
		{glfw.KeyEnter, input.KeyEnter},
		{glfw.KeyP, input.KeyP},
		{glfw.KeyD, input.KeyD},
		{glfw.KeyF1, input.KeyUnknown},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, translateKey(tt.in), "glfw key %d", tt.in)
	}
}

func TestTranslateButton(t *testing.T) {
	b, ok := translateButton(glfw.MouseButtonLeft)
	assert.True(t, ok)
	assert.Equal(t, input.MouseLeft, b)

	_, ok = translateButton(glfw.MouseButton4)
	assert.False(t, ok)
}

func TestTranslateMods(t *testing.T) {
	assert.Equal(t, input.ModShift|input.ModSuper, translateMods(glfw.ModShift|glfw.ModSuper))
	assert.Equal(t, input.ModNone, translateMods(0))
}
