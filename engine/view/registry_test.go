package view

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeView struct {
	name  string
	calls *[]string
	more  bool
	delta time.Duration
}

func (v *fakeView) Open()  { *v.calls = append(*v.calls, "open "+v.name) }
func (v *fakeView) Close() { *v.calls = append(*v.calls, "close "+v.name) }
func (v *fakeView) Render(delta time.Duration) bool {
	v.delta = delta
	return v.more
}

func TestRegisterRejectsInvalidViews(t *testing.T) {
	r := NewRegistry(zerolog.Nop())
	var calls []string

	assert.ErrorIs(t, r.Register("", &fakeView{calls: &calls}), ErrInvalidView)
	assert.ErrorIs(t, r.Register("menu", nil), ErrInvalidView)
	assert.Panics(t, func() { r.MustRegister("", nil) })
}

func TestSetClosesPreviousBeforeOpening(t *testing.T) {
	r := NewRegistry(zerolog.Nop())
	var calls []string
	r.MustRegister("menu", &fakeView{name: "menu", calls: &calls})
	r.MustRegister("demo", &fakeView{name: "demo", calls: &calls})

	require.NoError(t, r.Set("menu"))
	require.NoError(t, r.Set("demo"))

	assert.Equal(t, []string{"open menu", "close menu", "open demo"}, calls)
	assert.Equal(t, "demo", r.Current())
}

func TestSetUnknownKeepsCurrent(t *testing.T) {
	r := NewRegistry(zerolog.Nop())
	var calls []string
	r.MustRegister("menu", &fakeView{name: "menu", calls: &calls})
	require.NoError(t, r.Set("menu"))

	err := r.Set("missing")

	assert.ErrorIs(t, err, ErrUnknownView)
	assert.Equal(t, "menu", r.Current())
	assert.Equal(t, []string{"open menu"}, calls)
}

func TestRenderForwardsToCurrent(t *testing.T) {
	r := NewRegistry(zerolog.Nop())
	var calls []string
	demo := &fakeView{name: "demo", calls: &calls, more: true}
	r.MustRegister("demo", demo)

	assert.False(t, r.Render(time.Millisecond), "no view showing")

	require.NoError(t, r.Set("demo"))
	assert.True(t, r.Render(16*time.Millisecond))
	assert.Equal(t, 16*time.Millisecond, demo.delta)

	r.Clear()
	assert.False(t, r.Render(time.Millisecond))
	assert.Equal(t, []string{"open demo", "close demo"}, calls)
}

func TestGet(t *testing.T) {
	r := NewRegistry(zerolog.Nop())
	var calls []string
	menu := &fakeView{name: "menu", calls: &calls}
	r.MustRegister("menu", menu)

	got, ok := r.Get("menu")
	assert.True(t, ok)
	assert.Same(t, menu, got)

	_, ok = r.Get("demo")
	assert.False(t, ok)
}
