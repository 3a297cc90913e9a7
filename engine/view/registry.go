// Package view keeps the named screens of the app and which one is showing.
package view

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

var (
	ErrInvalidView = errors.New("view: empty name or nil view")
	ErrUnknownView = errors.New("view: unknown view")
)

// View is a full-window screen. At most one view is open at a time.
type View interface {
	Open()
	Close()
	// Render draws a frame and reports whether another frame is needed.
	Render(delta time.Duration) bool
}

type Registry struct {
	log         zerolog.Logger
	views       map[string]View
	current     View
	currentName string
}

func NewRegistry(log zerolog.Logger) *Registry {
	return &Registry{log: log, views: make(map[string]View)}
}

// Register adds or replaces the view stored under name.
func (r *Registry) Register(name string, v View) error {
	if name == "" || v == nil {
		return fmt.Errorf("register %q: %w", name, ErrInvalidView)
	}
	r.views[name] = v
	return nil
}

// MustRegister is Register for startup wiring; it panics on error.
func (r *Registry) MustRegister(name string, v View) {
	if err := r.Register(name, v); err != nil {
		panic(err)
	}
}

func (r *Registry) Get(name string) (View, bool) {
	v, ok := r.views[name]
	return v, ok
}

// Set closes the current view, then opens the one registered under name.
func (r *Registry) Set(name string) error {
	next, ok := r.views[name]
	if !ok {
		return fmt.Errorf("set %q: %w", name, ErrUnknownView)
	}
	prev := r.currentName
	if r.current != nil {
		r.current.Close()
	}
	r.current, r.currentName = next, name
	next.Open()
	r.log.Info().Str("from", prev).Str("to", name).Msg("view switched")
	return nil
}

// Clear closes the current view and leaves none showing.
func (r *Registry) Clear() {
	if r.current == nil {
		return
	}
	r.current.Close()
	r.current, r.currentName = nil, ""
}

func (r *Registry) Current() string { return r.currentName }

// Render draws the current view. With no view showing it does nothing.
func (r *Registry) Render(delta time.Duration) bool {
	if r.current == nil {
		return false
	}
	return r.current.Render(delta)
}
