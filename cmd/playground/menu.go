package main

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/hubastard/playground/engine/config"
	"github.com/hubastard/playground/engine/event"
	"github.com/hubastard/playground/engine/geom"
	"github.com/hubastard/playground/engine/input"
	"github.com/hubastard/playground/engine/ui"
)

// View names registered by the app.
const (
	MenuView = "menu"
	DemoView = "demo"
)

// navigator switches the current view.
type navigator interface {
	Set(name string) error
}

// Menu is the start screen: a vertical list of label buttons.
type Menu struct {
	ui    *ui.Context
	views navigator
	size  func() (int, int)
	cfg   config.MenuConfig
	log   zerolog.Logger

	list *ui.NavList
}

func NewMenu(ctx *ui.Context, views navigator, size func() (int, int), cfg config.MenuConfig, log zerolog.Logger) *Menu {
	return &Menu{ui: ctx, views: views, size: size, cfg: cfg, log: log}
}

// SetConfig takes effect the next time the menu opens.
func (m *Menu) SetConfig(cfg config.MenuConfig) { m.cfg = cfg }

func (m *Menu) Open() {
	if m.list != nil {
		return
	}
	w, h := m.size()
	stack := ui.Stack{
		Axis:   ui.Vertical,
		Origin: geom.Point{X: float32(w) / 2, Y: float32(h) / 2},
		Width:  m.cfg.ButtonWidth,
		Height: m.cfg.ButtonHeight,
		Step:   m.cfg.Spacing,
	}
	entries := []struct {
		label  string
		action func()
	}{
		{"Demo", m.openDemo},
		{"Settings", m.openSettings},
	}

	m.list = ui.NewNavList(m.ui, activate)
	for i, b := range stack.Place(len(entries)) {
		btn, err := ui.NewLabelButton(m.ui, entries[i].label, b, m.cfg.FontSize)
		if err != nil {
			m.log.Error().Err(err).Msg("menu button")
			continue
		}
		btn.OnActivate = entries[i].action
		m.list.Add(btn)
	}
	m.list.Enable()
	event.Listen(m.ui.Input.Bus, input.OnResize, m, m.resize)
	m.log.Debug().Int("buttons", len(m.list.Items())).Msg("menu opened")
}

func (m *Menu) Close() {
	if m.list == nil {
		return
	}
	event.Unlisten(m.ui.Input.Bus, input.OnResize, m)
	m.list.Destroy()
	m.list = nil
}

func (m *Menu) Render(delta time.Duration) bool {
	if m.list == nil {
		return false
	}
	return m.list.Render(delta)
}

// List exposes the open menu's buttons, or nil while closed.
func (m *Menu) List() *ui.NavList { return m.list }

// resize lays the buttons out again around the new centre.
func (m *Menu) resize(input.Resize) {
	m.Close()
	m.Open()
}

func (m *Menu) openDemo() {
	if err := m.views.Set(DemoView); err != nil {
		m.log.Error().Err(err).Msg("open demo")
	}
}

func (m *Menu) openSettings() {
	m.log.Info().Msg("settings not implemented")
}

func activate(f ui.Focusable) {
	if b, ok := f.(*ui.Button); ok {
		b.Activate()
	}
}
