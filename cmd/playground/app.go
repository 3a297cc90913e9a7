package main

import (
	"github.com/rs/zerolog"

	"github.com/hubastard/playground/engine/config"
	"github.com/hubastard/playground/engine/core"
	"github.com/hubastard/playground/engine/event"
	"github.com/hubastard/playground/engine/input"
	"github.com/hubastard/playground/engine/logging"
	"github.com/hubastard/playground/engine/ui"
)

// App registers the menu and demo views and keeps them in step with the
// config file.
type App struct {
	config *config.Manager
	log    zerolog.Logger

	ui   *ui.Context
	menu *Menu
	demo *Demo
}

func NewApp(cfg *config.Manager, log zerolog.Logger) *App {
	return &App{config: cfg, log: log}
}

func (a *App) OnStart(e *core.Engine) error {
	cfg := a.config.Get()

	a.ui = ui.NewContext(e.Renderer, e.Input, logging.Component(a.log, "ui"), e.PixelRatio())
	a.menu = NewMenu(a.ui, e.Views, e.Size, cfg.Menu, logging.Component(a.log, "menu"))
	a.demo = NewDemo(e.Renderer, e.Input, e.Views, e.Size, cfg.Demo.MoveSpeed, nil, logging.Component(a.log, "demo"))
	e.Views.MustRegister(MenuView, a.menu)
	e.Views.MustRegister(DemoView, a.demo)

	event.Listen(e.Bus, input.OnResize, a, func(input.Resize) {
		a.ui.PixelRatio = e.PixelRatio()
	})

	// The watcher calls back on its own goroutine; hop onto the main loop.
	a.config.OnConfigChange(func(c *config.Config) {
		e.Tasks.Post("config", func() { a.apply(e, c) })
	})
	if a.config.File() != "" {
		if err := a.config.Watch(); err != nil {
			a.log.Warn().Err(err).Msg("config watch")
		}
	}

	return e.Views.Set(MenuView)
}

func (a *App) OnShutdown(e *core.Engine) {
	event.Unlisten(e.Bus, input.OnResize, a)
	a.ui.Release()
}

// apply pushes a reloaded configuration into the running views.
func (a *App) apply(e *core.Engine, c *config.Config) {
	if level, err := logging.ParseLevel(c.Logging.Level); err == nil {
		logging.SetLevel(level)
	}
	e.SetClearColor(c.ClearColor())
	a.menu.SetConfig(c.Menu)
	a.demo.SetMoveSpeed(c.Demo.MoveSpeed)
	a.log.Debug().Msg("config applied")
}
