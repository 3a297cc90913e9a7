// Command playground opens a window with a keyboard-navigable menu and a
// spinning-rectangle demo.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hubastard/playground/engine/config"
	"github.com/hubastard/playground/engine/core"
	glbackend "github.com/hubastard/playground/engine/gfx/gl"
	"github.com/hubastard/playground/engine/logging"
	"github.com/hubastard/playground/engine/platform"
)

// Set by the linker.
var (
	version   = "dev"
	commit    = "none"
	buildDate = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:          "playground",
		Short:        "Menu and rectangle playground",
		Long:         "Opens a window with a keyboard-navigable menu. The demo scatters spinning rectangles you can steer with the arrow keys, mouse or touch.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, configFile)
		},
	}

	cmd.Flags().StringVarP(&configFile, "config", "c", "", "config file (default $XDG_CONFIG_HOME/playground/playground.yaml)")
	cmd.Flags().String("log-level", "info", "log level (trace, debug, info, warn, error)")
	cmd.Flags().Int("width", 1280, "window width")
	cmd.Flags().Int("height", 720, "window height")
	cmd.Flags().Bool("vsync", true, "wait for vertical sync")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newConfigCmd())
	return cmd
}

// flagKeys maps command-line flags onto config keys.
var flagKeys = map[string]string{
	"log-level": "logging.level",
	"width":     "window.width",
	"height":    "window.height",
	"vsync":     "window.vsync",
}

func bindFlags(cmd *cobra.Command, v *viper.Viper) error {
	for flag, key := range flagKeys {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
			return fmt.Errorf("bind --%s: %w", flag, err)
		}
	}
	return nil
}

func run(cmd *cobra.Command, configFile string) error {
	boot := logging.New(logging.DefaultConfig())

	mgr, err := config.NewManager(configFile, logging.Component(boot, "config"))
	if err != nil {
		return err
	}
	if err := bindFlags(cmd, mgr.Viper()); err != nil {
		return err
	}
	if err := mgr.Load(); err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg := mgr.Get()

	level, err := logging.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return err
	}
	log := logging.New(logging.Config{Level: level, Format: cfg.Logging.Format, TimeFormat: time.Kitchen})
	if file := mgr.File(); file != "" {
		log.Info().Str("file", file).Msg("config loaded")
	}

	coreCfg := core.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		VSync:      cfg.Window.VSync,
		ClearColor: cfg.ClearColor(),
	}
	newWindow := func(c core.Config) (core.Window, error) {
		win, err := platform.NewGLFWWindow(c, logging.Component(log, "platform"))
		if err != nil {
			return nil, err
		}
		return win, nil
	}
	newRenderer := func(win core.Window, c core.Config) (core.Renderer, error) {
		r, err := glbackend.NewQuadRenderer(win, c, logging.Component(log, "renderer"))
		if err != nil {
			return nil, err
		}
		return r, nil
	}

	return core.Run(NewApp(mgr, log), coreCfg, newWindow, newRenderer, log)
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#6b449f"))
	keyStyle   = lipgloss.NewStyle().Faint(true).Width(8)
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, titleStyle.Render("playground "+version))
			fmt.Fprintln(out, keyStyle.Render("commit")+commit)
			fmt.Fprintln(out, keyStyle.Render("built")+buildDate)
		},
	}
}

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect configuration",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "schema",
		Short: "Print the JSON schema of the config file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := config.SchemaJSON()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return err
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the directory searched for playground.yaml",
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir, err := config.GetConfigDir()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), dir)
			return err
		},
	})
	return cmd
}
