package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hubastard/playground/engine/colors"
	"github.com/hubastard/playground/engine/logging"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Validate checks every value the app depends on and reports all problems at once.
func Validate(config *Config) error {
	var validationErrors []string

	if config.Window.Width < 1 || config.Window.Height < 1 {
		validationErrors = append(validationErrors, "window.width and window.height must be positive")
	}
	if _, err := colors.Parse(config.Window.ClearColor); err != nil {
		validationErrors = append(validationErrors, fmt.Sprintf("window.clear_color: %v", err))
	}

	if _, err := logging.ParseLevel(config.Logging.Level); err != nil {
		validationErrors = append(validationErrors, fmt.Sprintf("logging.level: %v", err))
	}
	switch config.Logging.Format {
	case "console", "json":
		// Valid
	default:
		validationErrors = append(validationErrors, fmt.Sprintf("logging.format must be one of: console, json (got: %s)", config.Logging.Format))
	}

	if config.Menu.ButtonWidth <= 0 || config.Menu.ButtonHeight <= 0 {
		validationErrors = append(validationErrors, "menu.button_width and menu.button_height must be positive")
	}
	if config.Menu.FontSize <= 0 {
		validationErrors = append(validationErrors, "menu.font_size must be positive")
	}
	if config.Menu.Spacing <= 0 {
		validationErrors = append(validationErrors, "menu.spacing must be positive")
	}
	if config.Demo.MoveSpeed < 0 {
		validationErrors = append(validationErrors, "demo.move_speed must be non-negative")
	}

	if len(validationErrors) > 0 {
		return fmt.Errorf("%w:\n  - %s", ErrInvalidConfig, strings.Join(validationErrors, "\n  - "))
	}
	return nil
}

// ClearColor parses the window clear colour. Validate has already vetted it.
func (c *Config) ClearColor() colors.Color {
	col, err := colors.Parse(c.Window.ClearColor)
	if err != nil {
		return colors.DarkGray
	}
	return col
}
