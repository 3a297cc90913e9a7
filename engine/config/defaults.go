package config

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Title:      "Playground",
			Width:      1280,
			Height:     720,
			VSync:      true,
			ClearColor: "#141a1f",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Menu: MenuConfig{
			ButtonWidth:  240,
			ButtonHeight: 80,
			FontSize:     50,
			Spacing:      100,
		},
		Demo: DemoConfig{
			MoveSpeed: 0.3,
		},
	}
}
