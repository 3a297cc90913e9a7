package config

import (
	"os"
	"path/filepath"
)

const (
	appName   = "playground"
	envPrefix = "PLAYGROUND"
)

// GetConfigDir returns $XDG_CONFIG_HOME/playground (default: ~/.config/playground).
func GetConfigDir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configHome = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configHome, appName), nil
}
