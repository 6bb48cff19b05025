// Package config loads the optional .unit.yaml runner configuration.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is looked up in the working directory of the test binary.
const ConfigFileName = ".unit.yaml"

// DefaultTheme is the theme used when the file names none.
const DefaultTheme = "default"

// AppConfig holds the runner settings. Zero values are the defaults: colored
// default theme, both fault-interception channels enabled.
type AppConfig struct {
	// Theme selects the console theme by name ("default", "plain").
	Theme string `yaml:"theme"`
	// Monochrome forces unstyled output even on a terminal.
	Monochrome bool `yaml:"monochrome"`
	// DisableRecovery lets panics escape test bodies (debugger mode).
	DisableRecovery bool `yaml:"disable_recovery"`
	// DisableSignals skips OS signal interception.
	DisableSignals bool `yaml:"disable_signals"`
}

// Load reads ConfigFileName from the working directory. Loading never fails
// hard: a missing, unreadable, or malformed file falls back to defaults,
// with a warning on stderr for everything but plain absence.
func Load() *AppConfig {
	return LoadFrom(ConfigFileName)
}

// LoadFrom reads the configuration from an explicit path.
func LoadFrom(path string) *AppConfig {
	cfg := defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Warning: error reading config file %s: %v. Using defaults.\n", path, err)
		}
		return cfg
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: error unmarshalling config file %s: %v. Using defaults.\n", path, err)
		return defaults()
	}

	if cfg.Theme == "" {
		cfg.Theme = DefaultTheme
	}
	return cfg
}

func defaults() *AppConfig {
	return &AppConfig{Theme: DefaultTheme}
}
