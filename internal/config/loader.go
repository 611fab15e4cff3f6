package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables that override file settings.
const (
	EnvSpeed = "SLIDEMAZE_SPEED"
	EnvFPS   = "SLIDEMAZE_FPS"
	EnvSound = "SLIDEMAZE_SOUND"
)

// Load loads the configuration.
// Search order: customPath -> ~/.slidemaze/config.yaml -> ./configs/slidemaze.yaml -> embedded default.
// Keys missing from a file keep their default value. Environment overrides
// are applied on top and the result is validated; notes lists what was clamped.
func Load(customPath string) (cfg Config, notes []string, err error) {
	cfg, err = loadFile(customPath)
	if err != nil {
		return cfg, nil, err
	}

	notes = ApplyEnv(&cfg)
	notes = append(notes, cfg.Validate()...)
	return cfg, notes, nil
}

func loadFile(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Default(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return Default(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if path := userConfigPath(); path != "" {
		if data, err := os.ReadFile(path); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "slidemaze.yaml")); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultYAML)
	if err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse decodes YAML over the hardcoded defaults.
func parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// userConfigPath returns the path to the user config file, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".slidemaze", "config.yaml")
}

// ApplyEnv loads a .env file from the working directory if there is one and
// applies SLIDEMAZE_* variables to cfg. Existing environment variables win
// over the .env file. Unparseable values are skipped and reported.
func ApplyEnv(cfg *Config) []string {
	_ = godotenv.Load() // .env is optional
	return applyEnv(cfg, os.LookupEnv)
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) []string {
	var notes []string

	if v, ok := lookup(EnvSpeed); ok && v != "" {
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			cfg.Player.Speed = f
		} else {
			notes = append(notes, fmt.Sprintf("%s=%q is not a number, ignored", EnvSpeed, v))
		}
	}

	if v, ok := lookup(EnvFPS); ok && v != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			cfg.Render.FPS = n
		} else {
			notes = append(notes, fmt.Sprintf("%s=%q is not an integer, ignored", EnvFPS, v))
		}
	}

	if v, ok := lookup(EnvSound); ok && v != "" {
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			cfg.Audio.Enabled = b
		} else {
			notes = append(notes, fmt.Sprintf("%s=%q is not a boolean, ignored", EnvSound, v))
		}
	}

	return notes
}
