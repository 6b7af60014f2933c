// Package config loads colorwheel settings from an optional YAML file and
// the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	envConfig  = "COLORWHEEL_CONFIG"
	envOutput  = "COLORWHEEL_OUTPUT"
	envColor   = "COLORWHEEL_COLOR"
	envNoColor = "NO_COLOR"

	appDir   = "colorwheel"
	fileName = "config.yaml"
)

// ErrInvalidConfig reports an unreadable config file or a setting outside its
// allowed values.
var ErrInvalidConfig = errors.New("invalid config")

// Output formats.
const (
	OutputText   = "text"
	OutputJSON   = "json"
	OutputSwatch = "swatch"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config is the resolved set of settings.
type Config struct {
	Output string `yaml:"output"`
	Color  string `yaml:"color"`
	// Kind is the harmony selector used when none is given on the command line.
	Kind string `yaml:"kind"`

	// Path is the file the settings were read from, empty if none.
	Path string `yaml:"-"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{Output: OutputText, Color: ColorAuto}
}

// Load resolves settings from defaults, then the config file, then the
// environment. path overrides the file location; when empty, COLORWHEEL_CONFIG
// and then the user config directory are tried. Only an explicitly named file
// has to exist.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := true
	if path == "" {
		path = os.Getenv(envConfig)
	}
	if path == "" {
		explicit = false
		path = defaultPath()
	}

	if path != "" {
		b, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(b, &cfg); err != nil {
				return Config{}, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
			}
			cfg.Path = path
		case errors.Is(err, os.ErrNotExist) && !explicit:
		default:
			return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
	}

	applyEnv(&cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func defaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil || dir == "" {
		return ""
	}
	return filepath.Join(dir, appDir, fileName)
}

func applyEnv(cfg *Config) {
	if v := os.Getenv(envOutput); v != "" {
		cfg.Output = v
	}
	if v := os.Getenv(envColor); v != "" {
		cfg.Color = v
	}
	// https://no-color.org: any non-empty value disables color
	if os.Getenv(envNoColor) != "" {
		cfg.Color = ColorNever
	}
}

// Validate normalizes case and rejects unknown output formats and color modes.
func (c *Config) Validate() error {
	c.Output = strings.ToLower(strings.TrimSpace(c.Output))
	c.Color = strings.ToLower(strings.TrimSpace(c.Color))
	c.Kind = strings.TrimSpace(c.Kind)
	if c.Output == "" {
		c.Output = OutputText
	}
	if c.Color == "" {
		c.Color = ColorAuto
	}
	switch c.Output {
	case OutputText, OutputJSON, OutputSwatch:
	default:
		return fmt.Errorf("%w: output %q (want text, json or swatch)", ErrInvalidConfig, c.Output)
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("%w: color %q (want auto, always or never)", ErrInvalidConfig, c.Color)
	}
	return nil
}
