// Package config loads and saves nucleus.toml (or nucleus.yaml).
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// File names searched by Load, in order.
const (
	FileTOML = "nucleus.toml"
	FileYAML = "nucleus.yaml"
)

// Config represents the nucleus configuration file.
type Config struct {
	Surface   SurfaceConfig   `toml:"surface" yaml:"surface"`
	UI        UIConfig        `toml:"ui" yaml:"ui"`
	Boot      BootConfig      `toml:"boot" yaml:"boot"`
	Resources ResourcesConfig `toml:"resources" yaml:"resources"`
}

// SurfaceConfig describes the rendering target.
type SurfaceConfig struct {
	Width  float32 `toml:"width" yaml:"width"`
	Height float32 `toml:"height" yaml:"height"`
	DPI    float32 `toml:"dpi" yaml:"dpi"`
}

type UIConfig struct {
	TargetFPS int `toml:"target_fps" yaml:"target_fps"`
	// How long the boot logo stays up, in milliseconds
	LogoDurationMS int `toml:"logo_duration_ms" yaml:"logo_duration_ms"`
	// Theme file path, relative to the config file
	Theme string `toml:"theme,omitempty" yaml:"theme,omitempty"`
	Debug bool   `toml:"debug" yaml:"debug"`
}

type BootConfig struct {
	// Executable to boot after the logo. Empty shows the main menu.
	Path string `toml:"path" yaml:"path"`
}

type ResourcesConfig struct {
	// Resource directory, relative to the config file
	Dir    string            `toml:"dir" yaml:"dir"`
	Images map[string]string `toml:"images,omitempty" yaml:"images,omitempty"`
	Fonts  map[string]string `toml:"fonts,omitempty" yaml:"fonts,omitempty"`
}

// Default returns the configuration used when no file is found.
func Default() Config {
	return Config{
		Surface: SurfaceConfig{Width: 1280, Height: 720, DPI: 96},
		UI: UIConfig{
			TargetFPS:      60,
			LogoDurationMS: 3000,
		},
		Resources: ResourcesConfig{
			Dir:    "resources",
			Images: map[string]string{"logo": "images/logo.png"},
			Fonts:  map[string]string{"regular": "fonts/regular.ttf"},
		},
	}
}

// LogoDuration returns UI.LogoDurationMS as a duration.
func (c Config) LogoDuration() time.Duration {
	return time.Duration(c.UI.LogoDurationMS) * time.Millisecond
}

// Validate reports every invalid value.
func (c Config) Validate() error {
	var errs []error
	if c.Surface.Width <= 0 || c.Surface.Height <= 0 {
		errs = append(errs, fmt.Errorf("surface size %vx%v must be positive", c.Surface.Width, c.Surface.Height))
	}
	if c.Surface.DPI <= 0 {
		errs = append(errs, fmt.Errorf("surface dpi %v must be positive", c.Surface.DPI))
	}
	if c.UI.TargetFPS <= 0 {
		errs = append(errs, fmt.Errorf("ui target_fps %d must be positive", c.UI.TargetFPS))
	}
	if c.UI.LogoDurationMS < 0 {
		errs = append(errs, fmt.Errorf("ui logo_duration_ms %d must not be negative", c.UI.LogoDurationMS))
	}
	return errors.Join(errs...)
}

// Load reads the first nucleus.toml or nucleus.yaml found in dirs, trying
// both names in each directory before moving to the next. Values missing
// from the file keep their defaults. It returns the path read, or "" when
// no file exists.
func Load(dirs ...string) (Config, string, error) {
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		for _, name := range []string{FileTOML, FileYAML} {
			path := filepath.Join(dir, name)
			cfg, err := LoadFile(path)
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return cfg, path, err
		}
	}
	return Default(), "", nil
}

// LoadFile reads one config file, choosing the decoder by extension.
func LoadFile(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, err
		}
		return cfg, fmt.Errorf("failed to read %s: %w", path, err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		return cfg, fmt.Errorf("unsupported config format %q", ext)
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path, choosing the encoder by extension.
func Save(cfg Config, path string) error {
	var (
		data []byte
		err  error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		data, err = toml.Marshal(cfg)
	case ".yaml", ".yml":
		data, err = yaml.Marshal(cfg)
	default:
		return fmt.Errorf("unsupported config format %q", ext)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// ResolvePath joins a path from the config with the config file's folder.
// Absolute paths are returned unchanged.
func ResolvePath(configPath, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(filepath.Dir(configPath), p)
}
