// Package config loads orbfield settings from YAML with environment
// overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/olivier-w/orbfield/internal/canvas"
	"github.com/olivier-w/orbfield/internal/content"
	"github.com/olivier-w/orbfield/internal/fx"
)

// Config is the whole settings file.
type Config struct {
	Effect  fx.Config     `yaml:"effect"`
	UI      UIConfig      `yaml:"ui"`
	Window  WindowConfig  `yaml:"window"`
	Logging LoggingConfig `yaml:"logging"`
}

// UIConfig tunes the terminal host.
type UIConfig struct {
	FPS int `yaml:"fps"`
	// CellWidth and CellHeight are the logical size of one terminal cell.
	CellWidth   float64       `yaml:"cell_width"`
	CellHeight  float64       `yaml:"cell_height"`
	SubmitDelay time.Duration `yaml:"submit_delay"`
}

// WindowConfig tunes the pixel window host.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// LoggingConfig configures logging. An empty File disables it.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Effect: fx.DefaultConfig(),
		UI: UIConfig{
			FPS:         60,
			CellWidth:   canvas.DefaultCellWidth,
			CellHeight:  canvas.DefaultCellHeight,
			SubmitDelay: content.SubmitDelay,
		},
		Window: WindowConfig{
			Width:  1280,
			Height: 720,
			Title:  "orbfield",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/orbfield/config.yaml, or the
// platform equivalent.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".orbfield", "config.yaml")
	}
	return filepath.Join(dir, "orbfield", "config.yaml")
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("ORBFIELD_MODE"); v != "" {
		mode, err := fx.ParseMode(v)
		if err != nil {
			return fmt.Errorf("ORBFIELD_MODE: %w", err)
		}
		c.Effect.Mode = mode
	}
	if v := os.Getenv("ORBFIELD_LOG_LEVEL"); v != "" {
		c.Logging.Level = strings.ToLower(v)
	}
	if v := os.Getenv("ORBFIELD_LOG_FILE"); v != "" {
		c.Logging.File = v
	}
	return nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.Effect.Validate(); err != nil {
		return fmt.Errorf("invalid effect config: %w", err)
	}
	if c.UI.FPS <= 0 || c.UI.FPS > 240 {
		return fmt.Errorf("invalid ui.fps: %d (valid: 1-240)", c.UI.FPS)
	}
	if c.UI.CellWidth <= 0 || c.UI.CellHeight <= 0 {
		return fmt.Errorf("invalid ui cell size: %gx%g", c.UI.CellWidth, c.UI.CellHeight)
	}
	if c.UI.SubmitDelay < 0 {
		return fmt.Errorf("invalid ui.submit_delay: %s", c.UI.SubmitDelay)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window size: %dx%d", c.Window.Width, c.Window.Height)
	}
	if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("invalid logging.level: %w", err)
	}
	return nil
}

// FrameInterval is the terminal host's tick period.
func (c *Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.UI.FPS)
}
