// Package config provides configuration loading and access for the wheel.
package config

import (
	_ "embed"
	"fmt"
	"image/color"
	"math"
	"os"
	"strings"
	"time"

	"github.com/gogpu/gg"
	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/wheeltab/wheel"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Wheel     WheelConfig     `yaml:"wheel"`
	Layout    LayoutConfig    `yaml:"layout"`
	Items     []ItemConfig    `yaml:"items"`
	Input     InputConfig     `yaml:"input"`
	Sound     SoundConfig     `yaml:"sound"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// WheelConfig holds the wheel's geometry and appearance.
type WheelConfig struct {
	Radius             float64 `yaml:"radius"`
	CenterButtonRadius float64 `yaml:"center_button_radius"`
	BackgroundColor    string  `yaml:"background_color"`
	BorderColor        string  `yaml:"border_color"`
	SelectedColor      string  `yaml:"selected_color"` // Highlight arc and selected title
	ArcWidth           float64 `yaml:"arc_width"`
	AnimationDuration  string  `yaml:"animation_duration"` // Go duration, "0s" disables animation
	CollapsedScale     float64 `yaml:"collapsed_scale"`
	CenterIcon         string  `yaml:"center_icon"`
	Anchor             string  `yaml:"anchor"` // "bottom" or "center"
	Margin             float64 `yaml:"margin"` // Gap between the wheel and the window edge when anchored bottom
}

// LayoutConfig holds wedge layout parameters.
type LayoutConfig struct {
	ContentOffset float64 `yaml:"content_offset"` // Icon distance from the center as a fraction of the radius
}

// ItemConfig is one menu item.
type ItemConfig struct {
	ID           string `yaml:"id"`
	Title        string `yaml:"title"`
	Icon         string `yaml:"icon"`
	SelectedIcon string `yaml:"selected_icon,omitempty"`
}

// InputConfig holds pointer handling parameters.
type InputConfig struct {
	DragDeadZone float64 `yaml:"drag_dead_zone"` // Pixels a press may move and still count as a tap
}

// SoundConfig holds audio settings.
type SoundConfig struct {
	Selection string `yaml:"selection"` // WAV played on selection; empty is silent
}

// TelemetryConfig holds event export settings.
type TelemetryConfig struct {
	OutputDir string `yaml:"output_dir"` // Directory for events.csv; empty disables export
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	Background        color.RGBA
	Border            color.RGBA
	Selected          color.RGBA
	AnimationDuration time.Duration
	Items             []wheel.Item
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := Merge(cfg, data); err != nil {
			return nil, err
		}
	}

	if err := cfg.computeDerived(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Merge unmarshals data over cfg. Only keys present in data are overwritten;
// a present items list replaces the default list entirely.
func Merge(cfg *Config, data []byte) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}
	return nil
}

// computeDerived parses and validates values derived from the loaded config.
func (c *Config) computeDerived() error {
	var err error
	if c.Derived.Background, err = ParseColor(c.Wheel.BackgroundColor); err != nil {
		return fmt.Errorf("wheel.background_color: %w", err)
	}
	if c.Derived.Border, err = ParseColor(c.Wheel.BorderColor); err != nil {
		return fmt.Errorf("wheel.border_color: %w", err)
	}
	if c.Derived.Selected, err = ParseColor(c.Wheel.SelectedColor); err != nil {
		return fmt.Errorf("wheel.selected_color: %w", err)
	}

	c.Derived.AnimationDuration = 0
	if c.Wheel.AnimationDuration != "" {
		d, err := time.ParseDuration(c.Wheel.AnimationDuration)
		if err != nil {
			return fmt.Errorf("wheel.animation_duration: %w", err)
		}
		c.Derived.AnimationDuration = d
	}

	if c.Wheel.Radius <= 0 {
		return fmt.Errorf("wheel.radius must be positive, got %v", c.Wheel.Radius)
	}
	if c.Wheel.CollapsedScale <= 0 || c.Wheel.CollapsedScale > 1 {
		return fmt.Errorf("wheel.collapsed_scale must be in (0, 1], got %v", c.Wheel.CollapsedScale)
	}
	switch c.Wheel.Anchor {
	case "", "bottom", "center":
	default:
		return fmt.Errorf("wheel.anchor must be bottom or center, got %q", c.Wheel.Anchor)
	}

	items := make([]wheel.Item, len(c.Items))
	for i, it := range c.Items {
		items[i] = wheel.Item{ID: it.ID, Title: it.Title, Icon: it.Icon, SelectedIcon: it.SelectedIcon}
	}
	if err := wheel.ValidateItems(items); err != nil {
		return fmt.Errorf("items: %w", err)
	}
	c.Derived.Items = items
	return nil
}

// Appearance returns the wheel appearance described by the config.
func (c *Config) Appearance() wheel.Appearance {
	return wheel.Appearance{
		CenterButtonRadius: c.Wheel.CenterButtonRadius,
		Background:         c.Derived.Background,
		Border:             c.Derived.Border,
		ArcWidth:           c.Wheel.ArcWidth,
		AnimationDuration:  c.Derived.AnimationDuration,
		CollapsedScale:     c.Wheel.CollapsedScale,
		CenterIcon:         c.Wheel.CenterIcon,
	}
}

// ParseColor parses "#rgb", "#rgba", "#rrggbb" or "#rrggbbaa". The channels
// are returned as written, not premultiplied by alpha, as raylib expects.
func ParseColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	switch len(hex) {
	case 3, 4, 6, 8:
	default:
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	for _, r := range hex {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return color.RGBA{}, fmt.Errorf("invalid color %q", s)
		}
	}
	c := gg.Hex(hex)
	return color.RGBA{R: to8(c.R), G: to8(c.G), B: to8(c.B), A: to8(c.A)}, nil
}

func to8(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
