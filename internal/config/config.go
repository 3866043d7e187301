// Package config loads the optional localpaint.yaml settings file.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	DefaultFile = "localpaint.yaml"
	EnvFile     = "LOCALPAINT_CONFIG"
)

// Config mirrors localpaint.yaml. Every field is optional.
type Config struct {
	Window  WindowConfig `yaml:"window"`
	Share   ShareConfig  `yaml:"share"`
	Palette []string     `yaml:"palette,omitempty"`
}

type WindowConfig struct {
	Title  string  `yaml:"title,omitempty"`
	Width  float32 `yaml:"width,omitempty"`
	Height float32 `yaml:"height,omitempty"`
}

type ShareConfig struct {
	Enabled   bool  `yaml:"enabled"`
	Port      int   `yaml:"port,omitempty"`
	Advertise *bool `yaml:"advertise,omitempty"`
}

// Resolved holds the settings with defaults filled in.
type Resolved struct {
	Title         string
	Width, Height float32
	Share         bool
	Port          int
	Advertise     bool
	Palette       []color.NRGBA
}

var defaultPalette = []color.NRGBA{
	{R: 0xff, A: 0xff},
	{G: 0xff, A: 0xff},
	{R: 0xff, G: 0xff, A: 0xff},
	{R: 0xff, B: 0xff, A: 0xff},
}

// LoadOptional reads path if it exists. A missing file is an empty config.
func LoadOptional(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &cfg, nil
}

// Path returns the config file location, honouring LOCALPAINT_CONFIG.
func Path() string {
	if p := strings.TrimSpace(os.Getenv(EnvFile)); p != "" {
		return p
	}
	return DefaultFile
}

// Resolve loads the config at path and applies defaults.
func Resolve(path string) (*Resolved, error) {
	cfg, err := LoadOptional(path)
	if err != nil {
		return nil, err
	}

	r := &Resolved{
		Title:     strings.TrimSpace(cfg.Window.Title),
		Width:     cfg.Window.Width,
		Height:    cfg.Window.Height,
		Share:     cfg.Share.Enabled,
		Port:      cfg.Share.Port,
		Advertise: true,
	}
	if r.Title == "" {
		r.Title = "Paint"
	}
	if r.Width <= 0 {
		r.Width = 800
	}
	if r.Height <= 0 {
		r.Height = 600
	}
	if r.Port == 0 {
		r.Port = 8888
	}
	if r.Port < 0 || r.Port > 65535 {
		return nil, fmt.Errorf("invalid share port %d", r.Port)
	}
	if cfg.Share.Advertise != nil {
		r.Advertise = *cfg.Share.Advertise
	}

	if len(cfg.Palette) == 0 {
		r.Palette = append(r.Palette, defaultPalette...)
	}
	for _, s := range cfg.Palette {
		c, err := ParseHex(s)
		if err != nil {
			return nil, err
		}
		r.Palette = append(r.Palette, c)
	}
	return r, nil
}

// ParseHex parses "#rrggbb".
func ParseHex(s string) (color.NRGBA, error) {
	c := color.NRGBA{A: 0xff}
	s = strings.TrimSpace(s)
	if len(s) != 7 || s[0] != '#' {
		return c, fmt.Errorf("invalid color %q: want #rrggbb", s)
	}
	if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
		return c, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return c, nil
}
