// Package config loads the YAML settings of a guinness application: the
// theme a Design is built from, dispatcher tuning and the initial viewport.
package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/go-theft-auto/guinness"
)

// Config is the root of a configuration file.
type Config struct {
	Theme      Theme      `yaml:"theme"`
	Dispatcher Dispatcher `yaml:"dispatcher"`
	Viewport   Viewport   `yaml:"viewport"`
}

// Theme holds design colors as #RRGGBB or #RRGGBBAA.
type Theme struct {
	Name            string  `yaml:"name" validate:"required,min=1,max=64"`
	Border          string  `yaml:"border" validate:"required,hexcolor_rgba"`
	Background      string  `yaml:"background" validate:"required,hexcolor_rgba"`
	Active          string  `yaml:"active" validate:"required,hexcolor_rgba"`
	Hover           string  `yaml:"hover" validate:"required,hexcolor_rgba"`
	Font            string  `yaml:"font" validate:"required,hexcolor_rgba"`
	InnerThickness  float32 `yaml:"inner_thickness" validate:"gte=0,lte=64"`
	BorderThickness float32 `yaml:"border_thickness" validate:"gte=0,lte=64"`
	FontSize        int     `yaml:"font_size" validate:"gte=4,lte=256"`
}

// Dispatcher tunes the interaction loop.
type Dispatcher struct {
	PoolSize       int    `yaml:"pool_size" validate:"gte=1,lte=64"`
	TickIntervalMs int    `yaml:"tick_interval_ms" validate:"gte=0,lte=1000"`
	LogLevel       string `yaml:"log_level" validate:"omitempty,oneof=trace debug info warn error disabled"`
	HumanLogs      bool   `yaml:"human_logs"`
}

// Viewport is the initial pan and zoom.
type Viewport struct {
	Scale   float32 `yaml:"scale" validate:"gt=0,lte=16"`
	OffsetX float32 `yaml:"offset_x"`
	OffsetY float32 `yaml:"offset_y"`
}

// Default returns the built-in configuration, matching guinness.ClassicDesign.
func Default() *Config {
	return &Config{
		Theme: Theme{
			Name:            "classic",
			Border:          "#404040",
			Background:      "#C0C0C0",
			Active:          "#808080",
			Hover:           "#D8D8E8",
			Font:            "#000000",
			InnerThickness:  2,
			BorderThickness: 2,
			FontSize:        guinness.DefaultFontSize,
		},
		Dispatcher: Dispatcher{
			PoolSize:       guinness.DefaultPoolSize,
			TickIntervalMs: 1,
			LogLevel:       "info",
		},
		Viewport: Viewport{Scale: 1},
	}
}

// Load reads and validates a configuration file. Keys missing from the
// file keep their Default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	cfg, err := Parse(data)
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			pe.Path = path
		}
		return nil, err
	}
	return cfg, nil
}

// Parse decodes and validates YAML data over the defaults.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, &ParseError{Line: extractLine(err), Err: err}
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Design builds a design from the theme.
func (t *Theme) Design() (*guinness.Design, error) {
	d := guinness.ClassicDesign()
	d.Name = t.Name
	for _, c := range []struct {
		field string
		hex   string
		dst   *uint32
	}{
		{"border", t.Border, &d.BorderColor},
		{"background", t.Background, &d.BackgroundColor},
		{"active", t.Active, &d.ActiveColor},
		{"hover", t.Hover, &d.HoverColor},
		{"font", t.Font, &d.FontColor},
	} {
		v, err := ParseHexColor(c.hex)
		if err != nil {
			return nil, fmt.Errorf("theme %s: %w", c.field, err)
		}
		*c.dst = v
	}
	d.InnerThickness = t.InnerThickness
	d.BorderThickness = t.BorderThickness
	return d, nil
}

var hexColorPattern = regexp.MustCompile(`^#([0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)

// ParseHexColor converts #RRGGBB or #RRGGBBAA to a packed guinness color.
// Without an alpha component the color is opaque.
func ParseHexColor(s string) (uint32, error) {
	if !hexColorPattern.MatchString(s) {
		return 0, fmt.Errorf("invalid color %q: want #RRGGBB or #RRGGBBAA", s)
	}
	if len(s) == 7 {
		s += "ff"
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return guinness.RGBA(uint8(v>>24), uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

func extractLine(err error) int {
	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}
	line, convErr := strconv.Atoi(matches[1])
	if convErr != nil {
		return 0
	}
	return line
}
