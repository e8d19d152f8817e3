// Package config reads the screen layout of the demo from YAML or TOML.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"ugui/device"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultLayout []byte

type Format int

const (
	YAML Format = iota
	TOML
)

type Layout struct {
	Font       Font     `yaml:"font" toml:"font"`
	Foreground string   `yaml:"foreground" toml:"foreground"`
	Background string   `yaml:"background" toml:"background"`
	Sliders    []Slider `yaml:"sliders" toml:"sliders"`
}

type Font struct {
	Name   string `yaml:"name" toml:"name"`
	Width  int    `yaml:"width" toml:"width"`
	Height int    `yaml:"height" toml:"height"`
}

// Slider describes one slider. Zero Height and Width and a missing
// Divisions or Active take the widget defaults. Colors are "#rrggbb"; an
// empty color is unset.
type Slider struct {
	Name      string   `yaml:"name" toml:"name"`
	Kind      string   `yaml:"kind" toml:"kind"`
	Row       int      `yaml:"row" toml:"row"`
	Col       int      `yaml:"col" toml:"col"`
	Height    int      `yaml:"height" toml:"height"`
	Width     int      `yaml:"width" toml:"width"`
	Divisions *int     `yaml:"divisions" toml:"divisions"`
	Legends   []string `yaml:"legends" toml:"legends"`
	Value     float64  `yaml:"value" toml:"value"`
	Active    *bool    `yaml:"active" toml:"active"`
	FgColor   string   `yaml:"fg_color" toml:"fg_color"`
	BgColor   string   `yaml:"bg_color" toml:"bg_color"`
	FontColor string   `yaml:"font_color" toml:"font_color"`
	BdColor   string   `yaml:"bd_color" toml:"bd_color"`
	SlotColor string   `yaml:"slot_color" toml:"slot_color"`
}

const (
	KindVertical   = "vertical"
	KindHorizontal = "horizontal"
)

var ErrUnknownFormat = errors.New("unknown layout format")

// Default returns the built-in demo layout.
func Default() (*Layout, error) {
	return Parse(defaultLayout, YAML)
}

// Load reads a layout file. The format follows the file extension.
func Load(path string) (*Layout, error) {
	var format Format
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		format = YAML
	case ".toml":
		format = TOML
	default:
		return nil, fmt.Errorf("%s: %w", path, ErrUnknownFormat)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading layout: %w", err)
	}
	layout, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return layout, nil
}

func Parse(data []byte, format Format) (*Layout, error) {
	layout := &Layout{}
	var err error
	switch format {
	case YAML:
		err = yaml.Unmarshal(data, layout)
	case TOML:
		err = toml.Unmarshal(data, layout)
	default:
		return nil, ErrUnknownFormat
	}
	if err != nil {
		return nil, fmt.Errorf("parsing layout: %w", err)
	}
	if err := layout.Validate(); err != nil {
		return nil, err
	}
	return layout, nil
}

func (l *Layout) Validate() error {
	if l.Font.Width <= 0 || l.Font.Height <= 0 {
		return fmt.Errorf("font %q: width and height must be positive", l.Font.Name)
	}
	for _, c := range []string{l.Foreground, l.Background} {
		if _, err := ParseColor(c); err != nil {
			return err
		}
	}
	for i, s := range l.Sliders {
		if s.Kind != KindVertical && s.Kind != KindHorizontal {
			return fmt.Errorf("slider %d (%s): unknown kind %q", i, s.Name, s.Kind)
		}
		for _, c := range []string{s.FgColor, s.BgColor, s.FontColor, s.BdColor, s.SlotColor} {
			if _, err := ParseColor(c); err != nil {
				return fmt.Errorf("slider %d (%s): %w", i, s.Name, err)
			}
		}
	}
	return nil
}

// ParseColor parses "#rrggbb". The empty string is device.ColorDefault.
func ParseColor(s string) (device.Color, error) {
	if s == "" {
		return device.ColorDefault, nil
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return device.ColorDefault, fmt.Errorf("color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return device.RGB(r, g, b), nil
}

// MustColor is ParseColor for layouts that passed Validate.
func MustColor(s string) device.Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}
