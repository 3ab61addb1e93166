// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"

	"gopkg.in/yaml.v3"

	"go-hexmap-atlas/pkg/hexmap"
	"go-hexmap-atlas/pkg/render"
)

const (
	HexSize  = hexmap.DefaultSize
	FontSize = 16.0

	Title   = "Scrum Dashboard"
	Heading = "Hexagon Map!!!!"

	ListenAddr = ":8080"
	DataPath   = "area_data.json"

	// Окно предпросмотра
	ScreenWidth      = 1200
	ScreenHeight     = 900
	InfoPanelHeight  = 90
	InfoPanelMargin  = 10
	HoverStrokeWidth = 2.0
	TitleFontSize    = 20.0
	TextFontSize     = 14.0
)

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	BorderColor     = color.RGBA{240, 240, 240, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	PanelColor      = color.RGBA{40, 40, 55, 230}
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds the settings that can be overridden from a YAML file.
type Config struct {
	Data           string  `yaml:"data"`
	HexSize        float64 `yaml:"hex_size"`
	FontSize       float64 `yaml:"font_size"`
	DrawEmptyCells bool    `yaml:"draw_empty_cells"`
	Title          string  `yaml:"title"`
	Heading        string  `yaml:"heading"`
	ListenAddr     string  `yaml:"listen_addr"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Data:       DataPath,
		HexSize:    HexSize,
		FontSize:   FontSize,
		Title:      Title,
		Heading:    Heading,
		ListenAddr: ListenAddr,
	}
}

// Load reads a YAML file over the defaults. An empty path returns the
// defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(file, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the fields that would produce a broken drawing.
func (c Config) Validate() error {
	if err := hexmap.NewGeometry(c.HexSize).Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.FontSize <= 0 {
		return fmt.Errorf("%w: font_size must be positive, got %v", ErrInvalidConfig, c.FontSize)
	}
	return nil
}

// RenderOptions builds scene options from the configuration.
func (c Config) RenderOptions() render.Options {
	opts := render.DefaultOptions()
	opts.Geometry = hexmap.NewGeometry(c.HexSize)
	opts.FontSize = c.FontSize
	opts.DrawEmptyCells = c.DrawEmptyCells
	return opts
}
