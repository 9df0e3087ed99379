// Package config loads chart settings from YAML, an optional .env file and
// the process environment, in increasing order of precedence.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/caarlos0/env/v11"
	candlestick "github.com/grindlemire/go-candlestick"
	"github.com/joho/godotenv"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// DotEnvFile is read from the working directory when present.
const DotEnvFile = ".env"

// Config holds everything needed to build and render a chart.
type Config struct {
	Title string `yaml:"title" env:"CANDLES_TITLE"`

	// Data is a .csv, .yaml or SQLite file; Query applies to SQLite only.
	Data  string `yaml:"data" env:"CANDLES_DATA"`
	Query string `yaml:"query" env:"CANDLES_QUERY"`

	// Width and Height are terminal cells; zero uses the terminal size.
	Width  int `yaml:"width" env:"CANDLES_WIDTH"`
	Height int `yaml:"height" env:"CANDLES_HEIGHT"`

	// Stacked is the value axes' stacked option; nil leaves it unset.
	Stacked            *bool   `yaml:"stacked" env:"CANDLES_STACKED"`
	CategoryPercentage float64 `yaml:"category_percentage" env:"CANDLES_CATEGORY_PERCENTAGE"`
	BarPercentage      float64 `yaml:"bar_percentage" env:"CANDLES_BAR_PERCENTAGE"`
	BarThickness       float64 `yaml:"bar_thickness" env:"CANDLES_BAR_THICKNESS"`
	Combo              bool    `yaml:"combo" env:"CANDLES_COMBO"`

	// Padding grows each value axis by this fraction of its range.
	Padding float64 `yaml:"padding" env:"CANDLES_PADDING"`

	Style Style `yaml:"style"`
}

// Style is the global candle style. Colors are hex strings.
type Style struct {
	Filled      string   `yaml:"filled" env:"CANDLES_FILLED_COLOR"`
	Empty       string   `yaml:"empty" env:"CANDLES_EMPTY_COLOR"`
	Border      string   `yaml:"border" env:"CANDLES_BORDER_COLOR"`
	BorderWidth *float64 `yaml:"border_width" env:"CANDLES_BORDER_WIDTH"`
}

// Default returns the built-in settings.
func Default() *Config {
	bw := 1.0
	return &Config{
		CategoryPercentage: 0.8,
		BarPercentage:      0.9,
		Padding:            0.05,
		Style: Style{
			Filled: "#6BA583",
			Empty:  "#D75442",
			Border: "#000000",
			// Terminal cells are too coarse to show a body without wicks.
			BorderWidth: &bw,
		},
	}
}

// Load reads the YAML file at path (skipped when path is empty) over the
// defaults, then applies .env and environ overrides. environ is in
// os.Environ form and wins over .env.
func Load(fsys afero.Fs, path string, environ []string) (*Config, error) {
	cfg := Default()

	if path != "" {
		raw, err := afero.ReadFile(fsys, path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		dec := yaml.NewDecoder(bytes.NewReader(raw))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	vars, err := dotEnv(fsys)
	if err != nil {
		return nil, err
	}
	for _, kv := range environ {
		if k, v, ok := strings.Cut(kv, "="); ok {
			vars[k] = v
		}
	}
	if err := env.ParseWithOptions(cfg, env.Options{Environment: vars}); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

// dotEnv returns the variables of DotEnvFile, or none if it is missing.
func dotEnv(fsys afero.Fs) (map[string]string, error) {
	f, err := fsys.Open(DotEnvFile)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", DotEnvFile, err)
	}
	defer f.Close()

	vars, err := godotenv.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", DotEnvFile, err)
	}
	return vars, nil
}

// Validate checks ranges and colors.
func (c *Config) Validate() error {
	var errs []error
	if c.Width < 0 || c.Height < 0 {
		errs = append(errs, fmt.Errorf("size %dx%d must not be negative", c.Width, c.Height))
	}
	if c.CategoryPercentage <= 0 || c.CategoryPercentage > 1 {
		errs = append(errs, fmt.Errorf("category_percentage %v must be in (0, 1]", c.CategoryPercentage))
	}
	if c.BarPercentage <= 0 || c.BarPercentage > 1 {
		errs = append(errs, fmt.Errorf("bar_percentage %v must be in (0, 1]", c.BarPercentage))
	}
	if c.BarThickness < 0 {
		errs = append(errs, fmt.Errorf("bar_thickness %v must not be negative", c.BarThickness))
	}
	if c.Padding < 0 {
		errs = append(errs, fmt.Errorf("padding %v must not be negative", c.Padding))
	}
	if c.Style.BorderWidth != nil && *c.Style.BorderWidth < 0 {
		errs = append(errs, fmt.Errorf("style.border_width %v must not be negative", *c.Style.BorderWidth))
	}
	if _, err := c.CandleStyle(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// StackMode returns the value axes' stacked option.
func (c *Config) StackMode() candlestick.StackMode {
	return candlestick.StackModeOf(c.Stacked)
}

// CategoryOptions returns the category axis options.
func (c *Config) CategoryOptions() candlestick.AxisOptions {
	opts := candlestick.DefaultCategoryOptions()
	opts.CategoryPercentage = c.CategoryPercentage
	opts.BarPercentage = c.BarPercentage
	if c.BarThickness > 0 {
		opts.BarThickness = candlestick.Fixed(c.BarThickness)
	}
	return opts
}

// CandleStyle returns the global candle style. Empty colors keep the
// built-in defaults.
func (c *Config) CandleStyle() (candlestick.CandleStyle, error) {
	s := candlestick.DefaultCandleStyle()
	for _, f := range []struct {
		name string
		hex  string
		dst  *candlestick.Color
	}{
		{"style.filled", c.Style.Filled, &s.FilledColor},
		{"style.empty", c.Style.Empty, &s.EmptyColor},
		{"style.border", c.Style.Border, &s.BorderColor},
	} {
		if f.hex == "" {
			continue
		}
		col, err := candlestick.HexColor(f.hex)
		if err != nil {
			return s, fmt.Errorf("%s %q: %w", f.name, f.hex, err)
		}
		*f.dst = col
	}
	if c.Style.BorderWidth != nil {
		s.BorderWidth = *c.Style.BorderWidth
	}
	return s, nil
}
