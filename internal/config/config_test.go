package config

import (
	"testing"

	candlestick "github.com/grindlemire/go-candlestick"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(afero.NewMemMapFs(), "", nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_YAML(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "chart.yaml", []byte(`
title: ACME daily
data: acme.csv
width: 120
height: 30
stacked: false
bar_percentage: 0.5
bar_thickness: 3
style:
  filled: "#00ff00"
  border_width: 0
`), 0o644))

	cfg, err := Load(fs, "chart.yaml", nil)
	require.NoError(t, err)

	assert.Equal(t, "ACME daily", cfg.Title)
	assert.Equal(t, "acme.csv", cfg.Data)
	assert.Equal(t, 120, cfg.Width)
	assert.Equal(t, 30, cfg.Height)
	assert.Equal(t, candlestick.Unstacked, cfg.StackMode())
	assert.Equal(t, 0.8, cfg.CategoryPercentage, "unset keys keep their default")
	assert.Equal(t, 0.5, cfg.BarPercentage)

	opts := cfg.CategoryOptions()
	assert.Equal(t, candlestick.Fixed(3), opts.BarThickness)

	style, err := cfg.CandleStyle()
	require.NoError(t, err)
	assert.Equal(t, candlestick.RGBColor(0, 255, 0), style.FilledColor)
	assert.Equal(t, candlestick.DefaultCandleStyle().EmptyColor, style.EmptyColor)
	assert.Zero(t, style.BorderWidth, "an explicit zero border width is kept")
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "chart.yaml", []byte("data: from-yaml.csv\nwidth: 10\n"), 0o644))
	require.NoError(t, afero.WriteFile(fs, DotEnvFile, []byte("CANDLES_DATA=from-dotenv.csv\nCANDLES_HEIGHT=7\n"), 0o644))

	cfg, err := Load(fs, "chart.yaml", []string{"CANDLES_DATA=from-env.csv", "CANDLES_COMBO=true", "UNRELATED"})
	require.NoError(t, err)

	assert.Equal(t, "from-env.csv", cfg.Data, "process environment wins over .env")
	assert.Equal(t, 7, cfg.Height, ".env wins over yaml")
	assert.Equal(t, 10, cfg.Width, "yaml is kept when nothing overrides it")
	assert.True(t, cfg.Combo)
}

func TestLoad_PointerOverrides(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "chart.yaml", []byte("stacked: false\n"), 0o644))
	require.NoError(t, afero.WriteFile(fs, DotEnvFile, []byte("CANDLES_BORDER_WIDTH=2.5\n"), 0o644))

	cfg, err := Load(fs, "chart.yaml", []string{"CANDLES_STACKED=true"})
	require.NoError(t, err)

	assert.Equal(t, candlestick.Stacked, cfg.StackMode())
	require.NotNil(t, cfg.Style.BorderWidth)
	assert.Equal(t, 2.5, *cfg.Style.BorderWidth)

	cfg, err = Load(afero.NewMemMapFs(), "", []string{"CANDLES_STACKED=false"})
	require.NoError(t, err)
	assert.Equal(t, candlestick.Unstacked, cfg.StackMode(), "environment sets an unset option")
}

func TestLoad_Errors(t *testing.T) {
	type tc struct {
		yaml    string
		dotenv  string
		environ []string
		wantErr string
	}

	tests := map[string]tc{
		"unknown key":    {yaml: "colour: red\n", wantErr: "parse config"},
		"bad yaml":       {yaml: "width: [\n", wantErr: "parse config"},
		"bad env number": {environ: []string{"CANDLES_WIDTH=wide"}, wantErr: "parse environment"},
		"bad dotenv":     {dotenv: "A=\"unterminated\n", wantErr: "parse .env"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			path := ""
			if tt.yaml != "" {
				path = "chart.yaml"
				require.NoError(t, afero.WriteFile(fs, path, []byte(tt.yaml), 0o644))
			}
			if tt.dotenv != "" {
				require.NoError(t, afero.WriteFile(fs, DotEnvFile, []byte(tt.dotenv), 0o644))
			}

			_, err := Load(fs, path, tt.environ)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	_, err := Load(afero.NewMemMapFs(), "missing.yaml", nil)
	assert.ErrorContains(t, err, "read config")
}

func TestConfig_Validate(t *testing.T) {
	type tc struct {
		mutate  func(*Config)
		wantErr string
	}

	negative := -1.0

	tests := map[string]tc{
		"defaults":             {mutate: func(*Config) {}},
		"zero category":        {mutate: func(c *Config) { c.CategoryPercentage = 0 }, wantErr: "category_percentage"},
		"bar above one":        {mutate: func(c *Config) { c.BarPercentage = 1.5 }, wantErr: "bar_percentage"},
		"negative size":        {mutate: func(c *Config) { c.Width = -1 }, wantErr: "must not be negative"},
		"negative thickness":   {mutate: func(c *Config) { c.BarThickness = -2 }, wantErr: "bar_thickness"},
		"negative border":      {mutate: func(c *Config) { c.Style.BorderWidth = &negative }, wantErr: "border_width"},
		"bad color":            {mutate: func(c *Config) { c.Style.Border = "black" }, wantErr: `style.border "black"`},
		"empty color is valid": {mutate: func(c *Config) { c.Style.Filled = "" }},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
