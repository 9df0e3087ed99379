package candlestick

import (
	"os"
	"strings"
)

// ColorCapability describes how many colors a terminal can show.
type ColorCapability int

const (
	ColorNone ColorCapability = iota
	Color16
	Color256
	ColorTrue
)

// Capabilities describes what the output terminal can render.
type Capabilities struct {
	// Colors indicates the level of color support.
	Colors ColorCapability
	// Unicode indicates whether half-block glyphs can be used.
	Unicode bool
	// TrueColor indicates whether 24-bit RGB colors are supported.
	TrueColor bool
}

// DetectCapabilities determines terminal capabilities from environment variables.
// Returns conservative defaults when detection fails.
func DetectCapabilities() Capabilities {
	return detectCapabilities(os.Getenv)
}

func detectCapabilities(getenv func(string) string) Capabilities {
	caps := Capabilities{
		Colors:  Color16,
		Unicode: true,
	}

	// NO_COLOR wins over everything (https://no-color.org).
	if getenv("NO_COLOR") != "" {
		caps.Colors = ColorNone
		return caps
	}

	colorterm := strings.ToLower(getenv("COLORTERM"))
	if colorterm == "truecolor" || colorterm == "24bit" {
		caps.Colors = ColorTrue
		caps.TrueColor = true
		return caps
	}

	// Terminals known to support true color.
	for _, v := range []string{"WT_SESSION", "ITERM_SESSION_ID", "KITTY_WINDOW_ID", "KONSOLE_VERSION", "VTE_VERSION"} {
		if getenv(v) != "" {
			caps.Colors = ColorTrue
			caps.TrueColor = true
			return caps
		}
	}

	term := strings.ToLower(getenv("TERM"))
	switch {
	case term == "dumb":
		caps.Colors = ColorNone
		caps.Unicode = false
	case strings.Contains(term, "256color"):
		caps.Colors = Color256
	case strings.Contains(term, "truecolor"):
		caps.Colors = ColorTrue
		caps.TrueColor = true
	}

	return caps
}

// SupportsColor returns true if the terminal supports the given color type.
func (c Capabilities) SupportsColor(color Color) bool {
	switch color.Type() {
	case ColorDefault:
		return true
	case ColorANSI:
		return c.Colors >= Color16
	case ColorRGB:
		return c.TrueColor
	}
	return false
}

// EffectiveColor returns the color to emit given the terminal's capabilities.
// RGB colors are approximated to the 256 palette; without color support
// everything collapses to the default color.
func (c Capabilities) EffectiveColor(color Color) Color {
	if c.SupportsColor(color) {
		return color
	}
	if c.Colors == ColorNone {
		return DefaultColor()
	}
	if color.Type() == ColorRGB {
		return color.ToANSI()
	}
	return color
}

// String returns a human-readable description of the capabilities.
func (c Capabilities) String() string {
	var parts []string

	switch c.Colors {
	case ColorNone:
		parts = append(parts, "no-color")
	case Color16:
		parts = append(parts, "16-color")
	case Color256:
		parts = append(parts, "256-color")
	case ColorTrue:
		parts = append(parts, "true-color")
	}

	if c.Unicode {
		parts = append(parts, "unicode")
	} else {
		parts = append(parts, "ascii")
	}

	return strings.Join(parts, ", ")
}
