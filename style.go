package candlestick

// CandleStyle is the fully resolved appearance of one candle.
// Zero value has default colors and no border.
type CandleStyle struct {
	FilledColor Color   // Body fill for rising periods
	EmptyColor  Color   // Body fill for falling (hollow) periods
	BorderColor Color   // Outline and wick color
	BorderWidth float64 // Outline and wick width; 0 disables both
}

// DefaultCandleStyle returns the built-in candle appearance: green rising
// bodies, red falling bodies, a black border that is off by default.
func DefaultCandleStyle() CandleStyle {
	return CandleStyle{
		FilledColor: RGBColor(0x6B, 0xA5, 0x83),
		EmptyColor:  RGBColor(0xD7, 0x54, 0x42),
		BorderColor: RGBColor(0x00, 0x00, 0x00),
		BorderWidth: 0,
	}
}

// Fill returns the body fill for a candle with the given hollow flag.
func (s CandleStyle) Fill(hollow bool) Color {
	if hollow {
		return s.EmptyColor
	}
	return s.FilledColor
}

// Equal returns true if both styles are identical.
func (s CandleStyle) Equal(other CandleStyle) bool {
	return s.FilledColor.Equal(other.FilledColor) &&
		s.EmptyColor.Equal(other.EmptyColor) &&
		s.BorderColor.Equal(other.BorderColor) &&
		s.BorderWidth == other.BorderWidth
}

// StyleOverride is a partial CandleStyle. Nil fields are unset and defer to
// the next layer during resolution.
type StyleOverride struct {
	FilledColor *Color
	EmptyColor  *Color
	BorderColor *Color
	BorderWidth *float64
}

// WithFilledColor returns a copy with the rising fill set.
func (o StyleOverride) WithFilledColor(c Color) StyleOverride {
	o.FilledColor = &c
	return o
}

// WithEmptyColor returns a copy with the falling fill set.
func (o StyleOverride) WithEmptyColor(c Color) StyleOverride {
	o.EmptyColor = &c
	return o
}

// WithBorderColor returns a copy with the border color set.
func (o StyleOverride) WithBorderColor(c Color) StyleOverride {
	o.BorderColor = &c
	return o
}

// WithBorderWidth returns a copy with the border width set.
func (o StyleOverride) WithBorderWidth(w float64) StyleOverride {
	o.BorderWidth = &w
	return o
}

// IsEmpty returns true if no field is set.
func (o StyleOverride) IsEmpty() bool {
	return o.FilledColor == nil && o.EmptyColor == nil && o.BorderColor == nil && o.BorderWidth == nil
}

// DatasetStyle carries the style fields declared on a series.
type DatasetStyle struct {
	StyleOverride

	// BorderWidths, when set, gives a border width per data index.
	// Indexes past its end use StyleOverride.BorderWidth.
	BorderWidths []float64

	// Hover holds the fields applied while a candle is hovered.
	Hover StyleOverride
}

// At returns the dataset layer for one data index.
func (d DatasetStyle) At(index int) StyleOverride {
	o := d.StyleOverride
	if index >= 0 && index < len(d.BorderWidths) {
		o = o.WithBorderWidth(d.BorderWidths[index])
	}
	return o
}

// ResolveStyle resolves every style field independently: the per-point
// override wins, then the dataset layer, then the global default.
// A field that is set to its zero value (for example a zero border width)
// still counts as set.
func ResolveStyle(override, dataset StyleOverride, global CandleStyle) CandleStyle {
	return CandleStyle{
		FilledColor: pick(override.FilledColor, dataset.FilledColor, global.FilledColor),
		EmptyColor:  pick(override.EmptyColor, dataset.EmptyColor, global.EmptyColor),
		BorderColor: pick(override.BorderColor, dataset.BorderColor, global.BorderColor),
		BorderWidth: pick(override.BorderWidth, dataset.BorderWidth, global.BorderWidth),
	}
}

// ResolveHoverStyle resolves the hovered appearance of a candle whose
// normal style is base. Colors without an explicit hover value are derived
// with Color.Hover; the border width keeps its normal value.
func ResolveHoverStyle(override, dataset StyleOverride, base CandleStyle) CandleStyle {
	return CandleStyle{
		FilledColor: pick(override.FilledColor, dataset.FilledColor, base.FilledColor.Hover()),
		EmptyColor:  pick(override.EmptyColor, dataset.EmptyColor, base.EmptyColor.Hover()),
		BorderColor: pick(override.BorderColor, dataset.BorderColor, base.BorderColor.Hover()),
		BorderWidth: pick(override.BorderWidth, dataset.BorderWidth, base.BorderWidth),
	}
}

func pick[T any](first, second *T, fallback T) T {
	if first != nil {
		return *first
	}
	if second != nil {
		return *second
	}
	return fallback
}
