package candlestick

import "math"

// Renderer draws candle views onto a Surface.
type Renderer struct {
	defaults CandleStyle
}

// NewRenderer creates a renderer. defaults fills in any color a view
// leaves unset and is the global layer of style resolution.
func NewRenderer(defaults CandleStyle) *Renderer {
	return &Renderer{defaults: defaults}
}

// Defaults returns the renderer's default style.
func (r *Renderer) Defaults() CandleStyle {
	return r.defaults
}

// candleRect is the body outline after border correction.
type candleRect struct {
	left, right, top, bottom float64
	borderWidth              float64
}

// bodyRect returns the body outline and the effective border width.
// The border width is clamped to the body's smaller side, and the outline
// is pulled in by half a stroke so the stroke stays inside the body. The
// inset is skipped along an axis where it would collapse the outline.
func bodyRect(v View) candleRect {
	left := v.X - v.Width/2
	right := v.X + v.Width/2
	top := v.BodyTopY
	bottom := v.BodyBottomY

	signX := 1.0
	signY := -1.0
	if bottom > top {
		signY = 1
	}

	bw := v.Style.BorderWidth
	if bw <= 0 || math.IsNaN(bw) {
		return candleRect{left: left, right: right, top: top, bottom: bottom}
	}

	barSize := math.Min(math.Abs(left-right), math.Abs(top-bottom))
	if bw > barSize {
		bw = barSize
	}
	half := bw / 2

	borderLeft := left + half*signX
	borderRight := right - half*signX
	borderTop := top + half*signY
	borderBottom := bottom - half*signY

	if borderLeft != borderRight {
		top = borderTop
		bottom = borderBottom
	}
	if borderTop != borderBottom {
		left = borderLeft
		right = borderRight
	}
	return candleRect{left: left, right: right, top: top, bottom: bottom, borderWidth: bw}
}

// DrawCandle paints one candle: the filled body, then, when the effective
// border width is positive, the body outline and both wicks.
func (r *Renderer) DrawCandle(s Surface, v View) error {
	if v.Horizontal {
		return ErrUnsupportedOrientation
	}

	style := r.withDefaults(v.Style)
	rect := bodyRect(v)

	s.BeginPath()
	s.MoveTo(rect.left, rect.bottom)
	s.LineTo(rect.left, rect.top)
	s.LineTo(rect.right, rect.top)
	s.LineTo(rect.right, rect.bottom)
	s.LineTo(rect.left, rect.bottom)
	s.Fill(style.Fill(v.Hollow))

	if rect.borderWidth > 0 {
		centerX := rect.left + (rect.right-rect.left)/2
		s.MoveTo(centerX, rect.top)
		s.LineTo(centerX, v.ShadowTopY)
		s.MoveTo(centerX, rect.bottom)
		s.LineTo(centerX, v.ShadowBottomY)
		s.Stroke(style.BorderColor, rect.borderWidth)
	}
	return nil
}

func (r *Renderer) withDefaults(s CandleStyle) CandleStyle {
	if s.FilledColor.IsDefault() {
		s.FilledColor = r.defaults.FilledColor
	}
	if s.EmptyColor.IsDefault() {
		s.EmptyColor = r.defaults.EmptyColor
	}
	if s.BorderColor.IsDefault() {
		s.BorderColor = r.defaults.BorderColor
	}
	return s
}
