package layout

// ValueMapper maps a data value onto the value axis' pixel space.
type ValueMapper interface {
	PixelForValue(v float64) float64
}

// Body holds the vertical pixels of one candle.
type Body struct {
	BodyTopY      float64
	BodyBottomY   float64
	ShadowTopY    float64 // Wick top (high)
	ShadowBottomY float64 // Wick bottom (low)
	Hollow        bool    // Close below open
}

// ComputeBody maps a record through m.
// The body runs from the close (top) to the open (bottom) for a rising
// period and from the open to the close otherwise; only falling periods
// are hollow.
func ComputeBody(rec Record, m ValueMapper) Body {
	b := Body{
		ShadowTopY:    m.PixelForValue(rec.High),
		ShadowBottomY: m.PixelForValue(rec.Low),
	}
	if rec.Rising() {
		b.BodyTopY = m.PixelForValue(rec.Close)
		b.BodyBottomY = m.PixelForValue(rec.Open)
	} else {
		b.BodyTopY = m.PixelForValue(rec.Open)
		b.BodyBottomY = m.PixelForValue(rec.Close)
		b.Hollow = true
	}
	return b
}

// Reset collapses every vertical pixel onto base, keeping Hollow.
// It produces the zero-height first frame of a grow animation.
func (b Body) Reset(base float64) Body {
	return Body{
		BodyTopY:      base,
		BodyBottomY:   base,
		ShadowTopY:    base,
		ShadowBottomY: base,
		Hollow:        b.Hollow,
	}
}

// BarCenterX returns the x-center of the candle in slot stackIndex of the
// category whose left edge is leftTick.
func BarCenterX(leftTick float64, r Ruler, stackIndex int) float64 {
	idx := float64(stackIndex)
	return leftTick +
		r.BarWidth/2 +
		r.CategorySpacing +
		r.BarWidth*idx +
		r.BarSpacing/2 +
		r.BarSpacing*idx
}

// BarWidth returns the candle width: the fixed thickness when one is set,
// otherwise the ruler's bar width.
func BarWidth(r Ruler, thickness Value) float64 {
	return thickness.Resolve(r.BarWidth)
}
