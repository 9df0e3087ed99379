package candlestick

import (
	"fmt"
	"math"
)

// Bounds returns the hit box of the candle body. Wicks are not part of it.
func (e *CandleElement) Bounds() (Bounds, error) {
	return viewBounds(e.view)
}

func viewBounds(v View) (Bounds, error) {
	if v.Horizontal {
		return Bounds{}, ErrUnsupportedOrientation
	}
	half := v.Width / 2
	return Bounds{
		Left:   v.X - half,
		Right:  v.X + half,
		Top:    math.Min(v.Y(), v.Base()),
		Bottom: math.Max(v.Y(), v.Base()),
	}, nil
}

// mustBounds panics on horizontal elements: asking a horizontal candle for
// hit geometry is a programming error.
func (e *CandleElement) mustBounds() Bounds {
	b, err := e.Bounds()
	if err != nil {
		e.panicOn(err)
	}
	return b
}

// mustVertical returns the view, panicking on horizontal elements.
func (e *CandleElement) mustVertical() View {
	if e.view.Horizontal {
		e.panicOn(ErrUnsupportedOrientation)
	}
	return e.view
}

func (e *CandleElement) panicOn(err error) {
	panic(fmt.Sprintf("candlestick: series %d index %d: %v", e.seriesIndex, e.index, err))
}

// InRange returns true if (x, y) is inside the body, edges included.
func (e *CandleElement) InRange(x, y float64) bool {
	if !e.hasView {
		return false
	}
	return e.mustBounds().Contains(x, y)
}

// InLabelRange returns true if x falls within the body's horizontal span.
// It serves category-wide hover, so y is ignored.
func (e *CandleElement) InLabelRange(x, _ float64) bool {
	if !e.hasView {
		return false
	}
	return e.mustBounds().ContainsX(x)
}

// InXRange returns true if x falls within the body's horizontal span.
func (e *CandleElement) InXRange(x float64) bool {
	if !e.hasView {
		return false
	}
	return e.mustBounds().ContainsX(x)
}

// InYRange returns true if y falls within the body's vertical span.
func (e *CandleElement) InYRange(y float64) bool {
	if !e.hasView {
		return false
	}
	return e.mustBounds().ContainsY(y)
}

// CenterPoint returns the anchor used for legends and tooltips: the
// candle's x and the midpoint between the body top and its baseline.
func (e *CandleElement) CenterPoint() Point {
	v := e.mustVertical()
	return Point{X: v.X, Y: (v.Y() + v.Base()) / 2}
}

// Area returns the body area, used to rank overlapping hover candidates.
func (e *CandleElement) Area() float64 {
	v := e.mustVertical()
	return v.Width * math.Abs(v.Y()-v.Base())
}

// TooltipPosition returns the top-center of the body.
func (e *CandleElement) TooltipPosition() Point {
	v := e.mustVertical()
	return Point{X: v.X, Y: v.Y()}
}

// Height returns the signed distance from the body top to its baseline.
func (e *CandleElement) Height() float64 {
	v := e.mustVertical()
	return v.Base() - v.Y()
}
