package candlestick

import "math"

var _ ValueScale = (*LinearScale)(nil)

// LinearScale is a vertical value axis mapping [Min, Max] linearly onto
// the pixel range [Bottom, Top], so larger values sit higher on screen.
type LinearScale struct {
	id          string
	min, max    float64
	top, bottom float64
	opts        AxisOptions
}

// NewLinearScale creates a value axis covering [min, max] drawn between
// the top and bottom pixel rows.
func NewLinearScale(id string, min, max, top, bottom float64, opts AxisOptions) *LinearScale {
	return &LinearScale{id: id, min: min, max: max, top: top, bottom: bottom, opts: opts}
}

// ID returns the scale id.
func (s *LinearScale) ID() string {
	return s.id
}

// Range returns the value range of the scale.
func (s *LinearScale) Range() (min, max float64) {
	return s.min, s.max
}

// PixelForValue maps v onto the pixel range. A scale with an empty value
// range maps everything to its bottom pixel.
func (s *LinearScale) PixelForValue(v float64) float64 {
	span := s.max - s.min
	if span == 0 {
		return s.bottom
	}
	return s.bottom - (v-s.min)/span*(s.bottom-s.top)
}

// BaseValue returns the value bars grow from: zero when the range spans
// it, otherwise the range end closest to zero.
func (s *LinearScale) BaseValue() float64 {
	switch {
	case s.min < 0 && s.max < 0:
		return s.max
	case s.min > 0 && s.max > 0:
		return s.min
	default:
		return 0
	}
}

// BasePixel returns the pixel of BaseValue.
func (s *LinearScale) BasePixel() float64 {
	return s.PixelForValue(s.BaseValue())
}

// Options returns the axis options.
func (s *LinearScale) Options() AxisOptions {
	return s.opts
}

// FitRange returns the low/high extent of every non-nil, finite record,
// padded by pad (a fraction of the span) on both sides.
// ok is false when no record contributes.
func FitRange(series []*Series, pad float64) (min, max float64, ok bool) {
	min, max = math.Inf(1), math.Inf(-1)
	for _, s := range series {
		if s == nil || s.Hidden {
			continue
		}
		for _, r := range s.Data {
			if r == nil {
				continue
			}
			for _, v := range r.Tuple() {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					continue
				}
				min = math.Min(min, v)
				max = math.Max(max, v)
				ok = true
			}
		}
	}
	if !ok {
		return 0, 0, false
	}
	span := max - min
	if span == 0 {
		span = math.Abs(max)
		if span == 0 {
			span = 1
		}
	}
	return min - span*pad, max + span*pad, true
}
