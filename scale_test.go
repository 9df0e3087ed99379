package candlestick

import (
	"math"
	"testing"
)

func TestLinearScale_PixelForValue(t *testing.T) {
	type tc struct {
		scale *LinearScale
		value float64
		want  float64
	}

	tests := map[string]tc{
		"max at top":      {scale: NewLinearScale("y", 0, 200, 0, 200, AxisOptions{}), value: 200, want: 0},
		"min at bottom":   {scale: NewLinearScale("y", 0, 200, 0, 200, AxisOptions{}), value: 0, want: 200},
		"offset area":     {scale: NewLinearScale("y", 100, 200, 10, 110, AxisOptions{}), value: 150, want: 60},
		"empty range":     {scale: NewLinearScale("y", 5, 5, 0, 50, AxisOptions{}), value: 5, want: 50},
		"outside extends": {scale: NewLinearScale("y", 0, 100, 0, 100, AxisOptions{}), value: 150, want: -50},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.scale.PixelForValue(tt.value); !near(got, tt.want) {
				t.Errorf("PixelForValue(%v) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestLinearScale_Base(t *testing.T) {
	type tc struct {
		min, max  float64
		wantValue float64
	}

	tests := map[string]tc{
		"spans zero":    {min: -10, max: 10, wantValue: 0},
		"all positive":  {min: 90, max: 120, wantValue: 90},
		"all negative":  {min: -50, max: -20, wantValue: -20},
		"starts at one": {min: 0, max: 1, wantValue: 0},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s := NewLinearScale("y", tt.min, tt.max, 0, 100, AxisOptions{})
			if got := s.BaseValue(); got != tt.wantValue {
				t.Errorf("BaseValue() = %v, want %v", got, tt.wantValue)
			}
			if got, want := s.BasePixel(), s.PixelForValue(tt.wantValue); got != want {
				t.Errorf("BasePixel() = %v, want %v", got, want)
			}
		})
	}
}

func TestFitRange(t *testing.T) {
	hidden := candles(NewRecord(0, 0, 1000, 1000))
	hidden.Hidden = true

	min, max, ok := FitRange([]*Series{
		candles(NewRecord(90, 100, 110, 120), nil),
		candles(RecordFromTuple([]float64{80, 95})),
		hidden,
	}, 0.1)
	if !ok {
		t.Fatal("FitRange() ok = false")
	}
	if !near(min, 76) || !near(max, 124) {
		t.Errorf("FitRange() = %v..%v, want 76..124", min, max)
	}

	if _, _, ok := FitRange([]*Series{candles(nil)}, 0.1); ok {
		t.Error("FitRange() of holes only should not be ok")
	}

	min, max, _ = FitRange([]*Series{candles(NewRecord(5, 5, 5, 5))}, 0.5)
	if !near(min, 2.5) || !near(max, 7.5) {
		t.Errorf("FitRange() of a flat series = %v..%v, want 2.5..7.5", min, max)
	}
	if math.IsNaN(min) {
		t.Error("FitRange() should skip NaN fields")
	}
}

func TestCategoryAxis(t *testing.T) {
	a := NewCategoryAxis("x", 10, 300, []string{"mon", "tue", "wed"}, DefaultCategoryOptions())

	if got := a.TickCount(); got != 3 {
		t.Errorf("TickCount() = %d, want 3", got)
	}
	if got := a.PixelForIndex(1, false); got != 110 {
		t.Errorf("PixelForIndex(1, false) = %v, want 110", got)
	}
	if got := a.PixelForIndex(1, true); got != 160 {
		t.Errorf("PixelForIndex(1, true) = %v, want 160", got)
	}
	if got := a.Label(2); got != "wed" {
		t.Errorf("Label(2) = %q, want wed", got)
	}
	if got := a.Label(3); got != "" {
		t.Errorf("Label(3) = %q, want empty", got)
	}

	empty := NewCategoryAxis("x", 10, 300, nil, DefaultCategoryOptions())
	if got := empty.PixelForIndex(4, true); got != 10 {
		t.Errorf("empty PixelForIndex() = %v, want 10", got)
	}
}
