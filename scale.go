package candlestick

// AxisOptions are the axis settings the candle layout reads.
type AxisOptions struct {
	// Stacked is read from the value axis.
	Stacked StackMode

	// The remaining fields are read from the category axis.
	CategoryPercentage float64
	BarPercentage      float64
	BarThickness       Value
}

// DefaultCategoryOptions returns the category axis defaults for candle
// charts: 80% of each tick for the category, 90% of each slot for the bar.
func DefaultCategoryOptions() AxisOptions {
	return AxisOptions{
		CategoryPercentage: 0.8,
		BarPercentage:      0.9,
		BarThickness:       Auto(),
	}
}

// ValueScale maps prices to pixels. Implementations own the direction of
// the mapping; the layout never assumes larger values sit higher.
type ValueScale interface {
	ID() string
	PixelForValue(v float64) float64
	BasePixel() float64
	BaseValue() float64
	Options() AxisOptions
}

// CategoryScale maps data indexes to pixels along the category axis.
type CategoryScale interface {
	ID() string
	// PixelForIndex returns the left edge of the tick for index, or its
	// center when includeOffset is true.
	PixelForIndex(index int, includeOffset bool) float64
	Width() float64
	TickCount() int
	Options() AxisOptions
}

// Labeler is implemented by category scales that name their ticks.
type Labeler interface {
	Label(index int) string
}
