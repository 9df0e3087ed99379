// layout.go re-exports layout types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package candlestick

import "github.com/grindlemire/go-candlestick/internal/layout"

// Record is one OHLC period: (low, open, close, high).
type Record = layout.Record

// Ruler holds the pixel sizes shared by a series' candles on one axis.
type Ruler = layout.Ruler

// Body holds the vertical pixels of one candle.
type Body = layout.Body

// Bounds is an inclusive axis-aligned pixel box.
type Bounds = layout.Bounds

// Point represents an x/y pixel coordinate.
type Point = layout.Point

// Value represents a bar dimension (fixed or auto).
type Value = layout.Value

// StackID names a stack; the zero value is the unset id.
type StackID = layout.StackID

// StackMode is the tri-state "stacked" option of a value axis.
type StackMode = layout.StackMode

const (
	StackedUnset = layout.StackedUnset
	Stacked      = layout.Stacked
	Unstacked    = layout.Unstacked
)

// NewRecord creates a Record from its four prices.
func NewRecord(low, open, closePrice, high float64) *Record {
	return &Record{Low: low, Open: open, Close: closePrice, High: high}
}

// RecordFromTuple creates a Record from a (low, open, close, high) tuple;
// missing fields become NaN.
func RecordFromTuple(t []float64) *Record {
	r := layout.RecordFromTuple(t)
	return &r
}

// Stack returns a named StackID.
func Stack(name string) StackID {
	return layout.Stack(name)
}

// NoStack returns the unset StackID.
func NoStack() StackID {
	return layout.NoStack()
}

// StackModeOf converts an optional "stacked" flag into a StackMode.
func StackModeOf(stacked *bool) StackMode {
	return layout.StackModeOf(stacked)
}

// Fixed creates a Value of n pixels.
func Fixed(px float64) Value {
	return layout.Fixed(px)
}

// Auto creates a Value derived from the ruler.
func Auto() Value {
	return layout.Auto()
}

// NewBounds builds Bounds from two opposite corners.
func NewBounds(x1, y1, x2, y2 float64) Bounds {
	return layout.NewBounds(x1, y1, x2, y2)
}
