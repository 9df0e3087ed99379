package layout

import "math"

// Record is one OHLC period.
// Low <= min(Open, Close) and High >= max(Open, Close) is expected but not
// enforced; a malformed record simply produces degenerate geometry.
type Record struct {
	Low   float64
	Open  float64
	Close float64
	High  float64
}

// RecordFromTuple builds a Record from a (low, open, close, high) tuple.
// Missing trailing fields become NaN.
func RecordFromTuple(t []float64) Record {
	field := func(i int) float64 {
		if i < len(t) {
			return t[i]
		}
		return math.NaN()
	}
	return Record{
		Low:   field(0),
		Open:  field(1),
		Close: field(2),
		High:  field(3),
	}
}

// Tuple returns the record in (low, open, close, high) order.
func (r Record) Tuple() [4]float64 {
	return [4]float64{r.Low, r.Open, r.Close, r.High}
}

// Rising reports whether the period closed at or above its open.
// A NaN open or close is never rising.
func (r Record) Rising() bool {
	return r.Open <= r.Close
}

// WellFormed reports whether all fields are finite and the high/low
// range contains the open and close.
func (r Record) WellFormed() bool {
	for _, v := range r.Tuple() {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return r.Low <= math.Min(r.Open, r.Close) && r.High >= math.Max(r.Open, r.Close)
}
