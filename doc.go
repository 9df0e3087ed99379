// Package candlestick lays out, draws and hit-tests OHLC candle series.
//
// A [Chart] owns the series, the scales they are plotted against and one
// [CandleElement] per (series, index). Each frame the host calls
// [Chart.Layout] to recompute every element's target view, [Chart.Draw] to
// paint the elements onto a [Surface], and then queries the elements (or
// [Chart.ElementsAt]) for pointer interaction until the next layout pass.
//
// The geometry itself lives in internal/layout and is re-exported here; the
// scales are narrow interfaces ([ValueScale], [CategoryScale]) so any axis
// implementation can drive the layout.
package candlestick
