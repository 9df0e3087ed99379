package candlestick

import "errors"

// ErrUnsupportedOrientation is returned when geometry or drawing is
// requested for a horizontal candle. Only vertical candles are supported.
var ErrUnsupportedOrientation = errors.New("candlestick: horizontal candle chart is not supported")

// ErrUnknownScale is returned when a series references a scale id the
// chart does not know.
var ErrUnknownScale = errors.New("candlestick: unknown scale")
