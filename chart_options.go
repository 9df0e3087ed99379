package candlestick

import "log/slog"

// ChartOption configures a Chart.
type ChartOption func(*Chart)

// WithDefaults sets the global default candle style.
func WithDefaults(s CandleStyle) ChartOption {
	return func(c *Chart) {
		c.renderer = NewRenderer(s)
	}
}

// WithCategoryScale registers a category (x) scale under its id.
func WithCategoryScale(s CategoryScale) ChartOption {
	return func(c *Chart) {
		c.xScales[s.ID()] = s
	}
}

// WithValueScale registers a value (y) scale under its id.
func WithValueScale(s ValueScale) ChartOption {
	return func(c *Chart) {
		c.yScales[s.ID()] = s
	}
}

// WithChartArea clips drawing to area.
func WithChartArea(area Bounds) ChartOption {
	return func(c *Chart) {
		c.area = area
		c.hasArea = true
	}
}

// WithCombo marks the chart as mixing candles with other series types.
// Category pixels are then read at tick centers and shifted back by half
// a tick.
func WithCombo() ChartOption {
	return func(c *Chart) {
		c.combo = true
	}
}

// WithHorizontal flags every candle as horizontal. Layout still runs, but
// drawing and hit geometry fail with ErrUnsupportedOrientation.
func WithHorizontal() ChartOption {
	return func(c *Chart) {
		c.horizontal = true
	}
}

// WithInterpolator sets the interpolator used by transitions.
func WithInterpolator(i Interpolator) ChartOption {
	return func(c *Chart) {
		c.interp = i
	}
}

// WithLogger sets the logger used for layout diagnostics.
func WithLogger(l *slog.Logger) ChartOption {
	return func(c *Chart) {
		c.logger = l
	}
}

// WithSeries appends series to the chart.
func WithSeries(series ...*Series) ChartOption {
	return func(c *Chart) {
		for _, s := range series {
			c.AddSeries(s)
		}
	}
}
