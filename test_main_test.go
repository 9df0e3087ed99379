package candlestick

import (
	"log/slog"
	"os"
	"testing"

	"github.com/grindlemire/go-candlestick/internal/debug"
)

// testLogger discards layout diagnostics in unit tests.
var testLogger = slog.New(slog.DiscardHandler)

func TestMain(m *testing.M) {
	os.Unsetenv(debug.EnvVar)
	os.Exit(m.Run())
}

// priceScale maps value v to pixel 200 - v.
func priceScale(stacked StackMode) *LinearScale {
	return NewLinearScale(DefaultYAxisID, 0, 200, 0, 200, AxisOptions{Stacked: stacked})
}

// labels returns n category labels "c0".."c{n-1}".
func labels(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = "c" + string(rune('0'+i))
	}
	return out
}

// newTestChart builds a chart whose category axis is 100px per label.
func newTestChart(nLabels int, stacked StackMode, opts ...ChartOption) *Chart {
	base := []ChartOption{
		WithLogger(testLogger),
		WithCategoryScale(NewCategoryAxis(DefaultXAxisID, 0, float64(100*nLabels), labels(nLabels), DefaultCategoryOptions())),
		WithValueScale(priceScale(stacked)),
	}
	return NewChart(append(base, opts...)...)
}

func candles(records ...*Record) *Series {
	return &Series{Kind: KindCandle, Data: records}
}
