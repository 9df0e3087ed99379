package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/grindlemire/go-candlestick"
	"github.com/grindlemire/go-candlestick/internal/config"
	"github.com/grindlemire/go-candlestick/internal/source"
)

// footerRows is the space left under the chart for the caption.
const footerRows = 1

// plot is a laid-out chart together with the terminal area it covers.
type plot struct {
	chart  *candlestick.Chart
	xAxis  *candlestick.CategoryAxis
	yAxes  []*candlestick.LinearScale
	labels []string
	title  string

	cols, rows int // chart cells, footer excluded
}

// buildChart maps a dataset onto a chart covering cfg.Width x cfg.Height
// cells. One pixel is one column wide and half a row tall.
func buildChart(cfg *config.Config, ds *source.Dataset, logger *slog.Logger) (*plot, error) {
	style, err := cfg.CandleStyle()
	if err != nil {
		return nil, err
	}
	if len(ds.Series) == 0 {
		return nil, source.ErrNoData
	}

	cols, rows := cfg.Width, cfg.Height-footerRows
	if cols < 1 || rows < 1 {
		return nil, fmt.Errorf("chart needs at least 1x%d cells, got %dx%d", 1+footerRows, cfg.Width, cfg.Height)
	}
	w, h := float64(cols), float64(rows*2)

	p := &plot{
		xAxis:  candlestick.NewCategoryAxis(candlestick.DefaultXAxisID, 0, w, ds.Labels, cfg.CategoryOptions()),
		labels: ds.Labels,
		title:  cfg.Title,
		cols:   cols,
		rows:   rows,
	}

	series := make([]*candlestick.Series, len(ds.Series))
	for i, sd := range ds.Series {
		s := &candlestick.Series{
			Label:   sd.Label,
			Kind:    candlestick.KindCandle,
			Data:    sd.Records,
			YAxisID: sd.YAxisID,
			Hidden:  sd.Hidden,
		}
		if sd.Stack != "" {
			s.Stack = candlestick.Stack(sd.Stack)
		}
		series[i] = s
	}

	opts := []candlestick.ChartOption{
		candlestick.WithDefaults(style),
		candlestick.WithCategoryScale(p.xAxis),
		candlestick.WithChartArea(candlestick.NewBounds(0, 0, w, h)),
		candlestick.WithLogger(logger),
	}
	if cfg.Combo {
		opts = append(opts, candlestick.WithCombo())
	}

	axisOpts := candlestick.AxisOptions{Stacked: cfg.StackMode()}
	for _, id := range valueAxes(series) {
		var members []*candlestick.Series
		for _, s := range series {
			if axisID(s) == id {
				members = append(members, s)
			}
		}
		lo, hi, ok := candlestick.FitRange(members, cfg.Padding)
		if !ok {
			logger.Warn("value axis has no finite prices", "axis", id)
			lo, hi = 0, 1
		}
		y := candlestick.NewLinearScale(id, lo, hi, 0, h, axisOpts)
		p.yAxes = append(p.yAxes, y)
		opts = append(opts, candlestick.WithValueScale(y))
	}

	opts = append(opts, candlestick.WithSeries(series...))
	p.chart = candlestick.NewChart(opts...)
	return p, nil
}

// valueAxes returns the value axis ids in order of first use.
func valueAxes(series []*candlestick.Series) []string {
	var ids []string
	seen := make(map[string]bool)
	for _, s := range series {
		id := axisID(s)
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	return ids
}

func axisID(s *candlestick.Series) string {
	if s.YAxisID == "" {
		return candlestick.DefaultYAxisID
	}
	return s.YAxisID
}

// labelIndex returns the category index of label.
func (p *plot) labelIndex(label string) (int, error) {
	for i, l := range p.labels {
		if l == label {
			return i, nil
		}
	}
	return 0, fmt.Errorf("no category labeled %q", label)
}

// caption summarizes the chart for the footer row.
func (p *plot) caption() string {
	var parts []string
	if p.title != "" {
		parts = append(parts, p.title)
	}
	if n := len(p.labels); n > 0 {
		parts = append(parts, fmt.Sprintf("%s..%s", p.labels[0], p.labels[n-1]))
	}
	for _, y := range p.yAxes {
		lo, hi := y.Range()
		parts = append(parts, fmt.Sprintf("%s %.4g..%.4g", y.ID(), lo, hi))
	}
	s := strings.Join(parts, "  ")
	if r := []rune(s); len(r) > p.cols {
		s = string(r[:p.cols])
	}
	return s
}

var errNoElements = errors.New("no candle at that position")
