package candlestick

import (
	"fmt"

	"github.com/grindlemire/go-candlestick/internal/layout"
)

var _ SeriesLayoutStrategy = (*Controller)(nil)

// SeriesLayoutStrategy lays out and draws one series.
type SeriesLayoutStrategy interface {
	// Update recomputes every element of the series. The returned slice
	// has one entry per data index; holes are nil.
	Update(reset bool) ([]*CandleElement, error)
	// Draw paints the series, advancing transitions by ease.
	Draw(s Surface, ease float64) error
}

// Controller is the candle SeriesLayoutStrategy for one series of a Chart.
type Controller struct {
	chart *Chart
	index int
}

func (c *Controller) series() *Series {
	return c.chart.series[c.index]
}

// Index returns the series index the controller lays out.
func (c *Controller) Index() int {
	return c.index
}

func (c *Controller) scales() (CategoryScale, ValueScale, error) {
	s := c.series()
	x, ok := c.chart.xScales[s.xAxisID()]
	if !ok {
		return nil, nil, fmt.Errorf("series %d x axis %q: %w", c.index, s.xAxisID(), ErrUnknownScale)
	}
	y, ok := c.chart.yScales[s.yAxisID()]
	if !ok {
		return nil, nil, fmt.Errorf("series %d y axis %q: %w", c.index, s.yAxisID(), ErrUnknownScale)
	}
	return x, y, nil
}

// StackCount returns the number of slots the series' value axis is split
// into: visible bar-like series on that axis, grouped by stack id as the
// axis' stacked option dictates.
func (c *Controller) StackCount() (int, error) {
	_, y, err := c.scales()
	if err != nil {
		return 0, err
	}
	return layout.StackCount(c.chart.stackMembers(), y.ID(), y.Options().Stacked), nil
}

// StackIndex returns the slot of seriesIndex within its category.
func (c *Controller) StackIndex(seriesIndex int) (int, error) {
	if seriesIndex < 0 || seriesIndex >= len(c.chart.series) {
		return 0, fmt.Errorf("series index %d out of range", seriesIndex)
	}
	y, ok := c.chart.yScales[c.chart.series[seriesIndex].yAxisID()]
	if !ok {
		return 0, fmt.Errorf("series %d: %w", seriesIndex, ErrUnknownScale)
	}
	return layout.StackIndex(c.chart.stackMembers(), seriesIndex, y.Options().Stacked), nil
}

// Ruler computes the ruler of the series' category axis.
func (c *Controller) Ruler() (Ruler, error) {
	x, _, err := c.scales()
	if err != nil {
		return Ruler{}, err
	}
	count, err := c.StackCount()
	if err != nil {
		return Ruler{}, err
	}
	if count < 1 {
		c.chart.logger.Debug("degenerate ruler: no visible bar series, using one stack",
			"series", c.index, "x_axis", x.ID())
	}
	opts := x.Options()
	return layout.ComputeRuler(layout.AxisGeometry{
		Width:              x.Width(),
		TickCount:          x.TickCount(),
		CategoryPercentage: opts.CategoryPercentage,
		BarPercentage:      opts.BarPercentage,
	}, count), nil
}

// Update recomputes the model of every element in the series. With reset
// set the vertical geometry collapses onto the value axis' base pixel,
// giving the first frame of a grow animation.
func (c *Controller) Update(reset bool) ([]*CandleElement, error) {
	s := c.series()
	x, y, err := c.scales()
	if err != nil {
		return nil, err
	}
	ruler, err := c.Ruler()
	if err != nil {
		return nil, err
	}
	stackIndex, err := c.StackIndex(c.index)
	if err != nil {
		return nil, err
	}

	elements := c.chart.syncElements(c.index, len(s.Data))
	holes := 0
	for i, rec := range s.Data {
		if rec == nil {
			elements[i] = nil
			holes++
			continue
		}
		if elements[i] == nil {
			elements[i] = newCandleElement(c.index, i, c.chart.renderer)
		}
		el := elements[i]
		el.setModel(c.view(i, *rec, x, y, ruler, stackIndex, reset, el.hovered))
	}

	c.chart.logger.Debug("series laid out",
		"series", c.index, "elements", len(elements), "holes", holes, "reset", reset,
		"stack_count", ruler.StackCount, "stack_index", stackIndex, "bar_width", ruler.BarWidth)
	return elements, nil
}

// UpdateElement recomputes the model of a single element. An index that
// has become a hole drops its cached element.
func (c *Controller) UpdateElement(index int, reset bool) (*CandleElement, error) {
	s := c.series()
	rec := s.Record(index)
	if rec == nil {
		if index >= 0 && index < len(s.Data) {
			c.chart.syncElements(c.index, len(s.Data))[index] = nil
		}
		return nil, nil
	}
	x, y, err := c.scales()
	if err != nil {
		return nil, err
	}
	ruler, err := c.Ruler()
	if err != nil {
		return nil, err
	}
	stackIndex, err := c.StackIndex(c.index)
	if err != nil {
		return nil, err
	}

	elements := c.chart.syncElements(c.index, len(s.Data))
	if elements[index] == nil {
		elements[index] = newCandleElement(c.index, index, c.chart.renderer)
	}
	el := elements[index]
	el.setModel(c.view(index, *rec, x, y, ruler, stackIndex, reset, el.hovered))
	return el, nil
}

func (c *Controller) view(index int, rec Record, x CategoryScale, y ValueScale, ruler Ruler, stackIndex int, reset, hovered bool) View {
	s := c.series()

	leftTick := x.PixelForIndex(index, c.chart.combo)
	if c.chart.combo {
		leftTick -= ruler.TickWidth / 2
	}

	body := layout.ComputeBody(rec, y)
	if reset {
		body = body.Reset(y.BasePixel())
	}

	style := ResolveStyle(s.Overrides[index], s.Style.At(index), c.chart.renderer.Defaults())
	if hovered {
		style = ResolveHoverStyle(s.HoverOverrides[index], s.Style.Hover, style)
	}

	v := View{
		X:             layout.BarCenterX(leftTick, ruler, stackIndex),
		Width:         layout.BarWidth(ruler, x.Options().BarThickness),
		BodyTopY:      body.BodyTopY,
		BodyBottomY:   body.BodyBottomY,
		ShadowTopY:    body.ShadowTopY,
		ShadowBottomY: body.ShadowBottomY,
		Hollow:        body.Hollow,
		Horizontal:    c.chart.horizontal,
		Style:         style,
		SeriesLabel:   s.Label,
	}
	if l, ok := x.(Labeler); ok {
		v.Label = l.Label(index)
	}
	return v
}

// Draw clips to the chart area and paints every non-hole element in
// declaration order, first advancing its transition by ease. An ease of 0
// is treated as 1 (draw the settled frame).
func (c *Controller) Draw(s Surface, ease float64) error {
	if ease == 0 {
		ease = 1
	}
	series := c.series()
	elements := c.chart.elements[c.index]

	if c.chart.hasArea {
		s.Clip(c.chart.area)
		defer s.Unclip()
	}
	for i, el := range elements {
		if series.Record(i) == nil || el == nil {
			continue
		}
		el.Transition(ease, c.chart.interp)
		if err := el.Draw(s); err != nil {
			return err
		}
	}
	return nil
}

// SetHoverStyle switches el to its hovered appearance.
func (c *Controller) SetHoverStyle(el *CandleElement) {
	if el == nil || el.hovered {
		return
	}
	s := c.series()
	el.hovered = true
	el.model.Style = ResolveHoverStyle(s.HoverOverrides[el.index], s.Style.Hover, el.model.Style)
	el.view.Style = el.model.Style
}

// RemoveHoverStyle restores el's normal appearance.
func (c *Controller) RemoveHoverStyle(el *CandleElement) {
	if el == nil || !el.hovered {
		return
	}
	s := c.series()
	el.hovered = false
	el.model.Style = ResolveStyle(s.Overrides[el.index], s.Style.At(el.index), c.chart.renderer.Defaults())
	el.view.Style = el.model.Style
}
