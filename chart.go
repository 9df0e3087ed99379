package candlestick

import (
	"log/slog"
	"sort"

	"github.com/grindlemire/go-candlestick/internal/debug"
	"github.com/grindlemire/go-candlestick/internal/layout"
)

// Chart is the host of one or more candle series: it owns the scales, the
// series list and the element cache, and runs layout, draw and hit-test
// passes in that order.
type Chart struct {
	series      []*Series
	controllers []*Controller // nil for series this package does not draw
	elements    [][]*CandleElement

	xScales map[string]CategoryScale
	yScales map[string]ValueScale

	area    Bounds
	hasArea bool

	combo      bool
	horizontal bool

	renderer *Renderer
	interp   Interpolator
	logger   *slog.Logger
}

// NewChart creates a Chart with the given options.
func NewChart(opts ...ChartOption) *Chart {
	c := &Chart{
		xScales:  make(map[string]CategoryScale),
		yScales:  make(map[string]ValueScale),
		renderer: NewRenderer(DefaultCandleStyle()),
		interp:   Linear,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = debug.Logger()
	}
	return c
}

// AddSeries appends a series and returns its index.
func (c *Chart) AddSeries(s *Series) int {
	idx := len(c.series)
	c.series = append(c.series, s)
	c.elements = append(c.elements, nil)

	var ctrl *Controller
	if s.Kind == KindCandle {
		ctrl = &Controller{chart: c, index: idx}
	}
	c.controllers = append(c.controllers, ctrl)
	return idx
}

// SeriesCount returns the number of series.
func (c *Chart) SeriesCount() int {
	return len(c.series)
}

// Series returns the series at index, or nil when out of range.
func (c *Chart) Series(index int) *Series {
	if index < 0 || index >= len(c.series) {
		return nil
	}
	return c.series[index]
}

// Controller returns the controller of a candle series, or nil.
func (c *Chart) Controller(index int) *Controller {
	if index < 0 || index >= len(c.controllers) {
		return nil
	}
	return c.controllers[index]
}

// SetSeriesVisible shows or hides a series. The next Layout accounts for it.
func (c *Chart) SetSeriesVisible(index int, visible bool) {
	if s := c.Series(index); s != nil {
		s.Hidden = !visible
	}
}

// IsSeriesVisible reports whether the series at index is shown.
func (c *Chart) IsSeriesVisible(index int) bool {
	s := c.Series(index)
	return s != nil && !s.Hidden
}

// Elements returns the element cache of a series (holes are nil).
func (c *Chart) Elements(index int) []*CandleElement {
	if index < 0 || index >= len(c.elements) {
		return nil
	}
	return c.elements[index]
}

func (c *Chart) stackMembers() []layout.StackMember {
	members := make([]layout.StackMember, len(c.series))
	for i, s := range c.series {
		members[i] = s.stackMember()
	}
	return members
}

// syncElements sizes the element cache of a series to n entries.
func (c *Chart) syncElements(index, n int) []*CandleElement {
	els := c.elements[index]
	switch {
	case len(els) > n:
		els = els[:n]
	case len(els) < n:
		els = append(els, make([]*CandleElement, n-len(els))...)
	}
	c.elements[index] = els
	return els
}

// Layout recomputes every candle series. Hidden series keep their elements
// but are not drawn.
func (c *Chart) Layout(reset bool) error {
	for _, ctrl := range c.controllers {
		if ctrl == nil {
			continue
		}
		if _, err := ctrl.Update(reset); err != nil {
			return err
		}
	}
	return nil
}

// Draw paints every visible candle series in declaration order.
func (c *Chart) Draw(s Surface, ease float64) error {
	for i, ctrl := range c.controllers {
		if ctrl == nil || c.series[i].Hidden {
			continue
		}
		if err := ctrl.Draw(s, ease); err != nil {
			return err
		}
	}
	return nil
}

// ElementsAt returns the visible elements whose body contains (x, y),
// smallest area first.
func (c *Chart) ElementsAt(x, y float64) []*CandleElement {
	found := c.collect(func(el *CandleElement) bool { return el.InRange(x, y) })
	sort.SliceStable(found, func(i, j int) bool {
		return found[i].Area() < found[j].Area()
	})
	return found
}

// ElementsAtX returns the visible elements whose body spans x, in series
// order. This is the category-wide ("label") hover mode.
func (c *Chart) ElementsAtX(x float64) []*CandleElement {
	return c.collect(func(el *CandleElement) bool { return el.InLabelRange(x, 0) })
}

func (c *Chart) collect(match func(*CandleElement) bool) []*CandleElement {
	var found []*CandleElement
	for i, els := range c.elements {
		if c.controllers[i] == nil || c.series[i].Hidden {
			continue
		}
		for _, el := range els {
			if el != nil && match(el) {
				found = append(found, el)
			}
		}
	}
	return found
}

// Hover applies hover styling to active and removes it from every other
// element.
func (c *Chart) Hover(active []*CandleElement) {
	want := make(map[*CandleElement]bool, len(active))
	for _, el := range active {
		want[el] = true
	}
	for i, els := range c.elements {
		ctrl := c.controllers[i]
		if ctrl == nil {
			continue
		}
		for _, el := range els {
			if el == nil {
				continue
			}
			if want[el] {
				ctrl.SetHoverStyle(el)
			} else {
				ctrl.RemoveHoverStyle(el)
			}
		}
	}
}
