package candlestick

import "fmt"

var _ DrawableElement = (*CandleElement)(nil)

// DrawableElement is what the host's pointer and tooltip handling needs
// from a drawn glyph.
type DrawableElement interface {
	Draw(s Surface) error
	InRange(x, y float64) bool
	InLabelRange(x, y float64) bool
	InXRange(x float64) bool
	InYRange(y float64) bool
	CenterPoint() Point
	Area() float64
	TooltipPosition() Point
}

// View is the per-frame view model of one candle.
type View struct {
	X     float64 // Horizontal center
	Width float64

	BodyTopY      float64
	BodyBottomY   float64
	ShadowTopY    float64
	ShadowBottomY float64

	Hollow     bool
	Horizontal bool

	Style CandleStyle

	Label       string // Category label
	SeriesLabel string
}

// Y returns the top of the body.
func (v View) Y() float64 {
	return v.BodyTopY
}

// Base returns the bottom of the body, the candle's baseline.
func (v View) Base() float64 {
	return v.BodyBottomY
}

// CandleElement is the element cached for one (series, index). The layout
// pass writes its model; Transition moves the drawn view toward it.
type CandleElement struct {
	seriesIndex int
	index       int

	model   View
	view    View
	start   View
	hasView bool
	moving  bool

	renderer *Renderer
	hovered  bool
}

func newCandleElement(seriesIndex, index int, r *Renderer) *CandleElement {
	return &CandleElement{seriesIndex: seriesIndex, index: index, renderer: r}
}

// SeriesIndex returns the index of the series this element belongs to.
func (e *CandleElement) SeriesIndex() int {
	return e.seriesIndex
}

// Index returns the data index of this element.
func (e *CandleElement) Index() int {
	return e.index
}

// Model returns the target view computed by the last layout pass.
func (e *CandleElement) Model() View {
	return e.model
}

// View returns the view that was last drawn (or settled on).
func (e *CandleElement) View() View {
	return e.view
}

// HasView returns true once the element has been laid out at least once.
func (e *CandleElement) HasView() bool {
	return e.hasView
}

// Hovered returns true while hover styling is applied.
func (e *CandleElement) Hovered() bool {
	return e.hovered
}

// setModel stores a new target and pins the current view as the start of
// the next transition. The first model becomes the view directly.
func (e *CandleElement) setModel(m View) {
	e.model = m
	if !e.hasView {
		e.view = m
		e.hasView = true
	}
	e.start = e.view
	e.moving = true
}

// Transition advances the drawn view toward the model. ease is the eased
// progress in [0, 1] supplied by the host; at 1 (or above) the view settles
// on the model. Only geometry is interpolated; flags, style and labels
// switch to the model immediately.
func (e *CandleElement) Transition(ease float64, interp Interpolator) View {
	if !e.hasView {
		return e.view
	}
	if !e.moving || ease >= 1 {
		e.view = e.model
		e.moving = false
		return e.view
	}
	if interp == nil {
		interp = Linear
	}

	v := e.model
	from, to := geometryFields(&e.start), geometryFields(&e.model)
	into := geometryFields(&v)
	for i := range into {
		*into[i] = interp(*from[i], *to[i], ease)
	}
	e.view = v
	return e.view
}

// Draw paints the current view.
func (e *CandleElement) Draw(s Surface) error {
	r := e.renderer
	if r == nil {
		r = NewRenderer(DefaultCandleStyle())
	}
	if err := r.DrawCandle(s, e.view); err != nil {
		return fmt.Errorf("series %d index %d: %w", e.seriesIndex, e.index, err)
	}
	return nil
}

// String implements fmt.Stringer for debugging.
func (e *CandleElement) String() string {
	return fmt.Sprintf("candle[%d/%d]{x=%.2f w=%.2f body=%.2f..%.2f wick=%.2f..%.2f hollow=%t}",
		e.seriesIndex, e.index, e.view.X, e.view.Width,
		e.view.BodyTopY, e.view.BodyBottomY, e.view.ShadowTopY, e.view.ShadowBottomY, e.view.Hollow)
}
