package candlestick

var (
	_ CategoryScale = (*CategoryAxis)(nil)
	_ Labeler       = (*CategoryAxis)(nil)
)

// CategoryAxis is a horizontal axis with one equally wide tick per label.
type CategoryAxis struct {
	id     string
	left   float64
	width  float64
	labels []string
	opts   AxisOptions
}

// NewCategoryAxis creates a category axis starting at the left pixel and
// spanning width pixels.
func NewCategoryAxis(id string, left, width float64, labels []string, opts AxisOptions) *CategoryAxis {
	return &CategoryAxis{id: id, left: left, width: width, labels: labels, opts: opts}
}

// ID returns the scale id.
func (a *CategoryAxis) ID() string {
	return a.id
}

// Width returns the pixel width of the axis.
func (a *CategoryAxis) Width() float64 {
	return a.width
}

// TickCount returns the number of categories.
func (a *CategoryAxis) TickCount() int {
	return len(a.labels)
}

// PixelForIndex returns the left edge of tick index, or its center when
// includeOffset is set.
func (a *CategoryAxis) PixelForIndex(index int, includeOffset bool) float64 {
	if len(a.labels) == 0 {
		return a.left
	}
	tickWidth := a.width / float64(len(a.labels))
	px := a.left + tickWidth*float64(index)
	if includeOffset {
		px += tickWidth / 2
	}
	return px
}

// Label returns the label of tick index, or "" when out of range.
func (a *CategoryAxis) Label(index int) string {
	if index < 0 || index >= len(a.labels) {
		return ""
	}
	return a.labels[index]
}

// Options returns the axis options.
func (a *CategoryAxis) Options() AxisOptions {
	return a.opts
}
