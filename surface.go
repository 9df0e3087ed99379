package candlestick

// Surface is a path-based 2D drawing target, modeled on a canvas context.
// A path is started with BeginPath and built from MoveTo/LineTo; Fill and
// Stroke paint the current path without clearing it.
type Surface interface {
	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Fill(c Color)
	Stroke(c Color, width float64)

	// Clip restricts painting to area until Unclip.
	Clip(area Bounds)
	Unclip()
}
