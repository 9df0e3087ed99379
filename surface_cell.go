package candlestick

import "math"

const (
	halfBlock      = '▀'
	lowerHalfBlock = '▄'
)

// CellSurface rasterizes paths onto a pixel grid two pixels tall per
// terminal row. Flush composes pixel pairs into half-block cells.
type CellSurface struct {
	width  int // pixels == columns
	height int // pixels == 2 * rows
	pixels []Color
	set    []bool

	path  [][]Point // subpaths of the current path
	clips []Bounds
}

// Ensure CellSurface implements Surface.
var _ Surface = (*CellSurface)(nil)

// NewCellSurface creates a surface covering cols x rows terminal cells.
func NewCellSurface(cols, rows int) *CellSurface {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	w, h := cols, rows*2
	return &CellSurface{
		width:  w,
		height: h,
		pixels: make([]Color, w*h),
		set:    make([]bool, w*h),
	}
}

// PixelSize returns the pixel dimensions of the surface.
func (s *CellSurface) PixelSize() (width, height int) {
	return s.width, s.height
}

// Pixel returns the color at pixel (x, y) and whether anything was painted there.
func (s *CellSurface) Pixel(x, y int) (Color, bool) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Color{}, false
	}
	i := y*s.width + x
	return s.pixels[i], s.set[i]
}

// Clear erases every pixel and the current path.
func (s *CellSurface) Clear() {
	for i := range s.pixels {
		s.pixels[i] = Color{}
		s.set[i] = false
	}
	s.path = nil
}

func (s *CellSurface) BeginPath() {
	s.path = s.path[:0]
}

func (s *CellSurface) MoveTo(x, y float64) {
	s.path = append(s.path, []Point{{X: x, Y: y}})
}

func (s *CellSurface) LineTo(x, y float64) {
	if len(s.path) == 0 {
		s.MoveTo(x, y)
		return
	}
	last := len(s.path) - 1
	s.path[last] = append(s.path[last], Point{X: x, Y: y})
}

// Fill paints pixels whose centers lie inside the current path, using the
// even-odd rule with every subpath implicitly closed.
func (s *CellSurface) Fill(c Color) {
	area, ok := s.pathExtent(0)
	if !ok {
		return
	}
	s.paint(area, c, func(p Point) bool {
		inside := false
		for _, sub := range s.path {
			if crossings(sub, p)%2 == 1 {
				inside = !inside
			}
		}
		return inside
	})
}

// Stroke paints pixels whose centers lie within half the line width of any
// segment of the current path. Lines are at least one pixel wide.
func (s *CellSurface) Stroke(c Color, width float64) {
	half := math.Max(width/2, 0.5)
	area, ok := s.pathExtent(half)
	if !ok {
		return
	}
	s.paint(area, c, func(p Point) bool {
		for _, sub := range s.path {
			if len(sub) == 1 && dist(p, sub[0], sub[0]) <= half {
				return true
			}
			for i := 1; i < len(sub); i++ {
				if dist(p, sub[i-1], sub[i]) <= half {
					return true
				}
			}
		}
		return false
	})
}

func (s *CellSurface) Clip(area Bounds) {
	if n := len(s.clips); n > 0 {
		area = area.Intersect(s.clips[n-1])
	}
	s.clips = append(s.clips, area)
}

func (s *CellSurface) Unclip() {
	if n := len(s.clips); n > 0 {
		s.clips = s.clips[:n-1]
	}
}

// Flush composes the pixel grid into buf, one cell per pixel pair.
// Unpainted pixels leave the terminal default color showing.
func (s *CellSurface) Flush(buf *Buffer) {
	buf.Clear()
	for cy := 0; cy < s.height/2; cy++ {
		for cx := 0; cx < s.width; cx++ {
			top, topSet := s.Pixel(cx, cy*2)
			bottom, bottomSet := s.Pixel(cx, cy*2+1)
			switch {
			case topSet:
				if !bottomSet {
					bottom = DefaultColor()
				}
				buf.SetCell(cx, cy, NewCell(halfBlock, top, bottom))
			case bottomSet:
				buf.SetCell(cx, cy, NewCell(lowerHalfBlock, bottom, DefaultColor()))
			}
		}
	}
}

// pathExtent returns the bounding box of the current path grown by pad,
// limited to the active clip.
func (s *CellSurface) pathExtent(pad float64) (Bounds, bool) {
	first := true
	var ext Bounds
	for _, sub := range s.path {
		for _, p := range sub {
			b := Bounds{Left: p.X - pad, Top: p.Y - pad, Right: p.X + pad, Bottom: p.Y + pad}
			if first {
				ext, first = b, false
				continue
			}
			ext = ext.Union(b)
		}
	}
	if first {
		return Bounds{}, false
	}
	if n := len(s.clips); n > 0 {
		ext = ext.Intersect(s.clips[n-1])
	}
	if !finite(ext.Left) || !finite(ext.Top) || !finite(ext.Right) || !finite(ext.Bottom) {
		return Bounds{}, false
	}
	return ext, ext.Right >= ext.Left && ext.Bottom >= ext.Top
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// pixelSpan clamps [lo, hi] to [0, limit-1] before converting to int.
func pixelSpan(lo, hi float64, limit int) (int, int) {
	lo = math.Max(math.Floor(lo), 0)
	hi = math.Min(math.Ceil(hi), float64(limit-1))
	if !finite(lo) || !finite(hi) || hi < lo {
		return 0, -1
	}
	return int(lo), int(hi)
}

func (s *CellSurface) paint(area Bounds, c Color, inside func(Point) bool) {
	x0, x1 := pixelSpan(area.Left, area.Right, s.width)
	y0, y1 := pixelSpan(area.Top, area.Bottom, s.height)

	var clip *Bounds
	if n := len(s.clips); n > 0 {
		clip = &s.clips[n-1]
	}

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			p := Point{X: float64(x) + 0.5, Y: float64(y) + 0.5}
			if clip != nil && !p.In(*clip) {
				continue
			}
			if inside(p) {
				i := y*s.width + x
				s.pixels[i] = c
				s.set[i] = true
			}
		}
	}
}

// crossings counts how many edges of the closed polygon a ray cast to the
// right of p crosses.
func crossings(poly []Point, p Point) int {
	n := 0
	for i := range poly {
		a := poly[i]
		b := poly[(i+1)%len(poly)]
		if (a.Y > p.Y) == (b.Y > p.Y) {
			continue
		}
		x := a.X + (p.Y-a.Y)/(b.Y-a.Y)*(b.X-a.X)
		if p.X < x {
			n++
		}
	}
	return n
}

// dist returns the distance from p to the segment ab.
func dist(p, a, b Point) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	l2 := dx*dx + dy*dy
	t := 0.0
	if l2 > 0 {
		t = ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / l2
		t = math.Max(0, math.Min(1, t))
	}
	return math.Hypot(p.X-(a.X+t*dx), p.Y-(a.Y+t*dy))
}
