package candlestick

import "github.com/grindlemire/go-candlestick/internal/layout"

// SeriesKind tells the chart how a series participates in layout.
type SeriesKind uint8

const (
	// KindCandle series are laid out and drawn by this package.
	KindCandle SeriesKind = iota
	// KindBar series are drawn by the host but share category slots with
	// candles.
	KindBar
	// KindLine series are drawn by the host and take no slot.
	KindLine
)

// IsBar returns true for kinds that occupy a category slot.
func (k SeriesKind) IsBar() bool {
	return k == KindCandle || k == KindBar
}

// Default scale ids used when a series leaves its axis ids empty.
const (
	DefaultXAxisID = "x"
	DefaultYAxisID = "y"
)

// Series describes one dataset. Data index i is category i; a nil entry is
// a hole that gets no element and is never drawn.
type Series struct {
	Label string
	Kind  SeriesKind
	Data  []*Record
	Stack StackID

	XAxisID string
	YAxisID string

	// Hidden is owned by the host (legend toggles and the like).
	Hidden bool

	Style          DatasetStyle
	Overrides      map[int]StyleOverride
	HoverOverrides map[int]StyleOverride
}

func (s *Series) xAxisID() string {
	if s.XAxisID == "" {
		return DefaultXAxisID
	}
	return s.XAxisID
}

func (s *Series) yAxisID() string {
	if s.YAxisID == "" {
		return DefaultYAxisID
	}
	return s.YAxisID
}

func (s *Series) stackMember() layout.StackMember {
	return layout.StackMember{
		Stack:   s.Stack,
		YAxisID: s.yAxisID(),
		Bar:     s.Kind.IsBar(),
		Visible: !s.Hidden,
	}
}

// Record returns the record at index, or nil for holes and out of range
// indexes.
func (s *Series) Record(index int) *Record {
	if index < 0 || index >= len(s.Data) {
		return nil
	}
	return s.Data[index]
}
