package candlestick

// Cell represents a single character cell of a terminal raster.
type Cell struct {
	Rune rune
	Fg   Color
	Bg   Color
}

// NewCell creates a new Cell.
func NewCell(r rune, fg, bg Color) Cell {
	return Cell{Rune: r, Fg: fg, Bg: bg}
}

// Equal returns true if both cells are identical.
func (c Cell) Equal(other Cell) bool {
	return c.Rune == other.Rune && c.Fg.Equal(other.Fg) && c.Bg.Equal(other.Bg)
}

// IsEmpty returns true if this cell represents an empty/blank cell.
// A cell is empty if it's a space (or zero rune) with no background.
func (c Cell) IsEmpty() bool {
	if c.Rune == 0 {
		return true
	}
	return c.Rune == ' ' && c.Bg.IsDefault()
}
