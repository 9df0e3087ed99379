package candlestick

import (
	"io"
	"strconv"
	"unicode/utf8"
)

// escBuilder efficiently builds ANSI escape sequences.
// It uses a pre-allocated buffer to minimize allocations.
type escBuilder struct {
	buf []byte
}

// newEscBuilder creates a new escape sequence builder with the given initial capacity.
func newEscBuilder(capacity int) *escBuilder {
	return &escBuilder{
		buf: make([]byte, 0, capacity),
	}
}

// Reset clears the buffer for reuse.
func (e *escBuilder) Reset() {
	e.buf = e.buf[:0]
}

// Bytes returns the built escape sequence.
func (e *escBuilder) Bytes() []byte {
	return e.buf
}

// Len returns the current length of the buffer.
func (e *escBuilder) Len() int {
	return len(e.buf)
}

// writeCSI writes the Control Sequence Introducer (ESC [).
func (e *escBuilder) writeCSI() {
	e.buf = append(e.buf, '\x1b', '[')
}

// writeInt writes an integer to the buffer.
func (e *escBuilder) writeInt(n int) {
	e.buf = strconv.AppendInt(e.buf, int64(n), 10)
}

// MoveTo moves the cursor to the specified position.
// x and y are 0-indexed; ANSI sequences use 1-indexed positions.
func (e *escBuilder) MoveTo(x, y int) {
	e.writeCSI()
	e.writeInt(y + 1)
	e.buf = append(e.buf, ';')
	e.writeInt(x + 1)
	e.buf = append(e.buf, 'H')
}

// MoveUp moves the cursor up by n rows.
func (e *escBuilder) MoveUp(n int) {
	if n <= 0 {
		return
	}
	e.writeCSI()
	if n > 1 {
		e.writeInt(n)
	}
	e.buf = append(e.buf, 'A')
}

// HideCursor makes the cursor invisible.
func (e *escBuilder) HideCursor() {
	e.writeCSI()
	e.buf = append(e.buf, '?', '2', '5', 'l')
}

// ShowCursor makes the cursor visible.
func (e *escBuilder) ShowCursor() {
	e.writeCSI()
	e.buf = append(e.buf, '?', '2', '5', 'h')
}

// BeginSyncUpdate starts a synchronized update block so a frame is
// displayed atomically. Terminals that don't support it ignore it.
func (e *escBuilder) BeginSyncUpdate() {
	e.writeCSI()
	e.buf = append(e.buf, '?', '2', '0', '2', '6', 'h')
}

// EndSyncUpdate ends a synchronized update block.
func (e *escBuilder) EndSyncUpdate() {
	e.writeCSI()
	e.buf = append(e.buf, '?', '2', '0', '2', '6', 'l')
}

// ResetStyle resets all text attributes to default.
func (e *escBuilder) ResetStyle() {
	e.writeCSI()
	e.buf = append(e.buf, '0', 'm')
}

// SetColors sets foreground and background colors for the following runes.
func (e *escBuilder) SetColors(fg, bg Color, caps Capabilities) {
	e.writeCSI()
	e.buf = append(e.buf, '0')
	e.appendColor(caps.EffectiveColor(fg), true, caps)
	e.appendColor(caps.EffectiveColor(bg), false, caps)
	e.buf = append(e.buf, 'm')
}

// appendColor appends the appropriate escape sequence for a color.
// fg indicates whether this is a foreground (true) or background (false) color.
func (e *escBuilder) appendColor(c Color, fg bool, caps Capabilities) {
	if c.IsDefault() {
		return
	}

	base := 48
	if fg {
		base = 38
	}

	switch c.Type() {
	case ColorANSI:
		idx := int(c.ANSI())
		switch {
		case idx < 8 && caps.Colors >= Color16:
			e.buf = append(e.buf, ';')
			e.writeInt(base - 8 + idx)
		case idx < 16 && caps.Colors >= Color16:
			// Bright: 90-97 foreground, 100-107 background.
			e.buf = append(e.buf, ';')
			e.writeInt(base + 52 + idx - 8)
		case caps.Colors >= Color256:
			e.buf = append(e.buf, ';')
			e.writeInt(base)
			e.buf = append(e.buf, ';', '5', ';')
			e.writeInt(idx)
		}

	case ColorRGB:
		if caps.TrueColor {
			r, g, b := c.RGB()
			e.buf = append(e.buf, ';')
			e.writeInt(base)
			e.buf = append(e.buf, ';', '2', ';')
			e.writeInt(int(r))
			e.buf = append(e.buf, ';')
			e.writeInt(int(g))
			e.buf = append(e.buf, ';')
			e.writeInt(int(b))
		}
	}
}

// WriteRune appends a UTF-8 encoded rune to the buffer.
func (e *escBuilder) WriteRune(r rune) {
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	e.buf = append(e.buf, buf[:n]...)
}

// WriteString appends a string to the buffer.
func (e *escBuilder) WriteString(s string) {
	e.buf = append(e.buf, s...)
}

// WriteFrame writes the whole back buffer as consecutive lines, suitable
// for printing a static chart to a pipe or the scrollback.
func WriteFrame(w io.Writer, buf *Buffer, caps Capabilities) error {
	width, height := buf.Size()
	esc := newEscBuilder(width * height * 4)
	for y := 0; y < height; y++ {
		var fg, bg Color
		styled := false
		for x := 0; x < width; x++ {
			c := buf.Cell(x, y)
			cfg, cbg := caps.EffectiveColor(c.Fg), caps.EffectiveColor(c.Bg)
			if !styled || !cfg.Equal(fg) || !cbg.Equal(bg) {
				esc.SetColors(cfg, cbg, caps)
				fg, bg, styled = cfg, cbg, true
			}
			esc.WriteRune(cellRune(c, caps))
		}
		esc.ResetStyle()
		esc.WriteRune('\n')
	}
	_, err := w.Write(esc.Bytes())
	return err
}

// WriteDiff writes only the cells that changed since the last Swap, using
// absolute cursor positioning offset by originY rows. The buffer is
// swapped afterwards.
func WriteDiff(w io.Writer, buf *Buffer, caps Capabilities, originY int) error {
	changes := buf.Diff()
	if len(changes) == 0 {
		return nil
	}

	esc := newEscBuilder(len(changes) * 16)
	esc.BeginSyncUpdate()
	lastX, lastY := -1, -1
	for _, ch := range changes {
		if ch.Y != lastY || ch.X != lastX+1 {
			esc.MoveTo(ch.X, ch.Y+originY)
		}
		esc.SetColors(ch.Cell.Fg, ch.Cell.Bg, caps)
		esc.WriteRune(cellRune(ch.Cell, caps))
		lastX, lastY = ch.X, ch.Y
	}
	esc.ResetStyle()
	esc.EndSyncUpdate()

	if _, err := w.Write(esc.Bytes()); err != nil {
		return err
	}
	buf.Swap()
	return nil
}

// cellRune degrades half blocks for terminals without unicode or color.
func cellRune(c Cell, caps Capabilities) rune {
	r := c.Rune
	if r == 0 {
		return ' '
	}
	if r != halfBlock && r != lowerHalfBlock {
		return r
	}
	if caps.Unicode && caps.Colors != ColorNone {
		return r
	}
	if c.Fg.IsDefault() && c.Bg.IsDefault() {
		return ' '
	}
	return '#'
}

// BeginAnimation clears the screen and hides the cursor ahead of a series
// of WriteDiff frames drawn from the top-left corner.
func BeginAnimation(w io.Writer) error {
	esc := newEscBuilder(16)
	esc.writeCSI()
	esc.buf = append(esc.buf, '2', 'J')
	esc.MoveTo(0, 0)
	esc.HideCursor()
	_, err := w.Write(esc.Bytes())
	return err
}

// EndAnimation parks the cursor below the last frame of the given height
// and shows it again.
func EndAnimation(w io.Writer, rows int) error {
	esc := newEscBuilder(16)
	esc.ResetStyle()
	esc.MoveTo(0, rows)
	esc.ShowCursor()
	_, err := w.Write(esc.Bytes())
	return err
}
