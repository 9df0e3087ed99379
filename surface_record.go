package candlestick

import (
	"fmt"
	"strings"
)

// OpKind identifies a recorded surface call.
type OpKind uint8

const (
	OpBeginPath OpKind = iota
	OpMoveTo
	OpLineTo
	OpFill
	OpStroke
	OpClip
	OpUnclip
)

var opNames = [...]string{"beginPath", "moveTo", "lineTo", "fill", "stroke", "clip", "unclip"}

// String returns the canvas-style name of the op.
func (k OpKind) String() string {
	if int(k) < len(opNames) {
		return opNames[k]
	}
	return fmt.Sprintf("op(%d)", k)
}

// Op is one recorded surface call.
type Op struct {
	Kind  OpKind
	X, Y  float64
	Color Color
	Width float64
	Area  Bounds
}

// String formats the op for snapshot comparisons.
func (o Op) String() string {
	switch o.Kind {
	case OpMoveTo, OpLineTo:
		return fmt.Sprintf("%s(%g,%g)", o.Kind, o.X, o.Y)
	case OpFill:
		return fmt.Sprintf("fill(%s)", o.Color)
	case OpStroke:
		return fmt.Sprintf("stroke(%s,%g)", o.Color, o.Width)
	case OpClip:
		return fmt.Sprintf("clip(%g,%g,%g,%g)", o.Area.Left, o.Area.Top, o.Area.Right, o.Area.Bottom)
	default:
		return o.Kind.String()
	}
}

// RecordingSurface is a Surface that records every call for verification.
type RecordingSurface struct {
	ops       []Op
	clipDepth int
}

// Ensure RecordingSurface implements Surface.
var _ Surface = (*RecordingSurface)(nil)

// NewRecordingSurface creates an empty recording surface.
func NewRecordingSurface() *RecordingSurface {
	return &RecordingSurface{}
}

func (r *RecordingSurface) BeginPath()          { r.ops = append(r.ops, Op{Kind: OpBeginPath}) }
func (r *RecordingSurface) MoveTo(x, y float64) { r.ops = append(r.ops, Op{Kind: OpMoveTo, X: x, Y: y}) }
func (r *RecordingSurface) LineTo(x, y float64) { r.ops = append(r.ops, Op{Kind: OpLineTo, X: x, Y: y}) }
func (r *RecordingSurface) Fill(c Color)        { r.ops = append(r.ops, Op{Kind: OpFill, Color: c}) }

func (r *RecordingSurface) Stroke(c Color, width float64) {
	r.ops = append(r.ops, Op{Kind: OpStroke, Color: c, Width: width})
}

func (r *RecordingSurface) Clip(area Bounds) {
	r.clipDepth++
	r.ops = append(r.ops, Op{Kind: OpClip, Area: area})
}

func (r *RecordingSurface) Unclip() {
	r.clipDepth--
	r.ops = append(r.ops, Op{Kind: OpUnclip})
}

// --- Test helper methods ---

// Ops returns every recorded call.
func (r *RecordingSurface) Ops() []Op {
	return r.ops
}

// Count returns how many calls of the given kind were recorded.
func (r *RecordingSurface) Count(kind OpKind) int {
	n := 0
	for _, op := range r.ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// ClipDepth returns the number of Clip calls not yet matched by Unclip.
func (r *RecordingSurface) ClipDepth() int {
	return r.clipDepth
}

// Reset discards every recorded call.
func (r *RecordingSurface) Reset() {
	r.ops = r.ops[:0]
	r.clipDepth = 0
}

// String renders the recorded calls one per line.
func (r *RecordingSurface) String() string {
	var sb strings.Builder
	for i, op := range r.ops {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(op.String())
	}
	return sb.String()
}
