package layout

import (
	"math"
	"testing"
)

func TestNewBounds_OrdersCorners(t *testing.T) {
	b := NewBounds(10, 20, 0, 5)
	want := Bounds{Left: 0, Top: 5, Right: 10, Bottom: 20}
	if b != want {
		t.Errorf("NewBounds() = %+v, want %+v", b, want)
	}
	if b.Width() != 10 || b.Height() != 15 {
		t.Errorf("size = %vx%v, want 10x15", b.Width(), b.Height())
	}
}

func TestBounds_Contains(t *testing.T) {
	b := Bounds{Left: 0, Top: 0, Right: 10, Bottom: 10}

	type tc struct {
		x, y float64
		want bool
	}

	tests := map[string]tc{
		"inside":          {x: 5, y: 5, want: true},
		"top-left corner": {x: 0, y: 0, want: true},
		"right edge":      {x: 10, y: 5, want: true},
		"bottom edge":     {x: 5, y: 10, want: true},
		"left of box":     {x: -0.01, y: 5, want: false},
		"below box":       {x: 5, y: 10.01, want: false},
		"nan":             {x: math.NaN(), y: 5, want: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := b.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
			if got := (Point{X: tt.x, Y: tt.y}).In(b); got != tt.want {
				t.Errorf("Point.In() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBounds_IntersectUnion(t *testing.T) {
	a := Bounds{Left: 0, Top: 0, Right: 10, Bottom: 10}
	b := Bounds{Left: 5, Top: 5, Right: 15, Bottom: 15}

	if got, want := a.Intersect(b), (Bounds{Left: 5, Top: 5, Right: 10, Bottom: 10}); got != want {
		t.Errorf("Intersect() = %+v, want %+v", got, want)
	}
	if got, want := a.Union(b), (Bounds{Left: 0, Top: 0, Right: 15, Bottom: 15}); got != want {
		t.Errorf("Union() = %+v, want %+v", got, want)
	}
	far := Bounds{Left: 20, Top: 20, Right: 30, Bottom: 30}
	if got := a.Intersect(far); got != (Bounds{}) {
		t.Errorf("Intersect(far) = %+v, want zero", got)
	}
	if !a.Intersect(far).IsEmpty() {
		t.Error("disjoint intersection should be empty")
	}
}

func TestPoint_AddSub(t *testing.T) {
	p := Point{X: 1, Y: 2}.Add(Point{X: 3, Y: 4})
	if p != (Point{X: 4, Y: 6}) {
		t.Errorf("Add() = %+v", p)
	}
	if q := p.Sub(Point{X: 4, Y: 6}); q != (Point{}) {
		t.Errorf("Sub() = %+v", q)
	}
}
