package candlestick

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestController_StackCountAndIndex(t *testing.T) {
	type tc struct {
		mode      StackMode
		series    []*Series
		wantCount int
		wantIndex []int
	}

	named := func(kind SeriesKind, stack string, yAxis string, hidden bool) *Series {
		s := &Series{Kind: kind, YAxisID: yAxis, Hidden: hidden}
		if stack != "" {
			s.Stack = Stack(stack)
		}
		return s
	}

	tests := map[string]tc{
		"unstacked": {
			mode:      Unstacked,
			series:    []*Series{named(KindCandle, "a", "", false), named(KindCandle, "a", "", false), named(KindCandle, "", "", false)},
			wantCount: 3,
			wantIndex: []int{0, 1, 2},
		},
		"stacked groups by id": {
			mode:      Stacked,
			series:    []*Series{named(KindCandle, "a", "", false), named(KindCandle, "b", "", false), named(KindCandle, "a", "", false)},
			wantCount: 2,
			wantIndex: []int{0, 1, 1},
		},
		"stacked groups unset ids": {
			mode:      Stacked,
			series:    []*Series{named(KindCandle, "", "", false), named(KindCandle, "", "", false)},
			wantCount: 1,
			wantIndex: []int{0, 0},
		},
		"unset mode groups named ids only": {
			mode:      StackedUnset,
			series:    []*Series{named(KindCandle, "a", "", false), named(KindCandle, "", "", false), named(KindCandle, "a", "", false), named(KindCandle, "", "", false)},
			wantCount: 3,
			wantIndex: []int{0, 1, 1, 2},
		},
		"hidden and line series take no slot": {
			mode:      Unstacked,
			series:    []*Series{named(KindCandle, "", "", true), named(KindLine, "", "", false), named(KindCandle, "", "", false)},
			wantCount: 1,
			wantIndex: []int{0, 0, 0},
		},
		"other value axis takes no slot": {
			mode:      Unstacked,
			series:    []*Series{named(KindCandle, "", "volume", false), named(KindCandle, "", "", false)},
			wantCount: 1,
			wantIndex: []int{0, 0},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			c := newTestChart(1, tt.mode,
				WithValueScale(NewLinearScale("volume", 0, 1, 0, 1, AxisOptions{Stacked: tt.mode})),
				WithSeries(tt.series...))

			var ctrl *Controller
			for i := range tt.series {
				if ctrl = c.Controller(i); ctrl != nil && tt.series[i].YAxisID == "" {
					break
				}
			}
			if ctrl == nil {
				t.Fatal("no candle controller on the default axis")
			}

			count, err := ctrl.StackCount()
			if err != nil {
				t.Fatalf("StackCount() error: %v", err)
			}
			if count != tt.wantCount {
				t.Errorf("StackCount() = %d, want %d", count, tt.wantCount)
			}

			for i, want := range tt.wantIndex {
				if tt.series[i].YAxisID != "" {
					continue
				}
				got, err := ctrl.StackIndex(i)
				if err != nil {
					t.Fatalf("StackIndex(%d) error: %v", i, err)
				}
				if got != want {
					t.Errorf("StackIndex(%d) = %d, want %d", i, got, want)
				}
			}
		})
	}
}

func TestController_StackIndex_OutOfRange(t *testing.T) {
	c := newTestChart(1, Unstacked, WithSeries(candles()))
	if _, err := c.Controller(0).StackIndex(5); err == nil {
		t.Error("StackIndex(5) should fail for a chart with one series")
	}
}

func TestController_Ruler(t *testing.T) {
	c := newTestChart(4, Unstacked, WithSeries(candles(), candles()))

	r, err := c.Controller(0).Ruler()
	if err != nil {
		t.Fatalf("Ruler() error: %v", err)
	}
	want := Ruler{
		StackCount:      2,
		TickWidth:       100,
		CategoryWidth:   80,
		CategorySpacing: 10,
		FullBarWidth:    40,
		BarWidth:        36,
		BarSpacing:      4,
	}
	if !rulerNear(r, want) {
		t.Errorf("Ruler() = %+v, want %+v", r, want)
	}
}

func TestController_Ruler_NoVisibleSeries(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	s := candles(NewRecord(90, 100, 110, 120))
	s.Hidden = true
	c := newTestChart(1, StackedUnset, WithLogger(logger), WithSeries(s))

	r, err := c.Controller(0).Ruler()
	if err != nil {
		t.Fatalf("Ruler() error: %v", err)
	}
	if r.StackCount != 1 {
		t.Errorf("StackCount = %d, want 1", r.StackCount)
	}
	if !strings.Contains(logs.String(), "degenerate ruler") {
		t.Errorf("expected a degenerate ruler diagnostic, got %q", logs.String())
	}
}

func TestController_UpdateElement(t *testing.T) {
	s := candles(NewRecord(90, 100, 110, 120), nil)
	c := newTestChart(2, StackedUnset, WithSeries(s))
	ctrl := c.Controller(0)

	el, err := ctrl.UpdateElement(0, false)
	if err != nil {
		t.Fatalf("UpdateElement(0) error: %v", err)
	}
	if el == nil || el.Index() != 0 {
		t.Fatalf("UpdateElement(0) = %v, want element 0", el)
	}
	if got := c.Elements(0)[0]; got != el {
		t.Error("UpdateElement should store the element in the chart cache")
	}

	hole, err := ctrl.UpdateElement(1, false)
	if err != nil || hole != nil {
		t.Errorf("UpdateElement(hole) = %v, %v; want nil, nil", hole, err)
	}
}

func TestController_UpdateElement_NewHole(t *testing.T) {
	s := candles(NewRecord(90, 100, 110, 120))
	c := newTestChart(1, StackedUnset, WithSeries(s))
	if err := c.Layout(false); err != nil {
		t.Fatalf("Layout() error: %v", err)
	}
	if got := len(c.ElementsAt(50, 95)); got != 1 {
		t.Fatalf("ElementsAt before = %d elements, want 1", got)
	}

	s.Data[0] = nil
	el, err := c.Controller(0).UpdateElement(0, false)
	if err != nil || el != nil {
		t.Fatalf("UpdateElement(hole) = %v, %v; want nil, nil", el, err)
	}
	if got := c.Elements(0)[0]; got != nil {
		t.Errorf("cached element = %v, want nil", got)
	}
	if got := c.ElementsAt(50, 95); len(got) != 0 {
		t.Errorf("ElementsAt after = %v, want none", got)
	}
}

func TestController_Update_ReturnsElements(t *testing.T) {
	c := newTestChart(3, StackedUnset, WithSeries(candles(nil, NewRecord(90, 100, 110, 120), nil)))

	els, err := c.Controller(0).Update(false)
	if err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	if len(els) != 3 || els[0] != nil || els[1] == nil || els[2] != nil {
		t.Errorf("Update() = %v, want [nil element nil]", els)
	}
	if els[1].SeriesIndex() != 0 || els[1].Index() != 1 {
		t.Errorf("element identity = %d/%d, want 0/1", els[1].SeriesIndex(), els[1].Index())
	}
}

func TestController_Draw_EaseZeroSettles(t *testing.T) {
	s := candles(NewRecord(90, 100, 110, 120))
	c := newTestChart(1, StackedUnset, WithSeries(s))
	ctrl := c.Controller(0)
	if _, err := ctrl.Update(true); err != nil {
		t.Fatal(err)
	}
	if _, err := ctrl.Update(false); err != nil {
		t.Fatal(err)
	}

	if err := ctrl.Draw(NewRecordingSurface(), 0); err != nil {
		t.Fatalf("Draw() error: %v", err)
	}
	if got := c.Elements(0)[0].View().BodyTopY; !near(got, 90) {
		t.Errorf("BodyTopY after Draw(ease=0) = %v, want 90", got)
	}
}

func near(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}

func rulerNear(a, b Ruler) bool {
	return a.StackCount == b.StackCount &&
		near(a.TickWidth, b.TickWidth) &&
		near(a.CategoryWidth, b.CategoryWidth) &&
		near(a.CategorySpacing, b.CategorySpacing) &&
		near(a.FullBarWidth, b.FullBarWidth) &&
		near(a.BarWidth, b.BarWidth) &&
		near(a.BarSpacing, b.BarSpacing)
}
