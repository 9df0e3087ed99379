package layout

import (
	"math"
	"testing"
)

const eps = 1e-9

func approx(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func TestComputeRuler(t *testing.T) {
	type tc struct {
		geom       AxisGeometry
		stackCount int
		want       Ruler
	}

	tests := map[string]tc{
		"single stack": {
			geom:       AxisGeometry{Width: 100, TickCount: 1, CategoryPercentage: 0.8, BarPercentage: 0.9},
			stackCount: 1,
			want: Ruler{
				StackCount:      1,
				TickWidth:       100,
				CategoryWidth:   80,
				CategorySpacing: 10,
				FullBarWidth:    80,
				BarWidth:        72,
				BarSpacing:      8,
			},
		},
		"two stacks over four ticks": {
			geom:       AxisGeometry{Width: 400, TickCount: 4, CategoryPercentage: 0.5, BarPercentage: 0.5},
			stackCount: 2,
			want: Ruler{
				StackCount:      2,
				TickWidth:       100,
				CategoryWidth:   50,
				CategorySpacing: 25,
				FullBarWidth:    25,
				BarWidth:        12.5,
				BarSpacing:      12.5,
			},
		},
		"zero stacks is treated as one": {
			geom:       AxisGeometry{Width: 100, TickCount: 1, CategoryPercentage: 1, BarPercentage: 1},
			stackCount: 0,
			want: Ruler{
				StackCount:    1,
				TickWidth:     100,
				CategoryWidth: 100,
				FullBarWidth:  100,
				BarWidth:      100,
			},
		},
		"no ticks gives zero widths": {
			geom:       AxisGeometry{Width: 100, TickCount: 0, CategoryPercentage: 0.8, BarPercentage: 0.9},
			stackCount: 1,
			want:       Ruler{StackCount: 1},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := ComputeRuler(tt.geom, tt.stackCount)
			if got.StackCount != tt.want.StackCount {
				t.Errorf("StackCount = %d, want %d", got.StackCount, tt.want.StackCount)
			}
			checks := []struct {
				name      string
				got, want float64
			}{
				{"TickWidth", got.TickWidth, tt.want.TickWidth},
				{"CategoryWidth", got.CategoryWidth, tt.want.CategoryWidth},
				{"CategorySpacing", got.CategorySpacing, tt.want.CategorySpacing},
				{"FullBarWidth", got.FullBarWidth, tt.want.FullBarWidth},
				{"BarWidth", got.BarWidth, tt.want.BarWidth},
				{"BarSpacing", got.BarSpacing, tt.want.BarSpacing},
			}
			for _, c := range checks {
				if !approx(c.got, c.want) {
					t.Errorf("%s = %v, want %v", c.name, c.got, c.want)
				}
			}
		})
	}
}

func TestComputeRuler_Invariants(t *testing.T) {
	for stacks := 1; stacks <= 5; stacks++ {
		r := ComputeRuler(AxisGeometry{Width: 300, TickCount: 7, CategoryPercentage: 0.8, BarPercentage: 0.9}, stacks)
		if !approx(r.FullBarWidth, r.CategoryWidth/float64(stacks)) {
			t.Errorf("stacks=%d: FullBarWidth = %v, want CategoryWidth/%d", stacks, r.FullBarWidth, stacks)
		}
		if r.BarWidth > r.FullBarWidth {
			t.Errorf("stacks=%d: BarWidth %v exceeds FullBarWidth %v", stacks, r.BarWidth, r.FullBarWidth)
		}
		if !approx(r.BarWidth+r.BarSpacing, r.FullBarWidth) {
			t.Errorf("stacks=%d: BarWidth+BarSpacing = %v, want %v", stacks, r.BarWidth+r.BarSpacing, r.FullBarWidth)
		}
	}
}
