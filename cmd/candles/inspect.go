package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type inspectReport struct {
	Width  int            `yaml:"width"`
	Height int            `yaml:"height"`
	Series []seriesReport `yaml:"series"`
}

type seriesReport struct {
	Label      string          `yaml:"label"`
	Stack      string          `yaml:"stack,omitempty"`
	Hidden     bool            `yaml:"hidden,omitempty"`
	StackCount int             `yaml:"stack_count"`
	StackIndex int             `yaml:"stack_index"`
	Ruler      rulerReport     `yaml:"ruler"`
	Candles    []*candleReport `yaml:"candles"`
}

type rulerReport struct {
	TickWidth       float64 `yaml:"tick_width"`
	CategoryWidth   float64 `yaml:"category_width"`
	CategorySpacing float64 `yaml:"category_spacing"`
	FullBarWidth    float64 `yaml:"full_bar_width"`
	BarWidth        float64 `yaml:"bar_width"`
	BarSpacing      float64 `yaml:"bar_spacing"`
}

// candleReport is nil for holes so they print as null.
type candleReport struct {
	Label  string     `yaml:"label"`
	X      float64    `yaml:"x"`
	Width  float64    `yaml:"width"`
	Body   [2]float64 `yaml:"body,flow"`
	Shadow [2]float64 `yaml:"shadow,flow"`
	Hollow bool       `yaml:"hollow"`
}

func newInspectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [data]",
		Short: "Print the computed layout as YAML",
		Long:  "Print the ruler, stack slot and pixel geometry of every candle. Pixels are columns across and half rows down.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.plot(cmd.Context(), args, false)
			if err != nil {
				return err
			}
			report, err := inspect(p)
			if err != nil {
				return err
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(report); err != nil {
				return fmt.Errorf("encode report: %w", err)
			}
			return enc.Close()
		},
	}
}

func inspect(p *plot) (*inspectReport, error) {
	report := &inspectReport{Width: p.cols, Height: p.rows}
	for i := 0; i < p.chart.SeriesCount(); i++ {
		s := p.chart.Series(i)
		ctrl := p.chart.Controller(i)
		if ctrl == nil {
			continue
		}
		count, err := ctrl.StackCount()
		if err != nil {
			return nil, err
		}
		index, err := ctrl.StackIndex(i)
		if err != nil {
			return nil, err
		}
		ruler, err := ctrl.Ruler()
		if err != nil {
			return nil, err
		}

		sr := seriesReport{
			Label:      s.Label,
			Stack:      s.Stack.Name(),
			Hidden:     s.Hidden,
			StackCount: count,
			StackIndex: index,
			Ruler: rulerReport{
				TickWidth:       ruler.TickWidth,
				CategoryWidth:   ruler.CategoryWidth,
				CategorySpacing: ruler.CategorySpacing,
				FullBarWidth:    ruler.FullBarWidth,
				BarWidth:        ruler.BarWidth,
				BarSpacing:      ruler.BarSpacing,
			},
		}
		for _, el := range p.chart.Elements(i) {
			if el == nil {
				sr.Candles = append(sr.Candles, nil)
				continue
			}
			v := el.Model()
			sr.Candles = append(sr.Candles, &candleReport{
				Label:  v.Label,
				X:      v.X,
				Width:  v.Width,
				Body:   [2]float64{v.BodyTopY, v.BodyBottomY},
				Shadow: [2]float64{v.ShadowTopY, v.ShadowBottomY},
				Hollow: v.Hollow,
			})
		}
		report.Series = append(report.Series, sr)
	}
	return report, nil
}
