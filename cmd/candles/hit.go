package main

import (
	"fmt"

	"github.com/grindlemire/go-candlestick"
	"github.com/spf13/cobra"
)

type hitOptions struct {
	x, y  float64
	label string
}

func newHitCmd(a *app) *cobra.Command {
	var opts hitOptions
	cmd := &cobra.Command{
		Use:   "hit [data]",
		Short: "List the candles under a point",
		Long: `List the candles whose body contains a pixel position, smallest first.

Without --y every candle spanning the column is listed. --label selects
the center column of a category instead of --x.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.plot(cmd.Context(), args, false)
			if err != nil {
				return err
			}

			x := opts.x
			if opts.label != "" {
				i, err := p.labelIndex(opts.label)
				if err != nil {
					return err
				}
				x = p.xAxis.PixelForIndex(i, true)
			}

			var found []*candlestick.CandleElement
			if cmd.Flags().Changed("y") {
				found = p.chart.ElementsAt(x, opts.y)
			} else {
				found = p.chart.ElementsAtX(x)
			}
			a.logger.Debug("hit test", "x", x, "y", opts.y, "found", len(found))
			if len(found) == 0 {
				return errNoElements
			}

			out := cmd.OutOrStdout()
			for _, el := range found {
				v := el.Model()
				fmt.Fprintf(out, "%s[%d] %s x=%.2f body=%.2f..%.2f area=%.2f\n",
					p.chart.Series(el.SeriesIndex()).Label, el.Index(), v.Label,
					v.X, v.BodyTopY, v.BodyBottomY, el.Area())
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.Float64Var(&opts.x, "x", 0, "pixel column")
	flags.Float64Var(&opts.y, "y", 0, "pixel row (two per terminal row)")
	flags.StringVar(&opts.label, "label", "", "category label to probe at its center")
	return cmd
}
