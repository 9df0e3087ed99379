package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/grindlemire/go-candlestick"
	"github.com/spf13/cobra"
)

type renderOptions struct {
	reset  bool
	ease   float64
	plain  bool
	frames int
	fps    int
}

func newRenderCmd(a *app) *cobra.Command {
	var opts renderOptions
	cmd := &cobra.Command{
		Use:   "render [data]",
		Short: "Draw the chart",
		Long: `Draw the chart with half-block characters, two candle pixels per row.

With --frames the candles grow from the value axis base (or from their
previous layout) over the given number of frames.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.ease < 0 || opts.ease > 1 {
				return fmt.Errorf("--ease %v must be in [0, 1]", opts.ease)
			}
			if opts.frames < 0 || opts.fps < 1 {
				return fmt.Errorf("--frames must not be negative and --fps must be positive")
			}

			p, err := a.plot(cmd.Context(), args, opts.reset)
			if err != nil {
				return err
			}
			if opts.reset {
				// The reset layout becomes the start of the transition.
				if err := p.chart.Layout(false); err != nil {
					return fmt.Errorf("layout: %w", err)
				}
			}

			caps := candlestick.DetectCapabilities()
			if opts.plain {
				caps.Colors = candlestick.ColorNone
			}
			a.logger.Debug("rendering", "size", fmt.Sprintf("%dx%d", p.cols, p.rows), "caps", caps.String())

			out := cmd.OutOrStdout()
			if opts.frames > 0 {
				return animate(cmd.Context(), out, p, caps, opts)
			}
			return renderFrame(out, p, caps, opts.ease)
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&opts.reset, "reset", false, "start candles at the value axis base")
	flags.Float64Var(&opts.ease, "ease", 1, "transition progress of a single frame")
	flags.BoolVar(&opts.plain, "plain", false, "draw without colors")
	flags.IntVar(&opts.frames, "frames", 0, "animate the transition over this many frames")
	flags.IntVar(&opts.fps, "fps", 30, "animation frame rate")
	return cmd
}

// draw paints the chart at ease and returns the composed cells.
func draw(p *plot, ease float64, surface *candlestick.CellSurface, buf *candlestick.Buffer) error {
	surface.Clear()
	if err := p.chart.Draw(surface, ease); err != nil {
		return err
	}
	surface.Flush(buf)
	return nil
}

func renderFrame(w io.Writer, p *plot, caps candlestick.Capabilities, ease float64) error {
	buf := candlestick.NewBuffer(p.cols, p.rows)
	if err := draw(p, ease, candlestick.NewCellSurface(p.cols, p.rows), buf); err != nil {
		return err
	}
	if err := candlestick.WriteFrame(w, buf, caps); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, p.caption())
	return err
}

// animate redraws the chart in place, writing only the cells that changed
// between frames.
func animate(ctx context.Context, w io.Writer, p *plot, caps candlestick.Capabilities, opts renderOptions) error {
	surface := candlestick.NewCellSurface(p.cols, p.rows)
	buf := candlestick.NewBuffer(p.cols, p.rows)
	delay := time.Second / time.Duration(opts.fps)

	if err := candlestick.BeginAnimation(w); err != nil {
		return err
	}
	ticker := time.NewTicker(delay)
	defer ticker.Stop()

	var err error
	for f := 1; f <= opts.frames; f++ {
		if err = draw(p, float64(f)/float64(opts.frames), surface, buf); err != nil {
			break
		}
		if err = candlestick.WriteDiff(w, buf, caps, 0); err != nil {
			break
		}
		if f == opts.frames {
			break
		}
		select {
		case <-ctx.Done():
			err = ctx.Err()
		case <-ticker.C:
		}
		if err != nil {
			break
		}
	}

	if endErr := candlestick.EndAnimation(w, p.rows); err == nil {
		err = endErr
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, p.caption())
	return err
}
