// Package main provides the candles CLI, which draws OHLC data as a
// candlestick chart in the terminal.
//
// Usage:
//
//	candles render [data]    Draw the chart
//	candles inspect [data]   Print the computed layout as YAML
//	candles hit [data]       List the candles under a point
//	candles version          Print the version
//
// Examples:
//
//	candles render prices.csv
//	candles render --reset --frames 20 prices.yaml
//	candles inspect --config chart.yaml
//	candles hit --label 2024-01-03 prices.db
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/afero"
)

const version = "0.1.0"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	a := &app{
		fs:      afero.NewOsFs(),
		environ: os.Environ(),
		size:    terminalSize,
	}
	if err := newRootCmd(a).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
