// Package layout implements the pure-Go candle layout engine.
//
// It decides how bar-like series share a category slot (stack membership and
// stack index), derives the per-axis [Ruler] of pixel sizes, and converts an
// OHLC [Record] into candle body and wick pixels. Everything here is a pure
// function of its inputs. Types are re-exported through the root candlestick
// package for public consumption.
//
// The main entry points are [StackCount], [StackIndex], [ComputeRuler],
// [BarCenterX] and [ComputeBody].
package layout
