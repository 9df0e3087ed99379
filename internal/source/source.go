// Package source loads OHLC datasets from CSV, YAML and SQLite files.
package source

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/grindlemire/go-candlestick/internal/layout"
	"github.com/spf13/afero"
)

// ErrNoData is returned when a source contains no series.
var ErrNoData = errors.New("source: no data")

// SeriesData is one series as read from a source. Records[i] belongs to
// Labels[i] of the enclosing Dataset; nil records are holes.
type SeriesData struct {
	Label   string
	Stack   string // Empty leaves the stack unset
	YAxisID string // Empty uses the default value axis
	Hidden  bool
	Records []*layout.Record
}

// Dataset is a set of series sharing one list of category labels.
type Dataset struct {
	Labels []string
	Series []SeriesData
}

// normalize pads the labels so every record has one. Generated labels are
// 1-based indexes.
func (d *Dataset) normalize() {
	n := len(d.Labels)
	for _, s := range d.Series {
		n = max(n, len(s.Records))
	}
	for i := len(d.Labels); i < n; i++ {
		d.Labels = append(d.Labels, strconv.Itoa(i+1))
	}
}

// Load picks a loader from the file extension. CSV and YAML files are read
// through fs; SQLite databases are opened by the driver from the OS file
// system, so fs is ignored for them.
func Load(ctx context.Context, fs afero.Fs, path, query string) (*Dataset, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return LoadCSV(fs, path)
	case ".yaml", ".yml":
		return LoadYAML(fs, path)
	case ".db", ".sqlite", ".sqlite3":
		return LoadSQLite(ctx, path, query)
	default:
		return nil, fmt.Errorf("source: unsupported data file %q", path)
	}
}

// seriesName derives a series label from a file name.
func seriesName(path string) string {
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}
