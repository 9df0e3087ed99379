package source

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/grindlemire/go-candlestick/internal/layout"
	"github.com/spf13/afero"
)

var csvColumns = []string{"label", "low", "open", "close", "high"}

// LoadCSV reads a single series from a CSV file with a header naming the
// label, low, open, close and high columns in any order. A row whose price
// cells are all empty is a hole; a single empty cell becomes NaN.
func LoadCSV(fs afero.Fs, path string) (*Dataset, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	ds, err := readCSV(f, seriesName(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ds, nil
}

func readCSV(r io.Reader, name string) (*Dataset, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrNoData
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	idx := make([]int, len(csvColumns))
	for i, name := range csvColumns {
		c, ok := cols[name]
		if !ok {
			return nil, fmt.Errorf("missing %q column", name)
		}
		idx[i] = c
	}

	ds := &Dataset{Series: []SeriesData{{Label: name}}}
	for line := 2; ; line++ {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		cell := func(i int) string {
			if idx[i] >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[idx[i]])
		}

		var prices [4]float64
		empty := 0
		for i := range prices {
			s := cell(i + 1)
			if s == "" {
				prices[i] = math.NaN()
				empty++
				continue
			}
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d %s: %w", line, csvColumns[i+1], err)
			}
			prices[i] = v
		}

		ds.Labels = append(ds.Labels, cell(0))
		if empty == len(prices) {
			ds.Series[0].Records = append(ds.Series[0].Records, nil)
			continue
		}
		rec := layout.RecordFromTuple(prices[:])
		ds.Series[0].Records = append(ds.Series[0].Records, &rec)
	}

	if len(ds.Labels) == 0 {
		return nil, ErrNoData
	}
	return ds, nil
}
