package source

import (
	"fmt"

	"github.com/grindlemire/go-candlestick/internal/layout"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

type yamlDataset struct {
	Labels []string     `yaml:"labels"`
	Series []yamlSeries `yaml:"series"`
}

type yamlSeries struct {
	Label  string      `yaml:"label"`
	Stack  string      `yaml:"stack"`
	YAxis  string      `yaml:"y_axis"`
	Hidden bool        `yaml:"hidden"`
	Data   [][]float64 `yaml:"data"`
}

// LoadYAML reads a dataset of the form
//
//	labels: [mon, tue]
//	series:
//	  - label: ACME
//	    stack: a
//	    data:
//	      - [90, 100, 110, 120]  # low, open, close, high
//	      - null                 # hole
//
// Missing labels are numbered from 1.
func LoadYAML(fs afero.Fs, path string) (*Dataset, error) {
	raw, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("read yaml: %w", err)
	}
	ds, err := parseYAML(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ds, nil
}

func parseYAML(raw []byte) (*Dataset, error) {
	var doc yamlDataset
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if len(doc.Series) == 0 {
		return nil, ErrNoData
	}

	ds := &Dataset{Labels: doc.Labels}
	for i, s := range doc.Series {
		sd := SeriesData{
			Label:   s.Label,
			Stack:   s.Stack,
			YAxisID: s.YAxis,
			Hidden:  s.Hidden,
			Records: make([]*layout.Record, len(s.Data)),
		}
		for j, tuple := range s.Data {
			if len(tuple) == 0 {
				continue
			}
			if len(tuple) > 4 {
				return nil, fmt.Errorf("series %d point %d: want at most 4 prices, got %d", i, j, len(tuple))
			}
			rec := layout.RecordFromTuple(tuple)
			sd.Records[j] = &rec
		}
		ds.Series = append(ds.Series, sd)
	}
	ds.normalize()
	return ds, nil
}
