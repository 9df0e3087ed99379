package source

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"strings"

	"github.com/grindlemire/go-candlestick/internal/layout"
	_ "github.com/mattn/go-sqlite3"
)

// DefaultQuery reads a "candles" table in insertion order.
const DefaultQuery = `SELECT label, low, open, close, high FROM candles ORDER BY rowid`

// uriEscaper escapes the characters SQLite gives meaning to in a URI
// filename.
var uriEscaper = strings.NewReplacer("%", "%25", "?", "%3f", "#", "%23")

// readOnlyDSN returns a read-only SQLite URI for the file at path.
func readOnlyDSN(path string) string {
	return "file:" + uriEscaper.Replace(path) + "?mode=ro"
}

// LoadSQLite runs query against the SQLite database at path. The query
// must return (label, low, open, close, high); a row whose prices are all
// NULL is a hole and a single NULL price becomes NaN.
func LoadSQLite(ctx context.Context, path, query string) (*Dataset, error) {
	if query == "" {
		query = DefaultQuery
	}

	db, err := sql.Open("sqlite3", readOnlyDSN(path))
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", path, err)
	}
	defer rows.Close()

	ds := &Dataset{Series: []SeriesData{{Label: seriesName(path)}}}
	for rows.Next() {
		var label sql.NullString
		var prices [4]sql.NullFloat64
		if err := rows.Scan(&label, &prices[0], &prices[1], &prices[2], &prices[3]); err != nil {
			return nil, fmt.Errorf("scan %s: %w", path, err)
		}

		ds.Labels = append(ds.Labels, label.String)

		var tuple [4]float64
		valid := 0
		for i, p := range prices {
			tuple[i] = math.NaN()
			if p.Valid {
				tuple[i] = p.Float64
				valid++
			}
		}
		if valid == 0 {
			ds.Series[0].Records = append(ds.Series[0].Records, nil)
			continue
		}
		rec := layout.RecordFromTuple(tuple[:])
		ds.Series[0].Records = append(ds.Series[0].Records, &rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(ds.Labels) == 0 {
		return nil, ErrNoData
	}
	return ds, nil
}
