package demand

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// LoadSeriesCSV reads a demand series from a tabular file with a named
// "demand" column. Extra columns are ignored; values must be non-negative
// numbers. The caller decides how many rows it needs (rows beyond the
// horizon are dropped by NewFixedSource).
func LoadSeriesCSV(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: empty file", path)
	}

	col := -1
	for i, name := range rows[0] {
		if strings.EqualFold(strings.TrimSpace(name), "demand") {
			col = i
			break
		}
	}
	if col == -1 {
		return nil, fmt.Errorf("%s: no \"demand\" column in header %v", path, rows[0])
	}

	series := make([]float64, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if col >= len(row) {
			return nil, fmt.Errorf("%s: row %d has no demand value", path, i+2)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(row[col]), 64)
		if err != nil {
			return nil, fmt.Errorf("%s: row %d: invalid demand %q", path, i+2, row[col])
		}
		if v < 0 {
			return nil, fmt.Errorf("%s: row %d: demand is negative (%v)", path, i+2, v)
		}
		series = append(series, v)
	}
	return series, nil
}

// WriteSeriesCSV writes a single-column demand file in the format
// LoadSeriesCSV reads.
func WriteSeriesCSV(path string, series []float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"demand"}); err != nil {
		return err
	}
	for _, v := range series {
		if err := w.Write([]string{strconv.FormatFloat(v, 'f', -1, 64)}); err != nil {
			return err
		}
	}
	return w.Error()
}
