package graphio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"gonum.org/v1/gonum/mat"
)

// LoadFeatures reads a dense node-feature table from the CSV at path.
// The first line is treated as a header and skipped; every remaining
// row must hold the same number of numeric cells. Row i of the result
// is the feature vector of node i.
//
// Errors: wrapped I/O errors, ErrRaggedRow, ErrBadFeature, ErrNoData.
func LoadFeatures(path string) (*mat.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("LoadFeatures: %w", err)
	}
	defer f.Close()

	x, err := loadFeatures(f)
	if err != nil {
		return nil, fmt.Errorf("LoadFeatures %s: %w", path, err)
	}

	return x, nil
}

func loadFeatures(r io.Reader) (*mat.Dense, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // widths checked manually for a precise error
	cr.TrimLeadingSpace = true

	var (
		data  []float64 // row-major backing storage
		rows  int       // data rows parsed so far
		width = -1      // column count fixed by the first data row
		first = true    // header flag
	)
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if first {
			first = false // header row: column names only
			continue
		}

		if width == -1 {
			width = len(record)
		} else if len(record) != width {
			return nil, fmt.Errorf("row %d: %d cells, want %d: %w", rows+1, len(record), width, ErrRaggedRow)
		}
		for _, cell := range record {
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("row %d: cell %q: %w", rows+1, cell, ErrBadFeature)
			}
			data = append(data, v)
		}
		rows++
	}

	if rows == 0 || width == 0 {
		return nil, ErrNoData
	}

	return mat.NewDense(rows, width, data), nil
}
