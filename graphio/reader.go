package graphio

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/ostrevka/sgembed/sigadj"
)

// edgeFieldCount is the minimum number of columns in an edge row:
// source id, target id, sign. Extra columns are ignored.
const edgeFieldCount = 3

// Dataset is the parsed form of a signed edge-list file.
type Dataset struct {
	Positive sigadj.EdgeList // rows with sign +1
	Negative sigadj.EdgeList // rows with sign −1
	// EdgeCount is the total number of data rows, including rows whose
	// sign is neither +1 nor −1 (graded ratings stay in the statistics
	// but never in the edge lists).
	EdgeCount int
	// NodeCount is max(distinct endpoint count, max endpoint id + 1):
	// always large enough to index every endpoint in either edge list.
	NodeCount int
}

// NegativeRatio returns |negative| / EdgeCount, the classification
// threshold used by the link-sign metrics. Zero when the set is empty.
func (d *Dataset) NegativeRatio() float64 {
	if d.EdgeCount == 0 {
		return 0
	}
	return float64(len(d.Negative)) / float64(d.EdgeCount)
}

// ReadGraph parses the signed edge list at path.
//
// Stage 1 (Validate): open the file; sniff the delimiter from the first
// line unless WithComma fixed one.
// Stage 2 (Execute): stream records, partitioning by sign and tracking
// endpoint statistics in a single pass.
// Stage 3 (Finalize): derive NodeCount and return.
//
// Errors: wrapped I/O errors, ErrBadRecord, ErrBadSign.
func ReadGraph(path string, opts ...Option) (*Dataset, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ReadGraph: %w", err)
	}
	defer f.Close()

	ds, err := readGraph(f, o)
	if err != nil {
		return nil, fmt.Errorf("ReadGraph %s: %w", path, err)
	}

	return ds, nil
}

// readGraph does the actual parsing; split out for direct testing on
// in-memory readers.
func readGraph(r io.Reader, o options) (*Dataset, error) {
	br := bufio.NewReader(r)

	// Resolve the delimiter: explicit option wins, otherwise sniff.
	comma := o.comma
	if comma == sniffComma {
		comma = sniffDelimiter(br)
	}

	cr := csv.NewReader(br)
	cr.Comma = comma
	cr.FieldsPerRecord = -1 // row width checked manually below
	cr.TrimLeadingSpace = true

	ds := &Dataset{}
	seen := make(map[int]struct{})
	maxID := -1
	first := true
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if first && o.header {
			first = false
			continue
		}
		first = false

		if len(record) < edgeFieldCount {
			return nil, fmt.Errorf("row %d: %d fields: %w", ds.EdgeCount+1, len(record), ErrBadRecord)
		}
		src, err := parseNodeID(record[0])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", ds.EdgeCount+1, err)
		}
		dst, err := parseNodeID(record[1])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", ds.EdgeCount+1, err)
		}
		sign, err := strconv.ParseFloat(record[2], 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: sign %q: %w", ds.EdgeCount+1, record[2], ErrBadSign)
		}

		// Update statistics for every data row.
		ds.EdgeCount++
		seen[src] = struct{}{}
		seen[dst] = struct{}{}
		if src > maxID {
			maxID = src
		}
		if dst > maxID {
			maxID = dst
		}

		// Partition strictly signed rows.
		switch sign {
		case 1:
			ds.Positive = append(ds.Positive, sigadj.Edge{Src: src, Dst: dst})
		case -1:
			ds.Negative = append(ds.Negative, sigadj.Edge{Src: src, Dst: dst})
		}
	}

	// Finalize node count: distinct endpoints vs densest possible index.
	ds.NodeCount = len(seen)
	if maxID+1 > ds.NodeCount {
		ds.NodeCount = maxID + 1
	}

	return ds, nil
}

// parseNodeID parses a non-negative integer node identifier.
func parseNodeID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id < 0 {
		return 0, fmt.Errorf("node id %q: %w", s, ErrBadRecord)
	}
	return id, nil
}

// sniffDelimiter inspects the buffered first line and picks tab when
// one is present, comma otherwise. Peek never consumes, so the csv
// reader still sees the full stream.
func sniffDelimiter(br *bufio.Reader) rune {
	peek, _ := br.Peek(4096)
	for _, b := range peek {
		switch b {
		case '\n':
			return ','
		case '\t':
			return '\t'
		}
	}
	return ','
}
