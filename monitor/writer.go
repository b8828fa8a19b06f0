// SPDX-License-Identifier: MIT
// Package monitor: slog-backed scalar writer.

package monitor

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
)

var (
	// ErrClosed is returned when a scalar is added after Close.
	ErrClosed = errors.New("monitor: writer is closed")

	// ErrShortRow is returned when a performance row lacks the epoch,
	// AUC, F1_micro, F1 and F1_macro columns.
	ErrShortRow = errors.New("monitor: performance row too short")

	// ErrLengthMismatch is returned when the loss series cannot cover
	// every logged epoch.
	ErrLengthMismatch = errors.New("monitor: loss series shorter than performance log")
)

// Scalar tags mirroring the upstream evaluation log.
const (
	TagAUC     = "AUC"
	TagF1Micro = "F1_micro"
	TagF1      = "F1"
	TagF1Macro = "F1_macro"
	TagLoss    = "Loss"
)

// perfColumns is the minimum row width LogPerformance accepts:
// epoch, AUC, F1_micro, F1, F1_macro.
const perfColumns = 5

// Writer emits scalar metric records to a sink.
// Not safe for concurrent use; the surrounding pipeline logs from a
// single goroutine between evaluation steps.
type Writer struct {
	log    *slog.Logger
	buf    *bufio.Writer // non-nil for file-backed writers
	file   *os.File      // owned file, closed by Close
	closed bool
}

// NewWriter wraps an existing sink. The caller keeps ownership of w;
// Close only marks the writer finished.
func NewWriter(w io.Writer) *Writer {
	return &Writer{log: slog.New(slog.NewJSONHandler(w, nil))}
}

// Open creates (or truncates) a log file at path and returns a
// file-backed writer owning it.
func Open(path string) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("monitor.Open: %w", err)
	}
	buf := bufio.NewWriter(f)

	return &Writer{
		log:  slog.New(slog.NewJSONHandler(buf, nil)),
		buf:  buf,
		file: f,
	}, nil
}

// AddScalar records one named scalar at the given step.
func (w *Writer) AddScalar(tag string, value float64, step int) error {
	if w.closed {
		return fmt.Errorf("AddScalar %s: %w", tag, ErrClosed)
	}
	w.log.Info("scalar",
		slog.String("tag", tag),
		slog.Float64("value", value),
		slog.Int("step", step),
	)

	return nil
}

// LogPerformance writes the whole evaluation history. Row layout is
// [epoch, AUC, F1_micro, F1, F1_macro]; the first row is the pre-training
// baseline and is skipped, and loss[i-1] accompanies row i.
//
// Stage 1 (Validate): row widths and loss coverage, before any output.
// Stage 2 (Execute): emit scalars row by row, epoch as the step.
func (w *Writer) LogPerformance(perf [][]float64, loss []float64) error {
	if w.closed {
		return fmt.Errorf("LogPerformance: %w", ErrClosed)
	}
	// Validate everything first: no partially-written histories.
	for i, row := range perf {
		if len(row) < perfColumns {
			return fmt.Errorf("LogPerformance: row %d has %d columns: %w", i, len(row), ErrShortRow)
		}
	}
	if len(perf) > 0 && len(loss) < len(perf)-1 {
		return fmt.Errorf("LogPerformance: %d loss values for %d rows: %w", len(loss), len(perf), ErrLengthMismatch)
	}

	for i, row := range perf {
		if i == 0 {
			continue // baseline row predates training
		}
		step := int(row[0])
		for _, s := range []struct {
			tag string
			val float64
		}{
			{TagAUC, row[1]},
			{TagF1Micro, row[2]},
			{TagF1, row[3]},
			{TagF1Macro, row[4]},
			{TagLoss, loss[i-1]},
		} {
			if err := w.AddScalar(s.tag, s.val, step); err != nil {
				return err
			}
		}
	}

	return nil
}

// Close flushes buffered records and releases the owned file, if any.
// Idempotent: second and later calls are no-ops.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	if w.buf != nil {
		if err := w.buf.Flush(); err != nil {
			if w.file != nil {
				_ = w.file.Close() // still release the descriptor
			}
			return fmt.Errorf("monitor.Close: flush: %w", err)
		}
	}
	if w.file != nil {
		if err := w.file.Close(); err != nil {
			return fmt.Errorf("monitor.Close: %w", err)
		}
	}

	return nil
}
