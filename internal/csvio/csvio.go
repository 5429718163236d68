// Package csvio round-trips frames through delimited text. The header row
// carries column names; cell types are re-inferred per column on read, so a
// written frame reads back equal.
package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/framefeed/framefeed/internal/frame"
)

// ErrEmptyInput means the reader held no header row.
var ErrEmptyInput = errors.New("no header row")

// Options configures both directions of the round-trip.
type Options struct {
	// Comma is the field delimiter, ',' when zero.
	Comma rune
	// NAToken renders NA cells and is recognized back as NA. Default is the
	// empty field.
	NAToken string
	// IndexColumn, when set, writes row labels under this column name and
	// restores them as the index on read.
	IndexColumn string
}

func (o Options) comma() rune {
	if o.Comma == 0 {
		return ','
	}
	return o.Comma
}

// Write renders the frame as delimited text with a header row.
func Write(w io.Writer, f *frame.Frame, opts Options) error {
	cw := csv.NewWriter(w)
	cw.Comma = opts.comma()

	names := f.Columns()
	header := names
	if opts.IndexColumn != "" {
		header = append([]string{opts.IndexColumn}, names...)
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	index := f.Index()
	for i := 0; i < f.Len(); i++ {
		record := make([]string, 0, len(header))
		if opts.IndexColumn != "" {
			record = append(record, index[i])
		}
		for _, name := range names {
			v, err := f.At(i, name)
			if err != nil {
				return err
			}
			if v.IsNA() {
				record = append(record, opts.NAToken)
			} else {
				record = append(record, v.String())
			}
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// Read parses delimited text into a frame, inferring each column's type
// from its values: all-int, then all-float, then all-bool, else string.
func Read(r io.Reader, opts Options) (*frame.Frame, error) {
	cr := csv.NewReader(r)
	cr.Comma = opts.comma()

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse csv: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrEmptyInput
	}

	header := records[0]
	body := records[1:]
	indexPos := -1
	if opts.IndexColumn != "" {
		for i, name := range header {
			if name == opts.IndexColumn {
				indexPos = i
				break
			}
		}
	}

	var index []string
	if indexPos >= 0 {
		for _, rec := range body {
			index = append(index, rec[indexPos])
		}
	}

	var cols []frame.Column
	for c, name := range header {
		if c == indexPos {
			continue
		}
		raw := make([]string, len(body))
		for i, rec := range body {
			raw[i] = rec[c]
		}
		cols = append(cols, frame.Column{Name: name, Values: inferColumn(raw, opts.NAToken)})
	}

	if indexPos >= 0 {
		return frame.NewIndexed(index, cols...)
	}
	return frame.New(cols...)
}

func inferColumn(raw []string, naToken string) []frame.Value {
	isInt, isFloat, isBool := true, true, true
	for _, s := range raw {
		if s == naToken {
			continue
		}
		if _, err := strconv.ParseInt(s, 10, 64); err != nil {
			isInt = false
		}
		if _, err := strconv.ParseFloat(s, 64); err != nil {
			isFloat = false
		}
		if s != "true" && s != "false" {
			isBool = false
		}
	}

	out := make([]frame.Value, len(raw))
	for i, s := range raw {
		if s == naToken {
			continue // stays NA
		}
		switch {
		case isInt:
			n, _ := strconv.ParseInt(s, 10, 64)
			out[i] = frame.Int(n)
		case isFloat:
			f, _ := strconv.ParseFloat(s, 64)
			out[i] = frame.Float(f)
		case isBool:
			out[i] = frame.Bool(s == "true")
		default:
			out[i] = frame.String(s)
		}
	}
	return out
}
