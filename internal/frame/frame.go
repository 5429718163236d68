// Package frame implements the in-memory tabular model: ordered named
// columns of typed values aligned by a shared row index, with relational
// merge, concatenation, reshape, and cleaning transformations. Every
// transformation returns a new frame; inputs are never mutated.
package frame

import (
	"fmt"
	"strings"
)

const naRender = "NA"

// Column is a named column literal used to construct a frame.
type Column struct {
	Name   string
	Values []Value
}

// Frame is an ordered collection of named columns sharing one row index.
// Every column has exactly len(index) values.
type Frame struct {
	cols  []string
	data  map[string][]Value
	index []string
}

// New builds a frame from column literals with a default positional index.
func New(cols ...Column) (*Frame, error) {
	n := 0
	if len(cols) > 0 {
		n = len(cols[0].Values)
	}
	return NewIndexed(defaultIndex(n), cols...)
}

// NewIndexed builds a frame with explicit row labels.
func NewIndexed(index []string, cols ...Column) (*Frame, error) {
	f := &Frame{
		data:  make(map[string][]Value, len(cols)),
		index: index,
	}
	for _, c := range cols {
		if _, exists := f.data[c.Name]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateColumn, c.Name)
		}
		if len(c.Values) != len(index) {
			return nil, fmt.Errorf("%w: column %q has %d values, index has %d",
				ErrLengthMismatch, c.Name, len(c.Values), len(index))
		}
		f.cols = append(f.cols, c.Name)
		vals := make([]Value, len(c.Values))
		copy(vals, c.Values)
		f.data[c.Name] = vals
	}
	return f, nil
}

// FromRecords builds a frame from row maps, one column per name in columns.
// Missing keys become NA; this is how decoded JSON documents become frames.
func FromRecords(records []map[string]Value, columns []string) (*Frame, error) {
	cols := make([]Column, len(columns))
	for i, name := range columns {
		vals := make([]Value, len(records))
		for j, rec := range records {
			vals[j] = rec[name] // zero Value is NA
		}
		cols[i] = Column{Name: name, Values: vals}
	}
	return New(cols...)
}

// Len is the number of rows.
func (f *Frame) Len() int { return len(f.index) }

// Columns returns the column names in order.
func (f *Frame) Columns() []string {
	out := make([]string, len(f.cols))
	copy(out, f.cols)
	return out
}

// Index returns the row labels in order.
func (f *Frame) Index() []string {
	out := make([]string, len(f.index))
	copy(out, f.index)
	return out
}

// HasColumn reports whether name exists in the frame.
func (f *Frame) HasColumn(name string) bool {
	_, ok := f.data[name]
	return ok
}

// Column returns the named column as a series sharing the frame's index.
func (f *Frame) Column(name string) (*Series, error) {
	vals, ok := f.data[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, name)
	}
	out := make([]Value, len(vals))
	copy(out, vals)
	return &Series{name: name, values: out, index: f.Index()}, nil
}

// At returns the cell at row position i of the named column.
func (f *Frame) At(i int, name string) (Value, error) {
	vals, ok := f.data[name]
	if !ok {
		return NA(), fmt.Errorf("%w: %q", ErrUnknownColumn, name)
	}
	return vals[i], nil
}

// WithColumn returns a copy of the frame with the series set as a column,
// replacing any existing column of the same name.
func (f *Frame) WithColumn(name string, s *Series) (*Frame, error) {
	if s.Len() != f.Len() {
		return nil, fmt.Errorf("%w: series has %d values, frame has %d rows",
			ErrLengthMismatch, s.Len(), f.Len())
	}
	out := f.clone()
	if _, exists := out.data[name]; !exists {
		out.cols = append(out.cols, name)
	}
	out.data[name] = s.Values()
	return out, nil
}

// Head returns the first n rows (all rows when n exceeds the length).
func (f *Frame) Head(n int) *Frame {
	if n > f.Len() {
		n = f.Len()
	}
	out := &Frame{
		cols:  f.Columns(),
		data:  make(map[string][]Value, len(f.cols)),
		index: f.index[:n],
	}
	for _, name := range f.cols {
		out.data[name] = f.data[name][:n]
	}
	return out
}

// String renders the frame as aligned columns, NA cells shown as NA.
func (f *Frame) String() string {
	widths := make([]int, len(f.cols)+1)
	for _, lbl := range f.index {
		if len(lbl) > widths[0] {
			widths[0] = len(lbl)
		}
	}
	cells := make([][]string, f.Len())
	for i := range cells {
		cells[i] = make([]string, len(f.cols))
	}
	for c, name := range f.cols {
		widths[c+1] = len(name)
		for i, v := range f.data[name] {
			r := v.String()
			if v.IsNA() {
				r = naRender
			}
			cells[i][c] = r
			if len(r) > widths[c+1] {
				widths[c+1] = len(r)
			}
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%-*s", widths[0], "")
	for c, name := range f.cols {
		fmt.Fprintf(&b, "  %*s", widths[c+1], name)
	}
	b.WriteByte('\n')
	for i := range cells {
		fmt.Fprintf(&b, "%-*s", widths[0], f.index[i])
		for c := range f.cols {
			fmt.Fprintf(&b, "  %*s", widths[c+1], cells[i][c])
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (f *Frame) clone() *Frame {
	out := &Frame{
		cols:  f.Columns(),
		data:  make(map[string][]Value, len(f.cols)),
		index: f.Index(),
	}
	for name, vals := range f.data {
		cp := make([]Value, len(vals))
		copy(cp, vals)
		out.data[name] = cp
	}
	return out
}

// rowView returns the values of row i in column order.
func (f *Frame) rowView(i int) []Value {
	row := make([]Value, len(f.cols))
	for c, name := range f.cols {
		row[c] = f.data[name][i]
	}
	return row
}
