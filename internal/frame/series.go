package frame

import (
	"fmt"
	"strings"
)

// Series is a named, ordered sequence of values paired with row labels.
type Series struct {
	name   string
	values []Value
	index  []string
}

// NewSeries builds a series with a default positional index.
func NewSeries(name string, values []Value) *Series {
	return &Series{
		name:   name,
		values: values,
		index:  defaultIndex(len(values)),
	}
}

// NewIndexedSeries builds a series with explicit row labels.
func NewIndexedSeries(name string, index []string, values []Value) (*Series, error) {
	if len(index) != len(values) {
		return nil, fmt.Errorf("%w: %d labels for %d values", ErrLengthMismatch, len(index), len(values))
	}
	return &Series{name: name, values: values, index: index}, nil
}

func (s *Series) Name() string    { return s.name }
func (s *Series) Len() int        { return len(s.values) }
func (s *Series) Index() []string { return s.index }

// At returns the value at row position i.
func (s *Series) At(i int) Value { return s.values[i] }

// Values returns a copy of the underlying values.
func (s *Series) Values() []Value {
	out := make([]Value, len(s.values))
	copy(out, s.values)
	return out
}

func (s *Series) String() string {
	var b strings.Builder
	width := len(s.name)
	for _, lbl := range s.index {
		if len(lbl) > width {
			width = len(lbl)
		}
	}
	for i, v := range s.values {
		rendered := v.String()
		if v.IsNA() {
			rendered = naRender
		}
		fmt.Fprintf(&b, "%-*s  %s\n", width, s.index[i], rendered)
	}
	fmt.Fprintf(&b, "Name: %s, Length: %d\n", s.name, len(s.values))
	return b.String()
}

func defaultIndex(n int) []string {
	idx := make([]string, n)
	for i := range idx {
		idx[i] = fmt.Sprintf("%d", i)
	}
	return idx
}
