package frame

import (
	"fmt"
	"strings"
)

// Entry is one cell of a stacked frame, addressed by its row label and
// column name.
type Entry struct {
	Row string
	Col string
	Val Value
}

// Stacked is the one-dimensional form of a frame: a sequence of cells
// indexed by the (row label, column name) pair.
type Stacked struct {
	entries []Entry
}

// NewStacked wraps pre-built entries, as when a stacked table is read back
// from disk.
func NewStacked(entries []Entry) *Stacked {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return &Stacked{entries: out}
}

// Stack pivots a frame into its stacked form, walking rows in index order
// and columns in frame order within each row. NA cells are skipped, so
// stacking drops missing data the way the two-dimensional form cannot.
func Stack(f *Frame) *Stacked {
	s := &Stacked{}
	for i := 0; i < f.Len(); i++ {
		for _, name := range f.cols {
			v := f.data[name][i]
			if v.IsNA() {
				continue
			}
			s.entries = append(s.entries, Entry{Row: f.index[i], Col: name, Val: v})
		}
	}
	return s
}

// Entries returns the stacked cells in order.
func (s *Stacked) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

func (s *Stacked) Len() int { return len(s.entries) }

func (s *Stacked) String() string {
	var b strings.Builder
	for _, e := range s.entries {
		fmt.Fprintf(&b, "%s  %s  %s\n", e.Row, e.Col, e.Val)
	}
	return b.String()
}

// Unstack restores the two-dimensional form. Row labels and column names
// appear in first-seen order; pairs never stacked come back as NA, which
// makes Unstack(Stack(f)) reproduce f exactly whenever f had no NA cells.
// A duplicate (row, column) pair is an error.
func Unstack(s *Stacked) (*Frame, error) {
	var labels, names []string
	rowPos := make(map[string]int)
	colPos := make(map[string]int)
	for _, e := range s.entries {
		if _, ok := rowPos[e.Row]; !ok {
			rowPos[e.Row] = len(labels)
			labels = append(labels, e.Row)
		}
		if _, ok := colPos[e.Col]; !ok {
			colPos[e.Col] = len(names)
			names = append(names, e.Col)
		}
	}

	cols := make([]Column, len(names))
	filled := make([][]bool, len(names))
	for c, name := range names {
		cols[c] = Column{Name: name, Values: make([]Value, len(labels))}
		filled[c] = make([]bool, len(labels))
	}
	for _, e := range s.entries {
		r, c := rowPos[e.Row], colPos[e.Col]
		if filled[c][r] {
			return nil, fmt.Errorf("%w: (%q, %q)", ErrDuplicatePair, e.Row, e.Col)
		}
		filled[c][r] = true
		cols[c].Values[r] = e.Val
	}
	return NewIndexed(labels, cols...)
}
