package frame

import (
	"fmt"
	"strings"
)

// How selects which unmatched rows a merge retains.
type How int

const (
	Inner How = iota
	Left
	Right
	Outer
)

func (h How) String() string {
	switch h {
	case Inner:
		return "inner"
	case Left:
		return "left"
	case Right:
		return "right"
	case Outer:
		return "outer"
	}
	return "unknown"
}

// ParseHow maps the textual join names onto How.
func ParseHow(s string) (How, error) {
	switch s {
	case "inner":
		return Inner, nil
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	case "outer":
		return Outer, nil
	}
	return Inner, fmt.Errorf("%w: how=%q", ErrBadKeySpec, s)
}

// MergeOptions configures a relational merge of two frames.
//
// Exactly one key specification must be given: On (same column names on both
// sides), LeftOn/RightOn (differing names), or the row index of either side
// via LeftIndex/RightIndex. Index keys may be mixed with a single named key
// on the other side.
type MergeOptions struct {
	How        How
	On         []string
	LeftOn     []string
	RightOn    []string
	LeftIndex  bool
	RightIndex bool
	// Suffixes disambiguate non-key columns present on both sides.
	// Zero value means "_x" and "_y".
	Suffixes [2]string
}

type keySide struct {
	cols     []string
	useIndex bool
}

func (k keySide) width() int {
	if k.useIndex {
		return 1
	}
	return len(k.cols)
}

// keyAt builds the match key for row i, or "" when any component is NA
// (NA never matches NA).
func (k keySide) keyAt(f *Frame, i int) string {
	if k.useIndex {
		return String(f.index[i]).hashKey()
	}
	parts := make([]string, len(k.cols))
	for c, name := range k.cols {
		v := f.data[name][i]
		if v.IsNA() {
			return ""
		}
		parts[c] = v.hashKey()
	}
	return strings.Join(parts, "\x1f")
}

func resolveKeys(left, right *Frame, opts MergeOptions) (keySide, keySide, error) {
	var lk, rk keySide
	switch {
	case len(opts.On) > 0:
		if len(opts.LeftOn) > 0 || len(opts.RightOn) > 0 || opts.LeftIndex || opts.RightIndex {
			return lk, rk, fmt.Errorf("%w: On excludes other key options", ErrBadKeySpec)
		}
		lk = keySide{cols: opts.On}
		rk = keySide{cols: opts.On}
	case opts.LeftIndex || len(opts.LeftOn) > 0:
		if opts.LeftIndex && len(opts.LeftOn) > 0 {
			return lk, rk, fmt.Errorf("%w: LeftIndex excludes LeftOn", ErrBadKeySpec)
		}
		lk = keySide{cols: opts.LeftOn, useIndex: opts.LeftIndex}
		if opts.RightIndex && len(opts.RightOn) > 0 {
			return lk, rk, fmt.Errorf("%w: RightIndex excludes RightOn", ErrBadKeySpec)
		}
		if !opts.RightIndex && len(opts.RightOn) == 0 {
			return lk, rk, fmt.Errorf("%w: right key missing", ErrBadKeySpec)
		}
		rk = keySide{cols: opts.RightOn, useIndex: opts.RightIndex}
	case opts.RightIndex || len(opts.RightOn) > 0:
		return lk, rk, fmt.Errorf("%w: left key missing", ErrBadKeySpec)
	default:
		return lk, rk, fmt.Errorf("%w: no key given", ErrBadKeySpec)
	}

	if lk.width() != rk.width() {
		return lk, rk, fmt.Errorf("%w: %d left keys vs %d right keys",
			ErrBadKeySpec, lk.width(), rk.width())
	}
	for _, name := range lk.cols {
		if !left.HasColumn(name) {
			return lk, rk, fmt.Errorf("%w: %q in left frame", ErrUnknownColumn, name)
		}
	}
	for _, name := range rk.cols {
		if !right.HasColumn(name) {
			return lk, rk, fmt.Errorf("%w: %q in right frame", ErrUnknownColumn, name)
		}
	}
	return lk, rk, nil
}

// Merge joins two frames on equal key values.
//
// Inner keeps matching rows only; when a key value occurs p times on the
// left and q times on the right the result holds p*q rows for it. Left and
// right keep every row of that side, filling the other side's columns with
// NA on no match. Outer keeps everything: all left rows first, then the
// unmatched right rows in right order. The result has a fresh positional
// index.
func Merge(left, right *Frame, opts MergeOptions) (*Frame, error) {
	lk, rk, err := resolveKeys(left, right, opts)
	if err != nil {
		return nil, err
	}
	sfx := opts.Suffixes
	if sfx[0] == "" && sfx[1] == "" {
		sfx = [2]string{"_x", "_y"}
	}

	// With On, the shared key columns appear once, on the left side.
	shared := make(map[string]bool, len(opts.On))
	for _, name := range opts.On {
		shared[name] = true
	}
	var rightOut []string
	for _, name := range right.cols {
		if !shared[name] {
			rightOut = append(rightOut, name)
		}
	}

	outNames := make([]string, 0, len(left.cols)+len(rightOut))
	overlap := make(map[string]bool)
	for _, name := range rightOut {
		if left.HasColumn(name) {
			overlap[name] = true
		}
	}
	for _, name := range left.cols {
		if overlap[name] {
			name += sfx[0]
		}
		outNames = append(outNames, name)
	}
	for _, name := range rightOut {
		if overlap[name] {
			name += sfx[1]
		}
		outNames = append(outNames, name)
	}

	// Positions of shared key columns in the left block, for back-filling
	// rows that exist only on the right.
	sharedPos := make(map[string]int)
	for c, name := range left.cols {
		if shared[name] {
			sharedPos[name] = c
		}
	}

	leftWidth := len(left.cols)
	makeRow := func(li, ri int) []Value {
		row := make([]Value, leftWidth+len(rightOut))
		if li >= 0 {
			copy(row, left.rowView(li))
		}
		if ri >= 0 {
			for c, name := range rightOut {
				row[leftWidth+c] = right.data[name][ri]
			}
			if li < 0 {
				for name, pos := range sharedPos {
					row[pos] = right.data[name][ri]
				}
			}
		}
		return row
	}

	var rows [][]Value
	switch opts.How {
	case Inner, Left, Outer:
		idx := buildKeyIndex(right, rk)
		matched := make([]bool, right.Len())
		for li := 0; li < left.Len(); li++ {
			hits := idx[lk.keyAt(left, li)]
			if len(hits) == 0 {
				if opts.How != Inner {
					rows = append(rows, makeRow(li, -1))
				}
				continue
			}
			for _, ri := range hits {
				matched[ri] = true
				rows = append(rows, makeRow(li, ri))
			}
		}
		if opts.How == Outer {
			for ri := 0; ri < right.Len(); ri++ {
				if !matched[ri] {
					rows = append(rows, makeRow(-1, ri))
				}
			}
		}
	case Right:
		idx := buildKeyIndex(left, lk)
		for ri := 0; ri < right.Len(); ri++ {
			hits := idx[rk.keyAt(right, ri)]
			if len(hits) == 0 {
				rows = append(rows, makeRow(-1, ri))
				continue
			}
			for _, li := range hits {
				rows = append(rows, makeRow(li, ri))
			}
		}
	default:
		return nil, fmt.Errorf("%w: how=%d", ErrBadKeySpec, opts.How)
	}

	return fromRows(outNames, rows)
}

// buildKeyIndex maps each key to the row positions holding it, in row order.
func buildKeyIndex(f *Frame, k keySide) map[string][]int {
	idx := make(map[string][]int, f.Len())
	for i := 0; i < f.Len(); i++ {
		key := k.keyAt(f, i)
		if key == "" {
			continue
		}
		idx[key] = append(idx[key], i)
	}
	return idx
}

func fromRows(names []string, rows [][]Value) (*Frame, error) {
	cols := make([]Column, len(names))
	for c, name := range names {
		vals := make([]Value, len(rows))
		for i, row := range rows {
			vals[i] = row[c]
		}
		cols[c] = Column{Name: name, Values: vals}
	}
	return New(cols...)
}
