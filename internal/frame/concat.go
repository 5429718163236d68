package frame

import "fmt"

// Join selects how concatenation aligns the non-concatenation axis.
type Join int

const (
	JoinOuter Join = iota
	JoinInner
)

// ParseJoin maps the textual alignment names onto Join.
func ParseJoin(s string) (Join, error) {
	switch s {
	case "outer":
		return JoinOuter, nil
	case "inner":
		return JoinInner, nil
	}
	return JoinOuter, fmt.Errorf("%w: join=%q", ErrBadKeySpec, s)
}

// ConcatRows stacks frames vertically. With JoinOuter the result carries the
// union of all column sets in first-seen order, absent cells NA; with
// JoinInner only columns present in every frame survive, ordered as in the
// first frame. Row labels are carried through, duplicates allowed.
func ConcatRows(frames []*Frame, join Join) (*Frame, error) {
	if len(frames) == 0 {
		return New()
	}

	var names []string
	switch join {
	case JoinOuter:
		seen := make(map[string]bool)
		for _, f := range frames {
			for _, name := range f.cols {
				if !seen[name] {
					seen[name] = true
					names = append(names, name)
				}
			}
		}
	case JoinInner:
		for _, name := range frames[0].cols {
			inAll := true
			for _, f := range frames[1:] {
				if !f.HasColumn(name) {
					inAll = false
					break
				}
			}
			if inAll {
				names = append(names, name)
			}
		}
	default:
		return nil, fmt.Errorf("%w: join=%d", ErrBadKeySpec, join)
	}

	total := 0
	for _, f := range frames {
		total += f.Len()
	}
	index := make([]string, 0, total)
	cols := make([]Column, len(names))
	for c, name := range names {
		cols[c] = Column{Name: name, Values: make([]Value, 0, total)}
	}
	for _, f := range frames {
		index = append(index, f.index...)
		for c, name := range names {
			src, ok := f.data[name]
			for i := 0; i < f.Len(); i++ {
				if ok {
					cols[c].Values = append(cols[c].Values, src[i])
				} else {
					cols[c].Values = append(cols[c].Values, NA())
				}
			}
		}
	}
	return NewIndexed(index, cols...)
}

// ConcatColumns places frames side by side, aligning rows by index label.
// JoinOuter keeps the union of labels (first frame's order, then new labels
// in order of appearance) with NA where a frame lacks the label; JoinInner
// keeps labels present in every frame, in the first frame's order. Column
// names must be distinct across inputs.
func ConcatColumns(frames []*Frame, join Join) (*Frame, error) {
	if len(frames) == 0 {
		return New()
	}

	var labels []string
	switch join {
	case JoinOuter:
		seen := make(map[string]bool)
		for _, f := range frames {
			for _, lbl := range f.index {
				if !seen[lbl] {
					seen[lbl] = true
					labels = append(labels, lbl)
				}
			}
		}
	case JoinInner:
		for _, lbl := range frames[0].index {
			inAll := true
			for _, f := range frames[1:] {
				if _, ok := labelPositions(f)[lbl]; !ok {
					inAll = false
					break
				}
			}
			if inAll {
				labels = append(labels, lbl)
			}
		}
	default:
		return nil, fmt.Errorf("%w: join=%d", ErrBadKeySpec, join)
	}

	var cols []Column
	seenName := make(map[string]bool)
	for _, f := range frames {
		pos := labelPositions(f)
		for _, name := range f.cols {
			if seenName[name] {
				return nil, fmt.Errorf("%w: %q", ErrDuplicateColumn, name)
			}
			seenName[name] = true
			vals := make([]Value, len(labels))
			for i, lbl := range labels {
				if p, ok := pos[lbl]; ok {
					vals[i] = f.data[name][p]
				}
			}
			cols = append(cols, Column{Name: name, Values: vals})
		}
	}
	return NewIndexed(labels, cols...)
}

// labelPositions maps each label to its first row position.
func labelPositions(f *Frame) map[string]int {
	pos := make(map[string]int, len(f.index))
	for i, lbl := range f.index {
		if _, ok := pos[lbl]; !ok {
			pos[lbl] = i
		}
	}
	return pos
}
