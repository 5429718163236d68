package frame

import "sort"

// GetDummies encodes a categorical series as binary indicator columns, one
// per distinct non-NA value, each row carrying exactly one 1 across them.
// Rows with NA carry all zeros. Columns are named prefix + value rendering
// (or the bare rendering when prefix is empty) and ordered by rendering.
func GetDummies(s *Series, prefix string) (*Frame, error) {
	var rendered []string
	colOf := make(map[string]int)
	keys := make([]string, s.Len())
	for i := 0; i < s.Len(); i++ {
		v := s.At(i)
		if v.IsNA() {
			continue
		}
		key := v.String()
		keys[i] = key
		if _, ok := colOf[key]; !ok {
			colOf[key] = 0 // position assigned after sorting
			rendered = append(rendered, key)
		}
	}
	sort.Strings(rendered)
	for c, key := range rendered {
		colOf[key] = c
	}

	cols := make([]Column, len(rendered))
	for c, key := range rendered {
		cols[c] = Column{Name: prefix + key, Values: make([]Value, s.Len())}
		for i := range cols[c].Values {
			cols[c].Values[i] = Int(0)
		}
	}
	for i := 0; i < s.Len(); i++ {
		if s.At(i).IsNA() {
			continue
		}
		cols[colOf[keys[i]]].Values[i] = Int(1)
	}
	return NewIndexed(s.Index(), cols...)
}
