package frame

import "math"

// Exceeding returns the row positions whose absolute value is greater than
// threshold. Non-numeric and NA cells never qualify.
func Exceeding(s *Series, threshold float64) []int {
	var hits []int
	for i := 0; i < s.Len(); i++ {
		if f, ok := s.At(i).Float(); ok && math.Abs(f) > threshold {
			hits = append(hits, i)
		}
	}
	return hits
}

// ClipAbs caps values exceeding the absolute threshold at the signed
// threshold: any v with |v| > t becomes sign(v)*t, everything else passes
// through untouched, NA included. Integer cells that get capped come back
// as floats, matching the float threshold.
func ClipAbs(s *Series, threshold float64) *Series {
	out := make([]Value, s.Len())
	for i := 0; i < s.Len(); i++ {
		v := s.At(i)
		if f, ok := v.Float(); ok && math.Abs(f) > threshold {
			out[i] = Float(math.Copysign(threshold, f))
			continue
		}
		out[i] = v
	}
	clipped, _ := NewIndexedSeries(s.Name(), s.Index(), out)
	return clipped
}
