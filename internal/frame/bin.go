package frame

import (
	"fmt"
	"strconv"
)

// CutOptions configures interval assignment.
type CutOptions struct {
	// LeftClosed switches the intervals from the default (lo, hi], where a
	// value equal to an edge falls into the lower interval, to [lo, hi),
	// where it falls into the upper one.
	LeftClosed bool
	// Labels replaces the default interval rendering; when set it must have
	// exactly len(edges)-1 entries.
	Labels []string
}

// Cut assigns each numeric value of s to the interval it falls into and
// returns the interval labels as a new series. Values outside every
// interval, non-numeric cells, and NA cells all map to NA.
func Cut(s *Series, edges []float64, opts CutOptions) (*Series, error) {
	if len(edges) < 2 {
		return nil, ErrBadEdges
	}
	for i := 1; i < len(edges); i++ {
		if edges[i] <= edges[i-1] {
			return nil, fmt.Errorf("%w: edge %g follows %g", ErrBadEdges, edges[i], edges[i-1])
		}
	}
	nBins := len(edges) - 1
	if opts.Labels != nil && len(opts.Labels) != nBins {
		return nil, fmt.Errorf("%w: %d labels for %d bins", ErrLengthMismatch, len(opts.Labels), nBins)
	}

	labels := opts.Labels
	if labels == nil {
		labels = make([]string, nBins)
		for b := 0; b < nBins; b++ {
			labels[b] = intervalLabel(edges[b], edges[b+1], opts.LeftClosed)
		}
	}

	out := make([]Value, s.Len())
	for i := 0; i < s.Len(); i++ {
		f, ok := s.At(i).Float()
		if !ok {
			continue // stays NA
		}
		if b, ok := locateBin(f, edges, opts.LeftClosed); ok {
			out[i] = String(labels[b])
		}
	}
	return NewIndexedSeries(s.Name(), s.Index(), out)
}

func locateBin(v float64, edges []float64, leftClosed bool) (int, bool) {
	for b := 0; b < len(edges)-1; b++ {
		lo, hi := edges[b], edges[b+1]
		if leftClosed {
			if v >= lo && v < hi {
				return b, true
			}
		} else {
			if v > lo && v <= hi {
				return b, true
			}
		}
	}
	return 0, false
}

func intervalLabel(lo, hi float64, leftClosed bool) string {
	ls := strconv.FormatFloat(lo, 'g', -1, 64)
	hs := strconv.FormatFloat(hi, 'g', -1, 64)
	if leftClosed {
		return "[" + ls + ", " + hs + ")"
	}
	return "(" + ls + ", " + hs + "]"
}
