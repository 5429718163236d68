package frame

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetDummies(t *testing.T) {
	t.Parallel()
	req := require.New(t)
	s := NewSeries("fruit", []Value{String("b"), String("a"), String("b"), NA()})
	got, err := GetDummies(s, "fruit_")
	req.NoError(err)
	req.Equal([]string{"fruit_a", "fruit_b"}, got.Columns())
	req.Equal(4, got.Len())

	// Every non-NA row carries exactly one indicator.
	for i := 0; i < 3; i++ {
		sum := int64(0)
		for _, name := range got.Columns() {
			v, err := got.At(i, name)
			req.NoError(err)
			n, ok := v.Int()
			req.True(ok)
			sum += n
		}
		req.Equal(int64(1), sum, "row %d", i)
	}

	// The NA row is all zeros.
	for _, name := range got.Columns() {
		v, err := got.At(3, name)
		req.NoError(err)
		n, _ := v.Int()
		req.Equal(int64(0), n)
	}

	v, err := got.At(0, "fruit_b")
	req.NoError(err)
	n, _ := v.Int()
	req.Equal(int64(1), n)
}

func TestGetDummies_NoPrefix(t *testing.T) {
	t.Parallel()
	req := require.New(t)
	s := NewSeries("k", []Value{Int(2), Int(1)})
	got, err := GetDummies(s, "")
	req.NoError(err)
	req.Equal([]string{"1", "2"}, got.Columns())
}
