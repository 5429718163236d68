package frame

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		cols        []Column
		expectedErr error
	}{
		"empty frame": {},
		"ragged columns": {
			cols: []Column{
				{Name: "a", Values: []Value{Int(1), Int(2)}},
				{Name: "b", Values: []Value{Int(3)}},
			},
			expectedErr: ErrLengthMismatch,
		},
		"duplicate names": {
			cols: []Column{
				{Name: "a", Values: []Value{Int(1)}},
				{Name: "a", Values: []Value{Int(2)}},
			},
			expectedErr: ErrDuplicateColumn,
		},
		"valid": {
			cols: []Column{
				{Name: "a", Values: []Value{Int(1), Int(2)}},
				{Name: "b", Values: []Value{String("x"), NA()}},
			},
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			req := require.New(t)
			got, err := New(tc.cols...)
			if tc.expectedErr != nil {
				req.True(errors.Is(err, tc.expectedErr), "got %v", err)
				req.Nil(got)
				return
			}
			req.NoError(err)
			req.Equal(len(tc.cols), len(got.Columns()))
		})
	}
}

func TestFromRecords(t *testing.T) {
	t.Parallel()
	req := require.New(t)
	recs := []map[string]Value{
		{"mag": Float(4.5), "place": String("Chile")},
		{"mag": Float(6.1)}, // place missing
	}
	f, err := FromRecords(recs, []string{"mag", "place"})
	req.NoError(err)
	req.Equal(2, f.Len())

	v, err := f.At(1, "place")
	req.NoError(err)
	req.True(v.IsNA())
}

func TestFrame_WithColumn(t *testing.T) {
	t.Parallel()
	req := require.New(t)
	f, err := New(Column{Name: "a", Values: []Value{Int(1), Int(2)}})
	req.NoError(err)

	s := NewSeries("b", []Value{Float(0.1), Float(0.2)})
	got, err := f.WithColumn("b", s)
	req.NoError(err)
	req.Equal([]string{"a", "b"}, got.Columns())
	// original untouched
	req.Equal([]string{"a"}, f.Columns())

	short := NewSeries("c", []Value{Int(9)})
	_, err = f.WithColumn("c", short)
	req.True(errors.Is(err, ErrLengthMismatch))
}

func TestFrame_Head(t *testing.T) {
	t.Parallel()
	req := require.New(t)
	f, err := New(Column{Name: "a", Values: []Value{Int(1), Int(2), Int(3)}})
	req.NoError(err)
	req.Equal(2, f.Head(2).Len())
	req.Equal(3, f.Head(10).Len())
}

func TestValue_Equal(t *testing.T) {
	t.Parallel()
	req := require.New(t)
	req.True(Int(1).Equal(Float(1.0)))
	req.True(String("x").Equal(String("x")))
	req.False(String("1").Equal(Int(1)))
	req.False(NA().Equal(NA()))
}
