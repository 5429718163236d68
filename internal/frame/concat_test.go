package frame

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConcatRows(t *testing.T) {
	t.Parallel()
	a, err := New(
		Column{Name: "x", Values: []Value{Int(1), Int(2)}},
		Column{Name: "y", Values: []Value{String("p"), String("q")}},
	)
	require.NoError(t, err)
	b, err := New(
		Column{Name: "x", Values: []Value{Int(3)}},
		Column{Name: "z", Values: []Value{Bool(true)}},
	)
	require.NoError(t, err)

	t.Run("outer unions columns with NA fill", func(t *testing.T) {
		req := require.New(t)
		got, err := ConcatRows([]*Frame{a, b}, JoinOuter)
		req.NoError(err)
		req.Equal(3, got.Len())
		req.Equal([]string{"x", "y", "z"}, got.Columns())

		v, err := got.At(2, "y")
		req.NoError(err)
		req.True(v.IsNA())
		v, err = got.At(0, "z")
		req.NoError(err)
		req.True(v.IsNA())
	})

	t.Run("inner keeps the shared columns", func(t *testing.T) {
		req := require.New(t)
		got, err := ConcatRows([]*Frame{a, b}, JoinInner)
		req.NoError(err)
		req.Equal([]string{"x"}, got.Columns())
		req.Equal(3, got.Len())
	})
}

func TestConcatColumns(t *testing.T) {
	t.Parallel()
	a, err := NewIndexed([]string{"r1", "r2", "r3"},
		Column{Name: "x", Values: []Value{Int(1), Int(2), Int(3)}},
	)
	require.NoError(t, err)
	b, err := NewIndexed([]string{"r2", "r4"},
		Column{Name: "y", Values: []Value{Float(0.2), Float(0.4)}},
	)
	require.NoError(t, err)

	t.Run("outer aligns on the label union", func(t *testing.T) {
		req := require.New(t)
		got, err := ConcatColumns([]*Frame{a, b}, JoinOuter)
		req.NoError(err)
		req.Equal([]string{"r1", "r2", "r3", "r4"}, got.Index())

		v, err := got.At(1, "y") // r2 exists in both
		req.NoError(err)
		req.False(v.IsNA())
		v, err = got.At(3, "x") // r4 exists only in b
		req.NoError(err)
		req.True(v.IsNA())
	})

	t.Run("inner keeps shared labels only", func(t *testing.T) {
		req := require.New(t)
		got, err := ConcatColumns([]*Frame{a, b}, JoinInner)
		req.NoError(err)
		req.Equal([]string{"r2"}, got.Index())
	})

	t.Run("duplicate column names rejected", func(t *testing.T) {
		_, err := ConcatColumns([]*Frame{a, a}, JoinOuter)
		require.True(t, errors.Is(err, ErrDuplicateColumn))
	})
}
