package frame

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func keyFrame(t *testing.T, col string, keys ...string) *Frame {
	t.Helper()
	vals := make([]Value, len(keys))
	data := make([]Value, len(keys))
	for i, k := range keys {
		vals[i] = String(k)
		data[i] = Int(int64(i))
	}
	f, err := New(Column{Name: col, Values: vals}, Column{Name: "data_" + col, Values: data})
	require.NoError(t, err)
	return f
}

func TestMerge_Cardinality(t *testing.T) {
	t.Parallel()
	// 'a' appears 3x1 times, 'b' 3x2; 'c' and 'd' are one-sided.
	left := keyFrame(t, "key", "b", "b", "a", "c", "a", "a", "b")
	right := keyFrame(t, "key", "a", "b", "b", "d")

	tests := map[string]struct {
		how  How
		want int
	}{
		"inner is the multiset cross product": {how: Inner, want: 9},
		"left keeps every left row":           {how: Left, want: 10},
		"right keeps every right row":         {how: Right, want: 10},
		"outer is the union":                  {how: Outer, want: 11},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			req := require.New(t)
			got, err := Merge(left, right, MergeOptions{How: tc.how, On: []string{"key"}})
			req.NoError(err)
			req.Equal(tc.want, got.Len())
		})
	}
}

func TestMerge_NullFill(t *testing.T) {
	t.Parallel()
	req := require.New(t)
	left := keyFrame(t, "key", "a", "c")
	right := keyFrame(t, "key", "a", "d")

	got, err := Merge(left, right, MergeOptions{How: Outer, On: []string{"key"}})
	req.NoError(err)
	req.Equal(3, got.Len())
	req.Equal([]string{"key", "data_key_x", "data_key_y"}, got.Columns())

	// Row for 'c' exists only on the left: right data is NA.
	v, err := got.At(1, "data_key_y")
	req.NoError(err)
	req.True(v.IsNA())

	// Row for 'd' exists only on the right: left data is NA, but the shared
	// key column is back-filled from the right side.
	v, err = got.At(2, "data_key_x")
	req.NoError(err)
	req.True(v.IsNA())
	v, err = got.At(2, "key")
	req.NoError(err)
	req.Equal("d", v.String())
}

func TestMerge_DifferingKeyNames(t *testing.T) {
	t.Parallel()
	req := require.New(t)
	left, err := New(
		Column{Name: "lkey", Values: []Value{String("x"), String("y")}},
		Column{Name: "val", Values: []Value{Int(1), Int(2)}},
	)
	req.NoError(err)
	right, err := New(
		Column{Name: "rkey", Values: []Value{String("y"), String("z")}},
		Column{Name: "score", Values: []Value{Float(0.5), Float(0.9)}},
	)
	req.NoError(err)

	got, err := Merge(left, right, MergeOptions{
		How:    Inner,
		LeftOn: []string{"lkey"}, RightOn: []string{"rkey"},
	})
	req.NoError(err)
	req.Equal(1, got.Len())
	// Both key columns survive when they are named differently.
	req.Equal([]string{"lkey", "val", "rkey", "score"}, got.Columns())
}

func TestMerge_RightIndexKey(t *testing.T) {
	t.Parallel()
	req := require.New(t)
	left, err := New(
		Column{Name: "group", Values: []Value{String("a"), String("b"), String("a")}},
		Column{Name: "n", Values: []Value{Int(1), Int(2), Int(3)}},
	)
	req.NoError(err)
	right, err := NewIndexed([]string{"a", "b"},
		Column{Name: "label", Values: []Value{String("alpha"), String("beta")}},
	)
	req.NoError(err)

	got, err := Merge(left, right, MergeOptions{
		How:    Left,
		LeftOn: []string{"group"}, RightIndex: true,
	})
	req.NoError(err)
	req.Equal(3, got.Len())
	v, err := got.At(2, "label")
	req.NoError(err)
	req.Equal("alpha", v.String())
}

func TestMerge_NAKeyNeverMatches(t *testing.T) {
	t.Parallel()
	req := require.New(t)
	left, err := New(Column{Name: "k", Values: []Value{NA(), String("a")}})
	req.NoError(err)
	right, err := New(Column{Name: "k", Values: []Value{NA(), String("a")}})
	req.NoError(err)

	got, err := Merge(left, right, MergeOptions{How: Inner, On: []string{"k"}})
	req.NoError(err)
	req.Equal(1, got.Len())
}

func TestMerge_KeySpecErrors(t *testing.T) {
	t.Parallel()
	left := keyFrame(t, "key", "a")
	right := keyFrame(t, "other", "a")

	tests := map[string]struct {
		opts        MergeOptions
		expectedErr error
	}{
		"no key":                {opts: MergeOptions{}, expectedErr: ErrBadKeySpec},
		"missing right key":     {opts: MergeOptions{LeftOn: []string{"key"}}, expectedErr: ErrBadKeySpec},
		"mismatched key widths": {opts: MergeOptions{LeftOn: []string{"key"}, RightOn: []string{"other", "other"}}, expectedErr: ErrBadKeySpec},
		"unknown on column":     {opts: MergeOptions{On: []string{"nope"}}, expectedErr: ErrUnknownColumn},
		"on with left index":    {opts: MergeOptions{On: []string{"key"}, LeftIndex: true}, expectedErr: ErrBadKeySpec},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Merge(left, right, tc.opts)
			require.True(t, errors.Is(err, tc.expectedErr), "got %v", err)
		})
	}
}

func TestParseHow(t *testing.T) {
	t.Parallel()
	req := require.New(t)
	for s, want := range map[string]How{"inner": Inner, "left": Left, "right": Right, "outer": Outer} {
		got, err := ParseHow(s)
		req.NoError(err)
		req.Equal(want, got)
		req.Equal(s, got.String())
	}
	_, err := ParseHow("sideways")
	req.Error(err)
}
