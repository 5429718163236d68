package csvio

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/framefeed/framefeed/internal/frame"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	t.Parallel()
	req := require.New(t)
	f, err := frame.NewIndexed([]string{"r1", "r2", "r3"},
		frame.Column{Name: "n", Values: []frame.Value{frame.Int(1), frame.Int(2), frame.NA()}},
		frame.Column{Name: "score", Values: []frame.Value{frame.Float(0.5), frame.NA(), frame.Float(-1.25)}},
		frame.Column{Name: "name", Values: []frame.Value{frame.String("ann"), frame.String("bo"), frame.String("cy")}},
		frame.Column{Name: "ok", Values: []frame.Value{frame.Bool(true), frame.Bool(false), frame.NA()}},
	)
	req.NoError(err)

	var buf bytes.Buffer
	opts := Options{IndexColumn: "index"}
	req.NoError(Write(&buf, f, opts))

	got, err := Read(&buf, opts)
	req.NoError(err)
	req.Equal(f.Index(), got.Index())
	req.Equal(f.Columns(), got.Columns())
	for i := 0; i < f.Len(); i++ {
		for _, name := range f.Columns() {
			want, err := f.At(i, name)
			req.NoError(err)
			v, err := got.At(i, name)
			req.NoError(err)
			if want.IsNA() {
				req.True(v.IsNA(), "cell (%d, %s)", i, name)
				continue
			}
			req.True(want.Equal(v), "cell (%d, %s): want %v got %v", i, name, want, v)
			req.Equal(want.Kind(), v.Kind(), "cell (%d, %s)", i, name)
		}
	}
}

func TestRead_TypeInference(t *testing.T) {
	t.Parallel()
	req := require.New(t)
	in := "a,b,c\n1,1.5,true\n2,x,false\n"
	f, err := Read(strings.NewReader(in), Options{})
	req.NoError(err)

	v, err := f.At(0, "a")
	req.NoError(err)
	req.Equal(frame.KindInt, v.Kind())

	// "x" poisons the numeric parse for the whole column.
	v, err = f.At(0, "b")
	req.NoError(err)
	req.Equal(frame.KindString, v.Kind())

	v, err = f.At(1, "c")
	req.NoError(err)
	req.Equal(frame.KindBool, v.Kind())
}

func TestRead_CustomDelimiterAndNAToken(t *testing.T) {
	t.Parallel()
	req := require.New(t)
	in := "a|b\nNULL|2\n3|NULL\n"
	f, err := Read(strings.NewReader(in), Options{Comma: '|', NAToken: "NULL"})
	req.NoError(err)

	v, err := f.At(0, "a")
	req.NoError(err)
	req.True(v.IsNA())
	v, err = f.At(0, "b")
	req.NoError(err)
	req.Equal(frame.KindInt, v.Kind())
}

func TestRead_Empty(t *testing.T) {
	t.Parallel()
	_, err := Read(strings.NewReader(""), Options{})
	require.True(t, errors.Is(err, ErrEmptyInput))
}
