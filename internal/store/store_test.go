package store

import (
	"errors"
	"testing"
	"time"

	"github.com/framefeed/framefeed/internal/frame"
	"github.com/stretchr/testify/require"
)

func testFrame(t *testing.T, n int64) *frame.Frame {
	t.Helper()
	f, err := frame.New(frame.Column{Name: "n", Values: []frame.Value{frame.Int(n)}})
	require.NoError(t, err)
	return f
}

func TestNew(t *testing.T) {
	t.Parallel()
	t.Run("empty config", func(t *testing.T) {
		got, err := New(&Config{})
		require.Error(t, err)
		require.Nil(t, got)
	})

	t.Run("valid config", func(t *testing.T) {
		got, err := New(&Config{RootDir: t.TempDir(), MaxSnapshots: 3})
		require.NoError(t, err)
		require.NotNil(t, got)
	})
}

func TestManager_SaveAndLoadLatest(t *testing.T) {
	t.Parallel()
	req := require.New(t)
	m, err := New(&Config{RootDir: t.TempDir(), MaxSnapshots: 5})
	req.NoError(err)

	_, err = m.Save("quakes", testFrame(t, 1))
	req.NoError(err)
	time.Sleep(time.Millisecond)
	_, err = m.Save("quakes", testFrame(t, 2))
	req.NoError(err)

	got, err := m.LoadLatest("quakes")
	req.NoError(err)
	v, err := got.At(0, "n")
	req.NoError(err)
	n, _ := v.Int()
	req.Equal(int64(2), n)
}

func TestManager_Prune(t *testing.T) {
	t.Parallel()
	req := require.New(t)
	m, err := New(&Config{RootDir: t.TempDir(), MaxSnapshots: 2})
	req.NoError(err)

	for i := int64(0); i < 4; i++ {
		_, err = m.Save("feed", testFrame(t, i))
		req.NoError(err)
		time.Sleep(time.Millisecond)
	}

	files, err := m.snapshots("feed")
	req.NoError(err)
	req.Len(files, 2)

	got, err := m.LoadLatest("feed")
	req.NoError(err)
	v, err := got.At(0, "n")
	req.NoError(err)
	n, _ := v.Int()
	req.Equal(int64(3), n)
}

func TestManager_List(t *testing.T) {
	t.Parallel()
	req := require.New(t)
	m, err := New(&Config{RootDir: t.TempDir(), MaxSnapshots: 2})
	req.NoError(err)

	_, err = m.Save("geo", testFrame(t, 1))
	req.NoError(err)
	_, err = m.Save("quakes-day", testFrame(t, 1))
	req.NoError(err)

	names, err := m.List()
	req.NoError(err)
	req.Equal([]string{"geo", "quakes-day"}, names)
}

func TestManager_Errors(t *testing.T) {
	t.Parallel()
	req := require.New(t)
	m, err := New(&Config{RootDir: t.TempDir(), MaxSnapshots: 2})
	req.NoError(err)

	_, err = m.Save("Bad Name", testFrame(t, 1))
	req.True(errors.Is(err, ErrBadName))

	_, err = m.LoadLatest("missing")
	req.True(errors.Is(err, ErrNotFound))
}
