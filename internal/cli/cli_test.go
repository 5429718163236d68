package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/framefeed/framefeed/internal/config"
)

func writeCSV(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := New(&config.Config{HomeDir: t.TempDir(), MaxSnapshots: 3})
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestMergeCommand(t *testing.T) {
	t.Parallel()
	req := require.New(t)
	left := writeCSV(t, "left.csv", "key,data1\nb,0\nb,1\na,2\nc,3\na,4\na,5\nb,6\n")
	right := writeCSV(t, "right.csv", "key,data2\na,0\nb,1\nb,2\nd,3\n")

	out, err := runCommand(t, "merge", left, right, "--on", "key", "--how", "inner")
	req.NoError(err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	req.Equal("key,data1,data2", lines[0])
	req.Len(lines, 10) // header + 9 matched rows
}

func TestStackUnstackCommands_RoundTrip(t *testing.T) {
	t.Parallel()
	req := require.New(t)
	in := "one,two\n1,2\n3,4\n"
	src := writeCSV(t, "in.csv", in)

	stacked, err := runCommand(t, "stack", src)
	req.NoError(err)
	req.Contains(stacked, "row,col,value")

	stackedFile := writeCSV(t, "stacked.csv", stacked)
	restored, err := runCommand(t, "unstack", stackedFile)
	req.NoError(err)
	req.Equal(in, restored)
}

func TestCutCommand(t *testing.T) {
	t.Parallel()
	req := require.New(t)
	src := writeCSV(t, "ages.csv", "age\n5\n15\n150\n")

	out, err := runCommand(t, "cut", src, "--column", "age", "--edges", "0,10,100")
	req.NoError(err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	req.Equal("age,age_bin", lines[0])
	req.Equal(`5,"(0, 10]"`, lines[1])
	req.Equal(`15,"(10, 100]"`, lines[2])
	req.Equal("150,", lines[3]) // outside all bins
}

func TestClipCommand_Report(t *testing.T) {
	t.Parallel()
	req := require.New(t)
	src := writeCSV(t, "v.csv", "v\n0.5\n-9\n2\n")

	out, err := runCommand(t, "clip", src, "--column", "v", "--threshold", "3", "--report")
	req.NoError(err)
	req.Contains(out, `1 values exceed |3| in "v"`)
	req.Contains(out, "\n-3\n")
}

func TestDummiesCommand(t *testing.T) {
	t.Parallel()
	req := require.New(t)
	src := writeCSV(t, "fruit.csv", "fruit\nb\na\nb\n")

	out, err := runCommand(t, "dummies", src, "--column", "fruit")
	req.NoError(err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	req.Equal("fruit,fruit_a,fruit_b", lines[0])
	req.Equal("b,0,1", lines[1])
	req.Equal("a,1,0", lines[2])
}

func TestConcatCommand_UnknownAxis(t *testing.T) {
	t.Parallel()
	src := writeCSV(t, "a.csv", "x\n1\n")
	_, err := runCommand(t, "concat", src, "--axis", "diagonal")
	require.Error(t, err)
}
