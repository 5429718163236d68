package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/framefeed/framefeed/internal/frame"
)

func newMergeCmd() *cobra.Command {
	var (
		how      string
		on       []string
		leftOn   []string
		rightOn  []string
		suffixes []string
		out      string
	)
	cmd := &cobra.Command{
		Use:   "merge LEFT.csv RIGHT.csv",
		Short: "Join two tables on key columns",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			left, err := readFrame(args[0])
			if err != nil {
				return err
			}
			right, err := readFrame(args[1])
			if err != nil {
				return err
			}
			h, err := frame.ParseHow(how)
			if err != nil {
				return err
			}
			opts := frame.MergeOptions{How: h, On: on, LeftOn: leftOn, RightOn: rightOn}
			if len(suffixes) == 2 {
				opts.Suffixes = [2]string{suffixes[0], suffixes[1]}
			} else if len(suffixes) != 0 {
				return fmt.Errorf("--suffixes needs exactly two values")
			}
			merged, err := frame.Merge(left, right, opts)
			if err != nil {
				return err
			}
			return writeFrame(cmd, merged, out)
		},
	}
	cmd.Flags().StringVar(&how, "how", "inner", "join type: inner, left, right, or outer")
	cmd.Flags().StringSliceVar(&on, "on", nil, "key columns shared by both tables")
	cmd.Flags().StringSliceVar(&leftOn, "left-on", nil, "key columns of the left table")
	cmd.Flags().StringSliceVar(&rightOn, "right-on", nil, "key columns of the right table")
	cmd.Flags().StringSliceVar(&suffixes, "suffixes", nil, "suffixes for overlapping column names")
	cmd.Flags().StringVar(&out, "out", "", "write the result to this file instead of stdout")
	return cmd
}

func newConcatCmd() *cobra.Command {
	var (
		axis string
		join string
		out  string
	)
	cmd := &cobra.Command{
		Use:   "concat FILE.csv...",
		Short: "Stack tables along rows or align them along columns",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			frames := make([]*frame.Frame, len(args))
			for i, path := range args {
				f, err := readFrame(path)
				if err != nil {
					return err
				}
				frames[i] = f
			}
			j, err := frame.ParseJoin(join)
			if err != nil {
				return err
			}
			var result *frame.Frame
			switch axis {
			case "rows":
				result, err = frame.ConcatRows(frames, j)
			case "columns":
				result, err = frame.ConcatColumns(frames, j)
			default:
				return fmt.Errorf("unknown axis %q: want rows or columns", axis)
			}
			if err != nil {
				return err
			}
			return writeFrame(cmd, result, out)
		},
	}
	cmd.Flags().StringVar(&axis, "axis", "rows", "concatenation axis: rows or columns")
	cmd.Flags().StringVar(&join, "join", "outer", "alignment of the other axis: inner or outer")
	cmd.Flags().StringVar(&out, "out", "", "write the result to this file instead of stdout")
	return cmd
}

// Stacked tables travel as three-column CSV: row, col, value.
const (
	stackRowCol = "row"
	stackColCol = "col"
	stackValCol = "value"
)

func newStackCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "stack IN.csv",
		Short: "Pivot a table into (row, col, value) triples",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := readFrame(args[0])
			if err != nil {
				return err
			}
			entries := frame.Stack(f).Entries()
			records := make([]map[string]frame.Value, len(entries))
			for i, e := range entries {
				records[i] = map[string]frame.Value{
					stackRowCol: frame.String(e.Row),
					stackColCol: frame.String(e.Col),
					stackValCol: e.Val,
				}
			}
			stacked, err := frame.FromRecords(records, []string{stackRowCol, stackColCol, stackValCol})
			if err != nil {
				return err
			}
			return writeFrame(cmd, stacked, out)
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "write the result to this file instead of stdout")
	return cmd
}

func newUnstackCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "unstack IN.csv",
		Short: "Restore a table from (row, col, value) triples",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := readFrame(args[0])
			if err != nil {
				return err
			}
			for _, name := range []string{stackRowCol, stackColCol, stackValCol} {
				if !f.HasColumn(name) {
					return fmt.Errorf("stacked input needs columns %s, %s, %s",
						stackRowCol, stackColCol, stackValCol)
				}
			}
			entries := make([]frame.Entry, 0, f.Len())
			for i := 0; i < f.Len(); i++ {
				row, _ := f.At(i, stackRowCol)
				col, _ := f.At(i, stackColCol)
				val, _ := f.At(i, stackValCol)
				entries = append(entries, frame.Entry{Row: row.String(), Col: col.String(), Val: val})
			}
			restored, err := frame.Unstack(frame.NewStacked(entries))
			if err != nil {
				return err
			}
			return writeFrame(cmd, restored, out)
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "write the result to this file instead of stdout")
	return cmd
}

func newCutCmd() *cobra.Command {
	var (
		column     string
		edgesArg   string
		labels     []string
		leftClosed bool
		out        string
	)
	cmd := &cobra.Command{
		Use:   "cut IN.csv",
		Short: "Bin a numeric column into intervals",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := readFrame(args[0])
			if err != nil {
				return err
			}
			s, err := f.Column(column)
			if err != nil {
				return err
			}
			edges, err := parseEdges(edgesArg)
			if err != nil {
				return err
			}
			binned, err := frame.Cut(s, edges, frame.CutOptions{LeftClosed: leftClosed, Labels: labels})
			if err != nil {
				return err
			}
			result, err := f.WithColumn(column+"_bin", binned)
			if err != nil {
				return err
			}
			return writeFrame(cmd, result, out)
		},
	}
	cmd.Flags().StringVar(&column, "column", "", "numeric column to bin")
	cmd.Flags().StringVar(&edgesArg, "edges", "", "comma-separated bin edges, e.g. 0,10,100")
	cmd.Flags().StringSliceVar(&labels, "labels", nil, "bin labels replacing the interval rendering")
	cmd.Flags().BoolVar(&leftClosed, "left-closed", false, "use [lo, hi) intervals instead of (lo, hi]")
	cmd.Flags().StringVar(&out, "out", "", "write the result to this file instead of stdout")
	_ = cmd.MarkFlagRequired("column")
	_ = cmd.MarkFlagRequired("edges")
	return cmd
}

func newClipCmd() *cobra.Command {
	var (
		column    string
		threshold float64
		report    bool
		out       string
	)
	cmd := &cobra.Command{
		Use:   "clip IN.csv",
		Short: "Cap outliers at a signed absolute threshold",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := readFrame(args[0])
			if err != nil {
				return err
			}
			s, err := f.Column(column)
			if err != nil {
				return err
			}
			if report {
				hits := frame.Exceeding(s, threshold)
				fmt.Fprintf(cmd.OutOrStdout(), "%d values exceed |%g| in %q\n", len(hits), threshold, column)
			}
			result, err := f.WithColumn(column, frame.ClipAbs(s, threshold))
			if err != nil {
				return err
			}
			return writeFrame(cmd, result, out)
		},
	}
	cmd.Flags().StringVar(&column, "column", "", "numeric column to cap")
	cmd.Flags().Float64Var(&threshold, "threshold", 3, "absolute threshold")
	cmd.Flags().BoolVar(&report, "report", false, "print how many values exceed the threshold")
	cmd.Flags().StringVar(&out, "out", "", "write the result to this file instead of stdout")
	_ = cmd.MarkFlagRequired("column")
	return cmd
}

func newDummiesCmd() *cobra.Command {
	var (
		column string
		prefix string
		out    string
	)
	cmd := &cobra.Command{
		Use:   "dummies IN.csv",
		Short: "Encode a categorical column as binary indicators",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := readFrame(args[0])
			if err != nil {
				return err
			}
			s, err := f.Column(column)
			if err != nil {
				return err
			}
			if prefix == "" {
				prefix = column + "_"
			}
			dummies, err := frame.GetDummies(s, prefix)
			if err != nil {
				return err
			}
			result, err := frame.ConcatColumns([]*frame.Frame{f, dummies}, frame.JoinOuter)
			if err != nil {
				return err
			}
			return writeFrame(cmd, result, out)
		},
	}
	cmd.Flags().StringVar(&column, "column", "", "categorical column to encode")
	cmd.Flags().StringVar(&prefix, "prefix", "", "indicator column prefix (default column name)")
	cmd.Flags().StringVar(&out, "out", "", "write the result to this file instead of stdout")
	_ = cmd.MarkFlagRequired("column")
	return cmd
}

func parseEdges(arg string) ([]float64, error) {
	parts := strings.Split(arg, ",")
	edges := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid edge %q: %w", p, err)
		}
		edges = append(edges, v)
	}
	return edges, nil
}
