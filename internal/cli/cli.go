// Package cli wires the framefeed command tree: tabular transforms over CSV
// files and the feed fetchers.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/framefeed/framefeed/internal/config"
	"github.com/framefeed/framefeed/internal/csvio"
	"github.com/framefeed/framefeed/internal/frame"
)

// New builds the root command.
func New(cfg *config.Config) *cobra.Command {
	root := &cobra.Command{
		Use:           "framefeed",
		Short:         "Merge, reshape, and clean tabular data, and pull JSON feeds into tables",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newMergeCmd(),
		newConcatCmd(),
		newStackCmd(),
		newUnstackCmd(),
		newCutCmd(),
		newClipCmd(),
		newDummiesCmd(),
		newQuakesCmd(cfg),
		newGeocodeCmd(cfg),
		newTimelineCmd(cfg),
		newStreamCmd(cfg),
	)
	return root
}

// readFrame loads a CSV file into a frame, "-" meaning stdin.
func readFrame(path string) (*frame.Frame, error) {
	if path == "-" {
		return csvio.Read(os.Stdin, csvio.Options{})
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	f, err := csvio.Read(file, csvio.Options{})
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return f, nil
}

// writeFrame renders the result: CSV to --out when given, CSV to stdout
// otherwise.
func writeFrame(cmd *cobra.Command, f *frame.Frame, out string) error {
	if out == "" {
		return csvio.Write(cmd.OutOrStdout(), f, csvio.Options{})
	}
	file, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", out, err)
	}
	defer file.Close()
	return csvio.Write(file, f, csvio.Options{})
}
