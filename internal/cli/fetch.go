package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/framefeed/framefeed/internal/config"
	"github.com/framefeed/framefeed/internal/frame"
	"github.com/framefeed/framefeed/internal/geocode"
	"github.com/framefeed/framefeed/internal/quake"
	"github.com/framefeed/framefeed/internal/store"
)

func newQuakesCmd(cfg *config.Config) *cobra.Command {
	var (
		period string
		minMag string
		save   string
		out    string
	)
	cmd := &cobra.Command{
		Use:   "quakes",
		Short: "Fetch the earthquake summary feed into a table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := quake.New(&quake.Config{Endpoint: cfg.QuakeEndpoint})
			if err != nil {
				return err
			}
			feed, err := c.Summary(cmd.Context(), quake.Period(period), quake.Magnitude(minMag))
			if err != nil {
				return err
			}
			f, err := feed.Frame()
			if err != nil {
				return err
			}
			return deliver(cmd, cfg, f, save, out)
		},
	}
	cmd.Flags().StringVar(&period, "period", "day", "feed window: hour, day, week, or month")
	cmd.Flags().StringVar(&minMag, "min-mag", "4.5", "minimum magnitude bucket: all, 1.0, 2.5, 4.5, or significant")
	cmd.Flags().StringVar(&save, "save", "", "store the result as a named dataset snapshot")
	cmd.Flags().StringVar(&out, "out", "", "write the result to this file instead of stdout")
	return cmd
}

func newGeocodeCmd(cfg *config.Config) *cobra.Command {
	var (
		limit int
		save  string
		out   string
	)
	cmd := &cobra.Command{
		Use:   "geocode QUERY...",
		Short: "Geocode place queries into a table",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := geocode.New(&geocode.Config{
				Endpoint: cfg.GeocodeEndpoint,
				APIKey:   cfg.GeocodeAPIKey,
			})
			if err != nil {
				return err
			}
			f, err := c.LookupBatch(cmd.Context(), args, limit)
			if err != nil {
				return err
			}
			return deliver(cmd, cfg, f, save, out)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 1, "candidates per query")
	cmd.Flags().StringVar(&save, "save", "", "store the result as a named dataset snapshot")
	cmd.Flags().StringVar(&out, "out", "", "write the result to this file instead of stdout")
	return cmd
}

// deliver routes a fetched frame: saved to the snapshot store, written as
// CSV, or rendered for reading.
func deliver(cmd *cobra.Command, cfg *config.Config, f *frame.Frame, save, out string) error {
	if save != "" {
		m, err := store.New(&store.Config{RootDir: cfg.HomeDir, MaxSnapshots: cfg.MaxSnapshots})
		if err != nil {
			return err
		}
		path, err := m.Save(save, f)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "saved %d rows to %s\n", f.Len(), path)
		return nil
	}
	if out != "" {
		return writeFrame(cmd, f, out)
	}
	fmt.Fprint(cmd.OutOrStdout(), f.String())
	return nil
}
