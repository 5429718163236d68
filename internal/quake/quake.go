// Package quake consumes a GeoJSON earthquake summary feed and loads it
// into the tabular model.
package quake

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/framefeed/framefeed/internal/frame"
	"github.com/framefeed/framefeed/internal/httpx"
)

// Period selects the feed window.
type Period string

const (
	PeriodHour  Period = "hour"
	PeriodDay   Period = "day"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
)

// Magnitude selects the feed's minimum magnitude bucket.
type Magnitude string

const (
	MagAll         Magnitude = "all"
	Mag1           Magnitude = "1.0"
	Mag2_5         Magnitude = "2.5"
	Mag4_5         Magnitude = "4.5"
	MagSignificant Magnitude = "significant"
)

// ErrBadFeed means an unknown period or magnitude bucket was requested.
var ErrBadFeed = errors.New("unknown feed")

var (
	validPeriods = map[Period]bool{PeriodHour: true, PeriodDay: true, PeriodWeek: true, PeriodMonth: true}
	validMags    = map[Magnitude]bool{MagAll: true, Mag1: true, Mag2_5: true, Mag4_5: true, MagSignificant: true}
)

// Feed is the GeoJSON summary document.
type Feed struct {
	Metadata struct {
		Generated int64  `json:"generated"`
		Title     string `json:"title"`
		Count     int    `json:"count"`
	} `json:"metadata"`
	Features []Feature `json:"features"`
}

// Feature is one earthquake event.
type Feature struct {
	ID         string `json:"id"`
	Properties struct {
		Mag     *float64 `json:"mag"`
		Place   string   `json:"place"`
		Time    int64    `json:"time"` // epoch millis
		Tsunami int      `json:"tsunami"`
	} `json:"properties"`
	Geometry struct {
		Coordinates []float64 `json:"coordinates"` // lon, lat, depth
	} `json:"geometry"`
}

// Client fetches summary feeds from one endpoint.
type Client struct {
	http *httpx.Client
}

type Config struct {
	// Endpoint is the feed root, e.g. the USGS v1.0 feed URL.
	Endpoint string
	Doer     httpx.Doer
}

func New(cfg *Config) (*Client, error) {
	h, err := httpx.New(&httpx.Config{BaseURL: cfg.Endpoint, Doer: cfg.Doer})
	if err != nil {
		return nil, err
	}
	return &Client{http: h}, nil
}

// Summary fetches the feed for a period and minimum magnitude bucket.
func (c *Client) Summary(ctx context.Context, period Period, minMag Magnitude) (*Feed, error) {
	if !validPeriods[period] {
		return nil, fmt.Errorf("%w: period %q", ErrBadFeed, period)
	}
	if !validMags[minMag] {
		return nil, fmt.Errorf("%w: magnitude %q", ErrBadFeed, minMag)
	}

	var feed Feed
	path := fmt.Sprintf("/summary/%s_%s.geojson", minMag, period)
	if err := c.http.GetJSON(ctx, path, nil, &feed); err != nil {
		return nil, fmt.Errorf("failed to fetch %s feed: %w", period, err)
	}
	return &feed, nil
}

// Frame converts the feed into a frame, one row per event. A missing
// magnitude becomes NA; event times decode from epoch millis to UTC.
func (f *Feed) Frame() (*frame.Frame, error) {
	records := make([]map[string]frame.Value, len(f.Features))
	for i, ft := range f.Features {
		rec := map[string]frame.Value{
			"id":    frame.String(ft.ID),
			"time":  frame.String(time.UnixMilli(ft.Properties.Time).UTC().Format(time.RFC3339)),
			"place": frame.String(ft.Properties.Place),
		}
		if ft.Properties.Mag != nil {
			rec["mag"] = frame.Float(*ft.Properties.Mag)
		}
		if len(ft.Geometry.Coordinates) >= 3 {
			rec["lon"] = frame.Float(ft.Geometry.Coordinates[0])
			rec["lat"] = frame.Float(ft.Geometry.Coordinates[1])
			rec["depth"] = frame.Float(ft.Geometry.Coordinates[2])
		}
		records[i] = rec
	}
	return frame.FromRecords(records, []string{"id", "time", "mag", "place", "lon", "lat", "depth"})
}
