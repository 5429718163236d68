// Package geocode resolves free-text place queries through a forward
// geocoding endpoint and loads the answers into the tabular model.
package geocode

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/framefeed/framefeed/internal/frame"
	"github.com/framefeed/framefeed/internal/httpx"
)

// batchWorkers bounds concurrent lookups in LookupBatch.
const batchWorkers = 4

// ErrEmptyQuery means a lookup was requested with no query text.
var ErrEmptyQuery = errors.New("empty geocode query")

// Result is one candidate match for a query.
type Result struct {
	Label      string
	Lon        float64
	Lat        float64
	Confidence float64
}

// response is the GeoJSON feature collection the endpoint answers with.
type response struct {
	Features []struct {
		Properties struct {
			Label      string  `json:"label"`
			Confidence float64 `json:"confidence"`
		} `json:"properties"`
		Geometry struct {
			Coordinates []float64 `json:"coordinates"` // lon, lat
		} `json:"geometry"`
	} `json:"features"`
}

type Client struct {
	http   *httpx.Client
	apiKey string
}

type Config struct {
	Endpoint string
	// APIKey is sent as the api_key query parameter when set.
	APIKey string
	Doer   httpx.Doer
}

func New(cfg *Config) (*Client, error) {
	h, err := httpx.New(&httpx.Config{BaseURL: cfg.Endpoint, Doer: cfg.Doer})
	if err != nil {
		return nil, err
	}
	return &Client{http: h, apiKey: cfg.APIKey}, nil
}

// Lookup geocodes one query, returning at most limit candidates.
func (c *Client) Lookup(ctx context.Context, query string, limit int) ([]Result, error) {
	if query == "" {
		return nil, ErrEmptyQuery
	}
	if limit <= 0 {
		limit = 1
	}

	params := url.Values{
		"text": {query},
		"size": {strconv.Itoa(limit)},
	}
	if c.apiKey != "" {
		params.Set("api_key", c.apiKey)
	}

	var resp response
	if err := c.http.GetJSON(ctx, "/search", params, &resp); err != nil {
		return nil, fmt.Errorf("failed to geocode %q: %w", query, err)
	}

	results := make([]Result, 0, len(resp.Features))
	for _, ft := range resp.Features {
		r := Result{
			Label:      ft.Properties.Label,
			Confidence: ft.Properties.Confidence,
		}
		if len(ft.Geometry.Coordinates) >= 2 {
			r.Lon = ft.Geometry.Coordinates[0]
			r.Lat = ft.Geometry.Coordinates[1]
		}
		results = append(results, r)
	}
	return results, nil
}

// LookupBatch geocodes several queries concurrently and returns one frame
// row per query, in input order. Queries with no candidate keep their row
// with NA fields.
func (c *Client) LookupBatch(ctx context.Context, queries []string, limit int) (*frame.Frame, error) {
	best := make([][]Result, len(queries))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(batchWorkers)
	for i, q := range queries {
		i, q := i, q
		g.Go(func() error {
			results, err := c.Lookup(gctx, q, limit)
			if err != nil {
				return err
			}
			best[i] = results
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	records := make([]map[string]frame.Value, len(queries))
	for i, q := range queries {
		rec := map[string]frame.Value{"query": frame.String(q)}
		if len(best[i]) > 0 {
			top := best[i][0]
			rec["label"] = frame.String(top.Label)
			rec["lon"] = frame.Float(top.Lon)
			rec["lat"] = frame.Float(top.Lat)
			rec["confidence"] = frame.Float(top.Confidence)
		}
		records[i] = rec
	}
	return frame.FromRecords(records, []string{"query", "label", "lon", "lat", "confidence"})
}
