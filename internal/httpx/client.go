// Package httpx carries the shared plumbing of the feed clients: one GET,
// one JSON decode, request IDs. No retries, backoff, or pagination.
package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

//go:generate mockgen -destination=doer_mock.go -package=httpx -source=client.go

const defaultUserAgent = "framefeed/1.0"

// ErrUnexpectedStatus means the endpoint answered outside the 2xx range.
var ErrUnexpectedStatus = errors.New("unexpected response status")

// Doer issues a single HTTP request. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client wraps a doer with a base URL and JSON decoding.
type Client struct {
	base      *url.URL
	doer      Doer
	userAgent string
}

type Config struct {
	// BaseURL is the endpoint root; request paths are resolved under it.
	BaseURL string
	// Doer defaults to http.DefaultClient.
	Doer Doer
	// UserAgent defaults to the framefeed agent string.
	UserAgent string
}

func (c *Config) validate() error {
	var errGrp []error
	if c.BaseURL == "" {
		errGrp = append(errGrp, fmt.Errorf("base URL is required"))
	} else if _, err := url.Parse(c.BaseURL); err != nil {
		errGrp = append(errGrp, fmt.Errorf("invalid base URL: %w", err))
	}
	return errors.Join(errGrp...)
}

func New(cfg *Config) (*Client, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	doer := cfg.Doer
	if doer == nil {
		doer = http.DefaultClient
	}
	agent := cfg.UserAgent
	if agent == "" {
		agent = defaultUserAgent
	}
	return &Client{base: base, doer: doer, userAgent: agent}, nil
}

// GetJSON issues a GET for path under the base URL and decodes the JSON
// body into out. A non-2xx answer is an error carrying the status code.
func (c *Client) GetJSON(ctx context.Context, path string, query url.Values, out any) error {
	resp, err := c.Get(ctx, path, query)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response body: %w", err)
	}
	return nil
}

// Get issues a GET and verifies the status. The caller owns the body; this
// is the entry point for long-lived streaming responses.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*http.Response, error) {
	u := *c.base
	u.Path = strings.TrimRight(u.Path, "/") + "/" + strings.TrimLeft(path, "/")
	if query != nil {
		u.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	reqID := uuid.NewString()
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", reqID)

	start := time.Now()
	resp, err := c.doer.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request %s failed: %w", reqID, err)
	}
	log.Debug().Msgf("GET %s -> %d in %s", u.Redacted(), resp.StatusCode, time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("%w: %d from %s", ErrUnexpectedStatus, resp.StatusCode, u.Redacted())
	}
	return resp, nil
}
