// Package social consumes an OAuth-authenticated posting API: a user
// timeline endpoint and a long-lived streaming endpoint yielding posts as
// they arrive. Credential material comes from the configuration file, never
// from flags.
package social

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/oauth2/clientcredentials"

	"github.com/framefeed/framefeed/internal/frame"
	"github.com/framefeed/framefeed/internal/httpx"
)

// ErrNoCredentials means the client was built without usable credential
// material.
var ErrNoCredentials = errors.New("missing social API credentials")

// Post is one timeline or stream item.
type Post struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	User      string    `json:"user"`
	Text      string    `json:"text"`
	Likes     int       `json:"likes"`
}

type Client struct {
	http *httpx.Client
}

type Config struct {
	Endpoint     string
	TokenURL     string
	ClientID     string
	ClientSecret string
	// Doer overrides the OAuth transport; used by tests.
	Doer httpx.Doer
}

func (c *Config) validate() error {
	var errGrp []error
	if c.Endpoint == "" {
		errGrp = append(errGrp, fmt.Errorf("endpoint is required"))
	}
	if c.Doer == nil {
		if c.ClientID == "" || c.ClientSecret == "" {
			errGrp = append(errGrp, ErrNoCredentials)
		}
		if c.TokenURL == "" {
			errGrp = append(errGrp, fmt.Errorf("token URL is required"))
		}
	}
	return errors.Join(errGrp...)
}

// New builds the client. Without an explicit doer, requests are signed by
// an OAuth2 client-credentials token source that fetches and refreshes
// bearer tokens on its own.
func New(cfg *Config) (*Client, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	doer := cfg.Doer
	if doer == nil {
		cc := &clientcredentials.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			TokenURL:     cfg.TokenURL,
		}
		doer = cc.Client(context.Background())
	}

	h, err := httpx.New(&httpx.Config{BaseURL: cfg.Endpoint, Doer: doer})
	if err != nil {
		return nil, err
	}
	return &Client{http: h}, nil
}

// Timeline fetches the newest posts of one user, newest first.
func (c *Client) Timeline(ctx context.Context, user string, count int) ([]Post, error) {
	if user == "" {
		return nil, fmt.Errorf("user is required")
	}
	if count <= 0 {
		count = 20
	}

	var posts []Post
	path := "/users/" + url.PathEscape(user) + "/timeline"
	params := url.Values{"count": {strconv.Itoa(count)}}
	if err := c.http.GetJSON(ctx, path, params, &posts); err != nil {
		return nil, fmt.Errorf("failed to fetch timeline for %q: %w", user, err)
	}
	return posts, nil
}

// PostsFrame loads posts into a frame, one row per post.
func PostsFrame(posts []Post) (*frame.Frame, error) {
	records := make([]map[string]frame.Value, len(posts))
	for i, p := range posts {
		records[i] = map[string]frame.Value{
			"id":      frame.String(p.ID),
			"created": frame.String(p.CreatedAt.UTC().Format(time.RFC3339)),
			"user":    frame.String(p.User),
			"text":    frame.String(p.Text),
			"likes":   frame.Int(int64(p.Likes)),
		}
	}
	return frame.FromRecords(records, []string{"id", "created", "user", "text", "likes"})
}
