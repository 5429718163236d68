package social

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"
)

// Stream is a long-lived connection yielding posts as they arrive, one
// JSON document per line. It suspends the caller in Next until an item
// arrives, the context behind the request is cancelled, or Close is called.
type Stream struct {
	body      io.ReadCloser
	dec       *json.Decoder
	closeOnce sync.Once
	closeErr  error
}

// Stream opens the firehose endpoint. The caller owns the returned stream
// and must close it; cancelling ctx unblocks a pending Next.
func (c *Client) Stream(ctx context.Context) (*Stream, error) {
	resp, err := c.http.Get(ctx, "/stream", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open stream: %w", err)
	}
	return &Stream{
		body: resp.Body,
		dec:  json.NewDecoder(resp.Body),
	}, nil
}

// Next blocks until the next post arrives. It returns io.EOF when the
// server ends the stream and the request context's error after a cancel.
func (s *Stream) Next() (*Post, error) {
	var p Post
	if err := s.dec.Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Close tears the connection down; a pending Next unblocks with an error.
func (s *Stream) Close() error {
	s.closeOnce.Do(func() {
		s.closeErr = s.body.Close()
	})
	return s.closeErr
}
