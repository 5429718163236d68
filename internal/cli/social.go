package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/framefeed/framefeed/internal/app"
	"github.com/framefeed/framefeed/internal/config"
	"github.com/framefeed/framefeed/internal/social"
)

func socialClient(cfg *config.Config) (*social.Client, error) {
	if cfg.SocialEndpoint == "" {
		return nil, fmt.Errorf("social_endpoint is not configured; add it to framefeed.conf")
	}
	return social.New(&social.Config{
		Endpoint:     cfg.SocialEndpoint,
		TokenURL:     cfg.SocialTokenURL,
		ClientID:     cfg.SocialClientID,
		ClientSecret: cfg.SocialClientSecret,
	})
}

func newTimelineCmd(cfg *config.Config) *cobra.Command {
	var (
		count int
		save  string
		out   string
	)
	cmd := &cobra.Command{
		Use:   "timeline USER",
		Short: "Fetch a user's timeline into a table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := socialClient(cfg)
			if err != nil {
				return err
			}
			posts, err := c.Timeline(cmd.Context(), args[0], count)
			if err != nil {
				return err
			}
			f, err := social.PostsFrame(posts)
			if err != nil {
				return err
			}
			return deliver(cmd, cfg, f, save, out)
		},
	}
	cmd.Flags().IntVar(&count, "count", 20, "number of posts to fetch")
	cmd.Flags().StringVar(&save, "save", "", "store the result as a named dataset snapshot")
	cmd.Flags().StringVar(&out, "out", "", "write the result to this file instead of stdout")
	return cmd
}

func newStreamCmd(cfg *config.Config) *cobra.Command {
	var maxItems int
	cmd := &cobra.Command{
		Use:   "stream",
		Short: "Consume the post stream until a count is reached or the process is stopped",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := socialClient(cfg)
			if err != nil {
				return err
			}
			consumer := &streamConsumer{
				client:   c,
				maxItems: maxItems,
				out:      cmd.OutOrStdout(),
			}
			application, err := app.New(&app.Config{
				ServiceName: "framefeed stream",
				StopTimeout: 5 * time.Second,
			}, consumer)
			if err != nil {
				return err
			}
			return application.Run(cmd.Context())
		},
	}
	cmd.Flags().IntVar(&maxItems, "max", 10, "stop after this many posts")
	return cmd
}

// streamConsumer runs the long-lived stream as an app dependency so SIGTERM
// closes the connection instead of killing it mid-read.
type streamConsumer struct {
	client   *social.Client
	maxItems int
	out      io.Writer

	mu      sync.Mutex
	stream  *social.Stream
	stopped bool
}

func (s *streamConsumer) Start() error {
	stream, err := s.client.Stream(context.Background())
	if err != nil {
		return err
	}
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return stream.Close()
	}
	s.stream = stream
	s.mu.Unlock()

	for n := 0; n < s.maxItems; n++ {
		post, err := stream.Next()
		if errors.Is(err, io.EOF) {
			log.Info().Msg("stream ended by server")
			return nil
		}
		if err != nil {
			// A closed stream is the normal shutdown path.
			s.mu.Lock()
			stopped := s.stopped
			s.mu.Unlock()
			if stopped {
				return nil
			}
			return fmt.Errorf("stream read failed: %w", err)
		}
		fmt.Fprintf(s.out, "%s  @%s  %s\n", post.ID, post.User, post.Text)
	}
	log.Info().Msgf("reached %d posts, closing stream", s.maxItems)
	return nil
}

func (s *streamConsumer) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopped = true
	if s.stream == nil {
		return nil
	}
	return s.stream.Close()
}

func (s *streamConsumer) Name() string { return "stream-consumer" }
