package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/framefeed/framefeed/internal/cli"
	"github.com/framefeed/framefeed/internal/config"
)

func main() {
	cfg, err := initialize()
	if err != nil {
		log.Error().Msg(err.Error())
		os.Exit(1)
	}

	root := cli.New(cfg)
	if err := root.ExecuteContext(context.Background()); err != nil {
		log.Error().Msg(err.Error())
		os.Exit(1)
	}
}

func initialize() (*config.Config, error) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	homeDir, err := config.HomeDir()
	if err != nil {
		return nil, err
	}

	cfg, err := config.New(homeDir)
	if err != nil {
		return nil, err
	}
	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	return cfg, nil
}
