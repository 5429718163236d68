// Package config loads the framefeed configuration file. Endpoints and the
// social API credential material live here, out of band from the CLI.
package config

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	homeDirName    = ".framefeed"
	configFileName = "framefeed.conf"

	defaultQuakeEndpoint   = "https://earthquake.usgs.gov/earthquakes/feed/v1.0"
	defaultGeocodeEndpoint = "https://api.geocode.earth/v1"
	defaultMaxSnapshots    = 5
)

type Config struct {
	HomeDir string
	Debug   bool

	QuakeEndpoint   string
	GeocodeEndpoint string
	GeocodeAPIKey   string

	SocialEndpoint     string
	SocialTokenURL     string
	SocialClientID     string
	SocialClientSecret string

	MaxSnapshots int
}

// HomeDir returns the framefeed directory under the user home.
func HomeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, homeDirName), nil
}

// New loads the configuration from dir/framefeed.conf. A missing file is
// not an error: public feeds work with defaults, and commands needing
// credentials fail later with a clear message.
func New(dir string) (*Config, error) {
	config := &Config{
		HomeDir:         dir,
		QuakeEndpoint:   defaultQuakeEndpoint,
		GeocodeEndpoint: defaultGeocodeEndpoint,
		MaxSnapshots:    defaultMaxSnapshots,
	}

	configPath := filepath.Join(dir, configFileName)
	file, err := os.Open(configPath)
	if os.IsNotExist(err) {
		return config, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Skip comments and empty lines
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		switch key {
		case "debug":
			config.Debug = value == "true"
		case "quake_endpoint":
			config.QuakeEndpoint = value
		case "geocode_endpoint":
			config.GeocodeEndpoint = value
		case "geocode_api_key":
			config.GeocodeAPIKey = value
		case "social_endpoint":
			config.SocialEndpoint = value
		case "social_token_url":
			config.SocialTokenURL = value
		case "social_client_id":
			config.SocialClientID = value
		case "social_client_secret":
			config.SocialClientSecret = value
		case "max_snapshots":
			config.MaxSnapshots, err = strconv.Atoi(value)
			if err != nil {
				return nil, fmt.Errorf("invalid max snapshots value: %w", err)
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	return config, nil
}
