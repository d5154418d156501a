// Package config loads the organizer's runtime configuration from
// environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/kqimam/game-organizer/internal/library"
)

// Config holds everything tunable about a running organizer. Every field
// has a working default so a plain `game-organizer` invocation needs no
// environment at all.
type Config struct {
	// DataDir is where the library files live. Empty means the per-OS
	// application data directory.
	DataDir string `env:"GAMEORG_DATA_DIR"`

	// DescriptionAddr is the host:port of the description service.
	DescriptionAddr string `env:"GAMEORG_DESCRIPTION_ADDR" envDefault:"127.0.0.1:12099"`

	// CoverArtSearchURL is the cover-art lookup endpoint.
	CoverArtSearchURL string `env:"GAMEORG_COVERART_URL" envDefault:"http://127.0.0.1:12098/search"`

	// ImagesDir is where downloaded cover art is written.
	ImagesDir string `env:"GAMEORG_IMAGES_DIR" envDefault:"./images"`

	// NetTimeout bounds every enrichment network call.
	NetTimeout time.Duration `env:"GAMEORG_NET_TIMEOUT" envDefault:"15s"`
}

// Load parses the environment and fills in the data directory default.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if cfg.DataDir == "" {
		dir, err := library.DefaultDir()
		if err != nil {
			return nil, err
		}
		cfg.DataDir = dir
	}

	return cfg, nil
}
