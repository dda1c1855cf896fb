// CineGraph - Movie Recommendation Engine and Graph Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package config

import (
	"fmt"
	"time"

	"github.com/tomtom215/cinegraph/internal/validation"
)

// Config is the complete application configuration. Values are resolved in
// three layers: struct defaults, then an optional YAML file, then
// CINEGRAPH_* environment variables (highest priority).
type Config struct {
	Data      DataConfig      `koanf:"data"`
	Recommend RecommendConfig `koanf:"recommend"`
	Viz       VizConfig       `koanf:"viz"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// DataConfig points at the CSV sources the loader reads at startup.
type DataConfig struct {
	// MoviesPath is the 16-column IMDB-style movie catalog.
	MoviesPath string `koanf:"movies_path" validate:"required"`

	// RatingsPath is the 4-column rating history.
	RatingsPath string `koanf:"ratings_path" validate:"required"`
}

// RecommendConfig holds the recommendation engine tuning knobs.
type RecommendConfig struct {
	// SimilarUsers is the neighbor count consulted by the collaborative pass.
	SimilarUsers int `koanf:"similar_users" validate:"gte=1"`

	// MaxResults caps the recommendation list length.
	MaxResults int `koanf:"max_results" validate:"gte=1"`

	// GenreMatchBonus scales content scores for genres the user has watched.
	GenreMatchBonus float64 `koanf:"genre_match_bonus" validate:"gte=0"`

	// GenreOtherBonus scales content scores for genres new to the user.
	GenreOtherBonus float64 `koanf:"genre_other_bonus" validate:"gte=0"`

	// CacheEnabled controls recommendation response caching.
	CacheEnabled bool `koanf:"cache_enabled"`

	// CacheTTL is the response cache entry lifetime.
	CacheTTL time.Duration `koanf:"cache_ttl"`
}

// VizConfig holds graph rendering parameters.
type VizConfig struct {
	// Seed drives the spring-layout random source; a fixed seed makes the
	// rendered layout reproducible.
	Seed int64 `koanf:"seed"`

	// Iterations is the number of spring-layout refinement rounds.
	Iterations int `koanf:"iterations" validate:"gte=1"`

	// OutputPath is where the HTML artifact is written.
	OutputPath string `koanf:"output_path" validate:"required"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn error fatal panic"`
	Format string `koanf:"format" validate:"oneof=json console"`
	Caller bool   `koanf:"caller"`
}

// defaultConfig returns a Config with all default values. Defaults are
// applied first, then overridden by the config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Data: DataConfig{
			MoviesPath:  "data/movies.csv",
			RatingsPath: "data/ratings.csv",
		},
		Recommend: RecommendConfig{
			SimilarUsers:    3,
			MaxResults:      10,
			GenreMatchBonus: 1.0,
			GenreOtherBonus: 0.3,
			CacheEnabled:    true,
			CacheTTL:        5 * time.Minute,
		},
		Viz: VizConfig{
			Seed:       42,
			Iterations: 50,
			OutputPath: "graph.html",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
			Caller: false,
		},
	}
}

// Validate checks the configuration for structural and semantic errors.
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if c.Recommend.CacheEnabled && c.Recommend.CacheTTL <= 0 {
		return fmt.Errorf("recommend.cache_ttl must be positive when caching is enabled, got %v", c.Recommend.CacheTTL)
	}
	return nil
}
