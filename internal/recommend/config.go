// CineGraph - Movie Recommendation Engine and Graph Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package recommend

import (
	"fmt"
	"time"
)

// Config contains tuning parameters for the recommendation engine.
type Config struct {
	// SimilarUsers is the number of nearest neighbors consulted by the
	// collaborative pass. Default: 3.
	SimilarUsers int `json:"similar_users"`

	// MaxResults caps the length of a recommendation list. Default: 10.
	MaxResults int `json:"max_results"`

	// GenreMatchBonus scales a movie's rating in the content pass when its
	// genre matches one the target user has watched. Default: 1.0.
	GenreMatchBonus float64 `json:"genre_match_bonus"`

	// GenreOtherBonus scales a movie's rating in the content pass when its
	// genre is new to the target user. Default: 0.3.
	GenreOtherBonus float64 `json:"genre_other_bonus"`

	// Cache contains response caching parameters.
	Cache CacheConfig `json:"cache"`
}

// CacheConfig contains response caching parameters.
type CacheConfig struct {
	// Enabled controls whether recommendation responses are cached.
	// Default: true.
	Enabled bool `json:"enabled"`

	// TTL is the cache entry time-to-live.
	// Default: 5m.
	TTL time.Duration `json:"ttl"`
}

// DefaultConfig returns a Config with the standard defaults.
func DefaultConfig() *Config {
	return &Config{
		SimilarUsers:    3,
		MaxResults:      10,
		GenreMatchBonus: 1.0,
		GenreOtherBonus: 0.3,
		Cache: CacheConfig{
			Enabled: true,
			TTL:     5 * time.Minute,
		},
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.SimilarUsers < 1 {
		return fmt.Errorf("similar_users must be positive, got %d", c.SimilarUsers)
	}
	if c.MaxResults < 1 {
		return fmt.Errorf("max_results must be positive, got %d", c.MaxResults)
	}
	if c.GenreMatchBonus < 0 {
		return fmt.Errorf("genre_match_bonus must be non-negative, got %f", c.GenreMatchBonus)
	}
	if c.GenreOtherBonus < 0 {
		return fmt.Errorf("genre_other_bonus must be non-negative, got %f", c.GenreOtherBonus)
	}
	if c.Cache.Enabled && c.Cache.TTL <= 0 {
		return fmt.Errorf("cache.ttl must be positive when caching is enabled, got %v", c.Cache.TTL)
	}
	return nil
}

// Clone returns a copy of the configuration.
func (c *Config) Clone() *Config {
	// Direct field copy - all fields are value types
	out := *c
	return &out
}
