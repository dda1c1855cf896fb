// CineGraph - Movie Recommendation Engine and Graph Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := defaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults must validate, got %v", err)
	}
	if cfg.Recommend.SimilarUsers != 3 {
		t.Errorf("default similar_users = %d, want 3", cfg.Recommend.SimilarUsers)
	}
	if cfg.Recommend.MaxResults != 10 {
		t.Errorf("default max_results = %d, want 10", cfg.Recommend.MaxResults)
	}
	if cfg.Recommend.GenreOtherBonus != 0.3 {
		t.Errorf("default genre_other_bonus = %v, want 0.3", cfg.Recommend.GenreOtherBonus)
	}
	if cfg.Viz.Seed != 42 {
		t.Errorf("default viz seed = %d, want 42", cfg.Viz.Seed)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{
			name:   "zero similar users",
			mutate: func(c *Config) { c.Recommend.SimilarUsers = 0 },
		},
		{
			name:   "negative genre bonus",
			mutate: func(c *Config) { c.Recommend.GenreMatchBonus = -1 },
		},
		{
			name:   "unknown log level",
			mutate: func(c *Config) { c.Logging.Level = "verbose" },
		},
		{
			name:   "unknown log format",
			mutate: func(c *Config) { c.Logging.Format = "xml" },
		},
		{
			name:   "empty movies path",
			mutate: func(c *Config) { c.Data.MoviesPath = "" },
		},
		{
			name:   "cache enabled with zero ttl",
			mutate: func(c *Config) { c.Recommend.CacheTTL = 0 },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestLoadAppliesDefaults(t *testing.T) {
	cfg, err := LoadFile("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Recommend.CacheTTL != 5*time.Minute {
		t.Errorf("cache_ttl = %v, want 5m", cfg.Recommend.CacheTTL)
	}
	if cfg.Logging.Format != "console" {
		t.Errorf("log format = %q, want console", cfg.Logging.Format)
	}
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cinegraph.yaml")
	yaml := `
data:
  movies_path: /srv/movies.csv
recommend:
  similar_users: 7
  genre_other_bonus: 0.5
logging:
  level: debug
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error: %v", err)
	}

	if cfg.Data.MoviesPath != "/srv/movies.csv" {
		t.Errorf("movies_path = %q, want /srv/movies.csv", cfg.Data.MoviesPath)
	}
	if cfg.Recommend.SimilarUsers != 7 {
		t.Errorf("similar_users = %d, want 7", cfg.Recommend.SimilarUsers)
	}
	if cfg.Recommend.GenreOtherBonus != 0.5 {
		t.Errorf("genre_other_bonus = %v, want 0.5", cfg.Recommend.GenreOtherBonus)
	}
	// Untouched by the file: default survives
	if cfg.Recommend.MaxResults != 10 {
		t.Errorf("max_results = %d, want default 10", cfg.Recommend.MaxResults)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("log level = %q, want debug", cfg.Logging.Level)
	}
}

func TestLoadFileMissingPathIsError(t *testing.T) {
	if _, err := LoadFile("/nonexistent/cinegraph.yaml"); err == nil {
		t.Error("expected error for missing explicit config file")
	}
}

func TestEnvOverridesFile(t *testing.T) {
	t.Setenv("CINEGRAPH_SIMILAR_USERS", "9")
	t.Setenv("CINEGRAPH_LOG_LEVEL", "warn")

	cfg, err := LoadFile("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Recommend.SimilarUsers != 9 {
		t.Errorf("similar_users = %d, want env override 9", cfg.Recommend.SimilarUsers)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("log level = %q, want env override warn", cfg.Logging.Level)
	}
}

func TestEnvTransformFunc(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{key: "CINEGRAPH_MOVIES", want: "data.movies_path"},
		{key: "CINEGRAPH_LOG_LEVEL", want: "logging.level"},
		{key: "CINEGRAPH_VIZ_SEED", want: "viz.seed"},
		{key: "CINEGRAPH_UNKNOWN_KNOB", want: ""},
		{key: "PATH", want: ""},
		{key: "HOME", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := envTransformFunc(tt.key); got != tt.want {
				t.Errorf("envTransformFunc(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}
