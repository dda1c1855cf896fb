// CineGraph - Movie Recommendation Engine and Graph Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in
// order of priority. The first file found wins.
var DefaultConfigPaths = []string{
	"cinegraph.yaml",
	"cinegraph.yml",
	"config/cinegraph.yaml",
	"config/cinegraph.yml",
}

// ConfigPathEnvVar overrides the config file search when set.
const ConfigPathEnvVar = "CINEGRAPH_CONFIG"

// Load resolves the full configuration: struct defaults, then the optional
// YAML file, then CINEGRAPH_* environment variables.
func Load() (*Config, error) {
	return LoadFile("")
}

// LoadFile is Load with an explicit config file path. An empty path falls
// back to the usual search order; a non-empty path must exist.
func LoadFile(path string) (*Config, error) {
	k := koanf.New(".")

	// Layer 1: defaults from struct
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: optional config file
	configPath := path
	if configPath == "" {
		configPath = findConfigFile()
	}
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: environment variables (highest priority)
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// findConfigFile locates the config file to use. The CINEGRAPH_CONFIG
// environment variable takes precedence over the default search paths.
// Returns an empty string when no file exists, which is not an error.
func findConfigFile() string {
	if p := os.Getenv(ConfigPathEnvVar); p != "" {
		return p
	}
	for _, p := range DefaultConfigPaths {
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p
		}
	}
	return ""
}

// envMappings translates CINEGRAPH_* environment variable names (lowered,
// prefix stripped) to koanf config paths. Unmapped variables are ignored so
// unrelated environment noise cannot pollute the configuration.
var envMappings = map[string]string{
	"movies":  "data.movies_path",
	"ratings": "data.ratings_path",

	"similar_users":     "recommend.similar_users",
	"max_results":       "recommend.max_results",
	"genre_match_bonus": "recommend.genre_match_bonus",
	"genre_other_bonus": "recommend.genre_other_bonus",
	"cache_enabled":     "recommend.cache_enabled",
	"cache_ttl":         "recommend.cache_ttl",

	"viz_seed":       "viz.seed",
	"viz_iterations": "viz.iterations",
	"viz_output":     "viz.output_path",

	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// envTransformFunc maps environment variable names to koanf paths.
// Only CINEGRAPH_-prefixed variables with a known mapping are accepted.
//
// Examples:
//   - CINEGRAPH_MOVIES -> data.movies_path
//   - CINEGRAPH_LOG_LEVEL -> logging.level
func envTransformFunc(key string) string {
	key = strings.ToLower(key)

	const prefix = "cinegraph_"
	if !strings.HasPrefix(key, prefix) {
		return ""
	}
	key = strings.TrimPrefix(key, prefix)

	if mapped, ok := envMappings[key]; ok {
		return mapped
	}
	return ""
}
