// CineGraph - Movie Recommendation Engine and Graph Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package main

import (
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/tomtom215/cinegraph/internal/config"
	"github.com/tomtom215/cinegraph/internal/loader"
	"github.com/tomtom215/cinegraph/internal/logging"
	"github.com/tomtom215/cinegraph/internal/recommend"
	"github.com/tomtom215/cinegraph/internal/search"
)

// app bundles everything a command needs after startup: resolved config
// and a loaded engine with its title index.
type app struct {
	cfg    *config.Config
	engine *recommend.Engine
	index  *search.Index
}

// setup resolves configuration, initializes logging, and loads the CSV
// sources into a ready engine. Command-line flags override both config
// file and environment.
func setup(cmd *cli.Command) (*app, error) {
	cfg, err := config.LoadFile(cmd.String("config"))
	if err != nil {
		return nil, err
	}
	applyFlagOverrides(cmd, cfg)

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})

	engineCfg := &recommend.Config{
		SimilarUsers:    cfg.Recommend.SimilarUsers,
		MaxResults:      cfg.Recommend.MaxResults,
		GenreMatchBonus: cfg.Recommend.GenreMatchBonus,
		GenreOtherBonus: cfg.Recommend.GenreOtherBonus,
		Cache: recommend.CacheConfig{
			Enabled: cfg.Recommend.CacheEnabled,
			TTL:     cfg.Recommend.CacheTTL,
		},
	}
	engine, err := recommend.NewEngine(engineCfg, logging.Logger())
	if err != nil {
		return nil, err
	}

	cat, _, err := loader.LoadMovies(cfg.Data.MoviesPath)
	if err != nil {
		return nil, err
	}
	ratings, _, err := loader.LoadRatings(cfg.Data.RatingsPath)
	if err != nil {
		return nil, err
	}
	engine.Load(cat, ratings)

	return &app{
		cfg:    cfg,
		engine: engine,
		index:  search.BuildIndex(cat),
	}, nil
}

// applyFlagOverrides lets command-line flags win over config file and env.
func applyFlagOverrides(cmd *cli.Command, cfg *config.Config) {
	if v := cmd.String("movies"); v != "" {
		cfg.Data.MoviesPath = v
	}
	if v := cmd.String("ratings"); v != "" {
		cfg.Data.RatingsPath = v
	}
	if v := cmd.String("log-level"); v != "" {
		cfg.Logging.Level = v
	}
	if v := cmd.String("log-format"); v != "" {
		cfg.Logging.Format = v
	}
}

// userIDFlag is shared by the commands that act on a single user.
func userIDFlag(required bool) *cli.IntFlag {
	return &cli.IntFlag{
		Name:     "user",
		Aliases:  []string{"u"},
		Usage:    "user id to act on",
		Required: required,
	}
}

// resolveUser validates that the user exists before a command runs.
func (a *app) resolveUser(id int) error {
	if _, ok := a.engine.LookupUser(id); !ok {
		return fmt.Errorf("user %d is not in the rating history", id)
	}
	return nil
}
