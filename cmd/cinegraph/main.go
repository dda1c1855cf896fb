// CineGraph - Movie Recommendation Engine and Graph Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

// Package main provides the cinegraph CLI.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"
)

var version = "dev"

func main() {
	// .env is a developer convenience; a missing file is not an error.
	_ = godotenv.Load()

	app := &cli.Command{
		Name:    "cinegraph",
		Version: version,
		Usage:   "Hybrid movie recommendations over a user-movie rating graph",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "movies",
				Usage:   "path to the movie catalog CSV",
				Sources: cli.EnvVars("CINEGRAPH_MOVIES"),
			},
			&cli.StringFlag{
				Name:    "ratings",
				Usage:   "path to the rating history CSV",
				Sources: cli.EnvVars("CINEGRAPH_RATINGS"),
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to a config file (overrides the search paths)",
				Sources: cli.EnvVars("CINEGRAPH_CONFIG"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log level: trace, debug, info, warn, error",
				Sources: cli.EnvVars("CINEGRAPH_LOG_LEVEL"),
			},
			&cli.StringFlag{
				Name:    "log-format",
				Usage:   "log format: console or json",
				Sources: cli.EnvVars("CINEGRAPH_LOG_FORMAT"),
			},
		},
		Commands: []*cli.Command{
			interactiveCommand(),
			recommendCommand(),
			similarCommand(),
			visualizeCommand(),
			statsCommand(),
			quizCommand(),
		},
		// Bare "cinegraph" drops into the interactive session.
		Action: runInteractive,
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
