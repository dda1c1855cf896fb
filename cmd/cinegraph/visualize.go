// CineGraph - Movie Recommendation Engine and Graph Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/tomtom215/cinegraph/internal/viz"
)

func visualizeCommand() *cli.Command {
	return &cli.Command{
		Name:  "visualize",
		Usage: "Render the rating graph to an HTML or JSON artifact",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "user",
				Aliases: []string{"u"},
				Usage:   "highlight this user in the rendering",
				Value:   -1,
			},
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Usage:   "output path (HTML format); defaults to the configured path",
			},
			&cli.StringFlag{
				Name:  "format",
				Usage: "output format: html or json (json writes to stdout)",
				Value: "html",
			},
		},
		Action: runVisualize,
	}
}

func runVisualize(_ context.Context, cmd *cli.Command) error {
	a, err := setup(cmd)
	if err != nil {
		return err
	}

	scene := viz.Layout(a.engine.GraphSnapshot(), viz.LayoutConfig{
		Seed:       a.cfg.Viz.Seed,
		Iterations: a.cfg.Viz.Iterations,
	})
	if userID := int(cmd.Int("user")); userID >= 0 {
		if err := a.resolveUser(userID); err != nil {
			return err
		}
		scene.HighlightUserID = userID
	}

	switch cmd.String("format") {
	case "json":
		return viz.ExportJSON(os.Stdout, scene)
	case "html":
		out := cmd.String("out")
		if out == "" {
			out = a.cfg.Viz.OutputPath
		}
		if err := viz.WriteFile(out, scene); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", out)
		return nil
	default:
		return fmt.Errorf("unknown format %q (want html or json)", cmd.String("format"))
	}
}
