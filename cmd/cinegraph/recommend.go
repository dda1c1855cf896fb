// CineGraph - Movie Recommendation Engine and Graph Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/goccy/go-json"
	"github.com/urfave/cli/v3"
)

func recommendCommand() *cli.Command {
	return &cli.Command{
		Name:  "recommend",
		Usage: "Print the top recommendations for a user",
		Flags: []cli.Flag{
			userIDFlag(true),
			&cli.BoolFlag{
				Name:  "json",
				Usage: "output as JSON",
			},
		},
		Action: runRecommend,
	}
}

func runRecommend(_ context.Context, cmd *cli.Command) error {
	a, err := setup(cmd)
	if err != nil {
		return err
	}

	userID := int(cmd.Int("user"))
	if err := a.resolveUser(userID); err != nil {
		return err
	}

	recs, err := a.engine.Recommend(userID)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(recs)
	}

	if len(recs) == 0 {
		fmt.Println("no recommendations")
		return nil
	}
	for i, rec := range recs {
		line := fmt.Sprintf("%2d. %-40s %6.2f", i+1, rec.Title, rec.Score)
		if rec.Genre != "" {
			line += "  " + rec.Genre
		}
		fmt.Println(line)
	}
	return nil
}
