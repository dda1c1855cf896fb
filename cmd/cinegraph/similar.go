// CineGraph - Movie Recommendation Engine and Graph Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

func similarCommand() *cli.Command {
	return &cli.Command{
		Name:  "similar",
		Usage: "Rank users by taste similarity to a user",
		Flags: []cli.Flag{
			userIDFlag(true),
			&cli.IntFlag{
				Name:  "top",
				Usage: "number of similar users to show",
				Value: 5,
			},
		},
		Action: runSimilar,
	}
}

func runSimilar(_ context.Context, cmd *cli.Command) error {
	a, err := setup(cmd)
	if err != nil {
		return err
	}

	userID := int(cmd.Int("user"))
	if err := a.resolveUser(userID); err != nil {
		return err
	}

	similar := a.engine.SimilarUsers(userID, int(cmd.Int("top")))
	if len(similar) == 0 {
		fmt.Printf("no users share watch history with user %d\n", userID)
		return nil
	}

	fmt.Printf("%-10s %s\n", "user", "similarity")
	for _, su := range similar {
		fmt.Printf("%-10d %.3f\n", su.UserID, su.Similarity)
	}
	return nil
}
