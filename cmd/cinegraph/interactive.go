// CineGraph - Movie Recommendation Engine and Graph Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v3"

	"github.com/tomtom215/cinegraph/internal/recommend"
	"github.com/tomtom215/cinegraph/internal/tui"
)

func interactiveCommand() *cli.Command {
	return &cli.Command{
		Name:   "interactive",
		Usage:  "Run the interactive session (default)",
		Action: runInteractive,
	}
}

func runInteractive(_ context.Context, cmd *cli.Command) error {
	a, err := setup(cmd)
	if err != nil {
		return err
	}

	session := a.engine.NewSession()

	// No terminal means no TUI; fall back to a line-oriented loop so the
	// session still works under pipes and scripts.
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		return runPlainSession(session)
	}
	return tui.Run(session, a.index)
}

// runPlainSession is the non-TTY session loop: one command per line.
func runPlainSession(session *recommend.Session) error {
	fmt.Println("cinegraph session. commands: login <id|new>, watch <title>, recommend, similar, logout, quit")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		verb, arg, _ := strings.Cut(strings.TrimSpace(scanner.Text()), " ")

		switch strings.ToLower(verb) {
		case "":
			continue
		case "quit", "exit":
			return nil
		case "login":
			user, err := session.Login(arg)
			if err != nil {
				printSessionError(err)
				continue
			}
			fmt.Printf("logged in as user %d (%d watched)\n", user.ID, user.WatchedCount())
		case "logout":
			session.Logout()
			fmt.Println("logged out")
		case "watch":
			if err := session.RecordWatched(arg); err != nil {
				printSessionError(err)
				continue
			}
			fmt.Printf("recorded %q\n", arg)
		case "recommend":
			recs, err := session.Recommendations()
			if err != nil {
				printSessionError(err)
				continue
			}
			if len(recs) == 0 {
				fmt.Println("no recommendations")
				continue
			}
			for i, rec := range recs {
				fmt.Printf("%2d. %-40s %6.2f\n", i+1, rec.Title, rec.Score)
			}
		case "similar":
			similar, err := session.SimilarUsers(0)
			if err != nil {
				printSessionError(err)
				continue
			}
			if len(similar) == 0 {
				fmt.Println("no similar users")
				continue
			}
			for _, su := range similar {
				fmt.Printf("user %-6d %.3f\n", su.UserID, su.Similarity)
			}
		default:
			fmt.Printf("unknown command %q\n", verb)
		}
	}
}

// printSessionError presents the session's named conditions so a contract
// violation never reads like an empty result.
func printSessionError(err error) {
	switch {
	case errors.Is(err, recommend.ErrNoActiveUser):
		fmt.Println("not logged in, run: login <id|new>")
	case errors.Is(err, recommend.ErrUserNotFound):
		fmt.Println("user not found")
	case errors.Is(err, recommend.ErrMovieNotFound):
		fmt.Println("movie not found in the catalog")
	default:
		fmt.Printf("error: %v\n", err)
	}
}
