// CineGraph - Movie Recommendation Engine and Graph Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/tomtom215/cinegraph/internal/quiz"
)

func quizCommand() *cli.Command {
	return &cli.Command{
		Name:   "quiz",
		Usage:  "Answer a few yes/no questions to get a shortlist",
		Action: runQuiz,
	}
}

func runQuiz(_ context.Context, cmd *cli.Command) error {
	a, err := setup(cmd)
	if err != nil {
		return err
	}

	tree := quiz.Build(a.engine.Catalog())
	node := tree
	scanner := bufio.NewScanner(os.Stdin)

	for !node.IsLeaf() {
		fmt.Printf("%s [y/n] ", node.Value.Question)
		if !scanner.Scan() {
			return scanner.Err()
		}
		answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
		node = node.Traverse([]bool{answer == "y" || answer == "yes"})
	}

	if len(node.Value.Shortlist) == 0 {
		fmt.Println("nothing in the catalog matches all of that: try different answers")
		return nil
	}

	fmt.Println("you might like:")
	for i, title := range node.Value.Shortlist {
		fmt.Printf("%2d. %s\n", i+1, title)
	}
	return nil
}
